package parser

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/javasyntax/java/token"
)

// Comment is a line or block comment as it appears in the source.
type Comment struct {
	Text string
	Pos  token.Position
	End  token.Position
}

// IsDoc reports whether c is a javadoc comment.
func (c Comment) IsDoc() bool {
	return isDocComment(c.Text)
}

// Lexer turns Java source text into tokens. Whitespace and comments are
// skipped; a javadoc comment is attached to the token that follows it.
type Lexer struct {
	input  []byte
	file   string
	pos    int
	line   int
	column int

	// position of the most recently consumed character
	last token.Position

	doc      string
	comments []Comment
	keep     bool
}

func NewLexer(input []byte, file string) *Lexer {
	return &Lexer{
		input:  input,
		file:   file,
		line:   1,
		column: 1,
	}
}

// KeepComments makes the lexer record every comment it skips.
func (l *Lexer) KeepComments() {
	l.keep = true
}

// Comments returns the comments skipped so far, in source order.
func (l *Lexer) Comments() []Comment {
	return l.comments
}

// Position returns the position of the next unread character.
func (l *Lexer) Position() token.Position {
	return token.Position{Line: l.line, Column: l.column}
}

func (l *Lexer) peek() byte {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *Lexer) peekN(n int) byte {
	if l.pos+n >= len(l.input) {
		return 0
	}
	return l.input[l.pos+n]
}

func (l *Lexer) atEOF() bool {
	return l.pos >= len(l.input)
}

func (l *Lexer) peekRune() (rune, int) {
	if l.pos >= len(l.input) {
		return utf8.RuneError, 0
	}
	if ch := l.input[l.pos]; ch < utf8.RuneSelf {
		return rune(ch), 1
	}
	return utf8.DecodeRune(l.input[l.pos:])
}

// advance consumes one character. CR LF and a lone CR each count as a
// single line terminator.
func (l *Lexer) advance() {
	if l.pos >= len(l.input) {
		return
	}
	l.last = l.Position()
	_, size := l.peekRune()
	ch := l.input[l.pos]
	l.pos += size
	switch {
	case ch == '\n':
		l.line++
		l.column = 1
	case ch == '\r' && l.peek() != '\n':
		l.line++
		l.column = 1
	default:
		l.column++
	}
}

func (l *Lexer) advanceN(n int) {
	for i := 0; i < n; i++ {
		l.advance()
	}
}

func (l *Lexer) errorf(pos token.Position, format string, args ...any) error {
	return &LexError{File: l.file, Pos: pos, Message: fmt.Sprintf(format, args...)}
}

// Next returns the next token. At the end of input it returns an EOF token
// positioned one past the last character, and keeps doing so.
func (l *Lexer) Next() (token.Token, error) {
	if err := l.skipWhitespaceAndComments(); err != nil {
		return token.Token{}, err
	}

	start := l.Position()
	if l.atEOF() {
		return token.Token{Kind: token.EOF, Pos: start, End: start, Doc: l.takeDoc()}, nil
	}

	ch := l.peek()
	var (
		tok token.Token
		err error
	)
	switch {
	case isDigit(ch) || (ch == '.' && isDigit(l.peekN(1))):
		tok, err = l.scanNumber(start)
	case ch == '\'':
		tok, err = l.scanCharLiteral(start)
	case ch == '"':
		tok, err = l.scanStringLiteral(start)
	default:
		if r, _ := l.peekRune(); isJavaLetter(r) {
			tok = l.scanIdentOrKeyword(start)
		} else {
			tok, err = l.scanOperator(start)
		}
	}
	if err != nil {
		return token.Token{}, err
	}
	tok.Doc = l.takeDoc()
	return tok, nil
}

func (l *Lexer) takeDoc() string {
	doc := l.doc
	l.doc = ""
	return doc
}

func (l *Lexer) skipWhitespaceAndComments() error {
	for !l.atEOF() {
		switch ch := l.peek(); {
		case ch == ' ' || ch == '\t' || ch == '\f' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '/' && l.peekN(1) == '/':
			l.scanLineComment()
		case ch == '/' && l.peekN(1) == '*':
			if err := l.scanBlockComment(); err != nil {
				return err
			}
		default:
			return nil
		}
	}
	return nil
}

func (l *Lexer) scanLineComment() {
	start := l.Position()
	offset := l.pos
	for !l.atEOF() && l.peek() != '\n' && l.peek() != '\r' {
		l.advance()
	}
	l.addComment(string(l.input[offset:l.pos]), start)
}

func (l *Lexer) scanBlockComment() error {
	start := l.Position()
	offset := l.pos
	l.advanceN(2)
	for {
		if l.atEOF() {
			return l.errorf(start, "unterminated comment")
		}
		if l.peek() == '*' && l.peekN(1) == '/' {
			l.advanceN(2)
			break
		}
		l.advance()
	}
	text := string(l.input[offset:l.pos])
	if isDocComment(text) {
		l.doc = text
	}
	l.addComment(text, start)
	return nil
}

func (l *Lexer) addComment(text string, start token.Position) {
	if l.keep {
		l.comments = append(l.comments, Comment{Text: text, Pos: start, End: l.last})
	}
}

func isDocComment(text string) bool {
	return strings.HasPrefix(text, "/**") && text != "/**/"
}

func (l *Lexer) token(kind token.Kind, start token.Position, offset int) token.Token {
	return token.Token{
		Kind:    kind,
		Literal: string(l.input[offset:l.pos]),
		Pos:     start,
		End:     l.last,
	}
}

func (l *Lexer) scanIdentOrKeyword(start token.Position) token.Token {
	offset := l.pos
	for {
		r, _ := l.peekRune()
		if l.atEOF() || !isJavaLetterOrDigit(r) {
			break
		}
		l.advance()
	}
	tok := l.token(token.Ident, start, offset)
	tok.Kind = token.LookupKeyword(tok.Literal)
	return tok
}

func (l *Lexer) scanNumber(start token.Position) (token.Token, error) {
	offset := l.pos
	if l.peek() == '0' && (l.peekN(1) == 'x' || l.peekN(1) == 'X') {
		return l.scanHexNumber(start, offset)
	}
	if l.peek() == '0' && (l.peekN(1) == 'b' || l.peekN(1) == 'B') {
		return l.scanBinaryNumber(start, offset)
	}

	isFloat := false
	intDigits := l.scanDigits(isDigit)
	if intDigits.trailingUnderscore {
		return token.Token{}, l.errorf(start, "illegal underscore in number")
	}

	if l.peek() == '.' && l.fractionFollows() {
		isFloat = true
		l.advance()
		if d := l.scanDigits(isDigit); d.trailingUnderscore || d.leadingUnderscore {
			return token.Token{}, l.errorf(start, "illegal underscore in number")
		}
	}

	if l.peek() == 'e' || l.peek() == 'E' {
		isFloat = true
		if err := l.scanExponent(start, "malformed floating point literal"); err != nil {
			return token.Token{}, err
		}
	}

	switch l.peek() {
	case 'f', 'F', 'd', 'D':
		l.advance()
		return l.token(token.DecimalFloatingPoint, start, offset), nil
	case 'l', 'L':
		if isFloat {
			return token.Token{}, l.errorf(start, "malformed floating point literal")
		}
		l.advance()
	}

	if isFloat {
		return l.token(token.DecimalFloatingPoint, start, offset), nil
	}

	tok := l.token(token.DecimalInteger, start, offset)
	digits := strings.TrimRight(tok.Literal, "lL")
	if len(digits) > 1 && digits[0] == '0' {
		for _, ch := range digits[1:] {
			if ch == '8' || ch == '9' {
				return token.Token{}, l.errorf(start, "invalid digit %q in octal literal", ch)
			}
		}
		tok.Kind = token.OctalInteger
	}
	return tok, nil
}

// fractionFollows reports whether the '.' under the cursor belongs to the
// number being scanned: 1.5, 1., 1.e3 and 1.f do, 1..2 and 1.x do not.
func (l *Lexer) fractionFollows() bool {
	next := l.peekN(1)
	switch {
	case isDigit(next):
		return true
	case next == '.':
		return false
	case next == 'e' || next == 'E' || next == 'f' || next == 'F' || next == 'd' || next == 'D':
		return true
	case next < utf8.RuneSelf && isJavaLetter(rune(next)):
		return false
	}
	return true
}

type digitRun struct {
	count              int
	leadingUnderscore  bool
	trailingUnderscore bool
}

func (l *Lexer) scanDigits(valid func(byte) bool) digitRun {
	var run digitRun
	lastUnderscore := false
	first := true
	for {
		ch := l.peek()
		switch {
		case valid(ch):
			run.count++
			lastUnderscore = false
		case ch == '_':
			if first {
				run.leadingUnderscore = true
			}
			lastUnderscore = true
		default:
			run.trailingUnderscore = lastUnderscore
			return run
		}
		first = false
		l.advance()
	}
}

func (l *Lexer) scanExponent(start token.Position, msg string) error {
	l.advance()
	if l.peek() == '+' || l.peek() == '-' {
		l.advance()
	}
	d := l.scanDigits(isDigit)
	if d.count == 0 || d.leadingUnderscore || d.trailingUnderscore {
		return l.errorf(start, "%s", msg)
	}
	return nil
}

func (l *Lexer) scanHexNumber(start token.Position, offset int) (token.Token, error) {
	l.advanceN(2)
	mantissa := l.scanDigits(isHexDigit)
	if mantissa.leadingUnderscore || mantissa.trailingUnderscore {
		return token.Token{}, l.errorf(start, "illegal underscore in number")
	}

	isFloat := false
	if l.peek() == '.' {
		isFloat = true
		l.advance()
		fraction := l.scanDigits(isHexDigit)
		mantissa.count += fraction.count
	}
	if mantissa.count == 0 {
		return token.Token{}, l.errorf(start, "hexadecimal numbers must contain at least one hexadecimal digit")
	}

	if l.peek() == 'p' || l.peek() == 'P' {
		isFloat = true
		if err := l.scanExponent(start, "malformed floating point literal"); err != nil {
			return token.Token{}, err
		}
	} else if isFloat {
		return token.Token{}, l.errorf(start, "malformed floating point literal")
	}

	if isFloat {
		if ch := l.peek(); ch == 'f' || ch == 'F' || ch == 'd' || ch == 'D' {
			l.advance()
		}
		return l.token(token.HexFloatingPoint, start, offset), nil
	}
	if ch := l.peek(); ch == 'l' || ch == 'L' {
		l.advance()
	}
	return l.token(token.HexInteger, start, offset), nil
}

func (l *Lexer) scanBinaryNumber(start token.Position, offset int) (token.Token, error) {
	l.advanceN(2)
	d := l.scanDigits(func(ch byte) bool { return ch == '0' || ch == '1' })
	if d.count == 0 {
		return token.Token{}, l.errorf(start, "binary numbers must contain at least one binary digit")
	}
	if d.leadingUnderscore || d.trailingUnderscore {
		return token.Token{}, l.errorf(start, "illegal underscore in number")
	}
	if isDigit(l.peek()) {
		return token.Token{}, l.errorf(start, "invalid digit %q in binary literal", l.peek())
	}
	if ch := l.peek(); ch == 'l' || ch == 'L' {
		l.advance()
	}
	return l.token(token.BinaryInteger, start, offset), nil
}

func (l *Lexer) scanCharLiteral(start token.Position) (token.Token, error) {
	offset := l.pos
	l.advance()
	switch ch := l.peek(); {
	case l.atEOF() || ch == '\n' || ch == '\r':
		return token.Token{}, l.errorf(start, "unclosed character literal")
	case ch == '\'':
		return token.Token{}, l.errorf(start, "empty character literal")
	case ch == '\\':
		if err := l.scanEscape(); err != nil {
			return token.Token{}, err
		}
	default:
		l.advance()
	}
	if l.peek() != '\'' {
		return token.Token{}, l.errorf(start, "unclosed character literal")
	}
	l.advance()
	return l.token(token.CharLiteral, start, offset), nil
}

func (l *Lexer) scanStringLiteral(start token.Position) (token.Token, error) {
	offset := l.pos
	l.advance()
	for {
		ch := l.peek()
		switch {
		case l.atEOF() || ch == '\n' || ch == '\r':
			return token.Token{}, l.errorf(start, "unclosed string literal")
		case ch == '"':
			l.advance()
			return l.token(token.StringLiteral, start, offset), nil
		case ch == '\\':
			if err := l.scanEscape(); err != nil {
				return token.Token{}, err
			}
		default:
			l.advance()
		}
	}
}

// scanEscape consumes an escape sequence starting at the backslash.
func (l *Lexer) scanEscape() error {
	pos := l.Position()
	l.advance()
	switch ch := l.peek(); {
	case ch == 'b' || ch == 't' || ch == 'n' || ch == 'f' || ch == 'r' ||
		ch == '"' || ch == '\'' || ch == '\\':
		l.advance()
	case ch >= '0' && ch <= '7':
		// \0 - \377
		max := 2
		if ch <= '3' {
			max = 3
		}
		for i := 0; i < max && l.peek() >= '0' && l.peek() <= '7'; i++ {
			l.advance()
		}
	case ch == 'u':
		for l.peek() == 'u' {
			l.advance()
		}
		for i := 0; i < 4; i++ {
			if !isHexDigit(l.peek()) {
				return l.errorf(pos, "illegal unicode escape")
			}
			l.advance()
		}
	default:
		return l.errorf(pos, "illegal escape character")
	}
	return nil
}

func (l *Lexer) scanOperator(start token.Position) (token.Token, error) {
	offset := l.pos
	ch := l.peek()

	// single character tokens
	switch ch {
	case '(':
		return l.op(token.LParen, 1, start, offset), nil
	case ')':
		return l.op(token.RParen, 1, start, offset), nil
	case '{':
		return l.op(token.LBrace, 1, start, offset), nil
	case '}':
		return l.op(token.RBrace, 1, start, offset), nil
	case '[':
		return l.op(token.LBracket, 1, start, offset), nil
	case ']':
		return l.op(token.RBracket, 1, start, offset), nil
	case ';':
		return l.op(token.Semicolon, 1, start, offset), nil
	case ',':
		return l.op(token.Comma, 1, start, offset), nil
	case '@':
		return l.op(token.At, 1, start, offset), nil
	case '~':
		return l.op(token.BitNot, 1, start, offset), nil
	case '?':
		return l.op(token.Question, 1, start, offset), nil
	}

	next := l.peekN(1)
	switch ch {
	case '.':
		if next == '.' && l.peekN(2) == '.' {
			return l.op(token.Ellipsis, 3, start, offset), nil
		}
		return l.op(token.Dot, 1, start, offset), nil

	case ':':
		if next == ':' {
			return l.op(token.ColonColon, 2, start, offset), nil
		}
		return l.op(token.Colon, 1, start, offset), nil

	case '=':
		if next == '=' {
			return l.op(token.EQ, 2, start, offset), nil
		}
		return l.op(token.Assign, 1, start, offset), nil

	case '!':
		if next == '=' {
			return l.op(token.NE, 2, start, offset), nil
		}
		return l.op(token.Not, 1, start, offset), nil

	case '<':
		if next == '<' {
			if l.peekN(2) == '=' {
				return l.op(token.ShlAssign, 3, start, offset), nil
			}
			return l.op(token.Shl, 2, start, offset), nil
		}
		if next == '=' {
			return l.op(token.LE, 2, start, offset), nil
		}
		return l.op(token.LT, 1, start, offset), nil

	case '>':
		if next == '>' {
			if l.peekN(2) == '>' {
				if l.peekN(3) == '=' {
					return l.op(token.UShrAssign, 4, start, offset), nil
				}
				return l.op(token.UShr, 3, start, offset), nil
			}
			if l.peekN(2) == '=' {
				return l.op(token.ShrAssign, 3, start, offset), nil
			}
			return l.op(token.Shr, 2, start, offset), nil
		}
		if next == '=' {
			return l.op(token.GE, 2, start, offset), nil
		}
		return l.op(token.GT, 1, start, offset), nil

	case '&':
		if next == '&' {
			return l.op(token.And, 2, start, offset), nil
		}
		if next == '=' {
			return l.op(token.AndAssign, 2, start, offset), nil
		}
		return l.op(token.BitAnd, 1, start, offset), nil

	case '|':
		if next == '|' {
			return l.op(token.Or, 2, start, offset), nil
		}
		if next == '=' {
			return l.op(token.OrAssign, 2, start, offset), nil
		}
		return l.op(token.BitOr, 1, start, offset), nil

	case '^':
		if next == '=' {
			return l.op(token.XorAssign, 2, start, offset), nil
		}
		return l.op(token.BitXor, 1, start, offset), nil

	case '+':
		if next == '+' {
			return l.op(token.Increment, 2, start, offset), nil
		}
		if next == '=' {
			return l.op(token.PlusAssign, 2, start, offset), nil
		}
		return l.op(token.Plus, 1, start, offset), nil

	case '-':
		if next == '-' {
			return l.op(token.Decrement, 2, start, offset), nil
		}
		if next == '=' {
			return l.op(token.MinusAssign, 2, start, offset), nil
		}
		if next == '>' {
			return l.op(token.Arrow, 2, start, offset), nil
		}
		return l.op(token.Minus, 1, start, offset), nil

	case '*':
		if next == '=' {
			return l.op(token.StarAssign, 2, start, offset), nil
		}
		return l.op(token.Star, 1, start, offset), nil

	case '/':
		if next == '=' {
			return l.op(token.SlashAssign, 2, start, offset), nil
		}
		return l.op(token.Slash, 1, start, offset), nil

	case '%':
		if next == '=' {
			return l.op(token.PercentAssign, 2, start, offset), nil
		}
		return l.op(token.Percent, 1, start, offset), nil
	}

	r, _ := l.peekRune()
	return token.Token{}, l.errorf(start, "unexpected character %q", r)
}

func (l *Lexer) op(kind token.Kind, n int, start token.Position, offset int) token.Token {
	l.advanceN(n)
	return l.token(kind, start, offset)
}

// Tokenize splits src into tokens, ending with EOF.
func Tokenize(src []byte, opts ...Option) ([]token.Token, error) {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	tokens, _, err := tokenize(src, p.file, false)
	return tokens, err
}

func tokenize(src []byte, file string, keepComments bool) ([]token.Token, []Comment, error) {
	l := NewLexer(src, file)
	if keepComments {
		l.KeepComments()
	}
	tokens := make([]token.Token, 0, len(src)/4+1)
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, nil, err
		}
		tokens = append(tokens, tok)
		if tok.Kind == token.EOF {
			return tokens, l.Comments(), nil
		}
	}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isHexDigit(ch byte) bool {
	return (ch >= '0' && ch <= '9') || (ch >= 'a' && ch <= 'f') || (ch >= 'A' && ch <= 'F')
}

func isJavaLetter(r rune) bool {
	if r < utf8.RuneSelf {
		return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_' || r == '$'
	}
	return unicode.IsLetter(r) || unicode.Is(unicode.Sc, r) || unicode.Is(unicode.Pc, r)
}

func isJavaLetterOrDigit(r rune) bool {
	if r < utf8.RuneSelf {
		return isJavaLetter(r) || (r >= '0' && r <= '9')
	}
	return isJavaLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r) || unicode.Is(unicode.Mc, r)
}
