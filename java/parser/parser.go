package parser

import (
	"fmt"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

var log = commonlog.GetLogger("javasyntax.parser")

const defaultMaxNesting = 1000

type Option func(*Parser)

// WithFile sets the file name reported in errors.
func WithFile(path string) Option {
	return func(p *Parser) {
		p.file = path
	}
}

// WithComments records every comment so that Comments can return them.
func WithComments() Option {
	return func(p *Parser) {
		p.keepComments = true
	}
}

// WithMaxNesting bounds how deeply expressions, statements and types may
// nest before parsing fails with a SyntaxError. Each parenthesized or
// bracketed expression, prefix operator, cast, statement and type argument
// list counts as one level.
func WithMaxNesting(n int) Option {
	return func(p *Parser) {
		p.maxNesting = n
	}
}

// Parser is a recursive-descent parser over a fully tokenized source text.
// Each Parse method parses one production starting at the current token and
// leaves the parser positioned after it. A Parser is not safe for concurrent
// use; independent parsers share no state.
type Parser struct {
	file         string
	keepComments bool
	maxNesting   int

	tokens   []token.Token
	comments []Comment

	state
}

// state is everything a speculative parse may change. Restoring a saved
// state rewinds the parser exactly.
type state struct {
	pos int
	// number of leading '>' characters already taken from tokens[pos]
	split int
	// end of the most recently consumed token
	prev  token.Position
	depth int
}

// bailout carries a SyntaxError up to the nearest entry point or
// speculative window.
type bailout struct {
	err *SyntaxError
}

// New tokenizes src and returns a parser positioned at its first token.
// Lexical errors are reported here.
func New(src []byte, opts ...Option) (*Parser, error) {
	p := &Parser{maxNesting: defaultMaxNesting}
	for _, opt := range opts {
		opt(p)
	}
	tokens, comments, err := tokenize(src, p.file, p.keepComments)
	if err != nil {
		return nil, err
	}
	p.tokens = tokens
	p.comments = comments
	return p, nil
}

// Comments returns the comments of the source when the parser was created
// with WithComments.
func (p *Parser) Comments() []Comment {
	return p.comments
}

// Tokens returns the token sequence the parser works on, ending with EOF.
func (p *Parser) Tokens() []token.Token {
	return p.tokens
}

// Done reports whether every token has been consumed.
func (p *Parser) Done() bool {
	return p.peek().Kind == token.EOF
}

// Reset rewinds the parser to the first token.
func (p *Parser) Reset() {
	p.state = state{}
}

// ParseFile parses a complete compilation unit.
func ParseFile(src []byte, opts ...Option) (*ast.CompilationUnit, error) {
	p, err := New(src, opts...)
	if err != nil {
		return nil, err
	}
	return p.ParseCompilationUnit()
}

// ParseExpr parses src as a single expression. Trailing tokens are an
// error.
func ParseExpr(src []byte, opts ...Option) (ast.Expr, error) {
	p, err := New(src, opts...)
	if err != nil {
		return nil, err
	}
	return parse(p, func() ast.Expr {
		e := p.parseExpression()
		p.expect(token.EOF)
		return e
	})
}

func (p *Parser) ParseLiteral() (*ast.Literal, error) {
	return parse(p, p.parseLiteral)
}

// ParseParExpression parses ( expression ). The result is the inner
// expression with its span widened to the parentheses.
func (p *Parser) ParseParExpression() (ast.Expr, error) {
	return parse(p, p.parseParExpression)
}

// ParsePrimary parses a primary expression together with its selectors:
// member accesses, invocations, array accesses and method references.
func (p *Parser) ParsePrimary() (ast.Expr, error) {
	return parse(p, p.parsePrimary)
}

func (p *Parser) ParseExpression() (ast.Expr, error) {
	return parse(p, p.parseExpression)
}

func (p *Parser) ParseType() (ast.Type, error) {
	return parse(p, p.parseType)
}

// ParseTypeDeclaration parses a class, interface, enum or annotation type
// declaration including its modifiers.
func (p *Parser) ParseTypeDeclaration() (ast.TypeDecl, error) {
	return parse(p, p.parseTypeDeclaration)
}

func (p *Parser) ParseClassBodyDeclaration() (ast.Decl, error) {
	return parse(p, func() ast.Decl { return p.parseClassBodyDeclaration(false) })
}

func (p *Parser) ParseLocalVariableDeclarationStatement() (*ast.LocalVariableDeclaration, error) {
	return parse(p, p.parseLocalVariableDeclarationStatement)
}

func (p *Parser) ParseCatchClause() (*ast.CatchClause, error) {
	return parse(p, p.parseCatchClause)
}

// ParseStatement parses anything that may appear in a block: a statement,
// a local variable declaration or a local class declaration.
func (p *Parser) ParseStatement() (ast.Stmt, error) {
	return parse(p, p.parseBlockStatement)
}

func (p *Parser) ParseBlock() (*ast.Block, error) {
	return parse(p, p.parseBlock)
}

// ParseCompilationUnit parses the remaining input as a compilation unit.
func (p *Parser) ParseCompilationUnit() (*ast.CompilationUnit, error) {
	return parse(p, p.parseCompilationUnit)
}

// parse runs f as an entry point. A failure rewinds the parser to where f
// started and returns the error without a partial result.
func parse[N any](p *Parser, f func() N) (n N, err error) {
	saved := p.state
	defer func() {
		if r := recover(); r != nil {
			b, ok := r.(bailout)
			if !ok {
				panic(r)
			}
			p.state = saved
			err = b.err
		}
	}()
	return f(), nil
}

// speculate runs f and reports whether it succeeded. On failure the parser
// is rewound to where f started.
func (p *Parser) speculate(what string, f func()) (ok bool) {
	saved := p.state
	defer func() {
		if r := recover(); r != nil {
			b, isBailout := r.(bailout)
			if !isBailout {
				panic(r)
			}
			log.Debugf("%s: not a %s: %s", location(p.file, b.err.Pos), what, b.err.Message)
			p.state = saved
			ok = false
		}
	}()
	f()
	return true
}

// Token cursor

func (p *Parser) peek() token.Token {
	tok := p.tokens[p.pos]
	if p.split == 0 {
		return tok
	}
	return splitRemainder(tok, p.split)
}

// peekN looks n tokens past the current one. A partly consumed token still
// counts as the current token.
func (p *Parser) peekN(n int) token.Token {
	if p.pos+n >= len(p.tokens) {
		return p.tokens[len(p.tokens)-1]
	}
	return p.tokens[p.pos+n]
}

func (p *Parser) advance() token.Token {
	tok := p.peek()
	p.prev = tok.End
	if p.pos < len(p.tokens)-1 {
		p.pos++
	}
	p.split = 0
	return tok
}

func (p *Parser) check(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, kind := range kinds {
		if p.check(kind) {
			return true
		}
	}
	return false
}

// accept consumes the current token if it has the given kind.
func (p *Parser) accept(kind token.Kind) bool {
	if p.check(kind) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) expect(kind token.Kind) token.Token {
	if !p.check(kind) {
		panic(p.unexpected(kind))
	}
	return p.advance()
}

var gtRemainders = map[string]token.Kind{
	">":   token.GT,
	">>":  token.Shr,
	">=":  token.GE,
	">>=": token.ShrAssign,
	"=":   token.Assign,
}

func splitRemainder(tok token.Token, n int) token.Token {
	rest := tok.Literal[n:]
	return token.Token{
		Kind:    gtRemainders[rest],
		Literal: rest,
		Pos:     token.Position{Line: tok.Pos.Line, Column: tok.Pos.Column + n},
		End:     tok.End,
	}
}

// expectGT consumes a single '>' closing a type argument list. A greedy
// >>, >>>, >=, >>= or >>>= token is split: its first character is consumed
// and the rest stays current. Tokens themselves are never modified.
func (p *Parser) expectGT() token.Token {
	tok := p.peek()
	switch tok.Kind {
	case token.GT:
		return p.advance()
	case token.Shr, token.UShr, token.GE, token.ShrAssign, token.UShrAssign:
		p.split++
		p.prev = tok.Pos
		return token.Token{Kind: token.GT, Literal: ">", Pos: tok.Pos, End: tok.Pos}
	}
	panic(p.unexpected(token.GT))
}

// errorf builds a failure at the current token. Callers panic with it.
func (p *Parser) errorf(format string, args ...any) bailout {
	tok := p.peek()
	return bailout{&SyntaxError{
		File:    p.file,
		Pos:     tok.Pos,
		Message: fmt.Sprintf(format, args...),
		Got:     tok,
	}}
}

func (p *Parser) unexpected(expected ...token.Kind) bailout {
	b := p.errorf("unexpected token")
	b.err.Expected = expected
	return b
}

func (p *Parser) enter() {
	p.depth++
	if p.maxNesting > 0 && p.depth > p.maxNesting {
		panic(p.errorf("nesting exceeds %d levels", p.maxNesting))
	}
}

func (p *Parser) leave() {
	p.depth--
}

// span covers start through the end of the last consumed token.
func (p *Parser) span(start token.Position) ast.Span {
	return ast.Span{StartPos: start, EndPos: p.prev}
}

func spanOf(first, last ast.Node) ast.Span {
	return ast.Span{StartPos: first.Pos(), EndPos: last.End()}
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	tok := p.expect(token.Ident)
	return &ast.Identifier{Span: ast.Span{StartPos: tok.Pos, EndPos: tok.End}, Name: tok.Literal}
}

func (p *Parser) parseQualifiedName() *ast.QualifiedName {
	start := p.peek().Pos
	parts := []*ast.Identifier{p.parseIdentifier()}
	for p.check(token.Dot) && p.peekN(1).Kind == token.Ident {
		p.advance()
		parts = append(parts, p.parseIdentifier())
	}
	return &ast.QualifiedName{Span: p.span(start), Parts: parts}
}
