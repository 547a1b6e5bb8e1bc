package token

// Kind is the fine-grained kind of a token. Every keyword, operator and
// separator has its own kind; literals are split by sub-kind.
type Kind int

const (
	EOF Kind = iota

	Ident

	// Literals
	DecimalInteger
	HexInteger
	OctalInteger
	BinaryInteger
	DecimalFloatingPoint
	HexFloatingPoint
	CharLiteral
	StringLiteral
	True
	False
	Null

	// Keywords
	Abstract
	Assert
	Boolean
	Break
	Byte
	Case
	Catch
	Char
	Class
	Const
	Continue
	Default
	Do
	Double
	Else
	Enum
	Extends
	Final
	Finally
	Float
	For
	Goto
	If
	Implements
	Import
	Instanceof
	Int
	Interface
	Long
	Native
	New
	Package
	Private
	Protected
	Public
	Return
	Short
	Static
	Strictfp
	Super
	Switch
	Synchronized
	This
	Throw
	Throws
	Transient
	Try
	Void
	Volatile
	While

	// Separators
	LParen
	RParen
	LBrace
	RBrace
	LBracket
	RBracket
	Semicolon
	Comma
	Dot
	Ellipsis
	At
	ColonColon

	// Operators
	Assign
	EQ
	NE
	LT
	LE
	GT
	GE
	And
	Or
	Not
	BitAnd
	BitOr
	BitXor
	BitNot
	Shl
	Shr
	UShr
	Plus
	Minus
	Star
	Slash
	Percent
	Increment
	Decrement
	Question
	Colon
	Arrow
	PlusAssign
	MinusAssign
	StarAssign
	SlashAssign
	PercentAssign
	AndAssign
	OrAssign
	XorAssign
	ShlAssign
	ShrAssign
	UShrAssign
)

var kindNames = map[Kind]string{
	EOF:                  "EOF",
	Ident:                "Identifier",
	DecimalInteger:       "DecimalInteger",
	HexInteger:           "HexInteger",
	OctalInteger:         "OctalInteger",
	BinaryInteger:        "BinaryInteger",
	DecimalFloatingPoint: "DecimalFloatingPoint",
	HexFloatingPoint:     "HexFloatingPoint",
	CharLiteral:          "Character",
	StringLiteral:        "String",
	True:                 "true",
	False:                "false",
	Null:                 "null",
	Abstract:             "abstract",
	Assert:               "assert",
	Boolean:              "boolean",
	Break:                "break",
	Byte:                 "byte",
	Case:                 "case",
	Catch:                "catch",
	Char:                 "char",
	Class:                "class",
	Const:                "const",
	Continue:             "continue",
	Default:              "default",
	Do:                   "do",
	Double:               "double",
	Else:                 "else",
	Enum:                 "enum",
	Extends:              "extends",
	Final:                "final",
	Finally:              "finally",
	Float:                "float",
	For:                  "for",
	Goto:                 "goto",
	If:                   "if",
	Implements:           "implements",
	Import:               "import",
	Instanceof:           "instanceof",
	Int:                  "int",
	Interface:            "interface",
	Long:                 "long",
	Native:               "native",
	New:                  "new",
	Package:              "package",
	Private:              "private",
	Protected:            "protected",
	Public:               "public",
	Return:               "return",
	Short:                "short",
	Static:               "static",
	Strictfp:             "strictfp",
	Super:                "super",
	Switch:               "switch",
	Synchronized:         "synchronized",
	This:                 "this",
	Throw:                "throw",
	Throws:               "throws",
	Transient:            "transient",
	Try:                  "try",
	Void:                 "void",
	Volatile:             "volatile",
	While:                "while",
	LParen:               "(",
	RParen:               ")",
	LBrace:               "{",
	RBrace:               "}",
	LBracket:             "[",
	RBracket:             "]",
	Semicolon:            ";",
	Comma:                ",",
	Dot:                  ".",
	Ellipsis:             "...",
	At:                   "@",
	ColonColon:           "::",
	Assign:               "=",
	EQ:                   "==",
	NE:                   "!=",
	LT:                   "<",
	LE:                   "<=",
	GT:                   ">",
	GE:                   ">=",
	And:                  "&&",
	Or:                   "||",
	Not:                  "!",
	BitAnd:               "&",
	BitOr:                "|",
	BitXor:               "^",
	BitNot:               "~",
	Shl:                  "<<",
	Shr:                  ">>",
	UShr:                 ">>>",
	Plus:                 "+",
	Minus:                "-",
	Star:                 "*",
	Slash:                "/",
	Percent:              "%",
	Increment:            "++",
	Decrement:            "--",
	Question:             "?",
	Colon:                ":",
	Arrow:                "->",
	PlusAssign:           "+=",
	MinusAssign:          "-=",
	StarAssign:           "*=",
	SlashAssign:          "/=",
	PercentAssign:        "%=",
	AndAssign:            "&=",
	OrAssign:             "|=",
	XorAssign:            "^=",
	ShlAssign:            "<<=",
	ShrAssign:            ">>=",
	UShrAssign:           ">>>=",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Category is the coarse lexical class of a token.
type Category int

const (
	CategoryEOF Category = iota
	CategoryIdentifier
	CategoryKeyword
	CategoryLiteral
	CategoryOperator
	CategorySeparator
)

var categoryNames = [...]string{
	CategoryEOF:        "EOF",
	CategoryIdentifier: "Identifier",
	CategoryKeyword:    "Keyword",
	CategoryLiteral:    "Literal",
	CategoryOperator:   "Operator",
	CategorySeparator:  "Separator",
}

func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// Category returns the lexical class of k.
func (k Kind) Category() Category {
	switch {
	case k == EOF:
		return CategoryEOF
	case k == Ident:
		return CategoryIdentifier
	case k.IsLiteral():
		return CategoryLiteral
	case k.IsKeyword():
		return CategoryKeyword
	case k >= LParen && k <= ColonColon:
		return CategorySeparator
	}
	return CategoryOperator
}

func (k Kind) IsLiteral() bool {
	return k >= DecimalInteger && k <= Null
}

func (k Kind) IsKeyword() bool {
	return k >= Abstract && k <= While
}

func (k Kind) IsInteger() bool {
	return k >= DecimalInteger && k <= BinaryInteger
}

func (k Kind) IsFloatingPoint() bool {
	return k == DecimalFloatingPoint || k == HexFloatingPoint
}

// IsBasicType reports whether k names one of the eight primitive types.
func (k Kind) IsBasicType() bool {
	switch k {
	case Boolean, Byte, Char, Short, Int, Long, Float, Double:
		return true
	}
	return false
}

// IsModifier reports whether k is a declaration modifier keyword.
func (k Kind) IsModifier() bool {
	switch k {
	case Public, Protected, Private, Static, Abstract, Final, Native,
		Synchronized, Transient, Volatile, Strictfp, Default:
		return true
	}
	return false
}

// IsAssignment reports whether k is = or a compound assignment operator.
func (k Kind) IsAssignment() bool {
	return k == Assign || (k >= PlusAssign && k <= UShrAssign)
}

// Token is a lexical unit. Tokens are never modified after the lexer
// produces them.
type Token struct {
	Kind    Kind
	Literal string
	// Pos is the first character of the token, End the last one (inclusive).
	Pos Position
	End Position
	// Doc is the javadoc comment immediately preceding the token, if any.
	Doc string
}

func (t Token) Category() Category {
	return t.Kind.Category()
}

func (t Token) String() string {
	if t.Kind == EOF {
		return "EOF"
	}
	return t.Literal
}

var keywords = map[string]Kind{
	"abstract":     Abstract,
	"assert":       Assert,
	"boolean":      Boolean,
	"break":        Break,
	"byte":         Byte,
	"case":         Case,
	"catch":        Catch,
	"char":         Char,
	"class":        Class,
	"const":        Const,
	"continue":     Continue,
	"default":      Default,
	"do":           Do,
	"double":       Double,
	"else":         Else,
	"enum":         Enum,
	"extends":      Extends,
	"final":        Final,
	"finally":      Finally,
	"float":        Float,
	"for":          For,
	"goto":         Goto,
	"if":           If,
	"implements":   Implements,
	"import":       Import,
	"instanceof":   Instanceof,
	"int":          Int,
	"interface":    Interface,
	"long":         Long,
	"native":       Native,
	"new":          New,
	"package":      Package,
	"private":      Private,
	"protected":    Protected,
	"public":       Public,
	"return":       Return,
	"short":        Short,
	"static":       Static,
	"strictfp":     Strictfp,
	"super":        Super,
	"switch":       Switch,
	"synchronized": Synchronized,
	"this":         This,
	"throw":        Throw,
	"throws":       Throws,
	"transient":    Transient,
	"try":          Try,
	"void":         Void,
	"volatile":     Volatile,
	"while":        While,
	"true":         True,
	"false":        False,
	"null":         Null,
}

// LookupKeyword returns the keyword or literal kind for ident, or Ident if
// ident is not reserved.
func LookupKeyword(ident string) Kind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return Ident
}
