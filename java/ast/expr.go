package ast

import "github.com/dhamidi/javasyntax/java/token"

type (
	// Literal is an integer, floating point, character, string, boolean or
	// null literal. Value is the literal exactly as written.
	Literal struct {
		Span
		LitKind token.Kind `json:"literalKind" yaml:"literalKind"`
		Value   string     `json:"value" yaml:"value"`
	}

	// This is `this`, or `Outer.this` when Qualifier is set.
	This struct {
		Span
		Qualifier Expr `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
	}

	// Super is the `super` keyword used as the target of a member access or
	// method reference, optionally qualified (`Outer.super`).
	Super struct {
		Span
		Qualifier Expr `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
	}

	// MemberReference is a field or variable access. A dotted name chain
	// a.b.c nests: the qualifier of c is the reference a.b.
	MemberReference struct {
		Span
		Qualifier Expr        `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
		Member    *Identifier `json:"member" yaml:"member"`
	}

	MethodInvocation struct {
		Span
		Qualifier     Expr           `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
		TypeArguments *TypeArguments `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`
		Member        *Identifier    `json:"member" yaml:"member"`
		Arguments     []Expr         `json:"arguments" yaml:"arguments"`
	}

	// ExplicitConstructorInvocation is this(...) or super(...), possibly
	// qualified (outer.super(...)) and with explicit type arguments.
	ExplicitConstructorInvocation struct {
		Span
		Qualifier     Expr           `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
		TypeArguments *TypeArguments `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`
		Keyword       string         `json:"keyword" yaml:"keyword"`
		Arguments     []Expr         `json:"arguments" yaml:"arguments"`
	}

	// ClassCreator is `new T(args)`, optionally with an anonymous class body.
	// Outer is set for qualified creation: outer.new Inner().
	ClassCreator struct {
		Span
		Outer         Expr           `json:"outer,omitempty" yaml:"outer,omitempty"`
		TypeArguments *TypeArguments `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`
		Type          *ReferenceType `json:"type" yaml:"type"`
		Arguments     []Expr         `json:"arguments" yaml:"arguments"`
		Body          *ClassBody     `json:"body,omitempty" yaml:"body,omitempty"`
	}

	// ArrayCreator is `new T[n][]` or `new T[] {...}`. Dimensions holds one
	// entry per bracket pair; unsized dimensions are nil.
	ArrayCreator struct {
		Span
		Type        Type              `json:"type" yaml:"type"`
		Dimensions  []Expr            `json:"dimensions" yaml:"dimensions"`
		Initializer *ArrayInitializer `json:"initializer,omitempty" yaml:"initializer,omitempty"`
	}

	// ArrayInitializer is a brace-enclosed list of expressions or nested
	// initializers.
	ArrayInitializer struct {
		Span
		Initializers []Expr `json:"initializers" yaml:"initializers"`
	}

	ArrayAccess struct {
		Span
		Array Expr `json:"array" yaml:"array"`
		Index Expr `json:"index" yaml:"index"`
	}

	BinaryOperation struct {
		Span
		Operator string `json:"operator" yaml:"operator"`
		Left     Expr   `json:"left" yaml:"left"`
		Right    Expr   `json:"right" yaml:"right"`
	}

	InstanceOf struct {
		Span
		Expr Expr `json:"expr" yaml:"expr"`
		Type Type `json:"type" yaml:"type"`
	}

	// UnaryOperation is a prefix operator: + - ! ~ ++ --.
	UnaryOperation struct {
		Span
		Operator string `json:"operator" yaml:"operator"`
		Operand  Expr   `json:"operand" yaml:"operand"`
	}

	// PostfixOperation is x++ or x--.
	PostfixOperation struct {
		Span
		Operator string `json:"operator" yaml:"operator"`
		Operand  Expr   `json:"operand" yaml:"operand"`
	}

	// Cast is (Type) expr. Bounds holds the additional interface types of an
	// intersection cast (T & I1 & I2).
	Cast struct {
		Span
		Type   Type   `json:"type" yaml:"type"`
		Bounds []Type `json:"bounds,omitempty" yaml:"bounds,omitempty"`
		Expr   Expr   `json:"expr" yaml:"expr"`
	}

	Assignment struct {
		Span
		Operator string `json:"operator" yaml:"operator"`
		Target   Expr   `json:"target" yaml:"target"`
		Value    Expr   `json:"value" yaml:"value"`
	}

	Ternary struct {
		Span
		Condition Expr `json:"condition" yaml:"condition"`
		IfTrue    Expr `json:"ifTrue" yaml:"ifTrue"`
		IfFalse   Expr `json:"ifFalse" yaml:"ifFalse"`
	}

	// Lambda parameters are *FormalParameter or *InferredParameter. Body is
	// an Expr or a *Block.
	Lambda struct {
		Span
		Parameters []Node `json:"parameters" yaml:"parameters"`
		Body       Node   `json:"body" yaml:"body"`
	}

	// MethodReference is target::method or target::new. Target is an Expr,
	// or a Type when the left side can only be read as a type (int[]::clone,
	// List<String>::size).
	MethodReference struct {
		Span
		Target        Node           `json:"target" yaml:"target"`
		TypeArguments *TypeArguments `json:"typeArguments,omitempty" yaml:"typeArguments,omitempty"`
		Method        *Identifier    `json:"method" yaml:"method"`
	}

	// ClassReference is a class literal: T.class.
	ClassReference struct {
		Span
		Type Type `json:"type" yaml:"type"`
	}

	// VoidClassReference is void.class.
	VoidClassReference struct {
		Span
	}
)

func (*Literal) Kind() NodeKind                       { return KindLiteral }
func (*This) Kind() NodeKind                          { return KindThis }
func (*Super) Kind() NodeKind                         { return KindSuper }
func (*MemberReference) Kind() NodeKind               { return KindMemberReference }
func (*MethodInvocation) Kind() NodeKind              { return KindMethodInvocation }
func (*ExplicitConstructorInvocation) Kind() NodeKind { return KindExplicitConstructorInvocation }
func (*ClassCreator) Kind() NodeKind                  { return KindClassCreator }
func (*ArrayCreator) Kind() NodeKind                  { return KindArrayCreator }
func (*ArrayInitializer) Kind() NodeKind              { return KindArrayInitializer }
func (*ArrayAccess) Kind() NodeKind                   { return KindArrayAccess }
func (*BinaryOperation) Kind() NodeKind               { return KindBinaryOperation }
func (*InstanceOf) Kind() NodeKind                    { return KindInstanceOf }
func (*UnaryOperation) Kind() NodeKind                { return KindUnaryOperation }
func (*PostfixOperation) Kind() NodeKind              { return KindPostfixOperation }
func (*Cast) Kind() NodeKind                          { return KindCast }
func (*Assignment) Kind() NodeKind                    { return KindAssignment }
func (*Ternary) Kind() NodeKind                       { return KindTernary }
func (*Lambda) Kind() NodeKind                        { return KindLambda }
func (*MethodReference) Kind() NodeKind               { return KindMethodReference }
func (*ClassReference) Kind() NodeKind                { return KindClassReference }
func (*VoidClassReference) Kind() NodeKind            { return KindVoidClassReference }

func (*Literal) exprNode()                       {}
func (*This) exprNode()                          {}
func (*Super) exprNode()                         {}
func (*MemberReference) exprNode()               {}
func (*MethodInvocation) exprNode()              {}
func (*ExplicitConstructorInvocation) exprNode() {}
func (*ClassCreator) exprNode()                  {}
func (*ArrayCreator) exprNode()                  {}
func (*ArrayInitializer) exprNode()              {}
func (*ArrayAccess) exprNode()                   {}
func (*BinaryOperation) exprNode()               {}
func (*InstanceOf) exprNode()                    {}
func (*UnaryOperation) exprNode()                {}
func (*PostfixOperation) exprNode()              {}
func (*Cast) exprNode()                          {}
func (*Assignment) exprNode()                    {}
func (*Ternary) exprNode()                       {}
func (*Lambda) exprNode()                        {}
func (*MethodReference) exprNode()               {}
func (*ClassReference) exprNode()                {}
func (*VoidClassReference) exprNode()            {}
