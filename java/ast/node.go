// Package ast declares the typed syntax tree produced by the Java parser.
//
// Every node records the span of source it was parsed from: Pos is the first
// character and End the last character (inclusive). Nodes are plain data; the
// only behaviour they carry is what tree walkers need (see Walk and Inspect).
//
// The variant set is closed. Each syntactic family has an interface with an
// unexported marker method, so a type switch over, say, Expr can be checked
// against the complete list of expression kinds below.
package ast

import "github.com/dhamidi/javasyntax/java/token"

type NodeKind int

const (
	KindInvalid NodeKind = iota

	// Compilation unit level
	KindCompilationUnit
	KindPackageDeclaration
	KindImport
	KindQualifiedName
	KindIdentifier

	// Modifiers and annotations
	KindModifiers
	KindModifier
	KindAnnotation
	KindElementValuePair
	KindElementArrayValue

	// Type declarations
	KindClassDeclaration
	KindInterfaceDeclaration
	KindEnumDeclaration
	KindEnumBody
	KindEnumConstant
	KindAnnotationDeclaration
	KindAnnotationMethod
	KindClassBody

	// Members
	KindFieldDeclaration
	KindMethodDeclaration
	KindConstructorDeclaration
	KindInitializer
	KindFormalParameter
	KindInferredParameter
	KindVariableDeclarator

	// Types
	KindPrimitiveType
	KindReferenceType
	KindArrayType
	KindWildcard
	KindTypeArguments
	KindTypeParameter
	KindTypeParameters

	// Statements
	KindBlock
	KindLocalVariableDeclaration
	KindEmptyStatement
	KindExpressionStatement
	KindIfStatement
	KindWhileStatement
	KindDoStatement
	KindForStatement
	KindEnhancedForStatement
	KindLabeledStatement
	KindSwitchStatement
	KindSwitchCase
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindThrowStatement
	KindSynchronizedStatement
	KindTryStatement
	KindTryResource
	KindCatchClause
	KindCatchClauseParameter
	KindAssertStatement

	// Expressions
	KindLiteral
	KindThis
	KindSuper
	KindMemberReference
	KindMethodInvocation
	KindExplicitConstructorInvocation
	KindClassCreator
	KindArrayCreator
	KindArrayInitializer
	KindArrayAccess
	KindBinaryOperation
	KindInstanceOf
	KindUnaryOperation
	KindPostfixOperation
	KindCast
	KindAssignment
	KindTernary
	KindLambda
	KindMethodReference
	KindClassReference
	KindVoidClassReference
)

var nodeKindNames = map[NodeKind]string{
	KindInvalid:                       "Invalid",
	KindCompilationUnit:               "CompilationUnit",
	KindPackageDeclaration:            "PackageDeclaration",
	KindImport:                        "Import",
	KindQualifiedName:                 "QualifiedName",
	KindIdentifier:                    "Identifier",
	KindModifiers:                     "Modifiers",
	KindModifier:                      "Modifier",
	KindAnnotation:                    "Annotation",
	KindElementValuePair:              "ElementValuePair",
	KindElementArrayValue:             "ElementArrayValue",
	KindClassDeclaration:              "ClassDeclaration",
	KindInterfaceDeclaration:          "InterfaceDeclaration",
	KindEnumDeclaration:               "EnumDeclaration",
	KindEnumBody:                      "EnumBody",
	KindEnumConstant:                  "EnumConstant",
	KindAnnotationDeclaration:         "AnnotationDeclaration",
	KindAnnotationMethod:              "AnnotationMethod",
	KindClassBody:                     "ClassBody",
	KindFieldDeclaration:              "FieldDeclaration",
	KindMethodDeclaration:             "MethodDeclaration",
	KindConstructorDeclaration:        "ConstructorDeclaration",
	KindInitializer:                   "Initializer",
	KindFormalParameter:               "FormalParameter",
	KindInferredParameter:             "InferredParameter",
	KindVariableDeclarator:            "VariableDeclarator",
	KindPrimitiveType:                 "PrimitiveType",
	KindReferenceType:                 "ReferenceType",
	KindArrayType:                     "ArrayType",
	KindWildcard:                      "Wildcard",
	KindTypeArguments:                 "TypeArguments",
	KindTypeParameter:                 "TypeParameter",
	KindTypeParameters:                "TypeParameters",
	KindBlock:                         "Block",
	KindLocalVariableDeclaration:      "LocalVariableDeclaration",
	KindEmptyStatement:                "EmptyStatement",
	KindExpressionStatement:           "ExpressionStatement",
	KindIfStatement:                   "IfStatement",
	KindWhileStatement:                "WhileStatement",
	KindDoStatement:                   "DoStatement",
	KindForStatement:                  "ForStatement",
	KindEnhancedForStatement:          "EnhancedForStatement",
	KindLabeledStatement:              "LabeledStatement",
	KindSwitchStatement:               "SwitchStatement",
	KindSwitchCase:                    "SwitchCase",
	KindReturnStatement:               "ReturnStatement",
	KindBreakStatement:                "BreakStatement",
	KindContinueStatement:             "ContinueStatement",
	KindThrowStatement:                "ThrowStatement",
	KindSynchronizedStatement:         "SynchronizedStatement",
	KindTryStatement:                  "TryStatement",
	KindTryResource:                   "TryResource",
	KindCatchClause:                   "CatchClause",
	KindCatchClauseParameter:          "CatchClauseParameter",
	KindAssertStatement:               "AssertStatement",
	KindLiteral:                       "Literal",
	KindThis:                          "This",
	KindSuper:                         "Super",
	KindMemberReference:               "MemberReference",
	KindMethodInvocation:              "MethodInvocation",
	KindExplicitConstructorInvocation: "ExplicitConstructorInvocation",
	KindClassCreator:                  "ClassCreator",
	KindArrayCreator:                  "ArrayCreator",
	KindArrayInitializer:              "ArrayInitializer",
	KindArrayAccess:                   "ArrayAccess",
	KindBinaryOperation:               "BinaryOperation",
	KindInstanceOf:                    "InstanceOf",
	KindUnaryOperation:                "UnaryOperation",
	KindPostfixOperation:              "PostfixOperation",
	KindCast:                          "Cast",
	KindAssignment:                    "Assignment",
	KindTernary:                       "Ternary",
	KindLambda:                        "Lambda",
	KindMethodReference:               "MethodReference",
	KindClassReference:                "ClassReference",
	KindVoidClassReference:            "VoidClassReference",
}

func (k NodeKind) String() string {
	if name, ok := nodeKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Span is embedded in every node. EndPos is inclusive.
type Span struct {
	StartPos token.Position `json:"-" yaml:"-"`
	EndPos   token.Position `json:"-" yaml:"-"`
}

func (s Span) Pos() token.Position { return s.StartPos }
func (s Span) End() token.Position { return s.EndPos }

func (s *Span) span() *Span { return s }

// Node is implemented by every syntax tree node.
type Node interface {
	Pos() token.Position
	End() token.Position
	Kind() NodeKind
	span() *Span
}

// SetSpan overwrites the recorded span of n. The parser uses it to widen a
// parenthesized expression to include its parentheses.
func SetSpan(n Node, pos, end token.Position) {
	s := n.span()
	s.StartPos = pos
	s.EndPos = end
}

// Contains reports whether the span of inner lies within the span of outer.
func Contains(outer, inner Node) bool {
	return outer.Pos().Compare(inner.Pos()) <= 0 && inner.End().Compare(outer.End()) <= 0
}

// Expr is an expression node.
type Expr interface {
	Node
	exprNode()
}

// Stmt is a statement that may appear in a block.
type Stmt interface {
	Node
	stmtNode()
}

// Decl is a member of a class, interface, enum or annotation body.
type Decl interface {
	Node
	declNode()
}

// TypeDecl is a class, interface, enum or annotation type declaration.
type TypeDecl interface {
	Decl
	TypeName() string
}

// TypeArg is a type argument: a reference or array type, or a wildcard.
type TypeArg interface {
	Node
	typeArgNode()
}

// Type is a primitive, reference or array type.
type Type interface {
	TypeArg
	typeNode()
}

// Identifier is a simple name together with its position.
type Identifier struct {
	Span
	Name string `json:"name" yaml:"name"`
}

func (*Identifier) Kind() NodeKind { return KindIdentifier }

func (id *Identifier) String() string {
	if id == nil {
		return ""
	}
	return id.Name
}

// QualifiedName is a dotted sequence of identifiers as written in package,
// import and annotation names.
type QualifiedName struct {
	Span
	Parts []*Identifier `json:"parts" yaml:"parts"`
}

func (*QualifiedName) Kind() NodeKind { return KindQualifiedName }

func (q *QualifiedName) String() string {
	if q == nil {
		return ""
	}
	s := ""
	for i, part := range q.Parts {
		if i > 0 {
			s += "."
		}
		s += part.Name
	}
	return s
}
