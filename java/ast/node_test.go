package ast

import (
	"testing"

	"github.com/dhamidi/javasyntax/java/token"
)

func TestNodeKindString(t *testing.T) {
	tests := []struct {
		kind NodeKind
		want string
	}{
		{KindInvalid, "Invalid"},
		{KindCompilationUnit, "CompilationUnit"},
		{KindClassDeclaration, "ClassDeclaration"},
		{KindLocalVariableDeclaration, "LocalVariableDeclaration"},
		{KindCatchClause, "CatchClause"},
		{KindLiteral, "Literal"},
		{KindMemberReference, "MemberReference"},
		{KindMethodInvocation, "MethodInvocation"},
		{KindExplicitConstructorInvocation, "ExplicitConstructorInvocation"},
		{KindVoidClassReference, "VoidClassReference"},
		{NodeKind(9999), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.kind.String(); got != tt.want {
				t.Errorf("NodeKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
			}
		})
	}
}

func TestEveryNodeKindHasName(t *testing.T) {
	for k := KindInvalid; k <= KindVoidClassReference; k++ {
		if k.String() == "Unknown" {
			t.Errorf("NodeKind(%d) has no name", k)
		}
	}
}

func span(l1, c1, l2, c2 int) Span {
	return Span{StartPos: token.Pos(l1, c1), EndPos: token.Pos(l2, c2)}
}

func TestSetSpan(t *testing.T) {
	bin := &BinaryOperation{Span: span(1, 2, 1, 6), Operator: "+"}
	SetSpan(bin, token.Pos(1, 1), token.Pos(1, 7))

	if got := bin.Pos(); got != token.Pos(1, 1) {
		t.Errorf("Pos() = %v, want 1:1", got)
	}
	if got := bin.End(); got != token.Pos(1, 7) {
		t.Errorf("End() = %v, want 1:7", got)
	}
}

func TestContains(t *testing.T) {
	outer := &Block{Span: span(1, 1, 3, 1)}
	tests := []struct {
		name  string
		inner Node
		want  bool
	}{
		{"inside", &EmptyStatement{Span: span(2, 3, 2, 3)}, true},
		{"same", &EmptyStatement{Span: span(1, 1, 3, 1)}, true},
		{"starts before", &EmptyStatement{Span: span(0, 9, 2, 1)}, false},
		{"ends after", &EmptyStatement{Span: span(2, 1, 3, 2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Contains(outer, tt.inner); got != tt.want {
				t.Errorf("Contains() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTypeString(t *testing.T) {
	str := &ReferenceType{Name: &Identifier{Name: "String"}}
	list := &ReferenceType{
		Qualifier: &ReferenceType{Qualifier: &ReferenceType{Name: &Identifier{Name: "java"}}, Name: &Identifier{Name: "util"}},
		Name:      &Identifier{Name: "List"},
		Arguments: &TypeArguments{List: []TypeArg{&Wildcard{BoundKind: "extends", Bound: str}}},
	}

	tests := []struct {
		typ  TypeArg
		want string
	}{
		{&PrimitiveType{Name: "int"}, "int"},
		{&ArrayType{Element: &ArrayType{Element: &PrimitiveType{Name: "byte"}}}, "byte[][]"},
		{str, "String"},
		{list, "java.util.List<? extends String>"},
		{&Wildcard{}, "?"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := TypeString(tt.typ); got != tt.want {
				t.Errorf("TypeString() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDimensions(t *testing.T) {
	elem := &PrimitiveType{Name: "int"}
	typ := &ArrayType{Element: &ArrayType{Element: elem}}

	got, n := Dimensions(typ)
	if got != Type(elem) || n != 2 {
		t.Errorf("Dimensions() = %v, %d, want int, 2", got, n)
	}
}

func TestModifiersHas(t *testing.T) {
	var none *Modifiers
	if none.Has("public") {
		t.Error("nil Modifiers should have no keywords")
	}
	mods := &Modifiers{Keywords: []*Modifier{{Keyword: "public"}, {Keyword: "static"}}}
	if !mods.Has("static") {
		t.Error("expected static")
	}
	if mods.Has("final") {
		t.Error("did not expect final")
	}
}
