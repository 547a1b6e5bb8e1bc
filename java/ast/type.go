package ast

import "strings"

type (
	// PrimitiveType is one of boolean, byte, char, short, int, long, float
	// or double.
	PrimitiveType struct {
		Span
		Name string `json:"name" yaml:"name"`
	}

	// ReferenceType is a possibly qualified, possibly parameterized class or
	// interface type. java.util.Map.Entry<K, V> is Entry with arguments and
	// the qualifier java.util.Map.
	ReferenceType struct {
		Span
		Qualifier *ReferenceType `json:"qualifier,omitempty" yaml:"qualifier,omitempty"`
		Name      *Identifier    `json:"name" yaml:"name"`
		Arguments *TypeArguments `json:"arguments,omitempty" yaml:"arguments,omitempty"`
	}

	// ArrayType adds one dimension to Element.
	ArrayType struct {
		Span
		Element Type `json:"element" yaml:"element"`
	}

	// Wildcard is ?, ? extends T or ? super T. BoundKind is "", "extends" or
	// "super".
	Wildcard struct {
		Span
		BoundKind string `json:"boundKind,omitempty" yaml:"boundKind,omitempty"`
		Bound     Type   `json:"bound,omitempty" yaml:"bound,omitempty"`
	}

	// TypeArguments is <...> following a type name or preceding a generic
	// method name. The diamond <> has an empty list.
	TypeArguments struct {
		Span
		List []TypeArg `json:"list" yaml:"list"`
	}

	TypeParameter struct {
		Span
		Name   *Identifier `json:"name" yaml:"name"`
		Bounds []Type      `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	}

	TypeParameters struct {
		Span
		List []*TypeParameter `json:"list" yaml:"list"`
	}
)

func (*PrimitiveType) Kind() NodeKind  { return KindPrimitiveType }
func (*ReferenceType) Kind() NodeKind  { return KindReferenceType }
func (*ArrayType) Kind() NodeKind      { return KindArrayType }
func (*Wildcard) Kind() NodeKind       { return KindWildcard }
func (*TypeArguments) Kind() NodeKind  { return KindTypeArguments }
func (*TypeParameter) Kind() NodeKind  { return KindTypeParameter }
func (*TypeParameters) Kind() NodeKind { return KindTypeParameters }

func (*PrimitiveType) typeArgNode() {}
func (*ReferenceType) typeArgNode() {}
func (*ArrayType) typeArgNode()     {}
func (*Wildcard) typeArgNode()      {}

func (*PrimitiveType) typeNode() {}
func (*ReferenceType) typeNode() {}
func (*ArrayType) typeNode()     {}

func (t *PrimitiveType) String() string { return t.Name }

func (t *ReferenceType) String() string {
	var sb strings.Builder
	if t.Qualifier != nil {
		sb.WriteString(t.Qualifier.String())
		sb.WriteByte('.')
	}
	sb.WriteString(t.Name.String())
	if t.Arguments != nil {
		sb.WriteString(t.Arguments.String())
	}
	return sb.String()
}

func (t *ArrayType) String() string { return TypeString(t.Element) + "[]" }

func (w *Wildcard) String() string {
	if w.Bound == nil {
		return "?"
	}
	return "? " + w.BoundKind + " " + TypeString(w.Bound)
}

func (a *TypeArguments) String() string {
	parts := make([]string, len(a.List))
	for i, arg := range a.List {
		parts[i] = TypeString(arg)
	}
	return "<" + strings.Join(parts, ", ") + ">"
}

// TypeString renders a type or type argument as it would be written in
// source, without annotations.
func TypeString(t TypeArg) string {
	switch t := t.(type) {
	case nil:
		return ""
	case *PrimitiveType:
		return t.String()
	case *ReferenceType:
		return t.String()
	case *ArrayType:
		return t.String()
	case *Wildcard:
		return t.String()
	}
	return ""
}

// Dimensions returns the element type of t and the number of array
// dimensions wrapped around it.
func Dimensions(t Type) (Type, int) {
	n := 0
	for {
		arr, ok := t.(*ArrayType)
		if !ok {
			return t, n
		}
		t = arr.Element
		n++
	}
}
