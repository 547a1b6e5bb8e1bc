// Package format renders Java syntax trees for people and tools.
//
// Every encoder walks the tree the same way: a node becomes its kind, its
// span (when positions are enabled) and its non-empty fields in declaration
// order. Field names follow the json tags of package ast.
package format

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

// Encoder writes one syntax tree to its underlying writer.
type Encoder interface {
	Encode(node ast.Node) error
}

// Names lists the formats accepted by New.
var Names = []string{"json", "yaml", "tree"}

// New returns the encoder registered under name.
func New(name string, w io.Writer, positions bool) (Encoder, error) {
	switch strings.ToLower(name) {
	case "json":
		e := NewJSONEncoder(w)
		e.Positions = positions
		return e, nil
	case "yaml", "yml":
		e := NewYAMLEncoder(w)
		e.Positions = positions
		return e, nil
	case "tree":
		e := NewTreeEncoder(w)
		e.Positions = positions
		return e, nil
	}
	return nil, fmt.Errorf("unknown format %q (want one of %s)", name, strings.Join(Names, ", "))
}

// object is a map that remembers insertion order.
type object struct {
	keys   []string
	values []any
}

func (o *object) set(key string, value any) {
	o.keys = append(o.keys, key)
	o.values = append(o.values, value)
}

type spanValue struct {
	Start token.Position `json:"start" yaml:"start"`
	End   token.Position `json:"end" yaml:"end"`
}

var (
	nodeType     = reflect.TypeOf((*ast.Node)(nil)).Elem()
	stringerType = reflect.TypeOf((*fmt.Stringer)(nil)).Elem()
)

// field is one named child of a node.
type field struct {
	name  string
	value reflect.Value
}

// nodeFields returns the fields of n that carry information, skipping the
// embedded span and empty optional fields.
func nodeFields(n ast.Node) []field {
	v := reflect.ValueOf(n)
	for v.Kind() == reflect.Pointer {
		v = v.Elem()
	}
	if v.Kind() != reflect.Struct {
		return nil
	}
	t := v.Type()
	var fields []field
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous || !sf.IsExported() {
			continue
		}
		name, omitempty := parseTag(sf)
		if name == "-" {
			continue
		}
		fv := v.Field(i)
		if omitempty && (fv.IsZero() || fv.Kind() == reflect.Slice && fv.Len() == 0) {
			continue
		}
		fields = append(fields, field{name: name, value: fv})
	}
	return fields
}

func parseTag(sf reflect.StructField) (string, bool) {
	tag, ok := sf.Tag.Lookup("json")
	if !ok {
		return lowerFirst(sf.Name), false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = lowerFirst(sf.Name)
	}
	return name, strings.Contains(opts, "omitempty")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

// asNode reports whether v holds a non-nil syntax tree node.
func asNode(v reflect.Value) (ast.Node, bool) {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer:
		if v.IsNil() {
			return nil, false
		}
	}
	if !v.CanInterface() || !v.Type().Implements(nodeType) {
		if v.Kind() == reflect.Interface {
			return asNode(v.Elem())
		}
		return nil, false
	}
	n, ok := v.Interface().(ast.Node)
	return n, ok
}

// isNil reports whether v is a nil pointer, interface or slice.
func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map:
		return v.IsNil()
	case reflect.Invalid:
		return true
	}
	return false
}

// scalar converts a leaf value into a plain Go value.
func scalar(v reflect.Value) any {
	if v.Kind() != reflect.String && v.Type().Implements(stringerType) {
		return v.Interface().(fmt.Stringer).String()
	}
	switch v.Kind() {
	case reflect.String:
		return v.String()
	case reflect.Bool:
		return v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int()
	}
	return v.Interface()
}

// toObject converts a node into an ordered object tree.
func toObject(n ast.Node, positions bool) *object {
	obj := &object{}
	obj.set("kind", n.Kind().String())
	if positions {
		obj.set("span", spanValue{Start: n.Pos(), End: n.End()})
	}
	for _, f := range nodeFields(n) {
		obj.set(f.name, toValue(f.value, positions))
	}
	return obj
}

func toValue(v reflect.Value, positions bool) any {
	if n, ok := asNode(v); ok {
		return toObject(n, positions)
	}
	if isNil(v) && v.Kind() != reflect.Slice {
		return nil
	}
	if v.Kind() == reflect.Slice {
		items := make([]any, v.Len())
		for i := range items {
			items[i] = toValue(v.Index(i), positions)
		}
		return items
	}
	return scalar(v)
}
