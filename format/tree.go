package format

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/dhamidi/javasyntax/java/ast"
)

// TreeEncoder writes one line per node, indented by depth:
//
//	CompilationUnit 1:1-1:10
//	  types[0]: ClassDeclaration 1:1-1:10
//	    name: Identifier 1:7-1:7 name="A"
//
// Scalar fields are printed after the node's kind; child nodes follow on
// their own lines, labelled with the field they are stored in.
type TreeEncoder struct {
	w         io.Writer
	node      ast.Node
	Positions bool
	Indent    string
}

func NewTreeEncoder(w io.Writer) *TreeEncoder {
	return &TreeEncoder{w: w, Positions: true, Indent: "  "}
}

func (e *TreeEncoder) Encode(node ast.Node) error {
	e.node = node
	text, err := e.MarshalText()
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	return err
}

func (e *TreeEncoder) MarshalText() ([]byte, error) {
	var sb strings.Builder
	if e.node != nil {
		e.writeNode(&sb, "", e.node, 0)
	}
	return []byte(sb.String()), nil
}

func (e *TreeEncoder) writeNode(sb *strings.Builder, label string, n ast.Node, depth int) {
	sb.WriteString(strings.Repeat(e.Indent, depth))
	if label != "" {
		sb.WriteString(label)
		sb.WriteString(": ")
	}
	sb.WriteString(n.Kind().String())
	if e.Positions {
		fmt.Fprintf(sb, " %s-%s", n.Pos(), n.End())
	}

	type child struct {
		label string
		node  ast.Node
	}
	var children []child
	for _, f := range nodeFields(n) {
		if c, ok := asNode(f.value); ok {
			children = append(children, child{f.name, c})
			continue
		}
		if f.value.Kind() == reflect.Slice {
			for i := 0; i < f.value.Len(); i++ {
				label := fmt.Sprintf("%s[%d]", f.name, i)
				if c, ok := asNode(f.value.Index(i)); ok {
					children = append(children, child{label, c})
				} else {
					children = append(children, child{label, nil})
				}
			}
			continue
		}
		if isNil(f.value) {
			continue
		}
		switch v := scalar(f.value).(type) {
		case string:
			fmt.Fprintf(sb, " %s=%q", f.name, v)
		default:
			fmt.Fprintf(sb, " %s=%v", f.name, v)
		}
	}
	sb.WriteByte('\n')

	for _, c := range children {
		if c.node == nil {
			fmt.Fprintf(sb, "%s%s: nil\n", strings.Repeat(e.Indent, depth+1), c.label)
			continue
		}
		e.writeNode(sb, c.label, c.node, depth+1)
	}
}
