package format

import (
	"bytes"
	"encoding/json"
	"io"

	"github.com/dhamidi/javasyntax/java/ast"
)

// JSONEncoder writes a syntax tree as indented JSON.
type JSONEncoder struct {
	w         io.Writer
	node      ast.Node
	Positions bool
}

func NewJSONEncoder(w io.Writer) *JSONEncoder {
	return &JSONEncoder{w: w, Positions: true}
}

func (e *JSONEncoder) Encode(node ast.Node) error {
	e.node = node
	data, err := e.MarshalText()
	if err != nil {
		return err
	}
	if _, err := e.w.Write(data); err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

func (e *JSONEncoder) MarshalText() ([]byte, error) {
	if e.node == nil {
		return []byte("null"), nil
	}
	return json.MarshalIndent(toObject(e.node, e.Positions), "", "  ")
}

// MarshalJSON writes the keys in insertion order.
func (o *object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[i])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
