package token

import "fmt"

// Position is a 1-based line/column location in source text. Columns count
// characters (Unicode code points).
type Position struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

// Pos is shorthand for Position{Line: line, Column: column}.
func Pos(line, column int) Position {
	return Position{Line: line, Column: column}
}

// IsValid reports whether the position refers to a real source location.
func (p Position) IsValid() bool {
	return p.Line >= 1 && p.Column >= 1
}

// Compare returns -1, 0 or +1 depending on whether p is before, equal to or
// after q in source order.
func (p Position) Compare(q Position) int {
	switch {
	case p.Line < q.Line:
		return -1
	case p.Line > q.Line:
		return 1
	case p.Column < q.Column:
		return -1
	case p.Column > q.Column:
		return 1
	}
	return 0
}

func (p Position) Before(q Position) bool {
	return p.Compare(q) < 0
}

func (p Position) After(q Position) bool {
	return p.Compare(q) > 0
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}
