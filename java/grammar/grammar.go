// Package grammar carries the EBNF grammar of the Java syntax the parser
// accepts, and checks grammars written in the golang.org/x/exp/ebnf
// notation.
package grammar

import (
	"bytes"
	_ "embed"
	"io"
	"reflect"
	"sort"

	"github.com/pkg/errors"
	"golang.org/x/exp/ebnf"
)

// Start is the start production of the Java grammar.
const Start = "CompilationUnit"

//go:embed java.ebnf
var source []byte

// Source returns the text of the Java grammar.
func Source() []byte {
	return bytes.Clone(source)
}

// Load parses and verifies the Java grammar.
func Load() (ebnf.Grammar, error) {
	return Check("java.ebnf", bytes.NewReader(source), Start)
}

// Check parses the grammar in r and, if start is not empty, verifies that
// every production is defined and reachable from start.
func Check(filename string, r io.Reader, start string) (ebnf.Grammar, error) {
	g, err := ebnf.Parse(filename, r)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %s", filename)
	}
	if start == "" {
		return g, nil
	}
	if err := ebnf.Verify(g, start); err != nil {
		return nil, errors.Wrapf(err, "verify %s", filename)
	}
	return g, nil
}

// Errors splits an error returned by Check into the individual problems
// reported by the ebnf package.
func Errors(err error) []error {
	if err == nil {
		return nil
	}
	v := reflect.ValueOf(errors.Cause(err))
	if v.Kind() != reflect.Slice {
		return []error{err}
	}
	out := make([]error, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		if e, ok := v.Index(i).Interface().(error); ok {
			out = append(out, e)
		}
	}
	return out
}

// Terminals returns the sorted, distinct literal tokens of the syntactic
// productions of g. Lexical productions are skipped.
func Terminals(g ebnf.Grammar) []string {
	seen := make(map[string]bool)
	for name, prod := range g {
		if isLexical(name) {
			continue
		}
		collect(prod.Expr, seen)
	}
	out := make([]string, 0, len(seen))
	for tok := range seen {
		out = append(out, tok)
	}
	sort.Strings(out)
	return out
}

func collect(expr ebnf.Expression, seen map[string]bool) {
	switch x := expr.(type) {
	case ebnf.Alternative:
		for _, e := range x {
			collect(e, seen)
		}
	case ebnf.Sequence:
		for _, e := range x {
			collect(e, seen)
		}
	case *ebnf.Group:
		collect(x.Body, seen)
	case *ebnf.Option:
		collect(x.Body, seen)
	case *ebnf.Repetition:
		collect(x.Body, seen)
	case *ebnf.Token:
		seen[x.String] = true
	}
}

func isLexical(name string) bool {
	return name != "" && name[0] >= 'a' && name[0] <= 'z'
}
