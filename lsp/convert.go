package lsp

import (
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/parser"
	"github.com/dhamidi/javasyntax/java/token"
)

// text maps 1-based line/character positions onto LSP positions, which are
// 0-based and count UTF-16 code units.
type text struct {
	src    []byte
	starts []int
}

func newText(src []byte) *text {
	t := &text{src: src, starts: []int{0}}
	for i := 0; i < len(src); i++ {
		switch src[i] {
		case '\r':
			if i+1 < len(src) && src[i+1] == '\n' {
				i++
			}
			t.starts = append(t.starts, i+1)
		case '\n':
			t.starts = append(t.starts, i+1)
		}
	}
	return t
}

func (t *text) line(n int) []byte {
	if n < 0 || n >= len(t.starts) {
		return nil
	}
	end := len(t.src)
	if n+1 < len(t.starts) {
		end = t.starts[n+1]
	}
	return t.src[t.starts[n]:end]
}

// position converts pos. With through set the character at pos is included,
// which turns an inclusive end into an exclusive one.
func (t *text) position(pos token.Position, through bool) protocol.Position {
	if !pos.IsValid() {
		return protocol.Position{}
	}
	line := t.line(pos.Line - 1)
	want := pos.Column - 1
	if through {
		want++
	}
	units := 0
	for i := 0; i < want && len(line) > 0; i++ {
		r, size := utf8.DecodeRune(line)
		if r == '\r' || r == '\n' {
			break
		}
		units += utf16.RuneLen(r)
		line = line[size:]
	}
	return protocol.Position{
		Line:      protocol.UInteger(pos.Line - 1),
		Character: protocol.UInteger(units),
	}
}

// rangeOf converts an inclusive span into an LSP range.
func (t *text) rangeOf(start, end token.Position) protocol.Range {
	return protocol.Range{
		Start: t.position(start, false),
		End:   t.position(end, true),
	}
}

func (t *text) nodeRange(n ast.Node) protocol.Range {
	return t.rangeOf(n.Pos(), n.End())
}

// diagnostics converts a parse error into LSP diagnostics. Errors without
// a source position are reported at the start of the document.
func (t *text) diagnostics(err error) []protocol.Diagnostic {
	if err == nil {
		return []protocol.Diagnostic{}
	}
	pos, ok := parser.ErrorPosition(err)
	msg := err.Error()
	if ok {
		if _, rest, found := strings.Cut(msg, pos.String()+": "); found {
			msg = rest
		}
	} else {
		pos = token.Pos(1, 1)
	}
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return []protocol.Diagnostic{{
		Range:    t.rangeOf(pos, pos),
		Severity: &severity,
		Source:   &source,
		Message:  msg,
	}}
}

// symbols lists the type declarations of unit with their members.
func (t *text) symbols(unit *ast.CompilationUnit) []protocol.DocumentSymbol {
	symbols := []protocol.DocumentSymbol{}
	if unit == nil {
		return symbols
	}
	if unit.Package != nil {
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           unit.Package.Name.String(),
			Kind:           protocol.SymbolKindPackage,
			Range:          t.nodeRange(unit.Package),
			SelectionRange: t.nodeRange(unit.Package.Name),
		})
	}
	for _, decl := range unit.Types {
		if s, ok := t.declSymbol(decl); ok {
			symbols = append(symbols, s)
		}
	}
	return symbols
}

func (t *text) typeSymbol(n ast.Node, name *ast.Identifier, kind protocol.SymbolKind, members []ast.Decl) protocol.DocumentSymbol {
	s := protocol.DocumentSymbol{
		Name:           name.Name,
		Kind:           kind,
		Range:          t.nodeRange(n),
		SelectionRange: t.nodeRange(name),
	}
	for _, m := range members {
		if child, ok := t.declSymbol(m); ok {
			s.Children = append(s.Children, child)
		}
	}
	return s
}

func (t *text) declSymbol(decl ast.Decl) (protocol.DocumentSymbol, bool) {
	switch d := decl.(type) {
	case *ast.ClassDeclaration:
		return t.typeSymbol(d, d.Name, protocol.SymbolKindClass, d.Body.Declarations), true
	case *ast.InterfaceDeclaration:
		return t.typeSymbol(d, d.Name, protocol.SymbolKindInterface, d.Body.Declarations), true
	case *ast.AnnotationDeclaration:
		return t.typeSymbol(d, d.Name, protocol.SymbolKindInterface, d.Body.Declarations), true
	case *ast.EnumDeclaration:
		s := t.typeSymbol(d, d.Name, protocol.SymbolKindEnum, nil)
		for _, c := range d.Body.Constants {
			s.Children = append(s.Children, protocol.DocumentSymbol{
				Name:           c.Name.Name,
				Kind:           protocol.SymbolKindEnumMember,
				Range:          t.nodeRange(c),
				SelectionRange: t.nodeRange(c.Name),
			})
		}
		for _, m := range d.Body.Declarations {
			if child, ok := t.declSymbol(m); ok {
				s.Children = append(s.Children, child)
			}
		}
		return s, true
	case *ast.MethodDeclaration:
		detail := signature(d.Parameters)
		return protocol.DocumentSymbol{
			Name:           d.Name.Name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindMethod,
			Range:          t.nodeRange(d),
			SelectionRange: t.nodeRange(d.Name),
		}, true
	case *ast.ConstructorDeclaration:
		detail := signature(d.Parameters)
		return protocol.DocumentSymbol{
			Name:           d.Name.Name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindConstructor,
			Range:          t.nodeRange(d),
			SelectionRange: t.nodeRange(d.Name),
		}, true
	case *ast.AnnotationMethod:
		detail := ast.TypeString(d.Type)
		return protocol.DocumentSymbol{
			Name:           d.Name.Name,
			Detail:         &detail,
			Kind:           protocol.SymbolKindMethod,
			Range:          t.nodeRange(d),
			SelectionRange: t.nodeRange(d.Name),
		}, true
	case *ast.FieldDeclaration:
		// int a, b; is a single symbol named "a, b"
		names := make([]string, len(d.Declarators))
		for i, v := range d.Declarators {
			names[i] = v.Name.Name
		}
		detail := ast.TypeString(d.Type)
		return protocol.DocumentSymbol{
			Name:           strings.Join(names, ", "),
			Detail:         &detail,
			Kind:           protocol.SymbolKindField,
			Range:          t.nodeRange(d),
			SelectionRange: t.nodeRange(d.Declarators[0].Name),
		}, true
	}
	return protocol.DocumentSymbol{}, false
}

func signature(params []*ast.FormalParameter) string {
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = ast.TypeString(p.Type)
		if p.Varargs {
			parts[i] += "..."
		}
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
