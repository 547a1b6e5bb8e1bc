package lsp

import (
	"regexp"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

func (ls *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	ls.mu.Lock()
	doc, ok := ls.docs[params.TextDocument.URI]
	ls.mu.Unlock()
	if !ok || doc.unit == nil {
		return nil, nil
	}
	return doc.text.hover(doc.unit, doc.text.tokenPosition(params.Position)), nil
}

// tokenPosition is the inverse of position.
func (t *text) tokenPosition(p protocol.Position) token.Position {
	line := t.line(int(p.Line))
	column := 1
	units := 0
	for len(line) > 0 && units < int(p.Character) {
		r, size := utf8.DecodeRune(line)
		if r == '\r' || r == '\n' {
			break
		}
		units += utf16.RuneLen(r)
		line = line[size:]
		column++
	}
	return token.Pos(int(p.Line)+1, column)
}

// hover describes the declaration whose name is at pos.
func (t *text) hover(unit *ast.CompilationUnit, pos token.Position) *protocol.Hover {
	var found *protocol.Hover
	ast.Inspect(unit, func(n ast.Node) bool {
		if found != nil {
			return false
		}
		if n == nil || pos.Before(n.Pos()) || pos.After(n.End()) {
			return n == unit
		}
		name, header, doc := describe(n, pos)
		if name == nil {
			return true
		}
		value := "```java\n" + header + "\n```"
		if text := docText(doc); text != "" {
			value += "\n\n" + text
		}
		r := t.nodeRange(name)
		found = &protocol.Hover{
			Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: value},
			Range:    &r,
		}
		return false
	})
	return found
}

func within(id *ast.Identifier, pos token.Position) bool {
	return id != nil && !pos.Before(id.Pos()) && !pos.After(id.End())
}

// describe returns the name identifier, a one-line header and the doc
// comment of n when pos is on the name n declares.
func describe(n ast.Node, pos token.Position) (*ast.Identifier, string, string) {
	switch d := n.(type) {
	case *ast.ClassDeclaration:
		if within(d.Name, pos) {
			return d.Name, "class " + d.Name.Name, d.Doc
		}
	case *ast.InterfaceDeclaration:
		if within(d.Name, pos) {
			return d.Name, "interface " + d.Name.Name, d.Doc
		}
	case *ast.EnumDeclaration:
		if within(d.Name, pos) {
			return d.Name, "enum " + d.Name.Name, d.Doc
		}
	case *ast.AnnotationDeclaration:
		if within(d.Name, pos) {
			return d.Name, "@interface " + d.Name.Name, d.Doc
		}
	case *ast.EnumConstant:
		if within(d.Name, pos) {
			return d.Name, d.Name.Name, d.Doc
		}
	case *ast.MethodDeclaration:
		if within(d.Name, pos) {
			ret := "void"
			if d.ReturnType != nil {
				ret = ast.TypeString(d.ReturnType)
			}
			return d.Name, ret + " " + d.Name.Name + signature(d.Parameters), d.Doc
		}
	case *ast.ConstructorDeclaration:
		if within(d.Name, pos) {
			return d.Name, d.Name.Name + signature(d.Parameters), d.Doc
		}
	case *ast.AnnotationMethod:
		if within(d.Name, pos) {
			return d.Name, ast.TypeString(d.Type) + " " + d.Name.Name + "()", d.Doc
		}
	case *ast.FieldDeclaration:
		for _, v := range d.Declarators {
			if within(v.Name, pos) {
				return v.Name, ast.TypeString(d.Type) + " " + v.Name.Name, d.Doc
			}
		}
	}
	return nil, "", ""
}

var inlineTag = regexp.MustCompile(`\{@(?:code|literal|link|linkplain|value)\s+([^}]*)\}`)

// docText turns a /** ... */ comment into markdown: the comment markers and
// leading asterisks are removed, inline code and link tags become code
// spans, and block tags are listed after the description.
func docText(raw string) string {
	if raw == "" {
		return ""
	}
	raw = strings.TrimPrefix(raw, "/**")
	raw = strings.TrimSuffix(raw, "*/")

	var body, tags []string
	for _, line := range strings.Split(strings.ReplaceAll(raw, "\r\n", "\n"), "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "*") {
			line = strings.TrimSpace(line[1:])
		}
		if strings.HasPrefix(line, "@") || len(tags) > 0 {
			if strings.HasPrefix(line, "@") {
				tags = append(tags, line)
			} else if line != "" {
				tags[len(tags)-1] += " " + line
			}
			continue
		}
		body = append(body, line)
	}

	text := strings.TrimSpace(strings.Join(body, "\n"))
	for _, tag := range tags {
		if text != "" {
			text += "\n\n"
		}
		name, rest, _ := strings.Cut(tag, " ")
		text += "*" + name + "* " + strings.TrimSpace(rest)
	}
	return inlineTag.ReplaceAllString(text, "`$1`")
}
