package parser

import (
	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

// parseType parses a primitive, class or array type. void is rejected: it
// is only valid as a method result and in void.class, which the callers
// handle themselves.
func (p *Parser) parseType() ast.Type {
	p.enter()
	defer p.leave()

	p.skipTypeAnnotations()
	tok := p.peek()
	switch {
	case tok.Kind.IsBasicType():
		return p.parseDims(p.parsePrimitiveType())
	case tok.Kind == token.Ident:
		return p.parseDims(p.parseClassType(false))
	case tok.Kind == token.Void:
		panic(p.errorf("'void' type not allowed here"))
	}
	panic(p.errorf("illegal start of type"))
}

func (p *Parser) parsePrimitiveType() *ast.PrimitiveType {
	tok := p.peek()
	if !tok.Kind.IsBasicType() {
		panic(p.errorf("expected primitive type"))
	}
	p.advance()
	return &ast.PrimitiveType{Span: ast.Span{StartPos: tok.Pos, EndPos: tok.End}, Name: tok.Literal}
}

// parseClassType parses Name<Args>.Name<Args>... . allowDiamond permits an
// empty <> on the last segment, as in class instance creation.
func (p *Parser) parseClassType(allowDiamond bool) *ast.ReferenceType {
	start := p.peek().Pos
	var typ *ast.ReferenceType
	for {
		name := p.parseIdentifier()
		typ = &ast.ReferenceType{Qualifier: typ, Name: name}
		if p.check(token.LT) {
			typ.Arguments = p.parseTypeArguments(allowDiamond)
		}
		typ.Span = p.span(start)
		if !p.check(token.Dot) || p.peekN(1).Kind != token.Ident {
			return typ
		}
		p.advance()
	}
}

// parseDims wraps elem in one ArrayType per trailing [].
func (p *Parser) parseDims(elem ast.Type) ast.Type {
	typ := elem
	for p.check(token.LBracket) && p.peekN(1).Kind == token.RBracket {
		p.advance()
		p.advance()
		typ = &ast.ArrayType{Span: p.span(elem.Pos()), Element: typ}
	}
	return typ
}

// parseDimCount consumes trailing [] pairs after a declarator name or a
// method parameter list and returns how many there were.
func (p *Parser) parseDimCount() int {
	n := 0
	for p.check(token.LBracket) && p.peekN(1).Kind == token.RBracket {
		p.advance()
		p.advance()
		n++
	}
	return n
}

// wrapDims adds n array dimensions to typ, extending the span to the last
// consumed bracket.
func (p *Parser) wrapDims(typ ast.Type, n int) ast.Type {
	for i := 0; i < n; i++ {
		typ = &ast.ArrayType{Span: p.span(typ.Pos()), Element: typ}
	}
	return typ
}

// parseTypeArguments parses <T, ? extends U, ...>. The closing '>' may be
// the first character of a >> or >>> token; see expectGT.
func (p *Parser) parseTypeArguments(allowDiamond bool) *ast.TypeArguments {
	lt := p.expect(token.LT)
	args := &ast.TypeArguments{List: []ast.TypeArg{}}
	if allowDiamond && p.check(token.GT) {
		p.expectGT()
		args.Span = p.span(lt.Pos)
		return args
	}
	for {
		args.List = append(args.List, p.parseTypeArgument())
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expectGT()
	args.Span = p.span(lt.Pos)
	return args
}

func (p *Parser) parseTypeArgument() ast.TypeArg {
	p.skipTypeAnnotations()
	tok := p.peek()
	if tok.Kind != token.Question {
		typ := p.parseType()
		if _, primitive := typ.(*ast.PrimitiveType); primitive {
			panic(bailout{&SyntaxError{
				File:    p.file,
				Pos:     typ.Pos(),
				Message: "type argument cannot be of primitive type",
				Got:     tok,
			}})
		}
		return typ
	}

	p.advance()
	w := &ast.Wildcard{}
	if p.match(token.Extends, token.Super) {
		w.BoundKind = p.advance().Literal
		w.Bound = p.parseType()
	}
	w.Span = p.span(tok.Pos)
	return w
}

// parseTypeParameters parses <T, U extends Comparable<U> & Serializable>.
func (p *Parser) parseTypeParameters() *ast.TypeParameters {
	lt := p.expect(token.LT)
	params := &ast.TypeParameters{}
	for {
		p.skipTypeAnnotations()
		name := p.parseIdentifier()
		param := &ast.TypeParameter{Name: name}
		if p.accept(token.Extends) {
			param.Bounds = append(param.Bounds, p.parseType())
			for p.accept(token.BitAnd) {
				param.Bounds = append(param.Bounds, p.parseType())
			}
		}
		param.Span = p.span(name.Pos())
		params.List = append(params.List, param)
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expectGT()
	params.Span = p.span(lt.Pos)
	return params
}

// skipTypeAnnotations consumes annotations written on a type use
// (@NonNull String). They are not kept in the tree.
func (p *Parser) skipTypeAnnotations() {
	for p.check(token.At) && p.peekN(1).Kind != token.Interface {
		p.parseAnnotation()
	}
}
