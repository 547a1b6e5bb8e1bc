package parser

import (
	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

func (p *Parser) parseCompilationUnit() *ast.CompilationUnit {
	start := p.peek().Pos
	unit := &ast.CompilationUnit{Imports: []*ast.Import{}, Types: []ast.TypeDecl{}}

	// Annotations before the first keyword belong to the package declaration
	// if there is one, otherwise to the first type declaration.
	doc := p.peek().Doc
	var leading []*ast.Annotation
	for p.check(token.At) && p.peekN(1).Kind != token.Interface {
		leading = append(leading, p.parseAnnotation())
	}

	if p.check(token.Package) {
		pkgStart := p.peek().Pos
		if len(leading) > 0 {
			pkgStart = leading[0].Pos()
		}
		p.advance()
		name := p.parseQualifiedName()
		p.expect(token.Semicolon)
		unit.Package = &ast.PackageDeclaration{Span: p.span(pkgStart), Doc: doc, Annotations: leading, Name: name}
		leading = nil
	}

	if leading != nil && p.check(token.EOF) {
		panic(p.unexpected(token.Class, token.Interface, token.Enum, token.At))
	}

	if leading == nil {
		for p.check(token.Import) || p.check(token.Semicolon) {
			if p.accept(token.Semicolon) {
				continue
			}
			unit.Imports = append(unit.Imports, p.parseImport())
		}
	}

	for !p.check(token.EOF) {
		if leading == nil && p.accept(token.Semicolon) {
			continue
		}
		var mods *ast.Modifiers
		if leading != nil {
			mods = p.parseModifiersAfter(leading)
			leading = nil
		} else {
			doc = p.peek().Doc
			mods = p.parseModifiers()
		}
		unit.Types = append(unit.Types, p.parseTypeDeclarationRest(doc, mods))
	}

	end := p.prev
	if !end.IsValid() {
		end = start
	}
	unit.Span = ast.Span{StartPos: start, EndPos: end}
	return unit
}

func (p *Parser) parseImport() *ast.Import {
	start := p.expect(token.Import).Pos
	imp := &ast.Import{Static: p.accept(token.Static)}

	nameStart := p.peek().Pos
	parts := []*ast.Identifier{p.parseIdentifier()}
	for p.accept(token.Dot) {
		if p.accept(token.Star) {
			imp.Wildcard = true
			break
		}
		parts = append(parts, p.parseIdentifier())
	}
	imp.Name = &ast.QualifiedName{
		Span:  ast.Span{StartPos: nameStart, EndPos: parts[len(parts)-1].End()},
		Parts: parts,
	}
	p.expect(token.Semicolon)
	imp.Span = p.span(start)
	return imp
}

// parseModifiers parses keyword modifiers and annotations in any order. It
// returns nil when there are none.
func (p *Parser) parseModifiers() *ast.Modifiers {
	return p.parseModifiersAfter(nil)
}

// parseModifiersAfter continues a modifier list whose leading annotations
// have already been parsed.
func (p *Parser) parseModifiersAfter(annotations []*ast.Annotation) *ast.Modifiers {
	mods := &ast.Modifiers{Annotations: annotations}
	start := p.peek().Pos
	if len(annotations) > 0 {
		start = annotations[0].Pos()
	}
	for {
		tok := p.peek()
		switch {
		case tok.Kind == token.At && p.peekN(1).Kind != token.Interface:
			mods.Annotations = append(mods.Annotations, p.parseAnnotation())
		case tok.Kind.IsModifier():
			if tok.Kind == token.Default && p.peekN(1).Kind == token.Colon {
				// default: label inside a switch
				return p.finishModifiers(mods, start)
			}
			p.advance()
			mods.Keywords = append(mods.Keywords, &ast.Modifier{
				Span:    ast.Span{StartPos: tok.Pos, EndPos: tok.End},
				Keyword: tok.Literal,
			})
		default:
			return p.finishModifiers(mods, start)
		}
	}
}

func (p *Parser) finishModifiers(mods *ast.Modifiers, start token.Position) *ast.Modifiers {
	if len(mods.Keywords) == 0 && len(mods.Annotations) == 0 {
		return nil
	}
	mods.Span = p.span(start)
	return mods
}

// parseAnnotation parses @Name, @Name(value) or @Name(k = v, ...).
func (p *Parser) parseAnnotation() *ast.Annotation {
	at := p.expect(token.At)
	a := &ast.Annotation{Name: p.parseQualifiedName()}
	if p.accept(token.LParen) {
		if !p.check(token.RParen) {
			if p.check(token.Ident) && p.peekN(1).Kind == token.Assign {
				for {
					name := p.parseIdentifier()
					p.expect(token.Assign)
					value := p.parseElementValue()
					a.Pairs = append(a.Pairs, &ast.ElementValuePair{Span: spanOf(name, value), Name: name, Value: value})
					if !p.accept(token.Comma) {
						break
					}
				}
			} else {
				a.Element = p.parseElementValue()
			}
		}
		p.expect(token.RParen)
	}
	a.Span = p.span(at.Pos)
	return a
}

// parseElementValue parses an annotation element value: a conditional
// expression, a nested annotation or a brace-enclosed list.
func (p *Parser) parseElementValue() ast.Node {
	p.enter()
	defer p.leave()

	switch p.peek().Kind {
	case token.At:
		return p.parseAnnotation()
	case token.LBrace:
		lbrace := p.advance()
		arr := &ast.ElementArrayValue{Values: []ast.Node{}}
		for !p.check(token.RBrace) {
			arr.Values = append(arr.Values, p.parseElementValue())
			if !p.accept(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace)
		arr.Span = p.span(lbrace.Pos)
		return arr
	}
	return p.parseTernary()
}

func (p *Parser) parseTypeDeclaration() ast.TypeDecl {
	doc := p.peek().Doc
	return p.parseTypeDeclarationRest(doc, p.parseModifiers())
}

// parseTypeDeclarationRest parses a type declaration after its modifiers.
// The declaration's span starts at the modifiers when there are any.
func (p *Parser) parseTypeDeclarationRest(doc string, mods *ast.Modifiers) ast.TypeDecl {
	start := p.peek().Pos
	if mods != nil {
		start = mods.Pos()
	}
	switch p.peek().Kind {
	case token.Class:
		return p.parseClassDeclaration(doc, mods, start)
	case token.Interface:
		return p.parseInterfaceDeclaration(doc, mods, start)
	case token.Enum:
		return p.parseEnumDeclaration(doc, mods, start)
	case token.At:
		return p.parseAnnotationDeclaration(doc, mods, start)
	}
	panic(p.unexpected(token.Class, token.Interface, token.Enum, token.At))
}

func (p *Parser) parseClassDeclaration(doc string, mods *ast.Modifiers, start token.Position) *ast.ClassDeclaration {
	p.expect(token.Class)
	decl := &ast.ClassDeclaration{Doc: doc, Modifiers: mods, Name: p.parseIdentifier()}
	if p.check(token.LT) {
		decl.TypeParameters = p.parseTypeParameters()
	}
	if p.accept(token.Extends) {
		decl.Extends = p.parseClassType(false)
	}
	if p.accept(token.Implements) {
		decl.Implements = p.parseClassTypeList()
	}
	decl.Body = p.parseClassBody(false)
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseInterfaceDeclaration(doc string, mods *ast.Modifiers, start token.Position) *ast.InterfaceDeclaration {
	p.expect(token.Interface)
	decl := &ast.InterfaceDeclaration{Doc: doc, Modifiers: mods, Name: p.parseIdentifier()}
	if p.check(token.LT) {
		decl.TypeParameters = p.parseTypeParameters()
	}
	if p.accept(token.Extends) {
		decl.Extends = p.parseClassTypeList()
	}
	decl.Body = p.parseClassBody(false)
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseEnumDeclaration(doc string, mods *ast.Modifiers, start token.Position) *ast.EnumDeclaration {
	p.expect(token.Enum)
	decl := &ast.EnumDeclaration{Doc: doc, Modifiers: mods, Name: p.parseIdentifier()}
	if p.accept(token.Implements) {
		decl.Implements = p.parseClassTypeList()
	}
	decl.Body = p.parseEnumBody()
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseAnnotationDeclaration(doc string, mods *ast.Modifiers, start token.Position) *ast.AnnotationDeclaration {
	p.expect(token.At)
	p.expect(token.Interface)
	decl := &ast.AnnotationDeclaration{Doc: doc, Modifiers: mods, Name: p.parseIdentifier()}
	decl.Body = p.parseClassBody(true)
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseClassTypeList() []*ast.ReferenceType {
	types := []*ast.ReferenceType{p.parseClassType(false)}
	for p.accept(token.Comma) {
		types = append(types, p.parseClassType(false))
	}
	return types
}

func (p *Parser) parseEnumBody() *ast.EnumBody {
	lbrace := p.expect(token.LBrace)
	body := &ast.EnumBody{Constants: []*ast.EnumConstant{}}

	for p.check(token.Ident) || p.check(token.At) {
		body.Constants = append(body.Constants, p.parseEnumConstant())
		if !p.accept(token.Comma) {
			break
		}
	}
	if p.accept(token.Semicolon) {
		for !p.check(token.RBrace) {
			if p.accept(token.Semicolon) {
				continue
			}
			body.Declarations = append(body.Declarations, p.parseClassBodyDeclaration(false))
		}
	}
	p.expect(token.RBrace)
	body.Span = p.span(lbrace.Pos)
	return body
}

func (p *Parser) parseEnumConstant() *ast.EnumConstant {
	start := p.peek().Pos
	c := &ast.EnumConstant{Doc: p.peek().Doc}
	for p.check(token.At) {
		c.Annotations = append(c.Annotations, p.parseAnnotation())
	}
	c.Name = p.parseIdentifier()
	if p.check(token.LParen) {
		c.Arguments = p.parseArguments()
	}
	if p.check(token.LBrace) {
		c.Body = p.parseClassBody(false)
	}
	c.Span = p.span(start)
	return c
}

// parseClassBody parses { member* }. Members of an annotation type may be
// annotation methods.
func (p *Parser) parseClassBody(annotation bool) *ast.ClassBody {
	p.enter()
	defer p.leave()

	lbrace := p.expect(token.LBrace)
	body := &ast.ClassBody{Declarations: []ast.Decl{}}
	for !p.check(token.RBrace) {
		if p.check(token.EOF) {
			panic(p.unexpected(token.RBrace))
		}
		if p.accept(token.Semicolon) {
			continue
		}
		body.Declarations = append(body.Declarations, p.parseClassBodyDeclaration(annotation))
	}
	p.expect(token.RBrace)
	body.Span = p.span(lbrace.Pos)
	return body
}

// parseClassBodyDeclaration parses one member: an initializer, a nested
// type, a constructor, a method, a field, or in an annotation type an
// annotation method.
func (p *Parser) parseClassBodyDeclaration(annotation bool) ast.Decl {
	tok := p.peek()
	doc := tok.Doc
	start := tok.Pos

	if tok.Kind == token.LBrace {
		body := p.parseBlock()
		return &ast.Initializer{Span: p.span(start), Body: body}
	}
	if tok.Kind == token.Static && p.peekN(1).Kind == token.LBrace {
		p.advance()
		body := p.parseBlock()
		return &ast.Initializer{Span: p.span(start), Static: true, Body: body}
	}

	mods := p.parseModifiers()
	switch p.peek().Kind {
	case token.Class, token.Interface, token.Enum:
		return p.parseTypeDeclarationRest(doc, mods)
	case token.At:
		if p.peekN(1).Kind == token.Interface {
			return p.parseTypeDeclarationRest(doc, mods)
		}
	}

	var typeParams *ast.TypeParameters
	if p.check(token.LT) {
		typeParams = p.parseTypeParameters()
	}

	// Name( starts a constructor.
	if p.check(token.Ident) && p.peekN(1).Kind == token.LParen {
		return p.parseConstructorRest(doc, mods, typeParams, start)
	}

	var result ast.Type
	if !p.accept(token.Void) {
		result = p.parseType()
	}
	name := p.parseIdentifier()

	if p.check(token.LParen) {
		if annotation && typeParams == nil {
			return p.parseAnnotationMethodRest(doc, mods, result, name, start)
		}
		return p.parseMethodRest(doc, mods, typeParams, result, name, start)
	}

	if typeParams != nil || result == nil {
		panic(p.unexpected(token.LParen))
	}
	decl := &ast.FieldDeclaration{Doc: doc, Modifiers: mods, Type: result}
	decl.Declarators = p.parseVariableDeclaratorsRest(name)
	p.expect(token.Semicolon)
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseConstructorRest(doc string, mods *ast.Modifiers, typeParams *ast.TypeParameters, start token.Position) *ast.ConstructorDeclaration {
	decl := &ast.ConstructorDeclaration{
		Doc:            doc,
		Modifiers:      mods,
		TypeParameters: typeParams,
		Name:           p.parseIdentifier(),
	}
	decl.Parameters = p.parseFormalParameters()
	decl.Throws = p.parseThrows()
	decl.Body = p.parseBlock()
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseMethodRest(doc string, mods *ast.Modifiers, typeParams *ast.TypeParameters, result ast.Type, name *ast.Identifier, start token.Position) *ast.MethodDeclaration {
	decl := &ast.MethodDeclaration{
		Doc:            doc,
		Modifiers:      mods,
		TypeParameters: typeParams,
		ReturnType:     result,
		Name:           name,
	}
	decl.Parameters = p.parseFormalParameters()
	decl.Dimensions = p.parseDimCount()
	if decl.Dimensions > 0 && result == nil {
		panic(p.errorf("'void' type not allowed here"))
	}
	decl.Throws = p.parseThrows()
	if !p.accept(token.Semicolon) {
		decl.Body = p.parseBlock()
	}
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseAnnotationMethodRest(doc string, mods *ast.Modifiers, typ ast.Type, name *ast.Identifier, start token.Position) *ast.AnnotationMethod {
	if typ == nil {
		panic(p.errorf("'void' type not allowed here"))
	}
	p.expect(token.LParen)
	p.expect(token.RParen)
	decl := &ast.AnnotationMethod{Doc: doc, Modifiers: mods, Type: typ, Name: name}
	decl.Dimensions = p.parseDimCount()
	if p.accept(token.Default) {
		decl.Default = p.parseElementValue()
	}
	p.expect(token.Semicolon)
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseThrows() []*ast.ReferenceType {
	if !p.accept(token.Throws) {
		return nil
	}
	return p.parseClassTypeList()
}

// parseFormalParameters parses ( [param {, param}] ). Only the last
// parameter may be variable arity.
func (p *Parser) parseFormalParameters() []*ast.FormalParameter {
	p.expect(token.LParen)
	params := []*ast.FormalParameter{}
	if p.accept(token.RParen) {
		return params
	}
	for {
		param := p.parseFormalParameter()
		params = append(params, param)
		if param.Varargs {
			break
		}
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return params
}

func (p *Parser) parseFormalParameter() *ast.FormalParameter {
	start := p.peek().Pos
	param := &ast.FormalParameter{Modifiers: p.parseModifiers()}
	if param.Modifiers != nil {
		start = param.Modifiers.Pos()
	}
	param.Type = p.parseType()
	param.Varargs = p.accept(token.Ellipsis)
	param.Name = p.parseIdentifier()
	if n := p.parseDimCount(); n > 0 {
		param.Type = p.wrapDims(param.Type, n)
	}
	param.Span = p.span(start)
	return param
}

// parseVariableDeclaratorsRest parses declarators after the first name has
// been consumed: name [dims] [= init] {, name [dims] [= init]}.
func (p *Parser) parseVariableDeclaratorsRest(first *ast.Identifier) []*ast.VariableDeclarator {
	decls := []*ast.VariableDeclarator{p.parseVariableDeclaratorRest(first)}
	for p.accept(token.Comma) {
		decls = append(decls, p.parseVariableDeclaratorRest(p.parseIdentifier()))
	}
	return decls
}

func (p *Parser) parseVariableDeclaratorRest(name *ast.Identifier) *ast.VariableDeclarator {
	d := &ast.VariableDeclarator{Name: name, Dimensions: p.parseDimCount()}
	if p.accept(token.Assign) {
		if p.check(token.LBrace) {
			d.Initializer = p.parseArrayInitializer()
		} else {
			d.Initializer = p.parseExpression()
		}
	}
	d.Span = p.span(name.Pos())
	return d
}
