package parser

import (
	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

func (p *Parser) parseBlock() *ast.Block {
	p.enter()
	defer p.leave()

	lbrace := p.expect(token.LBrace)
	block := &ast.Block{Statements: []ast.Stmt{}}
	for !p.check(token.RBrace) {
		if p.check(token.EOF) {
			panic(p.unexpected(token.RBrace))
		}
		block.Statements = append(block.Statements, p.parseBlockStatement())
	}
	p.expect(token.RBrace)
	block.Span = p.span(lbrace.Pos)
	return block
}

// parseBlockStatement parses a local class, a local variable declaration or
// a statement.
func (p *Parser) parseBlockStatement() ast.Stmt {
	tok := p.peek()
	switch {
	case tok.Kind == token.Class, tok.Kind == token.Interface,
		tok.Kind == token.Enum && p.peekN(1).Kind == token.Ident:
		return p.parseLocalTypeDeclaration(tok.Doc, nil)
	case tok.Kind == token.Abstract, tok.Kind == token.Static, tok.Kind == token.Strictfp:
		return p.parseLocalTypeDeclaration(tok.Doc, p.parseModifiers())
	case tok.Kind == token.Final, tok.Kind == token.At:
		mods := p.parseModifiers()
		if p.match(token.Class, token.Interface, token.Enum) {
			return p.parseLocalTypeDeclaration(tok.Doc, mods)
		}
		if mods == nil {
			panic(p.errorf("annotation type not allowed here"))
		}
		return p.parseLocalVariableDeclarationRest(mods, mods.Pos())
	case tok.Kind.IsBasicType() && p.peekN(1).Kind != token.Dot:
		return p.parseLocalVariableDeclarationRest(nil, tok.Pos)
	case tok.Kind == token.Void && p.peekN(1).Kind != token.Dot:
		panic(p.errorf("'void' type not allowed here"))
	case tok.Kind == token.Ident && p.peekN(1).Kind == token.Colon:
		label := p.parseIdentifier()
		p.advance()
		body := p.parseStatement()
		return &ast.LabeledStatement{Span: spanOf(label, body), Label: label, Body: body}
	case tok.Kind == token.Ident && p.startsLocalVariableDeclaration():
		return p.parseLocalVariableDeclarationRest(nil, tok.Pos)
	}
	return p.parseStatement()
}

func (p *Parser) parseLocalTypeDeclaration(doc string, mods *ast.Modifiers) ast.Stmt {
	decl := p.parseTypeDeclarationRest(doc, mods)
	stmt, ok := decl.(ast.Stmt)
	if !ok {
		panic(bailout{&SyntaxError{
			File:    p.file,
			Pos:     decl.Pos(),
			Message: "annotation type not allowed here",
			Got:     p.tokens[p.pos],
		}})
	}
	return stmt
}

// startsLocalVariableDeclaration reports whether the tokens ahead read as a
// type followed by an identifier, as in List<String> names or a.B[] c.
func (p *Parser) startsLocalVariableDeclaration() bool {
	saved := p.state
	defer func() { p.state = saved }()
	return p.speculate("local variable declaration", func() {
		p.parseType()
		p.expect(token.Ident)
		if !p.match(token.Assign, token.Semicolon, token.Comma, token.LBracket, token.Colon) {
			panic(p.unexpected(token.Assign, token.Semicolon, token.Comma))
		}
	})
}

func (p *Parser) parseLocalVariableDeclarationStatement() *ast.LocalVariableDeclaration {
	start := p.peek().Pos
	mods := p.parseModifiers()
	if mods != nil {
		start = mods.Pos()
	}
	return p.parseLocalVariableDeclarationRest(mods, start)
}

func (p *Parser) parseLocalVariableDeclarationRest(mods *ast.Modifiers, start token.Position) *ast.LocalVariableDeclaration {
	decl := p.parseLocalVariableDeclaration(mods, start)
	p.expect(token.Semicolon)
	decl.Span = p.span(start)
	return decl
}

// parseLocalVariableDeclaration parses Type declarators without the
// terminating semicolon, as used in for headers.
func (p *Parser) parseLocalVariableDeclaration(mods *ast.Modifiers, start token.Position) *ast.LocalVariableDeclaration {
	decl := &ast.LocalVariableDeclaration{Modifiers: mods, Type: p.parseType()}
	decl.Declarators = p.parseVariableDeclaratorsRest(p.parseIdentifier())
	decl.Span = p.span(start)
	return decl
}

func (p *Parser) parseStatement() ast.Stmt {
	p.enter()
	defer p.leave()

	tok := p.peek()
	switch tok.Kind {
	case token.LBrace:
		return p.parseBlock()
	case token.Semicolon:
		p.advance()
		return &ast.EmptyStatement{Span: p.span(tok.Pos)}
	case token.If:
		p.advance()
		stmt := &ast.IfStatement{Condition: p.parseCondition(), Then: p.parseStatement()}
		if p.accept(token.Else) {
			stmt.Else = p.parseStatement()
		}
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.While:
		p.advance()
		stmt := &ast.WhileStatement{Condition: p.parseCondition(), Body: p.parseStatement()}
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.Do:
		p.advance()
		stmt := &ast.DoStatement{Body: p.parseStatement()}
		p.expect(token.While)
		stmt.Condition = p.parseCondition()
		p.expect(token.Semicolon)
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.For:
		return p.parseFor()
	case token.Try:
		return p.parseTry()
	case token.Switch:
		return p.parseSwitch()
	case token.Synchronized:
		p.advance()
		stmt := &ast.SynchronizedStatement{Lock: p.parseCondition(), Body: p.parseBlock()}
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.Return:
		p.advance()
		stmt := &ast.ReturnStatement{}
		if !p.check(token.Semicolon) {
			stmt.Expr = p.parseExpression()
		}
		p.expect(token.Semicolon)
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.Throw:
		p.advance()
		stmt := &ast.ThrowStatement{Expr: p.parseExpression()}
		p.expect(token.Semicolon)
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.Break:
		p.advance()
		stmt := &ast.BreakStatement{}
		if p.check(token.Ident) {
			stmt.Label = p.parseIdentifier()
		}
		p.expect(token.Semicolon)
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.Continue:
		p.advance()
		stmt := &ast.ContinueStatement{}
		if p.check(token.Ident) {
			stmt.Label = p.parseIdentifier()
		}
		p.expect(token.Semicolon)
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.Assert:
		p.advance()
		stmt := &ast.AssertStatement{Condition: p.parseExpression()}
		if p.accept(token.Colon) {
			stmt.Message = p.parseExpression()
		}
		p.expect(token.Semicolon)
		stmt.Span = p.span(tok.Pos)
		return stmt
	case token.Else:
		panic(p.errorf("'else' without 'if'"))
	case token.Catch:
		panic(p.errorf("'catch' without 'try'"))
	case token.Finally:
		panic(p.errorf("'finally' without 'try'"))
	case token.Case, token.Default:
		panic(p.errorf("orphaned %s", tok.Literal))
	}

	e := p.parseExpression()
	p.expect(token.Semicolon)
	return &ast.ExpressionStatement{Span: p.span(tok.Pos), Expr: e}
}

func (p *Parser) parseFor() ast.Stmt {
	forTok := p.expect(token.For)
	p.expect(token.LParen)

	if param, ok := p.tryEnhancedForVariable(); ok {
		iterable := p.parseExpression()
		p.expect(token.RParen)
		body := p.parseStatement()
		return &ast.EnhancedForStatement{Span: p.span(forTok.Pos), Variable: param, Iterable: iterable, Body: body}
	}

	stmt := &ast.ForStatement{}
	if !p.check(token.Semicolon) {
		stmt.Init = p.parseForInit()
	}
	p.expect(token.Semicolon)
	if !p.check(token.Semicolon) {
		stmt.Condition = p.parseExpression()
	}
	p.expect(token.Semicolon)
	if !p.check(token.RParen) {
		stmt.Update = p.parseExpressionList()
	}
	p.expect(token.RParen)
	stmt.Body = p.parseStatement()
	stmt.Span = p.span(forTok.Pos)
	return stmt
}

// tryEnhancedForVariable parses [mods] Type name : when the header has that
// shape and leaves the parser after the colon.
func (p *Parser) tryEnhancedForVariable() (*ast.FormalParameter, bool) {
	var param *ast.FormalParameter
	ok := p.speculate("enhanced for variable", func() {
		start := p.peek().Pos
		param = &ast.FormalParameter{Modifiers: p.parseModifiers()}
		if param.Modifiers != nil {
			start = param.Modifiers.Pos()
		}
		param.Type = p.parseType()
		param.Name = p.parseIdentifier()
		if n := p.parseDimCount(); n > 0 {
			param.Type = p.wrapDims(param.Type, n)
		}
		param.Span = p.span(start)
		p.expect(token.Colon)
	})
	return param, ok
}

func (p *Parser) parseForInit() []ast.Node {
	tok := p.peek()
	declares := tok.Kind == token.Final || tok.Kind == token.At ||
		(tok.Kind.IsBasicType() && p.peekN(1).Kind != token.Dot) ||
		(tok.Kind == token.Ident && p.startsLocalVariableDeclaration())
	if declares {
		mods := p.parseModifiers()
		start := tok.Pos
		if mods != nil {
			start = mods.Pos()
		}
		return []ast.Node{p.parseLocalVariableDeclaration(mods, start)}
	}
	var init []ast.Node
	for _, e := range p.parseExpressionList() {
		init = append(init, e)
	}
	return init
}

func (p *Parser) parseExpressionList() []ast.Expr {
	list := []ast.Expr{p.parseExpression()}
	for p.accept(token.Comma) {
		list = append(list, p.parseExpression())
	}
	return list
}

func (p *Parser) parseTry() ast.Stmt {
	tryTok := p.expect(token.Try)
	stmt := &ast.TryStatement{}
	if p.check(token.LParen) {
		stmt.Resources = p.parseResources()
	}
	stmt.Body = p.parseBlock()
	for p.check(token.Catch) {
		stmt.Catches = append(stmt.Catches, p.parseCatchClause())
	}
	if p.accept(token.Finally) {
		stmt.Finally = p.parseBlock()
	}
	if stmt.Resources == nil && stmt.Catches == nil && stmt.Finally == nil {
		panic(p.errorf("'try' without 'catch', 'finally' or resource declarations"))
	}
	stmt.Span = p.span(tryTok.Pos)
	return stmt
}

// parseResources parses ( resource {; resource} [;] ).
func (p *Parser) parseResources() []*ast.TryResource {
	p.expect(token.LParen)
	resources := []*ast.TryResource{p.parseResource()}
	for p.accept(token.Semicolon) {
		if p.check(token.RParen) {
			break
		}
		resources = append(resources, p.parseResource())
	}
	p.expect(token.RParen)
	return resources
}

func (p *Parser) parseResource() *ast.TryResource {
	start := p.peek().Pos
	res := &ast.TryResource{Modifiers: p.parseModifiers()}
	if res.Modifiers != nil {
		start = res.Modifiers.Pos()
	}
	if res.Modifiers != nil || p.peek().Kind.IsBasicType() || p.startsLocalVariableDeclaration() {
		res.Type = p.parseType()
		res.Name = p.parseIdentifier()
		p.expect(token.Assign)
	}
	res.Value = p.parseExpression()
	res.Span = p.span(start)
	return res
}

// parseCatchClause parses catch ( [mods] Type {| Type} name ) Block.
func (p *Parser) parseCatchClause() *ast.CatchClause {
	catchTok := p.expect(token.Catch)
	p.expect(token.LParen)

	start := p.peek().Pos
	param := &ast.CatchClauseParameter{Modifiers: p.parseModifiers()}
	if param.Modifiers != nil {
		start = param.Modifiers.Pos()
	}
	param.Types = []ast.Type{p.parseType()}
	for p.accept(token.BitOr) {
		param.Types = append(param.Types, p.parseType())
	}
	param.Name = p.parseIdentifier()
	param.Span = p.span(start)

	p.expect(token.RParen)
	body := p.parseBlock()
	return &ast.CatchClause{Span: p.span(catchTok.Pos), Parameter: param, Body: body}
}

func (p *Parser) parseSwitch() ast.Stmt {
	switchTok := p.expect(token.Switch)
	stmt := &ast.SwitchStatement{Expr: p.parseCondition(), Cases: []*ast.SwitchCase{}}
	p.expect(token.LBrace)
	for !p.check(token.RBrace) {
		stmt.Cases = append(stmt.Cases, p.parseSwitchCase())
	}
	p.expect(token.RBrace)
	stmt.Span = p.span(switchTok.Pos)
	return stmt
}

// parseSwitchCase parses consecutive case and default labels and the
// statements that follow them up to the next label.
func (p *Parser) parseSwitchCase() *ast.SwitchCase {
	start := p.peek().Pos
	c := &ast.SwitchCase{Body: []ast.Stmt{}}
	for {
		switch {
		case p.accept(token.Case):
			c.Labels = append(c.Labels, p.parseExpression())
			for p.accept(token.Comma) {
				c.Labels = append(c.Labels, p.parseExpression())
			}
		case p.accept(token.Default):
			c.Default = true
		default:
			panic(p.unexpected(token.Case, token.Default))
		}
		p.expect(token.Colon)
		if !p.match(token.Case, token.Default) {
			break
		}
	}
	for !p.match(token.Case, token.Default, token.RBrace, token.EOF) {
		c.Body = append(c.Body, p.parseBlockStatement())
	}
	c.Span = p.span(start)
	return c
}
