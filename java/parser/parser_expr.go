package parser

import (
	"github.com/dhamidi/javasyntax/java/ast"
	"github.com/dhamidi/javasyntax/java/token"
)

// Binary operator precedence, lowest first. Assignment and the conditional
// operator sit below these and are handled separately.
const (
	precNone = iota
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
)

func binaryPrecedence(kind token.Kind) int {
	switch kind {
	case token.Or:
		return precOr
	case token.And:
		return precAnd
	case token.BitOr:
		return precBitOr
	case token.BitXor:
		return precBitXor
	case token.BitAnd:
		return precBitAnd
	case token.EQ, token.NE:
		return precEquality
	case token.LT, token.GT, token.LE, token.GE, token.Instanceof:
		return precRelational
	case token.Shl, token.Shr, token.UShr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	}
	return precNone
}

func (p *Parser) parseExpression() ast.Expr {
	p.enter()
	defer p.leave()

	if p.isLambdaStart() {
		return p.parseLambda()
	}
	target := p.parseTernary()
	if p.peek().Kind.IsAssignment() {
		op := p.advance()
		value := p.parseExpression()
		return &ast.Assignment{Span: spanOf(target, value), Operator: op.Literal, Target: target, Value: value}
	}
	return target
}

// parseTernary parses a conditional expression. The false branch may be a
// lambda; both branches associate to the right.
func (p *Parser) parseTernary() ast.Expr {
	cond := p.parseBinary(precOr)
	if !p.accept(token.Question) {
		return cond
	}
	ifTrue := p.parseExpression()
	p.expect(token.Colon)
	var ifFalse ast.Expr
	if p.isLambdaStart() {
		ifFalse = p.parseLambda()
	} else {
		ifFalse = p.parseTernary()
	}
	return &ast.Ternary{Span: spanOf(cond, ifFalse), Condition: cond, IfTrue: ifTrue, IfFalse: ifFalse}
}

// parseBinary climbs the precedence table: operators binding at least as
// tightly as minPrec are folded into a left-associative tree.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		op := p.peek()
		prec := binaryPrecedence(op.Kind)
		if prec == precNone || prec < minPrec {
			return left
		}
		p.advance()
		if op.Kind == token.Instanceof {
			p.accept(token.Final)
			typ := p.parseType()
			left = &ast.InstanceOf{Span: spanOf(left, typ), Expr: left, Type: typ}
			continue
		}
		right := p.parseBinary(prec + 1)
		left = &ast.BinaryOperation{Span: spanOf(left, right), Operator: op.Literal, Left: left, Right: right}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	tok := p.peek()
	switch tok.Kind {
	case token.Plus, token.Minus, token.Increment, token.Decrement, token.Not, token.BitNot:
		p.enter()
		defer p.leave()
		p.advance()
		operand := p.parseUnary()
		return &ast.UnaryOperation{
			Span:     ast.Span{StartPos: tok.Pos, EndPos: operand.End()},
			Operator: tok.Literal,
			Operand:  operand,
		}
	case token.LParen:
		if cast := p.tryCast(); cast != nil {
			return cast
		}
	}

	e := p.parsePrimary()
	for p.match(token.Increment, token.Decrement) {
		op := p.advance()
		e = &ast.PostfixOperation{Span: p.span(e.Pos()), Operator: op.Literal, Operand: e}
	}
	return e
}

// tryCast recognizes ( Type [& Type]* ) followed by an operand. A primitive
// cast may be followed by any unary expression; a reference cast only by an
// operand that cannot continue a parenthesized expression, so (a) + b stays
// a binary operation.
func (p *Parser) tryCast() ast.Expr {
	var (
		lparen token.Token
		typ    ast.Type
		bounds []ast.Type
	)
	ok := p.speculate("cast", func() {
		lparen = p.expect(token.LParen)
		typ = p.parseType()
		for p.accept(token.BitAnd) {
			bounds = append(bounds, p.parseType())
		}
		p.expect(token.RParen)
		if _, primitive := typ.(*ast.PrimitiveType); primitive && bounds == nil {
			return
		}
		if !p.startsCastOperand() {
			panic(p.errorf("not a cast operand"))
		}
	})
	if !ok {
		return nil
	}

	p.enter()
	defer p.leave()
	var operand ast.Expr
	if p.isLambdaStart() {
		operand = p.parseLambda()
	} else {
		operand = p.parseUnary()
	}
	return &ast.Cast{
		Span:   ast.Span{StartPos: lparen.Pos, EndPos: operand.End()},
		Type:   typ,
		Bounds: bounds,
		Expr:   operand,
	}
}

func (p *Parser) startsCastOperand() bool {
	tok := p.peek()
	switch {
	case tok.Kind == token.Ident, tok.Kind.IsLiteral(), tok.Kind.IsBasicType():
		return true
	}
	switch tok.Kind {
	case token.LParen, token.Not, token.BitNot, token.This, token.Super, token.New, token.Void:
		return true
	}
	return false
}

func (p *Parser) parseParExpression() ast.Expr {
	lparen := p.expect(token.LParen)
	e := p.parseExpression()
	rparen := p.expect(token.RParen)
	ast.SetSpan(e, lparen.Pos, rparen.End)
	return e
}

// parseCondition parses the parenthesized condition of a statement. The
// parentheses belong to the statement, so the span is not widened.
func (p *Parser) parseCondition() ast.Expr {
	p.expect(token.LParen)
	e := p.parseExpression()
	p.expect(token.RParen)
	return e
}

func (p *Parser) parseLiteral() *ast.Literal {
	tok := p.peek()
	if !tok.Kind.IsLiteral() {
		panic(p.errorf("expected literal"))
	}
	p.advance()
	return &ast.Literal{Span: ast.Span{StartPos: tok.Pos, EndPos: tok.End}, LitKind: tok.Kind, Value: tok.Literal}
}

// parsePrimary parses a primary expression and the selectors that follow
// it. Each selector re-classifies what has been parsed so far.
func (p *Parser) parsePrimary() ast.Expr {
	return p.parseSelectors(p.parsePrimaryPrefix())
}

func (p *Parser) parsePrimaryPrefix() ast.Expr {
	tok := p.peek()
	switch {
	case tok.Kind.IsLiteral():
		return p.parseLiteral()
	case tok.Kind.IsBasicType():
		return p.parsePrimitiveClassOrMethodReference()
	}

	switch tok.Kind {
	case token.LParen:
		return p.parseParExpression()

	case token.This:
		p.advance()
		if p.check(token.LParen) {
			args := p.parseArguments()
			return &ast.ExplicitConstructorInvocation{Span: p.span(tok.Pos), Keyword: "this", Arguments: args}
		}
		return &ast.This{Span: p.span(tok.Pos)}

	case token.Super:
		return p.parseSuperSuffix(nil, nil, tok.Pos)

	case token.New:
		return p.parseCreator(nil)

	case token.LT:
		// <T>this(...), <T>super(...)
		args := p.parseTypeArguments(false)
		kw := p.peek()
		if !p.match(token.This, token.Super) {
			panic(p.unexpected(token.This, token.Super))
		}
		p.advance()
		callArgs := p.parseArguments()
		return &ast.ExplicitConstructorInvocation{
			Span:          p.span(tok.Pos),
			TypeArguments: args,
			Keyword:       kw.Literal,
			Arguments:     callArgs,
		}

	case token.Ident:
		id := p.parseIdentifier()
		if p.check(token.LParen) {
			args := p.parseArguments()
			return &ast.MethodInvocation{Span: p.span(tok.Pos), Member: id, Arguments: args}
		}
		return &ast.MemberReference{Span: id.Span, Member: id}

	case token.Void:
		p.advance()
		p.expect(token.Dot)
		p.expect(token.Class)
		return &ast.VoidClassReference{Span: p.span(tok.Pos)}
	}

	panic(p.errorf("illegal start of expression"))
}

// parsePrimitiveClassOrMethodReference parses int.class, int[][].class and
// int[]::clone.
func (p *Parser) parsePrimitiveClassOrMethodReference() ast.Expr {
	typ := p.parseDims(p.parsePrimitiveType())
	if p.check(token.ColonColon) {
		return p.parseMethodReference(typ)
	}
	p.expect(token.Dot)
	p.expect(token.Class)
	return &ast.ClassReference{Span: p.span(typ.Pos()), Type: typ}
}

// parseSuperSuffix parses what follows the super keyword: a constructor
// invocation, a member access or a method reference. qualifier is set for
// Outer.super.
func (p *Parser) parseSuperSuffix(qualifier ast.Expr, typeArgs *ast.TypeArguments, start token.Position) ast.Expr {
	p.expect(token.Super)
	if p.check(token.LParen) {
		args := p.parseArguments()
		return &ast.ExplicitConstructorInvocation{
			Span:          p.span(start),
			Qualifier:     qualifier,
			TypeArguments: typeArgs,
			Keyword:       "super",
			Arguments:     args,
		}
	}
	if typeArgs != nil {
		panic(p.unexpected(token.LParen))
	}
	if !p.match(token.Dot, token.ColonColon) {
		panic(p.unexpected(token.Dot, token.LParen, token.ColonColon))
	}
	return &ast.Super{Span: p.span(start), Qualifier: qualifier}
}

// parseSelectors applies member accesses, invocations, array accesses,
// class literals and method references to e, left to right.
func (p *Parser) parseSelectors(e ast.Expr) ast.Expr {
	for {
		switch p.peek().Kind {
		case token.Dot:
			e = p.parseDotSelector(e)

		case token.LBracket:
			if p.peekN(1).Kind == token.RBracket {
				e = p.parseArrayTypeSuffix(e)
				if _, ok := e.(*ast.MethodReference); ok {
					return e
				}
				continue
			}
			if _, ok := e.(*ast.ArrayCreator); ok {
				// new int[3][0] is a creator with two dimensions, never an
				// access into a fresh array without parentheses.
				return e
			}
			p.advance()
			index := p.parseExpression()
			p.expect(token.RBracket)
			e = &ast.ArrayAccess{Span: p.span(e.Pos()), Array: e, Index: index}

		case token.ColonColon:
			return p.parseMethodReference(e)

		case token.LT:
			if ref := p.tryGenericTypeMethodReference(e); ref != nil {
				return ref
			}
			return e

		default:
			return e
		}
	}
}

func (p *Parser) parseDotSelector(e ast.Expr) ast.Expr {
	start := e.Pos()
	p.expect(token.Dot)

	switch p.peek().Kind {
	case token.Ident:
		id := p.parseIdentifier()
		if p.check(token.LParen) {
			args := p.parseArguments()
			return &ast.MethodInvocation{Span: p.span(start), Qualifier: e, Member: id, Arguments: args}
		}
		return &ast.MemberReference{Span: p.span(start), Qualifier: e, Member: id}

	case token.LT:
		typeArgs := p.parseTypeArguments(false)
		switch p.peek().Kind {
		case token.Super:
			return p.parseSuperSuffix(e, typeArgs, start)
		case token.This:
			p.advance()
			args := p.parseArguments()
			return &ast.ExplicitConstructorInvocation{
				Span:          p.span(start),
				Qualifier:     e,
				TypeArguments: typeArgs,
				Keyword:       "this",
				Arguments:     args,
			}
		}
		id := p.parseIdentifier()
		args := p.parseArguments()
		return &ast.MethodInvocation{Span: p.span(start), Qualifier: e, TypeArguments: typeArgs, Member: id, Arguments: args}

	case token.New:
		return p.parseCreator(e)

	case token.This:
		p.advance()
		return &ast.This{Span: p.span(start), Qualifier: e}

	case token.Super:
		return p.parseSuperSuffix(e, nil, start)

	case token.Class:
		typ, ok := nameToType(e)
		if !ok {
			panic(p.errorf("class literal requires a type name"))
		}
		p.advance()
		return &ast.ClassReference{Span: p.span(start), Type: typ}
	}

	panic(p.unexpected(token.Ident))
}

// parseArrayTypeSuffix handles Name[].class and Name[]::new where the
// expression parsed so far must be a type name.
func (p *Parser) parseArrayTypeSuffix(e ast.Expr) ast.Expr {
	ref, ok := nameToType(e)
	if !ok {
		panic(p.errorf("array type requires a type name"))
	}
	typ := p.parseDims(ref)
	if p.check(token.ColonColon) {
		return p.parseMethodReference(typ)
	}
	p.expect(token.Dot)
	p.expect(token.Class)
	return &ast.ClassReference{Span: p.span(typ.Pos()), Type: typ}
}

// tryGenericTypeMethodReference recognizes a parameterized type used as
// the target of a method reference, such as List<String>::size. When the
// tokens after '<' do not form type arguments followed by '::' the parser
// rewinds and '<' is read as an operator.
func (p *Parser) tryGenericTypeMethodReference(e ast.Expr) ast.Expr {
	name, ok := nameToType(e)
	if !ok {
		return nil
	}
	var typ ast.Type
	ok = p.speculate("parameterized method reference target", func() {
		name.Arguments = p.parseTypeArguments(false)
		name.Span = p.span(name.Pos())
		ref := name
		for p.check(token.Dot) && p.peekN(1).Kind == token.Ident {
			p.advance()
			id := p.parseIdentifier()
			ref = &ast.ReferenceType{Qualifier: ref, Name: id}
			if p.check(token.LT) {
				ref.Arguments = p.parseTypeArguments(false)
			}
			ref.Span = p.span(name.Pos())
		}
		typ = p.parseDims(ref)
		if !p.check(token.ColonColon) {
			panic(p.unexpected(token.ColonColon))
		}
	})
	if !ok {
		return nil
	}
	return p.parseMethodReference(typ)
}

// nameToType reinterprets a dotted name chain as a reference type.
func nameToType(e ast.Expr) (*ast.ReferenceType, bool) {
	ref, ok := e.(*ast.MemberReference)
	if !ok {
		return nil, false
	}
	typ := &ast.ReferenceType{Span: ref.Span, Name: ref.Member}
	if ref.Qualifier != nil {
		qualifier, ok := nameToType(ref.Qualifier)
		if !ok {
			return nil, false
		}
		typ.Qualifier = qualifier
	}
	return typ, true
}

// parseMethodReference parses ::[<T>]name or ::new after target.
func (p *Parser) parseMethodReference(target ast.Node) ast.Expr {
	p.expect(token.ColonColon)
	var typeArgs *ast.TypeArguments
	if p.check(token.LT) {
		typeArgs = p.parseTypeArguments(false)
	}
	var method *ast.Identifier
	if tok := p.peek(); tok.Kind == token.New {
		p.advance()
		method = &ast.Identifier{Span: ast.Span{StartPos: tok.Pos, EndPos: tok.End}, Name: "new"}
	} else {
		method = p.parseIdentifier()
	}
	return &ast.MethodReference{Span: p.span(target.Pos()), Target: target, TypeArguments: typeArgs, Method: method}
}

func (p *Parser) parseArguments() []ast.Expr {
	p.expect(token.LParen)
	args := []ast.Expr{}
	if p.accept(token.RParen) {
		return args
	}
	for {
		args = append(args, p.parseExpression())
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return args
}

// parseCreator parses new ... after an optional outer instance.
func (p *Parser) parseCreator(outer ast.Expr) ast.Expr {
	newTok := p.expect(token.New)
	start := newTok.Pos
	if outer != nil {
		start = outer.Pos()
	}

	var typeArgs *ast.TypeArguments
	if p.check(token.LT) {
		typeArgs = p.parseTypeArguments(false)
	}

	p.skipTypeAnnotations()
	if p.peek().Kind.IsBasicType() {
		if typeArgs != nil || outer != nil {
			panic(p.unexpected(token.Ident))
		}
		return p.parseArrayCreatorRest(p.parsePrimitiveType(), start)
	}

	var typ *ast.ReferenceType
	if outer != nil {
		id := p.parseIdentifier()
		typ = &ast.ReferenceType{Name: id}
		if p.check(token.LT) {
			typ.Arguments = p.parseTypeArguments(true)
		}
		typ.Span = p.span(id.Pos())
	} else {
		typ = p.parseClassType(true)
	}

	if p.check(token.LBracket) {
		if typeArgs != nil || outer != nil {
			panic(p.unexpected(token.LParen))
		}
		return p.parseArrayCreatorRest(typ, start)
	}

	args := p.parseArguments()
	var body *ast.ClassBody
	if p.check(token.LBrace) {
		body = p.parseClassBody(false)
	}
	return &ast.ClassCreator{
		Span:          p.span(start),
		Outer:         outer,
		TypeArguments: typeArgs,
		Type:          typ,
		Arguments:     args,
		Body:          body,
	}
}

// parseArrayCreatorRest parses the dimensions and optional initializer of
// an array creator. Sized dimensions come first; without any the creator
// must have an initializer.
func (p *Parser) parseArrayCreatorRest(elem ast.Type, start token.Position) ast.Expr {
	var dims []ast.Expr
	sized := false
	for p.check(token.LBracket) {
		if p.peekN(1).Kind == token.RBracket {
			p.advance()
			p.advance()
			dims = append(dims, nil)
			continue
		}
		if len(dims) > 0 && dims[len(dims)-1] == nil {
			// new int[][3]
			panic(p.errorf("sized dimension after unsized dimension"))
		}
		p.advance()
		dims = append(dims, p.parseExpression())
		p.expect(token.RBracket)
		sized = true
	}

	creator := &ast.ArrayCreator{Type: elem, Dimensions: dims}
	if !sized {
		creator.Initializer = p.parseArrayInitializer()
	}
	creator.Span = p.span(start)
	return creator
}

func (p *Parser) parseArrayInitializer() *ast.ArrayInitializer {
	p.enter()
	defer p.leave()

	lbrace := p.expect(token.LBrace)
	inits := []ast.Expr{}
	for !p.check(token.RBrace) {
		if p.check(token.LBrace) {
			inits = append(inits, p.parseArrayInitializer())
		} else {
			inits = append(inits, p.parseExpression())
		}
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace)
	return &ast.ArrayInitializer{Span: p.span(lbrace.Pos), Initializers: inits}
}

// isLambdaStart reports whether the current token begins a lambda: an
// identifier followed by ->, or a parenthesized list followed by ->.
func (p *Parser) isLambdaStart() bool {
	switch p.peek().Kind {
	case token.Ident:
		return p.peekN(1).Kind == token.Arrow
	case token.LParen:
		depth := 0
		for i := p.pos; i < len(p.tokens); i++ {
			switch p.tokens[i].Kind {
			case token.LParen:
				depth++
			case token.RParen:
				depth--
				if depth == 0 {
					return i+1 < len(p.tokens) && p.tokens[i+1].Kind == token.Arrow
				}
			case token.EOF, token.Semicolon, token.LBrace, token.RBrace:
				return false
			}
		}
	}
	return false
}

func (p *Parser) parseLambda() ast.Expr {
	start := p.peek().Pos
	var params []ast.Node

	if p.check(token.Ident) {
		id := p.parseIdentifier()
		params = append(params, &ast.InferredParameter{Span: id.Span, Name: id})
	} else {
		params = p.parseLambdaParameters()
	}
	p.expect(token.Arrow)

	var body ast.Node
	if p.check(token.LBrace) {
		body = p.parseBlock()
	} else {
		body = p.parseExpression()
	}
	return &ast.Lambda{Span: p.span(start), Parameters: params, Body: body}
}

// parseLambdaParameters parses (), (a, b) or a formal parameter list.
func (p *Parser) parseLambdaParameters() []ast.Node {
	params := []ast.Node{}
	if p.peekN(1).Kind == token.RParen {
		p.expect(token.LParen)
		p.expect(token.RParen)
		return params
	}

	inferred := true
	for i := p.pos + 1; i < len(p.tokens); i += 2 {
		if p.tokens[i].Kind != token.Ident {
			inferred = false
			break
		}
		if next := p.tokens[i+1].Kind; next == token.RParen {
			break
		} else if next != token.Comma {
			inferred = false
			break
		}
	}

	if !inferred {
		for _, param := range p.parseFormalParameters() {
			params = append(params, param)
		}
		return params
	}

	p.expect(token.LParen)
	for {
		id := p.parseIdentifier()
		params = append(params, &ast.InferredParameter{Span: id.Span, Name: id})
		if !p.accept(token.Comma) {
			break
		}
	}
	p.expect(token.RParen)
	return params
}
