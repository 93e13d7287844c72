package parser

import (
	"estree/pkg/ast"
	"estree/pkg/lexer"
)

// parseDecoratedStatement parses `@expr ... class` with curToken on the
// first @. Decorators can only precede a class declaration at statement
// level.
func (p *Parser) parseDecoratedStatement() ast.Statement {
	decorators, ok := p.parseDecorators()
	if !ok {
		return nil
	}
	if !p.curTokenIs(lexer.CLASS) {
		p.addError(p.curToken, "decorators must precede a class declaration")
		return nil
	}
	return p.parseClassDeclaration(decorators)
}

// parseDecorators consumes a run of `@expr` with curToken on the first @,
// leaving curToken on the decorated construct.
func (p *Parser) parseDecorators() ([]ast.Expression, bool) {
	var decorators []ast.Expression
	for p.curTokenIs(lexer.AT) {
		if !p.requireOption(p.opts.Decorators, p.curToken, "decorators") {
			return nil, false
		}
		p.nextToken()
		// A decorator is a member chain or call, never a bare binary
		// expression.
		expr := p.parseExpression(ASSERTION)
		if expr == nil {
			return nil, false
		}
		decorators = append(decorators, expr)
		p.nextToken()
	}
	return decorators, true
}

func (p *Parser) parseClassDeclaration(decorators []ast.Expression) ast.Statement {
	startTok := p.curToken
	cls := p.parseClassLiteral()
	if cls == nil {
		return nil
	}
	if cls.Name == nil {
		p.addError(startTok, "class declaration requires a name")
		return nil
	}
	return &ast.ClassDeclaration{Loc: cls.Loc, Class: cls, Decorators: decorators}
}

func (p *Parser) parseClassExpression() ast.Expression {
	cls := p.parseClassLiteral()
	if cls == nil {
		return nil
	}
	return cls
}

// parseClassLiteral parses the shared class shape with curToken on `class`.
func (p *Parser) parseClassLiteral() *ast.ClassLiteral {
	cls := &ast.ClassLiteral{Loc: tokenLoc(p.curToken)}

	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		cls.Name = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	}

	if p.opts.Types && p.peekTokenIs(lexer.LT) {
		typeParams, ok := p.parseTypeParameters()
		if !ok {
			return nil
		}
		cls.TypeParams = typeParams
	}

	if p.peekTokenIs(lexer.EXTENDS) {
		p.nextToken()
		p.nextToken()
		// Bind member chains and calls to the superclass expression but
		// stop before `implements` and the class body.
		super := p.parseExpression(ASSERTION)
		if super == nil {
			return nil
		}
		cls.SuperClass = super
		if p.opts.Types && p.peekTokenIs(lexer.LT) {
			args, ok := p.parseTypeArguments()
			if !ok {
				return nil
			}
			cls.SuperTypeArgs = args
		}
	}

	if p.peekTokenIs(lexer.IMPLEMENTS) {
		if !p.requireOption(p.opts.Types, p.peekToken, "type syntax") {
			return nil
		}
		p.nextToken()
		for {
			if !p.expectPeek(lexer.IDENT) {
				return nil
			}
			impl := &ast.ClassImplements{
				Loc:  tokenLoc(p.curToken),
				Name: &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal},
			}
			if p.peekTokenIs(lexer.LT) {
				args, ok := p.parseTypeArguments()
				if !ok {
					return nil
				}
				impl.TypeArgs = args
			}
			cls.Implements = append(cls.Implements, impl)
			if !p.peekTokenIs(lexer.COMMA) {
				break
			}
			p.nextToken()
		}
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	for !p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.EOF) {
		if p.peekTokenIs(lexer.SEMICOLON) {
			p.nextToken()
			continue
		}
		p.nextToken()
		el := p.parseClassElement()
		if el == nil {
			return nil
		}
		cls.Body = append(cls.Body, el)
	}
	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	cls.Loc.End = ast.Position{Line: p.curToken.Line, Column: p.curToken.Column}
	return cls
}

// parseClassElement parses one method, accessor or field with curToken on
// its first token (a decorator, a modifier, or the key).
func (p *Parser) parseClassElement() ast.ClassElement {
	startTok := p.curToken

	var decorators []ast.Expression
	if p.curTokenIs(lexer.AT) {
		var ok bool
		decorators, ok = p.parseDecorators()
		if !ok {
			return nil
		}
	}

	static := false
	// `static` is a modifier unless it is immediately the member key.
	if p.curTokenIs(lexer.STATIC) && !p.peekTokenIs(lexer.LPAREN) &&
		!p.peekTokenIs(lexer.ASSIGN) && !p.peekTokenIs(lexer.COLON) &&
		!p.peekTokenIs(lexer.SEMICOLON) && !p.peekTokenIs(lexer.RBRACE) {
		static = true
		p.nextToken()
	}

	// Accessors.
	if (p.curTokenIs(lexer.GET) || p.curTokenIs(lexer.SET)) &&
		!p.peekTokenIs(lexer.LPAREN) && !p.peekTokenIs(lexer.ASSIGN) &&
		!p.peekTokenIs(lexer.COLON) && !p.peekTokenIs(lexer.SEMICOLON) &&
		!p.peekTokenIs(lexer.RBRACE) {
		kind := ast.MethodGet
		if p.curTokenIs(lexer.SET) {
			kind = ast.MethodSet
		}
		p.nextToken()
		key, computed, ok := p.parsePropertyKey()
		if !ok {
			return nil
		}
		fn := p.parseFunctionTail("", false, false)
		if fn == nil {
			return nil
		}
		return &ast.MethodDefinition{
			Loc: spanLoc(startTok, fn), Key: key, Kind: kind, Value: fn,
			Static: static, Computed: computed, Decorators: decorators,
		}
	}

	async := false
	generator := false
	if p.curTokenIs(lexer.ASYNC) && !p.peekTokenIs(lexer.LPAREN) &&
		!p.peekTokenIs(lexer.ASSIGN) && !p.peekTokenIs(lexer.COLON) &&
		!p.peekTokenIs(lexer.SEMICOLON) && !p.peekTokenIs(lexer.RBRACE) &&
		p.peekToken.Line == p.curToken.Line {
		async = true
		p.nextToken()
	}
	if p.curTokenIs(lexer.ASTERISK) {
		generator = true
		p.nextToken()
	}

	key, computed, ok := p.parsePropertyKey()
	if !ok {
		return nil
	}

	if p.peekTokenIs(lexer.LPAREN) || (p.opts.Types && p.peekTokenIs(lexer.LT)) {
		fn := p.parseFunctionTail("", async, generator)
		if fn == nil {
			return nil
		}
		kind := ast.MethodMethod
		if ident, isIdent := key.(*ast.Identifier); isIdent && !computed &&
			!static && ident.Name == "constructor" {
			kind = ast.MethodConstructor
		}
		return &ast.MethodDefinition{
			Loc: spanLoc(startTok, fn), Key: key, Kind: kind, Value: fn,
			Static: static, Computed: computed, Decorators: decorators,
		}
	}

	// Field.
	if async || generator {
		p.peekError(lexer.LPAREN)
		return nil
	}
	if !p.requireOption(p.opts.ClassFields, p.curToken, "class fields") {
		return nil
	}
	field := &ast.PropertyDefinition{
		Loc: tokenLoc(startTok), Key: key,
		Static: static, Computed: computed, Decorators: decorators,
	}
	if p.peekTokenIs(lexer.QUESTION) {
		if !p.requireOption(p.opts.Types, p.peekToken, "type syntax") {
			return nil
		}
		field.Optional = true
		p.nextToken()
	}
	if p.opts.Types && p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		typ := p.parseTypeExpression(TYPE_LOWEST)
		if typ == nil {
			return nil
		}
		field.TypeAnnotation = typ
	}
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(COMMA)
		if value == nil {
			return nil
		}
		field.Value = value
	}
	p.expectSemicolon()
	return field
}
