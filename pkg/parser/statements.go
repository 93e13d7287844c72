package parser

import (
	"estree/pkg/ast"
	"estree/pkg/lexer"
)

// parseStatement dispatches on the leading token.
func (p *Parser) parseStatement() ast.Statement {
	switch p.curToken.Type {
	case lexer.LET, lexer.CONST, lexer.VAR:
		return p.parseVariableStatement()
	case lexer.FUNCTION:
		return p.parseFunctionDeclaration(false)
	case lexer.ASYNC:
		if p.peekTokenIs(lexer.FUNCTION) && p.peekToken.Line == p.curToken.Line {
			p.nextToken()
			return p.parseFunctionDeclaration(true)
		}
		return p.parseExpressionStatement()
	case lexer.CLASS:
		return p.parseClassDeclaration(nil)
	case lexer.AT:
		return p.parseDecoratedStatement()
	case lexer.LBRACE:
		return p.parseBlockStatement()
	case lexer.SEMICOLON:
		return &ast.EmptyStatement{Loc: tokenLoc(p.curToken)}
	case lexer.RETURN:
		return p.parseReturnStatement()
	case lexer.IF:
		return p.parseIfStatement()
	case lexer.WHILE:
		return p.parseWhileStatement()
	case lexer.DO:
		return p.parseDoWhileStatement()
	case lexer.FOR:
		return p.parseForStatement()
	case lexer.BREAK:
		return p.parseBreakStatement()
	case lexer.CONTINUE:
		return p.parseContinueStatement()
	case lexer.THROW:
		return p.parseThrowStatement()
	case lexer.TRY:
		return p.parseTryStatement()
	case lexer.SWITCH:
		return p.parseSwitchStatement()
	case lexer.IMPORT:
		return p.parseImportDeclaration()
	case lexer.EXPORT:
		return p.parseExportDeclaration()
	case lexer.IDENT:
		if p.peekTokenIs(lexer.COLON) {
			return p.parseLabeledStatement()
		}
		return p.parseExpressionStatement()
	default:
		return p.parseExpressionStatement()
	}
}

// parseBlockStatement parses `{ stmts }` with curToken on the open brace.
func (p *Parser) parseBlockStatement() *ast.BlockStatement {
	block := &ast.BlockStatement{Loc: tokenLoc(p.curToken)}
	p.nextToken()
	for !p.curTokenIs(lexer.RBRACE) && !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			block.Body = append(block.Body, stmt)
		}
		p.nextToken()
	}
	if p.curTokenIs(lexer.EOF) {
		p.addError(p.curToken, "unterminated block, expected }")
		return nil
	}
	block.Loc.End = ast.Position{Line: p.curToken.Line, Column: p.curToken.Column}
	return block
}

func (p *Parser) parseExpressionStatement() ast.Statement {
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	stmt := &ast.ExpressionStatement{Loc: expr.Pos(), Expression: expr}
	p.expectSemicolon()
	return stmt
}

// --- Declarations ---

func (p *Parser) parseVariableStatement() ast.Statement {
	decl := p.parseVariableDeclaration()
	if decl == nil {
		return nil
	}
	p.expectSemicolon()
	return decl
}

// parseVariableDeclaration parses `kind pattern [: T] [= init], ...` with
// curToken on the kind keyword. It does not consume a terminator, so for
// statements can reuse it.
func (p *Parser) parseVariableDeclaration() *ast.VariableDeclaration {
	startTok := p.curToken
	decl := &ast.VariableDeclaration{
		Loc:  tokenLoc(startTok),
		Kind: ast.DeclKind(startTok.Literal),
	}
	for {
		p.nextToken()
		d := p.parseVariableDeclarator()
		if d == nil {
			return nil
		}
		decl.Declarations = append(decl.Declarations, d)
		if !p.peekTokenIs(lexer.COMMA) {
			break
		}
		p.nextToken()
	}
	if decl.Kind == ast.DeclConst {
		for _, d := range decl.Declarations {
			if d.Init == nil {
				p.addError(startTok, "const declaration of %s requires an initializer", d.Name.String())
			}
		}
	}
	return decl
}

func (p *Parser) parseVariableDeclarator() *ast.VariableDeclarator {
	startTok := p.curToken
	target, ok := p.parseBindingTarget()
	if !ok {
		p.addError(p.curToken, "expected binding target, got %s", p.curToken.Type)
		return nil
	}
	if p.opts.Types && p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		typ := p.parseTypeExpression(TYPE_LOWEST)
		if typ == nil {
			return nil
		}
		setPatternType(target, typ)
	}
	d := &ast.VariableDeclarator{Loc: tokenLoc(startTok), Name: target}
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		init := p.parseExpression(COMMA)
		if init == nil {
			return nil
		}
		d.Init = init
	}
	return d
}

func (p *Parser) parseFunctionDeclaration(async bool) ast.Statement {
	expr := p.parseFunctionLiteral(async)
	if expr == nil {
		return nil
	}
	fn := expr.(*ast.FunctionLiteral)
	if fn.Name == nil {
		p.addError(p.curToken, "function declaration requires a name")
		return nil
	}
	return &ast.FunctionDeclaration{Loc: fn.Loc, Fn: fn}
}

// --- Control flow ---

func (p *Parser) parseReturnStatement() ast.Statement {
	stmt := &ast.ReturnStatement{Loc: tokenLoc(p.curToken)}
	if p.peekTokenIs(lexer.SEMICOLON) || p.peekTokenIs(lexer.RBRACE) ||
		p.peekTokenIs(lexer.EOF) || p.peekToken.Line > p.curToken.Line {
		p.expectSemicolon()
		return stmt
	}
	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	stmt.Argument = arg
	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseIfStatement() ast.Statement {
	stmt := &ast.IfStatement{Loc: tokenLoc(p.curToken)}
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Test = p.parseExpression(LOWEST)
	if stmt.Test == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Consequent = p.parseStatement()
	if stmt.Consequent == nil {
		return nil
	}
	if p.peekTokenIs(lexer.ELSE) {
		p.nextToken()
		p.nextToken()
		stmt.Alternate = p.parseStatement()
		if stmt.Alternate == nil {
			return nil
		}
	}
	return stmt
}

func (p *Parser) parseWhileStatement() ast.Statement {
	stmt := &ast.WhileStatement{Loc: tokenLoc(p.curToken)}
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Test = p.parseExpression(LOWEST)
	if stmt.Test == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseDoWhileStatement() ast.Statement {
	stmt := &ast.DoWhileStatement{Loc: tokenLoc(p.curToken)}
	p.nextToken()
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	if !p.expectPeek(lexer.WHILE) {
		return nil
	}
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Test = p.parseExpression(LOWEST)
	if stmt.Test == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	p.expectSemicolon()
	return stmt
}

// parseForStatement disambiguates the three for forms by the header: a
// classic three-part loop, for-in, or for-of (optionally `for await`).
func (p *Parser) parseForStatement() ast.Statement {
	startTok := p.curToken

	isAwait := false
	if p.peekTokenIs(lexer.AWAIT) {
		isAwait = true
		if p.inAsync == 0 {
			p.addError(p.peekToken, "for await is only valid inside an async function")
		}
		p.nextToken()
	}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}

	// Empty initializer.
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		if isAwait {
			p.addError(p.curToken, "for await requires the of form")
		}
		return p.parseClassicForTail(startTok, nil)
	}

	if p.peekTokenIs(lexer.LET) || p.peekTokenIs(lexer.CONST) || p.peekTokenIs(lexer.VAR) {
		p.nextToken()
		kindTok := p.curToken
		kind := ast.DeclKind(kindTok.Literal)

		p.nextToken()
		target, ok := p.parseBindingTarget()
		if !ok {
			p.addError(p.curToken, "expected binding target in for loop, got %s", p.curToken.Type)
			return nil
		}
		if p.opts.Types && p.peekTokenIs(lexer.COLON) {
			p.nextToken()
			p.nextToken()
			typ := p.parseTypeExpression(TYPE_LOWEST)
			if typ == nil {
				return nil
			}
			setPatternType(target, typ)
		}

		if p.peekTokenIs(lexer.IN) || p.peekTokenIs(lexer.OF) {
			left := &ast.VariableDeclaration{
				Loc:  tokenLoc(kindTok),
				Kind: kind,
				Declarations: []*ast.VariableDeclarator{
					{Loc: target.Pos(), Name: target},
				},
			}
			return p.parseForInOfTail(startTok, left, isAwait)
		}

		if isAwait {
			p.addError(p.curToken, "for await requires the of form")
		}

		// Classic loop with a declaration initializer. Finish the first
		// declarator, then any further ones.
		decl := &ast.VariableDeclaration{Loc: tokenLoc(kindTok), Kind: kind}
		first := &ast.VariableDeclarator{Loc: target.Pos(), Name: target}
		if p.peekTokenIs(lexer.ASSIGN) {
			p.nextToken()
			p.nextToken()
			p.noIn = true
			init := p.parseExpression(COMMA)
			p.noIn = false
			if init == nil {
				return nil
			}
			first.Init = init
		}
		decl.Declarations = append(decl.Declarations, first)
		for p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			p.nextToken()
			p.noIn = true
			d := p.parseVariableDeclarator()
			p.noIn = false
			if d == nil {
				return nil
			}
			decl.Declarations = append(decl.Declarations, d)
		}
		if !p.expectPeek(lexer.SEMICOLON) {
			return nil
		}
		return p.parseClassicForTail(startTok, decl)
	}

	// Expression initializer, or the left side of for-in / for-of.
	p.nextToken()
	p.noIn = true
	expr := p.parseExpression(LOWEST)
	p.noIn = false
	if expr == nil {
		return nil
	}

	if p.peekTokenIs(lexer.IN) || p.peekTokenIs(lexer.OF) {
		left := p.exprToForTarget(expr)
		if left == nil {
			return nil
		}
		return p.parseForInOfTail(startTok, left, isAwait)
	}

	if isAwait {
		p.addError(p.curToken, "for await requires the of form")
	}
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}
	init := &ast.ExpressionStatement{Loc: expr.Pos(), Expression: expr}
	return p.parseClassicForTail(startTok, init)
}

// parseClassicForTail parses `; test ; update ) body` with curToken on the
// first semicolon.
func (p *Parser) parseClassicForTail(startTok lexer.Token, init ast.Statement) ast.Statement {
	stmt := &ast.ForStatement{Loc: tokenLoc(startTok), Init: init}

	if !p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		stmt.Test = p.parseExpression(LOWEST)
		if stmt.Test == nil {
			return nil
		}
	}
	if !p.expectPeek(lexer.SEMICOLON) {
		return nil
	}

	if !p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		stmt.Update = p.parseExpression(LOWEST)
		if stmt.Update == nil {
			return nil
		}
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}

	p.nextToken()
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

// parseForInOfTail parses `in/of right ) body` with the left side done and
// peekToken on in/of.
func (p *Parser) parseForInOfTail(startTok lexer.Token, left ast.ForTarget, isAwait bool) ast.Statement {
	p.nextToken()
	isOf := p.curTokenIs(lexer.OF)
	if isAwait && !isOf {
		p.addError(p.curToken, "for await requires the of form")
	}

	p.nextToken()
	right := p.parseExpression(LOWEST)
	if right == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	p.nextToken()
	body := p.parseStatement()
	if body == nil {
		return nil
	}

	if isOf {
		return &ast.ForOfStatement{
			Loc: tokenLoc(startTok), Left: left, Right: right, Body: body, Await: isAwait,
		}
	}
	return &ast.ForInStatement{
		Loc: tokenLoc(startTok), Left: left, Right: right, Body: body,
	}
}

// exprToForTarget reinterprets an already-parsed expression as a for-in /
// for-of assignment target.
func (p *Parser) exprToForTarget(expr ast.Expression) ast.ForTarget {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e
	case *ast.MemberExpression:
		return e
	case *ast.ArrayLiteral:
		pat := p.exprToPattern(e)
		if pat == nil {
			return nil
		}
		return pat.(*ast.ArrayPattern)
	case *ast.ObjectLiteral:
		pat := p.exprToPattern(e)
		if pat == nil {
			return nil
		}
		return pat.(*ast.ObjectPattern)
	default:
		p.addError(p.curToken, "invalid left side in for loop")
		return nil
	}
}

// exprToPattern converts expression syntax that was parsed before the
// destructuring context was known.
func (p *Parser) exprToPattern(expr ast.Expression) ast.Pattern {
	switch e := expr.(type) {
	case *ast.Identifier:
		return e
	case *ast.ArrayLiteral:
		pat := &ast.ArrayPattern{Loc: e.Loc}
		for _, el := range e.Elements {
			if el == nil {
				pat.Elements = append(pat.Elements, nil)
				continue
			}
			sub := p.exprToPattern(el)
			if sub == nil {
				return nil
			}
			pat.Elements = append(pat.Elements, sub)
		}
		return pat
	case *ast.ObjectLiteral:
		pat := &ast.ObjectPattern{Loc: e.Loc}
		for i, member := range e.Properties {
			if spread, ok := member.(*ast.SpreadElement); ok {
				if i != len(e.Properties)-1 {
					p.addError(p.curToken, "rest property must be the last element")
					return nil
				}
				target := p.exprToPattern(spread.Argument)
				if target == nil {
					return nil
				}
				pat.Rest = &ast.RestElement{Loc: spread.Loc, Argument: target}
				continue
			}
			prop, ok := member.(*ast.Property)
			if !ok || prop.Kind != ast.PropertyInit {
				p.addError(p.curToken, "invalid destructuring property")
				return nil
			}
			value := p.exprToPattern(prop.Value)
			if value == nil {
				return nil
			}
			pat.Properties = append(pat.Properties, &ast.PatternProperty{
				Loc: prop.Loc, Key: prop.Key, Value: value,
				Computed: prop.Computed, Shorthand: prop.Shorthand,
			})
		}
		return pat
	case *ast.AssignmentExpression:
		if e.Operator != "=" {
			p.addError(p.curToken, "invalid destructuring default")
			return nil
		}
		left := p.exprToPattern(e.Left)
		if left == nil {
			return nil
		}
		return &ast.AssignmentPattern{Loc: e.Loc, Left: left, Right: e.Right}
	case *ast.SpreadElement:
		arg := p.exprToPattern(e.Argument)
		if arg == nil {
			return nil
		}
		return &ast.RestElement{Loc: e.Loc, Argument: arg}
	default:
		p.addError(p.curToken, "invalid destructuring target")
		return nil
	}
}

func (p *Parser) parseLabeledStatement() ast.Statement {
	label := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	stmt := &ast.LabeledStatement{Loc: tokenLoc(p.curToken), Label: label}
	p.nextToken() // onto :
	p.nextToken()
	stmt.Body = p.parseStatement()
	if stmt.Body == nil {
		return nil
	}
	return stmt
}

func (p *Parser) parseBreakStatement() ast.Statement {
	stmt := &ast.BreakStatement{Loc: tokenLoc(p.curToken)}
	if p.peekTokenIs(lexer.IDENT) && p.peekToken.Line == p.curToken.Line {
		p.nextToken()
		stmt.Label = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	}
	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseContinueStatement() ast.Statement {
	stmt := &ast.ContinueStatement{Loc: tokenLoc(p.curToken)}
	if p.peekTokenIs(lexer.IDENT) && p.peekToken.Line == p.curToken.Line {
		p.nextToken()
		stmt.Label = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	}
	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseThrowStatement() ast.Statement {
	tok := p.curToken
	if p.peekToken.Line > tok.Line {
		p.addError(p.peekToken, "newline not allowed after throw")
		return nil
	}
	p.nextToken()
	arg := p.parseExpression(LOWEST)
	if arg == nil {
		return nil
	}
	stmt := &ast.ThrowStatement{Loc: spanLoc(tok, arg), Argument: arg}
	p.expectSemicolon()
	return stmt
}

func (p *Parser) parseTryStatement() ast.Statement {
	stmt := &ast.TryStatement{Loc: tokenLoc(p.curToken)}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	stmt.Block = p.parseBlockStatement()
	if stmt.Block == nil {
		return nil
	}

	if p.peekTokenIs(lexer.CATCH) {
		p.nextToken()
		handler := &ast.CatchClause{Loc: tokenLoc(p.curToken)}
		if p.peekTokenIs(lexer.LPAREN) {
			p.nextToken()
			p.nextToken()
			param, ok := p.parseBindingElement()
			if !ok {
				p.addError(p.curToken, "invalid catch parameter")
				return nil
			}
			handler.Param = param
			if !p.expectPeek(lexer.RPAREN) {
				return nil
			}
		}
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		handler.Body = p.parseBlockStatement()
		if handler.Body == nil {
			return nil
		}
		stmt.Handler = handler
	}

	if p.peekTokenIs(lexer.FINALLY) {
		p.nextToken()
		if !p.expectPeek(lexer.LBRACE) {
			return nil
		}
		stmt.Finalizer = p.parseBlockStatement()
		if stmt.Finalizer == nil {
			return nil
		}
	}

	if stmt.Handler == nil && stmt.Finalizer == nil {
		p.addError(p.curToken, "try requires catch or finally")
		return nil
	}
	return stmt
}

func (p *Parser) parseSwitchStatement() ast.Statement {
	stmt := &ast.SwitchStatement{Loc: tokenLoc(p.curToken)}
	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	p.nextToken()
	stmt.Discriminant = p.parseExpression(LOWEST)
	if stmt.Discriminant == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}

	sawDefault := false
	for p.peekTokenIs(lexer.CASE) || p.peekTokenIs(lexer.DEFAULT) {
		p.nextToken()
		c := &ast.SwitchCase{Loc: tokenLoc(p.curToken)}
		if p.curTokenIs(lexer.CASE) {
			p.nextToken()
			c.Test = p.parseExpression(LOWEST)
			if c.Test == nil {
				return nil
			}
		} else {
			if sawDefault {
				p.addError(p.curToken, "multiple default clauses in switch")
			}
			sawDefault = true
		}
		if !p.expectPeek(lexer.COLON) {
			return nil
		}
		for !p.peekTokenIs(lexer.CASE) && !p.peekTokenIs(lexer.DEFAULT) &&
			!p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.EOF) {
			p.nextToken()
			s := p.parseStatement()
			if s == nil {
				return nil
			}
			c.Consequent = append(c.Consequent, s)
		}
		stmt.Cases = append(stmt.Cases, c)
	}

	if !p.expectPeek(lexer.RBRACE) {
		return nil
	}
	return stmt
}
