package parser

import (
	"strconv"
	"strings"

	"estree/pkg/ast"
	"estree/pkg/lexer"
)

// parseExpression is the Pratt driver. It parses a prefix form for the
// current token, then folds in infix operators while their precedence binds
// tighter than the caller's.
func (p *Parser) parseExpression(precedence int) ast.Expression {
	prefix := p.prefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.noPrefixParseFnError(p.curToken)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}

	for !p.peekTokenIs(lexer.SEMICOLON) && precedence < p.peekPrecedence() {
		infix := p.infixParseFns[p.peekToken.Type]
		if infix == nil {
			return left
		}
		p.nextToken()
		left = infix(left)
		if left == nil {
			return nil
		}
	}
	return left
}

// --- Prefix forms ---

func (p *Parser) parseIdentifier() ast.Expression {
	ident := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	// `x => body` is an arrow with a single bare parameter. The arrow must
	// be on the same line, otherwise `x` stands alone and ASI applies.
	if p.peekTokenIs(lexer.ARROW) && p.peekToken.Line == p.curToken.Line {
		startTok := p.curToken
		p.nextToken() // onto =>
		return p.finishArrow(startTok, []ast.Pattern{ident}, nil, false)
	}
	return ident
}

func (p *Parser) parseNumberLiteral() ast.Expression {
	raw := p.curToken.Literal
	value, err := numericValue(raw)
	if err != nil {
		p.addError(p.curToken, "invalid number literal %q", raw)
		return nil
	}
	return &ast.NumberLiteral{Loc: tokenLoc(p.curToken), Value: value, Raw: raw}
}

// numericValue evaluates a numeric literal's raw text, including base
// prefixes and numeric separators.
func numericValue(raw string) (float64, error) {
	s := strings.ReplaceAll(raw, "_", "")
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			n, err := strconv.ParseUint(s[2:], 16, 64)
			return float64(n), err
		case 'b', 'B':
			n, err := strconv.ParseUint(s[2:], 2, 64)
			return float64(n), err
		case 'o', 'O':
			n, err := strconv.ParseUint(s[2:], 8, 64)
			return float64(n), err
		}
	}
	return strconv.ParseFloat(s, 64)
}

func (p *Parser) parseStringLiteral() ast.Expression {
	tok := p.curToken
	raw := p.source.Content[tok.StartPos:tok.EndPos]
	return &ast.StringLiteral{Loc: tokenLoc(tok), Value: tok.Literal, Raw: raw}
}

func (p *Parser) parseBooleanLiteral() ast.Expression {
	return &ast.BooleanLiteral{
		Loc:   tokenLoc(p.curToken),
		Value: p.curTokenIs(lexer.TRUE),
		Raw:   p.curToken.Literal,
	}
}

func (p *Parser) parseNullLiteral() ast.Expression {
	return &ast.NullLiteral{Loc: tokenLoc(p.curToken)}
}

func (p *Parser) parseThisExpression() ast.Expression {
	return &ast.ThisExpression{Loc: tokenLoc(p.curToken)}
}

// parseRegexLiteral re-scans a slash in prefix position as a regular
// expression literal and validates the pattern.
func (p *Parser) parseRegexLiteral() ast.Expression {
	tok, ok := p.l.ScanRegexFrom(p.curToken)
	if !ok {
		p.addError(p.curToken, "unterminated regular expression literal")
		return nil
	}
	// The old peek token was scanned past the slash; resynchronize.
	p.curToken = tok
	p.peekToken = p.scan()

	raw := tok.Literal
	end := strings.LastIndexByte(raw, '/')
	lit := &ast.RegExpLiteral{
		Loc:     tokenLoc(tok),
		Pattern: raw[1:end],
		Flags:   raw[end+1:],
		Raw:     raw,
	}
	if _, err := lit.Compile(); err != nil {
		p.addError(tok, "invalid regular expression: %v", err)
	}
	return lit
}

func (p *Parser) parsePrefixExpression() ast.Expression {
	tok := p.curToken
	operator := operatorText(tok)
	p.nextToken()
	arg := p.parseExpression(PREFIX)
	if arg == nil {
		return nil
	}
	return &ast.UnaryExpression{Loc: spanLoc(tok, arg), Operator: operator, Argument: arg}
}

func (p *Parser) parseUpdatePrefix() ast.Expression {
	tok := p.curToken
	p.nextToken()
	arg := p.parseExpression(PREFIX)
	if arg == nil {
		return nil
	}
	return &ast.UpdateExpression{
		Loc: spanLoc(tok, arg), Operator: string(tok.Type), Argument: arg, Prefix: true,
	}
}

func (p *Parser) parseUpdatePostfix(left ast.Expression) ast.Expression {
	return &ast.UpdateExpression{
		Loc: left.Pos(), Operator: string(p.curToken.Type), Argument: left, Prefix: false,
	}
}

// --- Infix forms ---

func (p *Parser) parseInfixExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	operator := operatorText(tok)
	precedence := p.curPrecedence()
	if tok.Type == lexer.EXPONENT {
		// Right-associative.
		precedence--
	}
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.BinaryExpression{Loc: left.Pos(), Operator: operator, Left: left, Right: right}
}

// operatorText yields the source spelling of an operator or operator-like
// keyword token.
func operatorText(tok lexer.Token) string {
	switch tok.Type {
	case lexer.IN:
		return "in"
	case lexer.INSTANCEOF:
		return "instanceof"
	case lexer.TYPEOF:
		return "typeof"
	case lexer.VOID:
		return "void"
	case lexer.DELETE:
		return "delete"
	}
	return string(tok.Type)
}

func (p *Parser) parseLogicalExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	if tok.Type == lexer.COALESCE &&
		!p.requireOption(p.opts.NullishCoalescing, tok, "nullish coalescing") {
		return nil
	}
	precedence := p.curPrecedence()
	p.nextToken()
	right := p.parseExpression(precedence)
	if right == nil {
		return nil
	}
	return &ast.LogicalExpression{Loc: left.Pos(), Operator: string(tok.Type), Left: left, Right: right}
}

func (p *Parser) parseAssignmentExpression(left ast.Expression) ast.Expression {
	tok := p.curToken
	if tok.Type == lexer.COALESCE_ASSIGN &&
		!p.requireOption(p.opts.NullishCoalescing, tok, "nullish coalescing") {
		return nil
	}
	p.nextToken()
	// Right-associative: parse the value at one level below ASSIGNMENT.
	right := p.parseExpression(COMMA)
	if right == nil {
		return nil
	}
	return &ast.AssignmentExpression{
		Loc: left.Pos(), Operator: string(tok.Type), Left: left, Right: right,
	}
}

func (p *Parser) parseConditionalExpression(test ast.Expression) ast.Expression {
	p.nextToken()
	consequent := p.parseExpression(COMMA)
	if consequent == nil {
		return nil
	}
	if !p.expectPeek(lexer.COLON) {
		return nil
	}
	p.nextToken()
	alternate := p.parseExpression(COMMA)
	if alternate == nil {
		return nil
	}
	return &ast.ConditionalExpression{
		Loc: test.Pos(), Test: test, Consequent: consequent, Alternate: alternate,
	}
}

func (p *Parser) parseSequenceExpression(left ast.Expression) ast.Expression {
	seq, ok := left.(*ast.SequenceExpression)
	if !ok {
		seq = &ast.SequenceExpression{Loc: left.Pos(), Expressions: []ast.Expression{left}}
	}
	p.nextToken()
	next := p.parseExpression(COMMA)
	if next == nil {
		return nil
	}
	seq.Expressions = append(seq.Expressions, next)
	return seq
}

func (p *Parser) parseTypeAssertion(left ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.requireOption(p.opts.Types, tok, "type syntax") {
		return nil
	}
	p.nextToken()
	typ := p.parseTypeExpression(TYPE_LOWEST)
	if typ == nil {
		return nil
	}
	return &ast.TypeAssertionExpression{Loc: left.Pos(), Expression: left, Type: typ}
}

// --- Calls, members, chains ---

func (p *Parser) parseCallExpression(callee ast.Expression) ast.Expression {
	args, ok := p.parseArguments()
	if !ok {
		return nil
	}
	return &ast.CallExpression{Loc: callee.Pos(), Callee: callee, Arguments: args}
}

// parseArguments parses `(a, b, ...c)` with curToken on the open paren.
func (p *Parser) parseArguments() ([]ast.Expression, bool) {
	var args []ast.Expression
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return args, true
	}
	for {
		p.nextToken()
		var arg ast.Expression
		if p.curTokenIs(lexer.SPREAD) {
			spreadTok := p.curToken
			p.nextToken()
			inner := p.parseExpression(COMMA)
			if inner == nil {
				return nil, false
			}
			arg = &ast.SpreadElement{Loc: spanLoc(spreadTok, inner), Argument: inner}
		} else {
			arg = p.parseExpression(COMMA)
			if arg == nil {
				return nil, false
			}
		}
		args = append(args, arg)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			if p.peekTokenIs(lexer.RPAREN) { // trailing comma
				p.nextToken()
				return args, true
			}
			continue
		}
		if !p.expectPeek(lexer.RPAREN) {
			return nil, false
		}
		return args, true
	}
}

func (p *Parser) parseIndexExpression(object ast.Expression) ast.Expression {
	p.nextToken()
	index := p.parseExpression(LOWEST)
	if index == nil {
		return nil
	}
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &ast.MemberExpression{
		Loc: object.Pos(), Object: object, Property: index, Computed: true,
	}
}

func (p *Parser) parseMemberExpression(object ast.Expression) ast.Expression {
	p.nextToken()
	if !isNameToken(p.curToken) {
		p.addError(p.curToken, "expected property name, got %s", p.curToken.Type)
		return nil
	}
	prop := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	return &ast.MemberExpression{Loc: object.Pos(), Object: object, Property: prop}
}

// parseOptionalChain handles the three `?.` forms: property access, computed
// access and call. The node it produces is the single optional trigger of
// its chain link.
func (p *Parser) parseOptionalChain(object ast.Expression) ast.Expression {
	tok := p.curToken
	if !p.requireOption(p.opts.OptionalChaining, tok, "optional chaining") {
		return nil
	}
	switch {
	case p.peekTokenIs(lexer.LBRACKET):
		p.nextToken() // onto [
		p.nextToken()
		index := p.parseExpression(LOWEST)
		if index == nil {
			return nil
		}
		if !p.expectPeek(lexer.RBRACKET) {
			return nil
		}
		return &ast.MemberExpression{
			Loc: object.Pos(), Object: object, Property: index, Computed: true, Optional: true,
		}
	case p.peekTokenIs(lexer.LPAREN):
		p.nextToken() // onto (
		args, ok := p.parseArguments()
		if !ok {
			return nil
		}
		return &ast.CallExpression{
			Loc: object.Pos(), Callee: object, Arguments: args, Optional: true,
		}
	default:
		p.nextToken()
		if !isNameToken(p.curToken) {
			p.addError(p.curToken, "expected property name after ?., got %s", p.curToken.Type)
			return nil
		}
		prop := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
		return &ast.MemberExpression{
			Loc: object.Pos(), Object: object, Property: prop, Optional: true,
		}
	}
}

// isNameToken reports whether a token can serve as a property name:
// identifiers plus any keyword.
func isNameToken(tok lexer.Token) bool {
	if tok.Type == lexer.IDENT {
		return true
	}
	return tok.Literal != "" && lexer.LookupIdent(tok.Literal) == tok.Type
}

func (p *Parser) parseNewExpression() ast.Expression {
	tok := p.curToken
	p.nextToken()
	// Bind member and index accesses to the callee but stop before the
	// argument list, which belongs to `new`.
	callee := p.parseExpression(CALL)
	if callee == nil {
		return nil
	}
	var args []ast.Expression
	if p.peekTokenIs(lexer.LPAREN) {
		p.nextToken()
		var ok bool
		args, ok = p.parseArguments()
		if !ok {
			return nil
		}
	}
	return &ast.NewExpression{Loc: spanLoc(tok, callee), Callee: callee, Arguments: args}
}

// --- Grouping and arrows ---

// parseGroupedOrArrow disambiguates `(` between a parenthesized expression
// and an arrow function parameter list by speculatively parsing the latter
// and backing out when no `=>` follows.
func (p *Parser) parseGroupedOrArrow() ast.Expression {
	startTok := p.curToken
	if arrow := p.tryParseArrowFunction(startTok, false); arrow != nil {
		return arrow
	}

	p.nextToken()
	if p.curTokenIs(lexer.RPAREN) {
		p.addError(p.curToken, "empty parenthesized expression")
		return nil
	}
	expr := p.parseExpression(LOWEST)
	if expr == nil {
		return nil
	}
	if !p.expectPeek(lexer.RPAREN) {
		return nil
	}
	return expr
}

// tryParseArrowFunction attempts `(params) [: type] => body` with curToken
// on the open paren. On failure the parser state is fully restored and nil
// is returned.
func (p *Parser) tryParseArrowFunction(startTok lexer.Token, async bool) ast.Expression {
	saved := p.saveState()

	params, ok := p.parseArrowParams()
	if ok {
		var retType ast.Expression
		if ok && p.opts.Types && p.peekTokenIs(lexer.COLON) {
			p.nextToken()
			p.nextToken()
			retType = p.parseTypeExpression(TYPE_LOWEST)
			if retType == nil {
				ok = false
			}
		}
		if ok && p.peekTokenIs(lexer.ARROW) {
			p.nextToken() // onto =>
			return p.finishArrowWith(startTok, params, retType, async)
		}
	}

	p.restoreState(saved)
	return nil
}

// parseArrowParams parses a parenthesized binding list with curToken on the
// open paren. Unlike expression parsing it never records errors; the caller
// backtracks on failure.
func (p *Parser) parseArrowParams() ([]ast.Pattern, bool) {
	var params []ast.Pattern
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params, true
	}
	for {
		p.nextToken()
		param, ok := p.parseBindingElement()
		if !ok {
			return nil, false
		}
		params = append(params, param)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			continue
		}
		if p.peekTokenIs(lexer.RPAREN) {
			p.nextToken()
			return params, true
		}
		return nil, false
	}
}

// finishArrow parses the arrow body with curToken on `=>`.
func (p *Parser) finishArrow(startTok lexer.Token, params []ast.Pattern, retType ast.Expression, async bool) ast.Expression {
	return p.finishArrowWith(startTok, params, retType, async)
}

func (p *Parser) finishArrowWith(startTok lexer.Token, params []ast.Pattern, retType ast.Expression, async bool) ast.Expression {
	arrow := &ast.ArrowFunctionLiteral{
		Params:     params,
		ReturnType: retType,
		Async:      async,
	}
	if async {
		p.inAsync++
		defer func() { p.inAsync-- }()
	}
	p.nextToken() // past =>
	if p.curTokenIs(lexer.LBRACE) {
		body := p.parseBlockStatement()
		if body == nil {
			return nil
		}
		markDirectivePrologue(body.Body)
		arrow.Body = body
	} else {
		expr := p.parseExpression(COMMA)
		if expr == nil {
			return nil
		}
		arrow.Body = &ast.ExprBody{Loc: expr.Pos(), Expr: expr}
	}
	arrow.Loc = spanLoc(startTok, arrow.Body)
	return arrow
}

// --- Async, await, yield ---

// parseAsyncExpression resolves the contextual keyword `async`: an async
// function literal, an async arrow, or the plain identifier.
func (p *Parser) parseAsyncExpression() ast.Expression {
	tok := p.curToken
	sameLine := p.peekToken.Line == tok.Line

	if sameLine && p.peekTokenIs(lexer.FUNCTION) {
		p.nextToken()
		return p.parseFunctionLiteral(true)
	}

	if sameLine && p.peekTokenIs(lexer.LPAREN) {
		saved := p.saveState()
		p.nextToken() // onto (
		if arrow := p.tryParseArrowFunction(tok, true); arrow != nil {
			return arrow
		}
		p.restoreState(saved)
	}

	if sameLine && p.peekTokenIs(lexer.IDENT) {
		saved := p.saveState()
		p.nextToken() // onto the identifier
		if p.peekTokenIs(lexer.ARROW) && p.peekToken.Line == p.curToken.Line {
			param := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
			p.nextToken() // onto =>
			return p.finishArrow(tok, []ast.Pattern{param}, nil, true)
		}
		p.restoreState(saved)
	}

	return &ast.Identifier{Loc: tokenLoc(tok), Name: tok.Literal}
}

func (p *Parser) parseAwaitExpression() ast.Expression {
	tok := p.curToken
	if p.inAsync == 0 {
		// Outside async contexts `await` is an ordinary identifier.
		return &ast.Identifier{Loc: tokenLoc(tok), Name: tok.Literal}
	}
	p.nextToken()
	arg := p.parseExpression(PREFIX)
	if arg == nil {
		return nil
	}
	return &ast.AwaitExpression{Loc: spanLoc(tok, arg), Argument: arg}
}

func (p *Parser) parseYieldExpression() ast.Expression {
	tok := p.curToken
	if p.inGenerator == 0 {
		p.addError(tok, "yield is only valid inside a generator")
		return nil
	}
	yield := &ast.YieldExpression{Loc: tokenLoc(tok)}
	if p.peekTokenIs(lexer.ASTERISK) {
		yield.Delegate = true
		p.nextToken()
	}
	// A line break after yield ends the expression; otherwise take an
	// argument when one can start here.
	if p.peekToken.Line == tok.Line && p.prefixParseFns[p.peekToken.Type] != nil &&
		!p.peekTokenIs(lexer.SEMICOLON) && !p.peekTokenIs(lexer.RPAREN) &&
		!p.peekTokenIs(lexer.RBRACE) && !p.peekTokenIs(lexer.RBRACKET) &&
		!p.peekTokenIs(lexer.COMMA) {
		p.nextToken()
		arg := p.parseExpression(COMMA)
		if arg == nil {
			return nil
		}
		yield.Argument = arg
	} else if yield.Delegate {
		p.addError(p.peekToken, "yield* requires an argument")
		return nil
	}
	return yield
}

// --- Array and object literals ---

func (p *Parser) parseArrayLiteral() ast.Expression {
	startTok := p.curToken
	arr := &ast.ArrayLiteral{}
	for {
		if p.peekTokenIs(lexer.RBRACKET) {
			p.nextToken()
			break
		}
		if p.peekTokenIs(lexer.COMMA) {
			// Elision hole.
			p.nextToken()
			arr.Elements = append(arr.Elements, nil)
			continue
		}
		p.nextToken()
		var el ast.Expression
		if p.curTokenIs(lexer.SPREAD) {
			spreadTok := p.curToken
			p.nextToken()
			inner := p.parseExpression(COMMA)
			if inner == nil {
				return nil
			}
			el = &ast.SpreadElement{Loc: spanLoc(spreadTok, inner), Argument: inner}
		} else {
			el = p.parseExpression(COMMA)
			if el == nil {
				return nil
			}
		}
		arr.Elements = append(arr.Elements, el)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(lexer.RBRACKET) {
			p.peekError(lexer.RBRACKET)
			return nil
		}
	}
	arr.Loc = spanLoc(startTok, nil)
	arr.Loc.End = ast.Position{Line: p.curToken.Line, Column: p.curToken.Column}
	return arr
}

func (p *Parser) parseObjectLiteral() ast.Expression {
	startTok := p.curToken
	obj := &ast.ObjectLiteral{}
	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		member := p.parseObjectMember()
		if member == nil {
			return nil
		}
		obj.Properties = append(obj.Properties, member)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(lexer.RBRACE) {
			p.peekError(lexer.RBRACE)
			return nil
		}
	}
	p.nextToken() // onto }
	obj.Loc = tokenLoc(startTok)
	obj.Loc.End = ast.Position{Line: p.curToken.Line, Column: p.curToken.Column}
	return obj
}

func (p *Parser) parseObjectMember() ast.ObjectMember {
	startTok := p.curToken

	if p.curTokenIs(lexer.SPREAD) {
		p.nextToken()
		arg := p.parseExpression(COMMA)
		if arg == nil {
			return nil
		}
		return &ast.SpreadElement{Loc: spanLoc(startTok, arg), Argument: arg}
	}

	// Accessors: `get name() {}` / `set name(v) {}`. A following colon,
	// comma, paren or brace means get/set is itself the key.
	if (p.curTokenIs(lexer.GET) || p.curTokenIs(lexer.SET)) &&
		!p.peekTokenIs(lexer.COLON) && !p.peekTokenIs(lexer.COMMA) &&
		!p.peekTokenIs(lexer.LPAREN) && !p.peekTokenIs(lexer.RBRACE) {
		kind := ast.PropertyGet
		if p.curTokenIs(lexer.SET) {
			kind = ast.PropertySet
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
		return &ast.Property{
			Loc: spanLoc(startTok, fn), Key: key, Value: fn, Kind: kind, Computed: computed,
		}
	}

	// Async and generator methods.
	async := false
	generator := false
	if p.curTokenIs(lexer.ASYNC) && !p.peekTokenIs(lexer.COLON) &&
		!p.peekTokenIs(lexer.COMMA) && !p.peekTokenIs(lexer.LPAREN) &&
		!p.peekTokenIs(lexer.RBRACE) && p.peekToken.Line == p.curToken.Line {
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

	switch {
	case p.peekTokenIs(lexer.LPAREN):
		fn := p.parseFunctionTail("", async, generator)
		if fn == nil {
			return nil
		}
		return &ast.Property{
			Loc: spanLoc(startTok, fn), Key: key, Value: fn,
			Kind: ast.PropertyMethod, Computed: computed,
		}
	case p.peekTokenIs(lexer.COLON):
		if async || generator {
			p.addError(p.curToken, "unexpected : after method name")
			return nil
		}
		p.nextToken()
		p.nextToken()
		value := p.parseExpression(COMMA)
		if value == nil {
			return nil
		}
		return &ast.Property{
			Loc: spanLoc(startTok, value), Key: key, Value: value,
			Kind: ast.PropertyInit, Computed: computed,
		}
	default:
		if async || generator || computed {
			p.peekError(lexer.LPAREN)
			return nil
		}
		ident, isIdent := key.(*ast.Identifier)
		if !isIdent {
			p.peekError(lexer.COLON)
			return nil
		}
		// Shorthand: mint a fresh value identifier with the same name so
		// key and value cannot drift apart.
		return &ast.Property{
			Loc: tokenLoc(startTok),
			Key: ident,
			Value: &ast.Identifier{
				Loc: tokenLoc(startTok), Name: ident.Name,
			},
			Kind:      ast.PropertyInit,
			Shorthand: true,
		}
	}
}

// parsePropertyKey parses an object or class member key with curToken on
// the key. Computed keys are bracketed expressions.
func (p *Parser) parsePropertyKey() (ast.Expression, bool, bool) {
	switch {
	case p.curTokenIs(lexer.LBRACKET):
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if key == nil {
			return nil, false, false
		}
		if !p.expectPeek(lexer.RBRACKET) {
			return nil, false, false
		}
		return key, true, true
	case p.curTokenIs(lexer.STRING):
		return p.parseStringLiteral(), false, true
	case p.curTokenIs(lexer.NUMBER):
		key := p.parseNumberLiteral()
		if key == nil {
			return nil, false, false
		}
		return key, false, true
	case isNameToken(p.curToken):
		return &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}, false, true
	default:
		p.addError(p.curToken, "expected property key, got %s", p.curToken.Type)
		return nil, false, false
	}
}

// --- Functions ---

func (p *Parser) parseFunctionExpression() ast.Expression {
	return p.parseFunctionLiteral(false)
}

// parseFunctionLiteral parses `function [*] [name] [<T>] (params) [: T]
// { body }` with curToken on `function`.
func (p *Parser) parseFunctionLiteral(async bool) ast.Expression {
	startTok := p.curToken
	generator := false
	if p.peekTokenIs(lexer.ASTERISK) {
		generator = true
		p.nextToken()
	}
	name := ""
	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		name = p.curToken.Literal
	}
	fn := p.parseFunctionTail(name, async, generator)
	if fn == nil {
		return nil
	}
	fn.Loc = spanLoc(startTok, fn.Body)
	return fn
}

// parseFunctionTail parses the shared suffix of every function-like form:
// optional type parameters, the parameter list, an optional return type and
// the block body. curToken sits on the token before `(` (or before `<`).
func (p *Parser) parseFunctionTail(name string, async, generator bool) *ast.FunctionLiteral {
	fn := &ast.FunctionLiteral{Async: async, Generator: generator}
	if name != "" {
		fn.Name = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: name}
	}

	if p.opts.Types && p.peekTokenIs(lexer.LT) {
		typeParams, ok := p.parseTypeParameters()
		if !ok {
			return nil
		}
		fn.TypeParams = typeParams
	}

	if !p.expectPeek(lexer.LPAREN) {
		return nil
	}
	params, ok := p.parseParameterList()
	if !ok {
		return nil
	}
	fn.Params = params

	if p.opts.Types && p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		retType := p.parseTypeExpression(TYPE_LOWEST)
		if retType == nil {
			return nil
		}
		fn.ReturnType = retType
	}

	if !p.expectPeek(lexer.LBRACE) {
		return nil
	}
	if generator {
		p.inGenerator++
	}
	if async {
		p.inAsync++
	}
	body := p.parseBlockStatement()
	if generator {
		p.inGenerator--
	}
	if async {
		p.inAsync--
	}
	if body == nil {
		return nil
	}
	markDirectivePrologue(body.Body)
	fn.Body = body
	fn.Loc = body.Pos()
	return fn
}

// parseParameterList parses bindings up to the closing paren, with curToken
// on the open paren. Unlike parseArrowParams this records errors.
func (p *Parser) parseParameterList() ([]ast.Pattern, bool) {
	var params []ast.Pattern
	if p.peekTokenIs(lexer.RPAREN) {
		p.nextToken()
		return params, true
	}
	for {
		p.nextToken()
		param, ok := p.parseBindingElement()
		if !ok {
			p.addError(p.curToken, "invalid parameter")
			return nil, false
		}
		params = append(params, param)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			continue
		}
		if !p.expectPeek(lexer.RPAREN) {
			return nil, false
		}
		return params, true
	}
}

// --- Binding patterns ---

// parseBindingElement parses one binding: a target pattern, an optional
// type annotation and an optional default. Rest elements wrap their target.
// It records no errors; callers decide whether failure is fatal.
func (p *Parser) parseBindingElement() (ast.Pattern, bool) {
	if p.curTokenIs(lexer.SPREAD) {
		restTok := p.curToken
		p.nextToken()
		target, ok := p.parseBindingTarget()
		if !ok {
			return nil, false
		}
		return &ast.RestElement{Loc: spanLoc(restTok, target), Argument: target}, true
	}

	pat, ok := p.parseBindingTarget()
	if !ok {
		return nil, false
	}

	if p.opts.Types && p.peekTokenIs(lexer.QUESTION) {
		ident, isIdent := pat.(*ast.Identifier)
		if !isIdent {
			return nil, false
		}
		ident.Optional = true
		p.nextToken()
	}

	if p.opts.Types && p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		typ := p.parseTypeExpression(TYPE_LOWEST)
		if typ == nil {
			return nil, false
		}
		if !setPatternType(pat, typ) {
			return nil, false
		}
	}

	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		def := p.parseExpression(COMMA)
		if def == nil {
			return nil, false
		}
		pat = &ast.AssignmentPattern{Loc: pat.Pos(), Left: pat, Right: def}
	}
	return pat, true
}

// parseBindingTarget parses the pattern core: a name, an array pattern or
// an object pattern.
func (p *Parser) parseBindingTarget() (ast.Pattern, bool) {
	switch {
	case p.curTokenIs(lexer.IDENT) || isContextualName(p.curToken):
		return &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}, true
	case p.curTokenIs(lexer.LBRACKET):
		return p.parseArrayPattern()
	case p.curTokenIs(lexer.LBRACE):
		return p.parseObjectPattern()
	default:
		return nil, false
	}
}

// isContextualName reports whether a keyword token may bind as a name.
func isContextualName(tok lexer.Token) bool {
	switch tok.Type {
	case lexer.OF, lexer.AS, lexer.FROM, lexer.GET, lexer.SET,
		lexer.STATIC, lexer.ASYNC, lexer.IMPLEMENTS:
		return true
	}
	return false
}

func (p *Parser) parseArrayPattern() (ast.Pattern, bool) {
	startTok := p.curToken
	pat := &ast.ArrayPattern{Loc: tokenLoc(startTok)}
	for {
		if p.peekTokenIs(lexer.RBRACKET) {
			p.nextToken()
			return pat, true
		}
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			pat.Elements = append(pat.Elements, nil)
			continue
		}
		p.nextToken()
		el, ok := p.parseBindingElement()
		if !ok {
			return nil, false
		}
		pat.Elements = append(pat.Elements, el)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(lexer.RBRACKET) {
			return nil, false
		}
	}
}

func (p *Parser) parseObjectPattern() (ast.Pattern, bool) {
	startTok := p.curToken
	pat := &ast.ObjectPattern{Loc: tokenLoc(startTok)}
	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		if p.curTokenIs(lexer.SPREAD) {
			restTok := p.curToken
			p.nextToken()
			target, ok := p.parseBindingTarget()
			if !ok {
				return nil, false
			}
			pat.Rest = &ast.RestElement{Loc: tokenLoc(restTok), Argument: target}
			if !p.peekTokenIs(lexer.RBRACE) {
				p.addError(p.peekToken, "rest property must be the last element")
				return nil, false
			}
			break
		}
		prop, ok := p.parsePatternProperty()
		if !ok {
			return nil, false
		}
		pat.Properties = append(pat.Properties, prop)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(lexer.RBRACE) {
			return nil, false
		}
	}
	p.nextToken() // onto }
	return pat, true
}

func (p *Parser) parsePatternProperty() (*ast.PatternProperty, bool) {
	startTok := p.curToken

	if p.curTokenIs(lexer.LBRACKET) {
		p.nextToken()
		key := p.parseExpression(LOWEST)
		if key == nil {
			return nil, false
		}
		if !p.expectPeek(lexer.RBRACKET) {
			return nil, false
		}
		if !p.expectPeek(lexer.COLON) {
			return nil, false
		}
		p.nextToken()
		value, ok := p.parseBindingElement()
		if !ok {
			return nil, false
		}
		return &ast.PatternProperty{
			Loc: tokenLoc(startTok), Key: key, Value: value, Computed: true,
		}, true
	}

	if !isNameToken(p.curToken) && !p.curTokenIs(lexer.STRING) {
		return nil, false
	}
	var key ast.Expression
	if p.curTokenIs(lexer.STRING) {
		key = p.parseStringLiteral()
	} else {
		key = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	}

	if p.peekTokenIs(lexer.COLON) {
		p.nextToken()
		p.nextToken()
		value, ok := p.parseBindingElement()
		if !ok {
			return nil, false
		}
		return &ast.PatternProperty{
			Loc: tokenLoc(startTok), Key: key, Value: value,
		}, true
	}

	// Shorthand, optionally with a default: `{a}` or `{a = 1}`.
	ident, isIdent := key.(*ast.Identifier)
	if !isIdent {
		return nil, false
	}
	var value ast.Pattern = &ast.Identifier{Loc: tokenLoc(startTok), Name: ident.Name}
	if p.peekTokenIs(lexer.ASSIGN) {
		p.nextToken()
		p.nextToken()
		def := p.parseExpression(COMMA)
		if def == nil {
			return nil, false
		}
		value = &ast.AssignmentPattern{Loc: tokenLoc(startTok), Left: value, Right: def}
	}
	return &ast.PatternProperty{
		Loc: tokenLoc(startTok), Key: ident, Value: value, Shorthand: true,
	}, true
}

// setPatternType attaches a type annotation to a pattern that can carry
// one.
func setPatternType(pat ast.Pattern, typ ast.Expression) bool {
	switch target := pat.(type) {
	case *ast.Identifier:
		target.TypeAnnotation = typ
	case *ast.ArrayPattern:
		target.TypeAnnotation = typ
	case *ast.ObjectPattern:
		target.TypeAnnotation = typ
	default:
		return false
	}
	return true
}
