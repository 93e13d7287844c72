package parser

import (
	"estree/pkg/ast"
	"estree/pkg/lexer"
)

var typePrecedences = map[lexer.TokenType]int{
	lexer.PIPE:     TYPE_UNION,
	lexer.LBRACKET: TYPE_ARRAY,
}

func (p *Parser) peekTypePrecedence() int {
	if prec, ok := typePrecedences[p.peekToken.Type]; ok {
		return prec
	}
	return TYPE_LOWEST
}

// parseTypeExpression is the Pratt driver for the annotation grammar.
func (p *Parser) parseTypeExpression(precedence int) ast.Expression {
	prefix := p.typePrefixParseFns[p.curToken.Type]
	if prefix == nil {
		p.addError(p.curToken, "expected type, got %s", p.curToken.Type)
		return nil
	}
	left := prefix()
	if left == nil {
		return nil
	}
	for precedence < p.peekTypePrecedence() {
		infix := p.typeInfixParseFns[p.peekToken.Type]
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

// parseTypeReference parses a type name with optional generic arguments.
// A bare name stays a plain identifier; only `Name<Args>` wraps it.
func (p *Parser) parseTypeReference() ast.Expression {
	name := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
	if !p.peekTokenIs(lexer.LT) {
		return name
	}
	args, ok := p.parseTypeArguments()
	if !ok {
		return nil
	}
	return &ast.TypeReference{Loc: name.Loc, Name: name, TypeArgs: args}
}

func (p *Parser) parseUnionType(left ast.Expression) ast.Expression {
	p.nextToken()
	right := p.parseTypeExpression(TYPE_UNION)
	if right == nil {
		return nil
	}
	return &ast.UnionType{Loc: left.Pos(), Left: left, Right: right}
}

// parseArrayType handles the postfix `[]` with curToken on the bracket.
func (p *Parser) parseArrayType(element ast.Expression) ast.Expression {
	if !p.expectPeek(lexer.RBRACKET) {
		return nil
	}
	return &ast.ArrayType{Loc: element.Pos(), Element: element}
}

// parseTypeParameters parses `<T, U extends V>` with peekToken on `<`.
func (p *Parser) parseTypeParameters() ([]*ast.TypeParameter, bool) {
	p.nextToken() // onto <
	var params []*ast.TypeParameter
	for {
		if !p.expectPeek(lexer.IDENT) {
			return nil, false
		}
		param := &ast.TypeParameter{
			Loc:  tokenLoc(p.curToken),
			Name: &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal},
		}
		if p.peekTokenIs(lexer.EXTENDS) {
			p.nextToken()
			p.nextToken()
			constraint := p.parseTypeExpression(TYPE_LOWEST)
			if constraint == nil {
				return nil, false
			}
			param.Constraint = constraint
		}
		params = append(params, param)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			continue
		}
		if !p.expectTypeGT() {
			return nil, false
		}
		return params, true
	}
}

// parseTypeArguments parses `<A, B>` with peekToken on `<`.
func (p *Parser) parseTypeArguments() ([]ast.Expression, bool) {
	p.nextToken() // onto <
	var args []ast.Expression
	for {
		p.nextToken()
		arg := p.parseTypeExpression(TYPE_LOWEST)
		if arg == nil {
			return nil, false
		}
		args = append(args, arg)
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
			continue
		}
		if !p.expectTypeGT() {
			return nil, false
		}
		return args, true
	}
}

// gtSplits maps composite tokens that begin with `>` to their remainder
// after one `>` is consumed. Nested generics like Foo<Bar<T>> lex the
// closing pair as a shift token, which the type grammar has to split.
var gtSplits = map[lexer.TokenType]lexer.TokenType{
	lexer.RIGHT_SHIFT:          lexer.GT,
	lexer.UNSIGNED_RIGHT_SHIFT: lexer.RIGHT_SHIFT,
	lexer.GE:                   lexer.ASSIGN,
}

// expectTypeGT consumes a closing `>` in a type context, splitting shift
// tokens when generic argument lists nest.
func (p *Parser) expectTypeGT() bool {
	if p.peekTokenIs(lexer.GT) {
		p.nextToken()
		return true
	}
	if rest, ok := gtSplits[p.peekToken.Type]; ok {
		tok := p.peekToken
		p.curToken = lexer.Token{
			Type: lexer.GT, Literal: ">",
			Line: tok.Line, Column: tok.Column,
			StartPos: tok.StartPos, EndPos: tok.StartPos + 1,
		}
		p.peekToken = lexer.Token{
			Type: rest, Literal: string(rest),
			Line: tok.Line, Column: tok.Column + 1,
			StartPos: tok.StartPos + 1, EndPos: tok.EndPos,
		}
		return true
	}
	p.peekError(lexer.GT)
	return false
}
