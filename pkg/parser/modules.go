package parser

import (
	"estree/pkg/ast"
	"estree/pkg/lexer"
)

// parseImportDeclaration parses every import form with curToken on
// `import`: a bare side-effect import, a default binding, a namespace
// binding, named bindings, and the default-plus-more combinations.
func (p *Parser) parseImportDeclaration() ast.Statement {
	decl := &ast.ImportDeclaration{Loc: tokenLoc(p.curToken)}

	// import "m";
	if p.peekTokenIs(lexer.STRING) {
		p.nextToken()
		decl.Source = p.parseStringLiteral().(*ast.StringLiteral)
		p.expectSemicolon()
		return decl
	}

	// import d ...
	if p.peekTokenIs(lexer.IDENT) {
		p.nextToken()
		decl.Specifiers = append(decl.Specifiers, &ast.ImportSpecifier{
			Loc:   tokenLoc(p.curToken),
			Kind:  ast.ImportDefault,
			Local: &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal},
		})
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else {
			return p.finishImportSource(decl)
		}
	}

	switch {
	case p.peekTokenIs(lexer.ASTERISK):
		p.nextToken()
		if !p.expectPeek(lexer.AS) {
			return nil
		}
		if !p.expectPeek(lexer.IDENT) {
			return nil
		}
		decl.Specifiers = append(decl.Specifiers, &ast.ImportSpecifier{
			Loc:   tokenLoc(p.curToken),
			Kind:  ast.ImportNamespace,
			Local: &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal},
		})
	case p.peekTokenIs(lexer.LBRACE):
		p.nextToken()
		specs, ok := p.parseNamedImports()
		if !ok {
			return nil
		}
		decl.Specifiers = append(decl.Specifiers, specs...)
	default:
		p.peekError(lexer.LBRACE)
		return nil
	}

	return p.finishImportSource(decl)
}

func (p *Parser) finishImportSource(decl *ast.ImportDeclaration) ast.Statement {
	if !p.expectPeek(lexer.FROM) {
		return nil
	}
	if !p.expectPeek(lexer.STRING) {
		return nil
	}
	decl.Source = p.parseStringLiteral().(*ast.StringLiteral)
	p.expectSemicolon()
	return decl
}

// parseNamedImports parses `{ a, b as c }` with curToken on the brace.
func (p *Parser) parseNamedImports() ([]*ast.ImportSpecifier, bool) {
	var specs []*ast.ImportSpecifier
	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		if !isNameToken(p.curToken) {
			p.addError(p.curToken, "expected import name, got %s", p.curToken.Type)
			return nil, false
		}
		imported := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
		local := imported
		if p.peekTokenIs(lexer.AS) {
			p.nextToken()
			if !p.expectPeek(lexer.IDENT) {
				return nil, false
			}
			local = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
		}
		specs = append(specs, &ast.ImportSpecifier{
			Loc: imported.Loc, Kind: ast.ImportNamed, Imported: imported, Local: local,
		})
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(lexer.RBRACE) {
			p.peekError(lexer.RBRACE)
			return nil, false
		}
	}
	p.nextToken() // onto }
	return specs, true
}

// parseExportDeclaration parses every export form with curToken on
// `export`.
func (p *Parser) parseExportDeclaration() ast.Statement {
	exportTok := p.curToken

	switch {
	case p.peekTokenIs(lexer.DEFAULT):
		p.nextToken()
		p.nextToken()
		var inner ast.Node
		switch p.curToken.Type {
		case lexer.FUNCTION:
			inner = p.parseFunctionLiteral(false)
		case lexer.CLASS:
			inner = p.parseClassExpression()
		case lexer.ASYNC:
			if p.peekTokenIs(lexer.FUNCTION) && p.peekToken.Line == p.curToken.Line {
				p.nextToken()
				inner = p.parseFunctionLiteral(true)
			} else {
				inner = p.parseExpression(COMMA)
			}
		default:
			inner = p.parseExpression(COMMA)
		}
		if inner == nil {
			return nil
		}
		p.expectSemicolon()
		return &ast.ExportDefaultDeclaration{Loc: tokenLoc(exportTok), Declaration: inner}

	case p.peekTokenIs(lexer.ASTERISK):
		p.nextToken()
		decl := &ast.ExportAllDeclaration{Loc: tokenLoc(exportTok)}
		if p.peekTokenIs(lexer.AS) {
			if !p.requireOption(p.opts.ExportStarAs, p.peekToken, "export * as") {
				return nil
			}
			p.nextToken()
			if !p.expectPeek(lexer.IDENT) {
				return nil
			}
			decl.Exported = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
		}
		if !p.expectPeek(lexer.FROM) {
			return nil
		}
		if !p.expectPeek(lexer.STRING) {
			return nil
		}
		decl.Source = p.parseStringLiteral().(*ast.StringLiteral)
		p.expectSemicolon()
		return decl

	case p.peekTokenIs(lexer.LBRACE):
		p.nextToken()
		decl := &ast.ExportNamedDeclaration{Loc: tokenLoc(exportTok)}
		specs, ok := p.parseExportSpecifiers()
		if !ok {
			return nil
		}
		decl.Specifiers = specs
		if p.peekTokenIs(lexer.FROM) {
			p.nextToken()
			if !p.expectPeek(lexer.STRING) {
				return nil
			}
			decl.Source = p.parseStringLiteral().(*ast.StringLiteral)
		}
		p.expectSemicolon()
		return decl

	case p.peekTokenIs(lexer.LET), p.peekTokenIs(lexer.CONST), p.peekTokenIs(lexer.VAR),
		p.peekTokenIs(lexer.FUNCTION), p.peekTokenIs(lexer.CLASS), p.peekTokenIs(lexer.ASYNC),
		p.peekTokenIs(lexer.AT):
		p.nextToken()
		inner := p.parseStatement()
		if inner == nil {
			return nil
		}
		return &ast.ExportNamedDeclaration{Loc: tokenLoc(exportTok), Declaration: inner}

	default:
		p.addError(p.peekToken, "unexpected %s after export", p.peekToken.Type)
		return nil
	}
}

// parseExportSpecifiers parses `{ a, b as c }` with curToken on the brace.
func (p *Parser) parseExportSpecifiers() ([]*ast.ExportSpecifier, bool) {
	var specs []*ast.ExportSpecifier
	for !p.peekTokenIs(lexer.RBRACE) {
		p.nextToken()
		if !isNameToken(p.curToken) {
			p.addError(p.curToken, "expected export name, got %s", p.curToken.Type)
			return nil, false
		}
		local := &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
		exported := local
		if p.peekTokenIs(lexer.AS) {
			p.nextToken()
			p.nextToken()
			if !isNameToken(p.curToken) {
				p.addError(p.curToken, "expected export alias, got %s", p.curToken.Type)
				return nil, false
			}
			exported = &ast.Identifier{Loc: tokenLoc(p.curToken), Name: p.curToken.Literal}
		}
		specs = append(specs, &ast.ExportSpecifier{Loc: local.Loc, Local: local, Exported: exported})
		if p.peekTokenIs(lexer.COMMA) {
			p.nextToken()
		} else if !p.peekTokenIs(lexer.RBRACE) {
			p.peekError(lexer.RBRACE)
			return nil, false
		}
	}
	p.nextToken() // onto }
	return specs, true
}
