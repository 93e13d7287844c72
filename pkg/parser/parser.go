// Package parser turns source text into the syntax tree defined in pkg/ast.
// It is a Pratt parser: statement forms are dispatched on the leading token,
// and expressions are driven by per-token prefix and infix functions plus a
// precedence ladder.
package parser

import (
	"estree/pkg/ast"
	"estree/pkg/errors"
	"estree/pkg/lexer"
	"estree/pkg/source"
)

// Parser consumes tokens from a lexer and builds an AST.
type Parser struct {
	l      *lexer.Lexer
	source *source.File // cached from lexer
	opts   *Options
	errors []errors.SourceError

	curToken  lexer.Token
	peekToken lexer.Token

	// Pratt tables for value expressions.
	prefixParseFns map[lexer.TokenType]prefixParseFn
	infixParseFns  map[lexer.TokenType]infixParseFn

	// Pratt tables for type annotations.
	typePrefixParseFns map[lexer.TokenType]typePrefixParseFn
	typeInfixParseFns  map[lexer.TokenType]typeInfixParseFn

	// Comments encountered so far, in source order.
	comments []*ast.Comment

	// Context tracking. Counters, not booleans, because functions nest.
	inGenerator int
	inAsync     int

	// noIn suppresses the `in` operator while a for-statement header is
	// being disambiguated.
	noIn bool
}

type (
	prefixParseFn     func() ast.Expression
	infixParseFn      func(ast.Expression) ast.Expression
	typePrefixParseFn func() ast.Expression
	typeInfixParseFn  func(ast.Expression) ast.Expression
)

// Precedence levels for value operators, lowest first.
const (
	_ int = iota
	LOWEST
	COMMA       // ,
	ASSIGNMENT  // =, +=, ??=, ...
	TERNARY     // ?:
	NULLISH     // ??
	LOGICAL_OR  // ||
	LOGICAL_AND // &&
	BITWISE_OR  // |
	BITWISE_XOR // ^
	BITWISE_AND // &
	EQUALS      // ==, !=, ===, !==
	LESSGREATER // <, >, <=, >=, in, instanceof
	SHIFT       // <<, >>, >>>
	SUM         // +, -
	PRODUCT     // *, /, %
	POWER       // ** (right-associative)
	PREFIX      // !x, -x, typeof x
	POSTFIX     // x++, x--
	ASSERTION   // x as T
	CALL        // f(x)
	INDEX       // a[i]
	MEMBER      // a.b, a?.b
)

// Precedence levels for type operators.
const (
	_ int = iota
	TYPE_LOWEST
	TYPE_UNION // |
	TYPE_ARRAY // T[]
)

var precedences = map[lexer.TokenType]int{
	lexer.COMMA: COMMA,

	lexer.ASSIGN:                      ASSIGNMENT,
	lexer.PLUS_ASSIGN:                 ASSIGNMENT,
	lexer.MINUS_ASSIGN:                ASSIGNMENT,
	lexer.ASTERISK_ASSIGN:             ASSIGNMENT,
	lexer.SLASH_ASSIGN:                ASSIGNMENT,
	lexer.REMAINDER_ASSIGN:            ASSIGNMENT,
	lexer.EXPONENT_ASSIGN:             ASSIGNMENT,
	lexer.BITWISE_AND_ASSIGN:          ASSIGNMENT,
	lexer.BITWISE_OR_ASSIGN:           ASSIGNMENT,
	lexer.BITWISE_XOR_ASSIGN:          ASSIGNMENT,
	lexer.LEFT_SHIFT_ASSIGN:           ASSIGNMENT,
	lexer.RIGHT_SHIFT_ASSIGN:          ASSIGNMENT,
	lexer.UNSIGNED_RIGHT_SHIFT_ASSIGN: ASSIGNMENT,
	lexer.LOGICAL_AND_ASSIGN:          ASSIGNMENT,
	lexer.LOGICAL_OR_ASSIGN:           ASSIGNMENT,
	lexer.COALESCE_ASSIGN:             ASSIGNMENT,

	lexer.QUESTION: TERNARY,
	lexer.COALESCE: NULLISH,

	lexer.LOGICAL_OR:  LOGICAL_OR,
	lexer.LOGICAL_AND: LOGICAL_AND,

	lexer.PIPE:        BITWISE_OR,
	lexer.BITWISE_XOR: BITWISE_XOR,
	lexer.BITWISE_AND: BITWISE_AND,

	lexer.EQ:            EQUALS,
	lexer.NOT_EQ:        EQUALS,
	lexer.STRICT_EQ:     EQUALS,
	lexer.STRICT_NOT_EQ: EQUALS,

	lexer.LT:         LESSGREATER,
	lexer.GT:         LESSGREATER,
	lexer.LE:         LESSGREATER,
	lexer.GE:         LESSGREATER,
	lexer.IN:         LESSGREATER,
	lexer.INSTANCEOF: LESSGREATER,

	lexer.LEFT_SHIFT:           SHIFT,
	lexer.RIGHT_SHIFT:          SHIFT,
	lexer.UNSIGNED_RIGHT_SHIFT: SHIFT,

	lexer.PLUS:  SUM,
	lexer.MINUS: SUM,

	lexer.ASTERISK:  PRODUCT,
	lexer.SLASH:     PRODUCT,
	lexer.REMAINDER: PRODUCT,

	lexer.EXPONENT: POWER,

	lexer.INC: POSTFIX,
	lexer.DEC: POSTFIX,

	lexer.AS: ASSERTION,

	lexer.LPAREN:            CALL,
	lexer.LBRACKET:          INDEX,
	lexer.DOT:               MEMBER,
	lexer.OPTIONAL_CHAINING: MEMBER,
}

// New builds a parser over the given lexer. A nil opts enables the full
// extension set.
func New(l *lexer.Lexer, opts *Options) *Parser {
	if opts == nil {
		opts = DefaultOptions()
	}
	p := &Parser{
		l:      l,
		source: l.Source(),
		opts:   opts,
	}

	p.prefixParseFns = make(map[lexer.TokenType]prefixParseFn)
	p.infixParseFns = make(map[lexer.TokenType]infixParseFn)
	p.typePrefixParseFns = make(map[lexer.TokenType]typePrefixParseFn)
	p.typeInfixParseFns = make(map[lexer.TokenType]typeInfixParseFn)

	p.registerPrefix(lexer.IDENT, p.parseIdentifier)
	p.registerPrefix(lexer.NUMBER, p.parseNumberLiteral)
	p.registerPrefix(lexer.STRING, p.parseStringLiteral)
	p.registerPrefix(lexer.TRUE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.FALSE, p.parseBooleanLiteral)
	p.registerPrefix(lexer.NULL, p.parseNullLiteral)
	p.registerPrefix(lexer.THIS, p.parseThisExpression)
	p.registerPrefix(lexer.SLASH, p.parseRegexLiteral)
	p.registerPrefix(lexer.SLASH_ASSIGN, p.parseRegexLiteral)
	p.registerPrefix(lexer.LPAREN, p.parseGroupedOrArrow)
	p.registerPrefix(lexer.LBRACKET, p.parseArrayLiteral)
	p.registerPrefix(lexer.LBRACE, p.parseObjectLiteral)
	p.registerPrefix(lexer.FUNCTION, p.parseFunctionExpression)
	p.registerPrefix(lexer.CLASS, p.parseClassExpression)
	p.registerPrefix(lexer.NEW, p.parseNewExpression)
	p.registerPrefix(lexer.ASYNC, p.parseAsyncExpression)
	p.registerPrefix(lexer.AWAIT, p.parseAwaitExpression)
	p.registerPrefix(lexer.YIELD, p.parseYieldExpression)
	p.registerPrefix(lexer.BANG, p.parsePrefixExpression)
	p.registerPrefix(lexer.MINUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.PLUS, p.parsePrefixExpression)
	p.registerPrefix(lexer.BITWISE_NOT, p.parsePrefixExpression)
	p.registerPrefix(lexer.TYPEOF, p.parsePrefixExpression)
	p.registerPrefix(lexer.VOID, p.parsePrefixExpression)
	p.registerPrefix(lexer.DELETE, p.parsePrefixExpression)
	p.registerPrefix(lexer.INC, p.parseUpdatePrefix)
	p.registerPrefix(lexer.DEC, p.parseUpdatePrefix)

	// Contextual keywords usable as plain identifiers.
	for _, t := range []lexer.TokenType{
		lexer.OF, lexer.AS, lexer.FROM, lexer.GET, lexer.SET,
		lexer.STATIC, lexer.IMPLEMENTS,
	} {
		p.registerPrefix(t, p.parseIdentifier)
	}

	p.registerInfix(lexer.PLUS, p.parseInfixExpression)
	p.registerInfix(lexer.MINUS, p.parseInfixExpression)
	p.registerInfix(lexer.ASTERISK, p.parseInfixExpression)
	p.registerInfix(lexer.SLASH, p.parseInfixExpression)
	p.registerInfix(lexer.REMAINDER, p.parseInfixExpression)
	p.registerInfix(lexer.EXPONENT, p.parseInfixExpression)
	p.registerInfix(lexer.EQ, p.parseInfixExpression)
	p.registerInfix(lexer.NOT_EQ, p.parseInfixExpression)
	p.registerInfix(lexer.STRICT_EQ, p.parseInfixExpression)
	p.registerInfix(lexer.STRICT_NOT_EQ, p.parseInfixExpression)
	p.registerInfix(lexer.LT, p.parseInfixExpression)
	p.registerInfix(lexer.GT, p.parseInfixExpression)
	p.registerInfix(lexer.LE, p.parseInfixExpression)
	p.registerInfix(lexer.GE, p.parseInfixExpression)
	p.registerInfix(lexer.IN, p.parseInfixExpression)
	p.registerInfix(lexer.INSTANCEOF, p.parseInfixExpression)
	p.registerInfix(lexer.LEFT_SHIFT, p.parseInfixExpression)
	p.registerInfix(lexer.RIGHT_SHIFT, p.parseInfixExpression)
	p.registerInfix(lexer.UNSIGNED_RIGHT_SHIFT, p.parseInfixExpression)
	p.registerInfix(lexer.BITWISE_AND, p.parseInfixExpression)
	p.registerInfix(lexer.PIPE, p.parseInfixExpression)
	p.registerInfix(lexer.BITWISE_XOR, p.parseInfixExpression)

	p.registerInfix(lexer.LOGICAL_AND, p.parseLogicalExpression)
	p.registerInfix(lexer.LOGICAL_OR, p.parseLogicalExpression)
	p.registerInfix(lexer.COALESCE, p.parseLogicalExpression)

	p.registerInfix(lexer.ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.PLUS_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.MINUS_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.ASTERISK_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.SLASH_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.REMAINDER_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.EXPONENT_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.BITWISE_AND_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.BITWISE_OR_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.BITWISE_XOR_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.LEFT_SHIFT_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.RIGHT_SHIFT_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.UNSIGNED_RIGHT_SHIFT_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.LOGICAL_AND_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.LOGICAL_OR_ASSIGN, p.parseAssignmentExpression)
	p.registerInfix(lexer.COALESCE_ASSIGN, p.parseAssignmentExpression)

	p.registerInfix(lexer.QUESTION, p.parseConditionalExpression)
	p.registerInfix(lexer.COMMA, p.parseSequenceExpression)
	p.registerInfix(lexer.INC, p.parseUpdatePostfix)
	p.registerInfix(lexer.DEC, p.parseUpdatePostfix)
	p.registerInfix(lexer.AS, p.parseTypeAssertion)

	p.registerInfix(lexer.LPAREN, p.parseCallExpression)
	p.registerInfix(lexer.LBRACKET, p.parseIndexExpression)
	p.registerInfix(lexer.DOT, p.parseMemberExpression)
	p.registerInfix(lexer.OPTIONAL_CHAINING, p.parseOptionalChain)

	p.registerTypePrefix(lexer.IDENT, p.parseTypeReference)
	p.registerTypePrefix(lexer.NULL, p.parseTypeReference)
	p.registerTypeInfix(lexer.PIPE, p.parseUnionType)
	p.registerTypeInfix(lexer.LBRACKET, p.parseArrayType)

	// Prime curToken and peekToken.
	p.nextToken()
	p.nextToken()
	return p
}

func (p *Parser) registerPrefix(t lexer.TokenType, fn prefixParseFn) {
	p.prefixParseFns[t] = fn
}

func (p *Parser) registerInfix(t lexer.TokenType, fn infixParseFn) {
	p.infixParseFns[t] = fn
}

func (p *Parser) registerTypePrefix(t lexer.TokenType, fn typePrefixParseFn) {
	p.typePrefixParseFns[t] = fn
}

func (p *Parser) registerTypeInfix(t lexer.TokenType, fn typeInfixParseFn) {
	p.typeInfixParseFns[t] = fn
}

// nextToken advances the token window, filing comment tokens away as they
// stream past.
func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.scan()
}

func (p *Parser) scan() lexer.Token {
	for {
		tok := p.l.NextToken()
		switch tok.Type {
		case lexer.LINE_COMMENT:
			p.comments = append(p.comments, &ast.Comment{
				Loc: tokenLoc(tok), Kind: ast.CommentLine, Text: tok.Literal,
			})
		case lexer.BLOCK_COMMENT:
			p.comments = append(p.comments, &ast.Comment{
				Loc: tokenLoc(tok), Kind: ast.CommentBlock, Text: tok.Literal,
			})
		default:
			return tok
		}
	}
}

// state is a full snapshot of parser and lexer position, used to back out of
// speculative parses (arrow parameter lists).
type state struct {
	lex      lexer.State
	cur      lexer.Token
	peek     lexer.Token
	errCount int
	comments int
}

func (p *Parser) saveState() state {
	return state{
		lex:      p.l.SaveState(),
		cur:      p.curToken,
		peek:     p.peekToken,
		errCount: len(p.errors),
		comments: len(p.comments),
	}
}

func (p *Parser) restoreState(s state) {
	p.l.RestoreState(s.lex)
	p.curToken = s.cur
	p.peekToken = s.peek
	p.errors = p.errors[:s.errCount]
	p.comments = p.comments[:s.comments]
}

// ParseProgram parses the whole input as a program. The returned error slice
// is nil on success.
func (p *Parser) ParseProgram() (*ast.Program, []errors.SourceError) {
	program := &ast.Program{Loc: tokenLoc(p.curToken)}

	for !p.curTokenIs(lexer.EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			program.Body = append(program.Body, stmt)
		}
		p.nextToken()
	}

	markDirectivePrologue(program.Body)
	program.Comments = p.comments
	program.Loc.End = ast.Position{Line: p.curToken.Line, Column: p.curToken.Column}
	return program, p.errors
}

// ParseExpressionOnly parses the whole input as a single expression. Comma
// sequences are allowed; trailing input is an error.
func (p *Parser) ParseExpressionOnly() (ast.Expression, []errors.SourceError) {
	expr := p.parseExpression(LOWEST)
	if !p.peekTokenIs(lexer.EOF) {
		p.addError(p.peekToken, "unexpected %s after expression", p.peekToken.Type)
	}
	return expr, p.errors
}

// Errors returns the accumulated parse errors.
func (p *Parser) Errors() []errors.SourceError {
	return p.errors
}

// markDirectivePrologue flags the leading string-literal expression
// statements of a statement list as directives.
func markDirectivePrologue(body []ast.Statement) {
	for _, stmt := range body {
		es, ok := stmt.(*ast.ExpressionStatement)
		if !ok {
			return
		}
		lit, ok := es.Expression.(*ast.StringLiteral)
		if !ok {
			return
		}
		es.Directive = lit.Value
	}
}

// --- Token helpers ---

func (p *Parser) curTokenIs(t lexer.TokenType) bool {
	return p.curToken.Type == t
}

func (p *Parser) peekTokenIs(t lexer.TokenType) bool {
	return p.peekToken.Type == t
}

// expectPeek advances when the next token matches, and records an error
// otherwise.
func (p *Parser) expectPeek(t lexer.TokenType) bool {
	if p.peekTokenIs(t) {
		p.nextToken()
		return true
	}
	p.peekError(t)
	return false
}

// expectSemicolon consumes a statement terminator. A real semicolon always
// works; otherwise a closing brace, end of input, or a line break before the
// next token ends the statement.
func (p *Parser) expectSemicolon() {
	if p.peekTokenIs(lexer.SEMICOLON) {
		p.nextToken()
		return
	}
	if p.peekTokenIs(lexer.RBRACE) || p.peekTokenIs(lexer.EOF) {
		return
	}
	if p.peekToken.Line > p.curToken.Line {
		return
	}
	p.peekError(lexer.SEMICOLON)
}

func (p *Parser) peekPrecedence() int {
	if p.noIn && p.peekToken.Type == lexer.IN {
		return LOWEST
	}
	if prec, ok := precedences[p.peekToken.Type]; ok {
		return prec
	}
	return LOWEST
}

func (p *Parser) curPrecedence() int {
	if prec, ok := precedences[p.curToken.Type]; ok {
		return prec
	}
	return LOWEST
}

// --- Error helpers ---

func (p *Parser) addError(tok lexer.Token, format string, args ...interface{}) {
	const maxErrors = 100
	if len(p.errors) >= maxErrors {
		return
	}
	pos := errors.Position{
		Line:     tok.Line,
		Column:   tok.Column,
		StartPos: tok.StartPos,
		EndPos:   tok.EndPos,
	}
	p.errors = append(p.errors, errors.NewSyntaxError(pos, format, args...))
}

func (p *Parser) peekError(t lexer.TokenType) {
	p.addError(p.peekToken, "expected next token to be %s, got %s instead",
		t, p.peekToken.Type)
}

func (p *Parser) noPrefixParseFnError(tok lexer.Token) {
	p.addError(tok, "unexpected token %s", tok.Type)
}

func (p *Parser) requireOption(enabled bool, tok lexer.Token, feature string) bool {
	if enabled {
		return true
	}
	p.addError(tok, "%s is not enabled", feature)
	return false
}

// --- Position helpers ---

func tokenLoc(tok lexer.Token) ast.Loc {
	return ast.Loc{
		Start: ast.Position{Line: tok.Line, Column: tok.Column},
		End:   ast.Position{Line: tok.Line, Column: tok.Column + (tok.EndPos - tok.StartPos)},
	}
}

// spanLoc covers from the start of a token to the end of a node.
func spanLoc(start lexer.Token, end ast.Node) ast.Loc {
	loc := tokenLoc(start)
	if end != nil {
		if e := end.Pos(); e.Known() {
			loc.End = e.End
		}
	}
	return loc
}
