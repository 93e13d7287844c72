package build

import "estree/pkg/ast"

// Empty builds a lone-semicolon statement.
func Empty() *ast.EmptyStatement {
	return &ast.EmptyStatement{}
}

// Block builds a block statement from its body.
func Block(stmts ...ast.Statement) *ast.BlockStatement {
	return &ast.BlockStatement{Body: stmts}
}

// ExprStmt wraps an expression as a statement.
func ExprStmt(e ast.Expression) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{Expression: e}
}

// Directive builds a directive prologue entry: an expression statement whose
// expression is the string literal for text and whose statement-level
// directive field carries the same text. Directives are recognized
// structurally, not just by literal content, so both must be set together.
func Directive(text string) *ast.ExpressionStatement {
	return &ast.ExpressionStatement{
		Expression: String(text),
		Directive:  text,
	}
}

// Declarator binds a pattern to an optional initializer.
func Declarator(name ast.Pattern, init ast.Expression) *ast.VariableDeclarator {
	return &ast.VariableDeclarator{Name: name, Init: init}
}

// Declare builds a variable declaration of the given kind.
func Declare(kind ast.DeclKind, decls ...*ast.VariableDeclarator) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Kind: kind, Declarations: decls}
}

// Var builds `var name = init;` (init may be nil).
func Var(name string, init ast.Expression) *ast.VariableDeclaration {
	return Declare(ast.DeclVar, Declarator(Ident(name), init))
}

// Let builds `let name = init;` (init may be nil).
func Let(name string, init ast.Expression) *ast.VariableDeclaration {
	return Declare(ast.DeclLet, Declarator(Ident(name), init))
}

// Const builds `const name = init;`.
func Const(name string, init ast.Expression) *ast.VariableDeclaration {
	return Declare(ast.DeclConst, Declarator(Ident(name), init))
}

// FunctionDecl wraps the shared function shape as a declaration statement.
func FunctionDecl(fn *ast.FunctionLiteral) *ast.FunctionDeclaration {
	return &ast.FunctionDeclaration{Fn: fn}
}

// ClassDecl wraps the shared class shape as a declaration statement.
func ClassDecl(cls *ast.ClassLiteral) *ast.ClassDeclaration {
	return &ast.ClassDeclaration{Class: cls}
}

// Return builds `return arg;`; arg may be nil.
func Return(arg ast.Expression) *ast.ReturnStatement {
	return &ast.ReturnStatement{Argument: arg}
}

// If builds a conditional; alternate may be nil.
func If(test ast.Expression, consequent, alternate ast.Statement) *ast.IfStatement {
	return &ast.IfStatement{Test: test, Consequent: consequent, Alternate: alternate}
}

// While builds `while (test) body`.
func While(test ast.Expression, body ast.Statement) *ast.WhileStatement {
	return &ast.WhileStatement{Test: test, Body: body}
}

// DoWhile builds `do body while (test);`.
func DoWhile(body ast.Statement, test ast.Expression) *ast.DoWhileStatement {
	return &ast.DoWhileStatement{Body: body, Test: test}
}

// For builds a C-style loop whose initializer is an expression (wrapped as
// an expression statement). Declaration-style initializers are assembled
// through ForLoop with a Declare result.
func For(init, test, update ast.Expression, body ast.Statement) *ast.ForStatement {
	var initStmt ast.Statement
	if init != nil {
		initStmt = ExprStmt(init)
	}
	return ForLoop(initStmt, test, update, body)
}

// ForLoop is the general C-style loop constructor. Init must be a
// *VariableDeclaration, an *ExpressionStatement, or nil.
func ForLoop(init ast.Statement, test, update ast.Expression, body ast.Statement) *ast.ForStatement {
	return &ast.ForStatement{Init: init, Test: test, Update: update, Body: body}
}

// ForIn builds `for (left in right) body`.
func ForIn(left ast.ForTarget, right ast.Expression, body ast.Statement) *ast.ForInStatement {
	return &ast.ForInStatement{Left: left, Right: right, Body: body}
}

// ForOf builds `for (left of right) body`.
func ForOf(left ast.ForTarget, right ast.Expression, body ast.Statement) *ast.ForOfStatement {
	return &ast.ForOfStatement{Left: left, Right: right, Body: body}
}

// ForAwaitOf builds `for await (left of right) body`.
func ForAwaitOf(left ast.ForTarget, right ast.Expression, body ast.Statement) *ast.ForOfStatement {
	stmt := ForOf(left, right, body)
	stmt.Await = true
	return stmt
}

// Labeled builds `label: body`.
func Labeled(label string, body ast.Statement) *ast.LabeledStatement {
	return &ast.LabeledStatement{Label: Ident(label), Body: body}
}

// Break builds `break;` or `break label;` (empty label for the bare form).
func Break(label string) *ast.BreakStatement {
	stmt := &ast.BreakStatement{}
	if label != "" {
		stmt.Label = Ident(label)
	}
	return stmt
}

// Continue builds `continue;` or `continue label;`.
func Continue(label string) *ast.ContinueStatement {
	stmt := &ast.ContinueStatement{}
	if label != "" {
		stmt.Label = Ident(label)
	}
	return stmt
}

// Throw builds `throw arg;`.
func Throw(arg ast.Expression) *ast.ThrowStatement {
	return &ast.ThrowStatement{Argument: arg}
}

// Try builds try/catch/finally. A nil handler body omits the catch clause;
// a nil finalizer omits finally. The catch parameter may be nil for the
// bare `catch {}` form.
func Try(block *ast.BlockStatement, catchParam ast.Pattern, handler *ast.BlockStatement, finalizer *ast.BlockStatement) *ast.TryStatement {
	stmt := &ast.TryStatement{Block: block, Finalizer: finalizer}
	if handler != nil {
		stmt.Handler = &ast.CatchClause{Param: catchParam, Body: handler}
	}
	return stmt
}

// Switch builds `switch (discriminant) { cases }`.
func Switch(discriminant ast.Expression, cases ...*ast.SwitchCase) *ast.SwitchStatement {
	return &ast.SwitchStatement{Discriminant: discriminant, Cases: cases}
}

// Case builds one switch arm.
func Case(test ast.Expression, body ...ast.Statement) *ast.SwitchCase {
	return &ast.SwitchCase{Test: test, Consequent: body}
}

// DefaultCase builds the `default:` arm.
func DefaultCase(body ...ast.Statement) *ast.SwitchCase {
	return &ast.SwitchCase{Consequent: body}
}
