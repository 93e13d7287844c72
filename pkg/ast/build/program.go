package build

import "estree/pkg/ast"

// Program assembles a complete program from top-level statements and an
// optional trailing list of comments. Statement order is preserved.
func Program(stmts []ast.Statement, comments ...*ast.Comment) *ast.Program {
	return &ast.Program{Body: stmts, Comments: comments}
}
