package build

import "estree/pkg/ast"

// BlockComment builds a `/* text */` comment node.
func BlockComment(text string) *ast.Comment {
	return &ast.Comment{Kind: ast.CommentBlock, Text: text}
}

// LineComment builds a `// text` comment node.
func LineComment(text string) *ast.Comment {
	return &ast.Comment{Kind: ast.CommentLine, Text: text}
}
