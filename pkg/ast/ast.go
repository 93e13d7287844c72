// Package ast defines the syntax-tree node taxonomy for a JavaScript-family
// language with optional type annotations. The tree is a closed family of
// mutually-recursive tagged unions: each union is a Go interface with an
// unexported marker method, so nothing outside this package can add variants.
//
// Nodes are immutable once constructed and exclusively own their children.
// Construction happens either through pkg/ast/build (smart constructors) or
// through pkg/parser; both produce the same shapes.
package ast

import (
	"strings"
)

// Position is a 1-based line/column pair.
type Position struct {
	Line   int
	Column int
}

// Loc is the source range a node covers. The zero value is the "no location"
// sentinel used for every synthesized node; only the parser fills real ranges.
type Loc struct {
	Start Position
	End   Position
}

// NoLoc is the "no location" placeholder attached to synthesized nodes.
var NoLoc = Loc{}

// Known reports whether the range was produced by a parser rather than a builder.
func (l Loc) Known() bool {
	return l != NoLoc
}

// Node is the base interface for all AST nodes.
type Node interface {
	Pos() Loc       // Source range, NoLoc for synthesized nodes
	String() string // Debug rendering of the node
}

// Statement represents a statement node in the AST.
type Statement interface {
	Node
	statementNode()
}

// Expression represents an expression node in the AST.
type Expression interface {
	Node
	expressionNode()
}

// Pattern represents a destructuring target. Nesting bottoms out in
// Identifier, ArrayPattern, or ObjectPattern; AssignmentPattern pairs a
// target with a default expression and never nests as its own right side.
type Pattern interface {
	Node
	patternNode()
}

// FuncBody is the body of an arrow function: either a *BlockStatement or an
// ExprBody wrapping a single expression. Encoding the choice as a closed sum
// makes a mismatched body shape unrepresentable.
type FuncBody interface {
	Node
	funcBodyNode()
}

// ForTarget is the left-hand side of a for-in/for-of loop: a fresh
// *VariableDeclaration or an existing pattern/member target, never both.
type ForTarget interface {
	Node
	forTargetNode()
}

// ClassElement is a member of a class body.
type ClassElement interface {
	Node
	classElementNode()
}

// ObjectMember is an entry of an object literal: a *Property or a *SpreadElement.
type ObjectMember interface {
	Node
	objectMemberNode()
}

// JSXChild is a child of a JSX element.
type JSXChild interface {
	Node
	jsxChildNode()
}

// JSXAttr is an attribute of a JSX opening tag.
type JSXAttr interface {
	Node
	jsxAttrNode()
}

// --- Comments ---

// CommentKind distinguishes block from line comments.
type CommentKind string

const (
	CommentBlock CommentKind = "Block"
	CommentLine  CommentKind = "Line"
)

// Comment is a block or line comment. Text carries the comment content
// without its delimiters.
type Comment struct {
	Loc  Loc
	Kind CommentKind
	Text string
}

func (c *Comment) Pos() Loc { return c.Loc }
func (c *Comment) String() string {
	if c.Kind == CommentLine {
		return "//" + c.Text
	}
	return "/*" + c.Text + "*/"
}

// --- Program ---

// Program is the root node: an ordered statement list plus leading comments.
type Program struct {
	Loc      Loc
	Body     []Statement
	Comments []*Comment
}

func (p *Program) Pos() Loc { return p.Loc }
func (p *Program) String() string {
	var parts []string
	for _, c := range p.Comments {
		parts = append(parts, c.String())
	}
	for _, s := range p.Body {
		if s != nil {
			parts = append(parts, s.String())
		}
	}
	return strings.Join(parts, "\n")
}

// joinNodes renders a node slice with a separator, skipping nil entries
// (nil entries appear as holes in array patterns/literals).
func joinNodes[T Node](nodes []T, sep string) string {
	parts := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if any(n) == nil {
			parts = append(parts, "")
			continue
		}
		parts = append(parts, n.String())
	}
	return strings.Join(parts, sep)
}

// indentBlock indents every line of a rendered statement, matching the
// debug layout of nested blocks.
func indentBlock(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = "  " + line
	}
	return strings.Join(lines, "\n")
}
