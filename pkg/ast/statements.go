package ast

import (
	"bytes"
	"strings"
)

// EmptyStatement represents a lone semicolon.
type EmptyStatement struct {
	Loc Loc
}

func (e *EmptyStatement) statementNode() {}
func (e *EmptyStatement) Pos() Loc       { return e.Loc }
func (e *EmptyStatement) String() string { return ";" }

// BlockStatement represents a brace-enclosed statement sequence. It also
// serves as the block form of a function body.
type BlockStatement struct {
	Loc  Loc
	Body []Statement
}

func (b *BlockStatement) statementNode() {}
func (b *BlockStatement) funcBodyNode()  {}
func (b *BlockStatement) Pos() Loc       { return b.Loc }
func (b *BlockStatement) String() string {
	var out bytes.Buffer
	out.WriteString("{\n")
	for _, s := range b.Body {
		if s != nil {
			out.WriteString(indentBlock(s.String()))
			out.WriteString("\n")
		}
	}
	out.WriteString("}")
	return out.String()
}

// ExpressionStatement represents a statement consisting of a single
// expression. Directive is non-empty for directive prologue entries
// ("use strict"): it carries the raw text of the string literal, and the
// wrapped expression is that same string literal.
type ExpressionStatement struct {
	Loc        Loc
	Expression Expression
	Directive  string
}

func (e *ExpressionStatement) statementNode() {}
func (e *ExpressionStatement) Pos() Loc       { return e.Loc }
func (e *ExpressionStatement) String() string {
	if e.Expression == nil {
		return ";"
	}
	return e.Expression.String() + ";"
}

// DeclKind is the keyword of a variable declaration.
type DeclKind string

const (
	DeclVar   DeclKind = "var"
	DeclLet   DeclKind = "let"
	DeclConst DeclKind = "const"
)

// VariableDeclarator binds one pattern to an optional initializer.
type VariableDeclarator struct {
	Loc  Loc
	Name Pattern
	Init Expression // nil when declared without a value
}

func (v *VariableDeclarator) Pos() Loc { return v.Loc }
func (v *VariableDeclarator) String() string {
	if v.Init != nil {
		return v.Name.String() + " = " + v.Init.String()
	}
	return v.Name.String()
}

// VariableDeclaration represents `var`/`let`/`const` with one or more
// declarators. It is also a valid for-in/for-of left-hand side.
type VariableDeclaration struct {
	Loc          Loc
	Kind         DeclKind
	Declarations []*VariableDeclarator
}

func (v *VariableDeclaration) statementNode() {}
func (v *VariableDeclaration) forTargetNode() {}
func (v *VariableDeclaration) Pos() Loc       { return v.Loc }
func (v *VariableDeclaration) String() string {
	return string(v.Kind) + " " + joinNodes(v.Declarations, ", ") + ";"
}

// FunctionDeclaration wraps the shared function shape as a statement.
type FunctionDeclaration struct {
	Loc Loc
	Fn  *FunctionLiteral
}

func (f *FunctionDeclaration) statementNode() {}
func (f *FunctionDeclaration) Pos() Loc       { return f.Loc }
func (f *FunctionDeclaration) String() string { return f.Fn.String() }

// ClassDeclaration wraps the shared class shape as a statement.
type ClassDeclaration struct {
	Loc        Loc
	Class      *ClassLiteral
	Decorators []Expression
}

func (c *ClassDeclaration) statementNode() {}
func (c *ClassDeclaration) Pos() Loc       { return c.Loc }
func (c *ClassDeclaration) String() string {
	var out bytes.Buffer
	for _, d := range c.Decorators {
		out.WriteString("@" + d.String() + "\n")
	}
	out.WriteString(c.Class.String())
	return out.String()
}

// ReturnStatement represents `return` with an optional argument.
type ReturnStatement struct {
	Loc      Loc
	Argument Expression
}

func (r *ReturnStatement) statementNode() {}
func (r *ReturnStatement) Pos() Loc       { return r.Loc }
func (r *ReturnStatement) String() string {
	if r.Argument != nil {
		return "return " + r.Argument.String() + ";"
	}
	return "return;"
}

// IfStatement represents a conditional with an optional else branch.
type IfStatement struct {
	Loc        Loc
	Test       Expression
	Consequent Statement
	Alternate  Statement // nil when there is no else branch
}

func (i *IfStatement) statementNode() {}
func (i *IfStatement) Pos() Loc       { return i.Loc }
func (i *IfStatement) String() string {
	var out bytes.Buffer
	out.WriteString("if (" + i.Test.String() + ") ")
	out.WriteString(i.Consequent.String())
	if i.Alternate != nil {
		out.WriteString(" else ")
		out.WriteString(i.Alternate.String())
	}
	return out.String()
}

// WhileStatement represents `while (test) body`.
type WhileStatement struct {
	Loc  Loc
	Test Expression
	Body Statement
}

func (w *WhileStatement) statementNode() {}
func (w *WhileStatement) Pos() Loc       { return w.Loc }
func (w *WhileStatement) String() string {
	return "while (" + w.Test.String() + ") " + w.Body.String()
}

// DoWhileStatement represents `do body while (test);`.
type DoWhileStatement struct {
	Loc  Loc
	Body Statement
	Test Expression
}

func (d *DoWhileStatement) statementNode() {}
func (d *DoWhileStatement) Pos() Loc       { return d.Loc }
func (d *DoWhileStatement) String() string {
	return "do " + d.Body.String() + " while (" + d.Test.String() + ");"
}

// ForStatement represents a C-style loop. Init is restricted by construction
// to a *VariableDeclaration, an *ExpressionStatement, or nil.
type ForStatement struct {
	Loc    Loc
	Init   Statement
	Test   Expression // nil when absent
	Update Expression // nil when absent
	Body   Statement
}

func (f *ForStatement) statementNode() {}
func (f *ForStatement) Pos() Loc       { return f.Loc }
func (f *ForStatement) String() string {
	var out bytes.Buffer
	out.WriteString("for (")
	if f.Init != nil {
		// Declarations/expression statements render their own semicolon.
		out.WriteString(f.Init.String())
	} else {
		out.WriteString(";")
	}
	if f.Test != nil {
		out.WriteString(" " + f.Test.String())
	}
	out.WriteString(";")
	if f.Update != nil {
		out.WriteString(" " + f.Update.String())
	}
	out.WriteString(") ")
	out.WriteString(f.Body.String())
	return out.String()
}

// ForInStatement represents `for (left in right) body`.
type ForInStatement struct {
	Loc   Loc
	Left  ForTarget
	Right Expression
	Body  Statement
}

func (f *ForInStatement) statementNode() {}
func (f *ForInStatement) Pos() Loc       { return f.Loc }
func (f *ForInStatement) String() string {
	return "for (" + forTargetString(f.Left) + " in " + f.Right.String() + ") " + f.Body.String()
}

// ForOfStatement represents `for (left of right) body` and its
// `for await` form.
type ForOfStatement struct {
	Loc   Loc
	Left  ForTarget
	Right Expression
	Body  Statement
	Await bool
}

func (f *ForOfStatement) statementNode() {}
func (f *ForOfStatement) Pos() Loc       { return f.Loc }
func (f *ForOfStatement) String() string {
	kw := "for ("
	if f.Await {
		kw = "for await ("
	}
	return kw + forTargetString(f.Left) + " of " + f.Right.String() + ") " + f.Body.String()
}

// forTargetString renders a loop target without the trailing semicolon a
// declaration would normally print.
func forTargetString(t ForTarget) string {
	if decl, ok := t.(*VariableDeclaration); ok {
		return string(decl.Kind) + " " + joinNodes(decl.Declarations, ", ")
	}
	return t.String()
}

// LabeledStatement represents `label: body`.
type LabeledStatement struct {
	Loc   Loc
	Label *Identifier
	Body  Statement
}

func (l *LabeledStatement) statementNode() {}
func (l *LabeledStatement) Pos() Loc       { return l.Loc }
func (l *LabeledStatement) String() string { return l.Label.Name + ": " + l.Body.String() }

// BreakStatement represents `break` with an optional label.
type BreakStatement struct {
	Loc   Loc
	Label *Identifier
}

func (b *BreakStatement) statementNode() {}
func (b *BreakStatement) Pos() Loc       { return b.Loc }
func (b *BreakStatement) String() string {
	if b.Label != nil {
		return "break " + b.Label.Name + ";"
	}
	return "break;"
}

// ContinueStatement represents `continue` with an optional label.
type ContinueStatement struct {
	Loc   Loc
	Label *Identifier
}

func (c *ContinueStatement) statementNode() {}
func (c *ContinueStatement) Pos() Loc       { return c.Loc }
func (c *ContinueStatement) String() string {
	if c.Label != nil {
		return "continue " + c.Label.Name + ";"
	}
	return "continue;"
}

// ThrowStatement represents `throw argument;`.
type ThrowStatement struct {
	Loc      Loc
	Argument Expression
}

func (t *ThrowStatement) statementNode() {}
func (t *ThrowStatement) Pos() Loc       { return t.Loc }
func (t *ThrowStatement) String() string { return "throw " + t.Argument.String() + ";" }

// CatchClause is the handler of a try statement. Param may be nil for the
// bare `catch {}` form.
type CatchClause struct {
	Loc   Loc
	Param Pattern
	Body  *BlockStatement
}

func (c *CatchClause) Pos() Loc { return c.Loc }
func (c *CatchClause) String() string {
	if c.Param != nil {
		return "catch (" + c.Param.String() + ") " + c.Body.String()
	}
	return "catch " + c.Body.String()
}

// TryStatement represents try/catch/finally. At least one of Handler and
// Finalizer is present in well-formed code.
type TryStatement struct {
	Loc       Loc
	Block     *BlockStatement
	Handler   *CatchClause    // nil when there is no catch
	Finalizer *BlockStatement // nil when there is no finally
}

func (t *TryStatement) statementNode() {}
func (t *TryStatement) Pos() Loc       { return t.Loc }
func (t *TryStatement) String() string {
	var out bytes.Buffer
	out.WriteString("try " + t.Block.String())
	if t.Handler != nil {
		out.WriteString(" " + t.Handler.String())
	}
	if t.Finalizer != nil {
		out.WriteString(" finally " + t.Finalizer.String())
	}
	return out.String()
}

// SwitchCase is one arm of a switch; Test is nil for `default:`.
type SwitchCase struct {
	Loc        Loc
	Test       Expression
	Consequent []Statement
}

func (s *SwitchCase) Pos() Loc { return s.Loc }
func (s *SwitchCase) String() string {
	var out bytes.Buffer
	if s.Test != nil {
		out.WriteString("case " + s.Test.String() + ":")
	} else {
		out.WriteString("default:")
	}
	for _, st := range s.Consequent {
		out.WriteString("\n")
		out.WriteString(indentBlock(st.String()))
	}
	return out.String()
}

// SwitchStatement represents `switch (discriminant) { cases }`.
type SwitchStatement struct {
	Loc          Loc
	Discriminant Expression
	Cases        []*SwitchCase
}

func (s *SwitchStatement) statementNode() {}
func (s *SwitchStatement) Pos() Loc       { return s.Loc }
func (s *SwitchStatement) String() string {
	var out bytes.Buffer
	out.WriteString("switch (" + s.Discriminant.String() + ") {\n")
	for _, c := range s.Cases {
		out.WriteString(indentBlock(c.String()))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}

// ImportKind distinguishes the shapes of an import specifier.
type ImportKind string

const (
	ImportDefault   ImportKind = "default"   // import a from "m"
	ImportNamed     ImportKind = "named"     // import {a as b} from "m"
	ImportNamespace ImportKind = "namespace" // import * as ns from "m"
)

// ImportSpecifier is one binding introduced by an import declaration.
type ImportSpecifier struct {
	Loc      Loc
	Kind     ImportKind
	Local    *Identifier
	Imported *Identifier // nil except for named imports
}

func (i *ImportSpecifier) Pos() Loc { return i.Loc }
func (i *ImportSpecifier) String() string {
	switch i.Kind {
	case ImportNamespace:
		return "* as " + i.Local.Name
	case ImportNamed:
		if i.Imported != nil && i.Imported.Name != i.Local.Name {
			return i.Imported.Name + " as " + i.Local.Name
		}
		return i.Local.Name
	default:
		return i.Local.Name
	}
}

// ImportDeclaration represents an import statement. Specifiers may be empty
// for a bare side-effect import.
type ImportDeclaration struct {
	Loc        Loc
	Specifiers []*ImportSpecifier
	Source     *StringLiteral
}

func (i *ImportDeclaration) statementNode() {}
func (i *ImportDeclaration) Pos() Loc       { return i.Loc }
func (i *ImportDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("import ")
	if len(i.Specifiers) > 0 {
		var def, ns string
		var named []string
		for _, s := range i.Specifiers {
			switch s.Kind {
			case ImportDefault:
				def = s.String()
			case ImportNamespace:
				ns = s.String()
			default:
				named = append(named, s.String())
			}
		}
		parts := []string{}
		if def != "" {
			parts = append(parts, def)
		}
		if ns != "" {
			parts = append(parts, ns)
		}
		if len(named) > 0 {
			parts = append(parts, "{"+strings.Join(named, ", ")+"}")
		}
		out.WriteString(strings.Join(parts, ", "))
		out.WriteString(" from ")
	}
	out.WriteString(i.Source.String())
	out.WriteString(";")
	return out.String()
}

// ExportSpecifier is one entry of `export {a as b}`.
type ExportSpecifier struct {
	Loc      Loc
	Local    *Identifier
	Exported *Identifier
}

func (e *ExportSpecifier) Pos() Loc { return e.Loc }
func (e *ExportSpecifier) String() string {
	if e.Exported != nil && e.Exported.Name != e.Local.Name {
		return e.Local.Name + " as " + e.Exported.Name
	}
	return e.Local.Name
}

// ExportNamedDeclaration represents `export {..}` and `export <declaration>`.
// Exactly one of Declaration and Specifiers is populated.
type ExportNamedDeclaration struct {
	Loc         Loc
	Declaration Statement
	Specifiers  []*ExportSpecifier
	Source      *StringLiteral // nil unless re-exporting from a module
}

func (e *ExportNamedDeclaration) statementNode() {}
func (e *ExportNamedDeclaration) Pos() Loc       { return e.Loc }
func (e *ExportNamedDeclaration) String() string {
	var out bytes.Buffer
	out.WriteString("export ")
	if e.Declaration != nil {
		out.WriteString(e.Declaration.String())
		return out.String()
	}
	out.WriteString("{" + joinNodes(e.Specifiers, ", ") + "}")
	if e.Source != nil {
		out.WriteString(" from " + e.Source.String())
	}
	out.WriteString(";")
	return out.String()
}

// ExportDefaultDeclaration represents `export default <expr|declaration>`.
type ExportDefaultDeclaration struct {
	Loc         Loc
	Declaration Node
}

func (e *ExportDefaultDeclaration) statementNode() {}
func (e *ExportDefaultDeclaration) Pos() Loc       { return e.Loc }
func (e *ExportDefaultDeclaration) String() string {
	return "export default " + e.Declaration.String() + ";"
}

// ExportAllDeclaration represents `export * from "m"` and
// `export * as ns from "m"`.
type ExportAllDeclaration struct {
	Loc      Loc
	Exported *Identifier // nil for the plain `export *` form
	Source   *StringLiteral
}

func (e *ExportAllDeclaration) statementNode() {}
func (e *ExportAllDeclaration) Pos() Loc       { return e.Loc }
func (e *ExportAllDeclaration) String() string {
	if e.Exported != nil {
		return "export * as " + e.Exported.Name + " from " + e.Source.String() + ";"
	}
	return "export * from " + e.Source.String() + ";"
}
