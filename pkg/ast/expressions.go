package ast

import (
	"bytes"
	"strings"

	"github.com/dlclark/regexp2"
)

// Identifier represents an identifier. It doubles as the simplest
// destructuring pattern, optionally carrying a type annotation and the
// `name?` optional marker.
type Identifier struct {
	Loc            Loc
	Name           string
	TypeAnnotation Expression // nil means "no annotation"
	Optional       bool
}

func (i *Identifier) expressionNode() {}
func (i *Identifier) patternNode()    {}
func (i *Identifier) forTargetNode()  {}
func (i *Identifier) Pos() Loc        { return i.Loc }
func (i *Identifier) String() string {
	var out bytes.Buffer
	out.WriteString(i.Name)
	if i.Optional {
		out.WriteString("?")
	}
	if i.TypeAnnotation != nil {
		out.WriteString(": ")
		out.WriteString(i.TypeAnnotation.String())
	}
	return out.String()
}

// StringLiteral represents a string literal. Raw is the exact source text
// including quotes; re-lexing Raw yields Value.
type StringLiteral struct {
	Loc   Loc
	Value string
	Raw   string
}

func (s *StringLiteral) expressionNode() {}
func (s *StringLiteral) Pos() Loc        { return s.Loc }
func (s *StringLiteral) String() string  { return s.Raw }

// NumberLiteral represents a numeric literal. Raw is caller- or
// source-supplied verbatim; several textual forms can denote one value
// (1e3 vs 1000), so Raw is never re-derived from Value.
type NumberLiteral struct {
	Loc   Loc
	Value float64
	Raw   string
}

func (n *NumberLiteral) expressionNode() {}
func (n *NumberLiteral) Pos() Loc        { return n.Loc }
func (n *NumberLiteral) String() string  { return n.Raw }

// BooleanLiteral represents `true` or `false`. Raw is exactly one of those
// two spellings.
type BooleanLiteral struct {
	Loc   Loc
	Value bool
	Raw   string
}

func (b *BooleanLiteral) expressionNode() {}
func (b *BooleanLiteral) Pos() Loc        { return b.Loc }
func (b *BooleanLiteral) String() string  { return b.Raw }

// NullLiteral represents the `null` keyword.
type NullLiteral struct {
	Loc Loc
}

func (n *NullLiteral) expressionNode() {}
func (n *NullLiteral) Pos() Loc        { return n.Loc }
func (n *NullLiteral) String() string  { return "null" }

// RegExpLiteral represents a regular expression literal /pattern/flags.
type RegExpLiteral struct {
	Loc     Loc
	Pattern string
	Flags   string
	Raw     string
}

func (r *RegExpLiteral) expressionNode() {}
func (r *RegExpLiteral) Pos() Loc        { return r.Loc }
func (r *RegExpLiteral) String() string  { return r.Raw }

// Compile compiles the literal in ECMAScript mode.
func (r *RegExpLiteral) Compile() (*regexp2.Regexp, error) {
	opts := regexp2.RegexOptions(regexp2.ECMAScript)
	if strings.ContainsRune(r.Flags, 'i') {
		opts |= regexp2.IgnoreCase
	}
	if strings.ContainsRune(r.Flags, 'm') {
		opts |= regexp2.Multiline
	}
	if strings.ContainsRune(r.Flags, 's') {
		opts |= regexp2.Singleline
	}
	return regexp2.Compile(r.Pattern, opts)
}

// ThisExpression represents the `this` keyword.
type ThisExpression struct {
	Loc Loc
}

func (t *ThisExpression) expressionNode() {}
func (t *ThisExpression) Pos() Loc        { return t.Loc }
func (t *ThisExpression) String() string  { return "this" }

// ArrayLiteral represents an array literal. A nil element is an elision hole.
type ArrayLiteral struct {
	Loc      Loc
	Elements []Expression
}

func (a *ArrayLiteral) expressionNode() {}
func (a *ArrayLiteral) Pos() Loc        { return a.Loc }
func (a *ArrayLiteral) String() string {
	return "[" + joinNodes(a.Elements, ", ") + "]"
}

// PropertyKind distinguishes the flavors of an object literal entry.
type PropertyKind string

const (
	PropertyInit   PropertyKind = "init"
	PropertyGet    PropertyKind = "get"
	PropertySet    PropertyKind = "set"
	PropertyMethod PropertyKind = "method"
)

// Property is a key/value entry of an object literal. When Shorthand is set,
// Key and Value must denote the same name; the build package mints both from
// a single name so the pair cannot drift.
type Property struct {
	Loc       Loc
	Key       Expression
	Value     Expression
	Kind      PropertyKind
	Computed  bool
	Shorthand bool
}

func (p *Property) objectMemberNode() {}
func (p *Property) Pos() Loc          { return p.Loc }
func (p *Property) String() string {
	var out bytes.Buffer
	if p.Kind == PropertyGet || p.Kind == PropertySet {
		out.WriteString(string(p.Kind))
		out.WriteString(" ")
	}
	if p.Shorthand {
		return p.Key.String()
	}
	if p.Computed {
		out.WriteString("[")
		out.WriteString(p.Key.String())
		out.WriteString("]")
	} else {
		out.WriteString(p.Key.String())
	}
	if p.Kind == PropertyMethod || p.Kind == PropertyGet || p.Kind == PropertySet {
		if fn, ok := p.Value.(*FunctionLiteral); ok {
			out.WriteString(fn.signatureString())
			out.WriteString(" ")
			out.WriteString(fn.Body.String())
			return out.String()
		}
	}
	out.WriteString(": ")
	out.WriteString(p.Value.String())
	return out.String()
}

// ObjectLiteral represents an object literal.
type ObjectLiteral struct {
	Loc        Loc
	Properties []ObjectMember
}

func (o *ObjectLiteral) expressionNode() {}
func (o *ObjectLiteral) Pos() Loc        { return o.Loc }
func (o *ObjectLiteral) String() string {
	return "{" + joinNodes(o.Properties, ", ") + "}"
}

// SpreadElement represents `...argument` in calls, arrays, and objects.
type SpreadElement struct {
	Loc      Loc
	Argument Expression
}

func (s *SpreadElement) expressionNode()   {}
func (s *SpreadElement) objectMemberNode() {}
func (s *SpreadElement) Pos() Loc          { return s.Loc }
func (s *SpreadElement) String() string    { return "..." + s.Argument.String() }

// FunctionLiteral is the shared function shape: declarations, function
// expressions, and object/class methods all wrap one. The body is always a
// block; expression-bodied functions exist only as arrows.
type FunctionLiteral struct {
	Loc        Loc
	Name       *Identifier // nil for anonymous functions
	TypeParams []*TypeParameter
	Params     []Pattern
	ReturnType Expression // nil means "no annotation"
	Body       *BlockStatement
	Generator  bool
	Async      bool
}

func (f *FunctionLiteral) expressionNode() {}
func (f *FunctionLiteral) Pos() Loc        { return f.Loc }

func (f *FunctionLiteral) signatureString() string {
	var out bytes.Buffer
	if len(f.TypeParams) > 0 {
		out.WriteString("<" + joinNodes(f.TypeParams, ", ") + ">")
	}
	out.WriteString("(" + joinNodes(f.Params, ", ") + ")")
	if f.ReturnType != nil {
		out.WriteString(": ")
		out.WriteString(f.ReturnType.String())
	}
	return out.String()
}

func (f *FunctionLiteral) String() string {
	var out bytes.Buffer
	if f.Async {
		out.WriteString("async ")
	}
	out.WriteString("function")
	if f.Generator {
		out.WriteString("*")
	}
	if f.Name != nil {
		out.WriteString(" ")
		out.WriteString(f.Name.Name)
	}
	out.WriteString(f.signatureString())
	out.WriteString(" ")
	if f.Body != nil {
		out.WriteString(f.Body.String())
	}
	return out.String()
}

// ExprBody wraps the single-expression body of an arrow function.
type ExprBody struct {
	Loc  Loc
	Expr Expression
}

func (e *ExprBody) funcBodyNode() {}
func (e *ExprBody) Pos() Loc      { return e.Loc }
func (e *ExprBody) String() string {
	return e.Expr.String()
}

// ArrowFunctionLiteral represents an arrow function. Arrows are always
// anonymous; the type has no name field, so a named arrow is
// unrepresentable.
type ArrowFunctionLiteral struct {
	Loc        Loc
	TypeParams []*TypeParameter
	Params     []Pattern
	ReturnType Expression
	Body       FuncBody
	Async      bool
}

func (a *ArrowFunctionLiteral) expressionNode() {}
func (a *ArrowFunctionLiteral) Pos() Loc        { return a.Loc }
func (a *ArrowFunctionLiteral) String() string {
	var out bytes.Buffer
	if a.Async {
		out.WriteString("async ")
	}
	if len(a.TypeParams) > 0 {
		out.WriteString("<" + joinNodes(a.TypeParams, ", ") + ">")
	}
	out.WriteString("(" + joinNodes(a.Params, ", ") + ")")
	if a.ReturnType != nil {
		out.WriteString(": ")
		out.WriteString(a.ReturnType.String())
	}
	out.WriteString(" => ")
	if a.Body != nil {
		out.WriteString(a.Body.String())
	}
	return out.String()
}

// UnaryExpression represents a prefix operator expression:
// !x, -x, +x, ~x, typeof x, void x, delete x.
type UnaryExpression struct {
	Loc      Loc
	Operator string
	Argument Expression
}

func (u *UnaryExpression) expressionNode() {}
func (u *UnaryExpression) Pos() Loc        { return u.Loc }
func (u *UnaryExpression) String() string {
	op := u.Operator
	if len(op) > 1 {
		// Word operators (typeof, void, delete) need a space.
		op += " "
	}
	return "(" + op + u.Argument.String() + ")"
}

// UpdateExpression represents ++x, x++, --x, x--.
type UpdateExpression struct {
	Loc      Loc
	Operator string // "++" or "--"
	Argument Expression
	Prefix   bool
}

func (u *UpdateExpression) expressionNode() {}
func (u *UpdateExpression) Pos() Loc        { return u.Loc }
func (u *UpdateExpression) String() string {
	if u.Prefix {
		return "(" + u.Operator + u.Argument.String() + ")"
	}
	return "(" + u.Argument.String() + u.Operator + ")"
}

// BinaryExpression represents an arithmetic, comparison, bitwise, shift,
// `in`, or `instanceof` infix expression.
type BinaryExpression struct {
	Loc      Loc
	Operator string
	Left     Expression
	Right    Expression
}

func (b *BinaryExpression) expressionNode() {}
func (b *BinaryExpression) Pos() Loc        { return b.Loc }
func (b *BinaryExpression) String() string {
	return "(" + b.Left.String() + " " + b.Operator + " " + b.Right.String() + ")"
}

// LogicalExpression represents &&, ||, and ??.
type LogicalExpression struct {
	Loc      Loc
	Operator string
	Left     Expression
	Right    Expression
}

func (l *LogicalExpression) expressionNode() {}
func (l *LogicalExpression) Pos() Loc        { return l.Loc }
func (l *LogicalExpression) String() string {
	return "(" + l.Left.String() + " " + l.Operator + " " + l.Right.String() + ")"
}

// AssignmentExpression represents plain and compound assignment.
type AssignmentExpression struct {
	Loc      Loc
	Operator string // "=", "+=", "??=", ...
	Left     Expression
	Right    Expression
}

func (a *AssignmentExpression) expressionNode() {}
func (a *AssignmentExpression) Pos() Loc        { return a.Loc }
func (a *AssignmentExpression) String() string {
	return "(" + a.Left.String() + " " + a.Operator + " " + a.Right.String() + ")"
}

// ConditionalExpression represents test ? consequent : alternate.
type ConditionalExpression struct {
	Loc        Loc
	Test       Expression
	Consequent Expression
	Alternate  Expression
}

func (c *ConditionalExpression) expressionNode() {}
func (c *ConditionalExpression) Pos() Loc        { return c.Loc }
func (c *ConditionalExpression) String() string {
	return "(" + c.Test.String() + " ? " + c.Consequent.String() + " : " + c.Alternate.String() + ")"
}

// CallExpression represents a function call. Optional marks the link that
// triggers optional-chaining short-circuiting (`f?.()`); links that merely
// continue a chain leave it false.
type CallExpression struct {
	Loc       Loc
	Callee    Expression
	Arguments []Expression
	Optional  bool
}

func (c *CallExpression) expressionNode() {}
func (c *CallExpression) Pos() Loc        { return c.Loc }
func (c *CallExpression) String() string {
	var out bytes.Buffer
	out.WriteString(c.Callee.String())
	if c.Optional {
		out.WriteString("?.")
	}
	out.WriteString("(" + joinNodes(c.Arguments, ", ") + ")")
	return out.String()
}

// NewExpression represents `new Callee(args)`.
type NewExpression struct {
	Loc       Loc
	Callee    Expression
	Arguments []Expression
}

func (n *NewExpression) expressionNode() {}
func (n *NewExpression) Pos() Loc        { return n.Loc }
func (n *NewExpression) String() string {
	return "new " + n.Callee.String() + "(" + joinNodes(n.Arguments, ", ") + ")"
}

// MemberExpression represents property access: obj.prop, obj[expr],
// obj?.prop. Optional marks the triggering link of an optional chain, the
// same way CallExpression.Optional does.
type MemberExpression struct {
	Loc      Loc
	Object   Expression
	Property Expression
	Computed bool
	Optional bool
}

func (m *MemberExpression) expressionNode() {}
func (m *MemberExpression) forTargetNode()  {}
func (m *MemberExpression) Pos() Loc        { return m.Loc }
func (m *MemberExpression) String() string {
	var out bytes.Buffer
	out.WriteString(m.Object.String())
	if m.Optional {
		out.WriteString("?.")
		if m.Computed {
			out.WriteString("[" + m.Property.String() + "]")
		} else {
			out.WriteString(m.Property.String())
		}
		return out.String()
	}
	if m.Computed {
		out.WriteString("[" + m.Property.String() + "]")
	} else {
		out.WriteString("." + m.Property.String())
	}
	return out.String()
}

// SequenceExpression represents the comma operator: (a, b, c).
type SequenceExpression struct {
	Loc         Loc
	Expressions []Expression
}

func (s *SequenceExpression) expressionNode() {}
func (s *SequenceExpression) Pos() Loc        { return s.Loc }
func (s *SequenceExpression) String() string {
	return "(" + joinNodes(s.Expressions, ", ") + ")"
}

// TypeAssertionExpression represents a type cast: `expr as Type`.
type TypeAssertionExpression struct {
	Loc        Loc
	Expression Expression
	Type       Expression
}

func (t *TypeAssertionExpression) expressionNode() {}
func (t *TypeAssertionExpression) Pos() Loc        { return t.Loc }
func (t *TypeAssertionExpression) String() string {
	return "(" + t.Expression.String() + " as " + t.Type.String() + ")"
}

// YieldExpression represents `yield` and `yield*` inside generators.
type YieldExpression struct {
	Loc      Loc
	Argument Expression // nil for a bare yield
	Delegate bool
}

func (y *YieldExpression) expressionNode() {}
func (y *YieldExpression) Pos() Loc        { return y.Loc }
func (y *YieldExpression) String() string {
	var out bytes.Buffer
	out.WriteString("yield")
	if y.Delegate {
		out.WriteString("*")
	}
	if y.Argument != nil {
		out.WriteString(" ")
		out.WriteString(y.Argument.String())
	}
	return out.String()
}

// AwaitExpression represents `await expr`.
type AwaitExpression struct {
	Loc      Loc
	Argument Expression
}

func (a *AwaitExpression) expressionNode() {}
func (a *AwaitExpression) Pos() Loc        { return a.Loc }
func (a *AwaitExpression) String() string  { return "(await " + a.Argument.String() + ")" }
