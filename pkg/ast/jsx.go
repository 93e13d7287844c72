package ast

import "bytes"

// JSXIdentifier names a JSX element or attribute. Dotted member names
// (Foo.Bar) are stored verbatim.
type JSXIdentifier struct {
	Loc  Loc
	Name string
}

func (j *JSXIdentifier) Pos() Loc       { return j.Loc }
func (j *JSXIdentifier) String() string { return j.Name }

// JSXAttribute represents `name` or `name={value}` / `name="text"` in an
// opening tag. Value is nil for bare boolean attributes, a *StringLiteral
// for quoted text, or a *JSXExpressionContainer.
type JSXAttribute struct {
	Loc   Loc
	Name  *JSXIdentifier
	Value Expression
}

func (j *JSXAttribute) jsxAttrNode() {}
func (j *JSXAttribute) Pos() Loc     { return j.Loc }
func (j *JSXAttribute) String() string {
	if j.Value == nil {
		return j.Name.Name
	}
	return j.Name.Name + "=" + j.Value.String()
}

// JSXSpreadAttribute represents `{...expr}` in an opening tag.
type JSXSpreadAttribute struct {
	Loc      Loc
	Argument Expression
}

func (j *JSXSpreadAttribute) jsxAttrNode()   {}
func (j *JSXSpreadAttribute) Pos() Loc       { return j.Loc }
func (j *JSXSpreadAttribute) String() string { return "{..." + j.Argument.String() + "}" }

// JSXOpeningElement is the opening tag: name, attributes, self-closing flag.
type JSXOpeningElement struct {
	Loc         Loc
	Name        *JSXIdentifier
	Attributes  []JSXAttr
	SelfClosing bool
}

func (j *JSXOpeningElement) Pos() Loc { return j.Loc }
func (j *JSXOpeningElement) String() string {
	var out bytes.Buffer
	out.WriteString("<" + j.Name.Name)
	for _, a := range j.Attributes {
		out.WriteString(" " + a.String())
	}
	if j.SelfClosing {
		out.WriteString(" />")
	} else {
		out.WriteString(">")
	}
	return out.String()
}

// JSXClosingElement is the closing tag; its name must match the opening tag.
type JSXClosingElement struct {
	Loc  Loc
	Name *JSXIdentifier
}

func (j *JSXClosingElement) Pos() Loc       { return j.Loc }
func (j *JSXClosingElement) String() string { return "</" + j.Name.Name + ">" }

// JSXText is literal text between tags.
type JSXText struct {
	Loc   Loc
	Value string
}

func (j *JSXText) jsxChildNode()  {}
func (j *JSXText) Pos() Loc       { return j.Loc }
func (j *JSXText) String() string { return j.Value }

// JSXExpressionContainer wraps an expression child or attribute value in
// braces.
type JSXExpressionContainer struct {
	Loc        Loc
	Expression Expression
}

func (j *JSXExpressionContainer) expressionNode() {}
func (j *JSXExpressionContainer) jsxChildNode()   {}
func (j *JSXExpressionContainer) Pos() Loc        { return j.Loc }
func (j *JSXExpressionContainer) String() string  { return "{" + j.Expression.String() + "}" }

// JSXElement is a markup element. Invariant: Closing is nil exactly when
// Opening.SelfClosing is true, and when present its name matches the
// opening tag's. The build package enforces this by construction.
type JSXElement struct {
	Loc      Loc
	Opening  *JSXOpeningElement
	Closing  *JSXClosingElement
	Children []JSXChild
}

func (j *JSXElement) expressionNode() {}
func (j *JSXElement) jsxChildNode()   {}
func (j *JSXElement) Pos() Loc        { return j.Loc }
func (j *JSXElement) String() string {
	var out bytes.Buffer
	out.WriteString(j.Opening.String())
	for _, c := range j.Children {
		out.WriteString(c.String())
	}
	if j.Closing != nil {
		out.WriteString(j.Closing.String())
	}
	return out.String()
}
