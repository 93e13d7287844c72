package ast

import "bytes"

// ClassImplements is one entry of an `implements` clause, with optional
// type arguments.
type ClassImplements struct {
	Loc      Loc
	Name     *Identifier
	TypeArgs []Expression
}

func (c *ClassImplements) Pos() Loc { return c.Loc }
func (c *ClassImplements) String() string {
	if len(c.TypeArgs) > 0 {
		return c.Name.Name + "<" + joinNodes(c.TypeArgs, ", ") + ">"
	}
	return c.Name.Name
}

// MethodKind distinguishes the flavors of a class method.
type MethodKind string

const (
	MethodConstructor MethodKind = "constructor"
	MethodMethod      MethodKind = "method"
	MethodGet         MethodKind = "get"
	MethodSet         MethodKind = "set"
)

// MethodDefinition is a class method. The function value carries the shared
// function shape; the definition adds placement (static, computed key) and
// decorators.
type MethodDefinition struct {
	Loc        Loc
	Key        Expression
	Kind       MethodKind
	Value      *FunctionLiteral
	Static     bool
	Computed   bool
	Decorators []Expression
}

func (m *MethodDefinition) classElementNode() {}
func (m *MethodDefinition) Pos() Loc          { return m.Loc }
func (m *MethodDefinition) String() string {
	var out bytes.Buffer
	for _, d := range m.Decorators {
		out.WriteString("@" + d.String() + " ")
	}
	if m.Static {
		out.WriteString("static ")
	}
	if m.Kind == MethodGet || m.Kind == MethodSet {
		out.WriteString(string(m.Kind) + " ")
	}
	if m.Value.Async {
		out.WriteString("async ")
	}
	if m.Value.Generator {
		out.WriteString("*")
	}
	if m.Computed {
		out.WriteString("[" + m.Key.String() + "]")
	} else {
		out.WriteString(m.Key.String())
	}
	out.WriteString(m.Value.signatureString())
	out.WriteString(" ")
	if m.Value.Body != nil {
		out.WriteString(m.Value.Body.String())
	}
	return out.String()
}

// PropertyDefinition is a class field, with or without an initializer.
type PropertyDefinition struct {
	Loc            Loc
	Key            Expression
	Value          Expression // nil for a bare declaration
	TypeAnnotation Expression
	Static         bool
	Computed       bool
	Optional       bool
	Decorators     []Expression
}

func (p *PropertyDefinition) classElementNode() {}
func (p *PropertyDefinition) Pos() Loc          { return p.Loc }
func (p *PropertyDefinition) String() string {
	var out bytes.Buffer
	for _, d := range p.Decorators {
		out.WriteString("@" + d.String() + " ")
	}
	if p.Static {
		out.WriteString("static ")
	}
	if p.Computed {
		out.WriteString("[" + p.Key.String() + "]")
	} else {
		out.WriteString(p.Key.String())
	}
	if p.Optional {
		out.WriteString("?")
	}
	if p.TypeAnnotation != nil {
		out.WriteString(": " + p.TypeAnnotation.String())
	}
	if p.Value != nil {
		out.WriteString(" = " + p.Value.String())
	}
	out.WriteString(";")
	return out.String()
}

// ClassLiteral is the shared class shape used by both class declarations and
// class expressions: optional name, heritage, implemented interfaces, and
// ordered body elements (declaration order is significant and preserved).
type ClassLiteral struct {
	Loc           Loc
	Name          *Identifier // nil for anonymous class expressions
	TypeParams    []*TypeParameter
	SuperClass    Expression // nil when there is no extends clause
	SuperTypeArgs []Expression
	Implements    []*ClassImplements
	Body          []ClassElement
}

func (c *ClassLiteral) expressionNode() {}
func (c *ClassLiteral) Pos() Loc        { return c.Loc }
func (c *ClassLiteral) String() string {
	var out bytes.Buffer
	out.WriteString("class")
	if c.Name != nil {
		out.WriteString(" " + c.Name.Name)
	}
	if len(c.TypeParams) > 0 {
		out.WriteString("<" + joinNodes(c.TypeParams, ", ") + ">")
	}
	if c.SuperClass != nil {
		out.WriteString(" extends " + c.SuperClass.String())
		if len(c.SuperTypeArgs) > 0 {
			out.WriteString("<" + joinNodes(c.SuperTypeArgs, ", ") + ">")
		}
	}
	if len(c.Implements) > 0 {
		out.WriteString(" implements " + joinNodes(c.Implements, ", "))
	}
	out.WriteString(" {\n")
	for _, el := range c.Body {
		out.WriteString(indentBlock(el.String()))
		out.WriteString("\n")
	}
	out.WriteString("}")
	return out.String()
}
