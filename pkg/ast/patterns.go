package ast

import "bytes"

// ArrayPattern represents an array destructuring target like [a, , b].
// A nil element is an elision hole.
type ArrayPattern struct {
	Loc            Loc
	Elements       []Pattern
	TypeAnnotation Expression // nil means "no annotation"
}

func (a *ArrayPattern) patternNode()   {}
func (a *ArrayPattern) forTargetNode() {}
func (a *ArrayPattern) Pos() Loc       { return a.Loc }
func (a *ArrayPattern) String() string {
	var out bytes.Buffer
	out.WriteString("[" + joinNodes(a.Elements, ", ") + "]")
	if a.TypeAnnotation != nil {
		out.WriteString(": ")
		out.WriteString(a.TypeAnnotation.String())
	}
	return out.String()
}

// PatternProperty is one entry of an object pattern: key plus sub-pattern.
// Shorthand entries denote the same name on both sides.
type PatternProperty struct {
	Loc       Loc
	Key       Expression
	Value     Pattern
	Computed  bool
	Shorthand bool
}

func (p *PatternProperty) Pos() Loc { return p.Loc }
func (p *PatternProperty) String() string {
	if p.Shorthand {
		return p.Value.String()
	}
	if p.Computed {
		return "[" + p.Key.String() + "]: " + p.Value.String()
	}
	return p.Key.String() + ": " + p.Value.String()
}

// ObjectPattern represents an object destructuring target like {a, b: c}.
// Rest, when present, collects the remaining properties: {a, ...rest}.
type ObjectPattern struct {
	Loc            Loc
	Properties     []*PatternProperty
	Rest           *RestElement
	TypeAnnotation Expression
}

func (o *ObjectPattern) patternNode()   {}
func (o *ObjectPattern) forTargetNode() {}
func (o *ObjectPattern) Pos() Loc       { return o.Loc }
func (o *ObjectPattern) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	out.WriteString(joinNodes(o.Properties, ", "))
	if o.Rest != nil {
		if len(o.Properties) > 0 {
			out.WriteString(", ")
		}
		out.WriteString(o.Rest.String())
	}
	out.WriteString("}")
	if o.TypeAnnotation != nil {
		out.WriteString(": ")
		out.WriteString(o.TypeAnnotation.String())
	}
	return out.String()
}

// AssignmentPattern pairs a target pattern with a default expression,
// as in function parameters `f(x = 1)` or destructuring `{a = 2}`.
// The right side is an expression, never a pattern.
type AssignmentPattern struct {
	Loc   Loc
	Left  Pattern
	Right Expression
}

func (a *AssignmentPattern) patternNode() {}
func (a *AssignmentPattern) Pos() Loc     { return a.Loc }
func (a *AssignmentPattern) String() string {
	return a.Left.String() + " = " + a.Right.String()
}

// RestElement represents `...target` in parameter lists and patterns.
type RestElement struct {
	Loc      Loc
	Argument Pattern
}

func (r *RestElement) patternNode()   {}
func (r *RestElement) Pos() Loc       { return r.Loc }
func (r *RestElement) String() string { return "..." + r.Argument.String() }
