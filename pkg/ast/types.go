package ast

import "bytes"

// Type annotations are syntactic only: this library records them and never
// checks them. They live in the expression union so that annotation slots
// can also hold plain identifiers (the common case).

// TypeReference represents a possibly-generic type name: Foo, Foo<Bar, Baz>.
type TypeReference struct {
	Loc      Loc
	Name     Expression
	TypeArgs []Expression
}

func (t *TypeReference) expressionNode() {}
func (t *TypeReference) Pos() Loc        { return t.Loc }
func (t *TypeReference) String() string {
	var out bytes.Buffer
	out.WriteString(t.Name.String())
	if len(t.TypeArgs) > 0 {
		out.WriteString("<" + joinNodes(t.TypeArgs, ", ") + ">")
	}
	return out.String()
}

// UnionType represents a binary union: A | B. Wider unions nest.
type UnionType struct {
	Loc   Loc
	Left  Expression
	Right Expression
}

func (u *UnionType) expressionNode() {}
func (u *UnionType) Pos() Loc        { return u.Loc }
func (u *UnionType) String() string {
	return "(" + u.Left.String() + " | " + u.Right.String() + ")"
}

// ArrayType represents T[].
type ArrayType struct {
	Loc     Loc
	Element Expression
}

func (a *ArrayType) expressionNode() {}
func (a *ArrayType) Pos() Loc        { return a.Loc }
func (a *ArrayType) String() string  { return a.Element.String() + "[]" }

// TypeParameter is one entry of a type-parameter list: T or T extends U.
type TypeParameter struct {
	Loc        Loc
	Name       *Identifier
	Constraint Expression // nil when unconstrained
}

func (t *TypeParameter) Pos() Loc { return t.Loc }
func (t *TypeParameter) String() string {
	if t.Constraint != nil {
		return t.Name.Name + " extends " + t.Constraint.String()
	}
	return t.Name.Name
}
