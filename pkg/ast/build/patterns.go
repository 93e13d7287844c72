package build

import "estree/pkg/ast"

// Ident builds an identifier pattern with no annotation and no optional
// marker.
func Ident(name string) *ast.Identifier {
	return &ast.Identifier{Name: name}
}

// ArrayPat builds the one-element array pattern `[name]`. It is a
// convenience for the common fixture shape, not a general array-pattern
// constructor; use ArrayPatOf for multi-element patterns.
func ArrayPat(name string) *ast.ArrayPattern {
	return ArrayPatOf(Ident(name))
}

// ArrayPatOf builds an array pattern from its elements. A nil element is an
// elision hole.
func ArrayPatOf(elements ...ast.Pattern) *ast.ArrayPattern {
	return &ast.ArrayPattern{Elements: elements}
}

// ObjectPat builds the one-property shorthand object pattern `{name}`.
// Use ObjectPatOf for the general form.
func ObjectPat(name string) *ast.ObjectPattern {
	return ObjectPatOf(ShorthandPatternProp(name))
}

// ObjectPatOf builds an object pattern from its properties.
func ObjectPatOf(props ...*ast.PatternProperty) *ast.ObjectPattern {
	return &ast.ObjectPattern{Properties: props}
}

// PatternProp builds a `key: value` object-pattern entry.
func PatternProp(key ast.Expression, value ast.Pattern) *ast.PatternProperty {
	return &ast.PatternProperty{Key: key, Value: value}
}

// ShorthandPatternProp builds a shorthand object-pattern entry. Key and
// bound identifier are minted from the one name, so they cannot disagree.
func ShorthandPatternProp(name string) *ast.PatternProperty {
	return &ast.PatternProperty{
		Key:       Ident(name),
		Value:     Ident(name),
		Shorthand: true,
	}
}

// Default builds the defaulted identifier pattern `name = value`.
func Default(name string, value ast.Expression) *ast.AssignmentPattern {
	return AssignmentPat(Ident(name), value)
}

// AssignmentPat pairs an arbitrary target pattern with a default expression.
func AssignmentPat(target ast.Pattern, value ast.Expression) *ast.AssignmentPattern {
	return &ast.AssignmentPattern{Left: target, Right: value}
}

// Rest builds a `...target` rest element.
func Rest(target ast.Pattern) *ast.RestElement {
	return &ast.RestElement{Argument: target}
}
