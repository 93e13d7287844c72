package build

import "estree/pkg/ast"

// Class builds the shared class shape. An empty name makes it anonymous;
// super may be nil; implements may be nil or empty. Body elements keep
// their call order, since declaration order is semantically significant.
func Class(name string, super ast.Expression, implements []*ast.ClassImplements, elements ...ast.ClassElement) *ast.ClassLiteral {
	cls := &ast.ClassLiteral{
		SuperClass: super,
		Implements: implements,
		Body:       elements,
	}
	if name != "" {
		cls.Name = Ident(name)
	}
	return cls
}

// Implements builds one `implements` clause entry with optional type
// arguments.
func Implements(name string, typeArgs ...ast.Expression) *ast.ClassImplements {
	return &ast.ClassImplements{Name: Ident(name), TypeArgs: typeArgs}
}

// Method builds an instance method from the shared function shape.
func Method(name string, fn *ast.FunctionLiteral) *ast.MethodDefinition {
	return &ast.MethodDefinition{Key: Ident(name), Kind: ast.MethodMethod, Value: fn}
}

// StaticMethod builds a static method.
func StaticMethod(name string, fn *ast.FunctionLiteral) *ast.MethodDefinition {
	m := Method(name, fn)
	m.Static = true
	return m
}

// Getter builds a `get name()` accessor.
func Getter(name string, fn *ast.FunctionLiteral) *ast.MethodDefinition {
	return &ast.MethodDefinition{Key: Ident(name), Kind: ast.MethodGet, Value: fn}
}

// Setter builds a `set name(v)` accessor.
func Setter(name string, fn *ast.FunctionLiteral) *ast.MethodDefinition {
	return &ast.MethodDefinition{Key: Ident(name), Kind: ast.MethodSet, Value: fn}
}

// Constructor builds the class constructor.
func Constructor(fn *ast.FunctionLiteral) *ast.MethodDefinition {
	return &ast.MethodDefinition{Key: Ident("constructor"), Kind: ast.MethodConstructor, Value: fn}
}

// Field builds an instance field, with value nil for a bare declaration.
func Field(name string, value ast.Expression) *ast.PropertyDefinition {
	return &ast.PropertyDefinition{Key: Ident(name), Value: value}
}

// StaticField builds a static field.
func StaticField(name string, value ast.Expression) *ast.PropertyDefinition {
	f := Field(name, value)
	f.Static = true
	return f
}
