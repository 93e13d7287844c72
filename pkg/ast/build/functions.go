package build

import "estree/pkg/ast"

// FuncOpts carries the optional parts of the shared function shape.
type FuncOpts struct {
	Generator  bool
	Async      bool
	ReturnType ast.Expression
	TypeParams []*ast.TypeParameter
}

// Function builds a plain (non-generator, non-async) function. An empty
// name makes it anonymous; a nil body defaults to an empty block.
func Function(name string, params []ast.Pattern, body *ast.BlockStatement) *ast.FunctionLiteral {
	return FunctionWith(name, params, body, FuncOpts{})
}

// FunctionWith builds the shared function shape with explicit options.
func FunctionWith(name string, params []ast.Pattern, body *ast.BlockStatement, opts FuncOpts) *ast.FunctionLiteral {
	fn := &ast.FunctionLiteral{
		Params:     params,
		Body:       body,
		Generator:  opts.Generator,
		Async:      opts.Async,
		ReturnType: opts.ReturnType,
		TypeParams: opts.TypeParams,
	}
	if name != "" {
		fn.Name = Ident(name)
	}
	if fn.Body == nil {
		fn.Body = &ast.BlockStatement{}
	}
	return fn
}

// Arrow builds an arrow function. The body is either a *BlockStatement or
// an ExprBody; a nil body defaults to an empty block. Arrows are always
// anonymous.
func Arrow(params []ast.Pattern, body ast.FuncBody) *ast.ArrowFunctionLiteral {
	if body == nil {
		body = &ast.BlockStatement{}
	}
	return &ast.ArrowFunctionLiteral{Params: params, Body: body}
}

// AsyncArrow builds an async arrow function.
func AsyncArrow(params []ast.Pattern, body ast.FuncBody) *ast.ArrowFunctionLiteral {
	arrow := Arrow(params, body)
	arrow.Async = true
	return arrow
}

// ExprBody wraps a single expression as an arrow function body.
func ExprBody(e ast.Expression) *ast.ExprBody {
	return &ast.ExprBody{Expr: e}
}

// TypeParam builds a type parameter, optionally constrained.
func TypeParam(name string, constraint ast.Expression) *ast.TypeParameter {
	return &ast.TypeParameter{Name: Ident(name), Constraint: constraint}
}
