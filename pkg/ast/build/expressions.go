package build

import "estree/pkg/ast"

// This builds `this`.
func This() *ast.ThisExpression {
	return &ast.ThisExpression{}
}

// Array builds an array literal. A nil element is an elision (hole).
func Array(elements ...ast.Expression) *ast.ArrayLiteral {
	return &ast.ArrayLiteral{Elements: elements}
}

// Object builds an object literal from properties and spreads.
func Object(members ...ast.ObjectMember) *ast.ObjectLiteral {
	return &ast.ObjectLiteral{Properties: members}
}

// Prop builds a plain `key: value` property.
func Prop(key string, value ast.Expression) *ast.Property {
	return &ast.Property{Key: Ident(key), Value: value, Kind: ast.PropertyInit}
}

// ComputedProp builds a `[key]: value` property.
func ComputedProp(key, value ast.Expression) *ast.Property {
	return &ast.Property{Key: key, Value: value, Kind: ast.PropertyInit, Computed: true}
}

// Shorthand builds `{ name }`, minting both key and value identifiers from
// the single name so they can never disagree.
func Shorthand(name string) *ast.Property {
	return &ast.Property{
		Key:       Ident(name),
		Value:     Ident(name),
		Kind:      ast.PropertyInit,
		Shorthand: true,
	}
}

// MethodProp builds an object method `name() {}`.
func MethodProp(name string, fn *ast.FunctionLiteral) *ast.Property {
	return &ast.Property{Key: Ident(name), Value: fn, Kind: ast.PropertyMethod}
}

// GetterProp builds an object `get name()` accessor.
func GetterProp(name string, fn *ast.FunctionLiteral) *ast.Property {
	return &ast.Property{Key: Ident(name), Value: fn, Kind: ast.PropertyGet}
}

// SetterProp builds an object `set name(v)` accessor.
func SetterProp(name string, fn *ast.FunctionLiteral) *ast.Property {
	return &ast.Property{Key: Ident(name), Value: fn, Kind: ast.PropertySet}
}

// Spread builds `...expr`, usable in calls, arrays and objects.
func Spread(e ast.Expression) *ast.SpreadElement {
	return &ast.SpreadElement{Argument: e}
}

// Unary builds a prefix operator application (`!x`, `typeof x`, ...).
func Unary(operator string, operand ast.Expression) *ast.UnaryExpression {
	return &ast.UnaryExpression{Operator: operator, Argument: operand}
}

// Update builds `++x` / `x++` and friends.
func Update(operator string, argument ast.Expression, prefix bool) *ast.UpdateExpression {
	return &ast.UpdateExpression{Operator: operator, Argument: argument, Prefix: prefix}
}

// Binary builds an arithmetic, relational or bitwise binary expression.
func Binary(operator string, left, right ast.Expression) *ast.BinaryExpression {
	return &ast.BinaryExpression{Operator: operator, Left: left, Right: right}
}

// Logical builds `&&`, `||` or `??`.
func Logical(operator string, left, right ast.Expression) *ast.LogicalExpression {
	return &ast.LogicalExpression{Operator: operator, Left: left, Right: right}
}

// Assign builds a plain `=` assignment.
func Assign(target, value ast.Expression) *ast.AssignmentExpression {
	return AssignOp("=", target, value)
}

// AssignOp builds a compound assignment (`+=`, `??=`, ...).
func AssignOp(operator string, target, value ast.Expression) *ast.AssignmentExpression {
	return &ast.AssignmentExpression{Operator: operator, Left: target, Right: value}
}

// Conditional builds `test ? consequent : alternate`.
func Conditional(test, consequent, alternate ast.Expression) *ast.ConditionalExpression {
	return &ast.ConditionalExpression{Test: test, Consequent: consequent, Alternate: alternate}
}

// Sequence builds a comma expression.
func Sequence(exprs ...ast.Expression) *ast.SequenceExpression {
	return &ast.SequenceExpression{Expressions: exprs}
}

// Call builds `callee(args)`.
func Call(callee ast.Expression, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Arguments: args}
}

// OptionalCall builds a call whose optional flag is explicit: true marks
// this call as an optional-chain trigger (`f?.()`), false marks a plain
// call inside a chain.
func OptionalCall(callee ast.Expression, optional bool, args ...ast.Expression) *ast.CallExpression {
	return &ast.CallExpression{Callee: callee, Arguments: args, Optional: optional}
}

// New builds `new callee(args)`.
func New(callee ast.Expression, args ...ast.Expression) *ast.NewExpression {
	return &ast.NewExpression{Callee: callee, Arguments: args}
}

// Member builds `obj.name`.
func Member(obj ast.Expression, name string) *ast.MemberExpression {
	return &ast.MemberExpression{Object: obj, Property: Ident(name)}
}

// ComputedMember builds `obj[prop]`.
func ComputedMember(obj, prop ast.Expression) *ast.MemberExpression {
	return &ast.MemberExpression{Object: obj, Property: prop, Computed: true}
}

// OptionalMember builds a member access whose optional flag is explicit:
// true marks an `obj?.name` trigger, false a plain `.name` inside a chain.
func OptionalMember(obj ast.Expression, name string, optional bool) *ast.MemberExpression {
	return &ast.MemberExpression{Object: obj, Property: Ident(name), Optional: optional}
}

// As builds a type assertion `expr as Type`.
func As(e ast.Expression, typ ast.Expression) *ast.TypeAssertionExpression {
	return &ast.TypeAssertionExpression{Expression: e, Type: typ}
}

// Yield builds `yield arg` (arg may be nil).
func Yield(arg ast.Expression) *ast.YieldExpression {
	return &ast.YieldExpression{Argument: arg}
}

// YieldFrom builds `yield* arg`.
func YieldFrom(arg ast.Expression) *ast.YieldExpression {
	return &ast.YieldExpression{Argument: arg, Delegate: true}
}

// Await builds `await arg`.
func Await(arg ast.Expression) *ast.AwaitExpression {
	return &ast.AwaitExpression{Argument: arg}
}
