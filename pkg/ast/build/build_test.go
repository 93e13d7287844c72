package build

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"estree/pkg/ast"
)

func TestStringLiteralQuoting(t *testing.T) {
	tests := []struct {
		value string
		raw   string
	}{
		{"hello", `"hello"`},
		{`say "hi"`, `"say \"hi\""`},
		{"a\nb", `"a\nb"`},
		{"tab\there", `"tab\there"`},
		{"\x01", `"\x01"`},
		{"", `""`},
	}
	for _, tt := range tests {
		lit := String(tt.value)
		require.Equal(t, tt.value, lit.Value)
		require.Equal(t, tt.raw, lit.Raw)
	}
}

func TestNumberKeepsRawVerbatim(t *testing.T) {
	lit := Number(1000, "1e3")
	require.Equal(t, float64(1000), lit.Value)
	require.Equal(t, "1e3", lit.Raw)
	require.Equal(t, "1e3", lit.String())
}

func TestBooleanAndNull(t *testing.T) {
	require.Equal(t, "true", Boolean(true).Raw)
	require.Equal(t, "false", Boolean(false).Raw)
	require.Equal(t, "null", Null().String())
}

func TestRegExpValidates(t *testing.T) {
	lit, err := RegExp(`\d+`, "gi")
	require.NoError(t, err)
	require.Equal(t, `\d+`, lit.Pattern)
	require.Equal(t, "gi", lit.Flags)
	require.Equal(t, `/\d+/gi`, lit.Raw)

	_, err = RegExp(`(unclosed`, "")
	require.Error(t, err)
}

func TestShorthandMintsMatchingNames(t *testing.T) {
	prop := Shorthand("x")
	require.True(t, prop.Shorthand)
	key := prop.Key.(*ast.Identifier)
	value := prop.Value.(*ast.Identifier)
	require.Equal(t, key.Name, value.Name)
	require.NotSame(t, key, value)
}

func TestShorthandPatternPropMintsMatchingNames(t *testing.T) {
	prop := ShorthandPatternProp("y")
	require.True(t, prop.Shorthand)
	key := prop.Key.(*ast.Identifier)
	value := prop.Value.(*ast.Identifier)
	require.Equal(t, key.Name, value.Name)
}

func TestPatternConveniences(t *testing.T) {
	obj := ObjectPat("x")
	require.Len(t, obj.Properties, 1)
	require.True(t, obj.Properties[0].Shorthand)
	require.Equal(t, "x", obj.Properties[0].Key.(*ast.Identifier).Name)
	require.Equal(t, "x", obj.Properties[0].Value.(*ast.Identifier).Name)

	arr := ArrayPat("y")
	require.Len(t, arr.Elements, 1)
	require.Equal(t, "y", arr.Elements[0].(*ast.Identifier).Name)

	def := Default("z", Number(1, "1"))
	require.Equal(t, "z", def.Left.(*ast.Identifier).Name)
	require.Equal(t, "z = 1", def.String())
}

func TestDirectiveFieldsStayConsistent(t *testing.T) {
	d := Directive("use strict")
	require.Equal(t, "use strict", d.Directive)
	lit := d.Expression.(*ast.StringLiteral)
	require.Equal(t, "use strict", lit.Value)
	require.Equal(t, `"use strict"`, lit.Raw)
}

func TestArrowHasNoName(t *testing.T) {
	arrow := Arrow([]ast.Pattern{Ident("x")}, ExprBody(Ident("x")))
	// Expression bodies render bare; block bodies render with braces.
	require.Equal(t, "(x) => x", arrow.String())

	blockArrow := Arrow(nil, Block())
	require.Equal(t, "() => {\n}", blockArrow.String())
}

func TestArrowNilBodyDefaultsToBlock(t *testing.T) {
	arrow := Arrow(nil, nil)
	_, isBlock := arrow.Body.(*ast.BlockStatement)
	require.True(t, isBlock)
}

func TestFunctionDefaults(t *testing.T) {
	fn := Function("", nil, nil)
	require.Nil(t, fn.Name)
	require.NotNil(t, fn.Body)

	named := FunctionWith("gen", nil, nil, FuncOpts{Generator: true})
	require.Equal(t, "gen", named.Name.Name)
	require.True(t, named.Generator)
}

func TestOptionalChainFlags(t *testing.T) {
	// a?.b.c: only the first link triggers.
	chain := Member(OptionalMember(Ident("a"), "b", true), "c")
	require.Equal(t, "a?.b.c", chain.String())
	inner := chain.Object.(*ast.MemberExpression)
	require.True(t, inner.Optional)
	require.False(t, chain.Optional)

	call := OptionalCall(Ident("f"), true)
	require.True(t, call.Optional)
	require.Equal(t, "f?.()", call.String())
}

func TestJSXSelfClosingInvariant(t *testing.T) {
	open := Element("br", true, nil, nil)
	require.True(t, open.Opening.SelfClosing)
	require.Nil(t, open.Closing)

	closed := Element("div", false, nil, []ast.JSXChild{Text("hi")})
	require.False(t, closed.Opening.SelfClosing)
	require.NotNil(t, closed.Closing)
	require.Equal(t, closed.Opening.Name.Name, closed.Closing.Name.Name)
}

func TestJSXAttrWrapping(t *testing.T) {
	bare := Attr("disabled", nil)
	require.Nil(t, bare.Value)

	str := Attr("id", String("root"))
	_, isString := str.Value.(*ast.StringLiteral)
	require.True(t, isString)

	expr := Attr("count", Ident("n"))
	_, isContainer := expr.Value.(*ast.JSXExpressionContainer)
	require.True(t, isContainer)
}

func TestBreakContinueLabels(t *testing.T) {
	require.Nil(t, Break("").Label)
	require.Equal(t, "outer", Break("outer").Label.Name)
	require.Nil(t, Continue("").Label)
	require.Equal(t, "outer", Continue("outer").Label.Name)
}

func TestForWrapsExpressionInit(t *testing.T) {
	loop := For(Assign(Ident("i"), Number(0, "0")), nil, nil, Block())
	init, ok := loop.Init.(*ast.ExpressionStatement)
	require.True(t, ok)
	_, isAssign := init.Expression.(*ast.AssignmentExpression)
	require.True(t, isAssign)

	bare := For(nil, nil, nil, Block())
	require.Nil(t, bare.Init)
}

func TestTryOmitsMissingClauses(t *testing.T) {
	bare := Try(Block(), nil, nil, Block())
	require.Nil(t, bare.Handler)
	require.NotNil(t, bare.Finalizer)

	caught := Try(Block(), Ident("e"), Block(), nil)
	require.NotNil(t, caught.Handler)
	require.Equal(t, "e", caught.Handler.Param.(*ast.Identifier).Name)
	require.Nil(t, caught.Finalizer)
}

func TestClassBuilders(t *testing.T) {
	cls := Class("Point", Ident("Base"), nil,
		Field("x", Number(0, "0")),
		Constructor(Function("", []ast.Pattern{Ident("x")}, nil)),
		Getter("half", Function("", nil, nil)),
		StaticMethod("origin", Function("", nil, nil)),
	)
	require.Equal(t, "Point", cls.Name.Name)
	require.Len(t, cls.Body, 4)

	ctor := cls.Body[1].(*ast.MethodDefinition)
	require.Equal(t, ast.MethodConstructor, ctor.Kind)

	origin := cls.Body[3].(*ast.MethodDefinition)
	require.True(t, origin.Static)
}

func TestProgramAssembly(t *testing.T) {
	empty := Program(nil)
	require.Empty(t, empty.Body)
	require.Empty(t, empty.Comments)

	prog := Program(
		[]ast.Statement{Const("x", Number(1, "1"))},
		LineComment(" setup"),
	)
	require.Len(t, prog.Body, 1)
	require.Len(t, prog.Comments, 1)
	require.Equal(t, ast.CommentLine, prog.Comments[0].Kind)
}

func TestModuleBuilders(t *testing.T) {
	imp := ImportNamed("m", NamedSpec("a", ""), NamedSpec("b", "c"))
	require.Equal(t, `import {a, b as c} from "m";`, imp.String())

	all := ExportAll("ns", "m")
	require.Equal(t, `export * as ns from "m";`, all.String())

	names := ExportNames("", ExportSpec("x", ""))
	require.Equal(t, "export {x};", names.String())
}

func TestBuiltTreeMatchesHandAssembled(t *testing.T) {
	built := If(Binary(">", Ident("x"), Number(0, "0")),
		Block(ExprStmt(Call(Ident("f"), Ident("x")))),
		nil,
	)
	want := &ast.IfStatement{
		Test: &ast.BinaryExpression{
			Operator: ">",
			Left:     &ast.Identifier{Name: "x"},
			Right:    &ast.NumberLiteral{Value: 0, Raw: "0"},
		},
		Consequent: &ast.BlockStatement{Body: []ast.Statement{
			&ast.ExpressionStatement{Expression: &ast.CallExpression{
				Callee:    &ast.Identifier{Name: "f"},
				Arguments: []ast.Expression{&ast.Identifier{Name: "x"}},
			}},
		}},
	}
	if diff := cmp.Diff(want, built); diff != "" {
		t.Errorf("tree mismatch (-want +got):\n%s", diff)
	}
	require.Equal(t, "if ((x > 0)) {\n  f(x);\n}", built.String())
}
