package parser

import (
	"strings"
	"testing"

	"estree/pkg/ast"
	"estree/pkg/errors"
	"estree/pkg/lexer"
)

func parseWith(t *testing.T, input string, opts *Options) (*ast.Program, []errors.SourceError) {
	t.Helper()
	p := New(lexer.NewFromString(input), opts)
	return p.ParseProgram()
}

func parseProgram(t *testing.T, input string) *ast.Program {
	t.Helper()
	prog, errs := parseWith(t, input, DefaultOptions())
	checkParserErrors(t, errs)
	return prog
}

func checkParserErrors(t *testing.T, errs []errors.SourceError) {
	t.Helper()
	if len(errs) == 0 {
		return
	}
	t.Errorf("parser has %d errors", len(errs))
	for _, e := range errs {
		t.Errorf("  %s", e.Error())
	}
	t.FailNow()
}

func expectErrors(t *testing.T, input string, opts *Options, fragment string) {
	t.Helper()
	_, errs := parseWith(t, input, opts)
	if len(errs) == 0 {
		t.Fatalf("expected errors for %q, got none", input)
	}
	if fragment == "" {
		return
	}
	for _, e := range errs {
		if strings.Contains(e.Message(), fragment) {
			return
		}
	}
	t.Fatalf("no error mentioning %q for %q; got %v", fragment, input, errs)
}

func TestVariableStatements(t *testing.T) {
	prog := parseProgram(t, "let a = 1;\nconst b = a;\nvar c;")
	if len(prog.Body) != 3 {
		t.Fatalf("expected 3 statements, got %d", len(prog.Body))
	}

	tests := []struct {
		kind    ast.DeclKind
		name    string
		hasInit bool
	}{
		{ast.DeclLet, "a", true},
		{ast.DeclConst, "b", true},
		{ast.DeclVar, "c", false},
	}
	for i, tt := range tests {
		decl, ok := prog.Body[i].(*ast.VariableDeclaration)
		if !ok {
			t.Fatalf("statement %d is %T, not a declaration", i, prog.Body[i])
		}
		if decl.Kind != tt.kind {
			t.Errorf("statement %d: kind %s, want %s", i, decl.Kind, tt.kind)
		}
		name := decl.Declarations[0].Name.(*ast.Identifier)
		if name.Name != tt.name {
			t.Errorf("statement %d: name %s, want %s", i, name.Name, tt.name)
		}
		if (decl.Declarations[0].Init != nil) != tt.hasInit {
			t.Errorf("statement %d: initializer presence mismatch", i)
		}
	}
}

func TestConstRequiresInitializer(t *testing.T) {
	expectErrors(t, "const x;", DefaultOptions(), "const")
}

func TestOperatorPrecedence(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"a + b * c;", "(a + (b * c));"},
		{"a * b + c;", "((a * b) + c);"},
		{"-a * b;", "((-a) * b);"},
		{"!x;", "(!x);"},
		{"a ** b ** c;", "(a ** (b ** c));"},
		{"a + b < c == d;", "(((a + b) < c) == d);"},
		{"a || b && c;", "(a || (b && c));"},
		{"a ?? b ?? c;", "((a ?? b) ?? c);"},
		{"a = b = c;", "(a = (b = c));"},
		{"a ? b : c ? d : e;", "(a ? b : (c ? d : e));"},
		{"a, b, c;", "(a, b, c);"},
		{"x++;", "(x++);"},
		{"--x;", "(--x);"},
		{"a.b?.c;", "a.b?.c;"},
		{"new a.b();", "new a.b();"},
		{"typeof a === b;", "((typeof a) === b);"},
		{"a in b;", "(a in b);"},
		{"a instanceof B;", "(a instanceof B);"},
		{"f(a, b)(c);", "f(a, b)(c);"},
		{"a[0] + b[1];", "(a[0] + b[1]);"},
		{"(a + b) * c;", "((a + b) * c);"},
		{"a / b / c;", "((a / b) / c);"},
	}
	for _, tt := range tests {
		prog := parseProgram(t, tt.input)
		if got := prog.String(); got != tt.expected {
			t.Errorf("%q: got %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestArrowFunctions(t *testing.T) {
	prog := parseProgram(t, "const f = x => x * 2;")
	decl := prog.Body[0].(*ast.VariableDeclaration)
	arrow, ok := decl.Declarations[0].Init.(*ast.ArrowFunctionLiteral)
	if !ok {
		t.Fatalf("initializer is %T, not an arrow", decl.Declarations[0].Init)
	}
	if len(arrow.Params) != 1 {
		t.Fatalf("expected 1 parameter, got %d", len(arrow.Params))
	}
	if _, ok := arrow.Body.(*ast.ExprBody); !ok {
		t.Errorf("expected expression body, got %T", arrow.Body)
	}

	prog = parseProgram(t, "const g = (a, b = 1, ...rest) => { return a; };")
	arrow = prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.ArrowFunctionLiteral)
	if len(arrow.Params) != 3 {
		t.Fatalf("expected 3 parameters, got %d", len(arrow.Params))
	}
	if _, ok := arrow.Params[1].(*ast.AssignmentPattern); !ok {
		t.Errorf("parameter 1 is %T, not a default", arrow.Params[1])
	}
	if _, ok := arrow.Params[2].(*ast.RestElement); !ok {
		t.Errorf("parameter 2 is %T, not a rest element", arrow.Params[2])
	}
	if _, ok := arrow.Body.(*ast.BlockStatement); !ok {
		t.Errorf("expected block body, got %T", arrow.Body)
	}

	prog = parseProgram(t, "const h = async x => x;")
	arrow = prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.ArrowFunctionLiteral)
	if !arrow.Async {
		t.Error("expected async arrow")
	}
}

func TestGroupedExpressionIsNotArrow(t *testing.T) {
	prog := parseProgram(t, "(a + b);")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	if _, ok := stmt.Expression.(*ast.BinaryExpression); !ok {
		t.Fatalf("expected binary expression, got %T", stmt.Expression)
	}
}

func TestOptionalChaining(t *testing.T) {
	prog := parseProgram(t, "a?.b?.[0]?.();")
	expr := prog.Body[0].(*ast.ExpressionStatement).Expression
	call, ok := expr.(*ast.CallExpression)
	if !ok {
		t.Fatalf("expected call, got %T", expr)
	}
	if !call.Optional {
		t.Error("call link should be optional")
	}
	index := call.Callee.(*ast.MemberExpression)
	if !index.Computed || !index.Optional {
		t.Error("index link should be computed and optional")
	}
	member := index.Object.(*ast.MemberExpression)
	if member.Computed || !member.Optional {
		t.Error("member link should be plain and optional")
	}

	opts := DefaultOptions()
	opts.OptionalChaining = false
	expectErrors(t, "a?.b;", opts, "optional chaining")
}

func TestNullishCoalescingGate(t *testing.T) {
	opts := DefaultOptions()
	opts.NullishCoalescing = false
	expectErrors(t, "a ?? b;", opts, "nullish")
	expectErrors(t, "a ??= b;", opts, "nullish")
}

func TestRegexLiteral(t *testing.T) {
	prog := parseProgram(t, "const r = /ab+c/gi;")
	lit, ok := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.RegExpLiteral)
	if !ok {
		t.Fatalf("initializer is not a regex literal")
	}
	if lit.Pattern != "ab+c" || lit.Flags != "gi" {
		t.Errorf("got pattern %q flags %q", lit.Pattern, lit.Flags)
	}

	expectErrors(t, "const r = /(unclosed/;", DefaultOptions(), "regular expression")
}

func TestForVariants(t *testing.T) {
	prog := parseProgram(t, "for (let i = 0; i < 3; i++) { f(i); }")
	loop := prog.Body[0].(*ast.ForStatement)
	if loop.Init == nil || loop.Test == nil || loop.Update == nil {
		t.Error("classic for should have all three clauses")
	}

	prog = parseProgram(t, "for (;;) {}")
	loop = prog.Body[0].(*ast.ForStatement)
	if loop.Init != nil || loop.Test != nil || loop.Update != nil {
		t.Error("empty header should leave all clauses nil")
	}

	prog = parseProgram(t, "for (const k in obj) {}")
	forIn := prog.Body[0].(*ast.ForInStatement)
	left := forIn.Left.(*ast.VariableDeclaration)
	if left.Kind != ast.DeclConst || len(left.Declarations) != 1 {
		t.Errorf("for-in left: %s", left.String())
	}

	prog = parseProgram(t, "for (const v of xs) {}")
	forOf := prog.Body[0].(*ast.ForOfStatement)
	if forOf.Await {
		t.Error("plain for-of should not be awaited")
	}

	prog = parseProgram(t, "async function f() { for await (const v of xs) {} }")
	fn := prog.Body[0].(*ast.FunctionDeclaration)
	inner := fn.Fn.Body.Body[0].(*ast.ForOfStatement)
	if !inner.Await {
		t.Error("for await should set the await flag")
	}

	prog = parseProgram(t, "for ([a, b] of pairs) {}")
	forOf = prog.Body[0].(*ast.ForOfStatement)
	if _, ok := forOf.Left.(*ast.ArrayPattern); !ok {
		t.Errorf("for-of left is %T, not an array pattern", forOf.Left)
	}
}

func TestDestructuringDeclarations(t *testing.T) {
	prog := parseProgram(t, "const {a, b: c = 1, ...rest} = o;")
	pat := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Name.(*ast.ObjectPattern)
	if len(pat.Properties) != 2 || pat.Rest == nil {
		t.Fatalf("object pattern shape: %s", pat.String())
	}
	if !pat.Properties[0].Shorthand {
		t.Error("first property should be shorthand")
	}
	if _, ok := pat.Properties[1].Value.(*ast.AssignmentPattern); !ok {
		t.Errorf("second property value is %T, not a default", pat.Properties[1].Value)
	}

	prog = parseProgram(t, "const [x, , ...ys] = xs;")
	arr := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Name.(*ast.ArrayPattern)
	if len(arr.Elements) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Error("hole should be nil")
	}
	if _, ok := arr.Elements[2].(*ast.RestElement); !ok {
		t.Errorf("last element is %T, not a rest element", arr.Elements[2])
	}
}

func TestFunctionDeclaration(t *testing.T) {
	prog := parseProgram(t, "function* gen(a, {b}) { yield a; }")
	fn := prog.Body[0].(*ast.FunctionDeclaration).Fn
	if !fn.Generator {
		t.Error("expected generator")
	}
	if len(fn.Params) != 2 {
		t.Fatalf("expected 2 parameters, got %d", len(fn.Params))
	}
	if _, ok := fn.Params[1].(*ast.ObjectPattern); !ok {
		t.Errorf("parameter 1 is %T, not an object pattern", fn.Params[1])
	}
	stmt := fn.Body.Body[0].(*ast.ExpressionStatement)
	if _, ok := stmt.Expression.(*ast.YieldExpression); !ok {
		t.Errorf("body statement is %T, not a yield", stmt.Expression)
	}
}

func TestYieldOutsideGenerator(t *testing.T) {
	expectErrors(t, "function f() { yield 1; }", DefaultOptions(), "yield")
}

func TestAwaitOutsideAsyncIsIdentifier(t *testing.T) {
	prog := parseProgram(t, "const x = await;")
	id, ok := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.Identifier)
	if !ok || id.Name != "await" {
		t.Fatalf("expected identifier await, got %T", prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init)
	}

	prog = parseProgram(t, "async function f() { return await p; }")
	ret := prog.Body[0].(*ast.FunctionDeclaration).Fn.Body.Body[0].(*ast.ReturnStatement)
	if _, ok := ret.Argument.(*ast.AwaitExpression); !ok {
		t.Errorf("return argument is %T, not an await", ret.Argument)
	}
}

func TestObjectLiteralForms(t *testing.T) {
	prog := parseProgram(t, "const o = {a, b: 1, [k]: 2, m() {}, get p() {}, set p(v) {}, ...extra};")
	obj := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.ObjectLiteral)
	if len(obj.Properties) != 7 {
		t.Fatalf("expected 7 members, got %d", len(obj.Properties))
	}
	first := obj.Properties[0].(*ast.Property)
	if !first.Shorthand {
		t.Error("first property should be shorthand")
	}
	computed := obj.Properties[2].(*ast.Property)
	if !computed.Computed {
		t.Error("third property should be computed")
	}
	method := obj.Properties[3].(*ast.Property)
	if method.Kind != ast.PropertyMethod {
		t.Errorf("fourth member kind %s, want method", method.Kind)
	}
	getter := obj.Properties[4].(*ast.Property)
	if getter.Kind != ast.PropertyGet {
		t.Errorf("fifth member kind %s, want get", getter.Kind)
	}
	if _, ok := obj.Properties[6].(*ast.SpreadElement); !ok {
		t.Errorf("last member is %T, not a spread", obj.Properties[6])
	}
}

func TestClassDeclaration(t *testing.T) {
	input := `class Point extends Base {
  x = 0;
  constructor(x) { this.x = x; }
  get half() { return this.x; }
  static origin() { return new Point(); }
}`
	prog := parseProgram(t, input)
	decl := prog.Body[0].(*ast.ClassDeclaration)
	cls := decl.Class
	if cls.Name.Name != "Point" {
		t.Errorf("class name %q", cls.Name.Name)
	}
	if super, ok := cls.SuperClass.(*ast.Identifier); !ok || super.Name != "Base" {
		t.Errorf("superclass: %v", cls.SuperClass)
	}
	if len(cls.Body) != 4 {
		t.Fatalf("expected 4 elements, got %d", len(cls.Body))
	}
	if _, ok := cls.Body[0].(*ast.PropertyDefinition); !ok {
		t.Errorf("element 0 is %T, not a field", cls.Body[0])
	}
	ctor := cls.Body[1].(*ast.MethodDefinition)
	if ctor.Kind != ast.MethodConstructor {
		t.Errorf("element 1 kind %s, want constructor", ctor.Kind)
	}
	getter := cls.Body[2].(*ast.MethodDefinition)
	if getter.Kind != ast.MethodGet {
		t.Errorf("element 2 kind %s, want get", getter.Kind)
	}
	static := cls.Body[3].(*ast.MethodDefinition)
	if !static.Static {
		t.Error("element 3 should be static")
	}
}

func TestClassFieldsGate(t *testing.T) {
	opts := DefaultOptions()
	opts.ClassFields = false
	expectErrors(t, "class A { x = 1; }", opts, "class fields")
}

func TestDecorators(t *testing.T) {
	prog := parseProgram(t, "@sealed\nclass A {\n  @readonly x = 1;\n}")
	decl := prog.Body[0].(*ast.ClassDeclaration)
	if len(decl.Decorators) != 1 {
		t.Fatalf("expected 1 class decorator, got %d", len(decl.Decorators))
	}
	field := decl.Class.Body[0].(*ast.PropertyDefinition)
	if len(field.Decorators) != 1 {
		t.Fatalf("expected 1 field decorator, got %d", len(field.Decorators))
	}

	opts := DefaultOptions()
	opts.Decorators = false
	expectErrors(t, "@sealed class A {}", opts, "decorators")
}

func TestImportForms(t *testing.T) {
	tests := []struct {
		input string
		kinds []ast.ImportKind
	}{
		{`import "side-effect";`, nil},
		{`import d from "m";`, []ast.ImportKind{ast.ImportDefault}},
		{`import * as ns from "m";`, []ast.ImportKind{ast.ImportNamespace}},
		{`import {a, b as c} from "m";`, []ast.ImportKind{ast.ImportNamed, ast.ImportNamed}},
		{`import d, {a} from "m";`, []ast.ImportKind{ast.ImportDefault, ast.ImportNamed}},
	}
	for _, tt := range tests {
		prog := parseProgram(t, tt.input)
		imp := prog.Body[0].(*ast.ImportDeclaration)
		if len(imp.Specifiers) != len(tt.kinds) {
			t.Errorf("%q: %d specifiers, want %d", tt.input, len(imp.Specifiers), len(tt.kinds))
			continue
		}
		for i, kind := range tt.kinds {
			if imp.Specifiers[i].Kind != kind {
				t.Errorf("%q: specifier %d kind %s, want %s", tt.input, i, imp.Specifiers[i].Kind, kind)
			}
		}
	}
}

func TestExportForms(t *testing.T) {
	prog := parseProgram(t, `export default 42;`)
	def := prog.Body[0].(*ast.ExportDefaultDeclaration)
	if _, ok := def.Declaration.(*ast.NumberLiteral); !ok {
		t.Errorf("default export is %T", def.Declaration)
	}

	prog = parseProgram(t, `export const x = 1;`)
	named := prog.Body[0].(*ast.ExportNamedDeclaration)
	if _, ok := named.Declaration.(*ast.VariableDeclaration); !ok {
		t.Errorf("declaration export is %T", named.Declaration)
	}

	prog = parseProgram(t, `export {a, b as c} from "m";`)
	named = prog.Body[0].(*ast.ExportNamedDeclaration)
	if len(named.Specifiers) != 2 || named.Source == nil {
		t.Errorf("re-export shape: %s", named.String())
	}

	prog = parseProgram(t, `export * as ns from "m";`)
	all := prog.Body[0].(*ast.ExportAllDeclaration)
	if all.Exported == nil || all.Exported.Name != "ns" {
		t.Errorf("export-all alias: %v", all.Exported)
	}

	opts := DefaultOptions()
	opts.ExportStarAs = false
	expectErrors(t, `export * as ns from "m";`, opts, "export * as")
}

func TestTypeAnnotations(t *testing.T) {
	prog := parseProgram(t, "let x: number = 1;")
	name := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Name.(*ast.Identifier)
	if name.TypeAnnotation == nil {
		t.Fatal("expected a type annotation")
	}

	prog = parseProgram(t, "function f(a: string, b?: number): boolean { return true; }")
	fn := prog.Body[0].(*ast.FunctionDeclaration).Fn
	if fn.ReturnType == nil {
		t.Error("expected a return type")
	}
	second := fn.Params[1].(*ast.Identifier)
	if !second.Optional {
		t.Error("second parameter should be optional")
	}

	prog = parseProgram(t, "let m: Map<string, Array<number>> = make();")
	name = prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Name.(*ast.Identifier)
	ref, ok := name.TypeAnnotation.(*ast.TypeReference)
	if !ok {
		t.Fatalf("annotation is %T, not a type reference", name.TypeAnnotation)
	}
	if len(ref.TypeArgs) != 2 {
		t.Fatalf("expected 2 type arguments, got %d", len(ref.TypeArgs))
	}
	inner, ok := ref.TypeArgs[1].(*ast.TypeReference)
	if !ok || len(inner.TypeArgs) != 1 {
		t.Errorf("nested type argument: %v", ref.TypeArgs[1])
	}

	prog = parseProgram(t, "let u: string | number | null;")
	name = prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Name.(*ast.Identifier)
	if _, ok := name.TypeAnnotation.(*ast.UnionType); !ok {
		t.Errorf("annotation is %T, not a union", name.TypeAnnotation)
	}

	opts := DefaultOptions()
	opts.Types = false
	expectErrors(t, "let x: number = 1;", opts, "")
}

func TestTypeAssertion(t *testing.T) {
	prog := parseProgram(t, "const n = x as number;")
	assertion, ok := prog.Body[0].(*ast.VariableDeclaration).Declarations[0].Init.(*ast.TypeAssertionExpression)
	if !ok {
		t.Fatal("expected a type assertion")
	}
	if _, ok := assertion.Expression.(*ast.Identifier); !ok {
		t.Errorf("asserted expression is %T", assertion.Expression)
	}
}

func TestDirectivePrologue(t *testing.T) {
	prog := parseProgram(t, "\"use strict\";\nconst x = 1;")
	stmt := prog.Body[0].(*ast.ExpressionStatement)
	if stmt.Directive != "use strict" {
		t.Errorf("directive %q", stmt.Directive)
	}

	prog = parseProgram(t, "const y = 1;\n\"not a directive\";")
	last := prog.Body[1].(*ast.ExpressionStatement)
	if last.Directive != "" {
		t.Errorf("string after the prologue should not be a directive, got %q", last.Directive)
	}

	prog = parseProgram(t, "function f() { \"use strict\"; return 1; }")
	inner := prog.Body[0].(*ast.FunctionDeclaration).Fn.Body.Body[0].(*ast.ExpressionStatement)
	if inner.Directive != "use strict" {
		t.Errorf("function prologue directive %q", inner.Directive)
	}
}

func TestAutomaticSemicolons(t *testing.T) {
	prog := parseProgram(t, "a\nb")
	if len(prog.Body) != 2 {
		t.Fatalf("expected 2 statements, got %d: %s", len(prog.Body), prog.String())
	}

	// A line break after return ends the statement.
	prog = parseProgram(t, "function f() {\n  return\n  1;\n}")
	body := prog.Body[0].(*ast.FunctionDeclaration).Fn.Body.Body
	if len(body) != 2 {
		t.Fatalf("expected 2 statements in body, got %d", len(body))
	}
	if ret := body[0].(*ast.ReturnStatement); ret.Argument != nil {
		t.Error("return argument should be cut off by the line break")
	}
}

func TestCommentsCollected(t *testing.T) {
	prog := parseProgram(t, "// leading\nconst x = 1; /* trailing */")
	if len(prog.Comments) != 2 {
		t.Fatalf("expected 2 comments, got %d", len(prog.Comments))
	}
	if prog.Comments[0].Kind != ast.CommentLine || prog.Comments[0].Text != " leading" {
		t.Errorf("first comment: %+v", prog.Comments[0])
	}
	if prog.Comments[1].Kind != ast.CommentBlock || prog.Comments[1].Text != " trailing " {
		t.Errorf("second comment: %+v", prog.Comments[1])
	}
}

func TestLabeledStatements(t *testing.T) {
	prog := parseProgram(t, "outer: for (;;) { break outer; continue outer; }")
	labeled := prog.Body[0].(*ast.LabeledStatement)
	if labeled.Label.Name != "outer" {
		t.Errorf("label %q", labeled.Label.Name)
	}
	body := labeled.Body.(*ast.ForStatement).Body.(*ast.BlockStatement).Body
	if brk := body[0].(*ast.BreakStatement); brk.Label == nil || brk.Label.Name != "outer" {
		t.Error("break should carry the label")
	}
	if cont := body[1].(*ast.ContinueStatement); cont.Label == nil || cont.Label.Name != "outer" {
		t.Error("continue should carry the label")
	}
}

func TestTryStatement(t *testing.T) {
	prog := parseProgram(t, "try { f(); } catch { g(); } finally { h(); }")
	stmt := prog.Body[0].(*ast.TryStatement)
	if stmt.Handler == nil || stmt.Handler.Param != nil {
		t.Error("expected a parameterless catch")
	}
	if stmt.Finalizer == nil {
		t.Error("expected a finally block")
	}

	expectErrors(t, "try { f(); }", DefaultOptions(), "")
}

func TestSwitchStatement(t *testing.T) {
	prog := parseProgram(t, "switch (x) { case 1: f(); break; default: g(); }")
	stmt := prog.Body[0].(*ast.SwitchStatement)
	if len(stmt.Cases) != 2 {
		t.Fatalf("expected 2 cases, got %d", len(stmt.Cases))
	}
	if stmt.Cases[1].Test != nil {
		t.Error("default case should have a nil test")
	}

	expectErrors(t, "switch (x) { default: f(); default: g(); }", DefaultOptions(), "default")
}

func TestThrowRequiresSameLineArgument(t *testing.T) {
	expectErrors(t, "throw\nerr;", DefaultOptions(), "")
	prog := parseProgram(t, "throw err;")
	if _, ok := prog.Body[0].(*ast.ThrowStatement); !ok {
		t.Fatalf("expected a throw statement")
	}
}

func TestContextualKeywordsAsIdentifiers(t *testing.T) {
	prog := parseProgram(t, "const of = 1; let as = of; get(set);")
	if len(prog.Body) != 3 {
		t.Fatalf("expected 3 statements, got %d: %s", len(prog.Body), prog.String())
	}
}

func TestParseExpressionOnly(t *testing.T) {
	p := New(lexer.NewFromString("a + b * c"), DefaultOptions())
	expr, errs := p.ParseExpressionOnly()
	checkParserErrors(t, errs)
	if expr.String() != "(a + (b * c))" {
		t.Errorf("got %q", expr.String())
	}

	p = New(lexer.NewFromString("a + b extra"), DefaultOptions())
	_, errs = p.ParseExpressionOnly()
	if len(errs) == 0 {
		t.Error("trailing input should be an error")
	}
}

func TestErrorRecovery(t *testing.T) {
	_, errs := parseWith(t, "const = 1;\nlet ok = 2;", DefaultOptions())
	if len(errs) == 0 {
		t.Fatal("expected at least one error")
	}
	for _, e := range errs {
		if e.Pos().Line == 0 {
			t.Errorf("error without a position: %v", e)
		}
		if e.Kind() != "Syntax" {
			t.Errorf("unexpected error kind %q", e.Kind())
		}
	}
}
