package ast

import (
	"strings"
	"testing"
)

func ident(name string) *Identifier {
	return &Identifier{Name: name}
}

func num(raw string) *NumberLiteral {
	return &NumberLiteral{Raw: raw}
}

func TestExpressionStrings(t *testing.T) {
	tests := []struct {
		name string
		node Node
		want string
	}{
		{"identifier", ident("x"), "x"},
		{"binary", &BinaryExpression{Operator: "+", Left: ident("a"), Right: num("1")}, "(a + 1)"},
		{"logical", &LogicalExpression{Operator: "??", Left: ident("a"), Right: ident("b")}, "(a ?? b)"},
		{"unary word", &UnaryExpression{Operator: "typeof", Argument: ident("x")}, "(typeof x)"},
		{"unary sign", &UnaryExpression{Operator: "-", Argument: num("1")}, "(-1)"},
		{"update postfix", &UpdateExpression{Operator: "++", Argument: ident("i")}, "(i++)"},
		{"conditional", &ConditionalExpression{Test: ident("c"), Consequent: num("1"), Alternate: num("2")}, "(c ? 1 : 2)"},
		{"member", &MemberExpression{Object: ident("a"), Property: ident("b")}, "a.b"},
		{"computed member", &MemberExpression{Object: ident("a"), Property: num("0"), Computed: true}, "a[0]"},
		{"optional member", &MemberExpression{Object: ident("a"), Property: ident("b"), Optional: true}, "a?.b"},
		{"call", &CallExpression{Callee: ident("f"), Arguments: []Expression{ident("x")}}, "f(x)"},
		{"optional call", &CallExpression{Callee: ident("f"), Optional: true}, "f?.()"},
		{"new", &NewExpression{Callee: ident("C"), Arguments: []Expression{num("1")}}, "new C(1)"},
		{"array with hole", &ArrayLiteral{Elements: []Expression{ident("a"), nil, ident("b")}}, "[a, , b]"},
		{"spread", &SpreadElement{Argument: ident("xs")}, "...xs"},
		{"sequence", &SequenceExpression{Expressions: []Expression{ident("a"), ident("b")}}, "(a, b)"},
		{"assertion", &TypeAssertionExpression{Expression: ident("x"), Type: ident("T")}, "(x as T)"},
		{"regex", &RegExpLiteral{Pattern: `\d+`, Flags: "g", Raw: `/\d+/g`}, `/\d+/g`},
		{"union type", &UnionType{Left: ident("A"), Right: ident("B")}, "(A | B)"},
		{"array type", &ArrayType{Element: ident("T")}, "T[]"},
	}
	for _, tt := range tests {
		if got := tt.node.String(); got != tt.want {
			t.Errorf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestPatternStrings(t *testing.T) {
	arr := &ArrayPattern{Elements: []Pattern{ident("a"), nil, ident("b")}}
	if got := arr.String(); got != "[a, , b]" {
		t.Errorf("array pattern: got %q", got)
	}

	obj := &ObjectPattern{Properties: []*PatternProperty{
		{Key: ident("a"), Value: ident("a"), Shorthand: true},
		{Key: ident("b"), Value: ident("c")},
	}}
	if got := obj.String(); got != "{a, b: c}" {
		t.Errorf("object pattern: got %q", got)
	}

	rest := &RestElement{Argument: ident("xs")}
	if got := rest.String(); got != "...xs" {
		t.Errorf("rest: got %q", got)
	}

	def := &AssignmentPattern{Left: ident("x"), Right: num("1")}
	if got := def.String(); got != "x = 1" {
		t.Errorf("default: got %q", got)
	}
}

func TestStatementStrings(t *testing.T) {
	decl := &VariableDeclaration{
		Kind: DeclConst,
		Declarations: []*VariableDeclarator{
			{Name: ident("x"), Init: num("1")},
		},
	}
	if got := decl.String(); got != "const x = 1;" {
		t.Errorf("declaration: got %q", got)
	}

	block := &BlockStatement{Body: []Statement{
		&ExpressionStatement{Expression: ident("a")},
		&ReturnStatement{Argument: ident("b")},
	}}
	want := "{\n  a;\n  return b;\n}"
	if got := block.String(); got != want {
		t.Errorf("block: got %q, want %q", got, want)
	}

	forIn := &ForInStatement{
		Left:  &VariableDeclaration{Kind: DeclLet, Declarations: []*VariableDeclarator{{Name: ident("k")}}},
		Right: ident("obj"),
		Body:  &BlockStatement{},
	}
	if got := forIn.String(); !strings.HasPrefix(got, "for (let k in obj)") {
		t.Errorf("for-in: got %q", got)
	}
}

func TestFunctionStrings(t *testing.T) {
	fn := &FunctionLiteral{
		Name:   ident("add"),
		Params: []Pattern{ident("a"), ident("b")},
		Body: &BlockStatement{Body: []Statement{
			&ReturnStatement{Argument: &BinaryExpression{Operator: "+", Left: ident("a"), Right: ident("b")}},
		}},
	}
	want := "function add(a, b) {\n  return (a + b);\n}"
	if got := fn.String(); got != want {
		t.Errorf("function: got %q, want %q", got, want)
	}

	arrow := &ArrowFunctionLiteral{
		Params: []Pattern{ident("x")},
		Body:   &ExprBody{Expr: &BinaryExpression{Operator: "*", Left: ident("x"), Right: num("2")}},
	}
	if got := arrow.String(); got != "(x) => (x * 2)" {
		t.Errorf("arrow: got %q", got)
	}
}

func TestClassString(t *testing.T) {
	cls := &ClassLiteral{
		Name:       ident("Point"),
		SuperClass: ident("Base"),
		Body: []ClassElement{
			&PropertyDefinition{Key: ident("x"), Value: num("0")},
			&MethodDefinition{
				Key:  ident("constructor"),
				Kind: MethodConstructor,
				Value: &FunctionLiteral{
					Params: []Pattern{ident("x")},
					Body:   &BlockStatement{},
				},
			},
		},
	}
	got := cls.String()
	for _, fragment := range []string{"class Point extends Base", "x = 0;", "constructor(x)"} {
		if !strings.Contains(got, fragment) {
			t.Errorf("class rendering missing %q in:\n%s", fragment, got)
		}
	}
}

func TestModuleStrings(t *testing.T) {
	imp := &ImportDeclaration{
		Specifiers: []*ImportSpecifier{
			{Kind: ImportDefault, Local: ident("d")},
			{Kind: ImportNamed, Imported: ident("a"), Local: ident("b")},
		},
		Source: &StringLiteral{Value: "m", Raw: `"m"`},
	}
	got := imp.String()
	for _, fragment := range []string{"import", "d", "a as b", `"m"`} {
		if !strings.Contains(got, fragment) {
			t.Errorf("import rendering missing %q in %q", fragment, got)
		}
	}

	exp := &ExportAllDeclaration{
		Exported: ident("ns"),
		Source:   &StringLiteral{Value: "m", Raw: `"m"`},
	}
	if got := exp.String(); !strings.Contains(got, "export * as ns from") {
		t.Errorf("export-all rendering: %q", got)
	}
}

func TestLocKnown(t *testing.T) {
	if NoLoc.Known() {
		t.Error("NoLoc should not be known")
	}
	loc := Loc{Start: Position{Line: 1, Column: 1}, End: Position{Line: 1, Column: 2}}
	if !loc.Known() {
		t.Error("populated loc should be known")
	}
}
