package parse

import (
	"testing"

	"estree/pkg/ast"
	"estree/pkg/parser"
	"estree/pkg/source"
)

func TestExpressionEntry(t *testing.T) {
	expr, errs := Expression("a + b * c", parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if expr.String() != "(a + (b * c))" {
		t.Errorf("got %q", expr.String())
	}

	// Comma sequences are a single expression.
	expr, errs = Expression("a, b", parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := expr.(*ast.SequenceExpression); !ok {
		t.Errorf("expected a sequence, got %T", expr)
	}

	_, errs = Expression("a + b extra", parser.DefaultOptions())
	if len(errs) == 0 {
		t.Error("trailing input should be an error")
	}
}

func TestStatementEntryCardinality(t *testing.T) {
	stmt, errs := Statement("const x = 1;", parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := stmt.(*ast.VariableDeclaration); !ok {
		t.Fatalf("got %T", stmt)
	}

	tests := []struct {
		input string
		count int
	}{
		{"", 0},
		{"1; 2;", 2},
		{"a\nb", 2},
	}
	for _, tt := range tests {
		stmt, errs := Statement(tt.input, parser.DefaultOptions())
		if stmt != nil {
			t.Errorf("%q: expected nil statement", tt.input)
		}
		var card *CardinalityError
		for _, e := range errs {
			if c, ok := e.(*CardinalityError); ok {
				card = c
			}
		}
		if card == nil {
			t.Errorf("%q: no cardinality error in %v", tt.input, errs)
			continue
		}
		if card.Count != tt.count {
			t.Errorf("%q: count %d, want %d", tt.input, card.Count, tt.count)
		}
		if card.Kind() != "Cardinality" {
			t.Errorf("%q: kind %q", tt.input, card.Kind())
		}
	}
}

func TestStatementEntrySyntaxErrorWins(t *testing.T) {
	stmt, errs := Statement("const = 1;", parser.DefaultOptions())
	if stmt != nil {
		t.Error("expected nil statement on syntax errors")
	}
	if len(errs) == 0 {
		t.Fatal("expected errors")
	}
}

func TestProgramEntry(t *testing.T) {
	prog, errs := Program("", parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Body) != 0 {
		t.Errorf("empty input should give an empty body, got %d", len(prog.Body))
	}

	prog, errs = Program("// note\nconst x = 1;", parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(prog.Body) != 1 || len(prog.Comments) != 1 {
		t.Errorf("body %d comments %d", len(prog.Body), len(prog.Comments))
	}
}

func TestASTEntryDispatch(t *testing.T) {
	src := source.FromString("const x = 1;")

	node, errs := AST(EntryProgram, src, parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := node.(*ast.Program); !ok {
		t.Errorf("program entry produced %T", node)
	}

	node, errs = AST(EntryStatement, src, parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := node.(*ast.VariableDeclaration); !ok {
		t.Errorf("statement entry produced %T", node)
	}

	exprSrc := source.FromString("1 + 2")
	node, errs = AST(EntryExpression, exprSrc, parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := node.(*ast.BinaryExpression); !ok {
		t.Errorf("expression entry produced %T", node)
	}
}

func TestStatementEntryFileSource(t *testing.T) {
	node, errs := AST(EntryStatement, source.FromFile("script.ts", "let y = 2;"), parser.DefaultOptions())
	if len(errs) > 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if _, ok := node.(*ast.VariableDeclaration); !ok {
		t.Errorf("statement entry produced %T", node)
	}

	node, errs = AST(EntryStatement, source.FromFile("script.ts", "1; 2;"), parser.DefaultOptions())
	if node != nil {
		t.Error("expected nil node")
	}
	var card *CardinalityError
	for _, e := range errs {
		if c, ok := e.(*CardinalityError); ok {
			card = c
		}
	}
	if card == nil {
		t.Fatalf("no cardinality error in %v", errs)
	}
	if card.Count != 2 {
		t.Errorf("count %d, want 2", card.Count)
	}
}

func TestEntryString(t *testing.T) {
	if EntryProgram.String() != "program" || EntryExpression.String() != "expression" || EntryStatement.String() != "statement" {
		t.Error("entry names changed")
	}
}

func TestFileEntryMissingPath(t *testing.T) {
	prog, errs := File("testdata/does-not-exist.js", parser.DefaultOptions())
	if prog != nil {
		t.Error("expected nil program")
	}
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d", len(errs))
	}
}
