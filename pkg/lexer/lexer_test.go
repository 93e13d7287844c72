package lexer

import (
	"testing"
)

func TestNextToken(t *testing.T) {
	input := `let five = 5;
const ten = 10.5;

let add = function(x, y) {
  return x + y;
};

a?.b ?? c;
x **= 2;
// trailing note
let next = null;`

	tests := []struct {
		expectedType    TokenType
		expectedLiteral string
		expectedLine    int
	}{
		{LET, "let", 1},
		{IDENT, "five", 1},
		{ASSIGN, "=", 1},
		{NUMBER, "5", 1},
		{SEMICOLON, ";", 1},
		{CONST, "const", 2},
		{IDENT, "ten", 2},
		{ASSIGN, "=", 2},
		{NUMBER, "10.5", 2},
		{SEMICOLON, ";", 2},
		{LET, "let", 4},
		{IDENT, "add", 4},
		{ASSIGN, "=", 4},
		{FUNCTION, "function", 4},
		{LPAREN, "(", 4},
		{IDENT, "x", 4},
		{COMMA, ",", 4},
		{IDENT, "y", 4},
		{RPAREN, ")", 4},
		{LBRACE, "{", 4},
		{RETURN, "return", 5},
		{IDENT, "x", 5},
		{PLUS, "+", 5},
		{IDENT, "y", 5},
		{SEMICOLON, ";", 5},
		{RBRACE, "}", 6},
		{SEMICOLON, ";", 6},
		{IDENT, "a", 8},
		{OPTIONAL_CHAINING, "?.", 8},
		{IDENT, "b", 8},
		{COALESCE, "??", 8},
		{IDENT, "c", 8},
		{SEMICOLON, ";", 8},
		{IDENT, "x", 9},
		{EXPONENT_ASSIGN, "**=", 9},
		{NUMBER, "2", 9},
		{SEMICOLON, ";", 9},
		{LINE_COMMENT, " trailing note", 10},
		{LET, "let", 11},
		{IDENT, "next", 11},
		{ASSIGN, "=", 11},
		{NULL, "null", 11},
		{SEMICOLON, ";", 11},
		{EOF, "", 11},
	}

	l := NewFromString(input)
	for i, tt := range tests {
		tok := l.NextToken()
		if tok.Type != tt.expectedType {
			t.Fatalf("tests[%d] - wrong token type. expected=%q, got=%q (literal %q)",
				i, tt.expectedType, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.expectedLiteral {
			t.Fatalf("tests[%d] - wrong literal. expected=%q, got=%q",
				i, tt.expectedLiteral, tok.Literal)
		}
		if tok.Line != tt.expectedLine {
			t.Errorf("tests[%d] (%s) - wrong line. expected=%d, got=%d",
				i, tok.Literal, tt.expectedLine, tok.Line)
		}
	}
}

func TestNumberLiterals(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{"42", "42"},
		{"3.14", "3.14"},
		{".5", ".5"},
		{"1e10", "1e10"},
		{"2.5e-3", "2.5e-3"},
		{"0xFF", "0xFF"},
		{"0b1010", "0b1010"},
		{"0o755", "0o755"},
		{"1_000_000", "1_000_000"},
	}
	for _, tt := range tests {
		l := NewFromString(tt.input)
		tok := l.NextToken()
		if tok.Type != NUMBER {
			t.Errorf("%q: expected NUMBER, got %s", tt.input, tok.Type)
			continue
		}
		if tok.Literal != tt.literal {
			t.Errorf("%q: expected literal %q, got %q", tt.input, tt.literal, tok.Literal)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		input  string
		cooked string
	}{
		{`"hello"`, "hello"},
		{`'a\nb'`, "a\nb"},
		{`"tab\there"`, "tab\there"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"\u{1F600}"`, "\U0001F600"},
		{`"say \"hi\""`, `say "hi"`},
	}
	for _, tt := range tests {
		l := NewFromString(tt.input)
		tok := l.NextToken()
		if tok.Type != STRING {
			t.Errorf("%s: expected STRING, got %s", tt.input, tok.Type)
			continue
		}
		if tok.Literal != tt.cooked {
			t.Errorf("%s: expected cooked %q, got %q", tt.input, tt.cooked, tok.Literal)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	l := NewFromString("\"abc\ndef\"")
	tok := l.NextToken()
	if tok.Type != ILLEGAL {
		t.Fatalf("expected ILLEGAL for string broken by newline, got %s", tok.Type)
	}
}

func TestBlockComment(t *testing.T) {
	l := NewFromString("/* one\ntwo */ x")
	tok := l.NextToken()
	if tok.Type != BLOCK_COMMENT {
		t.Fatalf("expected BLOCK_COMMENT, got %s", tok.Type)
	}
	if tok.Literal != " one\ntwo " {
		t.Errorf("wrong comment text: %q", tok.Literal)
	}
	tok = l.NextToken()
	if tok.Type != IDENT || tok.Literal != "x" {
		t.Fatalf("expected IDENT x after comment, got %s %q", tok.Type, tok.Literal)
	}
	if tok.Line != 2 {
		t.Errorf("expected line 2 after multiline comment, got %d", tok.Line)
	}
}

func TestUnicodeIdentifier(t *testing.T) {
	l := NewFromString("café = 1")
	tok := l.NextToken()
	if tok.Type != IDENT {
		t.Fatalf("expected IDENT, got %s", tok.Type)
	}
	if tok.Literal != "café" {
		t.Errorf("wrong identifier: %q", tok.Literal)
	}
}

func TestSaveRestoreState(t *testing.T) {
	l := NewFromString("a b c")
	_ = l.NextToken() // a
	saved := l.SaveState()
	b1 := l.NextToken()
	l.RestoreState(saved)
	b2 := l.NextToken()
	if b1.Type != b2.Type || b1.Literal != b2.Literal || b1.StartPos != b2.StartPos {
		t.Fatalf("restore did not rewind: first %+v, second %+v", b1, b2)
	}
}
