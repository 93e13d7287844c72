package lexer

import (
	"testing"
)

// scanRegex lexes input far enough to hit the slash, then re-scans it the
// way the parser does when a slash sits in prefix position.
func scanRegex(t *testing.T, input string) (Token, bool) {
	t.Helper()
	l := NewFromString(input)
	for {
		tok := l.NextToken()
		if tok.Type == SLASH || tok.Type == SLASH_ASSIGN {
			return l.ScanRegexFrom(tok)
		}
		if tok.Type == EOF {
			t.Fatalf("no slash found in %q", input)
		}
	}
}

func TestRegexLiterals(t *testing.T) {
	tests := []struct {
		input   string
		literal string
	}{
		{`/abc/`, `/abc/`},
		{`/a\/b/`, `/a\/b/`},
		{`/[/]/`, `/[/]/`},
		{`/\d+/g`, `/\d+/g`},
		{`/^x$/im`, `/^x$/im`},
		{`/=start/`, `/=start/`},
	}
	for _, tt := range tests {
		tok, ok := scanRegex(t, tt.input)
		if !ok {
			t.Errorf("%q: scan failed", tt.input)
			continue
		}
		if tok.Type != REGEX {
			t.Errorf("%q: expected REGEX, got %s", tt.input, tok.Type)
		}
		if tok.Literal != tt.literal {
			t.Errorf("%q: expected literal %q, got %q", tt.input, tt.literal, tok.Literal)
		}
	}
}

func TestRegexUnterminated(t *testing.T) {
	for _, input := range []string{`/abc`, "/ab\ncd/"} {
		if _, ok := scanRegex(t, input); ok {
			t.Errorf("%q: expected scan failure", input)
		}
	}
}
