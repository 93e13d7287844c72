// Package build provides smart constructors for pkg/ast nodes. Every
// function returns a well-formed node with the "no location" placeholder;
// optional structure (annotations, flags) defaults to absent. Convenience
// constructors that cover only a special case of a variant have a fully
// general sibling alongside them.
package build

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"

	"estree/pkg/ast"
)

// String builds a string literal whose raw text is the canonical
// double-quoted, escaped rendering of value. Re-lexing the raw text yields
// the value again.
func String(value string) *ast.StringLiteral {
	return &ast.StringLiteral{Value: value, Raw: quote(value)}
}

// Number builds a numeric literal. The raw text is taken verbatim: several
// spellings (1e3, 1000) denote the same value, so the caller picks one and
// it is not re-validated.
func Number(value float64, raw string) *ast.NumberLiteral {
	return &ast.NumberLiteral{Value: value, Raw: raw}
}

// Boolean builds `true` or `false`; the raw text is exactly that spelling.
func Boolean(value bool) *ast.BooleanLiteral {
	raw := "false"
	if value {
		raw = "true"
	}
	return &ast.BooleanLiteral{Value: value, Raw: raw}
}

// Null builds the `null` literal.
func Null() *ast.NullLiteral {
	return &ast.NullLiteral{}
}

// RegExp builds a regular expression literal, rejecting patterns that do not
// compile in ECMAScript mode.
func RegExp(pattern, flags string) (*ast.RegExpLiteral, error) {
	raw := "/" + pattern + "/" + flags
	if _, err := regexp2.Compile(pattern, regexp2.ECMAScript); err != nil {
		return nil, fmt.Errorf("invalid regular expression %s: %w", raw, err)
	}
	return &ast.RegExpLiteral{Pattern: pattern, Flags: flags, Raw: raw}, nil
}

// quote renders a string as a double-quoted literal with the standard
// escape table.
func quote(s string) string {
	var b strings.Builder
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\v':
			b.WriteString(`\v`)
		case 0:
			b.WriteString(`\0`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&b, `\x%02x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
	return b.String()
}
