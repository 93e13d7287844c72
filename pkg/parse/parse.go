// Package parse bundles the public entry points: parse an expression, a
// single statement, a whole program, or pick the entry kind at runtime.
package parse

import (
	"fmt"

	"estree/pkg/ast"
	"estree/pkg/errors"
	"estree/pkg/lexer"
	"estree/pkg/parser"
	"estree/pkg/source"
)

// Entry selects what a source text is parsed as.
type Entry int

const (
	EntryProgram Entry = iota
	EntryExpression
	EntryStatement
)

func (e Entry) String() string {
	switch e {
	case EntryProgram:
		return "program"
	case EntryExpression:
		return "expression"
	case EntryStatement:
		return "statement"
	}
	return fmt.Sprintf("Entry(%d)", int(e))
}

// CardinalityError reports that a statement entry point produced a number of
// statements other than exactly one. It implements errors.SourceError so it
// travels with syntax errors through the same channels.
type CardinalityError struct {
	Count    int
	Position errors.Position
}

func (e *CardinalityError) Error() string {
	return fmt.Sprintf("Cardinality Error: %s", e.Message())
}

func (e *CardinalityError) Pos() errors.Position { return e.Position }
func (e *CardinalityError) Kind() string         { return "Cardinality" }
func (e *CardinalityError) Unwrap() error        { return nil }
func (e *CardinalityError) Message() string {
	return fmt.Sprintf("expected exactly one statement, got %d", e.Count)
}

// Expression parses the input as a single expression. Comma sequences are
// allowed; anything left over after the expression is an error.
func Expression(input string, opts *parser.Options) (ast.Expression, []errors.SourceError) {
	p := parser.New(lexer.NewFromString(input), opts)
	return p.ParseExpressionOnly()
}

// Statement parses the input and requires it to contain exactly one
// statement. Zero or several statements yield a CardinalityError alongside
// any syntax errors; directives count like any other statement.
func Statement(input string, opts *parser.Options) (ast.Statement, []errors.SourceError) {
	return statementOf(source.FromString(input), opts)
}

// statementOf applies the single-statement cardinality rule to an already
// resolved source, so file-backed inputs keep their display name in errors.
func statementOf(src *source.File, opts *parser.Options) (ast.Statement, []errors.SourceError) {
	p := parser.New(lexer.New(src), opts)
	program, errs := p.ParseProgram()
	if program == nil {
		return nil, errs
	}
	if len(program.Body) != 1 {
		errs = append(errs, &CardinalityError{Count: len(program.Body)})
		return nil, errs
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return program.Body[0], nil
}

// Program parses the input as a whole program. The returned tree carries
// every comment of the source in order.
func Program(input string, opts *parser.Options) (*ast.Program, []errors.SourceError) {
	p := parser.New(lexer.NewFromString(input), opts)
	return p.ParseProgram()
}

// File parses a source file from disk as a program.
func File(path string, opts *parser.Options) (*ast.Program, []errors.SourceError) {
	src, err := source.Load(path)
	if err != nil {
		return nil, []errors.SourceError{
			errors.NewSyntaxError(errors.Position{Line: 1, Column: 1}, "cannot read %s: %v", path, err),
		}
	}
	p := parser.New(lexer.New(src), opts)
	return p.ParseProgram()
}

// AST parses a source file with the entry kind chosen at runtime. The
// result is the node the entry produces: *ast.Program, ast.Expression or
// ast.Statement.
func AST(entry Entry, src *source.File, opts *parser.Options) (ast.Node, []errors.SourceError) {
	switch entry {
	case EntryExpression:
		p := parser.New(lexer.New(src), opts)
		expr, errs := p.ParseExpressionOnly()
		if expr == nil {
			return nil, errs
		}
		return expr, errs
	case EntryStatement:
		stmt, errs := statementOf(src, opts)
		if stmt == nil {
			return nil, errs
		}
		return stmt, errs
	default:
		p := parser.New(lexer.New(src), opts)
		return p.ParseProgram()
	}
}
