package errors

import (
	"fmt"
	"io"
	"strings"
)

// Position locates an error in the original source text.
type Position struct {
	Line     int // 1-based line number
	Column   int // 1-based column number (rune index)
	StartPos int // 0-based byte offset of the offending token
	EndPos   int // 0-based byte offset after the offending token
}

// SourceError is the interface implemented by all errors this library reports.
type SourceError interface {
	error
	Pos() Position
	Kind() string // e.g., "Syntax"
	// Message returns the specific error message without position info.
	Message() string
	Unwrap() error
}

// SyntaxError represents an error during lexing or parsing.
type SyntaxError struct {
	Position
	Msg   string
	Cause error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("Syntax Error at %d:%d: %s", e.Line, e.Column, e.Msg)
}
func (e *SyntaxError) Pos() Position   { return e.Position }
func (e *SyntaxError) Kind() string    { return "Syntax" }
func (e *SyntaxError) Message() string { return e.Msg }
func (e *SyntaxError) Unwrap() error   { return e.Cause }
func (e *SyntaxError) CausedBy(cause error) *SyntaxError {
	e.Cause = cause
	return e
}

// NewSyntaxError builds a SyntaxError at the given position.
func NewSyntaxError(pos Position, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{Position: pos, Msg: fmt.Sprintf(format, args...)}
}

// DisplayErrors writes a list of errors to w in a user-friendly format,
// including the offending source line and a position marker.
func DisplayErrors(w io.Writer, src string, errs []SourceError) {
	if len(errs) == 0 {
		return
	}

	lines := strings.Split(src, "\n")

	for _, err := range errs {
		pos := err.Pos()
		kind := err.Kind()
		msg := err.Message()

		lineIdx := pos.Line - 1
		if lineIdx < 0 || lineIdx >= len(lines) {
			fmt.Fprintf(w, "%s Error: %s\n", kind, msg)
			continue
		}

		sourceLine := strings.TrimRight(lines[lineIdx], "\r\n\t ")

		fmt.Fprintf(w, "%s Error at %d:%d: %s\n", kind, pos.Line, pos.Column, msg)
		fmt.Fprintf(w, "  %s\n", sourceLine)

		marker := strings.Repeat(" ", pos.Column) + "^"
		fmt.Fprintf(w, "  %s\n", marker)
		fmt.Fprintln(w)
	}
}
