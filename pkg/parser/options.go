package parser

// Options selects the syntax extensions the parser accepts. Everything here
// is an explicit switch; nothing is inferred from the input. Strict mode is
// the one exception: it is activated by a "use strict" directive in the
// source, never by an option.
type Options struct {
	// ClassFields allows `class C { x = 1; static y; }` property
	// definitions in class bodies.
	ClassFields bool

	// Decorators allows `@expr` decorators on classes, methods and fields.
	Decorators bool

	// ExportStarAs allows the `export * as ns from "m"` re-export form.
	ExportStarAs bool

	// OptionalChaining allows `a?.b`, `a?.[i]` and `f?.()`.
	OptionalChaining bool

	// NullishCoalescing allows the `??` operator and `??=` assignment.
	NullishCoalescing bool

	// Types allows type annotations on bindings, parameters, functions and
	// classes, plus `as` assertions. Annotations are carried in the tree,
	// never checked.
	Types bool
}

// DefaultOptions enables the full extension set.
func DefaultOptions() *Options {
	return &Options{
		ClassFields:       true,
		Decorators:        true,
		ExportStarAs:      true,
		OptionalChaining:  true,
		NullishCoalescing: true,
		Types:             true,
	}
}
