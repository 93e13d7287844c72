package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/repr"
	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"
	"gopkg.in/yaml.v3"

	"estree/pkg/ast"
	"estree/pkg/errors"
	"estree/pkg/parse"
	"estree/pkg/parser"
	"estree/pkg/source"
)

func main() {
	app := &cli.App{
		Name:  "estree",
		Usage: "parse JavaScript and TypeScript source into a syntax tree",
		Commands: []*cli.Command{
			parseCommand(),
			renderCommand(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		tracerr.Print(err)
		os.Exit(1)
	}
}

func parseCommand() *cli.Command {
	return &cli.Command{
		Name:      "parse",
		Usage:     "parse a file (or - for stdin) and dump the tree",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "expr", Usage: "parse as a single expression"},
			&cli.BoolFlag{Name: "stmt", Usage: "parse as exactly one statement"},
			&cli.StringFlag{Name: "options", Usage: "YAML file with parser options"},
		},
		Action: func(c *cli.Context) error {
			src, err := loadSource(c)
			if err != nil {
				return err
			}
			opts, err := loadOptions(c.String("options"))
			if err != nil {
				return err
			}

			entry := parse.EntryProgram
			switch {
			case c.Bool("expr") && c.Bool("stmt"):
				return cli.Exit("--expr and --stmt are mutually exclusive", 64)
			case c.Bool("expr"):
				entry = parse.EntryExpression
			case c.Bool("stmt"):
				entry = parse.EntryStatement
			}

			node, errs := parse.AST(entry, src, opts)
			if len(errs) > 0 {
				reportErrors(src, errs)
				return cli.Exit("", 65)
			}
			repr.Println(node)
			return nil
		},
	}
}

func renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "parse a file and print the tree back as source text",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "options", Usage: "YAML file with parser options"},
		},
		Action: func(c *cli.Context) error {
			src, err := loadSource(c)
			if err != nil {
				return err
			}
			opts, err := loadOptions(c.String("options"))
			if err != nil {
				return err
			}
			node, errs := parse.AST(parse.EntryProgram, src, opts)
			if len(errs) > 0 {
				reportErrors(src, errs)
				return cli.Exit("", 65)
			}
			fmt.Println(node.(*ast.Program).String())
			return nil
		},
	}
}

func loadSource(c *cli.Context) (*source.File, error) {
	if c.NArg() != 1 {
		return nil, cli.Exit("expected exactly one input file (or -)", 64)
	}
	path := c.Args().First()
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, tracerr.Wrap(err)
		}
		return source.New("<stdin>", "<stdin>", string(data)), nil
	}
	src, err := source.Load(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	return src, nil
}

// optionsFile mirrors parser.Options for YAML decoding.
type optionsFile struct {
	ClassFields       *bool `yaml:"class_fields"`
	Decorators        *bool `yaml:"decorators"`
	ExportStarAs      *bool `yaml:"export_star_as"`
	OptionalChaining  *bool `yaml:"optional_chaining"`
	NullishCoalescing *bool `yaml:"nullish_coalescing"`
	Types             *bool `yaml:"types"`
}

// loadOptions reads a YAML options file. Unset keys keep their defaults.
func loadOptions(path string) (*parser.Options, error) {
	opts := parser.DefaultOptions()
	if path == "" {
		return opts, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, tracerr.Wrap(err)
	}
	var file optionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, tracerr.Wrap(err)
	}
	apply := func(dst *bool, src *bool) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&opts.ClassFields, file.ClassFields)
	apply(&opts.Decorators, file.Decorators)
	apply(&opts.ExportStarAs, file.ExportStarAs)
	apply(&opts.OptionalChaining, file.OptionalChaining)
	apply(&opts.NullishCoalescing, file.NullishCoalescing)
	apply(&opts.Types, file.Types)
	return opts, nil
}

func reportErrors(src *source.File, errs []errors.SourceError) {
	header := color.New(color.FgRed, color.Bold)
	header.Fprintf(os.Stderr, "%s: %d error(s)\n", src.DisplayPath(), len(errs))
	errors.DisplayErrors(os.Stderr, src.Content, errs)
}
