/*
Webidllint parses one or more WebIDL files and reports grammar diagnostics.

Usage:

	webidllint [flags] FILE...

The flags are:

	-c, --config FILE
		Load a .webidllint.toml configuration file. Defaults to
		".webidllint.toml" in the current directory if present.

	-d, --dump
		Dump the parsed construct tree for each file instead of just
		reporting diagnostics.

	-m, --markup
		Print each file with its named syntactic elements bracketed, using a
		plain-text debug marker.

	-q, --quiet
		Suppress WARN/NOTE diagnostic output; only the exit code reflects
		whether any WARN was reported.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/rosed"
	"github.com/spf13/pflag"

	"github.com/webidlgo/webidl/construct"
	"github.com/webidlgo/webidl/diag"
	"github.com/webidlgo/webidl/markup"
	"github.com/webidlgo/webidl/parser"
)

const (
	// ExitSuccess indicates no file had a WARN reported against it (NOTEs
	// do not affect the exit code).
	ExitSuccess = iota

	// ExitDiagnostics indicates at least one file had a WARN reported.
	ExitDiagnostics

	// ExitInitError indicates a file could not be read.
	ExitInitError
)

var (
	returnCode int = ExitSuccess

	flagConfig = pflag.StringP("config", "c", ".webidllint.toml", "Configuration file to load")
	flagDump   = pflag.BoolP("dump", "d", false, "Dump the parsed construct tree instead of diagnostics")
	flagMarkup = pflag.BoolP("markup", "m", false, "Print each file with named syntactic elements bracketed")
	flagQuiet  = pflag.BoolP("quiet", "q", false, "Suppress WARN/NOTE diagnostic output")
)

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occurred: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	pflag.Parse()

	cfg, err := diag.LoadConfig(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = ExitInitError
		return
	}

	quiet := cfg.Quiet || *flagQuiet

	for _, path := range pflag.Args() {
		if err := lintFile(path, quiet); err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: %s: %s\n", path, err.Error())
			returnCode = ExitInitError
			return
		}
	}
}

func lintFile(path string, quiet bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	text := string(data)

	reporter := &diag.Reporter{Quiet: quiet}
	p := parser.New(text, reporter)

	if *flagDump {
		fmt.Print(parser.DumpString(p.Constructs()))
	}
	if *flagMarkup {
		fmt.Println(markup.Drive(p.Constructs(), text, debugMarker{}))
	}

	if reporter.Warnings() > 0 {
		returnCode = ExitDiagnostics
	}
	if !*flagDump && !*flagMarkup {
		fmt.Print(tableOf(p))
	}
	return nil
}

// tableOf renders a one-row-per-construct summary table of a parsed file's
// top-level constructs.
func tableOf(p *parser.Parser) string {
	data := [][]interface{}{{"NAME", "IDL_TYPE", "COMPLEXITY"}}
	for _, c := range p.Constructs() {
		name := "-"
		if c.Name() != nil {
			name = *c.Name()
		}
		data = append(data, []interface{}{name, string(c.IDLType()), c.ComplexityFactor()})
	}
	return rosed.
		Edit("").
		InsertTableOpts(0, data, 10, rosed.Options{
			TableHeaders:             true,
			NoTrailingLineSeparators: true,
		}).
		String()
}

// debugMarker wraps names, type names, primitive types, keywords and enum
// values in "<kind:text>" for the -m/--markup flag's plain-text output; the
// other marker methods keep NoopMarker's behavior.
type debugMarker struct {
	markup.NoopMarker
}

func (debugMarker) Name(text string, c construct.Construct) (*string, *string) {
	return bracket("name")
}

func (debugMarker) TypeName(text string, c construct.Construct) (*string, *string) {
	return bracket("type-name")
}

func (debugMarker) PrimitiveType(text string, c construct.Construct) (*string, *string) {
	return bracket("primitive")
}

func (debugMarker) Keyword(text string, c construct.Construct) (*string, *string) {
	return bracket("keyword")
}

func (debugMarker) EnumValue(text string, c construct.Construct) (*string, *string) {
	return bracket("enum-value")
}

func bracket(kind string) (*string, *string) {
	prefix := "<" + kind + ":"
	suffix := ">"
	return &prefix, &suffix
}
