/*
Webidl-repl is an interactive loop that parses each non-blank input line
as a standalone WebIDL text and summarizes its constructs.

Usage:

	webidl-repl [flags]

The flags are:

	-d, --direct
		Force reading directly from stdin instead of using GNU readline,
		even if stdin is a TTY.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/pflag"

	"github.com/webidlgo/webidl/diag"
	"github.com/webidlgo/webidl/parser"
)

var flagDirect = pflag.BoolP("direct", "d", false, "Force reading directly from stdin instead of using GNU readline")

// commandReader is the line source for the REPL: either GNU-readline-backed
// or a bare buffered reader, chosen at startup.
type commandReader interface {
	ReadCommand() (string, error)
	Close() error
}

type directReader struct {
	r *bufio.Reader
}

func newDirectReader(r io.Reader) *directReader {
	return &directReader{r: bufio.NewReader(r)}
}

func (d *directReader) ReadCommand() (string, error) {
	line, err := d.r.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (d *directReader) Close() error { return nil }

type interactiveReader struct {
	rl *readline.Instance
}

func newInteractiveReader() (*interactiveReader, error) {
	rl, err := readline.NewEx(&readline.Config{Prompt: "webidl> "})
	if err != nil {
		return nil, fmt.Errorf("create readline config: %w", err)
	}
	return &interactiveReader{rl: rl}, nil
}

func (i *interactiveReader) ReadCommand() (string, error) {
	return i.rl.Readline()
}

func (i *interactiveReader) Close() error { return i.rl.Close() }

func main() {
	pflag.Parse()

	var reader commandReader
	var err error
	if *flagDirect {
		reader = newDirectReader(os.Stdin)
	} else if reader, err = newInteractiveReader(); err != nil {
		reader = newDirectReader(os.Stdin)
	}
	defer reader.Close()

	for {
		line, err := reader.ReadCommand()
		if err != nil {
			if err != io.EOF {
				fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
			}
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		summarize(line)
	}
}

// summarize parses one line standalone and prints each of its constructs'
// name, idl_type, and complexity factor.
func summarize(line string) {
	reporter := &diag.Reporter{}
	p := parser.New(line, reporter)
	for _, c := range p.Constructs() {
		name := "-"
		if c.Name() != nil {
			name = *c.Name()
		}
		fmt.Printf("%s\t%s\tcomplexity=%d\n", name, c.IDLType(), c.ComplexityFactor())
	}
}
