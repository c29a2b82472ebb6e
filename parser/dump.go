package parser

import (
	"bytes"
	"io"

	"github.com/kr/pretty"

	"github.com/webidlgo/webidl/construct"
)

// Dump writes a pretty-printed representation of a construct tree to w, one
// top-level construct at a time.
func Dump(w io.Writer, constructs []construct.Construct) error {
	for _, c := range constructs {
		if _, err := pretty.Fprintf(w, "%# v\n", c); err != nil {
			return err
		}
	}
	return nil
}

// DumpString is Dump rendered to a string, for tests and the CLI's -d flag.
func DumpString(constructs []construct.Construct) string {
	buf := bytes.NewBuffer(nil)
	if err := Dump(buf, constructs); err != nil {
		panic(err)
	}
	return buf.String()
}
