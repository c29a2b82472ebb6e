// Table-driven lexer tests, following the shape of the teacher package's
// parser/lex_test.go (a table of input -> expected token kind/text pairs).
package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type lexCase struct {
	name  string
	input string
	want  []Token
}

var lexCases = []lexCase{
	{"empty", "", []Token{{Kind: EOF, Offset: 0}}},
	{"single whitespace", " ", []Token{{Kind: Whitespace, Text: " "}, {Kind: EOF, Offset: 1}}},
	{"tab", "\t", []Token{{Kind: Whitespace, Text: "\t"}, {Kind: EOF, Offset: 1}}},
	{"crlf", "\r\n", []Token{{Kind: Whitespace, Text: "\r\n"}, {Kind: EOF, Offset: 2}}},

	{"line comment", "// hi", []Token{{Kind: Comment, Text: "// hi"}, {Kind: EOF, Offset: 5}}},
	{"block comment", "/* hi */x", []Token{
		{Kind: Comment, Text: "/* hi */"}, {Kind: Identifier, Text: "x", Offset: 8}, {Kind: EOF, Offset: 9},
	}},
	{"unterminated block comment", "/* hi", []Token{
		{Kind: Comment, Text: "/* hi"}, {Kind: EOF, Offset: 5},
	}},

	{"left brace", "{", []Token{{Kind: Symbol, Text: "{"}, {Kind: EOF, Offset: 1}}},
	{"variadic", "...", []Token{{Kind: Symbol, Text: "..."}, {Kind: EOF, Offset: 3}}},
	{"dot is not variadic", ".5", []Token{{Kind: Float, Text: ".5"}, {Kind: EOF, Offset: 2}}},

	{"identifier", "interface", []Token{{Kind: Identifier, Text: "interface"}, {Kind: EOF, Offset: 9}}},
	{"leading underscore", "_interface", []Token{{Kind: Identifier, Text: "_interface"}, {Kind: EOF, Offset: 10}}},
	{"leading dash", "-moz-foo", []Token{{Kind: Identifier, Text: "-moz-foo"}, {Kind: EOF, Offset: 8}}},

	{"string", `"val"`, []Token{{Kind: String, Text: `"val"`}, {Kind: EOF, Offset: 5}}},
	{"unterminated string", `"val`, []Token{{Kind: String, Text: `"val`}, {Kind: EOF, Offset: 4}}},

	{"decimal integer", "123", []Token{{Kind: Integer, Text: "123"}, {Kind: EOF, Offset: 3}}},
	{"negative integer", "-123", []Token{{Kind: Integer, Text: "-123"}, {Kind: EOF, Offset: 4}}},
	{"hex integer", "0x1F", []Token{{Kind: Integer, Text: "0x1F"}, {Kind: EOF, Offset: 4}}},
	{"octal integer", "017", []Token{{Kind: Integer, Text: "017"}, {Kind: EOF, Offset: 3}}},
	{"float", "1.5", []Token{{Kind: Float, Text: "1.5"}, {Kind: EOF, Offset: 3}}},
	{"float exponent", "1e10", []Token{{Kind: Float, Text: "1e10"}, {Kind: EOF, Offset: 4}}},
	{"infinity", "Infinity", []Token{{Kind: Float, Text: "Infinity"}, {Kind: EOF, Offset: 8}}},
	{"negative infinity", "-Infinity", []Token{{Kind: Float, Text: "-Infinity"}, {Kind: EOF, Offset: 9}}},
	{"nan", "NaN", []Token{{Kind: Float, Text: "NaN"}, {Kind: EOF, Offset: 3}}},

	{"unknown byte", "@", []Token{{Kind: Unknown, Text: "@"}, {Kind: EOF, Offset: 1}}},
}

func TestTokenize(t *testing.T) {
	for _, tc := range lexCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Tokenize(tc.input)
			require.Equal(t, len(tc.want), len(got), "token count")
			for i := range tc.want {
				require.Equal(t, tc.want[i].Kind, got[i].Kind, "kind at %d", i)
				require.Equal(t, tc.want[i].Text, got[i].Text, "text at %d", i)
			}
		})
	}
}

func TestTokenizeLosslessConcat(t *testing.T) {
	inputs := []string{
		"",
		"interface Foo { attribute long bar; };",
		"  // comment\n  interface X {};",
		"[Exposed=Window]\ninterface Y : Z {\n  const long X = -1;\n};",
		"@#$ garbage interface",
	}
	for _, in := range inputs {
		toks := Tokenize(in)
		var rebuilt string
		for _, tok := range toks {
			rebuilt += tok.Text
		}
		require.Equal(t, in, rebuilt, "lossless reconstruction for %q", in)
	}
}
