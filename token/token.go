package token

import "fmt"

// Span is the contiguous byte range [Start, End) a Token or Production
// occupies in the original source text.
type Span struct {
	Start int
	End   int
}

// Join returns the smallest Span covering both a and b. A zero Span on
// either side is ignored, so callers can fold an empty child list without
// special-casing it.
func (a Span) Join(b Span) Span {
	if a == (Span{}) {
		return b
	}
	if b == (Span{}) {
		return a
	}
	out := a
	if b.Start < out.Start {
		out.Start = b.Start
	}
	if b.End > out.End {
		out.End = b.End
	}
	return out
}

// Len returns the number of bytes the span covers.
func (s Span) Len() int { return s.End - s.Start }

// Token is a single lexical unit: a Kind, the exact original text, and the
// byte offset at which it begins. Whitespace and comment tokens are
// preserved on Leading rather than discarded, so that re-emitting a
// Token's Leading plus its own Text reproduces the source exactly.
type Token struct {
	Kind    Kind
	Text    string
	Offset  int
	Leading []Token // accumulated whitespace/comment tokens immediately preceding this one
}

// Span returns the byte range of the token's own text, excluding Leading.
func (t Token) Span() Span {
	return Span{Start: t.Offset, End: t.Offset + len(t.Text)}
}

// FullSpan returns the byte range including any accumulated leading trivia.
func (t Token) FullSpan() Span {
	sp := t.Span()
	if len(t.Leading) > 0 {
		sp.Start = t.Leading[0].Offset
	}
	return sp
}

// LeadingText concatenates the text of all accumulated leading trivia.
func (t Token) LeadingText() string {
	if len(t.Leading) == 0 {
		return ""
	}
	var out []byte
	for _, lt := range t.Leading {
		out = append(out, lt.Text...)
	}
	return string(out)
}

// Full returns LeadingText()+Text, i.e. the exact source bytes this token
// accounts for, trivia included.
func (t Token) Full() string {
	if len(t.Leading) == 0 {
		return t.Text
	}
	return t.LeadingText() + t.Text
}

// Is reports whether the token is an identifier or symbol with the given
// literal text. It is the primary keyword/punctuator test used throughout
// the production layer, since WebIDL has no reserved-word token kind of its
// own — keywords are identifiers that happen to match a known spelling.
func (t Token) Is(text string) bool {
	return (t.Kind == Identifier || t.Kind == Symbol) && t.Text == text
}

func (t Token) String() string {
	return fmt.Sprintf("%s(%q)@%d", t.Kind, t.Text, t.Offset)
}
