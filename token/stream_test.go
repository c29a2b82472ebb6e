package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStreamPeekSkipsTrivia(t *testing.T) {
	s := NewStream("  foo  /* c */  bar")
	require.Equal(t, "foo", s.Peek(1).Text)
	require.Equal(t, "bar", s.Peek(2).Text)

	first := s.Next()
	require.Equal(t, "foo", first.Text)
	require.Equal(t, "  ", first.LeadingText())

	second := s.Next()
	require.Equal(t, "bar", second.Text)
	require.Equal(t, "  /* c */  ", second.LeadingText())

	require.Equal(t, EOF, s.Next().Kind)
}

func TestStreamMarkRestore(t *testing.T) {
	s := NewStream("a b c")
	s.Next() // a
	mark := s.Mark()
	s.Next() // b
	require.Equal(t, "c", s.Peek(1).Text)

	s.Restore(mark)
	require.Equal(t, "b", s.Peek(1).Text)
}

func TestStreamPeekPastEOF(t *testing.T) {
	s := NewStream("a")
	require.Equal(t, "a", s.Peek(1).Text)
	require.Equal(t, EOF, s.Peek(2).Kind)
	require.Equal(t, EOF, s.Peek(5).Kind)
}

func TestStreamRoundTripWithLeading(t *testing.T) {
	input := "  interface Foo { // trailing\n};  "
	s := NewStream(input)

	var rebuilt string
	for {
		tok := s.Next()
		rebuilt += tok.Full()
		if tok.Kind == EOF {
			break
		}
	}
	require.Equal(t, input, rebuilt)
}
