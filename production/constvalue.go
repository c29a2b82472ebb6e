package production

import "github.com/webidlgo/webidl/token"

// ConstValue is a boolean, integer, or float literal — the value grammar
// shared by Const declarations and Default argument/member values.
// "Infinity", "-Infinity", and "NaN" arrive already classified as Float
// tokens by the tokenizer, so no special-casing is needed here.
type ConstValue struct {
	base
	Text string
}

func (c *ConstValue) Kind() Kind              { return KindConstValue }
func (c *ConstValue) Children() []Production { return nil }

// PeekConstValue reports whether the current token can start a ConstValue.
func PeekConstValue(s *token.Stream) bool {
	tok := s.Peek(1)
	switch tok.Kind {
	case token.Integer, token.Float:
		return true
	case token.Identifier:
		return tok.Text == "true" || tok.Text == "false"
	}
	return false
}

// ParseConstValue attempts to consume a ConstValue.
func ParseConstValue(s *token.Stream, source string) (*ConstValue, bool) {
	if !PeekConstValue(s) {
		return nil, false
	}
	mark := s.Mark()
	tok := s.Next()
	return &ConstValue{base: base{s.SpanSince(mark), source}, Text: tok.Text}, true
}
