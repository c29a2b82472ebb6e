package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Const is a "const Type name = ConstValue;" interface/dictionary member.
type Const struct {
	Base
	Type  *production.Type
	Value *production.ConstValue
}

func (c *Const) Members() []Construct { return nil }
func (c *Const) ComplexityFactor() int { return complexityOf(c) }

// PeekConst reports whether a "const" member starts at the current position.
func PeekConst(s *token.Stream) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && tok.Text == "const"
}

// ParseConst attempts to consume a Const member, not including its trailing
// ";".
func ParseConst(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Const, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekConst(s) {
		return nil, false
	}
	s.Next() // "const"

	typ, ok := production.ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	name := s.Next().Text

	if !s.Peek(1).Is("=") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	val, ok := production.ParseConstValue(s, source)
	if !ok {
		r.Warn("expected a const value after '=' for const %q", name)
		s.Restore(mark)
		return nil, false
	}

	c := &Const{
		Base: Base{
			idlType:  TypeConst,
			name:     &name,
			extAttrs: attrs,
		},
		Type:  typ,
		Value: val,
	}
	c.span = s.SpanSince(mark)
	c.source = source
	return c, true
}
