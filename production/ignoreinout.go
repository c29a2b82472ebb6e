package production

import "github.com/webidlgo/webidl/token"

// IgnoreInOut is a legacy argument-direction keyword ("in" or "out")
// preceding an Argument. Pre-standard WebIDL required these; the modern
// grammar has no equivalent, so the parser accepts the token, discards it
// from semantic members (Argument has no Direction field), retains it in
// the source span, and the caller's note callback is invoked by the
// construct layer that owns this argument.
type IgnoreInOut struct {
	base
	Keyword string
}

func (i *IgnoreInOut) Kind() Kind              { return KindIgnoreInOut }
func (i *IgnoreInOut) Children() []Production { return nil }

// ParseIgnoreInOut attempts to consume a legacy "in"/"out" keyword.
func ParseIgnoreInOut(s *token.Stream, source string) (*IgnoreInOut, bool) {
	tok := s.Peek(1)
	if tok.Kind != token.Identifier || (tok.Text != "in" && tok.Text != "out") {
		return nil, false
	}
	mark := s.Mark()
	s.Next()
	i := &IgnoreInOut{Keyword: tok.Text}
	i.span = s.SpanSince(mark)
	i.source = source
	return i, true
}
