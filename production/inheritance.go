package production

import "github.com/webidlgo/webidl/token"

// Inheritance is the optional ": Identifier" suffix on an interface or
// dictionary name, naming its parent type.
type Inheritance struct {
	base
	RawName string
	Name    string
}

func (i *Inheritance) Kind() Kind              { return KindInheritance }
func (i *Inheritance) Children() []Production { return nil }

// ParseInheritance attempts to consume ":" Identifier.
func ParseInheritance(s *token.Stream, source string) (*Inheritance, bool) {
	if !s.Peek(1).Is(":") {
		return nil, false
	}
	mark := s.Mark()
	s.Next()

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	tok := s.Next()

	i := &Inheritance{RawName: tok.Text, Name: normalizeIdentifier(tok.Text)}
	i.span = s.SpanSince(mark)
	i.source = source
	return i, true
}
