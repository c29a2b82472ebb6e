package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Typedef is a top-level "typedef Type name;" declaration.
type Typedef struct {
	Base
	Type *production.Type
}

func (t *Typedef) Members() []Construct { return nil }
func (t *Typedef) ComplexityFactor() int { return complexityOf(t) }

// PeekTypedef reports whether a "typedef" declaration starts at the current
// position.
func PeekTypedef(s *token.Stream) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && tok.Text == "typedef"
}

// ParseTypedef attempts to consume a Typedef declaration, not including its
// trailing ";".
func ParseTypedef(s *token.Stream, source string, attrs []*ExtendedAttribute) (*Typedef, bool) {
	mark := s.Mark()
	if !PeekTypedef(s) {
		return nil, false
	}
	s.Next() // "typedef"

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

	t := &Typedef{
		Base: Base{
			idlType:  TypeTypedef,
			name:     &name,
			extAttrs: attrs,
		},
		Type: typ,
	}
	t.span = s.SpanSince(mark)
	t.source = source
	return t, true
}
