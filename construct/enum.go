package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Enum is a top-level "enum name { "a", "b" };" declaration.
type Enum struct {
	Base
	Values *production.EnumValueList
}

func (e *Enum) Members() []Construct { return nil }
func (e *Enum) ComplexityFactor() int { return complexityOf(e) }

// PeekEnum reports whether an "enum" declaration starts at the current
// position.
func PeekEnum(s *token.Stream) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && tok.Text == "enum"
}

// ParseEnum attempts to consume an Enum declaration, not including its
// trailing ";".
func ParseEnum(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Enum, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekEnum(s) {
		return nil, false
	}
	s.Next() // "enum"

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	name := s.Next().Text

	values, ok := production.ParseEnumValueList(s, source)
	if !ok {
		r.Warn("expected a brace-delimited list of string values for enum %q", name)
		s.Restore(mark)
		return nil, false
	}

	e := &Enum{
		Base: Base{
			idlType:  TypeEnum,
			name:     &name,
			extAttrs: attrs,
		},
		Values: values,
	}
	e.span = s.SpanSince(mark)
	e.source = source
	return e, true
}
