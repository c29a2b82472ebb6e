package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Attribute is an interface "[static] [readonly] [stringifier] attribute
// Type name;" member. Dictionary members are DictMember constructs, not
// Attributes.
type Attribute struct {
	Base
	Static      bool
	Readonly    bool
	Stringifier bool
	Type        *production.Type
}

func (a *Attribute) Members() []Construct { return nil }
func (a *Attribute) ComplexityFactor() int { return complexityOf(a) }

// PeekAttribute reports whether an attribute member (optionally preceded by
// "static"/"readonly"/"stringifier") starts at the current position.
func PeekAttribute(s *token.Stream) bool {
	k := 1
	for {
		tok := s.Peek(k)
		if tok.Kind != token.Identifier {
			return false
		}
		switch tok.Text {
		case "static", "readonly", "stringifier":
			k++
			continue
		case "attribute":
			return true
		default:
			return false
		}
	}
}

// ParseAttribute attempts to consume an Attribute member, not including its
// trailing ";".
func ParseAttribute(s *token.Stream, source string, attrs []*ExtendedAttribute) (*Attribute, bool) {
	mark := s.Mark()
	if !PeekAttribute(s) {
		return nil, false
	}

	a := &Attribute{}
	for {
		tok := s.Peek(1)
		switch tok.Text {
		case "static":
			a.Static = true
			s.Next()
			continue
		case "readonly":
			a.Readonly = true
			s.Next()
			continue
		case "stringifier":
			a.Stringifier = true
			s.Next()
			continue
		}
		break
	}

	if !s.Peek(1).Is("attribute") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	typ, ok := production.ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	a.Type = typ

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	name := s.Next().Text

	a.idlType = TypeAttribute
	a.name = &name
	a.extAttrs = attrs
	a.span = s.SpanSince(mark)
	a.source = source
	return a, true
}
