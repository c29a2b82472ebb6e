package production

import "github.com/webidlgo/webidl/token"

// DefaultKind identifies which of the five permitted forms a Default
// production matched.
type DefaultKind int

const (
	DefaultConst DefaultKind = iota
	DefaultString
	DefaultEmptySequence
	DefaultEmptyDictionary
	DefaultNull
)

// Default is "=" followed by one of: ConstValue, a string literal, the
// empty sequence literal "[]", the empty dictionary literal "{}", or the
// keyword "null". Absence of "=" is reported by ParseDefault returning
// (nil, false) — "no default" is not an error.
type Default struct {
	base
	DKind DefaultKind
	Const *ConstValue // set iff DKind == DefaultConst
	Text  string      // raw text for String/EmptySequence/EmptyDictionary/Null
}

func (d *Default) Kind() Kind { return KindDefault }
func (d *Default) Children() []Production {
	if d.Const != nil {
		return []Production{d.Const}
	}
	return nil
}

// ParseDefault attempts to consume "=" followed by a permitted default
// value. If no "=" is present, returns (nil, false) without consuming
// anything.
func ParseDefault(s *token.Stream, source string) (*Default, bool) {
	if !s.Peek(1).Is("=") {
		return nil, false
	}
	mark := s.Mark()
	s.Next() // "="

	d := &Default{}

	switch {
	case matchIdentKeyword(s, "null"):
		d.DKind = DefaultNull
		d.Text = s.Next().Text

	case s.Peek(1).Is("["):
		if !s.Peek(2).Is("]") {
			s.Restore(mark)
			return nil, false
		}
		s.Next()
		s.Next()
		d.DKind = DefaultEmptySequence
		d.Text = "[]"

	case s.Peek(1).Is("{"):
		if !s.Peek(2).Is("}") {
			s.Restore(mark)
			return nil, false
		}
		s.Next()
		s.Next()
		d.DKind = DefaultEmptyDictionary
		d.Text = "{}"

	case s.Peek(1).Kind == token.String:
		d.DKind = DefaultString
		d.Text = s.Next().Text

	case PeekConstValue(s):
		cv, ok := ParseConstValue(s, source)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		d.DKind = DefaultConst
		d.Const = cv

	default:
		s.Restore(mark)
		return nil, false
	}

	d.span = s.SpanSince(mark)
	d.source = source
	return d, true
}
