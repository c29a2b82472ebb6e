package production

import "github.com/webidlgo/webidl/token"

// EnumValue is one string-literal member of an EnumValueList.
type EnumValue struct {
	base
	Text string // including surrounding quotes
}

func (e *EnumValue) Kind() Kind              { return KindEnumValue }
func (e *EnumValue) Children() []Production { return nil }

// EnumValueList is "{" string ( "," string )* ","? "}". A trailing comma is
// tolerated as a legacy accommodation.
type EnumValueList struct {
	base
	Values []*EnumValue
}

func (l *EnumValueList) Kind() Kind { return KindEnumValueList }
func (l *EnumValueList) Children() []Production {
	out := make([]Production, len(l.Values))
	for i, v := range l.Values {
		out[i] = v
	}
	return out
}

// ParseEnumValueList attempts to consume a brace-delimited list of string
// literals.
func ParseEnumValueList(s *token.Stream, source string) (*EnumValueList, bool) {
	mark := s.Mark()
	if !s.Peek(1).Is("{") {
		return nil, false
	}
	s.Next()

	l := &EnumValueList{}
	for {
		if s.Peek(1).Kind != token.String {
			break
		}
		vmark := s.Mark()
		tok := s.Next()
		l.Values = append(l.Values, &EnumValue{base: base{s.SpanSince(vmark), source}, Text: tok.Text})

		if s.Peek(1).Is(",") {
			s.Next()
			continue
		}
		break
	}

	if len(l.Values) == 0 {
		s.Restore(mark)
		return nil, false
	}

	if !s.Peek(1).Is("}") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	l.span = s.SpanSince(mark)
	l.source = source
	return l, true
}
