package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Stringifier is a standalone "stringifier;" interface member, distinct
// from Attribute.Stringifier (which marks an attribute as the stringifying
// one) and from a stringifier operation (which Operation.Stringifier would
// mark, had this teacher's grammar supported it — it doesn't, so a bare
// "stringifier;" is the only form reaching this construct).
type Stringifier struct {
	Base
}

func (s *Stringifier) Members() []Construct  { return nil }
func (s *Stringifier) ComplexityFactor() int { return complexityOf(s) }

// PeekStringifier reports whether a bare "stringifier;" member (as opposed
// to "stringifier attribute ..." or a stringifier operation) starts at the
// current position.
func PeekStringifier(s *token.Stream) bool {
	return s.Peek(1).Kind == token.Identifier && s.Peek(1).Text == "stringifier" && s.Peek(2).Is(";")
}

// ParseStringifier attempts to consume a bare Stringifier member, not
// including its trailing ";".
func ParseStringifier(s *token.Stream, source string, attrs []*ExtendedAttribute) (*Stringifier, bool) {
	mark := s.Mark()
	if !PeekStringifier(s) {
		return nil, false
	}
	s.Next() // "stringifier"

	st := &Stringifier{}
	st.idlType = TypeStringifier
	st.extAttrs = attrs
	st.span = s.SpanSince(mark)
	st.source = source
	return st, true
}

// Serializer is a "serializer;", "serializer = identifier;",
// "serializer = { ... };", or "serializer(Arguments);" interface member,
// covering both the "serializer" and legacy "jsonifier" keyword forms.
type Serializer struct {
	Base
	Keyword   string // "serializer" or "jsonifier"
	Arguments []*Argument
}

func (s *Serializer) Members() []Construct  { return argumentsAsConstructs(s.Arguments) }
func (s *Serializer) ComplexityFactor() int { return complexityOf(s) }

// PeekSerializer reports whether a "serializer"/"jsonifier" member starts at
// the current position.
func PeekSerializer(s *token.Stream) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && (tok.Text == "serializer" || tok.Text == "jsonifier")
}

// ParseSerializer attempts to consume a Serializer member, not including its
// trailing ";". The "= identifier" and "= { ... }" forms are captured
// verbatim as raw production text rather than modeled structurally, since
// neither contributes to find/markup beyond the construct itself.
func ParseSerializer(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Serializer, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekSerializer(s) {
		return nil, false
	}
	keyword := s.Next().Text

	ser := &Serializer{Keyword: keyword}

	switch {
	case s.Peek(1).Is("("):
		argList, ok := production.ParseArgumentList(s, source)
		if !ok {
			r.Warn("expected a parenthesized argument list for %s(...)", keyword)
			s.Restore(mark)
			return nil, false
		}
		ser.Arguments = wrapArguments(argList, source, r)
	case s.Peek(1).Is("="):
		s.Next()
		if s.Peek(1).Is("{") {
			depth := 0
			for {
				tok := s.Peek(1)
				if tok.Kind == token.EOF {
					r.Warn("unterminated %s = { ... } member", keyword)
					break
				}
				if tok.Is("{") {
					depth++
				} else if tok.Is("}") {
					depth--
					s.Next()
					if depth == 0 {
						break
					}
					continue
				}
				s.Next()
			}
		} else if s.Peek(1).Kind == token.Identifier {
			s.Next()
		} else {
			r.Warn("expected an identifier or '{' after '%s ='", keyword)
			s.Restore(mark)
			return nil, false
		}
	}

	ser.idlType = TypeSerializer
	ser.extAttrs = attrs
	ser.span = s.SpanSince(mark)
	ser.source = source
	return ser, true
}
