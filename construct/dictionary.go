package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Dictionary is a top-level "[partial] dictionary name [: Parent] { members
// };" declaration.
type Dictionary struct {
	Base
	Partial     bool
	Inheritance *production.Inheritance
	members     []Construct
}

func (d *Dictionary) Members() []Construct  { return d.members }
func (d *Dictionary) ComplexityFactor() int { return complexityOf(d) }

// PeekDictionary reports whether a "dictionary" declaration (optionally
// preceded by "partial") starts at the current position.
func PeekDictionary(s *token.Stream) bool {
	tok := s.Peek(1)
	if tok.Kind == token.Identifier && tok.Text == "partial" {
		tok = s.Peek(2)
	}
	return tok.Kind == token.Identifier && tok.Text == "dictionary"
}

// ParseDictionary attempts to consume a Dictionary declaration, not
// including its trailing ";".
func ParseDictionary(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Dictionary, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekDictionary(s) {
		return nil, false
	}

	d := &Dictionary{}
	if s.Peek(1).Text == "partial" {
		d.Partial = true
		s.Next()
	}
	s.Next() // "dictionary"

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	name := s.Next().Text

	if inh, ok := production.ParseInheritance(s, source); ok {
		d.Inheritance = inh
	}

	if !s.Peek(1).Is("{") {
		r.Warn("expected '{' to open dictionary %q body", name)
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	var members []Construct
	for {
		if s.Peek(1).Is("}") {
			s.Next()
			break
		}
		if s.Peek(1).Kind == token.EOF {
			se := recoverToMember(s, source, "unterminated dictionary body", r)
			members = append(members, se)
			break
		}

		member, ok := parseDictMemberEntry(s, source, r)
		if !ok {
			se := recoverToMember(s, source, "unrecognized dictionary member", r)
			members = append(members, se)
			continue
		}
		members = append(members, member)

		if s.Peek(1).Is(";") {
			s.Next()
		}
	}

	d.idlType = TypeDictionary
	d.name = &name
	d.extAttrs = attrs
	d.members = members
	d.span = s.SpanSince(mark)
	d.source = source
	attachParent(d, members)
	return d, true
}

// parseDictMemberEntry parses one dictionary member's own extended
// attribute list followed by the member body. entryMark lets a failed parse
// restore past the attribute list it already consumed, and lets a
// successful one fold that attribute list's bytes back into the member's
// own span, mirroring parseTopLevelEntry and parseInterfaceMemberEntry.
func parseDictMemberEntry(s *token.Stream, source string, r Reporter) (Construct, bool) {
	entryMark := s.Mark()
	var attrs []*ExtendedAttribute
	attrsStart := -1
	if production.PeekExtendedAttributeList(s) {
		mark := s.Mark()
		l, ok := production.ParseExtendedAttributeList(s, source)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		attrsStart = l.Span().Start
		attrs = wrapExtendedAttributes(l, source)
	}

	c, ok := ParseDictMember(s, source, attrs, r)
	if !ok {
		s.Restore(entryMark)
		return nil, false
	}

	if attrsStart >= 0 {
		extendSpanStart(c, attrsStart)
	}
	return c, true
}
