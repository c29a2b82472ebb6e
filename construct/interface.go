package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Interface is a top-level "[partial] interface [mixin] name [: Parent] {
// members };" declaration. Legacy [Constructor(...)]/[NamedConstructor=...]/
// [LegacyFactoryFunction...] extended attributes are lifted out of
// ExtendedAttributes() and prepended to Members() as first-class Constructor
// constructs, per SPEC_FULL.md's interface-construction design.
type Interface struct {
	Base
	Partial     bool
	Mixin       bool
	Inheritance *production.Inheritance
	members     []Construct
}

func (i *Interface) Members() []Construct  { return i.members }
func (i *Interface) ComplexityFactor() int { return complexityOf(i) }

// PeekInterface reports whether an "interface" declaration (optionally
// preceded by "partial") starts at the current position.
func PeekInterface(s *token.Stream) bool {
	tok := s.Peek(1)
	if tok.Kind == token.Identifier && tok.Text == "partial" {
		tok = s.Peek(2)
	}
	return tok.Kind == token.Identifier && tok.Text == "interface"
}

// ParseInterface attempts to consume an Interface declaration, not
// including its trailing ";".
func ParseInterface(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Interface, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekInterface(s) {
		return nil, false
	}

	iface := &Interface{}
	if s.Peek(1).Text == "partial" {
		iface.Partial = true
		s.Next()
	}
	s.Next() // "interface"

	if s.Peek(1).Text == "mixin" && s.Peek(1).Kind == token.Identifier {
		iface.Mixin = true
		s.Next()
	}

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	name := s.Next().Text

	if inh, ok := production.ParseInheritance(s, source); ok {
		iface.Inheritance = inh
	}

	if !s.Peek(1).Is("{") {
		r.Warn("expected '{' to open interface %q body", name)
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	var members []Construct
	var kept []*ExtendedAttribute
	for _, ea := range attrs {
		if ctor, ok := constructorFromExtendedAttribute(ea, source, r); ok {
			members = append(members, ctor)
			continue
		}
		kept = append(kept, ea)
	}

	for {
		if s.Peek(1).Is("}") {
			s.Next()
			break
		}
		if s.Peek(1).Kind == token.EOF {
			se := recoverToMember(s, source, "unterminated interface body", r)
			members = append(members, se)
			break
		}

		member, ok := parseInterfaceMemberEntry(s, source, r)
		if !ok {
			se := recoverToMember(s, source, "unrecognized interface member", r)
			members = append(members, se)
			continue
		}
		members = append(members, member)

		if s.Peek(1).Is(";") {
			s.Next()
		}
	}

	iface.idlType = TypeInterface
	iface.name = &name
	iface.extAttrs = kept
	iface.members = members
	iface.span = s.SpanSince(mark)
	iface.source = source
	attachParent(iface, members)
	return iface, true
}

// parseInterfaceMemberEntry parses one member's own extended attribute list
// followed by the first member form that matches, in the teacher's
// ordered-dispatch style: const, iterable, maplike, setlike, constructor,
// bare stringifier, serializer, attribute, then operation as the catch-all.
// entryMark, as in parseTopLevelEntry, lets a failed dispatch restore past
// the attribute list it already consumed, and lets a successful one fold
// that attribute list's bytes back into the member's own span.
func parseInterfaceMemberEntry(s *token.Stream, source string, r Reporter) (Construct, bool) {
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

	var c Construct
	var ok bool
	switch {
	case PeekConst(s):
		c, ok = ParseConst(s, source, attrs, r)
	case PeekIterable(s):
		c, ok = ParseIterable(s, source, attrs, r)
	case PeekMaplike(s):
		c, ok = ParseMaplike(s, source, attrs, r)
	case PeekSetlike(s):
		c, ok = ParseSetlike(s, source, attrs, r)
	case PeekConstructor(s):
		c, ok = ParseConstructor(s, source, attrs, r)
	case PeekStringifier(s):
		c, ok = ParseStringifier(s, source, attrs)
	case PeekSerializer(s):
		c, ok = ParseSerializer(s, source, attrs, r)
	case PeekAttribute(s):
		c, ok = ParseAttribute(s, source, attrs)
	case PeekOperation(s):
		c, ok = ParseOperation(s, source, attrs, r)
	default:
		s.Restore(entryMark)
		return nil, false
	}
	if !ok {
		s.Restore(entryMark)
		return nil, false
	}

	if attrsStart >= 0 {
		extendSpanStart(c, attrsStart)
	}
	return c, true
}
