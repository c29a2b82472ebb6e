package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

var specialKeywords = map[string]bool{
	"getter":       true,
	"setter":       true,
	"deleter":      true,
	"legacycaller": true,
}

// Operation is an interface "[static] [special] ReturnType
// name(Arguments);" member. name may be absent for special operations
// (e.g. "getter DOMString (unsigned long index);"). The "stringifier"
// operation form is not parsed here, so Stringifier is never set.
type Operation struct {
	Base
	Special     string // "getter", "setter", "deleter", "legacycaller", or ""
	Stringifier bool
	Static      bool
	ReturnType  *production.Type
	Arguments   []*Argument
}

func (o *Operation) Members() []Construct  { return argumentsAsConstructs(o.Arguments) }
func (o *Operation) ComplexityFactor() int { return complexityOf(o) }

// MethodName returns the canonical full-form method name, or nil if this
// operation has no name (an anonymous special operation).
func (o *Operation) MethodName() *string {
	names := o.MethodNames()
	if len(names) == 0 {
		return nil
	}
	return &names[0]
}

// MethodNames returns every normalized variant of this operation's name,
// full form first. See SPEC_FULL.md §4.4.
func (o *Operation) MethodNames() []string {
	return normalizedMethodNames(o.name, o.Arguments)
}

// PeekOperation reports whether an operation member starts at the current
// position. It is tried after PeekAttribute, PeekConst, and the iterable/
// maplike/setlike/stringifier/serializer peeks, since an operation is
// otherwise the catch-all member form (a return type followed by an
// optional name and a parenthesized argument list).
func PeekOperation(s *token.Stream) bool {
	k := 1
	for {
		tok := s.Peek(k)
		if tok.Kind == token.Identifier && (tok.Text == "static" || specialKeywords[tok.Text]) {
			k++
			continue
		}
		break
	}
	tok := s.Peek(k)
	return tok.Kind == token.Identifier || tok.Is("(")
}

// ParseOperation attempts to consume an Operation member, not including its
// trailing ";".
func ParseOperation(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Operation, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()

	o := &Operation{}
	for {
		tok := s.Peek(1)
		if tok.Kind != token.Identifier {
			break
		}
		if tok.Text == "static" {
			o.Static = true
			s.Next()
			continue
		}
		if specialKeywords[tok.Text] {
			o.Special = tok.Text
			s.Next()
			continue
		}
		break
	}

	typ, ok := production.ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	o.ReturnType = typ

	var name *string
	if s.Peek(1).Kind == token.Identifier {
		n := s.Next().Text
		name = &n
	}

	if !s.Peek(1).Is("(") {
		s.Restore(mark)
		return nil, false
	}
	argList, ok := production.ParseArgumentList(s, source)
	if !ok {
		r.Warn("expected a parenthesized argument list for operation")
		s.Restore(mark)
		return nil, false
	}
	o.Arguments = wrapArguments(argList, source, r)

	o.idlType = TypeMethod
	o.name = name
	o.extAttrs = attrs
	o.span = s.SpanSince(mark)
	o.source = source
	return o, true
}

// Constructor is a "constructor(Arguments);" interface member, or a
// [Constructor(...)]/[NamedConstructor=Name(...)] extended attribute
// reinterpreted as a first-class member attached to the owning interface.
type Constructor struct {
	Base
	Arguments []*Argument
}

func (c *Constructor) Members() []Construct  { return argumentsAsConstructs(c.Arguments) }
func (c *Constructor) ComplexityFactor() int { return complexityOf(c) }

func (c *Constructor) MethodName() *string {
	names := c.MethodNames()
	if len(names) == 0 {
		return nil
	}
	return &names[0]
}

func (c *Constructor) MethodNames() []string {
	return normalizedMethodNames(c.name, c.Arguments)
}

// PeekConstructor reports whether a "constructor(...)" member starts at the
// current position.
func PeekConstructor(s *token.Stream) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && tok.Text == "constructor" && s.Peek(2).Is("(")
}

// ParseConstructor attempts to consume a Constructor member, not including
// its trailing ";".
func ParseConstructor(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Constructor, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekConstructor(s) {
		return nil, false
	}
	s.Next() // "constructor"

	argList, ok := production.ParseArgumentList(s, source)
	if !ok {
		r.Warn("expected a parenthesized argument list for constructor")
		s.Restore(mark)
		return nil, false
	}

	c := &Constructor{
		Arguments: wrapArguments(argList, source, r),
	}
	c.idlType = TypeConstructor
	c.extAttrs = attrs
	c.span = s.SpanSince(mark)
	c.source = source
	return c, true
}

// constructorFromExtendedAttribute converts a legacy [Constructor(...)] or
// [NamedConstructor=Name(...)] extended attribute into a first-class
// Constructor member, per SPEC_FULL.md's interface-construction design. This
// is itself a LegacyAccepted toleration (the modern grammar uses a bare
// "constructor(...)" member instead), surfaced through r.Note.
func constructorFromExtendedAttribute(ea *ExtendedAttribute, source string, r Reporter) (*Constructor, bool) {
	p := ea.Production
	if p.Name != "Constructor" && p.Name != "NamedConstructor" && p.Name != "LegacyFactoryFunction" {
		return nil, false
	}
	r = reporterOrNop(r)
	r.Note("legacy [%s] extended attribute accepted as a constructor member", p.Name)
	c := &Constructor{}
	c.idlType = TypeConstructor
	c.span = ea.span
	c.source = source
	if p.Value != "" {
		name := p.Value
		c.name = &name
	}
	if p.Args != nil {
		c.Arguments = wrapArguments(p.Args, source, r)
	}
	return c, true
}
