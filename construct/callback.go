package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Callback is a top-level declaration in one of two forms: "callback
// interface name { members };" (Interface holds the nested interface and
// Arguments/ReturnType are nil), or "callback name = ReturnType(Arguments);"
// (Interface is nil and Arguments/ReturnType are populated directly).
type Callback struct {
	Base
	Interface  *Interface
	ReturnType *production.Type
	Arguments  []*Argument
}

func (c *Callback) Members() []Construct {
	if c.Interface != nil {
		return []Construct{c.Interface}
	}
	return argumentsAsConstructs(c.Arguments)
}

func (c *Callback) ComplexityFactor() int { return complexityOf(c) }

// PeekCallback reports whether a "callback" declaration starts at the
// current position.
func PeekCallback(s *token.Stream) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && tok.Text == "callback"
}

// ParseCallback attempts to consume a Callback declaration, not including
// its trailing ";".
func ParseCallback(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Callback, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekCallback(s) {
		return nil, false
	}
	s.Next() // "callback"

	if s.Peek(1).Text == "interface" && s.Peek(1).Kind == token.Identifier {
		iface, ok := ParseInterface(s, source, nil, r)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		cb := &Callback{Interface: iface}
		cb.idlType = TypeCallback
		cb.name = iface.name
		cb.extAttrs = attrs
		cb.span = s.SpanSince(mark)
		cb.source = source
		setParent(iface, cb)
		return cb, true
	}

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	name := s.Next().Text

	if !s.Peek(1).Is("=") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	retType, ok := production.ParseType(s, source)
	if !ok {
		r.Warn("expected a return type for callback %q", name)
		s.Restore(mark)
		return nil, false
	}

	argList, ok := production.ParseArgumentList(s, source)
	if !ok {
		r.Warn("expected a parenthesized argument list for callback %q", name)
		s.Restore(mark)
		return nil, false
	}

	cb := &Callback{
		ReturnType: retType,
		Arguments:  wrapArguments(argList, source, r),
	}
	cb.idlType = TypeCallback
	cb.name = &name
	cb.extAttrs = attrs
	cb.span = s.SpanSince(mark)
	cb.source = source
	attachParent(cb, cb.Members())
	return cb, true
}
