package production

import "github.com/webidlgo/webidl/token"

// Argument is a single parameter of an operation, callback, or constructor:
// optional extended attributes, an optional legacy in/out direction
// keyword, "optional", a Type, "...", a name, and an optional Default.
type Argument struct {
	base
	ExtendedAttributes *ExtendedAttributeList
	Legacy             *IgnoreInOut
	Optional           bool
	Type               *Type
	Variadic           bool
	RawName            string
	Name               string
	Default            *Default
}

func (a *Argument) Kind() Kind { return KindArgument }
func (a *Argument) Children() []Production {
	var out []Production
	if a.ExtendedAttributes != nil {
		out = append(out, a.ExtendedAttributes)
	}
	if a.Legacy != nil {
		out = append(out, a.Legacy)
	}
	out = append(out, a.Type)
	if a.Default != nil {
		out = append(out, a.Default)
	}
	return out
}

// ArgumentList is "(" Argument ( "," Argument )* ")", possibly empty.
type ArgumentList struct {
	base
	Items []*Argument
}

func (l *ArgumentList) Kind() Kind { return KindArgumentList }
func (l *ArgumentList) Children() []Production {
	out := make([]Production, len(l.Items))
	for i, it := range l.Items {
		out[i] = it
	}
	return out
}

// ParseArgument attempts to consume a single Argument.
func ParseArgument(s *token.Stream, source string) (*Argument, bool) {
	mark := s.Mark()
	a := &Argument{}

	if PeekExtendedAttributeList(s) {
		ea, ok := ParseExtendedAttributeList(s, source)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		a.ExtendedAttributes = ea
	}

	if legacy, ok := ParseIgnoreInOut(s, source); ok {
		a.Legacy = legacy
	}

	if matchIdentKeyword(s, "optional") {
		s.Next()
		a.Optional = true
	}

	typ, ok := ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	a.Type = typ

	if s.Peek(1).Is("...") {
		s.Next()
		a.Variadic = true
	}

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	nameTok := s.Next()
	a.RawName = nameTok.Text
	a.Name = normalizeIdentifier(nameTok.Text)

	if def, ok := ParseDefault(s, source); ok {
		a.Default = def
	}

	a.span = s.SpanSince(mark)
	a.source = source
	return a, true
}

// ParseArgumentList attempts to consume a parenthesized, comma-separated
// argument list, including the empty list "()".
func ParseArgumentList(s *token.Stream, source string) (*ArgumentList, bool) {
	mark := s.Mark()
	if !s.Peek(1).Is("(") {
		return nil, false
	}
	s.Next()

	l := &ArgumentList{}
	if s.Peek(1).Is(")") {
		s.Next()
		l.span = s.SpanSince(mark)
		l.source = source
		return l, true
	}

	for {
		arg, ok := ParseArgument(s, source)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		l.Items = append(l.Items, arg)

		if s.Peek(1).Is(",") {
			s.Next()
			continue
		}
		break
	}

	if !s.Peek(1).Is(")") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	l.span = s.SpanSince(mark)
	l.source = source
	return l, true
}
