package production

import "github.com/webidlgo/webidl/token"

// ExtendedAttributeForm classifies an ExtendedAttribute into one of the five
// canonical forms recognized by speculative matching, in the order they are
// tried, or Unknown if none apply.
type ExtendedAttributeForm int

const (
	FormNamedArgList ExtendedAttributeForm = iota // identifier = identifier ( ArgumentList )
	FormArgList                                   // identifier ( ArgumentList )
	FormIdent                                     // identifier = identifier
	FormTypePair                                  // identifier ( Type , Type )
	FormNoArgs                                    // identifier
	FormUnknown                                   // raw tokens, none of the above matched
)

func (f ExtendedAttributeForm) String() string {
	switch f {
	case FormNamedArgList:
		return "NamedArgList"
	case FormArgList:
		return "ArgList"
	case FormIdent:
		return "Ident"
	case FormTypePair:
		return "TypePair"
	case FormNoArgs:
		return "NoArgs"
	default:
		return "Unknown"
	}
}

// ExtendedAttribute is one bracketed annotation entry: [Name], [Name=Value],
// [Name(args)], [Name=Value(args)], or [Name(TypeA, TypeB)].
type ExtendedAttribute struct {
	base
	Form ExtendedAttributeForm
	Name string

	// FormIdent, FormNamedArgList
	Value string

	// FormArgList, FormNamedArgList
	Args *ArgumentList

	// FormTypePair
	Type1, Type2 *Type
}

func (e *ExtendedAttribute) Kind() Kind { return KindExtendedAttribute }
func (e *ExtendedAttribute) Children() []Production {
	var out []Production
	if e.Args != nil {
		out = append(out, e.Args)
	}
	if e.Type1 != nil {
		out = append(out, e.Type1)
	}
	if e.Type2 != nil {
		out = append(out, e.Type2)
	}
	return out
}

// ExtendedAttributeList is "[" ExtendedAttribute ( "," ExtendedAttribute )* "]".
type ExtendedAttributeList struct {
	base
	Items []*ExtendedAttribute
}

func (l *ExtendedAttributeList) Kind() Kind { return KindExtendedAttributeList }
func (l *ExtendedAttributeList) Children() []Production {
	out := make([]Production, len(l.Items))
	for i, it := range l.Items {
		out[i] = it
	}
	return out
}

// PeekExtendedAttributeList reports whether a "[" begins an extended
// attribute list at the current position.
func PeekExtendedAttributeList(s *token.Stream) bool {
	return s.Peek(1).Is("[")
}

// ParseExtendedAttributeList attempts to consume a bracketed, comma-separated
// list of extended attributes.
func ParseExtendedAttributeList(s *token.Stream, source string) (*ExtendedAttributeList, bool) {
	if !PeekExtendedAttributeList(s) {
		return nil, false
	}
	mark := s.Mark()
	s.Next() // "["

	l := &ExtendedAttributeList{}
	for {
		ea := parseExtendedAttribute(s, source)
		l.Items = append(l.Items, ea)

		if s.Peek(1).Is(",") {
			s.Next()
			continue
		}
		break
	}

	if !s.Peek(1).Is("]") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	l.span = s.SpanSince(mark)
	l.source = source
	return l, true
}

// parseExtendedAttribute classifies and consumes one attribute entry. It
// always succeeds: an attribute matching none of the five canonical forms
// becomes FormUnknown, capturing whatever tokens remain up to the next
// top-level "," or "]" rather than failing the whole list.
func parseExtendedAttribute(s *token.Stream, source string) *ExtendedAttribute {
	if ea, ok := tryNamedArgList(s, source); ok {
		return ea
	}
	if ea, ok := tryArgList(s, source); ok {
		return ea
	}
	if ea, ok := tryIdent(s, source); ok {
		return ea
	}
	if ea, ok := tryTypePair(s, source); ok {
		return ea
	}
	if ea, ok := tryNoArgs(s, source); ok {
		return ea
	}
	return parseUnknownAttribute(s, source)
}

// tryNamedArgList matches: identifier = identifier ( ArgumentList )
func tryNamedArgList(s *token.Stream, source string) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	if s.Peek(1).Kind != token.Identifier || !s.Peek(2).Is("=") || s.Peek(3).Kind != token.Identifier || !s.Peek(4).Is("(") {
		return nil, false
	}
	name := s.Next().Text
	s.Next() // "="
	value := s.Next().Text

	args, ok := ParseArgumentList(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}

	ea := &ExtendedAttribute{Form: FormNamedArgList, Name: name, Value: value, Args: args}
	ea.span = s.SpanSince(mark)
	ea.source = source
	return ea, true
}

// tryArgList matches: identifier ( ArgumentList )
func tryArgList(s *token.Stream, source string) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	if s.Peek(1).Kind != token.Identifier || !s.Peek(2).Is("(") {
		return nil, false
	}
	name := s.Next().Text

	args, ok := ParseArgumentList(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}

	ea := &ExtendedAttribute{Form: FormArgList, Name: name, Args: args}
	ea.span = s.SpanSince(mark)
	ea.source = source
	return ea, true
}

// tryIdent matches: identifier = identifier
func tryIdent(s *token.Stream, source string) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	if s.Peek(1).Kind != token.Identifier || !s.Peek(2).Is("=") || s.Peek(3).Kind != token.Identifier {
		return nil, false
	}
	name := s.Next().Text
	s.Next() // "="
	value := s.Next().Text

	ea := &ExtendedAttribute{Form: FormIdent, Name: name, Value: value}
	ea.span = s.SpanSince(mark)
	ea.source = source
	return ea, true
}

// tryTypePair matches: identifier ( Type , Type )
func tryTypePair(s *token.Stream, source string) (*ExtendedAttribute, bool) {
	mark := s.Mark()
	if s.Peek(1).Kind != token.Identifier || !s.Peek(2).Is("(") {
		return nil, false
	}
	name := s.Next().Text
	s.Next() // "("

	t1, ok := ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	if !s.Peek(1).Is(",") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()
	t2, ok := ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	if !s.Peek(1).Is(")") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	ea := &ExtendedAttribute{Form: FormTypePair, Name: name, Type1: t1, Type2: t2}
	ea.span = s.SpanSince(mark)
	ea.source = source
	return ea, true
}

// tryNoArgs matches a bare identifier followed by "," or "]".
func tryNoArgs(s *token.Stream, source string) (*ExtendedAttribute, bool) {
	if s.Peek(1).Kind != token.Identifier {
		return nil, false
	}
	if !s.Peek(2).Is(",") && !s.Peek(2).Is("]") {
		return nil, false
	}
	mark := s.Mark()
	name := s.Next().Text
	ea := &ExtendedAttribute{Form: FormNoArgs, Name: name}
	ea.span = s.SpanSince(mark)
	ea.source = source
	return ea, true
}

// parseUnknownAttribute consumes tokens up to (but not including) the next
// top-level "," or "]", tracking paren/bracket/brace depth so commas inside
// a nested argument list do not terminate the attribute early.
func parseUnknownAttribute(s *token.Stream, source string) *ExtendedAttribute {
	mark := s.Mark()
	depth := 0
	for {
		tok := s.Peek(1)
		if tok.Kind == token.EOF {
			break
		}
		if depth == 0 && (tok.Is(",") || tok.Is("]")) {
			break
		}
		switch tok.Text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			if depth > 0 {
				depth--
			}
		}
		s.Next()
	}
	ea := &ExtendedAttribute{Form: FormUnknown}
	ea.span = s.SpanSince(mark)
	ea.source = source
	return ea
}
