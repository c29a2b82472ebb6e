package production

import (
	"strings"

	"github.com/webidlgo/webidl/token"
)

// Type is the outer node for every WebIDL type reference: a SingleType or a
// UnionType, with an optional trailing "?". Nullability is a property of
// this outer node, never of Inner — the "?" may appear exactly once and
// only on the outermost type.
type Type struct {
	base
	Nullable bool
	Inner    Production // one of *PrimitiveType, *StringType, *BufferType, *ObjectType, *TypeIdentifier, *GenericType, *UnionType
}

func (t *Type) Kind() Kind              { return KindType }
func (t *Type) Children() []Production { return []Production{t.Inner} }

// PrimitiveType is a WebIDL primitive numeric/boolean type keyword,
// possibly multi-word ("unsigned long long").
type PrimitiveType struct {
	base
	Name string
}

func (p *PrimitiveType) Kind() Kind              { return KindPrimitiveType }
func (p *PrimitiveType) Children() []Production { return nil }

// StringType is one of DOMString, ByteString, USVString.
type StringType struct {
	base
	Name string
}

func (s *StringType) Kind() Kind              { return KindStringType }
func (s *StringType) Children() []Production { return nil }

// BufferType is one of the typed-array / buffer-source type keywords.
type BufferType struct {
	base
	Name string
}

func (b *BufferType) Kind() Kind              { return KindBufferType }
func (b *BufferType) Children() []Production { return nil }

// ObjectType is a parameterless, non-primitive type keyword: "any" or
// "object".
type ObjectType struct {
	base
	Name string
}

func (o *ObjectType) Kind() Kind              { return KindObjectType }
func (o *ObjectType) Children() []Production { return nil }

// TypeIdentifier is a type reference by name to a user-defined construct
// (interface, dictionary, enum, callback, or typedef).
type TypeIdentifier struct {
	base
	RawName string // exact token text, escaping underscore retained
	Name    string // semantic name, escaping underscore stripped
}

func (t *TypeIdentifier) Kind() Kind              { return KindTypeIdentifier }
func (t *TypeIdentifier) Children() []Production { return nil }

// GenericType is a single- or double-argument parameterized type:
// sequence<T>, FrozenArray<T>, Promise<T>, or record<K, V>.
type GenericType struct {
	base
	Keyword string
	Args    []*Type
}

func (g *GenericType) Kind() Kind { return KindGenericType }
func (g *GenericType) Children() []Production {
	out := make([]Production, len(g.Args))
	for i, a := range g.Args {
		out[i] = a
	}
	return out
}

// UnionType is "(" Type ( "or" Type )+ ")".
type UnionType struct {
	base
	Members []*Type
}

func (u *UnionType) Kind() Kind { return KindUnionType }
func (u *UnionType) Children() []Production {
	out := make([]Production, len(u.Members))
	for i, m := range u.Members {
		out[i] = m
	}
	return out
}

// matchPhrase tests whether the upcoming identifier tokens spell out the
// (possibly multi-word) phrase, without consuming anything.
func matchPhrase(s *token.Stream, phrase string) (wordCount int, ok bool) {
	words := strings.Fields(phrase)
	for i, w := range words {
		tok := s.Peek(i + 1)
		if tok.Kind != token.Identifier || tok.Text != w {
			return 0, false
		}
	}
	return len(words), true
}

// PeekType reports whether a Type production can be recognized at the
// current position, without consuming anything.
func PeekType(s *token.Stream) bool {
	if _, ok := matchPhrase(s, "any"); ok {
		return true
	}
	if s.Peek(1).Kind == token.Symbol && s.Peek(1).Text == "(" {
		return true
	}
	if s.Peek(1).Kind != token.Identifier {
		return false
	}
	return true
}

// ParseType attempts to consume a Type. On failure it restores the stream
// and returns (nil, false).
func ParseType(s *token.Stream, source string) (*Type, bool) {
	mark := s.Mark()

	inner, ok := parseSingleOrUnion(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}

	t := &Type{Inner: inner}
	if s.Peek(1).Is("?") {
		s.Next()
		t.Nullable = true
	}
	t.span = s.SpanSince(mark)
	t.source = source
	return t, true
}

func parseSingleOrUnion(s *token.Stream, source string) (Production, bool) {
	if s.Peek(1).Is("(") {
		return parseUnionType(s, source)
	}

	for _, name := range primitiveTypeNames {
		if n, ok := matchPhrase(s, name); ok {
			mark := s.Mark()
			for i := 0; i < n; i++ {
				s.Next()
			}
			return &PrimitiveType{base: base{s.SpanSince(mark), source}, Name: name}, true
		}
	}
	for _, name := range stringTypeNames {
		if matchIdentKeyword(s, name) {
			mark := s.Mark()
			s.Next()
			return &StringType{base: base{s.SpanSince(mark), source}, Name: name}, true
		}
	}
	for _, name := range bufferTypeNames {
		if matchIdentKeyword(s, name) {
			mark := s.Mark()
			s.Next()
			return &BufferType{base: base{s.SpanSince(mark), source}, Name: name}, true
		}
	}
	for _, name := range objectTypeNames {
		if matchIdentKeyword(s, name) {
			mark := s.Mark()
			s.Next()
			return &ObjectType{base: base{s.SpanSince(mark), source}, Name: name}, true
		}
	}
	for keyword, arity := range genericTypeKeywords {
		if matchIdentKeyword(s, keyword) {
			if g, ok := parseGenericType(s, source, keyword, arity); ok {
				return g, true
			}
		}
	}

	if s.Peek(1).Kind == token.Identifier {
		mark := s.Mark()
		tok := s.Next()
		return &TypeIdentifier{
			base:    base{s.SpanSince(mark), source},
			RawName: tok.Text,
			Name:    normalizeIdentifier(tok.Text),
		}, true
	}

	return nil, false
}

// matchIdentKeyword reports whether the upcoming token is exactly the given
// single-word identifier, without consuming it.
func matchIdentKeyword(s *token.Stream, word string) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && tok.Text == word
}

func parseGenericType(s *token.Stream, source, keyword string, arity int) (*GenericType, bool) {
	mark := s.Mark()
	s.Next() // keyword

	if !s.Peek(1).Is("<") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	g := &GenericType{Keyword: keyword}
	for i := 0; i < arity; i++ {
		if i > 0 {
			if !s.Peek(1).Is(",") {
				s.Restore(mark)
				return nil, false
			}
			s.Next()
		}
		arg, ok := ParseType(s, source)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		g.Args = append(g.Args, arg)
	}

	if !s.Peek(1).Is(">") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	g.span = s.SpanSince(mark)
	g.source = source
	return g, true
}

func parseUnionType(s *token.Stream, source string) (*UnionType, bool) {
	mark := s.Mark()
	if !s.Peek(1).Is("(") {
		return nil, false
	}
	s.Next()

	u := &UnionType{}
	first, ok := ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	u.Members = append(u.Members, first)

	for matchIdentKeyword(s, "or") {
		s.Next()
		next, ok := ParseType(s, source)
		if !ok {
			s.Restore(mark)
			return nil, false
		}
		u.Members = append(u.Members, next)
	}

	if len(u.Members) < 2 {
		s.Restore(mark)
		return nil, false
	}

	if !s.Peek(1).Is(")") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	u.span = s.SpanSince(mark)
	u.source = source
	return u, true
}
