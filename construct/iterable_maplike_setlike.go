package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// Iterable is an interface "iterable<ValueType>;" or
// "iterable<KeyType, ValueType>;" member.
type Iterable struct {
	Base
	KeyType   *production.Type // nil for the single-type form
	ValueType *production.Type
}

func (i *Iterable) Members() []Construct { return nil }
func (i *Iterable) ComplexityFactor() int { return complexityOf(i) }

// PeekIterable reports whether an "iterable<...>" member starts at the
// current position.
func PeekIterable(s *token.Stream) bool {
	tok := s.Peek(1)
	return tok.Kind == token.Identifier && tok.Text == "iterable" && s.Peek(2).Is("<")
}

// ParseIterable attempts to consume an Iterable member, not including its
// trailing ";".
func ParseIterable(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Iterable, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekIterable(s) {
		return nil, false
	}
	s.Next() // "iterable"
	s.Next() // "<"

	first, ok := production.ParseType(s, source)
	if !ok {
		r.Warn("expected a type inside iterable<...>")
		s.Restore(mark)
		return nil, false
	}

	it := &Iterable{}
	if s.Peek(1).Is(",") {
		s.Next()
		second, ok := production.ParseType(s, source)
		if !ok {
			r.Warn("expected a value type after ',' inside iterable<...>")
			s.Restore(mark)
			return nil, false
		}
		it.KeyType = first
		it.ValueType = second
	} else {
		it.ValueType = first
	}

	if !s.Peek(1).Is(">") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	it.idlType = TypeIterable
	it.extAttrs = attrs
	it.span = s.SpanSince(mark)
	it.source = source
	return it, true
}

// Maplike is an interface "[readonly] maplike<KeyType, ValueType>;" member.
type Maplike struct {
	Base
	Readonly  bool
	KeyType   *production.Type
	ValueType *production.Type
}

func (m *Maplike) Members() []Construct { return nil }
func (m *Maplike) ComplexityFactor() int { return complexityOf(m) }

// PeekMaplike reports whether a "[readonly] maplike<...>" member starts at
// the current position.
func PeekMaplike(s *token.Stream) bool {
	k := 1
	tok := s.Peek(k)
	if tok.Kind == token.Identifier && tok.Text == "readonly" {
		k++
		tok = s.Peek(k)
	}
	return tok.Kind == token.Identifier && tok.Text == "maplike" && s.Peek(k+1).Is("<")
}

// ParseMaplike attempts to consume a Maplike member, not including its
// trailing ";".
func ParseMaplike(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Maplike, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekMaplike(s) {
		return nil, false
	}

	m := &Maplike{}
	if s.Peek(1).Text == "readonly" {
		m.Readonly = true
		s.Next()
	}
	s.Next() // "maplike"
	s.Next() // "<"

	keyType, ok := production.ParseType(s, source)
	if !ok {
		r.Warn("expected a key type inside maplike<...>")
		s.Restore(mark)
		return nil, false
	}
	if !s.Peek(1).Is(",") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	valueType, ok := production.ParseType(s, source)
	if !ok {
		r.Warn("expected a value type inside maplike<...>")
		s.Restore(mark)
		return nil, false
	}
	if !s.Peek(1).Is(">") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	m.KeyType = keyType
	m.ValueType = valueType
	m.idlType = TypeMaplike
	m.extAttrs = attrs
	m.span = s.SpanSince(mark)
	m.source = source
	return m, true
}

// Setlike is an interface "[readonly] setlike<ValueType>;" member.
type Setlike struct {
	Base
	Readonly  bool
	ValueType *production.Type
}

func (s *Setlike) Members() []Construct { return nil }
func (s *Setlike) ComplexityFactor() int { return complexityOf(s) }

// PeekSetlike reports whether a "[readonly] setlike<...>" member starts at
// the current position.
func PeekSetlike(s *token.Stream) bool {
	k := 1
	tok := s.Peek(k)
	if tok.Kind == token.Identifier && tok.Text == "readonly" {
		k++
		tok = s.Peek(k)
	}
	return tok.Kind == token.Identifier && tok.Text == "setlike" && s.Peek(k+1).Is("<")
}

// ParseSetlike attempts to consume a Setlike member, not including its
// trailing ";".
func ParseSetlike(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*Setlike, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekSetlike(s) {
		return nil, false
	}

	st := &Setlike{}
	if s.Peek(1).Text == "readonly" {
		st.Readonly = true
		s.Next()
	}
	s.Next() // "setlike"
	s.Next() // "<"

	valueType, ok := production.ParseType(s, source)
	if !ok {
		r.Warn("expected a value type inside setlike<...>")
		s.Restore(mark)
		return nil, false
	}
	if !s.Peek(1).Is(">") {
		s.Restore(mark)
		return nil, false
	}
	s.Next()

	st.ValueType = valueType
	st.idlType = TypeSetlike
	st.extAttrs = attrs
	st.span = s.SpanSince(mark)
	st.source = source
	return st, true
}
