package production

import "github.com/webidlgo/webidl/token"

// Symbol wraps a single specific keyword or punctuator token. The markup
// driver renders a Symbol without calling any marker method.
type Symbol struct {
	base
	Text string
}

func (s *Symbol) Kind() Kind              { return KindSymbol }
func (s *Symbol) Children() []Production { return nil }

// ParseSymbol attempts to consume a token whose text is exactly text.
func ParseSymbol(s *token.Stream, source, text string) (*Symbol, bool) {
	if !s.Peek(1).Is(text) {
		return nil, false
	}
	mark := s.Mark()
	tok := s.Next()
	return &Symbol{base: base{s.SpanSince(mark), source}, Text: tok.Text}, true
}
