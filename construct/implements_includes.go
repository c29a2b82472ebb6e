package construct

import "github.com/webidlgo/webidl/token"

// Implements is a top-level "name implements other;" statement (legacy
// WebIDL syntax, superseded by "includes" but still accepted). Extended
// attributes preceding this statement are consumed and folded into its span
// but are attached to no construct: Implements.ExtendedAttributes() is
// always nil, and the construct that follows does not receive them either.
type Implements struct {
	Base
	Target string // the name on the left of "implements"
	Other  string // the name on the right
}

func (i *Implements) Members() []Construct  { return nil }
func (i *Implements) ComplexityFactor() int { return complexityOf(i) }

// PeekImplements reports whether a "name implements other" statement starts
// at the current position.
func PeekImplements(s *token.Stream) bool {
	return s.Peek(1).Kind == token.Identifier && s.Peek(2).Is("implements") && s.Peek(3).Kind == token.Identifier
}

// ParseImplements attempts to consume an Implements statement, not
// including its trailing ";". "implements" is itself a LegacyAccepted form,
// superseded by "includes" but still accepted; its acceptance is surfaced
// through r.Note.
func ParseImplements(s *token.Stream, source string, r Reporter) (*Implements, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekImplements(s) {
		return nil, false
	}
	target := s.Next().Text
	s.Next() // "implements"
	other := s.Next().Text
	r.Note("legacy %q implements %q accepted in place of \"includes\"", target, other)

	i := &Implements{Target: target, Other: other}
	i.idlType = TypeImplements
	i.span = s.SpanSince(mark)
	i.source = source
	return i, true
}

// Includes is a top-level "name includes other;" mixin-inclusion statement.
// Same extended-attribute handling as Implements: preceding attributes are
// attached to no construct.
type Includes struct {
	Base
	Target string
	Other  string
}

func (i *Includes) Members() []Construct  { return nil }
func (i *Includes) ComplexityFactor() int { return complexityOf(i) }

// PeekIncludes reports whether a "name includes other" statement starts at
// the current position.
func PeekIncludes(s *token.Stream) bool {
	return s.Peek(1).Kind == token.Identifier && s.Peek(2).Is("includes") && s.Peek(3).Kind == token.Identifier
}

// ParseIncludes attempts to consume an Includes statement, not including
// its trailing ";".
func ParseIncludes(s *token.Stream, source string) (*Includes, bool) {
	mark := s.Mark()
	if !PeekIncludes(s) {
		return nil, false
	}
	target := s.Next().Text
	s.Next() // "includes"
	other := s.Next().Text

	i := &Includes{Target: target, Other: other}
	i.idlType = TypeIncludes
	i.span = s.SpanSince(mark)
	i.source = source
	return i, true
}
