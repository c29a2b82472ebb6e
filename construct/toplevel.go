package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// ParseTopLevel consumes every top-level declaration in s until EOF,
// returning one Construct per declaration in source order. A declaration
// that fails to parse becomes a SyntaxError spanning the tokens skipped to
// resynchronize, per the recovery policy: no single bad declaration aborts
// the whole file.
func ParseTopLevel(s *token.Stream, source string, r Reporter) []Construct {
	r = reporterOrNop(r)
	var out []Construct
	for !s.AtEOF() {
		c, ok := parseTopLevelEntry(s, source, r)
		if !ok {
			mark := s.Mark()
			se := recoverToTopLevel(s, source, "unrecognized top-level declaration", r)
			if s.Mark() == mark {
				// Nothing was consumed and nothing will ever be; stop to
				// avoid looping forever on a single unresolvable token.
				s.Next()
			}
			out = append(out, se)
			continue
		}
		out = append(out, c)
	}
	// Any trivia (trailing comment, trailing newline) after the last
	// construct's own tokens was never consumed by the loop above, since it
	// stops as soon as the stream reports AtEOF. Fold it into the final
	// construct's span so that concatenating every top-level construct's
	// Serialize() still reproduces the input byte-for-byte, per the
	// round-trip invariant in the data model.
	if len(out) > 0 && len(source) > 0 {
		extendSpanEnd(out[len(out)-1], len(source))
	}
	return out
}

// parseTopLevelEntry parses one top-level declaration's own extended
// attribute list followed by the declaration body, trying each recognized
// form in turn. entryMark is taken before the leading attribute list (if
// any) is parsed, both so a failed dispatch restores all the way back to
// it (leaving nothing consumed for the caller's recovery to skip over
// twice) and so a successful one can fold the attribute list's bytes back
// into the produced construct's span via extendSpanStart.
func parseTopLevelEntry(s *token.Stream, source string, r Reporter) (Construct, bool) {
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
	case PeekInterface(s):
		c, ok = ParseInterface(s, source, attrs, r)
	case PeekDictionary(s):
		c, ok = ParseDictionary(s, source, attrs, r)
	case PeekCallback(s):
		c, ok = ParseCallback(s, source, attrs, r)
	case PeekEnum(s):
		c, ok = ParseEnum(s, source, attrs, r)
	case PeekTypedef(s):
		c, ok = ParseTypedef(s, source, attrs)
	case PeekImplements(s):
		c, ok = ParseImplements(s, source, r)
	case PeekIncludes(s):
		c, ok = ParseIncludes(s, source)
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

	if s.Peek(1).Is(";") {
		semi := s.Next()
		extendSpanEnd(c, semi.Span().End)
	}
	return c, ok
}
