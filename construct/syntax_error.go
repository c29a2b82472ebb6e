package construct

import "github.com/webidlgo/webidl/token"

// SyntaxError is produced instead of a real member or top-level construct
// whenever a GrammarMismatch or UnterminatedConstruct is encountered. It
// captures the tokens skipped during recovery so the surrounding input still
// round-trips exactly, and carries the diagnostic message that was also
// handed to the Reporter's Warn callback.
type SyntaxError struct {
	Base
	Message string
}

func (e *SyntaxError) Members() []Construct { return nil }
func (e *SyntaxError) ComplexityFactor() int { return complexityOf(e) }

// recoverToMember advances s past the failed member's tokens: up to and
// including the next ";" at brace-depth zero relative to where recovery
// started, or up to (but not including) the matching "}", whichever comes
// first. It returns the span of tokens consumed so the caller can build a
// SyntaxError from it, and invokes r.Warn with message and the span's text,
// per the GrammarMismatch recovery policy: local recovery never aborts, but
// it always reports.
func recoverToMember(s *token.Stream, source string, message string, r Reporter) *SyntaxError {
	r = reporterOrNop(r)
	mark := s.Mark()
	depth := 0
	for {
		tok := s.Peek(1)
		if tok.Kind == token.EOF {
			break
		}
		if depth == 0 && tok.Is("}") {
			break
		}
		switch tok.Text {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			if depth > 0 {
				depth--
			}
		}
		s.Next()
		if depth == 0 && tok.Is(";") {
			break
		}
	}
	se := &SyntaxError{Message: message}
	se.idlType = TypeUnknown
	se.span = s.SpanSince(mark)
	se.source = source
	r.Warn("%s: %q", message, se.Serialize())
	return se
}

// recoverToTopLevel advances s past a failed top-level statement: up to and
// including the next ";" at depth zero, or until a token that plausibly
// starts a new top-level construct ("[" or a recognized top-level keyword),
// whichever comes first. It invokes r.Warn with message and the span's text.
func recoverToTopLevel(s *token.Stream, source string, message string, r Reporter) *SyntaxError {
	r = reporterOrNop(r)
	mark := s.Mark()
	depth := 0
	for {
		tok := s.Peek(1)
		if tok.Kind == token.EOF {
			break
		}
		if depth == 0 && tok.Is(";") {
			s.Next()
			break
		}
		if depth == 0 && s.Mark() != mark && looksLikeTopLevelStart(tok) {
			break
		}
		switch tok.Text {
		case "{", "(", "[":
			depth++
		case "}", ")", "]":
			if depth > 0 {
				depth--
			}
		}
		s.Next()
	}
	se := &SyntaxError{Message: message}
	se.idlType = TypeUnknown
	se.span = s.SpanSince(mark)
	se.source = source
	r.Warn("%s: %q", message, se.Serialize())
	return se
}

func looksLikeTopLevelStart(tok token.Token) bool {
	if tok.Is("[") {
		return true
	}
	if tok.Kind != token.Identifier {
		return false
	}
	switch tok.Text {
	case "interface", "dictionary", "callback", "enum", "typedef":
		return true
	}
	return false
}
