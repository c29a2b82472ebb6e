// Tokenizer for WebIDL source text. The state-function design — a run loop
// over stateFn values threading a single lexer struct — follows the shape of
// the teacher package's lex_def.go (itself adapted from the Go standard
// library's text/template/parse lexer); the lexer core that lex_def.go built
// on (buildlex, the lexeme/stateFn plumbing) was not present in this
// retrieval, so it is rewritten here from scratch in the same idiom rather
// than guessed at.
package token

import (
	"strings"
	"unicode/utf8"
)

const eof = -1

// symbols is checked longest-first so that "..." is not split into three
// unrecognized '.' bytes and "=>" is not split into '=' then '>'; ordering
// only matters for these two multi-byte punctuators.
var symbols = []string{
	"...", "=>",
	"(", ")", "[", "]", "{", "}",
	",", ";", ":", "?", "=", "<", ">",
}

type stateFn func(*lexer) stateFn

// lexer turns an input string into a flat slice of Tokens in one pass.
type lexer struct {
	input  string
	start  int // start of the token being scanned, in bytes
	pos    int // current scan position, in bytes
	width  int // width of the last rune read by next, for backup
	tokens []Token
}

// Tokenize scans the entirety of input into Tokens, including a final EOF
// token. Every byte of input appears in exactly one token: the tokenizer is
// deterministic, single-pass, and lossless.
func Tokenize(input string) []Token {
	l := &lexer{input: input}
	for state := lexSource; state != nil; {
		state = state(l)
	}
	return l.tokens
}

func (l *lexer) next() rune {
	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, w := utf8.DecodeRuneInString(l.input[l.pos:])
	l.width = w
	l.pos += w
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) peekAt(offset int) rune {
	pos := l.pos
	for i := 0; i < offset; i++ {
		if pos >= len(l.input) {
			return eof
		}
		_, w := utf8.DecodeRuneInString(l.input[pos:])
		pos += w
	}
	if pos >= len(l.input) {
		return eof
	}
	r, _ := utf8.DecodeRuneInString(l.input[pos:])
	return r
}

func (l *lexer) emit(kind Kind) {
	l.tokens = append(l.tokens, Token{
		Kind:   kind,
		Text:   l.input[l.start:l.pos],
		Offset: l.start,
	})
	l.start = l.pos
}

func (l *lexer) ignoreStart() {
	l.start = l.pos
}

func isSpace(r rune) bool  { return r == ' ' || r == '\t' }
func isNewline(r rune) bool {
	return r == '\n' || r == '\r'
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func isHexDigit(r rune) bool {
	return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

func isIdentStart(r rune) bool {
	return r == '_' || r == '-' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isIdentPart(r rune) bool {
	return isIdentStart(r) || isDigit(r)
}

// lexSource is the top-level dispatch state: one character of lookahead
// decides which specialized state to hand off to.
func lexSource(l *lexer) stateFn {
	r := l.peek()
	switch {
	case r == eof:
		l.emit(EOF)
		return nil

	case isSpace(r) || isNewline(r):
		return lexWhitespace

	case r == '/' && (l.peekAt(1) == '/' || l.peekAt(1) == '*'):
		return lexComment

	case r == '"':
		return lexString

	case r == '-' && isDigit(l.peekAt(1)):
		return lexNumber
	case r == '-' && startsWord(l.input[l.pos+1:], "Infinity"):
		return lexSignedInfinity

	case isDigit(r):
		return lexNumber

	case r == '.' && isDigit(l.peekAt(1)):
		return lexNumber

	case isIdentStart(r):
		return lexIdentifierOrKeyword

	default:
		return lexSymbolOrUnknown
	}
}

func startsWord(s, word string) bool {
	return strings.HasPrefix(s, word)
}

func lexWhitespace(l *lexer) stateFn {
	for {
		r := l.peek()
		if !(isSpace(r) || isNewline(r)) {
			break
		}
		l.next()
	}
	l.emit(Whitespace)
	return lexSource
}

func lexComment(l *lexer) stateFn {
	l.next() // '/'
	r := l.next()
	if r == '/' {
		for {
			p := l.peek()
			if p == eof || isNewline(p) {
				break
			}
			l.next()
		}
		l.emit(Comment)
		return lexSource
	}
	// block comment; non-nesting, tolerates being unterminated.
	for {
		p := l.peek()
		if p == eof {
			break
		}
		if p == '*' && l.peekAt(1) == '/' {
			l.next()
			l.next()
			break
		}
		l.next()
	}
	l.emit(Comment)
	return lexSource
}

func lexString(l *lexer) stateFn {
	l.next() // opening quote
	for {
		r := l.next()
		if r == eof || r == '"' {
			break
		}
	}
	l.emit(String)
	return lexSource
}

// lexNumber scans integer and float literals: decimal, hex (0x...), octal
// (0...), with optional leading sign, and standard float forms.
func lexNumber(l *lexer) stateFn {
	isFloat := false

	if l.peek() == '-' || l.peek() == '+' {
		l.next()
	}

	if l.peek() == '0' && (l.peekAt(1) == 'x' || l.peekAt(1) == 'X') {
		l.next()
		l.next()
		for isHexDigit(l.peek()) {
			l.next()
		}
		l.emit(Integer)
		return lexSource
	}

	for isDigit(l.peek()) {
		l.next()
	}

	if l.peek() == '.' && isDigit(l.peekAt(1)) {
		isFloat = true
		l.next()
		for isDigit(l.peek()) {
			l.next()
		}
	}

	if r := l.peek(); r == 'e' || r == 'E' {
		save := l.pos
		l.next()
		if p := l.peek(); p == '+' || p == '-' {
			l.next()
		}
		if isDigit(l.peek()) {
			isFloat = true
			for isDigit(l.peek()) {
				l.next()
			}
		} else {
			l.pos = save
		}
	}

	if isFloat {
		l.emit(Float)
	} else {
		l.emit(Integer)
	}
	return lexSource
}

// lexSignedInfinity scans "-Infinity", which is a float literal rather than
// a minus symbol followed by an identifier.
func lexSignedInfinity(l *lexer) stateFn {
	l.next() // '-'
	for i := 0; i < len("Infinity"); i++ {
		l.next()
	}
	l.emit(Float)
	return lexSource
}

// lexIdentifierOrKeyword scans an identifier, then reclassifies it as a
// Float token if it is exactly "Infinity" or "NaN" (WebIDL float keywords
// are lexically identifiers but are not identifier tokens).
func lexIdentifierOrKeyword(l *lexer) stateFn {
	l.next() // consume the starting rune (already known to be ident-start)
	for isIdentPart(l.peek()) {
		l.next()
	}
	text := l.input[l.start:l.pos]
	if text == "Infinity" || text == "NaN" {
		l.emit(Float)
	} else {
		l.emit(Identifier)
	}
	return lexSource
}

func lexSymbolOrUnknown(l *lexer) stateFn {
	rest := l.input[l.pos:]
	for _, sym := range symbols {
		if strings.HasPrefix(rest, sym) {
			l.pos += len(sym)
			l.emit(Symbol)
			return lexSource
		}
	}
	// No rule matched: emit the single offending byte as Unknown so parsing
	// can attempt recovery around it instead of the tokenizer aborting.
	_, w := utf8.DecodeRuneInString(rest)
	if w == 0 {
		w = 1
	}
	l.pos += w
	l.emit(Unknown)
	return lexSource
}
