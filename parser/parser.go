// Package parser is the façade over token, production, and construct: it
// owns the construct list for one or more parsed texts, and answers find
// and serialization queries against it. Markup is produced by markup.Drive
// over that construct list.
package parser

import (
	"strings"

	"github.com/webidlgo/webidl/construct"
	"github.com/webidlgo/webidl/token"
)

// UserInterface receives the parser's diagnostics, matching
// construct.Reporter exactly so any UserInterface can be passed straight
// through to the construct layer. Warn reports grammar errors with enough
// context to locate the span; Note reports legacy-form acceptances. Neither
// aborts parsing.
type UserInterface interface {
	Warn(format string, args ...interface{})
	Note(format string, args ...interface{})
}

// Parser owns the ordered list of top-level constructs produced by parsing
// one or more texts. It is not safe for concurrent mutation: Parse and
// Reset are the only mutating methods. Concurrent read-only queries (Find,
// Serialize, markup.Drive over Constructs) against a fully built Parser are
// safe, so no
// sync.Mutex is embedded here — adding one would contradict that contract.
type Parser struct {
	ui     UserInterface
	source strings.Builder
	tree   []construct.Construct
}

// New constructs a Parser, optionally parsing an initial text. ui may be
// nil, in which case diagnostics are silently discarded.
func New(initial string, ui UserInterface) *Parser {
	p := &Parser{ui: ui}
	if initial != "" {
		p.Parse(initial)
	}
	return p
}

// Parse tokenizes text and appends the constructs it contains to the
// parser's construct list. Multiple calls accumulate; each call's text is
// parsed against its own token stream, so each construct's span is an
// offset into the text of the call that produced it, counted from 0.
func (p *Parser) Parse(text string) {
	s := token.NewStream(text)
	p.tree = append(p.tree, construct.ParseTopLevel(s, text, p.ui)...)
	p.source.WriteString(text)
}

// Reset discards every construct previously parsed.
func (p *Parser) Reset() {
	p.tree = nil
	p.source.Reset()
}

// Constructs returns the ordered list of top-level constructs.
func (p *Parser) Constructs() []construct.Construct {
	return p.tree
}

// ComplexityFactor is the sum of every top-level construct's
// ComplexityFactor.
func (p *Parser) ComplexityFactor() int {
	total := 0
	for _, c := range p.tree {
		total += c.ComplexityFactor()
	}
	return total
}

// Serialize reproduces every parsed text concatenated in call order. Since
// tokenization is lossless, Serialize() == t after a single Parse(t) call.
func (p *Parser) Serialize() string {
	return p.source.String()
}

// String implements fmt.Stringer as Serialize, so a Parser prints as its
// source text.
func (p *Parser) String() string {
	return p.Serialize()
}

// Contains reports whether any top-level construct has the given name.
func (p *Parser) Contains(name string) bool {
	_, ok := p.ByName(name)
	return ok
}

// At returns the top-level construct at position i (0-indexed), or
// (nil, false) if i is out of range.
func (p *Parser) At(i int) (construct.Construct, bool) {
	if i < 0 || i >= len(p.tree) {
		return nil, false
	}
	return p.tree[i], true
}

// ByName returns the first top-level construct with the given name, or
// (nil, false) if none matches.
func (p *Parser) ByName(name string) (construct.Construct, bool) {
	for _, c := range p.tree {
		if c.Name() != nil && *c.Name() == name {
			return c, true
		}
	}
	return nil, false
}

// Len returns the number of top-level constructs.
func (p *Parser) Len() int { return len(p.tree) }
