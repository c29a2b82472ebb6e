package construct

import (
	"github.com/webidlgo/webidl/production"
	"github.com/webidlgo/webidl/token"
)

// DictMember is a dictionary "[required] Type name [= Default];" member.
type DictMember struct {
	Base
	Required bool
	Type     *production.Type
	Default  *production.Default
}

func (d *DictMember) Members() []Construct  { return nil }
func (d *DictMember) ComplexityFactor() int { return complexityOf(d) }

// PeekDictMember reports whether a dictionary member starts at the current
// position. Dictionary members have no leading keyword other than the
// optional "required", so this is just PeekType after skipping it.
func PeekDictMember(s *token.Stream) bool {
	k := 1
	if s.Peek(k).Text == "required" && s.Peek(k).Kind == token.Identifier {
		k++
	}
	tok := s.Peek(k)
	return tok.Kind == token.Identifier || tok.Is("(")
}

// ParseDictMember attempts to consume a DictMember, not including its
// trailing ";".
func ParseDictMember(s *token.Stream, source string, attrs []*ExtendedAttribute, r Reporter) (*DictMember, bool) {
	r = reporterOrNop(r)
	mark := s.Mark()
	if !PeekDictMember(s) {
		return nil, false
	}

	d := &DictMember{}
	if s.Peek(1).Text == "required" {
		d.Required = true
		s.Next()
	}

	typ, ok := production.ParseType(s, source)
	if !ok {
		s.Restore(mark)
		return nil, false
	}
	d.Type = typ

	if s.Peek(1).Kind != token.Identifier {
		s.Restore(mark)
		return nil, false
	}
	name := s.Next().Text

	if def, ok := production.ParseDefault(s, source); ok {
		d.Default = def
	}

	d.idlType = TypeDictMember
	d.name = &name
	d.extAttrs = attrs
	d.span = s.SpanSince(mark)
	d.source = source
	return d, true
}
