// Package production implements the recursive-descent grammar productions
// of the WebIDL language: one small matcher per grammar rule, each able to
// recognize itself from a token.Stream and re-emit its own source text.
//
// Productions form an immutable tree after construction (REDESIGN FLAGS: a
// tagged variant over production kinds, not a class hierarchy — Kind()
// identifies which concrete type a Production is, Children() exposes the
// tree structurally for the markup walk instead of duck-typed dispatch).
package production

import "github.com/webidlgo/webidl/token"

// Kind tags the concrete production type, standing in for the source
// corpus's duck-typed class hierarchy.
type Kind int

const (
	KindType Kind = iota
	KindUnionType
	KindGenericType
	KindPrimitiveType
	KindStringType
	KindBufferType
	KindObjectType
	KindTypeIdentifier
	KindArgumentList
	KindArgument
	KindDefault
	KindConstValue
	KindEnumValueList
	KindEnumValue
	KindInheritance
	KindExtendedAttributeList
	KindExtendedAttribute
	KindSymbol
	KindIgnoreInOut
)

func (k Kind) String() string {
	names := [...]string{
		"Type", "UnionType", "GenericType", "PrimitiveType", "StringType",
		"BufferType", "ObjectType", "TypeIdentifier", "ArgumentList",
		"Argument", "Default", "ConstValue", "EnumValueList", "EnumValue",
		"Inheritance", "ExtendedAttributeList", "ExtendedAttribute", "Symbol",
		"IgnoreInOut",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return "Kind(?)"
}

// Production is the common interface implemented by every grammar node.
type Production interface {
	Kind() Kind
	Span() token.Span
	Serialize() string
	Children() []Production
}

// base is embedded by every concrete production; it owns the span of
// consumed tokens (trivia included) and a reference to the full source
// text. Storing the source string per-node costs nothing but a
// pointer-and-length header: Go strings never copy their backing bytes.
type base struct {
	span   token.Span
	source string
}

func (b base) Span() token.Span { return b.span }

func (b base) Serialize() string {
	if b.span.Start < 0 || b.span.End > len(b.source) || b.span.Start > b.span.End {
		return ""
	}
	return b.source[b.span.Start:b.span.End]
}

// spanFrom computes the span consumed between a stream mark and its current
// position, attributing leading trivia of the first consumed token to the
// production (so re-emitting reproduces exactly what was consumed,
// whitespace included) and extending to the end of the last consumed token.
func spanFrom(s *token.Stream, mark int, source string) token.Span {
	// The caller has already advanced s past everything this production
	// consumed; reconstruct the span by looking at the tokens between mark
	// and the current cursor via the stream's own bookkeeping helper.
	return s.SpanSince(mark)
}
