package markup

import (
	"strings"

	"github.com/webidlgo/webidl/construct"
	"github.com/webidlgo/webidl/production"
)

// Drive runs the markup driver over constructs (a Parser's top-level
// construct list) against the original source text, returning the marked-up
// string. With a Marker whose every element method returns (nil, nil) and
// whose Encode is the identity, Drive(constructs, source, m) == source.
func Drive(constructs []construct.Construct, source string, m Marker) string {
	var sb strings.Builder
	cursor := 0
	for _, c := range constructs {
		sp := c.Span()
		if sp.Start > cursor {
			sb.WriteString(m.Encode(source[cursor:sp.Start]))
		}
		sb.WriteString(markConstruct(c, source, m))
		cursor = sp.End
	}
	if cursor < len(source) {
		sb.WriteString(m.Encode(source[cursor:]))
	}
	return sb.String()
}

func wrap(prefix *string, inner string, suffix *string) string {
	var sb strings.Builder
	if prefix != nil {
		sb.WriteString(*prefix)
	}
	sb.WriteString(inner)
	if suffix != nil {
		sb.WriteString(*suffix)
	}
	return sb.String()
}

// markConstruct wraps c's own region with Marker.Construct, then recurses
// into its declared name (located by substring search within the prefix
// preceding its first child or type region only), its members, and any
// Type-valued fields it directly owns. A name that appears after a type or
// member region is not passed to Marker.Name.
func markConstruct(c construct.Construct, source string, m Marker) string {
	sp := c.Span()
	text := source[sp.Start:sp.End]
	prefix, suffix := m.Construct(text, c)
	inner := markConstructInner(c, source, m)
	return wrap(prefix, inner, suffix)
}

// markupRegion is one named sub-span of a construct's own text: a type, an
// enum value, a member, or the construct's declared name.
type markupRegion struct {
	start, end int
	render     func() string
}

func markConstructInner(c construct.Construct, source string, m Marker) string {
	sp := c.Span()

	// Collect this construct's own Type-bearing productions and nested
	// member constructs, each with an absolute span, then interleave them
	// with the name region (if any) and Encode everything in between.
	var regions []markupRegion

	for _, t := range typesOf(c) {
		if t == nil {
			continue
		}
		tp := t
		tSpan := tp.Span()
		regions = append(regions, markupRegion{tSpan.Start, tSpan.End, func() string {
			return markType(tp, c, source, m)
		}})
	}
	for _, ev := range enumValuesOf(c) {
		ev := ev
		evSpan := ev.Span()
		regions = append(regions, markupRegion{evSpan.Start, evSpan.End, func() string {
			prefix, suffix := m.EnumValue(ev.Serialize(), c)
			return wrap(prefix, ev.Serialize(), suffix)
		}})
	}
	for _, member := range c.Members() {
		member := member
		mSpan := member.Span()
		regions = append(regions, markupRegion{mSpan.Start, mSpan.End, func() string {
			return markConstruct(member, source, m)
		}})
	}

	if name := c.Name(); name != nil {
		// Search only the span before the first region. Names that follow
		// their type (attributes, operations, consts, dictionary members,
		// typedefs, arguments) and an interface name that follows a lifted
		// legacy constructor member are therefore not marked.
		headerEnd := sp.End
		if len(regions) > 0 {
			headerEnd = regions[0].start
			for _, r := range regions {
				if r.start < headerEnd {
					headerEnd = r.start
				}
			}
		}
		if headerEnd > sp.Start {
			header := source[sp.Start:headerEnd]
			if idx := strings.Index(header, *name); idx >= 0 {
				start := sp.Start + idx
				end := start + len(*name)
				regions = append(regions, markupRegion{start, end, func() string {
					prefix, suffix := m.Name(*name, c)
					return wrap(prefix, *name, suffix)
				}})
			}
		}
	}

	sortRegions(regions)

	var sb strings.Builder
	cursor := sp.Start
	for _, r := range regions {
		if r.start < cursor {
			continue // overlapping/duplicate region, already covered
		}
		if r.start > cursor {
			sb.WriteString(m.Encode(source[cursor:r.start]))
		}
		sb.WriteString(r.render())
		cursor = r.end
	}
	if sp.End > cursor {
		sb.WriteString(m.Encode(source[cursor:sp.End]))
	}
	return sb.String()
}

func sortRegions(regions []markupRegion) {
	for i := 1; i < len(regions); i++ {
		for j := i; j > 0 && regions[j].start < regions[j-1].start; j-- {
			regions[j], regions[j-1] = regions[j-1], regions[j]
		}
	}
}

// typesOf returns the Type-valued productions a construct directly owns,
// for markup purposes.
func typesOf(c construct.Construct) []*production.Type {
	switch v := c.(type) {
	case *construct.Const:
		return []*production.Type{v.Type}
	case *construct.Typedef:
		return []*production.Type{v.Type}
	case *construct.Attribute:
		return []*production.Type{v.Type}
	case *construct.Operation:
		return []*production.Type{v.ReturnType}
	case *construct.DictMember:
		return []*production.Type{v.Type}
	case *construct.Argument:
		return []*production.Type{v.Type}
	case *construct.Iterable:
		return []*production.Type{v.KeyType, v.ValueType}
	case *construct.Maplike:
		return []*production.Type{v.KeyType, v.ValueType}
	case *construct.Setlike:
		return []*production.Type{v.ValueType}
	case *construct.Callback:
		return []*production.Type{v.ReturnType}
	}
	return nil
}

func enumValuesOf(c construct.Construct) []*production.EnumValue {
	e, ok := c.(*construct.Enum)
	if !ok || e.Values == nil {
		return nil
	}
	return e.Values.Values
}

// markType recursively marks up a Type production, descending into its
// inner SingleType/UnionType node and wrapping each leaf in the marker
// method matching its kind. Since every production stores an absolute span
// into the same source, gaps between a node and its children (generic-type
// angle brackets, union "or" keywords, the nullability "?") are Encode-d
// verbatim rather than reconstructed.
func markType(t *production.Type, owner construct.Construct, source string, m Marker) string {
	sp := t.Span()
	text := source[sp.Start:sp.End]
	prefix, suffix := m.Type(text, owner)
	inner := markProductionChildren(t, owner, source, m)
	return wrap(prefix, inner, suffix)
}

// markProductionChildren renders p's own span by interleaving Encode-d gaps
// with the recursively marked text of each of p.Children(), in source
// order.
func markProductionChildren(p production.Production, owner construct.Construct, source string, m Marker) string {
	sp := p.Span()
	children := p.Children()
	var sb strings.Builder
	cursor := sp.Start
	for _, ch := range children {
		if ch == nil {
			continue
		}
		chSpan := ch.Span()
		if chSpan.Start > cursor {
			sb.WriteString(m.Encode(source[cursor:chSpan.Start]))
		}
		sb.WriteString(markProduction(ch, owner, source, m))
		cursor = chSpan.End
	}
	if sp.End > cursor {
		sb.WriteString(m.Encode(source[cursor:sp.End]))
	}
	return sb.String()
}

// markProduction dispatches a single production node to the Marker method
// matching its Kind, falling back to an unwrapped recursive render for
// productions with no dedicated marker method (ArgumentList, Argument,
// Default, ConstValue, Inheritance, ExtendedAttributeList, ExtendedAttribute,
// Symbol, IgnoreInOut).
func markProduction(p production.Production, owner construct.Construct, source string, m Marker) string {
	text := p.Serialize()
	switch p.Kind() {
	case production.KindType:
		return markType(p.(*production.Type), owner, source, m)
	case production.KindPrimitiveType:
		prefix, suffix := m.PrimitiveType(text, owner)
		return wrap(prefix, text, suffix)
	case production.KindStringType:
		prefix, suffix := m.StringType(text, owner)
		return wrap(prefix, text, suffix)
	case production.KindBufferType:
		prefix, suffix := m.BufferType(text, owner)
		return wrap(prefix, text, suffix)
	case production.KindObjectType:
		prefix, suffix := m.ObjectType(text, owner)
		return wrap(prefix, text, suffix)
	case production.KindTypeIdentifier:
		prefix, suffix := m.TypeName(text, owner)
		return wrap(prefix, text, suffix)
	case production.KindGenericType:
		g := p.(*production.GenericType)
		keywordStart := g.Span().Start
		keywordEnd := keywordStart + len(g.Keyword)
		prefix, suffix := m.Keyword(g.Keyword, owner)
		keyword := wrap(prefix, g.Keyword, suffix)
		rest := markProductionChildrenFrom(g, keywordEnd, owner, source, m)
		return keyword + rest
	default:
		return markProductionChildren(p, owner, source, m)
	}
}

// markProductionChildrenFrom is markProductionChildren restricted to the
// span starting at from (used for GenericType, whose own span begins with
// a keyword already rendered separately).
func markProductionChildrenFrom(p production.Production, from int, owner construct.Construct, source string, m Marker) string {
	sp := p.Span()
	children := p.Children()
	var sb strings.Builder
	cursor := from
	for _, ch := range children {
		if ch == nil {
			continue
		}
		chSpan := ch.Span()
		if chSpan.Start > cursor {
			sb.WriteString(m.Encode(source[cursor:chSpan.Start]))
		}
		sb.WriteString(markProduction(ch, owner, source, m))
		cursor = chSpan.End
	}
	if sp.End > cursor {
		sb.WriteString(m.Encode(source[cursor:sp.End]))
	}
	return sb.String()
}
