// Package construct implements the named, navigable entities a WebIDL file
// is made of: top-level declarations (Interface, Dictionary, Callback, Enum,
// Typedef, Implements, Includes) and the members they own (Const,
// Attribute, Operation, Argument, Iterable, Maplike, Setlike, Stringifier,
// Serializer, DictMember, ExtendedAttribute, SyntaxError).
//
// Constructs are a second tagged variant, distinct from production.
// Production: a Construct is named and participates in search, a Production
// is not. A Const, for example, *has a* production.Type and a
// production.ConstValue; it does not extend them.
package construct

import "github.com/webidlgo/webidl/token"

// IDLType tags the construct kind, drawn from the closed set in the data
// model: const, enum, typedef, interface, constructor, attribute, iterable,
// maplike, setlike, stringifier, serializer, method, argument, dictionary,
// dict-member, callback, implements, includes, extended-attribute, unknown.
type IDLType string

const (
	TypeConst              IDLType = "const"
	TypeEnum               IDLType = "enum"
	TypeTypedef            IDLType = "typedef"
	TypeInterface          IDLType = "interface"
	TypeConstructor        IDLType = "constructor"
	TypeAttribute          IDLType = "attribute"
	TypeIterable           IDLType = "iterable"
	TypeMaplike            IDLType = "maplike"
	TypeSetlike            IDLType = "setlike"
	TypeStringifier        IDLType = "stringifier"
	TypeSerializer         IDLType = "serializer"
	TypeMethod             IDLType = "method"
	TypeArgument           IDLType = "argument"
	TypeDictionary         IDLType = "dictionary"
	TypeDictMember         IDLType = "dict-member"
	TypeCallback           IDLType = "callback"
	TypeImplements         IDLType = "implements"
	TypeIncludes           IDLType = "includes"
	TypeExtendedAttribute  IDLType = "extended-attribute"
	TypeUnknown            IDLType = "unknown"
)

// Construct is the interface implemented by every named top-level or member
// entity. Implementations embed Base for the common fields and override
// Members/MethodName/MethodNames/ComplexityFactor where the description in
// SPEC_FULL.md requires it.
type Construct interface {
	IDLType() IDLType
	Name() *string
	Parent() (Construct, bool)
	HasParent() bool
	ExtendedAttributes() []*ExtendedAttribute
	Span() token.Span
	Serialize() string
	ComplexityFactor() int

	// MethodName returns the canonical "name(arg, ...)" form for a method
	// (Operation or Constructor) construct, nil otherwise.
	MethodName() *string
	// MethodNames returns every normalized variant for a method construct,
	// full form first; nil for non-method constructs.
	MethodNames() []string

	// Members returns this construct's direct children in source order, for
	// find/markup traversal. Leaves return nil.
	Members() []Construct
}

// Base is embedded by every concrete Construct type. It is never used
// directly by callers.
type Base struct {
	idlType  IDLType
	name     *string
	extAttrs []*ExtendedAttribute
	span     token.Span
	source   string
	parent   Construct
	hasParent bool
}

func (b *Base) IDLType() IDLType                          { return b.idlType }
func (b *Base) Name() *string                             { return b.name }
func (b *Base) ExtendedAttributes() []*ExtendedAttribute { return b.extAttrs }
func (b *Base) Span() token.Span                          { return b.span }
func (b *Base) HasParent() bool                           { return b.hasParent }

func (b *Base) Parent() (Construct, bool) {
	return b.parent, b.hasParent
}

func (b *Base) Serialize() string {
	if b.span.Start < 0 || b.span.End > len(b.source) || b.span.Start > b.span.End {
		return ""
	}
	return b.source[b.span.Start:b.span.End]
}

// MethodName and MethodNames default to nil: only Operation and Constructor
// override them.
func (b *Base) MethodName() *string   { return nil }
func (b *Base) MethodNames() []string { return nil }

// setParent is called once by the containing construct at assembly time, per
// the data model's lifecycle note: a Construct is mutated only during its
// own construction, and its parent back-link is set by its container.
func setParent(child, parent Construct) {
	switch c := child.(type) {
	case *Interface:
		c.parent, c.hasParent = parent, true
	case *Dictionary:
		c.parent, c.hasParent = parent, true
	case *Callback:
		c.parent, c.hasParent = parent, true
	case *Enum:
		c.parent, c.hasParent = parent, true
	case *Typedef:
		c.parent, c.hasParent = parent, true
	case *Const:
		c.parent, c.hasParent = parent, true
	case *Attribute:
		c.parent, c.hasParent = parent, true
	case *Operation:
		c.parent, c.hasParent = parent, true
	case *Constructor:
		c.parent, c.hasParent = parent, true
	case *Argument:
		c.parent, c.hasParent = parent, true
	case *Iterable:
		c.parent, c.hasParent = parent, true
	case *Maplike:
		c.parent, c.hasParent = parent, true
	case *Setlike:
		c.parent, c.hasParent = parent, true
	case *Stringifier:
		c.parent, c.hasParent = parent, true
	case *Serializer:
		c.parent, c.hasParent = parent, true
	case *DictMember:
		c.parent, c.hasParent = parent, true
	case *Implements:
		c.parent, c.hasParent = parent, true
	case *Includes:
		c.parent, c.hasParent = parent, true
	case *ExtendedAttribute:
		c.parent, c.hasParent = parent, true
	case *SyntaxError:
		c.parent, c.hasParent = parent, true
	}
}

// attachParent sets parent on every construct in members, then recurses so
// that each member's own members (an operation's or constructor's
// arguments, for example) link back to that member. It is called by each
// container's ParseXxx once its full member list is known.
func attachParent(parent Construct, members []Construct) {
	for _, m := range members {
		setParent(m, parent)
		attachParent(m, m.Members())
	}
}

// extendSpanEnd grows a top-level construct's span to end at a later offset.
// ParseXxx constructors fix a construct's span before its caller consumes the
// statement's trailing ";", since ownership of that token is the top-level
// dispatcher's call, not the construct's own — this is how the dispatcher
// folds the ";" (and any trivia before it) back into the construct's span so
// that concatenating every top-level construct's Serialize() still
// reproduces the input byte-for-byte.
func extendSpanEnd(c Construct, end int) {
	switch v := c.(type) {
	case *Interface:
		v.span.End = end
	case *Dictionary:
		v.span.End = end
	case *Callback:
		v.span.End = end
	case *Enum:
		v.span.End = end
	case *Typedef:
		v.span.End = end
	case *Implements:
		v.span.End = end
	case *Includes:
		v.span.End = end
	case *SyntaxError:
		v.span.End = end
	}
}

// extendSpanStart grows a construct's span to start at an earlier offset.
// ParseXxx constructors fix a construct's span beginning at its own defining
// keyword, since ownership of any leading "[ExtendedAttributeList]" belongs
// to the caller that peeked and parsed it before dispatching to the right
// ParseXxx — this is how that caller folds the bracketed list (and its
// leading trivia) back into the produced construct's span so that
// concatenating every top-level or member construct's Serialize() still
// reproduces the input byte-for-byte. Applies at both the top-level
// dispatcher (construct/toplevel.go) and the interface/dictionary member
// dispatchers, and to Implements/Includes even though neither stores the
// attributes semantically (attributes before those statements are attached
// to no construct at all) — span ownership of the
// consumed bytes still has to go somewhere for the round-trip invariant to
// hold, and the statement that was actually parsed from that position is it.
func extendSpanStart(c Construct, start int) {
	switch v := c.(type) {
	case *Interface:
		v.span.Start = start
	case *Dictionary:
		v.span.Start = start
	case *Callback:
		v.span.Start = start
	case *Enum:
		v.span.Start = start
	case *Typedef:
		v.span.Start = start
	case *Implements:
		v.span.Start = start
	case *Includes:
		v.span.Start = start
	case *Const:
		v.span.Start = start
	case *Attribute:
		v.span.Start = start
	case *Operation:
		v.span.Start = start
	case *Constructor:
		v.span.Start = start
	case *Iterable:
		v.span.Start = start
	case *Maplike:
		v.span.Start = start
	case *Setlike:
		v.span.Start = start
	case *Stringifier:
		v.span.Start = start
	case *Serializer:
		v.span.Start = start
	case *DictMember:
		v.span.Start = start
	case *SyntaxError:
		v.span.Start = start
	}
}

// complexityOf implements the complexity-additivity invariant: a
// construct's factor is the sum of its children's factors plus its own
// intrinsic weight of 1.
func complexityOf(c Construct) int {
	total := 1
	for _, m := range c.Members() {
		total += m.ComplexityFactor()
	}
	return total
}
