package construct

import (
	"github.com/webidlgo/webidl/production"
)

// ExtendedAttribute is the construct-layer wrapper around a single
// production.ExtendedAttribute entry, giving it a name and a place in the
// idl_type closed set so it can participate in find/markup like any other
// construct, per the data model's closed set including "extended-attribute".
type ExtendedAttribute struct {
	Base
	Production *production.ExtendedAttribute
}

func (e *ExtendedAttribute) Members() []Construct    { return nil }
func (e *ExtendedAttribute) ComplexityFactor() int    { return complexityOf(e) }

// wrapExtendedAttributes converts a parsed production.ExtendedAttributeList
// (which may be nil, meaning "no attributes") into the construct-layer
// slice every Construct's ExtendedAttributes() exposes.
func wrapExtendedAttributes(l *production.ExtendedAttributeList, source string) []*ExtendedAttribute {
	if l == nil {
		return nil
	}
	out := make([]*ExtendedAttribute, 0, len(l.Items))
	for _, item := range l.Items {
		name := item.Name
		var namePtr *string
		if name != "" {
			namePtr = &name
		}
		ea := &ExtendedAttribute{
			Base: Base{
				idlType: TypeExtendedAttribute,
				name:    namePtr,
				span:    item.Span(),
				source:  source,
			},
			Production: item,
		}
		out = append(out, ea)
	}
	return out
}
