package construct

import (
	"github.com/webidlgo/webidl/production"
)

// Argument is the construct-layer wrapper around a production.Argument: a
// named entity so an operation's parameters participate in find_argument
// queries.
type Argument struct {
	Base
	Production *production.Argument
	Optional   bool
	Variadic   bool
	Type       *production.Type
	Default    *production.Default
}

func (a *Argument) Members() []Construct { return nil }
func (a *Argument) ComplexityFactor() int { return complexityOf(a) }

// wrapArguments converts a parsed production.ArgumentList (nil meaning "no
// parens at all", as for a bare stringifier) into the construct-layer slice
// owned by Operation/Constructor/Callback. A legacy "in"/"out" direction
// keyword on an argument is a LegacyAccepted toleration: the keyword is
// already discarded from Argument's semantic fields by the production
// layer, and here it is surfaced through r's Note callback.
func wrapArguments(l *production.ArgumentList, source string, r Reporter) []*Argument {
	if l == nil {
		return nil
	}
	r = reporterOrNop(r)
	out := make([]*Argument, 0, len(l.Items))
	for _, item := range l.Items {
		if item.Legacy != nil {
			r.Note("legacy argument direction keyword %q accepted and discarded on %q", item.Legacy.Keyword, item.Name)
		}
		name := item.Name
		out = append(out, &Argument{
			Base: Base{
				idlType:  TypeArgument,
				name:     &name,
				extAttrs: wrapExtendedAttributes(item.ExtendedAttributes, source),
				span:     item.Span(),
				source:   source,
			},
			Production: item,
			Optional:   item.Optional,
			Variadic:   item.Variadic,
			Type:       item.Type,
			Default:    item.Default,
		})
	}
	return out
}

func argumentsAsConstructs(args []*Argument) []Construct {
	out := make([]Construct, len(args))
	for i, a := range args {
		out[i] = a
	}
	return out
}
