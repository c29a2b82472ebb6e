// Package markup implements the markup driver: it walks a parsed construct
// tree in source order and lets a caller-supplied Marker wrap each named
// syntactic element (construct, name, type, primitive type, buffer type,
// string type, object type, type name, keyword, enum value) in arbitrary
// prefix/suffix text, while every other byte of the original input passes
// through Marker.Encode unchanged.
package markup

import "github.com/webidlgo/webidl/construct"

// Marker receives one callback per named syntactic element the driver
// recognizes, plus Encode for everything else. Every method is optional:
// embed NoopMarker to default unimplemented ones to (nil, nil) and Encode to
// the identity, matching the "every marker method is optional" contract.
type Marker interface {
	Construct(text string, c construct.Construct) (prefix, suffix *string)
	Name(text string, c construct.Construct) (prefix, suffix *string)
	Type(text string, c construct.Construct) (prefix, suffix *string)
	PrimitiveType(text string, c construct.Construct) (prefix, suffix *string)
	BufferType(text string, c construct.Construct) (prefix, suffix *string)
	StringType(text string, c construct.Construct) (prefix, suffix *string)
	ObjectType(text string, c construct.Construct) (prefix, suffix *string)
	TypeName(text string, c construct.Construct) (prefix, suffix *string)
	Keyword(text string, c construct.Construct) (prefix, suffix *string)
	EnumValue(text string, c construct.Construct) (prefix, suffix *string)
	Encode(text string) string
}

// NoopMarker implements Marker with every element method returning
// (nil, nil) and Encode as the identity. Embed it in a caller's marker type
// to get defaults for the methods that marker doesn't override — Go
// embedding standing in for the spec's duck-typed "every method optional"
// contract.
type NoopMarker struct{}

func (NoopMarker) Construct(string, construct.Construct) (*string, *string)     { return nil, nil }
func (NoopMarker) Name(string, construct.Construct) (*string, *string)          { return nil, nil }
func (NoopMarker) Type(string, construct.Construct) (*string, *string)          { return nil, nil }
func (NoopMarker) PrimitiveType(string, construct.Construct) (*string, *string) { return nil, nil }
func (NoopMarker) BufferType(string, construct.Construct) (*string, *string)    { return nil, nil }
func (NoopMarker) StringType(string, construct.Construct) (*string, *string)    { return nil, nil }
func (NoopMarker) ObjectType(string, construct.Construct) (*string, *string)    { return nil, nil }
func (NoopMarker) TypeName(string, construct.Construct) (*string, *string)      { return nil, nil }
func (NoopMarker) Keyword(string, construct.Construct) (*string, *string)       { return nil, nil }
func (NoopMarker) EnumValue(string, construct.Construct) (*string, *string)     { return nil, nil }
func (NoopMarker) Encode(text string) string                                   { return text }
