package production

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webidlgo/webidl/token"
)

func parseTypeText(t *testing.T, text string) (*Type, bool) {
	t.Helper()
	s := token.NewStream(text)
	return ParseType(s, text)
}

func TestParseTypePrimitive(t *testing.T) {
	cases := []string{"long", "unsigned long long", "boolean", "double", "float"}
	for _, c := range cases {
		typ, ok := parseTypeText(t, c)
		require.True(t, ok, c)
		require.Equal(t, c, typ.Serialize())
		_, isPrim := typ.Inner.(*PrimitiveType)
		require.True(t, isPrim, c)
	}
}

func TestParseTypeStringBufferObject(t *testing.T) {
	require.IsType(t, &StringType{}, mustInner(t, "DOMString"))
	require.IsType(t, &BufferType{}, mustInner(t, "Uint8Array"))
	require.IsType(t, &ObjectType{}, mustInner(t, "any"))
	require.IsType(t, &ObjectType{}, mustInner(t, "object"))
}

func mustInner(t *testing.T, text string) Production {
	t.Helper()
	typ, ok := parseTypeText(t, text)
	require.True(t, ok, text)
	return typ.Inner
}

func TestParseTypeIdentifier(t *testing.T) {
	typ, ok := parseTypeText(t, "Node")
	require.True(t, ok)
	ident, isIdent := typ.Inner.(*TypeIdentifier)
	require.True(t, isIdent)
	require.Equal(t, "Node", ident.Name)
}

func TestParseTypeNullable(t *testing.T) {
	typ, ok := parseTypeText(t, "DOMString?")
	require.True(t, ok)
	require.True(t, typ.Nullable)
	require.Equal(t, "DOMString?", typ.Serialize())
}

func TestParseGenericType(t *testing.T) {
	typ, ok := parseTypeText(t, "sequence<long>")
	require.True(t, ok)
	g, isGeneric := typ.Inner.(*GenericType)
	require.True(t, isGeneric)
	require.Equal(t, "sequence", g.Keyword)
	require.Len(t, g.Args, 1)

	typ, ok = parseTypeText(t, "record<DOMString, long>")
	require.True(t, ok)
	g, isGeneric = typ.Inner.(*GenericType)
	require.True(t, isGeneric)
	require.Equal(t, "record", g.Keyword)
	require.Len(t, g.Args, 2)
}

func TestParseUnionType(t *testing.T) {
	typ, ok := parseTypeText(t, "(long or DOMString)")
	require.True(t, ok)
	u, isUnion := typ.Inner.(*UnionType)
	require.True(t, isUnion)
	require.Len(t, u.Members, 2)
}

func TestParseUnionTypeRequiresTwoMembers(t *testing.T) {
	_, ok := parseTypeText(t, "(long)")
	require.False(t, ok)
}

func TestParseTypeRoundTrip(t *testing.T) {
	cases := []string{
		"long",
		" long",
		"sequence<long>",
		"(long or DOMString)?",
		"Promise<void>",
	}
	for _, c := range cases {
		s := token.NewStream(c)
		typ, ok := ParseType(s, c)
		require.True(t, ok, c)
		require.Equal(t, c, typ.Serialize(), c)
	}
}
