package parser

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestFindScenario1 is SPEC_FULL.md §8 scenario 1: a single attribute member
// is reachable by its full path, and reports the right idl_type.
func TestFindScenario1(t *testing.T) {
	p := New("interface Foo { attribute long bar; };", nil)
	c, ok := p.Find("Foo/bar")
	require.True(t, ok)
	require.Equal(t, "attribute", string(c.IDLType()))
	require.Equal(t, "bar", *c.Name())
}

// TestFindScenario2 is scenario 2: a legacy [Constructor(...)] extended
// attribute is lifted into a first-class Constructor member, first in the
// interface's member list, with its argument list intact.
func TestFindScenario2(t *testing.T) {
	p := New("[Constructor(long x)] interface Foo { };", nil)
	iface, ok := p.ByName("Foo")
	require.True(t, ok)
	members := iface.Members()
	require.NotEmpty(t, members)
	require.Equal(t, "constructor", string(members[0].IDLType()))

	ctorArgs := members[0].Members()
	require.Len(t, ctorArgs, 1)
	require.Equal(t, "x", *ctorArgs[0].Name())

	// The legacy extended attribute itself no longer surfaces as an
	// ExtendedAttribute on Foo, as the Interface doc comment describes: it
	// was consumed entirely into the Constructor member.
	for _, ea := range iface.ExtendedAttributes() {
		require.NotEqual(t, "Constructor", *ea.Name())
	}
}

// TestFindScenario3 is scenario 3: method_names enumerates every legal
// argument-count variant, full form first.
func TestFindScenario3(t *testing.T) {
	p := New("interface Foo { void draw(long x, optional long y); };", nil)
	c, ok := p.Find("Foo/draw")
	require.True(t, ok)
	require.Equal(t, []string{"draw(x, y)", "draw(x)"}, c.MethodNames())
}

// TestFindScenario4 is scenario 4: dictionary inheritance, a required
// member with no default, and a member with a default value.
func TestFindScenario4(t *testing.T) {
	p := New(`dictionary D : Base { required long x; DOMString y = "hi"; };`, nil)
	d, ok := p.ByName("D")
	require.True(t, ok)
	require.Equal(t, "dictionary", string(d.IDLType()))

	x, ok := FindMember(d, "x")
	require.True(t, ok)
	y, ok := FindMember(d, "y")
	require.True(t, ok)
	require.Equal(t, "dict-member", string(x.IDLType()))
	require.Equal(t, "dict-member", string(y.IDLType()))
}

// TestFindScenario5 is scenario 5: a function-typedef callback has no
// nested interface, and its return type and single argument are reachable.
func TestFindScenario5(t *testing.T) {
	p := New("callback C = void (long x);", nil)
	c, ok := p.ByName("C")
	require.True(t, ok)
	require.Equal(t, "callback", string(c.IDLType()))

	arg, ok := FindArgument(c, "x", false)
	require.True(t, ok)
	require.Equal(t, "argument", string(arg.IDLType()))
}

func TestFindAllReturnsEveryMatchAtShallowestDepth(t *testing.T) {
	p := New(`interface Foo {
  const long bar = 1;
  attribute long bar2;
  void bar3();
};`, nil)
	all := p.FindAll("Foo/const")
	require.Len(t, all, 1)
	require.Equal(t, "bar", *all[0].Name())
}

func TestFindReturnsFalseWhenPathDoesNotResolve(t *testing.T) {
	p := New("interface Foo { attribute long bar; };", nil)
	_, ok := p.Find("Foo/nope")
	require.False(t, ok)
	_, ok = p.Find("Nope")
	require.False(t, ok)
}

func TestNormalizedMethodName(t *testing.T) {
	p := New("interface Foo { void draw(long x, optional long y); };", nil)

	full, ok := p.NormalizedMethodName("draw", "Foo")
	require.True(t, ok)
	require.Equal(t, "draw(x, y)", full)

	names, ok := p.NormalizedMethodNames("draw", "Foo")
	require.True(t, ok)
	require.Equal(t, []string{"draw(x, y)", "draw(x)"}, names)

	// Already-formatted method-call syntax normalizes its own spacing
	// rather than searching.
	reformatted, ok := p.NormalizedMethodName("draw(x,y)", "")
	require.True(t, ok)
	require.Equal(t, "draw(x, y)", reformatted)
}
