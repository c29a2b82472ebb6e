package construct

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webidlgo/webidl/token"
)

// TestComplexityAdditivity verifies SPEC_FULL.md §8's complexity additivity
// invariant directly against complexityOf: a construct's factor is always
// its own intrinsic weight of 1 plus the sum of its children's factors, so
// the total over a parsed file's top-level constructs equals the sum of
// every construct's own factor anywhere in the tree, counted once per node.
func TestComplexityAdditivity(t *testing.T) {
	text := `interface Foo {
  attribute long bar;
  void draw(long x, optional long y);
};`
	s := token.NewStream(text)
	out := ParseTopLevel(s, text, nil)
	require.Len(t, out, 1)

	iface := out[0]
	require.Equal(t, "interface", string(iface.IDLType()))

	var sumMembers int
	for _, m := range iface.Members() {
		sumMembers += m.ComplexityFactor()
	}
	require.Equal(t, 1+sumMembers, iface.ComplexityFactor())

	// The operation's own factor must equal 1 plus the sum of its
	// arguments' factors, recursively.
	var op Construct
	for _, m := range iface.Members() {
		if mn := m.MethodName(); mn != nil && *mn == "draw(x, y)" {
			op = m
		}
	}
	require.NotNil(t, op)
	var sumArgs int
	for _, a := range op.Members() {
		sumArgs += a.ComplexityFactor()
	}
	require.Equal(t, 1+sumArgs, op.ComplexityFactor())

	// Every leaf argument has no children, so its factor is exactly 1.
	for _, a := range op.Members() {
		require.Equal(t, 1, a.ComplexityFactor())
	}
}

// TestComplexityAdditivityAcrossParser sums complexity two ways: the total
// reported across the construct list, versus a manual top-level sum, to
// pin down parser.Parser.ComplexityFactor's contract without importing the
// parser package (which would create an import cycle from this test file).
func TestComplexityAdditivityAcrossParser(t *testing.T) {
	text := `dictionary D : Base {
  required long x;
  DOMString y = "hi";
};
callback C = void (long x);`
	s := token.NewStream(text)
	out := ParseTopLevel(s, text, nil)
	require.Len(t, out, 2)

	var total int
	for _, c := range out {
		total += c.ComplexityFactor()
	}
	require.Equal(t, out[0].ComplexityFactor()+out[1].ComplexityFactor(), total)
}
