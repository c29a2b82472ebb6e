package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/webidlgo/webidl/construct"
	"github.com/webidlgo/webidl/markup"
)

// recordingUI implements UserInterface, counting Warn/Note invocations for
// assertions that a diagnostic was (or was not) reported, per SPEC_FULL.md
// §4.3's recovery policy and §8 scenario 6's "warn was invoked once".
type recordingUI struct {
	warns, notes []string
}

func (r *recordingUI) Warn(format string, args ...interface{}) {
	r.warns = append(r.warns, format)
}

func (r *recordingUI) Note(format string, args ...interface{}) {
	r.notes = append(r.notes, format)
}

// noopMarker is a markup.Marker whose every method returns the identity, for
// the markup-identity invariant.
type noopMarker struct {
	markup.NoopMarker
}

// TestMarkupIdentity verifies SPEC_FULL.md §8's markup identity invariant:
// with a no-op marker, markup(T) == T.
func TestMarkupIdentity(t *testing.T) {
	texts := []string{
		"interface Foo { attribute long bar; };",
		"[Constructor(long x)] interface Foo { };",
		"interface Foo { void draw(long x, optional long y); };",
		`dictionary D : Base { required long x; DOMString y = "hi"; };`,
		"callback C = void (long x);",
		"interface Foo { garbage; attribute long bar; };",
		`enum Color { "red", "green", "blue" };`,
		"interface Foo { iterable<long>; };",
		"interface Foo { readonly maplike<DOMString, long>; };",
	}
	for _, text := range texts {
		p := New(text, nil)
		got := markup.Drive(p.Constructs(), text, noopMarker{})
		require.Equal(t, text, got, text)
	}
}

// TestNameReachability verifies SPEC_FULL.md §8's name reachability
// invariant: for every named construct produced by parsing, Find resolves
// it by its own name (searched, for a nested member, as "<parent>/<name>").
func TestNameReachability(t *testing.T) {
	text := `interface Foo {
  const long answer = 42;
  attribute long bar;
  void draw(long x, optional long y);
};
dictionary D { long z; };`
	p := New(text, nil)

	var walk func(path string, c construct.Construct)
	walk = func(path string, c construct.Construct) {
		if c.Name() != nil {
			full := *c.Name()
			if path != "" {
				full = path + "/" + *c.Name()
			}
			found, ok := p.Find(full)
			require.True(t, ok, full)
			require.Equal(t, c.IDLType(), found.IDLType(), full)
			path = full
		}
		for _, m := range c.Members() {
			walk(path, m)
		}
	}
	for _, c := range p.Constructs() {
		walk("", c)
	}
}

// TestMethodNameCanonicality verifies SPEC_FULL.md §8's method-name
// canonicality invariant: method_names()[0] == MethodName(), and every
// element is a legal prefix-expansion of the full form.
func TestMethodNameCanonicality(t *testing.T) {
	p := New("interface Foo { void draw(long x, optional long y, optional long z); };", nil)
	c, ok := p.Find("Foo/draw")
	require.True(t, ok)

	names := c.MethodNames()
	require.NotEmpty(t, names)
	require.Equal(t, *c.MethodName(), names[0])
	require.Equal(t, []string{"draw(x, y, z)", "draw(x, y)", "draw(x)"}, names)
}

// TestScenario6WarnAndRecovery is SPEC_FULL.md §8 scenario 6: a malformed
// member becomes a SyntaxError, the well-formed member after it still
// parses, warn is invoked exactly once, and the whole input round-trips.
func TestScenario6WarnAndRecovery(t *testing.T) {
	text := "interface Foo { garbage; attribute long bar; };"
	ui := &recordingUI{}
	p := New(text, ui)

	require.Len(t, ui.warns, 1)
	require.Empty(t, ui.notes)
	require.Equal(t, text, p.Serialize())

	iface, ok := p.ByName("Foo")
	require.True(t, ok)
	members := iface.Members()
	require.Len(t, members, 2)
	require.Equal(t, "unknown", string(members[0].IDLType()))
	require.Equal(t, "attribute", string(members[1].IDLType()))

	var joined strings.Builder
	joined.WriteString(members[0].Serialize())
	joined.WriteString(" ")
	require.Contains(t, text, members[0].Serialize())
}

// TestLegacyFormsInvokeNote verifies the LegacyAccepted toleration policy
// (SPEC_FULL.md §4.3/§7): legacy in/out argument keywords, bare
// "implements", and legacy [NamedConstructor=...] all invoke Note rather
// than Warn, and never abort parsing.
func TestLegacyFormsInvokeNote(t *testing.T) {
	text := `[NamedConstructor=Audio(in DOMString src)]
interface HTMLAudioElement {
  void play();
};

HTMLAudioElement implements EventTarget;`
	ui := &recordingUI{}
	p := New(text, ui)

	require.Empty(t, ui.warns)
	require.GreaterOrEqual(t, len(ui.notes), 3) // NamedConstructor, "in" keyword, implements
	require.Equal(t, text, p.Serialize())

	iface, ok := p.ByName("HTMLAudioElement")
	require.True(t, ok)
	members := iface.Members()
	require.Equal(t, "constructor", string(members[0].IDLType()))

	impl, ok := p.At(1)
	require.True(t, ok)
	require.Equal(t, "implements", string(impl.IDLType()))
}

func TestBoundaryEmptyAndWhitespaceInput(t *testing.T) {
	p := New("", nil)
	require.Equal(t, 0, p.Len())
	require.Equal(t, "", p.Serialize())

	ws := "   \n\t  "
	p2 := New(ws, nil)
	require.Equal(t, 0, p2.Len())
	require.Equal(t, ws, p2.Serialize())
}
