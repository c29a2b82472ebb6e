package parser

import (
	"strings"

	"github.com/webidlgo/webidl/construct"
)

// splitPath splits a find path on both "/" and "." into segments.
func splitPath(path string) []string {
	return strings.FieldsFunc(path, func(r rune) bool {
		return r == '/' || r == '.'
	})
}

// matchesSegment reports whether c matches one path segment: its name, its
// method name, any entry of its method names, or its idl_type.
func matchesSegment(c construct.Construct, segment string) bool {
	if c.Name() != nil && *c.Name() == segment {
		return true
	}
	if mn := c.MethodName(); mn != nil && *mn == segment {
		return true
	}
	for _, n := range c.MethodNames() {
		if n == segment {
			return true
		}
	}
	return string(c.IDLType()) == segment
}

// bfsFirst returns the first construct matching segment, searching roots
// breadth-first: every construct at one depth is checked before any
// construct at the next.
func bfsFirst(roots []construct.Construct, segment string) (construct.Construct, bool) {
	queue := roots
	for len(queue) > 0 {
		for _, c := range queue {
			if matchesSegment(c, segment) {
				return c, true
			}
		}
		var next []construct.Construct
		for _, c := range queue {
			next = append(next, c.Members()...)
		}
		queue = next
	}
	return nil, false
}

// bfsAll returns every construct matching segment at the first breadth-first
// depth where any match occurs.
func bfsAll(roots []construct.Construct, segment string) []construct.Construct {
	queue := roots
	for len(queue) > 0 {
		var matches []construct.Construct
		for _, c := range queue {
			if matchesSegment(c, segment) {
				matches = append(matches, c)
			}
		}
		if len(matches) > 0 {
			return matches
		}
		var next []construct.Construct
		for _, c := range queue {
			next = append(next, c.Members()...)
		}
		queue = next
	}
	return nil
}

// Find splits path on "/" and ".", matches segment 0 breadth-first across
// the parser's top-level constructs, then matches each subsequent segment
// breadth-first against the previously matched construct's members.
// Returns the first match, or (nil, false).
func (p *Parser) Find(path string) (construct.Construct, bool) {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil, false
	}
	roots := p.tree
	var current construct.Construct
	for i, seg := range segments {
		c, ok := bfsFirst(roots, seg)
		if !ok {
			return nil, false
		}
		current = c
		if i < len(segments)-1 {
			roots = c.Members()
		}
	}
	return current, true
}

// FindAll is Find, but every construct matching the terminal segment is
// returned rather than only the first.
func (p *Parser) FindAll(path string) []construct.Construct {
	segments := splitPath(path)
	if len(segments) == 0 {
		return nil
	}
	roots := p.tree
	for i := 0; i < len(segments)-1; i++ {
		c, ok := bfsFirst(roots, segments[i])
		if !ok {
			return nil
		}
		roots = c.Members()
	}
	return bfsAll(roots, segments[len(segments)-1])
}

// FindMember returns the direct member of c named name.
func FindMember(c construct.Construct, name string) (construct.Construct, bool) {
	for _, m := range c.Members() {
		if m.Name() != nil && *m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// FindMethod returns the direct member of c whose method name or any
// normalized variant equals name.
func FindMethod(c construct.Construct, name string) (construct.Construct, bool) {
	for _, m := range c.Members() {
		if mn := m.MethodName(); mn != nil && *mn == name {
			return m, true
		}
		for _, n := range m.MethodNames() {
			if n == name {
				return m, true
			}
		}
	}
	return nil, false
}

// FindArgument returns the direct argument member of c named name. If
// descend is true and no direct argument matches, FindArgument also looks
// inside each direct member's own members (e.g. to reach the arguments of a
// callback interface's methods).
func FindArgument(c construct.Construct, name string, descend bool) (construct.Construct, bool) {
	for _, m := range c.Members() {
		if m.IDLType() == construct.TypeArgument && m.Name() != nil && *m.Name() == name {
			return m, true
		}
	}
	if !descend {
		return nil, false
	}
	for _, m := range c.Members() {
		if a, ok := FindArgument(m, name, true); ok {
			return a, true
		}
	}
	return nil, false
}

// parseAsMethodCall attempts to parse name as "identifier(arg, arg, ...)"
// and returns its canonical reformatting. Returns ("", false) if name has
// no parenthesized argument list.
func parseAsMethodCall(name string) (string, bool) {
	open := strings.IndexByte(name, '(')
	if open < 0 || !strings.HasSuffix(name, ")") {
		return "", false
	}
	identifier := strings.TrimSpace(name[:open])
	if identifier == "" {
		return "", false
	}
	inner := name[open+1 : len(name)-1]
	var argNames []string
	if strings.TrimSpace(inner) != "" {
		for _, a := range strings.Split(inner, ",") {
			argNames = append(argNames, strings.TrimSpace(a))
		}
	}
	return identifier + "(" + strings.Join(argNames, ", ") + ")", true
}

// searchMethod finds a method construct (Operation or Constructor) named
// name, breadth-first. If interfaceName is non-empty, the search is
// restricted to that top-level construct's members.
func (p *Parser) searchMethod(name, interfaceName string) (construct.Construct, bool) {
	roots := p.tree
	if interfaceName != "" {
		iface, ok := p.ByName(interfaceName)
		if !ok {
			return nil, false
		}
		roots = iface.Members()
	}

	queue := roots
	for len(queue) > 0 {
		for _, c := range queue {
			if c.MethodName() != nil && c.Name() != nil && *c.Name() == name {
				return c, true
			}
		}
		var next []construct.Construct
		for _, c := range queue {
			next = append(next, c.Members()...)
		}
		queue = next
	}
	return nil, false
}

// NormalizedMethodName resolves name to a canonical method name. If name
// already parses as a method call with an argument list, its own
// normalization is returned; otherwise a search is performed (restricted to
// interfaceName if non-empty) and the matching method's canonical name is
// returned. Returns ("", false) if nothing matches.
func (p *Parser) NormalizedMethodName(name, interfaceName string) (string, bool) {
	if parsed, ok := parseAsMethodCall(name); ok {
		return parsed, true
	}
	c, ok := p.searchMethod(name, interfaceName)
	if !ok {
		return "", false
	}
	mn := c.MethodName()
	if mn == nil {
		return "", false
	}
	return *mn, true
}

// NormalizedMethodNames is NormalizedMethodName, returning every normalized
// variant instead of only the full form.
func (p *Parser) NormalizedMethodNames(name, interfaceName string) ([]string, bool) {
	if parsed, ok := parseAsMethodCall(name); ok {
		return []string{parsed}, true
	}
	c, ok := p.searchMethod(name, interfaceName)
	if !ok {
		return nil, false
	}
	return c.MethodNames(), true
}
