package construct

import "strings"

// canonicalName formats a method's canonical name as
// "<identifier>(<arg-names joined by ", ">)".
func canonicalName(name string, argNames []string) string {
	return name + "(" + strings.Join(argNames, ", ") + ")"
}

// argNames returns the declared identifier of each argument, in order.
func argNames(args []*Argument) []string {
	out := make([]string, len(args))
	for i, a := range args {
		if a.name != nil {
			out[i] = *a.name
		}
	}
	return out
}

// prefixLengths computes the argument-count expansion described in
// SPEC_FULL.md §4.4: every prefix of required arguments, then every legal
// combination including or excluding each trailing optional argument in
// source order, longest (full form) first. Since WebIDL only allows
// optional (and a single trailing variadic) arguments after all required
// ones, "legal combinations" reduce to growing prefixes of the argument
// list — there is no way to include a later optional argument while
// excluding an earlier one.
func prefixLengths(args []*Argument) []int {
	n := len(args)
	required := n
	for i, a := range args {
		if a.Optional || a.Variadic {
			required = i
			break
		}
	}
	lengths := make([]int, 0, n-required+1)
	for l := n; l >= required; l-- {
		lengths = append(lengths, l)
	}
	if len(lengths) == 0 {
		lengths = append(lengths, 0)
	}
	return lengths
}

// normalizedMethodNames returns every normalized variant of a method's name
// given its declared identifier and argument list, full form first. Returns
// nil if name is nil (anonymous constructs have no method name).
func normalizedMethodNames(name *string, args []*Argument) []string {
	if name == nil {
		return nil
	}
	names := argNames(args)
	lengths := prefixLengths(args)
	out := make([]string, len(lengths))
	for i, l := range lengths {
		out[i] = canonicalName(*name, names[:l])
	}
	return out
}
