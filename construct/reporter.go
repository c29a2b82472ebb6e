package construct

// Reporter receives the parser's diagnostics. Both methods are informational
// from the parser's perspective: neither aborts parsing. A nil Reporter is
// valid and silently discards both.
type Reporter interface {
	Warn(format string, args ...interface{})
	Note(format string, args ...interface{})
}

// nopReporter is used internally whenever a nil Reporter is supplied, so
// call sites never need a nil check.
type nopReporter struct{}

func (nopReporter) Warn(string, ...interface{}) {}
func (nopReporter) Note(string, ...interface{}) {}

func reporterOrNop(r Reporter) Reporter {
	if r == nil {
		return nopReporter{}
	}
	return r
}
