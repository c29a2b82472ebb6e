package diag

import "log"

// Reporter implements parser.UserInterface (and, since the method set is
// identical, construct.Reporter) by logging through the standard library
// log package with the level-prefix convention used elsewhere in this
// stack's ambient tooling, and counting occurrences for a CLI exit code.
type Reporter struct {
	Quiet bool

	warnings int
	notes    int
}

// Warn logs a grammar-error diagnostic and counts it.
func (r *Reporter) Warn(format string, args ...interface{}) {
	r.warnings++
	if r.Quiet {
		return
	}
	log.Printf("WARN  "+format, args...)
}

// Note logs a legacy-form-acceptance diagnostic and counts it.
func (r *Reporter) Note(format string, args ...interface{}) {
	r.notes++
	if r.Quiet {
		return
	}
	log.Printf("NOTE  "+format, args...)
}

// Warnings returns the number of Warn calls seen so far.
func (r *Reporter) Warnings() int { return r.warnings }

// Notes returns the number of Note calls seen so far.
func (r *Reporter) Notes() int { return r.notes }
