// Package assert holds invariant checks that are compiled in only for
// builds tagged hexdebug. In regular builds That is a no-op the compiler
// removes entirely.
package assert

import "fmt"

// That panics with the formatted message when cond is false and invariant
// checks are enabled.
func That(cond bool, format string, args ...any) {
	if enabled && !cond {
		panic("invariant violated: " + fmt.Sprintf(format, args...))
	}
}

// Enabled reports whether invariant checks are compiled in.
func Enabled() bool { return enabled }
