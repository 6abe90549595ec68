// Package invariant holds development-time assertions.
//
// Built with -tags debug, a failed Check panics. Otherwise Check does nothing
// and the caller's fallback (clamping or a no-op) takes over.
package invariant

import "fmt"

// Check panics with the formatted message when cond is false and assertions
// are enabled.
func Check(cond bool, format string, args ...any) {
	if enabled && !cond {
		panic(fmt.Sprintf("invariant violated: "+format, args...))
	}
}

// Enabled reports whether assertions are compiled in.
func Enabled() bool { return enabled }
