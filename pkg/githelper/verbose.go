package githelper

import "sync/atomic"

var verbose atomic.Bool

// EnableVerboseMode turns on diagnostic output for every Repository in the
// process. It cannot be turned off again.
func EnableVerboseMode() {
	verbose.Store(true)
}

// IsVerbose reports whether verbose mode has been enabled
func IsVerbose() bool {
	return verbose.Load()
}
