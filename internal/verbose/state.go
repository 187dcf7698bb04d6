// Package verbose gates diagnostic messages behind a process-wide toggle.
package verbose

import "sync/atomic"

var verbose = new(atomic.Bool)

// Set enables or disables verbose messages.
func Set(v bool) { verbose.Store(v) }
