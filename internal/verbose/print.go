package verbose

import "log"

// Printf calls [log.Printf] if verbose messages are enabled.
func Printf(format string, a ...any) {
	if verbose.Load() {
		log.Printf(format, a...)
	}
}
