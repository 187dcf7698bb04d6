package stub

import "testing"

const (
	panicFailNow = 0xcafe0000 + iota
	panicFatal
	panicFatalf

	// PanicExit is a magic panic value treated as a simulated exit.
	PanicExit = 0xdeadbeef
)

// HandleExit must be deferred before calling with the stub.
func HandleExit(tb testing.TB) {
	switch r := recover(); r {
	case nil, PanicExit:
		return

	case panicFailNow, panicFatal, panicFatalf:
		tb.FailNow()

	default:
		panic(r)
	}
}
