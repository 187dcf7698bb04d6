// Package stub provides function call level stubbing and validation
// for system calls that are impossible to check otherwise.
package stub

import (
	"reflect"
	"testing"
)

func init() { mustTest(testing.Testing) }

// mustTest panics if running returns false.
func mustTest(running func() bool) {
	if !running() {
		panic("stub imported while not in a test")
	}
}

// A Stub is a track of expected calls.
// A Stub must never be used in any goroutine other than the one owning it.
type Stub[K any] struct {
	testing.TB

	// want holds expected calls in order.
	want Expect
	// pos is the current position in [Expect.Calls].
	pos int
}

// New creates a [Stub].
func New[K any](tb testing.TB, want Expect) *Stub[K] { return &Stub[K]{TB: tb, want: want} }

func (s *Stub[K]) FailNow()          { s.Helper(); panic(panicFailNow) }
func (s *Stub[K]) Fatal(args ...any) { s.Helper(); s.Error(args...); panic(panicFatal) }
func (s *Stub[K]) Fatalf(format string, args ...any) {
	s.Helper()
	s.Errorf(format, args...)
	panic(panicFatalf)
}

func (s *Stub[K]) SkipNow()             { s.Helper(); panic("invalid call to SkipNow") }
func (s *Stub[K]) Skip(...any)          { s.Helper(); panic("invalid call to Skip") }
func (s *Stub[K]) Skipf(string, ...any) { s.Helper(); panic("invalid call to Skipf") }

// Pos returns the current position of [Stub] in its [Expect.Calls]
func (s *Stub[K]) Pos() int { return s.pos }

// Len returns the length of [Expect.Calls].
func (s *Stub[K]) Len() int { return len(s.want.Calls) }

// VisitIncomplete calls f if not all expected calls were made.
func (s *Stub[K]) VisitIncomplete(f func(s *Stub[K])) {
	s.Helper()

	if len(s.want.Calls) != s.pos {
		f(s)
	}
}

// Expects checks the name of and returns the current [Call] and advances pos.
func (s *Stub[K]) Expects(name string) (expect *Call) {
	s.Helper()

	if len(s.want.Calls) == s.pos {
		s.Fatal("Expects: advancing beyond expected calls")
	}
	expect = &s.want.Calls[s.pos]
	if name != expect.Name {
		s.Fatalf("Expects: func = %s, want %s", name, expect.Name)
	}
	s.pos++
	return
}

// CheckArg checks an argument comparable with the == operator. Avoid using this with pointers.
func CheckArg[T comparable, K any](s *Stub[K], arg string, got T, n int) bool {
	s.Helper()

	pos := s.pos - 1
	if pos < 0 || pos >= len(s.want.Calls) {
		panic("invalid call to CheckArg")
	}
	expect := s.want.Calls[pos]
	want, ok := expect.Args[n].(T)
	if !ok || got != want {
		s.Errorf("%s: %s = %#v, want %#v (%d)", expect.Name, arg, got, want, pos)
		return false
	}
	return true
}

// CheckArgReflect checks an argument of any type.
func CheckArgReflect[K any](s *Stub[K], arg string, got any, n int) bool {
	s.Helper()

	pos := s.pos - 1
	if pos < 0 || pos >= len(s.want.Calls) {
		panic("invalid call to CheckArgReflect")
	}
	expect := s.want.Calls[pos]
	want := expect.Args[n]
	if !reflect.DeepEqual(got, want) {
		s.Errorf("%s: %s = %#v, want %#v (%d)", expect.Name, arg, got, want, pos)
		return false
	}
	return true
}
