package stub

import "slices"

// ExpectArgs is an array primarily for storing expected function arguments.
// Its actual use is defined by the implementation.
type ExpectArgs = [4]any

// An Expect stores expected calls in the order they must be made.
type Expect struct{ Calls []Call }

// A Call holds expected arguments of a function call and its outcome.
type Call struct {
	// Name is the function Name of this call.
	Name string
	// Args are the expected arguments of this Call.
	Args ExpectArgs
	// Ret is the return value of this Call.
	Ret any
	// Err is the returned error of this Call.
	Err error
}

// Error returns [Call.Err] if all arguments are true, or [ErrCheck] otherwise.
func (k *Call) Error(ok ...bool) error {
	if !slices.Contains(ok, false) {
		return k.Err
	}
	return ErrCheck
}
