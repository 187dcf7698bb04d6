package launch

import "errors"

// ErrTooManyArgs is returned by [BuildArgv] when the caller arguments do not fit
// the argument vector of [ModeFixed].
var ErrTooManyArgs = errors.New("too many arguments")

// BuildArgv returns the argument vector handed to the interpreter.
// Element 0 of the result is always [Params.ProgName] and never the caller-supplied
// launcher path. args must hold at least one element.
//
// In [ModeFixed] the caller arguments are copied into a new vector bounded by
// [Params.ArgvSlots]. In every other mode args[0] is overwritten in place and args
// itself is returned.
func BuildArgv(p *Params, args []string) ([]string, error) {
	if len(args) == 0 {
		panic("attempted to build argv from zero length args")
	}

	if p.Mode != ModeFixed {
		args[0] = p.ProgName
		return args, nil
	}

	// one slot is reserved for the terminating sentinel
	if len(args)+1 > p.argvSlots() {
		return nil, ErrTooManyArgs
	}
	argv := make([]string, len(args))
	argv[0] = p.ProgName
	copy(argv[1:], args[1:])
	return argv, nil
}
