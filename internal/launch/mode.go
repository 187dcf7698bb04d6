package launch

import "strconv"

// Mode is the path handling policy of the launcher.
type Mode uint8

const (
	// ModeBare leaves the working directory unchanged.
	ModeBare Mode = iota
	// ModeFixed enters a working directory set at build time.
	ModeFixed
	// ModeDerived enters the directory component of the first caller argument.
	ModeDerived
)

var modeNames = [...]string{
	ModeBare:    "bare",
	ModeFixed:   "fixed",
	ModeDerived: "derived",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "invalid mode " + strconv.Itoa(int(m))
}

// ModeError is returned by [ParseMode] and holds the unrecognised name.
type ModeError string

func (e ModeError) Error() string { return "unknown mode " + strconv.Quote(string(e)) }

// ParseMode returns the [Mode] of the given name.
func ParseMode(name string) (Mode, error) {
	for m, s := range modeNames {
		if s == name {
			return Mode(m), nil
		}
	}
	return ModeBare, ModeError(name)
}

func (m Mode) MarshalText() ([]byte, error) {
	if int(m) >= len(modeNames) {
		return nil, ModeError(m.String())
	}
	return []byte(m.String()), nil
}
