// Package check provides types yielding values checked to meet a condition.
package check

import (
	"encoding/json"
	"errors"
	"fmt"
	"path"

	"golang.org/x/sys/unix"
)

// AbsoluteError is returned by [NewAbs] and holds the invalid pathname.
type AbsoluteError struct{ Pathname string }

func (e *AbsoluteError) Error() string { return fmt.Sprintf("path %q is not absolute", e.Pathname) }
func (e *AbsoluteError) Is(target error) bool {
	var ce *AbsoluteError
	if !errors.As(target, &ce) {
		return errors.Is(target, unix.EINVAL)
	}
	return *e == *ce
}

// Absolute holds a pathname checked to be absolute.
type Absolute struct{ pathname string }

func (a *Absolute) String() string {
	if a.pathname == "" {
		panic("attempted use of zero Absolute")
	}
	return a.pathname
}

// NewAbs checks pathname and returns a new [Absolute] if pathname is absolute.
func NewAbs(pathname string) (*Absolute, error) {
	if !path.IsAbs(pathname) {
		return nil, &AbsoluteError{pathname}
	}
	return &Absolute{pathname}, nil
}

// MustAbs calls [NewAbs] and panics on error.
func MustAbs(pathname string) *Absolute {
	if a, err := NewAbs(pathname); err != nil {
		panic(err)
	} else {
		return a
	}
}

func (a *Absolute) MarshalJSON() ([]byte, error) { return json.Marshal(a.String()) }
