package stub

import (
	"errors"
	"strconv"
)

// ErrCheck is returned by [Call.Error] when an argument did not match.
var ErrCheck = errors.New("unexpected call arguments")

// UniqueError is an injected error told apart from other injected errors by its value.
type UniqueError uintptr

func (e UniqueError) Error() string {
	return "injected error 0x" + strconv.FormatUint(uint64(e), 16)
}
