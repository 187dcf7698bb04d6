package launch

import (
	"errors"

	"golang.org/x/sys/unix"
)

// TargetError describes a file that does not meet a deployment precondition.
type TargetError struct {
	// Pathname of the offending file.
	Pathname string
	// Reason describes the violated precondition.
	Reason string
}

func (e *TargetError) Error() string { return e.Pathname + " " + e.Reason }
func (e *TargetError) Is(target error) bool {
	var te *TargetError
	return errors.As(target, &te) && te != nil && *e == *te
}

const (
	ReasonNotRegular    = "is not a regular file"
	ReasonNotRootOwned  = "is not owned by uid 0"
	ReasonGroupWritable = "is writable by group"
	ReasonOtherWritable = "is writable by others"
	ReasonNoSetuid      = "does not have the setuid bit set"
	ReasonSetgid        = "has the setgid bit set"
)

// checkProtected appends a [TargetError] for every way st could be modified by a
// user other than root.
func checkProtected(errs []error, pathname string, st *unix.Stat_t) []error {
	if st.Mode&unix.S_IFMT != unix.S_IFREG {
		errs = append(errs, &TargetError{pathname, ReasonNotRegular})
	}
	return checkWritable(errs, pathname, st)
}

// checkWritable appends a [TargetError] for every user other than root able to
// write to st.
func checkWritable(errs []error, pathname string, st *unix.Stat_t) []error {
	if st.Uid != 0 {
		errs = append(errs, &TargetError{pathname, ReasonNotRootOwned})
	}
	if st.Mode&unix.S_IWGRP != 0 {
		errs = append(errs, &TargetError{pathname, ReasonGroupWritable})
	}
	if st.Mode&unix.S_IWOTH != 0 {
		errs = append(errs, &TargetError{pathname, ReasonOtherWritable})
	}
	return errs
}

// CheckTarget returns a non-nil error if the interpreter described by st could be
// replaced by anyone other than root. The returned error joins one [TargetError]
// per violation.
func CheckTarget(pathname string, st *unix.Stat_t) error {
	return errors.Join(checkProtected(nil, pathname, st)...)
}

// CheckLauncher is like [CheckTarget], but additionally requires the setuid bit
// and rejects the setgid bit, as expected of an installed launcher.
func CheckLauncher(pathname string, st *unix.Stat_t) error {
	errs := checkProtected(nil, pathname, st)
	if st.Mode&unix.S_ISUID == 0 {
		errs = append(errs, &TargetError{pathname, ReasonNoSetuid})
	}
	if st.Mode&unix.S_ISGID != 0 {
		errs = append(errs, &TargetError{pathname, ReasonSetgid})
	}
	return errors.Join(errs...)
}

// ExitCode returns the process status reporting err.
// An errno within the range of an exit status is returned as is.
func ExitCode(err error) int {
	var errno unix.Errno
	if errors.As(err, &errno) && errno > 0 && errno < 256 {
		return int(errno)
	}
	return 1
}
