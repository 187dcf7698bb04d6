package launch

import (
	"errors"
	"os"
	"path"
	"slices"
	"strings"

	"golang.org/x/sys/unix"
)

// maxLinks is the number of symbolic links followed by [CheckPath] before it
// gives up, matching the limit of the kernel.
const maxLinks = 40

// LinkFS provides the file system calls made by [CheckPath].
type LinkFS interface {
	// Lstat behaves like [unix.Lstat].
	Lstat(pathname string) (*unix.Stat_t, error)
	// Readlink behaves like [os.Readlink].
	Readlink(pathname string) (string, error)
}

// CheckPath walks pathname one component at a time the way the kernel resolves it,
// following symbolic links, and returns a [TargetError] for every directory on the
// way that a user other than root could write to. Such a user can replace whatever
// pathname resolves to between a check of the final file and its execution.
//
// The final file is not checked, see [CheckTarget]. Symbolic links are not
// checked either: a link cannot be changed without write access to its directory.
func CheckPath(fsys LinkFS, pathname string) error {
	st, err := fsys.Lstat("/")
	if err != nil {
		return &os.PathError{Op: "lstat", Path: "/", Err: err}
	}
	errs := checkWritable(nil, "/", st)

	dir, pending, links := "/", strings.Split(pathname, "/"), 0
	for len(pending) > 0 {
		name := pending[0]
		pending = pending[1:]
		switch name {
		case "", ".":
			continue
		case "..":
			dir = path.Dir(dir)
			continue
		}

		next := path.Join(dir, name)
		if st, err = fsys.Lstat(next); err != nil {
			return errors.Join(append(errs, &os.PathError{Op: "lstat", Path: next, Err: err})...)
		}

		if st.Mode&unix.S_IFMT == unix.S_IFLNK {
			if links++; links > maxLinks {
				return errors.Join(append(errs, &os.PathError{Op: "readlink", Path: next, Err: unix.ELOOP})...)
			}
			var target string
			if target, err = fsys.Readlink(next); err != nil {
				return errors.Join(append(errs, err)...)
			}
			if path.IsAbs(target) {
				dir = "/"
			}
			pending = append(strings.Split(target, "/"), pending...)
			continue
		}

		if final(pending) {
			break
		}
		errs = checkWritable(errs, next, st)
		dir = next
	}
	return errors.Join(errs...)
}

// final returns whether pending names no further component.
func final(pending []string) bool {
	return !slices.ContainsFunc(pending, func(name string) bool { return name != "" && name != "." })
}
