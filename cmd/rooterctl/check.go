package main

import (
	"errors"
	"io"

	"golang.org/x/sys/unix"

	"git.ophivana.moe/security/rooter/internal/launch"
	"git.ophivana.moe/security/rooter/internal/verbose"
)

// errCheckFailed is returned by checkDeployment if any precondition is not met.
var errCheckFailed = errors.New("deployment preconditions not met")

// checkDeployment writes the outcome of checking the launcher at pathname and
// the interpreter of p to output.
func checkDeployment(output io.Writer, fsys fileSystem, pathname string, p *launch.Params) error {
	t := newTable(output)

	ok := checkFile(t, fsys, pathname, launch.CheckLauncher)
	ok = checkFile(t, fsys, p.Interpreter.String(), func(pathname string, st *unix.Stat_t) error {
		return errors.Join(launch.CheckTarget(pathname, st), launch.CheckPath(fsys, pathname))
	}) && ok

	if err := t.flush(); err != nil {
		return err
	}
	if !ok {
		return errCheckFailed
	}
	return nil
}

// checkFile stats pathname and writes every violation reported by f.
func checkFile(t *table, fsys fileSystem, pathname string, f func(pathname string, st *unix.Stat_t) error) bool {
	verbose.Printf("checking %s", pathname)

	st, err := fsys.Stat(pathname)
	if err != nil {
		t.row("FAIL\tcannot stat %s: %v\n", pathname, err)
		return false
	}
	verbose.Printf("%s has mode %#o owned by %d:%d", pathname, st.Mode, st.Uid, st.Gid)

	if err = f(pathname, st); err == nil {
		t.row("ok\t%s\n", pathname)
		return true
	}
	for _, e := range flatten(err) {
		t.row("FAIL\t%v\n", e)
	}
	return false
}

// flatten returns the errors joined in err, depth first.
func flatten(err error) []error {
	u, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return []error{err}
	}
	var errs []error
	for _, e := range u.Unwrap() {
		errs = append(errs, flatten(e)...)
	}
	return errs
}
