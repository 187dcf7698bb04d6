// Package launch implements a privileged launcher that replaces itself with a
// fixed interpreter binary.
//
// The launcher is meant to be installed setuid root. A caller controls which
// arguments reach the interpreter and, in [ModeDerived], which directory it
// starts in. The caller never controls which binary receives elevated privileges:
// the interpreter pathname is set at build time.
//
// Before exec the launcher refuses an interpreter that is not a regular file owned
// by root and closed to writes from group and others. The check stats the pathname
// once and exec resolves it again, so it is advisory against a user able to write to
// any directory that pathname resolves through: that user can swap the file or a
// symbolic link in between. [CheckPath] reports such directories and is run by
// rooterctl check on the deployed interpreter.
package launch

import "errors"

// Main runs the launcher on the current kernel with args as the invocation,
// including the program name at index 0. Main never returns: the process either
// becomes the interpreter or exits with a non-zero status.
func Main(args []string) { launch(direct{}, args); panic("unreachable") }

// launch runs the launcher state machine. It returns only when k.exec returns
// without error, which does not happen on a real kernel.
func launch(k syscallDispatcher, args []string) {
	// validate before anything else, no privileged action happens on malformed input
	if len(args) < 2 {
		name := "rooter"
		if len(args) > 0 && args[0] != "" {
			name = args[0]
		}
		k.printf("usage: %s <script> [args...]", name)
		k.exit(1)
		return
	}

	p, err := k.params()
	if err != nil {
		k.fatalf("this program is compiled incorrectly: %v", err)
		return
	}

	if k.geteuid() != 0 {
		k.fatal("this program must be owned by uid 0 and have the setuid bit set")
		return
	}

	// refuse to run if the interpreter is not protected correctly
	target := p.Interpreter.String()
	if st, err := k.stat(target); err != nil {
		k.fatalf("cannot stat interpreter: %v", err)
		return
	} else if err = CheckTarget(target, st); err != nil {
		k.fatalf("refusing to start unprotected interpreter: %v", err)
		return
	}

	// argv is checked before the directory change so overflow leaves no side effect
	var argv []string
	if argv, err = BuildArgv(p, args); err != nil {
		if errors.Is(err, ErrTooManyArgs) {
			k.fatalf("%v, at most %d are allowed", err, p.argvSlots()-2)
		} else {
			k.fatal(err)
		}
		return
	}

	switch p.Mode {
	case ModeFixed:
		if err = k.chdir(p.WorkDir.String()); err != nil {
			k.fatalf("cannot change directory to %q: %v", p.WorkDir, err)
			return
		}

	case ModeDerived:
		dir := DerivePath(make([]byte, p.pathBuf()), argv[1])
		if err = k.chdir(dir); err != nil {
			k.printf("cannot change directory to %q: %v", dir, err)
			k.exit(ExitCode(err))
			return
		}

	case ModeBare:
		// working directory is inherited from the caller

	default:
		k.fatalf("invalid mode %d", p.Mode)
		return
	}

	if err = k.exec(target, argv, k.environ()); err != nil {
		k.printf("cannot exec %s: %v", target, err)
		k.exit(ExitCode(err))
	}
}
