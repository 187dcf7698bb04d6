package launch

import (
	"log"
	"os"

	"golang.org/x/sys/unix"
)

// syscallDispatcher provides methods that make state-dependent system calls as part of their behaviour.
type syscallDispatcher interface {
	// params provides [NewParams].
	params() (*Params, error)

	// geteuid provides [unix.Geteuid].
	geteuid() int
	// stat provides [unix.Stat].
	stat(path string) (*unix.Stat_t, error)
	// chdir provides [unix.Chdir].
	chdir(path string) error
	// environ provides [os.Environ].
	environ() []string
	// exec provides [unix.Exec].
	exec(argv0 string, argv, envv []string) error

	// printf provides [log.Printf].
	printf(format string, v ...any)
	// exit provides [os.Exit].
	exit(code int)
	// fatal provides [log.Fatal].
	fatal(v ...any)
	// fatalf provides [log.Fatalf].
	fatalf(format string, v ...any)
}

// direct implements syscallDispatcher on the current kernel.
type direct struct{}

func (direct) params() (*Params, error) { return NewParams() }

func (direct) geteuid() int { return unix.Geteuid() }
func (direct) stat(path string) (*unix.Stat_t, error) {
	var st unix.Stat_t
	if err := unix.Stat(path, &st); err != nil {
		return nil, err
	}
	return &st, nil
}
func (direct) chdir(path string) error                       { return unix.Chdir(path) }
func (direct) environ() []string                             { return os.Environ() }
func (direct) exec(argv0 string, argv, envv []string) error { return unix.Exec(argv0, argv, envv) }

func (direct) printf(format string, v ...any) { log.Printf(format, v...) }
func (direct) exit(code int)                  { os.Exit(code) }
func (direct) fatal(v ...any)                 { log.Fatal(v...) }
func (direct) fatalf(format string, v ...any) { log.Fatalf(format, v...) }
