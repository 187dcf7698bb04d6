// Rooterctl inspects the policy and deployment of rooter.
package main

import (
	"errors"
	"log"
	"os"

	"golang.org/x/sys/unix"

	"git.ophivana.moe/security/rooter/internal/command"
	"git.ophivana.moe/security/rooter/internal/launch"
)

func main() {
	log.SetPrefix("rooterctl: ")
	log.SetFlags(0)

	os.Exit(exitCode(buildCommand(os.Stdout, direct{}).Parse(os.Args[1:])))
}

// fileSystem provides the file system calls made by rooterctl.
type fileSystem interface {
	// Stat behaves like [unix.Stat].
	Stat(pathname string) (*unix.Stat_t, error)
	launch.LinkFS
}

// direct implements fileSystem on the host.
type direct struct{}

func (direct) Stat(pathname string) (*unix.Stat_t, error) {
	var st unix.Stat_t
	if err := unix.Stat(pathname, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (direct) Lstat(pathname string) (*unix.Stat_t, error) {
	var st unix.Stat_t
	if err := unix.Lstat(pathname, &st); err != nil {
		return nil, err
	}
	return &st, nil
}

func (direct) Readlink(pathname string) (string, error) { return os.Readlink(pathname) }

// exitCode returns the exit status for the outcome of a command,
// printing the error if it was not reported already.
func exitCode(err error) int {
	var flagError command.FlagError
	switch {
	case err == nil,
		errors.Is(err, command.ErrHelp),
		errors.As(err, &flagError) && flagError.Success():
		return 0

	case errors.Is(err, errCheckFailed):
		return 1

	default:
		log.Print(err)
		return 1
	}
}
