// Package command dispatches a flat set of subcommands, each parsing its own flags.
package command

import (
	"errors"
	"io"
	"slices"
	"strconv"

	"github.com/spf13/pflag"
)

// HandlerFunc runs a subcommand with its remaining positional arguments.
type HandlerFunc = func(args []string) error

var (
	// ErrHelp is returned by [Command.Parse] after writing help in place of
	// running a subcommand.
	ErrHelp = errors.New("help requested")
)

// UnknownError is returned by [Command.Parse] and holds a name matching no subcommand.
type UnknownError string

func (e UnknownError) Error() string { return strconv.Quote(string(e)) + " is not a valid command" }

// FlagError wraps errors returned by [pflag].
type FlagError struct{ error }

// Success returns whether the error only reports that help was written.
func (e FlagError) Success() bool { return errors.Is(e.error, pflag.ErrHelp) }
func (e FlagError) Unwrap() error { return e.error }

// Command is a program taking global flags followed by one subcommand.
type Command struct {
	name  string
	out   io.Writer
	set   *pflag.FlagSet
	early func() error
	subs  []*Sub
}

// Sub is a subcommand of [Command].
type Sub struct {
	name, usage string
	set         *pflag.FlagSet
	f           HandlerFunc
}

// New returns a [Command] writing help to output. If early is not nil, it is
// called after global flags are parsed and before a subcommand is matched.
func New(output io.Writer, name string, early func() error) *Command {
	c := &Command{name: name, out: output, early: early}
	c.set = newFlagSet(name, output, func() { _ = c.writeHelp() })
	// flags following the subcommand name belong to the subcommand
	c.set.SetInterspersed(false)
	return c
}

func newFlagSet(name string, output io.Writer, usage func()) *pflag.FlagSet {
	set := pflag.NewFlagSet(name, pflag.ContinueOnError)
	set.SetOutput(output)
	set.Usage = usage
	return set
}

// Flags returns the global flag set of c.
func (c *Command) Flags() *pflag.FlagSet { return c.set }

// Add appends a subcommand handled by f.
func (c *Command) Add(name, usage string, f HandlerFunc) *Sub {
	if f == nil {
		panic("invalid handler")
	}
	if name == "" || usage == "" {
		panic("invalid subcommand")
	}
	if c.lookup(name) != nil {
		panic("attempted to add subcommand with non-unique name")
	}

	s := &Sub{name: name, usage: usage, f: f}
	s.set = newFlagSet(c.name+" "+name, c.out, func() { _ = s.writeHelp(c.out, c.name) })
	c.subs = append(c.subs, s)
	return s
}

// Flags returns the flag set of s.
func (s *Sub) Flags() *pflag.FlagSet { return s.set }

func (c *Command) lookup(name string) *Sub {
	if i := slices.IndexFunc(c.subs, func(s *Sub) bool { return s.name == name }); i >= 0 {
		return c.subs[i]
	}
	return nil
}

// Parse parses global flags from arguments and runs the subcommand they name.
// Parse must be called at most once.
func (c *Command) Parse(arguments []string) error {
	if err := c.set.Parse(arguments); err != nil {
		return FlagError{err}
	}
	if c.early != nil {
		if err := c.early(); err != nil {
			return err
		}
	}

	args := c.set.Args()
	if len(args) == 0 {
		return c.writeHelp()
	}
	s := c.lookup(args[0])
	if s == nil {
		return UnknownError(args[0])
	}
	if err := s.set.Parse(args[1:]); err != nil {
		return FlagError{err}
	}
	return s.f(s.set.Args())
}
