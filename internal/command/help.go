package command

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

func (c *Command) writeHelp() error {
	w := tabwriter.NewWriter(c.out, 0, 1, 4, ' ', 0)
	_, _ = fmt.Fprintf(w, "Usage:\t%s [OPTIONS] COMMAND\n\nCommands:\n", c.name)
	for _, s := range c.subs {
		_, _ = fmt.Fprintf(w, "\t%s\t%s\n", s.name, s.usage)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	if err := writeOptions(c.out, c.set); err != nil {
		return err
	}
	return ErrHelp
}

func (s *Sub) writeHelp(output io.Writer, name string) error {
	if _, err := fmt.Fprintf(output, "Usage:\t%s %s [OPTIONS]\n\n%s\n", name, s.name, s.usage); err != nil {
		return err
	}
	return writeOptions(output, s.set)
}

// writeOptions describes the flags of set, if it has any.
func writeOptions(output io.Writer, set *pflag.FlagSet) error {
	if !set.HasFlags() {
		return nil
	}
	_, err := fmt.Fprintf(output, "\nOptions:\n%s", set.FlagUsages())
	return err
}
