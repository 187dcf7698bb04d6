package main

import (
	"fmt"
	"io"

	"git.ophivana.moe/security/rooter/internal/build"
	"git.ophivana.moe/security/rooter/internal/command"
	"git.ophivana.moe/security/rooter/internal/launch"
	"git.ophivana.moe/security/rooter/internal/verbose"
)

// defaultLauncherPath is where rooter is expected to be installed.
const defaultLauncherPath = "/usr/bin/rooter"

func buildCommand(out io.Writer, fsys fileSystem) *command.Command {
	var flagVerbose bool
	c := command.New(out, "rooterctl", func() error { verbose.Set(flagVerbose); return nil })
	c.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Increase log verbosity")

	c.Add("version", "Show rooter version", func([]string) error {
		_, err := fmt.Fprintln(out, build.Version())
		return err
	})

	var flagJSON bool
	c.Add("show", "Show the policy rooter was compiled with", func([]string) error {
		p, err := compiledParams()
		if err != nil {
			return err
		}
		return printShowParams(out, p, flagJSON)
	}).Flags().BoolVar(&flagJSON, "json", false, "Serialise output in JSON")

	var flagPath string
	c.Add("check", "Verify deployment preconditions of an installed rooter", func([]string) error {
		p, err := compiledParams()
		if err != nil {
			return err
		}
		return checkDeployment(out, fsys, flagPath, p)
	}).Flags().StringVarP(&flagPath, "path", "p", defaultLauncherPath, "Pathname of the installed rooter")

	return c
}

func compiledParams() (*launch.Params, error) {
	p, err := launch.NewParams()
	if err != nil {
		return nil, fmt.Errorf("rooter is compiled incorrectly: %w", err)
	}
	return p, nil
}
