package main

import (
	"encoding/json"
	"io"

	"git.ophivana.moe/security/rooter/internal/build"
	"git.ophivana.moe/security/rooter/internal/launch"
)

// showParams is the serialised form of the compiled policy.
type showParams struct {
	Version string `json:"version"`
	*launch.Params
}

// printShowParams writes a representation of p to output.
func printShowParams(output io.Writer, p *launch.Params, flagJSON bool) error {
	if flagJSON {
		encoder := json.NewEncoder(output)
		encoder.SetIndent("", "  ")
		return encoder.Encode(&showParams{build.Version(), p})
	}

	t := newTable(output)
	t.row("Version:\t%s\n", build.Version())
	t.row("Mode:\t%s\n", p.Mode)
	t.row("Interpreter:\t%s\n", p.Interpreter)
	t.row("Program name:\t%s\n", p.ProgName)
	switch p.Mode {
	case launch.ModeFixed:
		t.row("Work directory:\t%s\n", p.WorkDir)
		t.row("Argv slots:\t%d\n", p.ArgvSlots)
	case launch.ModeDerived:
		t.row("Path buffer:\t%d\n", p.PathBuf)
	}
	return t.flush()
}
