package launch

import (
	"errors"

	"git.ophivana.moe/security/rooter/internal/build"
	"git.ophivana.moe/security/rooter/internal/check"
)

const (
	// DefaultArgvSlots is the capacity of the outgoing argument vector in [ModeFixed],
	// counting the program name and the terminating sentinel.
	DefaultArgvSlots = 20
	// DefaultPathBuf is the capacity in bytes of the directory buffer in [ModeDerived].
	DefaultPathBuf = 4096
)

// ErrProgName is returned by [NewParams] if the program name token is empty.
var ErrProgName = errors.New("program name is empty")

// Params holds the policy of the launcher.
type Params struct {
	// Interpreter is the binary granted elevated privileges.
	Interpreter *check.Absolute `json:"interpreter"`
	// ProgName replaces argv[0] of the outgoing argument vector.
	ProgName string `json:"prog_name"`
	// WorkDir is the working directory entered in [ModeFixed].
	WorkDir *check.Absolute `json:"work_dir,omitempty"`
	// Mode is the path handling policy.
	Mode Mode `json:"mode"`

	// ArgvSlots bounds the outgoing argument vector in [ModeFixed].
	ArgvSlots int `json:"argv_slots"`
	// PathBuf is the capacity of the directory buffer in [ModeDerived].
	PathBuf int `json:"path_buf"`
}

// NewParams returns the [Params] rooter was compiled with.
func NewParams() (*Params, error) {
	p := Params{
		ProgName:  build.ProgName(),
		ArgvSlots: DefaultArgvSlots,
		PathBuf:   DefaultPathBuf,
	}
	if p.ProgName == "" {
		return nil, ErrProgName
	}

	var err error
	if p.Mode, err = ParseMode(build.Mode()); err != nil {
		return nil, err
	}
	if p.Interpreter, err = check.NewAbs(build.Interpreter()); err != nil {
		return nil, err
	}
	if p.Mode == ModeFixed {
		if p.WorkDir, err = check.NewAbs(build.WorkDir()); err != nil {
			return nil, err
		}
	}
	return &p, nil
}

func (p *Params) argvSlots() int {
	if p.ArgvSlots <= 0 {
		return DefaultArgvSlots
	}
	return p.ArgvSlots
}

func (p *Params) pathBuf() int {
	if p.PathBuf <= 0 {
		return DefaultPathBuf
	}
	return p.PathBuf
}
