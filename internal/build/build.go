// Package build holds the policy rooter is compiled with.
//
// Every value in this package is set by the linker and is never derived from
// caller input. A copy of rooter built without the relevant -X flags falls back to
// the values of the reference robot deployment, except the version string.
package build

// FallbackVersion is returned when a version string was not set by the linker.
const FallbackVersion = "dirty"

var (
	// interpreter is the absolute path to the interpreter granted elevated privileges.
	interpreter = "/home/pi/.virtualenvs/sparkfun/bin/python"
	// progName is presented to the interpreter as its argv[0].
	progName = "python"
	// workDir is the working directory entered in fixed mode.
	workDir = "/home/pi/sparkfun-avc"
	// mode names the path handling policy.
	mode = "bare"

	// version is the rooter tree's version string at build time.
	version string
)

// Interpreter returns the pathname of the privileged interpreter.
func Interpreter() string { return interpreter }

// ProgName returns the argv[0] token handed to the interpreter.
func ProgName() string { return progName }

// WorkDir returns the working directory of fixed mode.
func WorkDir() string { return workDir }

// Mode returns the name of the compiled path handling policy.
func Mode() string { return mode }

// Version returns the rooter tree's version string.
// It is either the value of the constant [FallbackVersion] or,
// when possible, a release tag like "v1.0.0".
func Version() string {
	if version != "" {
		return version
	}
	return FallbackVersion
}
