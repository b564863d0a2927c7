package steamcmd

import (
	"context"
	"fmt"
	"os/exec"
)

// DefaultPath is the `steamcmd` executable
// looked up on $PATH when none is configured.
const DefaultPath = "steamcmd"

// Runner executes a binary with the given arguments
// and blocks until it exits.
type Runner interface {
	Run(ctx context.Context, bin string, args ...string) error
}

// RunnerFunc adapts a function to a Runner.
type RunnerFunc func(ctx context.Context, bin string, args ...string) error

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, bin string, args ...string) error {
	return f(ctx, bin, args...)
}

// IsInstalled checks whether the given `steamcmd`
// is installed and findable or not.
func IsInstalled(bin string) bool {
	if bin == "" {
		bin = DefaultPath
	}

	path, err := exec.LookPath(bin)
	return path != "" && err == nil
}

// ExecRunner is a Runner that executes the binary
// as a subprocess.
type ExecRunner struct {
	// Setup, if set, is called with each *exec.Cmd
	// before it is started, e.g. to redirect its output.
	Setup func(context.Context, *exec.Cmd)
}

var _ Runner = new(ExecRunner)

// Run implements Runner. A non-zero exit status is
// returned as an *exec.ExitError.
func (r *ExecRunner) Run(ctx context.Context, bin string, args ...string) error {
	if bin == "" {
		bin = DefaultPath
	}

	if !IsInstalled(bin) {
		return fmt.Errorf("steamcmd not installed at %s", bin)
	}

	//nolint:gosec
	cmd := exec.CommandContext(ctx, bin, args...)
	if r.Setup != nil {
		r.Setup(ctx, cmd)
	}

	return cmd.Run()
}
