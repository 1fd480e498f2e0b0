package scaffold

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// ErrGeneratorFailed wraps any non-zero generator exit.
var ErrGeneratorFailed = errors.New("generator failed")

// Runner executes a generator command. Generators run non-interactively
// and signal success solely via exit code; stdout is human diagnostics
// only, so it is passed straight through.
type Runner interface {
	Run(ctx context.Context, dir string, argv []string) error
}

// ExecRunner runs generators as external processes.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, dir string, argv []string) error {
	if len(argv) == 0 {
		return fmt.Errorf("%w: empty command", ErrGeneratorFailed)
	}
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	// Let the user watch generator progress.
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	// CI=true pushes npm-based generators into non-interactive mode.
	cmd.Env = append(os.Environ(), "CI=true")

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrGeneratorFailed, argv[0], err)
	}
	return nil
}
