// Package update upgrades pb-spec by running an external installer command.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/klauern/pbspec/internal/logging"
)

// ErrToolMissing is returned when the upgrade command's program is not on PATH.
var ErrToolMissing = errors.New("update tool not found")

// ToolFailedError is returned when the upgrade command exits non-zero.
type ToolFailedError struct {
	Code int
}

func (e *ToolFailedError) Error() string {
	return fmt.Sprintf("update failed with exit code %d", e.Code)
}

// Options configures Run.
type Options struct {
	// Command is the program followed by its arguments.
	Command []string
	Stdout  io.Writer
	Stderr  io.Writer
}

// Run executes the upgrade command, streaming its output.
func Run(ctx context.Context, opts Options) error {
	if len(opts.Command) == 0 {
		return errors.New("no update command configured")
	}

	name := opts.Command[0]
	path, err := exec.LookPath(name)
	if err != nil {
		return fmt.Errorf("%w: %s is not installed; install it first or set update.command in the pb-spec config", ErrToolMissing, name)
	}

	logging.Debug("running update command",
		logging.Operation("update"),
		logging.Path(path),
		logging.Count(len(opts.Command)-1),
	)

	// #nosec G204 - the command comes from the user's own configuration
	cmd := exec.CommandContext(ctx, path, opts.Command[1:]...)
	cmd.Stdout = opts.Stdout
	cmd.Stderr = opts.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ToolFailedError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("failed to run %s: %w", strings.Join(opts.Command, " "), err)
	}
	return nil
}
