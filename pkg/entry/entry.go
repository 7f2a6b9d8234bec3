// Package entry runs the app's entry process in the foreground.
package entry

import (
	"context"
	"os"
	"os/exec"
	"os/signal"

	"github.com/pkg/errors"
)

// Runner starts the app entry script and blocks until it exits. The
// child inherits the launcher's stdio, so its output appears on the
// user's console untouched.
type Runner struct {
	// Interpreter is the isolated environment's Python binary.
	Interpreter string

	// Script is the entry file, invoked with no arguments.
	Script string
}

// ErrNoScript is returned when the entry file does not exist.
var ErrNoScript = errors.New("entry script not found")

// Run executes the entry process and waits for it to exit. Any exit
// status from the child, including a failure status, is a normal stop
// from the launcher's point of view; the status is returned for
// logging. A CTRL+C in the terminal reaches the child through the
// shared process group and shows up here as an ordinary exit, so
// SIGINT is ignored by the launcher itself for the duration.
func (r Runner) Run(ctx context.Context) (int, error) {
	if _, err := os.Stat(r.Script); err != nil {
		if os.IsNotExist(err) {
			return 0, ErrNoScript
		}
		return 0, errors.Wrapf(err, "checking %s", r.Script)
	}

	cmd := exec.CommandContext(ctx, r.Interpreter, r.Script)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	signal.Ignore(os.Interrupt)
	defer signal.Reset(os.Interrupt)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return 0, errors.Wrapf(err, "starting %s", r.Script)
	}
	return 0, nil
}
