// Package venv manages the app's isolated dependency environment.
//
// Rather than "activating" the environment by mutating PATH (which couples
// every later subprocess call to hidden global state), callers resolve the
// environment's own interpreter with Env.Interpreter and pass that explicit
// path to pip and to the app entry process.
package venv

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Env is an isolated Python environment rooted at a directory.
// The directory's existence is the provisioning marker: if it exists the
// environment is assumed to be set up and is never re-created.
type Env struct {
	Root string
}

func New(root string) Env {
	return Env{Root: root}
}

// Exists reports whether the environment marker directory is present.
func (e Env) Exists() bool {
	info, err := os.Stat(e.Root)
	return err == nil && info.IsDir()
}

// Create provisions the environment using the system interpreter,
// equivalent to 'python -m venv <root>'. It is an error to call Create
// when the environment already exists.
func (e Env) Create(ctx context.Context, interpreter string) error {
	cmd := exec.CommandContext(ctx, interpreter, "-m", "venv", e.Root)
	out, err := cmd.CombinedOutput()
	if err != nil {
		msg := strings.TrimSpace(string(out))
		if msg == "" {
			return errors.Wrap(err, "creating virtual environment")
		}
		return errors.Wrapf(err, "creating virtual environment: %s", msg)
	}
	return nil
}

// Interpreter returns the path of the environment's own Python binary.
// The returned path is not guaranteed to exist; use Valid to check.
func (e Env) Interpreter() string {
	if runtime.GOOS == "windows" {
		return filepath.Join(e.Root, "Scripts", "python.exe")
	}
	return filepath.Join(e.Root, "bin", "python")
}

// Valid reports whether the environment contains a usable interpreter.
// A directory can exist without one, for example after an interrupted
// provisioning run.
func (e Env) Valid() bool {
	_, err := os.Stat(e.Interpreter())
	return err == nil
}
