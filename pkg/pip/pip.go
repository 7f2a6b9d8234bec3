// Package pip installs the app's declared dependencies into the
// isolated environment.
package pip

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Installer runs pip inside the isolated environment.
type Installer struct {
	// Interpreter is the environment's own Python binary, so packages land
	// in the environment rather than the system installation.
	Interpreter string

	// Manifest is the requirements file to install from.
	Manifest string
}

// ErrNoManifest is returned by Install when the manifest file is absent.
// Callers treat this as a warning: a checkout without a requirements file
// just runs against whatever is already installed.
var ErrNoManifest = errors.New("manifest file not found")

// Command returns the argv pip is invoked with. Routine output is
// suppressed (-q); errors still reach stderr.
func (i Installer) Command() []string {
	return []string{i.Interpreter, "-m", "pip", "install", "-q", "-r", i.Manifest}
}

// Install installs or updates dependencies from the manifest. It is run on
// every launch, not just the first, so a pulled update to the manifest is
// picked up without re-provisioning. A non-zero pip status is returned as
// an error carrying pip's stderr.
func (i Installer) Install(ctx context.Context) error {
	if _, err := os.Stat(i.Manifest); err != nil {
		if os.IsNotExist(err) {
			return ErrNoManifest
		}
		return errors.Wrapf(err, "checking %s", i.Manifest)
	}

	argv := i.Command()
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return errors.Wrap(err, "installing dependencies")
		}
		return errors.Wrapf(err, "installing dependencies: %s", msg)
	}
	return nil
}
