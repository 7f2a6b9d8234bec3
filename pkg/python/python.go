// Package python locates a Python interpreter on the user's PATH and
// verifies it is recent enough to run the Suggester app.
package python

import (
	"context"
	"os/exec"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// The app uses features (dataclasses with defaults, f-string '=' specifiers)
// which require at least this interpreter version.
const (
	MinMajor = 3
	MinMinor = 8
)

// candidate binary names, in probe order. 'python3' is preferred because
// on many distros plain 'python' is either absent or Python 2.
var candidates = []string{"python3", "python"}

var ErrNotFound = errors.New("no python interpreter found on PATH")

// Interpreter is a resolved Python installation.
type Interpreter struct {
	// Path is the absolute path to the interpreter binary.
	Path string

	Major int
	Minor int
}

func (i Interpreter) Version() string {
	return strconv.Itoa(i.Major) + "." + strconv.Itoa(i.Minor)
}

// Find probes PATH for a Python interpreter and queries its version.
// It returns ErrNotFound if no candidate binary exists, and a descriptive
// error if the best candidate is older than MinMajor.MinMinor.
func Find(ctx context.Context) (*Interpreter, error) {
	var path string
	for _, c := range candidates {
		p, err := exec.LookPath(c)
		if err == nil {
			path = p
			break
		}
	}
	if path == "" {
		return nil, ErrNotFound
	}

	out, err := exec.CommandContext(ctx, path, "--version").CombinedOutput()
	if err != nil {
		return nil, errors.Wrapf(err, "querying version of %s", path)
	}

	major, minor, err := parseVersion(string(out))
	if err != nil {
		return nil, errors.Wrapf(err, "parsing version of %s", path)
	}

	interp := Interpreter{Path: path, Major: major, Minor: minor}

	if major < MinMajor || (major == MinMajor && minor < MinMinor) {
		return &interp, errors.Errorf("python %d.%d or later is required, found %s at %s", MinMajor, MinMinor, interp.Version(), path)
	}
	return &interp, nil
}

// parseVersion extracts the major and minor version from the output of
// 'python --version', e.g. "Python 3.11.4".
func parseVersion(out string) (major, minor int, err error) {
	fields := strings.Fields(strings.TrimSpace(out))
	if len(fields) < 2 {
		return 0, 0, errors.Errorf("unexpected version output %q", out)
	}
	parts := strings.Split(fields[len(fields)-1], ".")
	if len(parts) < 2 {
		return 0, 0, errors.Errorf("unexpected version string %q", fields[len(fields)-1])
	}
	major, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parsing major version from %q", out)
	}
	minor, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, errors.Wrapf(err, "parsing minor version from %q", out)
	}
	return major, minor, nil
}
