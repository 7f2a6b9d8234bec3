//go:build windows

package forkprocess

import (
	"os/exec"

	"github.com/pkg/errors"
)

type Process struct {
	UID  uint32
	GID  uint32
	Args []string
}

// New creates a Process. Call Start() on the returned process to
// actually start it.
func New(args ...string) (*Process, error) {
	p := Process{
		Args: args,
	}
	return &p, nil
}

// Start launches a detached process.
// On Windows we fall back to exec.Command().
func (p *Process) Start() error {
	cmd := exec.Command(p.Args[0], p.Args[1:]...)
	err := cmd.Start()
	if err != nil {
		return errors.Wrap(err, "starting command")
	}
	// detach from this new process because it continues to run
	return cmd.Process.Release()
}
