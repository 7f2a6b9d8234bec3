//go:build !windows

// Package forkprocess starts a process detached from the launcher.
//
// The browser is opened through here rather than exec.Command so that a
// CTRL+C in the terminal (which signals the launcher's whole process
// group while the app runs in the foreground) doesn't take the browser
// down with it. The github.com/ik5/fork_process package is a good
// reference for this technique.
package forkprocess

import (
	"os"
	"os/exec"
	"os/user"
	"strconv"
	"syscall"

	"github.com/pkg/errors"
)

type Process struct {
	UID  uint32
	GID  uint32
	Args []string
}

// New creates a Process running under the current user and group ID.
// Call Start() on the returned process to actually start it.
func New(args ...string) (*Process, error) {
	u, err := user.Current()
	if err != nil {
		return nil, errors.Wrap(err, "getting current user")
	}
	uid, err := strconv.ParseUint(u.Uid, 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing uid (%s)", u.Uid)
	}
	gid, err := strconv.ParseUint(u.Gid, 10, 32)
	if err != nil {
		return nil, errors.Wrapf(err, "parsing gid (%s)", u.Gid)
	}

	p := Process{
		UID:  uint32(uid),
		GID:  uint32(gid),
		Args: args,
	}
	return &p, nil
}

// Start launches the process in its own session, releases it, and
// returns immediately. The launcher holds no handle to it afterwards.
func (p *Process) Start() error {
	// os.StartProcess does no PATH resolution.
	argv0, err := exec.LookPath(p.Args[0])
	if err != nil {
		return errors.Wrapf(err, "locating %s", p.Args[0])
	}

	sysproc := &syscall.SysProcAttr{
		Credential: &syscall.Credential{
			Uid:         p.UID,
			Gid:         p.GID,
			NoSetGroups: true,
		},
		Setsid: true,
	}

	rpipe, wpipe, err := os.Pipe()
	if err != nil {
		return errors.Wrap(err, "getting read and write files")
	}
	defer rpipe.Close()
	defer wpipe.Close()

	attr := os.ProcAttr{
		Env: os.Environ(),
		Files: []*os.File{
			rpipe,
			wpipe,
			wpipe,
		},
		Sys: sysproc,
	}
	process, err := os.StartProcess(argv0, p.Args, &attr)
	if err != nil {
		return errors.Wrap(err, "starting process")
	}

	err = process.Release()
	if err != nil {
		return errors.Wrap(err, "releasing process")
	}
	return nil
}
