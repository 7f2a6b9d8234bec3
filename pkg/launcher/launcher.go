// Package launcher wires the bootstrap pipeline together: probe the
// runtime, provision the isolated environment, refresh dependencies,
// schedule the deferred browser open, then run the app in the
// foreground until it exits.
package launcher

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/common-fate/clio"
	"github.com/common-fate/clio/clierr"
	"github.com/pkg/errors"
	"github.com/suggester-app/launcher/pkg/banners"
	"github.com/suggester-app/launcher/pkg/entry"
	"github.com/suggester-app/launcher/pkg/pip"
)

// RuntimeProber locates the system interpreter used to provision the
// environment.
type RuntimeProber interface {
	Probe(ctx context.Context) (path string, version string, err error)
}

// Provisioner manages the isolated environment marker directory.
type Provisioner interface {
	Exists() bool
	Create(ctx context.Context, interpreter string) error
	Valid() bool
}

// Installer refreshes the app's dependencies inside the environment.
type Installer interface {
	Install(ctx context.Context) error
}

// Opener points the user's browser at the app URL.
type Opener interface {
	Open(url string) error
}

// Runner runs the app entry process in the foreground.
type Runner interface {
	Run(ctx context.Context) (exitCode int, err error)
}

type Launcher struct {
	URL       string
	OpenDelay time.Duration
	NoBrowser bool

	Runtime RuntimeProber
	Env     Provisioner
	Deps    Installer
	Browser Opener
	Entry   Runner

	// Out receives the user-facing banners. Defaults to stdout.
	Out io.Writer

	// sleep is swapped out in tests to verify the browser open is
	// deferred by OpenDelay without actually waiting.
	sleep func(time.Duration)
}

// Start runs the pipeline. Every precondition failure is terminal: the
// returned error carries instructional hints for the user and no step
// after the failing one is attempted. A nil return means the app entry
// process was started and has exited, whatever its own status was.
func (l *Launcher) Start(ctx context.Context) error {
	if l.Out == nil {
		l.Out = os.Stdout
	}
	if l.sleep == nil {
		l.sleep = time.Sleep
	}

	// step 1: runtime probe
	interpreter, version, err := l.Runtime.Probe(ctx)
	if err != nil {
		return clierr.New("Python was not found or is too old",
			clierr.Error(err),
			clierr.Info("The Suggester app needs Python 3.8 or later."),
			clierr.Info("Install it from https://www.python.org/downloads/ and make sure it is on your PATH, then run the launcher again."),
		)
	}
	clio.Successf("[1/4] Python check... OK (%s at %s)", version, interpreter)

	// step 2: environment marker
	if l.Env.Exists() {
		clio.Success("[2/4] Virtual environment... OK")
	} else {
		clio.Info("[2/4] Creating virtual environment...")
		if err := l.Env.Create(ctx, interpreter); err != nil {
			return clierr.New("Failed to create the virtual environment",
				clierr.Error(err),
				clierr.Info("Check that you have write access to this directory and that the 'venv' module is available (on Debian/Ubuntu: apt install python3-venv)."),
			)
		}
		clio.Success("[2/4] Virtual environment created")
	}

	// step 3: activation. The environment is "activated" by resolving its
	// own interpreter path, which the installer and entry runner were
	// constructed with; all that can fail here is a damaged environment.
	if !l.Env.Valid() {
		return clierr.New("The virtual environment is missing its Python interpreter",
			clierr.Info("The environment directory exists but looks damaged, possibly from an interrupted first run."),
			clierr.Info("Delete the environment directory and run the launcher again to re-create it."),
		)
	}

	// step 4: dependency refresh. Runs on every launch so manifest
	// changes are picked up without re-provisioning.
	if err := l.installDeps(ctx); err != nil {
		return err
	}

	clio.Info("[4/4] Starting application...")
	fmt.Fprintln(l.Out, banners.Starting(l.URL, l.OpenDelay))

	if !l.NoBrowser {
		// fire-and-forget: never awaited, and orphaned if the launcher
		// exits before the delay elapses.
		go func() {
			l.sleep(l.OpenDelay)
			if err := l.Browser.Open(l.URL); err != nil {
				clio.Debugf("opening browser: %s", err)
			}
		}()
	}

	started := time.Now()
	code, err := l.Entry.Run(ctx)
	if err != nil {
		if errors.Is(err, entry.ErrNoScript) {
			return clierr.New("The app entry script was not found",
				clierr.Error(err),
				clierr.Info("Run the launcher from the app's own directory."),
			)
		}
		return clierr.New("Failed to start the application", clierr.Error(err))
	}
	clio.Debugf("entry process exited with status %d", code)

	fmt.Fprintln(l.Out, banners.Stopped(time.Since(started)))
	return nil
}

func (l *Launcher) installDeps(ctx context.Context) error {
	si := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	si.Suffix = " [3/4] Installing dependencies..."
	si.Writer = os.Stderr
	si.Start()

	err := l.Deps.Install(ctx)
	si.Stop()

	if errors.Is(err, pip.ErrNoManifest) {
		clio.Warn("[3/4] No requirements file found, skipping dependency install")
		return nil
	}
	if err != nil {
		return clierr.New("Failed to install dependencies",
			clierr.Error(err),
			clierr.Info("Check your network connection and the requirements file, then run the launcher again."),
		)
	}
	clio.Success("[3/4] Dependencies installed")
	return nil
}
