package main

import (
	"context"
	"os"

	"github.com/common-fate/clio"
	"github.com/common-fate/clio/clierr"
	"github.com/suggester-app/launcher/internal/build"
	"github.com/suggester-app/launcher/pkg/banners"
	"github.com/suggester-app/launcher/pkg/browser"
	"github.com/suggester-app/launcher/pkg/config"
	"github.com/suggester-app/launcher/pkg/entry"
	"github.com/suggester-app/launcher/pkg/launcher"
	"github.com/suggester-app/launcher/pkg/pip"
	"github.com/suggester-app/launcher/pkg/python"
	"github.com/suggester-app/launcher/pkg/venv"
	"github.com/urfave/cli/v2"
)

func main() {
	cli.VersionPrinter = func(c *cli.Context) {
		clio.Log(banners.WithVersion())
	}

	app := &cli.App{
		Name:            "suggester",
		Usage:           "Bootstrap and launch the Suggester web app",
		UsageText:       "suggester [global options]",
		Version:         build.Version,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "Log debug messages"},
		},
		Before: func(c *cli.Context) error {
			if c.Bool("verbose") {
				clio.SetLevelFromString("debug")
			}
			return nil
		},
		Action: run,
	}

	err := app.Run(os.Args)
	if err != nil {
		// if the error is an instance of clierr.PrintCLIErrorer then print the error accordingly
		if cliError, ok := err.(clierr.PrintCLIErrorer); ok {
			cliError.PrintCLIError()
		} else {
			clio.Error(err.Error())
		}
		launcher.Acknowledge()
		os.Exit(1)
	}

	launcher.Acknowledge()
}

func run(c *cli.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	env := venv.New(cfg.EnvDir)

	l := launcher.Launcher{
		URL:       cfg.URL,
		OpenDelay: cfg.OpenDelay(),
		NoBrowser: cfg.NoBrowser,
		Runtime:   pythonProber{},
		Env:       env,
		Deps: pip.Installer{
			Interpreter: env.Interpreter(),
			Manifest:    cfg.Manifest,
		},
		Browser: browser.Opener{Command: cfg.BrowserCommand},
		Entry: entry.Runner{
			Interpreter: env.Interpreter(),
			Script:      cfg.Entry,
		},
	}
	return l.Start(c.Context)
}

// pythonProber adapts python.Find to the launcher's RuntimeProber.
type pythonProber struct{}

func (pythonProber) Probe(ctx context.Context) (string, string, error) {
	interp, err := python.Find(ctx)
	if err != nil {
		return "", "", err
	}
	return interp.Path, interp.Version(), nil
}
