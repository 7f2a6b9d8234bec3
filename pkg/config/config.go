// package config holds the launcher's optional overrides. The launcher
// is zero-configuration by default: when no config file is present in
// the working directory every value falls back to the defaults below,
// which match the app's own conventions (venv/, requirements.txt,
// app.py, port 5000).
package config

import (
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// DefaultFilename is looked up relative to the launcher's working
// directory.
const DefaultFilename = "launcher.toml"

type Config struct {
	// URL the app serves on, and which the browser is pointed at.
	URL string `toml:",omitempty"`

	// OpenDelaySeconds is how long to wait before opening the browser,
	// giving the app time to bind its listener.
	OpenDelaySeconds int `toml:",omitempty"`

	// EnvDir is the isolated environment directory.
	EnvDir string `toml:",omitempty"`

	// Manifest is the dependency manifest file.
	Manifest string `toml:",omitempty"`

	// Entry is the app entry script.
	Entry string `toml:",omitempty"`

	// BrowserCommand overrides the system default browser,
	// e.g. '/usr/bin/firefox --new-tab'.
	BrowserCommand string `toml:",omitempty"`

	// NoBrowser disables the deferred browser open entirely.
	NoBrowser bool `toml:",omitempty"`
}

func NewDefaultConfig() Config {
	return Config{
		URL:              "http://localhost:5000",
		OpenDelaySeconds: 3,
		EnvDir:           "venv",
		Manifest:         "requirements.txt",
		Entry:            "app.py",
	}
}

// Load reads DefaultFilename from the working directory, applying any
// fields it sets over the defaults. A missing file is not an error.
func Load() (Config, error) {
	return LoadFrom(DefaultFilename)
}

func LoadFrom(path string) (Config, error) {
	cfg := NewDefaultConfig()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing %s", path)
	}
	return cfg, nil
}

func (c Config) OpenDelay() time.Duration {
	return time.Duration(c.OpenDelaySeconds) * time.Second
}
