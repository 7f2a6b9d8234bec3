package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_missingFileGivesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), DefaultFilename))
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadFrom_partialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("URL = \"http://localhost:8080\"\nNoBrowser = true\n"), 0644))

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", cfg.URL)
	assert.True(t, cfg.NoBrowser)
	// unset fields keep their defaults
	assert.Equal(t, "venv", cfg.EnvDir)
	assert.Equal(t, "requirements.txt", cfg.Manifest)
	assert.Equal(t, "app.py", cfg.Entry)
	assert.Equal(t, 3*time.Second, cfg.OpenDelay())
}

func TestLoadFrom_invalidTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte("URL = [not toml"), 0644))

	_, err := LoadFrom(path)
	assert.Error(t, err)
}
