package venv

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnv_Exists(t *testing.T) {
	dir := t.TempDir()

	e := New(filepath.Join(dir, "venv"))
	assert.False(t, e.Exists())

	require.NoError(t, os.Mkdir(e.Root, 0755))
	assert.True(t, e.Exists())
}

func TestEnv_Exists_fileIsNotAnEnv(t *testing.T) {
	dir := t.TempDir()
	root := filepath.Join(dir, "venv")
	require.NoError(t, os.WriteFile(root, []byte("not a directory"), 0644))

	e := New(root)
	assert.False(t, e.Exists())
}

func TestEnv_Interpreter(t *testing.T) {
	e := New("venv")
	var want string
	if runtime.GOOS == "windows" {
		want = filepath.Join("venv", "Scripts", "python.exe")
	} else {
		want = filepath.Join("venv", "bin", "python")
	}
	assert.Equal(t, want, e.Interpreter())
}

func TestEnv_Valid(t *testing.T) {
	dir := t.TempDir()
	e := New(filepath.Join(dir, "venv"))
	assert.False(t, e.Valid())

	require.NoError(t, os.MkdirAll(filepath.Dir(e.Interpreter()), 0755))
	require.NoError(t, os.WriteFile(e.Interpreter(), []byte{}, 0755))
	assert.True(t, e.Valid())
}
