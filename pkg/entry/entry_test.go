package entry

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunner_Run_missingScript(t *testing.T) {
	r := Runner{
		Interpreter: "python",
		Script:      filepath.Join(t.TempDir(), "app.py"),
	}
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, ErrNoScript)
}
