package banners

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStarting(t *testing.T) {
	got := Starting("http://localhost:5000", 3*time.Second)
	assert.Contains(t, got, "Application starting...")
	assert.Contains(t, got, "Browser will open in 3 seconds")
	assert.Contains(t, got, "http://localhost:5000")
	assert.Contains(t, got, "Press Ctrl+C to stop")
}

func TestStopped(t *testing.T) {
	got := Stopped(90 * time.Second)
	assert.Contains(t, got, "Application stopped")
	assert.Contains(t, got, "ran for")
}

func TestStopped_zeroUptimeOmitsDuration(t *testing.T) {
	got := Stopped(0)
	assert.Contains(t, got, "Application stopped")
	assert.NotContains(t, got, "ran for")
}
