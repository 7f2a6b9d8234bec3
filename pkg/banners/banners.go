package banners

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/hako/durafmt"
	"github.com/suggester-app/launcher/internal/build"
)

var box = lipgloss.NewStyle().
	Border(lipgloss.NormalBorder()).
	Padding(0, 4).
	Align(lipgloss.Center)

func WithVersion() string {
	return fmt.Sprintf("Suggester launcher version: %s\n", build.Version)
}

// Starting is shown immediately before the app entry process is
// launched.
func Starting(url string, delay time.Duration) string {
	body := fmt.Sprintf("Application starting...\nBrowser will open in %d seconds", int(delay.Seconds()))
	return fmt.Sprintf("%s\n\nURL: %s\nPress Ctrl+C to stop\n", box.Render(body), color.GreenString(url))
}

// Stopped is shown after the app entry process has exited, however it
// exited.
func Stopped(uptime time.Duration) string {
	body := "Application stopped"
	if uptime > 0 {
		body += fmt.Sprintf("\nran for %s", durafmt.Parse(uptime.Round(time.Second)).LimitFirstN(2))
	}
	return box.Render(body)
}
