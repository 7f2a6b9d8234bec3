// Package browser opens the app URL in the user's default browser.
package browser

import (
	"regexp"

	pkgbrowser "github.com/pkg/browser"
	"github.com/suggester-app/launcher/pkg/forkprocess"
)

// Opener builds and runs the command that navigates the default browser
// to a URL.
type Opener struct {
	// Command optionally overrides the system opener with a custom
	// browser command, e.g. '/usr/bin/firefox --new-tab'. The URL is
	// appended as the final argument.
	Command string
}

// Args returns the argv used to open the given URL.
func (o Opener) Args(url string) []string {
	if o.Command != "" {
		return append(splitCommand(o.Command), url)
	}
	return []string{OpenCommand(), url}
}

// Open navigates the default browser to url. The browser is started
// detached so it outlives the launcher and survives CTRL+C. If the
// detached spawn fails we fall back to the pkg/browser stdlib-free
// opener; if that fails too the error is returned, but callers treat
// browser failures as non-fatal.
func (o Opener) Open(url string) error {
	cmd, err := forkprocess.New(o.Args(url)...)
	if err == nil {
		if err = cmd.Start(); err == nil {
			return nil
		}
	}
	return pkgbrowser.OpenURL(url)
}

// splits each component of the command. Anything within quotes is
// handled as one component, eg 'open -a "Google Chrome"' returns
// ["open", "-a", "Google Chrome"]
func splitCommand(command string) []string {
	re := regexp.MustCompile(`"([^"]+)"|(\S+)`)
	matches := re.FindAllStringSubmatch(command, -1)

	var result []string
	for _, match := range matches {
		if match[1] != "" {
			result = append(result, match[1])
		} else {
			result = append(result, match[2])
		}
	}

	return result
}
