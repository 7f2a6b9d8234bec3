package launcher

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/mattn/go-isatty"
	"github.com/suggester-app/launcher/pkg/testable"
)

// Acknowledge blocks until the user presses Enter. The launcher is
// often started by double-clicking it, in which case the terminal
// window closes the moment the process exits; pausing keeps the final
// message (or error) readable. On a non-interactive stdin, such as CI,
// it returns immediately.
func Acknowledge() {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return
	}
	in := survey.Input{Message: "Press Enter to exit..."}
	var ack string
	_ = testable.AskOne(&in, &ack, survey.WithStdio(os.Stdin, os.Stderr, os.Stderr))
}
