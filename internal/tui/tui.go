package tui

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY returns true if we can use a TTY for interactive prompts
func IsTTY() bool {
	// Allow forcing non-interactive mode via environment variable
	if os.Getenv("WEBCHAN_NON_INTERACTIVE") != "" {
		return false
	}
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// NewPrompter picks the bubbletea prompter on a terminal and plain line reading otherwise
func NewPrompter(format *Formatter, in io.Reader, out io.Writer, tty bool) Prompter {
	if tty {
		return NewTeaPrompter(format, in, out)
	}
	return NewLinePrompter(format, in, out)
}
