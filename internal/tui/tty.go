package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// IsTTY returns true if both stdin and stdout are terminals, so prompts can be shown
func IsTTY() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}
