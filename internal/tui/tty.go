// Package tui holds the interactive terminal views.
package tui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether stdin and stdout are both attached to a terminal.
func IsTTY() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
