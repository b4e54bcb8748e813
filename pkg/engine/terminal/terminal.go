// Package terminal probes the controlling terminal for the text renderer.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Fallback size used when stdout is not a terminal (pipes, tests)
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// clearScreen moves the cursor home and erases the display
const clearScreen = "\x1b[H\x1b[2J"

// GetSize returns the width and height of the terminal on stdout,
// or the defaults when it cannot be determined.
func GetSize() (width, height int) {
	width, height, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// GetWidth returns the terminal width
func GetWidth() int {
	width, _ := GetSize()
	return width
}

// GetHeight returns the terminal height
func GetHeight() int {
	_, height := GetSize()
	return height
}

// IsTerminal reports whether w writes to a terminal
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Clear erases the screen behind w. Writers that are not terminals are left alone
// so piped output and test buffers only ever hold rendered frames.
func Clear(w io.Writer) {
	if IsTerminal(w) {
		fmt.Fprint(w, clearScreen)
	}
}
