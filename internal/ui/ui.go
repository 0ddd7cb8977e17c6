// Package ui provides the interactive terminal search.
package ui

import (
	"errors"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ErrNotTTY is returned when the interactive UI is asked to draw to
// something other than a terminal.
var ErrNotTTY = errors.New("output is not a TTY")

// IsTTY checks if the writer is a terminal.
func IsTTY(w io.Writer) bool {
	if w == nil {
		return false
	}
	if f, ok := w.(*os.File); ok {
		return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return false
}

// DetectNoColor checks the NO_COLOR environment variable.
func DetectNoColor() bool {
	_, exists := os.LookupEnv("NO_COLOR")
	return exists
}
