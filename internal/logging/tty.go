package logging

import (
	"io"
	"os"

	"golang.org/x/term"
)

// IsTTY reports whether the writer is attached to a terminal.
// It supports os.File and any wrapper that provides an Fd() method;
// anything else (bytes.Buffer in tests, a pipe wrapper) is not a TTY.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor reports whether the writer should receive ANSI color
// codes: it must be a TTY, NO_COLOR must be unset, and TERM must not
// be "dumb". udh's text handler consults this before colorizing.
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

func supportsColor(_ io.Writer, isTTY bool) bool {
	// Respect NO_COLOR standard (https://no-color.org)
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if term := os.Getenv("TERM"); term == "dumb" {
		return false
	}

	return isTTY
}
