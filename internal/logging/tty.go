package logging

import (
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/thoreinstein/cctarget/internal/errors"
)

// ColorMode selects when colored output is produced.
type ColorMode string

const (
	// ColorAuto colors output only for terminals that accept it.
	ColorAuto ColorMode = "auto"
	// ColorAlways colors output unconditionally.
	ColorAlways ColorMode = "always"
	// ColorNever disables color.
	ColorNever ColorMode = "never"
)

// ParseColorMode validates a color mode from configuration. The empty
// string means ColorAuto.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(s))); m {
	case "":
		return ColorAuto, nil
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return ColorAuto, errors.Newf("unknown color mode %q (valid: auto, always, never)", s)
	}
}

// IsTTY returns true if the given writer is a terminal.
// It supports os.File and any wrapper that provides an Fd() method.
func IsTTY(w io.Writer) bool {
	if f, ok := w.(interface{ Fd() uintptr }); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}

// SupportsColor returns true if the given writer supports ANSI color codes.
// It returns false if:
//   - The writer is not a TTY
//   - The NO_COLOR environment variable is set
//   - The TERM environment variable is set to "dumb"
func SupportsColor(w io.Writer) bool {
	return supportsColor(w, IsTTY(w))
}

// UseColor resolves mode against w.
func UseColor(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return SupportsColor(w)
	}
}

func supportsColor(_ io.Writer, isTTY bool) bool {
	// https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return isTTY
}
