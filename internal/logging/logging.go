package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	"github.com/thoreinstein/cctarget/internal/errors"
)

// Format specifies the output format for log messages.
type Format string

const (
	// FormatText produces human-readable text output.
	FormatText Format = "text"
	// FormatJSON produces machine-readable JSON output.
	FormatJSON Format = "json"
)

// LevelTrace is more verbose than debug.
const LevelTrace = slog.LevelDebug - 4

// Config holds the configuration for creating a new logger.
type Config struct {
	// Level sets the minimum log level. Messages below this level are discarded.
	Level slog.Level
	// Format specifies the output format (text or JSON).
	Format Format
	// Output is where log messages are written. Defaults to os.Stderr if nil.
	Output io.Writer
}

// New creates a logger with the given configuration.
// If cfg.Output is nil, it defaults to os.Stderr.
// If cfg.Format is not recognized, it defaults to FormatText.
func New(cfg Config) *slog.Logger {
	return slog.New(NewFormatHandler(cfg))
}

// NewFormatHandler builds the handler New would wrap. It is exposed so that
// callers can combine it with other handlers through NewMultiHandler.
func NewFormatHandler(cfg Config) slog.Handler {
	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	opts := &slog.HandlerOptions{
		Level:       cfg.Level,
		ReplaceAttr: replaceAttr,
	}

	switch cfg.Format {
	case FormatJSON:
		return slog.NewJSONHandler(output, opts)
	default:
		return NewHandler(output, opts)
	}
}

// Default returns the logger used before configuration is loaded.
// It logs at Warn level in text format to stderr.
func Default() *slog.Logger {
	return New(Config{
		Level:  slog.LevelWarn,
		Format: FormatText,
		Output: os.Stderr,
	})
}

// ParseLevel converts a level name from configuration into a slog.Level.
// Matching is case-insensitive. "warning" is accepted as an alias for "warn".
func ParseLevel(name string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "trace":
		return LevelTrace, nil
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "", "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelWarn, errors.Newf("unknown log level %q", name)
	}
}

// LevelName returns the display name for a level, rendering LevelTrace as
// TRACE instead of slog's DEBUG-4.
func LevelName(l slog.Level) string {
	if l <= LevelTrace {
		return "TRACE"
	}
	return l.String()
}

// replaceAttr renames custom levels and masks secrets for the JSON handler.
// The text Handler does both itself.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.LevelKey {
		if l, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(LevelName(l))
		}
		return a
	}
	if a.Value.Kind() == slog.KindString {
		if masked := Redact(a.Key, a.Value.String()); masked != a.Value.String() {
			a.Value = slog.StringValue(masked)
		}
	}
	return a
}

// testWriter adapts testing.T to io.Writer for use with slog handlers.
type testWriter struct {
	t *testing.T
}

// Write implements io.Writer by logging to the test.
func (w *testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	// t.Log adds its own newline
	msg := strings.TrimSuffix(string(p), "\n")
	w.t.Log(msg)
	return len(p), nil
}

// ForTest creates a logger that writes to the test's log output.
// Log messages appear only when the test fails or when running with -v.
// The logger is configured at Trace level to capture all messages.
func ForTest(t *testing.T) *slog.Logger {
	t.Helper()
	return New(Config{
		Level:  LevelTrace,
		Format: FormatText,
		Output: &testWriter{t: t},
	})
}
