// Package logging provides structured logging for the cctarget CLI using slog.
//
// Logs are diagnostics about cctarget itself and always go to stderr (and
// optionally a JSON log file); the target report owns stdout.
//
// # Basic Usage
//
//	logger := logging.New(logging.Config{
//		Level:  slog.LevelInfo,
//		Format: logging.FormatText,
//		Output: os.Stderr,
//	})
//	logger.Info("starting", "version", "1.0.0")
//
// # Redaction
//
// Both the text [Handler] and the JSON handler built by [New] mask values
// whose key looks secret or whose value carries a known token prefix. See
// [Redact].
//
// # Testing
//
// For tests, use [ForTest] to capture log output via the testing framework:
//
//	func TestSomething(t *testing.T) {
//		logger := logging.ForTest(t)
//		// logs appear in test output on failure
//	}
package logging
