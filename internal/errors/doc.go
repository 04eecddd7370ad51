// Package errors provides error handling conventions for the cctarget CLI.
//
// It re-exports the constructors of [github.com/cockroachdb/errors] so that
// callers import a single errors package, and adds an ExitError type that
// carries a process exit code and an optional suggestion.
//
// # Exit Codes
//
//   - ExitSuccess (0): the report was written
//   - ExitUser (1): user-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): system-related error (I/O, permissions, etc.)
//
// # ExitError
//
// [ExitError] wraps an underlying error with an exit code and optional
// suggestion. It supports unwrapping via [errors.Is] and [errors.As]:
//
//	err := cterrors.NewSystemError(writeErr, "check that stdout is writable")
//	os.Exit(cterrors.ExitCode(err))
package errors
