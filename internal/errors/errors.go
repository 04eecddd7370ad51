package errors

import (
	"fmt"

	crdb "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, permissions, etc.).
	ExitSystem = 2
)

// Constructors and inspectors re-exported from cockroachdb/errors.
var (
	New    = crdb.New
	Newf   = crdb.Newf
	Wrap   = crdb.Wrap
	Wrapf  = crdb.Wrapf
	Is     = crdb.Is
	As     = crdb.As
	Mark   = crdb.Mark
)

// Sentinel errors for common failure conditions.
var (
	// ErrNotFound indicates the requested resource was not found.
	ErrNotFound = crdb.New("resource not found")

	// ErrInvalidConfig indicates configuration validation failed.
	ErrInvalidConfig = crdb.New("invalid configuration")
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	e := NewExitError(err, ExitUser)
	e.Suggestion = suggestion
	return e
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	e := NewExitError(err, ExitSystem)
	e.Suggestion = suggestion
	return e
}

// NewConfigError marks err as ErrInvalidConfig and wraps it in an ExitError
// with ExitUser code and a standard suggestion.
func NewConfigError(err error) *ExitError {
	return NewUserError(crdb.Mark(err, ErrInvalidConfig), "check $XDG_CONFIG_HOME/cctarget/config.yaml")
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}

// Suggestion returns the suggestion of the first ExitError in err's chain
// that carries one, or "".
func Suggestion(err error) string {
	for err != nil {
		var exitErr *ExitError
		if !crdb.As(err, &exitErr) {
			return ""
		}
		if exitErr.Suggestion != "" {
			return exitErr.Suggestion
		}
		err = exitErr.Err
	}
	return ""
}

// ExitCode maps err to a process exit code. A nil error is ExitSuccess, an
// ExitError anywhere in the chain supplies its own code, and anything else
// is treated as ExitSystem.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if crdb.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitSystem
}
