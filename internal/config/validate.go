package config

import (
	"strings"

	"github.com/thoreinstein/cctarget/internal/errors"
	"github.com/thoreinstein/cctarget/internal/logging"
)

// Validation errors for configuration fields.
var (
	// ErrUnsupportedVersion indicates the version field is not CurrentVersion.
	ErrUnsupportedVersion = errors.New("unsupported config version")

	// ErrInvalidLogFormat indicates an unrecognized log format.
	ErrInvalidLogFormat = errors.New("invalid log format")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	if cfg.Version != CurrentVersion {
		errs = append(errs, errors.Wrapf(ErrUnsupportedVersion, "version %d", cfg.Version))
	}

	if _, err := logging.ParseLevel(cfg.Log.Level); err != nil {
		errs = append(errs, errors.Wrap(err, "log.level"))
	}

	switch cfg.LogFormat() {
	case logging.FormatText, logging.FormatJSON:
	default:
		errs = append(errs, errors.Wrapf(ErrInvalidLogFormat, "log.format %q (valid: text, json)", cfg.Log.Format))
	}

	if _, err := logging.ParseColorMode(cfg.Color); err != nil {
		errs = append(errs, errors.Wrap(err, "color"))
	}

	if strings.ContainsRune(cfg.Log.File, '\x00') {
		errs = append(errs, errors.Wrap(ErrInvalidPath, "log.file"))
	}

	return errs
}
