// Package config provides configuration management for cctarget using Viper.
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/thoreinstein/cctarget/internal/errors"
	"github.com/thoreinstein/cctarget/internal/logging"
	"github.com/thoreinstein/cctarget/internal/paths"
)

// EnvPrefix is the prefix for environment variable overrides.
const EnvPrefix = "CCTARGET"

// CurrentVersion is the only supported config file version.
const CurrentVersion = 1

// Config represents the top-level configuration structure.
type Config struct {
	Version int       `mapstructure:"version" yaml:"version"`
	Log     LogConfig `mapstructure:"log" yaml:"log"`
	Color   string    `mapstructure:"color" yaml:"color"`
}

// LogConfig controls cctarget's own diagnostics on stderr.
type LogConfig struct {
	Level  string `mapstructure:"level" yaml:"level"`
	Format string `mapstructure:"format" yaml:"format"`
	File   string `mapstructure:"file" yaml:"file,omitempty"`
}

// Init initializes Viper with default configuration.
// Call this once at application startup before accessing config values.
// Init resets any previous Viper state so repeated calls start clean.
func Init() {
	viper.Reset()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(paths.ConfigDir())

	// CCTARGET_LOG_LEVEL maps to log.level
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("version", CurrentVersion)
	viper.SetDefault("log.level", "warn")
	viper.SetDefault("log.format", string(logging.FormatText))
	viper.SetDefault("log.file", "")
	viper.SetDefault("color", string(logging.ColorAuto))
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Log: LogConfig{
			Level:  "warn",
			Format: string(logging.FormatText),
		},
		Color: string(logging.ColorAuto),
	}
}

// Load reads the configuration file.
// If path is provided, it reads from that specific file.
// If path is empty, it searches in the default locations.
// Returns default values if no file is found (when path is empty).
// A file that cannot be parsed or fails validation yields an error marked
// as errors.ErrInvalidConfig.
func Load(path string) (*Config, error) {
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				return nil, errors.Wrapf(errors.ErrNotFound, "config file not found at %s", path)
			}
			return nil, errors.Wrap(err, "reading config file")
		}
		viper.SetConfigFile(path)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, errors.NewConfigError(errors.Wrap(err, "reading config file"))
		}
		// implicit load without a file: defaults apply
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, errors.NewConfigError(errors.Wrap(err, "unmarshaling config"))
	}

	if errs := Validate(&cfg); len(errs) > 0 {
		return nil, errors.NewConfigError(errors.Wrap(errs[0], "validating config"))
	}

	return &cfg, nil
}

// LogLevel returns the parsed log level. Validate guarantees it parses.
func (c *Config) LogLevel() slog.Level {
	level, _ := logging.ParseLevel(c.Log.Level)
	return level
}

// LogFormat returns the configured log format.
func (c *Config) LogFormat() logging.Format {
	return logging.Format(strings.ToLower(c.Log.Format))
}

// ColorMode returns the configured color mode.
func (c *Config) ColorMode() logging.ColorMode {
	mode, _ := logging.ParseColorMode(c.Color)
	return mode
}

// LogFile returns the resolved log file path, or "" when file logging is
// off. The value "default" selects the XDG state directory.
func (c *Config) LogFile() string {
	if c.Log.File == "default" {
		return paths.DefaultLogFile()
	}
	return c.Log.File
}
