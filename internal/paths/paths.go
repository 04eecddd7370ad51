package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "cctarget"

// ConfigDirEnv overrides the configuration directory when set.
const ConfigDirEnv = "CCTARGET_CONFIG_DIR"

// ConfigFileName is the base name of the configuration file.
const ConfigFileName = "config.yaml"

// ConfigHome returns the XDG config home directory.
// On Linux: ~/.config
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func ConfigHome() string {
	return xdg.ConfigHome
}

// StateHome returns the XDG state home directory.
// On Linux: ~/.local/state
// On macOS: ~/Library/Application Support
// On Windows: %LOCALAPPDATA%
func StateHome() string {
	return xdg.StateHome
}

// ConfigDir returns the directory searched for cctarget's config file.
// CCTARGET_CONFIG_DIR takes precedence over the XDG location.
func ConfigDir() string {
	if dir := os.Getenv(ConfigDirEnv); dir != "" {
		return dir
	}
	return filepath.Join(ConfigHome(), AppName)
}

// ConfigFile returns the full path of the default config file.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), ConfigFileName)
}

// DefaultLogFile returns the path used when log.file is set to "default".
func DefaultLogFile() string {
	return filepath.Join(StateHome(), AppName, AppName+".log")
}
