// Package paths resolves the directories cctarget reads its configuration
// from and writes its optional log file to.
//
// The package wraps github.com/adrg/xdg for cross-platform XDG Base Directory
// Specification compliance. On Linux paths follow XDG conventions
// (~/.config, ~/.local/state); macOS and Windows use their native
// application-support locations.
//
//	paths.ConfigFile()     // ~/.config/cctarget/config.yaml
//	paths.DefaultLogFile() // ~/.local/state/cctarget/cctarget.log
package paths
