// Package config loads cctarget's own settings.
//
// Settings only shape cctarget's diagnostics (log level, log format, log
// file) and whether report headings are colored. They never change the
// content of the target report.
//
// # Configuration File
//
// The file is config.yaml in $XDG_CONFIG_HOME/cctarget, or in the directory
// named by CCTARGET_CONFIG_DIR:
//
//	version: 1
//	color: auto        # auto, always, never
//	log:
//	  level: warn      # trace, debug, info, warn, error
//	  format: text     # text, json
//	  file: default    # optional; "default" means the XDG state dir
//
// Every key can also be set from the environment with the CCTARGET_ prefix,
// for example CCTARGET_LOG_LEVEL=debug.
//
// # Loading Configuration
//
//	config.Init()
//	cfg, err := config.Load("")
//	if err != nil {
//	    // the caller logs and falls back to config.Default()
//	}
package config
