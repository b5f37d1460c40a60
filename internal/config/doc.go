// Package config provides configuration management for the udh CLI.
//
// This package handles loading the tool's own configuration file, which
// controls where the snapshot store lives and where the tracked live
// configuration files are found.
//
// # Configuration File
//
// The default configuration file location is <ConfigHome>/udh/config.yaml.
// The configuration file uses YAML format with the following structure:
//
//	version: 1
//	backup_root: /home/me/.config/udh/backups   # optional
//	sync_root: /home/me/.config/Code/User/sync  # optional
//	resources:
//	  settings:
//	    path: /home/me/.config/Code/User/settings.json
//	  keybindings:
//	    path: /home/me/.config/Code/User/keybindings.json
//	watch:
//	  debounce: 500ms
//
// # Loading Configuration
//
// Call [Init] once at startup, then [Load]:
//
//	config.Init()
//	cfg, err := config.Load("")
//
// [Load] with an empty path falls back to default values when no config
// file exists; a missing file is only an error when a path was given
// explicitly. Environment variables prefixed UDH_ override file values.
package config
