// Package cmd holds build-time version information for the udh CLI.
package cmd

// Version information set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)
