// Package paths centralizes file system path resolution for udh.
//
// It resolves XDG base directories via github.com/adrg/xdg and derives
// the application's own directories (config, backup root) as well as the
// editor's user configuration directory where the tracked live files
// (settings.json, keybindings.json) reside.
//
// All functions return paths without checking existence; use [EnsureDir]
// to create directories on demand.
package paths
