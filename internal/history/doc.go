// Package history implements the versioned snapshot store behind udh.
//
// It captures point-in-time copies of a user's editor configuration
// files (settings, keybindings), exposes their ordered history, and
// resolves historical content for display or restoration.
//
// # Snapshot layout
//
// Snapshots live in a two-level tree under a single writable root:
//
//	<root>/
//	└── <resource>/
//	    └── <YYYYMMDDTHHMMSS>.json
//
// The filename encodes the creation time in fixed-width zero-padded
// local calendar fields, so lexicographic filename order is
// chronological order and the name itself is the authoritative
// timestamp. Filesystem mtimes are never consulted; copy and sync
// operations can alter them. Listing also accepts names without the
// ".json" suffix for compatibility with an older naming convention.
//
// # Creating snapshots
//
// Use [Store.Backup] to capture the current live file:
//
//	store := history.NewStore()
//	snap, err := store.Backup(history.ResourceSettings)
//
// Every successful backup fires the store's change stream once; use
// [Store.Subscribe] to refresh dependent views.
//
// # Browsing history
//
// [Store.Entries] returns the full history newest first, and [Page]
// windows it into fixed-size pages with a continuation cursor:
//
//	entries := store.Entries(history.ResourceSettings)
//	page, next, err := history.Page(entries, "")
//
// # Resolving content
//
// [Store.ResolveContent] returns a snapshot's raw text. The read side
// is deliberately fail-soft: missing history, an unreadable directory,
// or an unknown snapshot all resolve to empty rather than an error,
// because a history view has nothing better to do with the failure.
// Write-side operations ([Store.Backup], [Store.Restore]) fail hard.
//
// # Sync snapshots
//
// [SyncResolver] reads a second, externally-populated snapshot tree
// whose entries wrap the real content in a nested JSON envelope. It
// shares the store's listing behavior and differs only in root location
// and content unwrapping; both satisfy [Resolver].
package history
