package history

import (
	"log/slog"
	"os"
	"path/filepath"
	"slices"
)

// snapshotReader is the listing and raw-read behavior shared by the
// primary store and the sync-variant resolver. Both point it at a
// snapshot directory tree: <rootDir>/<resource>/<name>.
//
// All reads are fail-soft. The UI cannot distinguish "no history" from
// "history currently unreadable", so both degrade to an empty result
// instead of an error.
type snapshotReader struct {
	rootDir string
	logger  *slog.Logger
}

// entries lists a resource's snapshots newest first.
func (r snapshotReader) entries(resource Resource) []Snapshot {
	dir := filepath.Join(r.rootDir, string(resource))

	ents, err := os.ReadDir(dir)
	if err != nil {
		r.logger.Debug("listing snapshots", "resource", resource, "err", err)
		return nil
	}

	names := make([]string, 0, len(ents))
	for _, e := range ents {
		if e.IsDir() || !ValidSnapshotName(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}

	// Fixed-width zero-padded names: lexicographic order is
	// chronological order. Reverse for newest first.
	slices.Sort(names)
	slices.Reverse(names)

	snaps := make([]Snapshot, len(names))
	for i, name := range names {
		snaps[i] = newSnapshot(resource, name)
	}
	return snaps
}

// read returns the raw text of a named snapshot. ok is false on a
// miss, which callers must not mistake for a snapshot that exists and
// is empty.
func (r snapshotReader) read(resource Resource, name string) (content string, ok bool) {
	// Names outside the snapshot scheme are not snapshots; this also
	// keeps path traversal out of the root.
	if !ValidSnapshotName(name) {
		return "", false
	}

	data, err := os.ReadFile(filepath.Join(r.rootDir, string(resource), name))
	if err != nil {
		r.logger.Debug("reading snapshot", "resource", resource, "name", name, "err", err)
		return "", false
	}
	return string(data), true
}
