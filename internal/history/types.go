package history

import (
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

// Resource identifies a tracked configuration file.
// The set is closed; extending it means adding a constant here and a
// live-file path in the paths package.
type Resource string

// The tracked configuration resources.
const (
	ResourceSettings    Resource = "settings"
	ResourceKeybindings Resource = "keybindings"
)

// Resources returns all tracked resources.
func Resources() []Resource {
	return []Resource{ResourceSettings, ResourceKeybindings}
}

// Valid reports whether r is one of the tracked resources.
func (r Resource) Valid() bool {
	switch r {
	case ResourceSettings, ResourceKeybindings:
		return true
	}
	return false
}

func (r Resource) String() string {
	return string(r)
}

// ParseResource converts a string to a Resource.
// Returns ErrUnknownResource for anything outside the tracked set.
func ParseResource(s string) (Resource, error) {
	r := Resource(s)
	if !r.Valid() {
		return "", errors.Wrapf(ErrUnknownResource, "%q", s)
	}
	return r, nil
}

// snapshotNameFormat is the time layout for snapshot names (YYYYMMDDTHHMMSS).
// Fixed-width zero-padded fields make lexicographic order equal
// chronological order.
const snapshotNameFormat = "20060102T150405"

// snapshotNamePattern accepts both the suffixed and the older unsuffixed
// naming convention.
var snapshotNamePattern = regexp.MustCompile(`^\d{8}T\d{6}(\.json)?$`)

// Sentinel errors for history operations.
var (
	// ErrUnknownResource indicates the resource is not in the tracked set.
	ErrUnknownResource = errors.New("unknown resource")

	// ErrSnapshotNotFound indicates the named snapshot does not exist.
	ErrSnapshotNotFound = errors.New("snapshot not found")

	// ErrInvalidCursor indicates a paging cursor that is not a decimal offset.
	ErrInvalidCursor = errors.New("invalid cursor")

	// ErrMalformedEnvelope indicates a sync snapshot whose nested JSON
	// envelope does not have the expected shape.
	ErrMalformedEnvelope = errors.New("malformed sync envelope")
)

// Snapshot is one immutable captured version of a resource's content.
type Snapshot struct {
	// Resource is the configuration resource this snapshot belongs to.
	Resource Resource

	// Name is the snapshot's identifier: a YYYYMMDDTHHMMSS timestamp
	// token, optionally suffixed ".json". It is both the filename and
	// the sort key.
	Name string

	// CreatedAt is decoded from Name's digits as local calendar fields.
	// Filesystem timestamps are deliberately not consulted; copy and
	// sync operations can alter them.
	CreatedAt time.Time

	// Location is the snapshot's path relative to the store root.
	Location string
}

// ValidSnapshotName reports whether name matches the snapshot naming
// scheme, with or without the ".json" suffix.
func ValidSnapshotName(name string) bool {
	return snapshotNamePattern.MatchString(name)
}

// ParseSnapshotTime decodes a snapshot name into its creation time,
// interpreting the digits as local calendar fields.
func ParseSnapshotTime(name string) (time.Time, error) {
	body := strings.TrimSuffix(name, ".json")
	t, err := time.ParseInLocation(snapshotNameFormat, body, time.Local)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "parsing snapshot name %q", name)
	}
	return t, nil
}

// newSnapshot builds a Snapshot for a validated name.
func newSnapshot(resource Resource, name string) Snapshot {
	createdAt, _ := ParseSnapshotTime(name)
	return Snapshot{
		Resource:  resource,
		Name:      name,
		CreatedAt: createdAt,
		Location:  filepath.Join(string(resource), name),
	}
}

// Resolver is the read-side capability shared by the primary store and
// the sync-variant resolver: enumerate a resource's history and resolve
// a named snapshot to text.
type Resolver interface {
	// Entries returns the resource's snapshots newest first. Listing
	// is fail-soft: "no history yet" and "cannot read history" both
	// yield an empty result.
	Entries(resource Resource) []Snapshot

	// ResolveContent returns the text of the named snapshot. A read
	// miss is fail-soft (empty string, nil error); implementations may
	// fail hard on content-shape violations.
	ResolveContent(resource Resource, name string) (string, error)
}

var (
	_ Resolver = (*Store)(nil)
	_ Resolver = (*SyncResolver)(nil)
)
