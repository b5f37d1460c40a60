package history

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"

	"github.com/sandy081/userdata-history/internal/paths"
)

// SyncResolver resolves snapshots from a sync service's snapshot tree.
// The tree is populated externally and only ever read here; it shares
// the primary store's directory layout but stores each snapshot as a
// nested JSON envelope instead of raw content:
//
//	{"content": "<JSON text whose \"settings\" field is the real content>"}
//
// Read misses stay fail-soft, exactly like the primary store. Envelope
// violations do not: a snapshot that exists but cannot be unwrapped is
// a data-shape problem, not absence of data, and fails the call.
type SyncResolver struct {
	snapshotReader
}

// SyncOption configures a SyncResolver.
type SyncOption func(*SyncResolver)

// WithSyncRoot sets the root of the sync snapshot tree.
func WithSyncRoot(dir string) SyncOption {
	return func(r *SyncResolver) {
		r.rootDir = dir
	}
}

// WithSyncLogger sets the logger used for diagnostics.
func WithSyncLogger(logger *slog.Logger) SyncOption {
	return func(r *SyncResolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewSyncResolver creates a SyncResolver with the given options.
// The default root is the editor's sync directory.
func NewSyncResolver(opts ...SyncOption) *SyncResolver {
	r := &SyncResolver{
		snapshotReader: snapshotReader{
			rootDir: paths.SyncRoot(),
			logger:  slog.Default(),
		},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RootDir returns the resolver's root snapshot directory.
func (r *SyncResolver) RootDir() string {
	return r.rootDir
}

// Entries returns the resource's sync snapshots newest first.
func (r *SyncResolver) Entries(resource Resource) []Snapshot {
	return r.entries(resource)
}

// ResolveContent reads the named sync snapshot and unwraps its envelope
// down to the real configuration text.
func (r *SyncResolver) ResolveContent(resource Resource, name string) (string, error) {
	raw, ok := r.read(resource, name)
	if !ok {
		// Read misses degrade to empty, matching the primary store.
		// A snapshot that exists still goes through the unwrap, even
		// when its file is empty; an unreadable envelope is a
		// data-shape failure, not absence.
		return "", nil
	}
	return unwrapSyncEnvelope(raw)
}

// unwrapSyncEnvelope extracts the real text from a sync snapshot:
// outer JSON "content" field (a JSON-encoded string) whose "settings"
// field holds the content.
func unwrapSyncEnvelope(raw string) (string, error) {
	if !gjson.Valid(raw) {
		return "", errors.Wrap(ErrMalformedEnvelope, "outer document is not valid JSON")
	}

	content := gjson.Get(raw, "content")
	if content.Type != gjson.String {
		return "", errors.Wrap(ErrMalformedEnvelope, "content field missing or not a string")
	}

	inner := content.String()
	if !gjson.Valid(inner) {
		return "", errors.Wrap(ErrMalformedEnvelope, "content payload is not valid JSON")
	}

	settings := gjson.Get(inner, "settings")
	if settings.Type != gjson.String {
		return "", errors.Wrap(ErrMalformedEnvelope, "settings field missing or not a string")
	}

	return settings.String(), nil
}
