package history

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/sandy081/userdata-history/internal/paths"
	"github.com/sandy081/userdata-history/pkg/fileutil"
)

// Store owns a writable snapshot tree and creates, enumerates, and
// resolves snapshots for the tracked resources. It is the sole writer
// of its root directory.
type Store struct {
	snapshotReader

	livePaths map[Resource]string
	clock     Clock
	notifier  *Notifier
	logger    *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithRootDir sets the root snapshot directory.
func WithRootDir(dir string) Option {
	return func(s *Store) {
		s.rootDir = dir
	}
}

// WithClock sets the clock used for snapshot naming.
func WithClock(c Clock) Option {
	return func(s *Store) {
		if c != nil {
			s.clock = c
		}
	}
}

// WithLivePath overrides the live configuration file path for a resource.
func WithLivePath(resource Resource, path string) Option {
	return func(s *Store) {
		s.livePaths[resource] = path
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithNotifier sets the change notifier, letting callers share one
// notifier across stores.
func WithNotifier(n *Notifier) Option {
	return func(s *Store) {
		if n != nil {
			s.notifier = n
		}
	}
}

// NewStore creates a Store with the given options.
// Defaults: the backup root under the udh config directory, the
// editor's user directory for live files, and the system clock.
func NewStore(opts ...Option) *Store {
	s := &Store{
		snapshotReader: snapshotReader{rootDir: paths.BackupRoot()},
		livePaths: map[Resource]string{
			ResourceSettings:    paths.LiveFile(string(ResourceSettings)),
			ResourceKeybindings: paths.LiveFile(string(ResourceKeybindings)),
		},
		clock:    RealClock{},
		notifier: NewNotifier(),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.snapshotReader.logger = s.logger
	return s
}

// RootDir returns the store's root snapshot directory.
func (s *Store) RootDir() string {
	return s.rootDir
}

// LivePath returns the live configuration file path for a resource.
func (s *Store) LivePath(resource Resource) (string, bool) {
	p, ok := s.livePaths[resource]
	return p, ok
}

// Subscribe registers fn on the store's change stream.
// fn is invoked synchronously once per successful Backup with the
// affected resource. The returned function cancels the subscription.
func (s *Store) Subscribe(fn func(Resource)) (unsubscribe func()) {
	return s.notifier.Subscribe(fn)
}

// Backup captures the current content of the resource's live file as a
// new snapshot and fires one change event.
//
// The snapshot name is the current local time formatted as
// YYYYMMDDTHHMMSS; two backups within the same second share a name and
// the later one overwrites the earlier. This is a known limitation of
// the naming scheme, kept so names stay parseable fixed-width sort keys.
//
// Unlike reads, Backup is fail-hard: a failed capture must be visible
// to whatever triggered it.
func (s *Store) Backup(resource Resource) (*Snapshot, error) {
	if !resource.Valid() {
		return nil, errors.Wrapf(ErrUnknownResource, "%q", resource)
	}

	livePath, ok := s.livePaths[resource]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownResource, "no live path for %q", resource)
	}

	data, err := fileutil.ReadFileWithLimit(livePath)
	if err != nil {
		return nil, errors.Wrapf(err, "reading live file for %s", resource)
	}

	dir := filepath.Join(s.rootDir, string(resource))
	if err := paths.EnsureDir(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "creating snapshot directory")
	}

	name := s.clock.Now().Format(snapshotNameFormat) + ".json"
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return nil, errors.Wrapf(err, "writing snapshot %s", name)
	}

	snap := newSnapshot(resource, name)
	s.logger.Debug("snapshot created", "resource", resource, "name", name, "bytes", len(data))

	s.notifier.Notify(resource)
	return &snap, nil
}

// Entries returns the resource's snapshot history newest first.
func (s *Store) Entries(resource Resource) []Snapshot {
	return s.entries(resource)
}

// ResolveContent returns the raw text of the named snapshot.
// The primary store never fails here: any miss resolves to "".
func (s *Store) ResolveContent(resource Resource, name string) (string, error) {
	content, _ := s.read(resource, name)
	return content, nil
}

// Restore writes the named snapshot's content back to the resource's
// live configuration file. The current live file is snapshotted first
// so the restore itself is undoable; a live file that does not exist
// yet skips that safety snapshot.
func (s *Store) Restore(resource Resource, name string) error {
	if !resource.Valid() {
		return errors.Wrapf(ErrUnknownResource, "%q", resource)
	}

	livePath, ok := s.livePaths[resource]
	if !ok {
		return errors.Wrapf(ErrUnknownResource, "no live path for %q", resource)
	}

	data, err := os.ReadFile(filepath.Join(s.rootDir, string(resource), name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.Wrapf(ErrSnapshotNotFound, "%s/%s", resource, name)
		}
		return errors.Wrapf(err, "reading snapshot %s", name)
	}

	if _, err := s.Backup(resource); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return errors.Wrap(err, "snapshotting current state before restore")
	}

	if err := paths.EnsureDir(filepath.Dir(livePath), 0o755); err != nil {
		return errors.Wrap(err, "creating live file directory")
	}
	if err := fileutil.AtomicWriteFile(livePath, data, 0o644); err != nil {
		return errors.Wrapf(err, "restoring %s", resource)
	}

	s.logger.Info("snapshot restored", "resource", resource, "name", name)
	return nil
}
