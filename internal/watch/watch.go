// Package watch triggers snapshot capture when a tracked live
// configuration file changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"

	"github.com/sandy081/userdata-history/internal/history"
	"github.com/sandy081/userdata-history/internal/paths"
)

// DefaultDebounce is how long to wait after the last change event
// before capturing a snapshot. Editors typically emit several events
// per save (truncate, write, chmod, rename of a temp file), and one
// snapshot per save is enough.
const DefaultDebounce = 500 * time.Millisecond

// Watcher observes the live configuration files of a store's tracked
// resources and calls Backup after changes settle.
type Watcher struct {
	store    *history.Store
	debounce time.Duration
	logger   *slog.Logger

	fsw     *fsnotify.Watcher
	targets map[string]history.Resource

	mu     sync.Mutex
	timers map[history.Resource]*time.Timer
}

// Option configures a Watcher.
type Option func(*Watcher)

// WithDebounce sets the settle delay before a changed file is snapshotted.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Watcher) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// New creates a Watcher over the store's live files.
// The parent directory of each live file is watched rather than the
// file itself, so atomic saves (write to temp, rename over target) are
// still observed.
func New(store *history.Store, opts ...Option) (*Watcher, error) {
	w := &Watcher{
		store:    store,
		debounce: DefaultDebounce,
		logger:   slog.Default(),
		targets:  make(map[string]history.Resource),
		timers:   make(map[history.Resource]*time.Timer),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "creating file watcher")
	}
	w.fsw = fsw

	watched := make(map[string]bool)
	for _, resource := range history.Resources() {
		livePath, ok := store.LivePath(resource)
		if !ok {
			continue
		}
		livePath = filepath.Clean(livePath)
		w.targets[livePath] = resource

		dir := filepath.Dir(livePath)
		if watched[dir] {
			continue
		}
		if err := paths.EnsureDir(dir, 0o755); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "creating watch directory %s", dir)
		}
		if err := fsw.Add(dir); err != nil {
			fsw.Close()
			return nil, errors.Wrapf(err, "watching %s", dir)
		}
		watched[dir] = true
	}

	return w, nil
}

// Run processes file events until ctx is cancelled.
// It owns the underlying watcher and closes it on return.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	defer w.stopTimers()

	w.logger.Info("watching live configuration files", "resources", len(w.targets))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			resource, ok := w.targets[filepath.Clean(ev.Name)]
			if !ok {
				continue
			}
			w.logger.Debug("live file changed", "resource", resource, "op", ev.Op)
			w.schedule(resource)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("file watcher error", "err", err)
		}
	}
}

// schedule arms (or re-arms) the per-resource debounce timer.
func (w *Watcher) schedule(resource history.Resource) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if t, ok := w.timers[resource]; ok {
		t.Stop()
	}
	w.timers[resource] = time.AfterFunc(w.debounce, func() {
		if _, err := w.store.Backup(resource); err != nil {
			w.logger.Error("snapshotting changed resource", "resource", resource, "err", err)
		}
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, t := range w.timers {
		t.Stop()
	}
}
