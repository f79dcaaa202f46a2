// Package watch re-runs a callback when a user file changes on disk.
package watch

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/sansstate/internal/foundation/errors"
	"git.home.luguber.info/inful/sansstate/internal/logfields"
)

// ReloadFunc is called after the watched file settled.
type ReloadFunc func(ctx context.Context) error

// FileWatcher monitors one file and triggers debounced reloads.
type FileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	debounce time.Duration
	logger   *slog.Logger

	mu      sync.Mutex
	pending *time.Timer

	// reloading serialises reload callbacks; inflight tracks scheduled and
	// running ones so close can wait for them.
	reloading sync.Mutex
	inflight  sync.WaitGroup
}

// NewFileWatcher creates a watcher for path.
func NewFileWatcher(path string, debounce time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryConfig, "failed to resolve watched path").
			WithContext("path", path).
			Build()
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.WrapError(err, errors.CategoryInternal, "failed to create file watcher").Build()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &FileWatcher{path: abs, watcher: w, debounce: debounce, logger: logger}, nil
}

// Run watches until ctx is cancelled. The directory is watched rather than
// the file so editors that replace the file are still seen.
func (fw *FileWatcher) Run(ctx context.Context, reload ReloadFunc) error {
	defer fw.close()

	dir := filepath.Dir(fw.path)
	if err := fw.watcher.Add(dir); err != nil {
		return errors.WrapError(err, errors.CategoryConfig, "failed to watch directory").
			WithContext("path", dir).
			Build()
	}
	fw.logger.Info("Watching user file", logfields.Path(fw.path))

	name := filepath.Base(fw.path)
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			switch {
			case event.Has(fsnotify.Write), event.Has(fsnotify.Create), event.Has(fsnotify.Rename):
				fw.logger.Debug("User file change detected", logfields.Path(event.Name))
				fw.schedule(ctx, reload)
			case event.Has(fsnotify.Remove):
				fw.logger.Warn("User file removed", logfields.Path(event.Name))
			}
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Error("File watcher error", logfields.Error(err))
		}
	}
}

// schedule restarts the debounce timer. Every scheduled timer is matched by
// exactly one inflight.Done, either from a successful Stop or from the
// callback itself.
func (fw *FileWatcher) schedule(ctx context.Context, reload ReloadFunc) {
	fw.mu.Lock()
	defer fw.mu.Unlock()
	fw.stopPending()
	fw.inflight.Add(1)
	fw.pending = time.AfterFunc(fw.debounce, func() {
		defer fw.inflight.Done()
		fw.reloading.Lock()
		defer fw.reloading.Unlock()
		if ctx.Err() != nil {
			return
		}
		if err := reload(ctx); err != nil {
			fw.logger.Error("Reload failed", logfields.Path(fw.path), logfields.Error(err))
		}
	})
}

// stopPending cancels a timer that has not fired yet. Callers hold mu.
func (fw *FileWatcher) stopPending() {
	if fw.pending != nil && fw.pending.Stop() {
		fw.inflight.Done()
	}
	fw.pending = nil
}

// close stops the watcher and waits for a running reload to finish.
func (fw *FileWatcher) close() {
	fw.mu.Lock()
	fw.stopPending()
	fw.mu.Unlock()
	if err := fw.watcher.Close(); err != nil {
		fw.logger.Error("Error closing file watcher", logfields.Error(err))
	}
	fw.inflight.Wait()
}
