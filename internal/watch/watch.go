// Package watch re-runs a function whenever a file changes on disk.
package watch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when a Watcher is built with a non-positive debounce.
const DefaultDebounce = 200 * time.Millisecond

// Watcher fires a callback once a watched file has been quiet for the
// debounce interval after a write, create or rename.
type Watcher struct {
	path     string
	debounce time.Duration
	log      *slog.Logger
}

// New returns a Watcher for path. A nil logger discards output.
func New(path string, debounce time.Duration, log *slog.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &Watcher{path: filepath.Clean(path), debounce: debounce, log: log}
}

// Run watches the parent directory of the file, so editors that replace the
// file by rename are still seen, and calls fn after each settled change.
// Errors from fn are logged and do not stop the watch. Run returns nil when
// ctx is cancelled.
func (w *Watcher) Run(ctx context.Context, fn func() error) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer fw.Close()

	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	w.log.Info("watching", "path", w.path, "debounce", w.debounce)

	var pending time.Time
	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create) || ev.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < w.debounce {
				continue
			}
			pending = time.Time{}
			w.log.Debug("change settled", "path", w.path)
			if err := fn(); err != nil {
				w.log.Error("reload failed", "path", w.path, "err", err)
			}

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			if errors.Is(err, fsnotify.ErrEventOverflow) {
				pending = time.Now()
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}
