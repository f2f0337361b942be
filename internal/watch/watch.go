// Package watch re-runs a callback when the project file, or other
// selected paths, change on disk.
package watch

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"

	"git.home.luguber.info/inful/docuconf/internal/logfields"
)

// DefaultDebounce is how long the watcher waits for changes to settle.
const DefaultDebounce = 500 * time.Millisecond

// ChangeFunc is called after a debounced change. Errors are logged and the
// watcher keeps running.
type ChangeFunc func(ctx context.Context) error

// Watcher monitors a set of paths for changes.
type Watcher struct {
	dirs     []string
	targets  map[string]struct{}
	onChange ChangeFunc
	debounce time.Duration
	watcher  *fsnotify.Watcher
}

// New watches path and each extra path. Their parent directories are
// watched, so none of them needs to exist yet. The directory holding path
// must exist; other parent directories that are missing are skipped.
func New(path string, onChange ChangeFunc, extra ...string) (*Watcher, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve watch path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{
		targets:  map[string]struct{}{absPath: {}},
		onChange: onChange,
		debounce: DefaultDebounce,
		watcher:  fw,
	}
	if err := w.addDir(filepath.Dir(absPath)); err != nil {
		_ = fw.Close()
		return nil, err
	}

	for _, p := range extra {
		abs, err := filepath.Abs(p)
		if err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to resolve watch path %s: %w", p, err)
		}
		w.targets[abs] = struct{}{}
		if err := w.addDir(filepath.Dir(abs)); err != nil {
			slog.Debug("Skipping unwatchable directory", logfields.Path(filepath.Dir(abs)), logfields.Error(err))
		}
	}
	return w, nil
}

func (w *Watcher) addDir(dir string) error {
	if slices.Contains(w.dirs, dir) {
		return nil
	}
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.dirs = append(w.dirs, dir)
	return nil
}

// WithDebounce sets the settle time. Non-positive values are ignored.
func (w *Watcher) WithDebounce(d time.Duration) *Watcher {
	if d > 0 {
		w.debounce = d
	}
	return w
}

// Run processes events until ctx is cancelled, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() {
		if err := w.watcher.Close(); err != nil {
			slog.Error("Error closing file watcher", logfields.Error(err))
		}
	}()

	slog.Info("Watching for changes", logfields.Path(strings.Join(w.dirs, ",")), logfields.Count(len(w.targets)))

	timer := time.NewTimer(w.debounce)
	timer.Stop()

	for {
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			slog.Debug("Change detected", logfields.File(event.Name), slog.String("op", event.Op.String()))
			timer.Reset(w.debounce)

		case <-timer.C:
			start := time.Now()
			if err := w.onChange(ctx); err != nil {
				slog.Error("Failed to handle change", logfields.Error(err))
				continue
			}
			slog.Debug("Handled change", logfields.DurationMS(float64(time.Since(start).Microseconds())/1000))

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			slog.Error("File watcher error", logfields.Error(err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if _, ok := w.targets[filepath.Clean(event.Name)]; !ok {
		return false
	}
	return event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) != 0
}
