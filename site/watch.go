package site

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher rebuilds the site when Turtle sources change. Changes are
// debounced so a burst of writes triggers a single rebuild.
type Watcher struct {
	builder  *Builder
	debounce time.Duration
	logger   *slog.Logger
	watcher  *fsnotify.Watcher

	pendingMu sync.Mutex
	pending   map[string]struct{}
}

// NewWatcher creates a watcher around the given builder. The debounce
// interval comes from the builder's configuration.
func NewWatcher(builder *Builder, logger *slog.Logger) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.Default()
	}
	debounce := time.Duration(builder.cfg.Watch.DebounceMillis) * time.Millisecond
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}
	return &Watcher{
		builder:  builder,
		debounce: debounce,
		logger:   logger,
		watcher:  fsw,
		pending:  make(map[string]struct{}),
	}, nil
}

// Run watches the source directories of every configured module and
// rebuilds on change until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.watcher.Close()

	for _, mod := range w.builder.cfg.Modules {
		if err := w.addWatchesRecursive(globRoot(mod.Source)); err != nil {
			return err
		}
	}

	w.logger.Info("Watching vocabulary sources",
		"modules", len(w.builder.cfg.Modules),
		"debounce", w.debounce)

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleFSEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("Watcher error", "error", err)

		case <-ticker.C:
			w.flushPending()
		}
	}
}

// globRoot returns the longest directory prefix of a glob pattern that
// contains no metacharacters.
func globRoot(pattern string) string {
	dir := pattern
	for strings.ContainsAny(dir, "*?[{") {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "."
		}
		dir = parent
	}
	return dir
}

func (w *Watcher) addWatchesRecursive(root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if !info.IsDir() {
			return nil
		}
		base := filepath.Base(path)
		if strings.HasPrefix(base, ".") && base != "." {
			return filepath.SkipDir
		}
		if err := w.watcher.Add(path); err != nil {
			w.logger.Warn("Failed to watch directory", "path", path, "error", err)
		} else {
			w.logger.Debug("Watching directory", "path", path)
		}
		return nil
	})
}

func (w *Watcher) handleFSEvent(event fsnotify.Event) {
	path := event.Name

	// New directories get their own watch so nested sources are covered.
	if event.Has(fsnotify.Create) {
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			if err := w.watcher.Add(path); err != nil {
				w.logger.Warn("Failed to watch new directory", "path", path, "error", err)
			}
			return
		}
	}

	if !strings.EqualFold(filepath.Ext(path), ".ttl") {
		return
	}

	w.pendingMu.Lock()
	w.pending[path] = struct{}{}
	w.pendingMu.Unlock()

	w.logger.Debug("Source change detected", "path", path, "op", event.Op.String())
}

func (w *Watcher) flushPending() {
	w.pendingMu.Lock()
	n := len(w.pending)
	w.pending = make(map[string]struct{})
	w.pendingMu.Unlock()
	if n == 0 {
		return
	}

	w.logger.Info("Rebuilding site", "changed_files", n)
	if _, err := w.builder.Build(); err != nil {
		w.logger.Error("Rebuild failed", "error", err)
	}
}
