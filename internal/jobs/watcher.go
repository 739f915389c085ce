package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a definitions file must stay quiet before a
// change triggers a reload.
const DefaultDebounce = 250 * time.Millisecond

// SourceWatcher reloads the catalog when its definitions file changes.
//
// The parent directory is watched rather than the file so that editors which
// save by renaming a temp file over the original are still seen.
type SourceWatcher struct {
	path     string
	reloader Reloader
	logger   *slog.Logger
	debounce time.Duration
	timeout  time.Duration

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	mu      sync.Mutex
}

// SourceWatcherConfig configures a SourceWatcher.
type SourceWatcherConfig struct {
	Path     string
	Reloader Reloader
	Logger   *slog.Logger
	Debounce time.Duration // default DefaultDebounce
}

// NewSourceWatcher creates a watcher for cfg.Path. Nothing is watched until
// Start.
func NewSourceWatcher(cfg SourceWatcherConfig) (*SourceWatcher, error) {
	path, err := filepath.Abs(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", cfg.Path, err)
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	return &SourceWatcher{
		path:     path,
		reloader: cfg.Reloader,
		logger:   cfg.Logger,
		debounce: cfg.Debounce,
		timeout:  30 * time.Second,
		watcher:  fw,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start watches the file's directory and begins the event loop.
func (w *SourceWatcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	if err := w.watcher.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(w.path), err)
	}
	w.running = true

	go w.run()
	w.logger.Info("catalog watcher started", slog.String("path", w.path))
	return nil
}

// Stop ends the event loop and releases the underlying watcher. A watcher
// cannot be restarted.
func (w *SourceWatcher) Stop() {
	w.mu.Lock()
	wasRunning := w.running
	w.running = false
	w.mu.Unlock()

	if wasRunning {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("closing catalog watcher", slog.String("error", err.Error()))
	}
	if wasRunning {
		w.logger.Info("catalog watcher stopped")
	}
}

func (w *SourceWatcher) run() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce / 2)
	defer ticker.Stop()

	var pending time.Time

	for {
		select {
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if w.relevant(event) {
				pending = time.Now()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("catalog watcher error", slog.String("error", err.Error()))

		case now := <-ticker.C:
			if !pending.IsZero() && now.Sub(pending) >= w.debounce {
				pending = time.Time{}
				w.reload()
			}
		}
	}
}

// relevant reports whether event means the watched file has new content.
// Removals are ignored; the catalog keeps serving until the file returns.
func (w *SourceWatcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}

func (w *SourceWatcher) reload() {
	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	w.logger.Debug("catalog file changed", slog.String("path", w.path))
	_ = w.reloader.Reload(ctx)
}
