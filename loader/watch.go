package loader

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/jokarl/lintrc/lint"
)

// DefaultDebounce is how long Watch waits after the last change event
// before reloading.
const DefaultDebounce = 200 * time.Millisecond

// Watch reloads the configuration at path whenever it changes and calls fn
// with each configuration that loads and validates. Files that fail to
// load are logged and skipped; fn keeps the last good configuration.
//
// The parent directory is watched rather than the file itself, so editors
// that save by renaming a temporary file are picked up. Watch blocks until
// ctx is cancelled and then returns nil.
func (l *Loader) Watch(ctx context.Context, path string, fn func(*lint.Config)) error {
	return l.watch(ctx, path, DefaultDebounce, fn)
}

func (l *Loader) watch(ctx context.Context, path string, debounce time.Duration, fn func(*lint.Config)) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve config path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch config directory: %w", err)
	}

	logger := l.logger().With("path", abs)
	logger.Info("watching configuration for changes")

	var (
		timer   *time.Timer
		pending <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			logger.Info("configuration watcher stopped")
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			logger.Debug("configuration file changed", "op", event.Op.String())
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(debounce)
			pending = timer.C

		case <-pending:
			pending = nil
			cfg, err := l.LoadFile(abs)
			if err != nil {
				logger.Error("configuration reload failed", "error", err)
				continue
			}
			logger.Info("configuration reloaded")
			fn(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("configuration watcher error", "error", err)
		}
	}
}
