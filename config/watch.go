package config

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the configuration file whenever it changes and sends
// each valid reload on the returned channel. A config that fails to
// parse or validate is skipped, so the consumer only ever sees usable
// configs. The channel is closed when ctx is cancelled.
//
// Uses fsnotify for efficient file watching with a polling fallback.
func Watch(ctx context.Context, path string) (<-chan Config, error) {
	// Fail fast on an unloadable initial config.
	if _, err := Load(path); err != nil {
		return nil, err
	}

	ch := make(chan Config, 1)

	go func() {
		defer close(ch)

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			watchPolling(ctx, ch, path)
			return
		}

		// Watch the directory; editors often replace the file, which
		// a direct file watch loses track of.
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			watcher.Close()
			watchPolling(ctx, ch, path)
			return
		}
		defer watcher.Close()

		watchEvents(ctx, ch, path, watcher)
	}()

	return ch, nil
}

func watchEvents(ctx context.Context, ch chan<- Config, path string, watcher *fsnotify.Watcher) {
	baseName := filepath.Base(path)

	for {
		select {
		case <-ctx.Done():
			return

		case event, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			reload(ctx, ch, path)

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Usually recoverable.
			_ = err
		}
	}
}

// watchPolling checks the file's modification time on an interval.
func watchPolling(ctx context.Context, ch chan<- Config, path string) {
	var lastMod time.Time
	if info, err := os.Stat(path); err == nil {
		lastMod = info.ModTime()
	}

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-ticker.C:
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if !info.ModTime().After(lastMod) {
				continue
			}
			lastMod = info.ModTime()
			reload(ctx, ch, path)
		}
	}
}

func reload(ctx context.Context, ch chan<- Config, path string) {
	cfg, err := Load(path)
	if err != nil {
		return
	}
	select {
	case ch <- cfg:
	case <-ctx.Done():
	}
}
