package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/acrodrig/hub/pkg/hub"
)

// Watch applies the rules file to the hub, then blocks reapplying it on
// every change until the context is canceled. Editors and config managers
// often replace files atomically (rename over the original), so rename and
// remove events re-add the path to the watcher after a short settle delay.
// A file that fails to parse leaves the previous rules in place.
func Watch(ctx context.Context, path string, h *hub.Hub) error {
	if err := ApplyFile(path, h); err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating rules file watcher: %w", err)
	}
	defer func() {
		_ = watcher.Close()
	}()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("watching rules file %s: %w", path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
				!event.Has(fsnotify.Rename) && !event.Has(fsnotify.Remove) {
				continue
			}
			if event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove) {
				// Give the atomic write time to land, then re-watch the
				// replacement file.
				time.Sleep(200 * time.Millisecond)
				if _, err := os.Stat(path); os.IsNotExist(err) {
					continue
				}
				_ = watcher.Add(path)
			} else {
				time.Sleep(100 * time.Millisecond)
			}
			if err := ApplyFile(path, h); err != nil {
				h.Get("hub.config").Warn("rules file reload failed:", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			h.Get("hub.config").Warn("rules file watcher error:", err)
		}
	}
}
