// Package watch reloads the inventory file whenever it changes on disk.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rogerio-castellano/inventory-store/internal/inventory"
	"github.com/rogerio-castellano/inventory-store/internal/repo"
	"go.uber.org/zap"
)

// ChangeFunc receives the freshly loaded inventory after each change.
type ChangeFunc func(inv *inventory.Inventory, status repo.LoadStatus)

// Watcher watches a single inventory file. The parent directory is watched
// rather than the file itself so editors that replace the file on save are
// still seen.
type Watcher struct {
	path     string
	dir      string
	repo     repo.InventoryRepository
	debounce time.Duration
	onChange ChangeFunc
	log      *zap.SugaredLogger
}

// New creates a Watcher for path. Changes are reloaded through r.
func New(path string, r repo.InventoryRepository, debounce time.Duration, onChange ChangeFunc, log *zap.SugaredLogger) *Watcher {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return &Watcher{
		path:     abs,
		dir:      filepath.Dir(abs),
		repo:     r,
		debounce: debounce,
		onChange: onChange,
		log:      log,
	}
}

// Run blocks until ctx is cancelled or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer fw.Close()

	if err := fw.Add(w.dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", w.dir, err)
	}
	w.log.Infof("Watching %s for changes.", w.path)

	timer := time.NewTimer(w.debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("Watcher stopped.")
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(event) {
				continue
			}
			w.log.Debugf("%s event for %s", event.Op, event.Name)
			timer.Reset(w.debounce)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Errorw("Watcher error", "error", err)

		case <-timer.C:
			w.reload()
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) != 0
}

func (w *Watcher) reload() {
	inv, status, err := w.repo.Load()
	if err != nil {
		w.log.Errorw("Failed to reload inventory", "path", w.path, "error", err)
		return
	}
	if w.onChange != nil {
		w.onChange(inv, status)
	}
}
