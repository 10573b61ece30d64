package catalog

import (
	"context"
	"path/filepath"
	"time"

	"github.com/asaskevich/EventBus"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// TopicReloaded is published on the event bus after a successful snapshot
// swap. Subscribers receive the new product count.
const TopicReloaded = "catalog.reloaded"

// Watcher reloads the catalog when its data files change on disk and swaps
// the handle to a fresh snapshot. It is a development convenience and is
// disabled by default; the shipped dataset is a build-time artifact.
type Watcher struct {
	dir    string
	handle *Handle
	bus    EventBus.Bus
	fsw    *fsnotify.Watcher
}

func NewWatcher(dir string, handle *Handle, bus EventBus.Bus) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}
	return &Watcher{dir: dir, handle: handle, bus: bus, fsw: fsw}, nil
}

// Start blocks until ctx is cancelled. Rapid successive events (editors write
// in bursts) are absorbed by a short settle delay before reloading.
func (w *Watcher) Start(ctx context.Context) error {
	defer func() { _ = w.fsw.Close() }()

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !w.relevant(ev) {
				continue
			}
			pending = time.After(200 * time.Millisecond)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			zap.S().Warnf("catalog watcher error: %v", err)
		case <-pending:
			pending = nil
			w.reload()
		}
	}
}

func (w *Watcher) relevant(ev fsnotify.Event) bool {
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
		return false
	}
	name := filepath.Base(ev.Name)
	return name == productsFile || name == categoriesFile
}

func (w *Watcher) reload() {
	ds, err := LoadDataset(w.dir)
	if err != nil {
		zap.S().Errorf("catalog reload failed, keeping previous snapshot: %v", err)
		return
	}
	w.handle.Swap(NewStore(ds))
	zap.L().Info("catalog reloaded",
		zap.Int("products", len(ds.Products)),
		zap.Int("categories", len(ds.Categories)))
	if w.bus != nil {
		w.bus.Publish(TopicReloaded, len(ds.Products))
	}
}
