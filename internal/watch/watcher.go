package watch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Handler receives the template file's current contents after each settled
// change.
type Handler func(path string, content []byte)

// Watcher observes a single template file and invokes a handler once per
// settled burst of writes.
type Watcher struct {
	path      string
	scheduler *Scheduler
	handler   Handler

	fsw *fsnotify.Watcher
}

// NewWatcher watches path. The parent directory is registered rather than the
// file itself so editors that replace the file on save keep being observed.
func NewWatcher(path string, minDelay, maxDelay time.Duration, handler Handler) (*Watcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("handler is required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	return &Watcher{
		path:      abs,
		scheduler: NewScheduler(minDelay, maxDelay),
		handler:   handler,
		fsw:       fsw,
	}, nil
}

// Run blocks, dispatching debounced change notifications until ctx is done
// or the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.scheduler.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			w.scheduleReload()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watch failed: %w", err)
		}
	}
}

func (w *Watcher) scheduleReload() {
	size := 0
	if info, err := os.Stat(w.path); err == nil {
		size = int(info.Size())
	}
	w.scheduler.Schedule(size, func() {
		content, err := os.ReadFile(w.path)
		if err != nil {
			return
		}
		w.handler(w.path, content)
	})
}

// Close stops watching and releases the inotify handle.
func (w *Watcher) Close() error {
	w.scheduler.Stop()
	return w.fsw.Close()
}
