// file: internal/watcher/watcher.go
// version: 3.0.0
// guid: b2c3d4e5-f6a7-8901-bcde-f23456789012

package watcher

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is the default debounce period.
const DefaultDebounce = 500 * time.Millisecond

// Callback is invoked after the debounce period with the watched file path.
type Callback func(path string)

// Watcher reports changes to a single file, such as the catalog being
// rewritten by another process. The parent directory is watched rather than
// the file itself because atomic rewrites replace the file's inode.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	path      string
	debounce  time.Duration
	callback  Callback
	logger    *zap.Logger
	stop      chan struct{}
	stopped   chan struct{}
	mu        sync.Mutex
	timer     *time.Timer
	running   bool
	inflight  sync.WaitGroup
}

// New creates a Watcher. The callback is called after events settle for the
// debounce duration. Pass 0 for debounce to use DefaultDebounce.
func New(callback Callback, debounce time.Duration, logger *zap.Logger) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		debounce: debounce,
		callback: callback,
		logger:   logger,
		stop:     make(chan struct{}),
		stopped:  make(chan struct{}),
	}
}

// Start begins watching path. It is safe to call only once.
func (w *Watcher) Start(path string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	w.fsWatcher = fsw
	w.path = abs
	w.running = true

	go w.eventLoop()
	return nil
}

// Stop shuts down the watcher. It waits for the event loop to exit and for a
// callback that is already running to return.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.stop)
	if w.fsWatcher != nil {
		w.fsWatcher.Close()
		<-w.stopped
	}

	w.mu.Lock()
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	w.mu.Unlock()

	w.inflight.Wait()
}

func (w *Watcher) eventLoop() {
	defer close(w.stopped)

	for {
		select {
		case <-w.stop:
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("Watcher error", zap.Error(err))
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	relevant := event.Op&(fsnotify.Create|fsnotify.Remove|fsnotify.Rename|fsnotify.Write) != 0
	if !relevant {
		return
	}
	w.schedule()
}

func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.running {
		return
	}
	if w.timer != nil {
		w.timer.Reset(w.debounce)
		return
	}

	w.timer = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		w.timer = nil
		if !w.running {
			w.mu.Unlock()
			return
		}
		w.inflight.Add(1)
		w.mu.Unlock()
		defer w.inflight.Done()

		w.logger.Debug("Catalog file changed", zap.String("path", w.path))
		if w.callback != nil {
			w.callback(w.path)
		}
	})
}
