package worksheet

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultSettle is how long the watcher waits after a change before
// reloading, so that a burst of writes is handled once.
const DefaultSettle = 100 * time.Millisecond

// Watcher reloads a worksheet file whenever it changes and hands the
// result to a callback.
type Watcher struct {
	path     string
	settle   time.Duration
	logger   *zap.Logger
	onChange func(*Worksheet, error)

	mu         sync.Mutex
	watcher    *fsnotify.Watcher
	isWatching bool
	done       chan struct{}
}

func NewWatcher(path string, logger *zap.Logger, onChange func(*Worksheet, error)) *Watcher {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Watcher{
		path:     filepath.Clean(path),
		settle:   DefaultSettle,
		logger:   logger,
		onChange: onChange,
	}
}

// Start watches the directory holding the worksheet. Watching the
// directory rather than the file keeps working across editors that save
// by renaming a temporary file over the original.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isWatching {
		return fmt.Errorf("already watching")
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(w.path)); err != nil {
		fw.Close()
		return fmt.Errorf("error adding directory to watcher: %w", err)
	}

	w.watcher = fw
	w.isWatching = true
	w.done = make(chan struct{})
	go w.watchLoop(fw, w.done)
	return nil
}

func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if !w.isWatching {
		w.logger.Debug("not watching", zap.String("path", w.path))
		return nil
	}

	w.isWatching = false
	err := w.watcher.Close()
	<-w.done
	return err
}

func (w *Watcher) watchLoop(fw *fsnotify.Watcher, done chan struct{}) {
	defer close(done)
	for {
		select {
		case event, ok := <-fw.Events:
			if !ok {
				return
			}
			w.handleFileEvent(event)
		case err, ok := <-fw.Errors:
			if !ok {
				return
			}
			w.logger.Error("watch error", zap.String("path", w.path), zap.Error(err))
		}
	}
}

func (w *Watcher) handleFileEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != w.path {
		return
	}
	if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}

	// wait for a while after file change to consider multiple changes as one
	time.Sleep(w.settle)
	ws, err := Load(w.path)
	if err != nil {
		w.logger.Error("error reloading worksheet", zap.String("path", w.path), zap.Error(err))
	} else {
		w.logger.Debug("worksheet reloaded", zap.String("path", w.path), zap.String("name", ws.Name))
	}
	w.onChange(ws, err)
}
