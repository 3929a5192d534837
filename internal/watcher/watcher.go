// Package watcher recompares test cases when MiniPdf output changes on disk.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/shps951023/minipdf-bench/internal/logger"
)

// debounceDelay coalesces the burst of events a single file write produces.
const debounceDelay = 500 * time.Millisecond

// Watcher observes a directory of MiniPdf PDFs and invokes a callback with
// the case name once a changed file has settled.
type Watcher struct {
	dir      string
	onChange func(caseName string)
	fsw      *fsnotify.Watcher

	mu     sync.Mutex
	timers map[string]*time.Timer
}

// New creates a Watcher on dir. The callback runs on a timer goroutine after
// the debounce delay.
func New(dir string, onChange func(caseName string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	return &Watcher{
		dir:      dir,
		onChange: onChange,
		fsw:      fsw,
		timers:   make(map[string]*time.Timer),
	}, nil
}

// Run processes filesystem events until the context is cancelled.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()
	logger.Log.Infof("watching %s for changes", w.dir)

	for {
		select {
		case <-ctx.Done():
			w.stopTimers()
			return ctx.Err()
		case event, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
				continue
			}
			if strings.ToLower(filepath.Ext(event.Name)) != ".pdf" {
				continue
			}
			w.trigger(event.Name)
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			logger.Log.Warnf("watch error: %v", err)
		}
	}
}

// trigger schedules or resets the debounce timer for a file's case name.
func (w *Watcher) trigger(path string) {
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	w.mu.Lock()
	defer w.mu.Unlock()

	if timer, exists := w.timers[name]; exists {
		timer.Stop()
	}
	w.timers[name] = time.AfterFunc(debounceDelay, func() {
		w.mu.Lock()
		delete(w.timers, name)
		w.mu.Unlock()

		logger.Log.Infof("change detected: %s", name)
		w.onChange(name)
	})
}

func (w *Watcher) stopTimers() {
	w.mu.Lock()
	defer w.mu.Unlock()

	for _, timer := range w.timers {
		timer.Stop()
	}
	w.timers = make(map[string]*time.Timer)
}
