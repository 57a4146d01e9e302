// Package fsnotify implements the ports.Watcher interface using github.com/fsnotify/fsnotify.
// It watches the parent directories of a fixed set of files so that editors which
// save by rename-and-replace are still seen, and debounces rapid events (editors
// often trigger multiple writes per save).
package fsnotify

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceInterval is the quiet period after the last event on a path
// before onChange fires for it.
const debounceInterval = 50 * time.Millisecond

// Watcher implements ports.Watcher using fsnotify.
type Watcher struct {
	fw   *fsnotify.Watcher
	done chan struct{}

	mu      sync.Mutex
	stopped bool
	timers  map[string]*time.Timer

	loop    sync.WaitGroup // event goroutine
	pending sync.WaitGroup // onChange calls in progress
}

// NewWatcher creates a new file system watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		fw:     fw,
		done:   make(chan struct{}),
		timers: make(map[string]*time.Timer),
	}, nil
}

// Watch starts monitoring paths.
// onChange is called with the absolute path of each changed file once
// events on it have been quiet for debounceInterval.
func (w *Watcher) Watch(paths []string, onChange func(filePath string)) error {
	targets := make(map[string]bool, len(paths))
	dirs := make(map[string]bool)
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return err
		}
		targets[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.fw.Add(dir); err != nil {
			return err
		}
	}

	w.loop.Add(1)
	go func() {
		defer w.loop.Done()
		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				path := filepath.Clean(event.Name)
				if !targets[path] {
					continue
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.schedule(path, onChange)
				}

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// Errors are swallowed; fsnotify recovers automatically

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// schedule (re)starts the debounce timer for path. Only the timer armed by
// the latest event calls onChange.
func (w *Watcher) schedule(path string, onChange func(string)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stopped {
		return
	}
	if prev := w.timers[path]; prev != nil {
		prev.Stop()
	}

	var t *time.Timer
	t = time.AfterFunc(debounceInterval, func() {
		w.mu.Lock()
		if w.stopped || w.timers[path] != t {
			w.mu.Unlock()
			return
		}
		delete(w.timers, path)
		w.pending.Add(1)
		w.mu.Unlock()

		defer w.pending.Done()
		onChange(path)
	})
	w.timers[path] = t
}

// Stop ends monitoring and releases all resources. It waits for the event
// goroutine and any running onChange call, so it must not be called from
// inside onChange. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	if w.stopped {
		w.mu.Unlock()
		return nil
	}
	w.stopped = true
	for path, t := range w.timers {
		t.Stop()
		delete(w.timers, path)
	}
	close(w.done)
	w.mu.Unlock()

	err := w.fw.Close()
	w.loop.Wait()
	w.pending.Wait()
	return err
}
