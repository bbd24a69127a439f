package config

import (
	"errors"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// WatcherEvent carries a reloaded profile or the error that prevented the
// reload.
type WatcherEvent struct {
	Profile *Profile
	Error   error
}

// Watcher watches a profile file and delivers a reloaded profile whenever
// it changes. Used by watch mode to regenerate the library while the
// profile is being tuned.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan WatcherEvent
	done    chan struct{}
	mu      sync.Mutex
	running bool
}

// NewWatcher creates a Watcher for the given profile path.
func NewWatcher(path string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		path:    path,
		watcher: fsWatcher,
		events:  make(chan WatcherEvent, 10),
		done:    make(chan struct{}),
	}, nil
}

// Start begins watching the profile file.
func (w *Watcher) Start() error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return errors.New("watcher already running")
	}
	w.running = true
	w.mu.Unlock()

	if err := w.watcher.Add(w.path); err != nil {
		return err
	}

	go w.processEvents()
	return nil
}

// Stop stops watching the profile file.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	w.mu.Unlock()

	close(w.done)
	w.watcher.Close()
}

// Events returns the channel on which profile changes are delivered.
func (w *Watcher) Events() <-chan WatcherEvent {
	return w.events
}

func (w *Watcher) processEvents() {
	defer close(w.events)

	for {
		select {
		case <-w.done:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.handleFileChange()
			}

			// Editors often replace the file instead of writing in
			// place; re-add the watch so the new inode is covered.
			if event.Op&fsnotify.Remove != 0 {
				_ = w.watcher.Add(w.path)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.events <- WatcherEvent{Error: err}
		}
	}
}

func (w *Watcher) handleFileChange() {
	p, err := Load(w.path)
	if err != nil {
		w.events <- WatcherEvent{Error: err}
		return
	}
	if err := p.Validate(); err != nil {
		w.events <- WatcherEvent{Error: err}
		return
	}
	w.events <- WatcherEvent{Profile: p}
}
