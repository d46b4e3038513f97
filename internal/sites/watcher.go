// This file implements a file system watcher for the sites directory.
// It uses OS-level file system events so a long prompt session picks up
// edited site definitions without a restart.

package sites

import (
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher watches the sites directory and reloads the List
// when definition files are added, modified, or deleted.
type Watcher struct {
	list          *List
	watcher       *fsnotify.Watcher
	mu            sync.Mutex
	debounceTimer *time.Timer
	debounceDelay time.Duration
	stopChan      chan struct{}
}

// NewWatcher creates a watcher for the given site list.
func NewWatcher(list *List) *Watcher {
	return &Watcher{
		list:          list,
		debounceDelay: 500 * time.Millisecond, // editors fire several events per save
		stopChan:      make(chan struct{}),
	}
}

// Start begins watching the sites directory for changes. A missing
// directory is not an error; there is simply nothing to watch.
func (w *Watcher) Start() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	w.watcher = watcher

	if err := watcher.Add(w.list.dir); err != nil {
		watcher.Close()
		return err
	}

	log.Printf("Site watcher started for: %s", w.list.dir)

	go w.processEvents()
	return nil
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	close(w.stopChan)
	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}

func (w *Watcher) processEvents() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Site watcher error: %v", err)

		case <-w.stopChan:
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	// Chmod events fire when files are merely read; they never change the
	// definitions, so they are ignored.
	if event.Op == fsnotify.Chmod {
		return
	}
	if filepath.Ext(event.Name) != ".json" {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.debounceDelay, w.reload)
}

func (w *Watcher) reload() {
	if err := w.list.Reload(); err != nil {
		log.Printf("Warning: failed to reload site definitions: %v", err)
		return
	}
	log.Printf("Site definitions reloaded (%d sites)", len(w.list.All()))
}
