// Package corpuswatch watches the corpus file with fsnotify and triggers a
// reload when it changes. Editors and atomic-save tools often produce a
// burst of events per save (write, rename, chmod), so events are debounced.
package corpuswatch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounceInterval = 200 * time.Millisecond

// Watcher monitors a single corpus file for changes.
type Watcher struct {
	fw      *fsnotify.Watcher
	done    chan struct{}
	mu      sync.Mutex
	stopped bool
}

// NewWatcher creates a new corpus file watcher.
func NewWatcher() (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("fsnotify: %w", err)
	}
	return &Watcher{
		fw:   fw,
		done: make(chan struct{}),
	}, nil
}

// Watch starts monitoring corpusPath and calls onChange after each
// (debounced) modification. The parent directory is watched rather than
// the file itself so atomic saves (write temp, rename over) keep working.
func (w *Watcher) Watch(corpusPath string, onChange func()) error {
	abs, err := filepath.Abs(corpusPath)
	if err != nil {
		return err
	}
	if err := w.fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	go func() {
		// Trailing-edge debounce: each relevant event re-arms the timer, and
		// onChange runs once the burst has gone quiet. Firing on the leading
		// edge would reload mid-save and drop the write that completes the
		// burst.
		timer := time.NewTimer(debounceInterval)
		if !timer.Stop() {
			<-timer.C
		}
		defer timer.Stop()

		for {
			select {
			case event, ok := <-w.fw.Events:
				if !ok {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Rename) {
					continue
				}
				if !timer.Stop() {
					select {
					case <-timer.C:
					default:
					}
				}
				timer.Reset(debounceInterval)

			case <-timer.C:
				onChange()

			case _, ok := <-w.fw.Errors:
				if !ok {
					return
				}
				// fsnotify recovers on its own; nothing useful to do here

			case <-w.done:
				return
			}
		}
	}()

	return nil
}

// Stop ends monitoring and releases resources. Safe to call multiple times.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.stopped {
		return nil
	}
	w.stopped = true
	close(w.done)
	return w.fw.Close()
}
