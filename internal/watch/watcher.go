package watch

import (
	"fmt"
	"sync"
	"time"

	"finder4/internal/log"

	"github.com/fsnotify/fsnotify"
)

// Refresh is emitted when the contents of a watched directory change and
// the columns showing it should be rebuilt.
type Refresh struct {
	Dir       string
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher tracks the directories currently shown in filesystem columns and
// emits refresh events when their contents change externally.
type Watcher struct {
	// Directories being watched
	directories []string

	// Channel delivering refresh events
	refreshChan chan Refresh

	// Channel to signal stop
	stopChan chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the directories list
	mutex sync.RWMutex

	// Whether the watcher is running
	running bool
}

// New creates a new directory watcher using fsnotify
func New() (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	return &Watcher{
		directories: []string{},
		refreshChan: make(chan Refresh, 10),
		stopChan:    make(chan struct{}),
		fsWatcher:   fsWatcher,
		running:     false,
	}, nil
}

// SetDirectories replaces the watched set with the given directories.
// Called after every selection change so the watcher follows the columns.
func (w *Watcher) SetDirectories(dirs []string) {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	for _, old := range w.directories {
		if err := w.fsWatcher.Remove(old); err != nil {
			log.LogWithFields(log.F("directory", old), log.F("error", err)).Debug("Failed to unwatch directory")
		}
	}

	w.directories = w.directories[:0]
	for _, dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			// Unreadable or vanished directories simply stay unwatched.
			log.LogWithFields(log.F("directory", dir), log.F("error", err)).Debug("Failed to watch directory")
			continue
		}
		w.directories = append(w.directories, dir)
	}
}

// Events returns the channel that delivers refresh events
func (w *Watcher) Events() <-chan Refresh {
	return w.refreshChan
}

// Start begins the event processing loop
func (w *Watcher) Start() error {
	w.mutex.Lock()
	if w.running {
		w.mutex.Unlock()
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.mutex.Unlock()

	// Create a new stop channel each time Start is called
	w.stopChan = make(chan struct{})

	go func() {
		for {
			select {
			case event, ok := <-w.fsWatcher.Events:
				if !ok {
					return // Channel closed
				}

				if event.Op.Has(fsnotify.Create) || event.Op.Has(fsnotify.Remove) ||
					event.Op.Has(fsnotify.Rename) || event.Op.Has(fsnotify.Write) {
					refresh := Refresh{
						Dir:       event.Name,
						Timestamp: time.Now(),
						Op:        event.Op,
					}

					// Send non-blockingly; a pending refresh already covers
					// any newer change.
					select {
					case w.refreshChan <- refresh:
					default:
					}
				}

			case err, ok := <-w.fsWatcher.Errors:
				if !ok {
					return // Channel closed
				}
				log.LogWithFields(log.F("error", err)).Errorf("fsnotify watcher error")

			case <-w.stopChan:
				return // Exit goroutine
			}
		}
	}()

	log.Info("Watcher started.")
	return nil
}

// Stop halts the watcher and closes the event channel
func (w *Watcher) Stop() {
	w.mutex.Lock()
	defer w.mutex.Unlock()

	if !w.running {
		return // Already stopped
	}

	close(w.stopChan)

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err)).Errorf("Error closing fsnotify watcher")
	}

	w.running = false

	close(w.refreshChan)

	log.Info("Watcher stopped.")
}

// IsRunning returns whether the watcher is currently active
func (w *Watcher) IsRunning() bool {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	return w.running
}

// Directories returns the list of directories being watched
func (w *Watcher) Directories() []string {
	w.mutex.RLock()
	defer w.mutex.RUnlock()
	dirsCopy := make([]string, len(w.directories))
	copy(dirsCopy, w.directories)
	return dirsCopy
}
