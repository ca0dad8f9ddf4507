package watch

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	serr "modemap/internal/errors"
	"modemap/internal/log"

	"github.com/fsnotify/fsnotify"
)

// FileModification represents a file event detected by the watcher
type FileModification struct {
	Path      string
	Info      os.FileInfo
	Timestamp time.Time
	Op        fsnotify.Op
}

// Watcher monitors directories for file changes using fsnotify
type Watcher struct {
	// Directories being watched
	directories []string

	// Directory names never watched, such as .git
	skip map[string]bool

	// Channel to receive file modifications
	fileModChan chan FileModification

	// Channel to signal stop, and closed by the event loop on exit
	stopChan chan struct{}
	done     chan struct{}

	// fsnotify watcher instance
	fsWatcher *fsnotify.Watcher

	// Lock for running state and the directories list
	mutex sync.RWMutex

	running bool
	closed  bool
}

// New creates a new directory watcher. Directories named in skipDirs are
// neither added by AddTree nor picked up when created.
func New(skipDirs ...string) (*Watcher, error) {
	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	skip := make(map[string]bool, len(skipDirs))
	for _, dir := range skipDirs {
		skip[dir] = true
	}

	return &Watcher{
		directories: []string{},
		skip:        skip,
		fileModChan: make(chan FileModification, 10),
		fsWatcher:   fsWatcher,
	}, nil
}

// AddDirectory adds a single directory to watch
func (w *Watcher) AddDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return serr.NewFileError("error accessing directory", dir, serr.FileNotFound, err)
		}
		return serr.NewFileError("error accessing directory", dir, serr.FileAccessDenied, err)
	}
	if !info.IsDir() {
		return serr.NewFileError("not a directory", dir, serr.InvalidPath, nil)
	}

	if err := w.fsWatcher.Add(dir); err != nil {
		return serr.NewFileError("failed to add directory to watcher", dir, serr.FileOperationFailed, err)
	}

	w.mutex.Lock()
	found := false
	for _, existing := range w.directories {
		if existing == dir {
			found = true
			break
		}
	}
	if !found {
		w.directories = append(w.directories, dir)
	}
	w.mutex.Unlock()

	log.LogWithFields(log.F("directory", dir)).Info("Watching directory")
	return nil
}

// AddTree adds root and every directory below it, except skipped ones
func (w *Watcher) AddTree(root string) error {
	if err := w.AddDirectory(root); err != nil {
		return err
	}
	return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
		if err != nil || path == root || !d.IsDir() {
			return nil
		}
		if w.skip[d.Name()] {
			return filepath.SkipDir
		}
		return w.AddDirectory(path)
	})
}

// FileChannel returns the channel that delivers file modification events.
// It is closed by Stop.
func (w *Watcher) FileChannel() <-chan FileModification {
	return w.fileModChan
}

// Start begins the file watching process
func (w *Watcher) Start() error {
	w.mutex.Lock()
	defer w.mutex.Unlock()
	if w.closed {
		return fmt.Errorf("watcher already stopped")
	}
	if w.running {
		return fmt.Errorf("watcher already running")
	}
	w.running = true
	w.stopChan = make(chan struct{})
	w.done = make(chan struct{})

	go w.loop(w.stopChan, w.done)

	log.Info("Watcher started")
	return nil
}

func (w *Watcher) loop(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			w.handle(event)

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			log.LogWithFields(log.F("error", err.Error())).Error("fsnotify watcher error")

		case <-stop:
			return
		}
	}
}

func (w *Watcher) handle(event fsnotify.Event) {
	if !event.Op.Has(fsnotify.Create) && !event.Op.Has(fsnotify.Write) {
		return
	}

	// The file may already be gone by the time the event arrives
	info, err := os.Stat(event.Name)
	if err != nil {
		if !os.IsNotExist(err) {
			log.LogWithFields(log.F("file", event.Name), log.F("error", err.Error())).Error("Error stating file")
		}
		return
	}

	if info.IsDir() {
		if event.Op.Has(fsnotify.Create) && !w.skip[info.Name()] {
			if err := w.AddDirectory(event.Name); err != nil {
				log.LogWithError(err).Warn("Cannot watch new directory")
			}
		}
		return
	}
	if !info.Mode().IsRegular() {
		return
	}

	mod := FileModification{
		Path:      event.Name,
		Info:      info,
		Timestamp: time.Now(),
		Op:        event.Op,
	}

	select {
	case w.fileModChan <- mod:
	default:
		log.LogWithFields(log.F("file", event.Name)).Warn("Event channel is full, dropped event")
	}
}

// Stop halts the watcher and closes the file channel. A stopped watcher
// cannot be restarted.
func (w *Watcher) Stop() {
	w.mutex.Lock()
	if w.closed {
		w.mutex.Unlock()
		return
	}
	w.closed = true
	wasRunning := w.running
	w.running = false
	stop, done := w.stopChan, w.done
	w.mutex.Unlock()

	// The event loop may take the lock to add new directories
	if wasRunning {
		close(stop)
		<-done
	}

	if err := w.fsWatcher.Close(); err != nil {
		log.LogWithFields(log.F("error", err.Error())).Error("Error closing fsnotify watcher")
	}

	close(w.fileModChan)
	log.Info("Watcher stopped")
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
	dirs := make([]string, len(w.directories))
	copy(dirs, w.directories)
	return dirs
}
