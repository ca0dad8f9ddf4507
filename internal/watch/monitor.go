package watch

import (
	"fmt"
	"sync"
	"time"

	"modemap/internal/analysis"
	"modemap/internal/config"
	"modemap/internal/log"
	"modemap/pkg/types"
)

// MonitorStatus represents the current status of a monitor
type MonitorStatus struct {
	Running          bool      // Whether the monitor is currently active
	WatchDirectories []string  // Directories being watched
	LastActivity     time.Time // Time of last file activity
	FilesResolved    int       // Files successfully scanned
}

// Callback receives the scan result for each modified file, or the error
// that prevented scanning it
type Callback func(path string, info *types.FileInfo, err error)

// Monitor resolves the mode of every file created or written below the
// watched directories
type Monitor struct {
	config  *config.Config
	watcher *Watcher
	engine  *analysis.Engine

	resolved     int
	lastActivity time.Time
	callback     Callback

	mutex   sync.RWMutex
	running bool
	done    chan struct{}
}

// NewMonitor creates a monitor using cfg for scanning and skip directories
func NewMonitor(cfg *config.Config) (*Monitor, error) {
	if cfg == nil {
		cfg = config.New()
	}
	watcher, err := New(cfg.Scan.SkipDirs...)
	if err != nil {
		return nil, err
	}
	return &Monitor{
		config:       cfg,
		watcher:      watcher,
		engine:       analysis.NewWithConfig(cfg),
		lastActivity: time.Now(),
	}, nil
}

// AddDirectory watches dir and every directory below it
func (m *Monitor) AddDirectory(dir string) error {
	return m.watcher.AddTree(dir)
}

// SetCallback sets the function called for each processed file
func (m *Monitor) SetCallback(cb Callback) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.callback = cb
}

// Start begins watching and resolving
func (m *Monitor) Start() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	if m.running {
		return fmt.Errorf("monitor is already running")
	}
	if len(m.watcher.Directories()) == 0 {
		return fmt.Errorf("no directories to watch")
	}
	if err := m.watcher.Start(); err != nil {
		return fmt.Errorf("error starting watcher: %w", err)
	}

	m.running = true
	m.done = make(chan struct{})
	go m.processEvents(m.done)
	return nil
}

// Stop halts the monitor and waits for pending events to be processed
func (m *Monitor) Stop() {
	m.mutex.Lock()
	if !m.running {
		m.mutex.Unlock()
		return
	}
	m.running = false
	done := m.done
	m.mutex.Unlock()

	m.watcher.Stop()
	<-done
}

// Status returns the current status of the monitor
func (m *Monitor) Status() MonitorStatus {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return MonitorStatus{
		Running:          m.running,
		WatchDirectories: m.watcher.Directories(),
		LastActivity:     m.lastActivity,
		FilesResolved:    m.resolved,
	}
}

func (m *Monitor) processEvents(done chan<- struct{}) {
	defer close(done)

	for event := range m.watcher.FileChannel() {
		info, err := m.engine.Scan(event.Path)

		m.mutex.Lock()
		m.lastActivity = event.Timestamp
		if err == nil {
			m.resolved++
		}
		cb := m.callback
		m.mutex.Unlock()

		if err != nil {
			log.LogWithError(err).Warn("Error resolving modified file")
		} else {
			log.LogWithFields(log.F("path", event.Path), log.F("mode", info.DisplayMode())).Debug("Resolved modified file")
		}
		if cb != nil {
			cb(event.Path, info, err)
		}
	}
}
