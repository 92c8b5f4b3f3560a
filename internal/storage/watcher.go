package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"pomodoro/internal/core/model"
)

const defaultDebounce = 500 * time.Millisecond

// Watcher reloads the settings file when it changes on disk.
type Watcher struct {
	path     string
	logger   *zap.SugaredLogger
	debounce time.Duration

	mu        sync.Mutex
	settings  model.Settings
	callbacks []func(model.Settings)
	timer     *time.Timer

	fsWatcher *fsnotify.Watcher
	done      chan struct{}
	closeOnce sync.Once
}

// NewWatcher loads the initial settings and starts watching path.
// The parent directory is created when missing and watched so editors that replace the file on save
// and files created after startup are both picked up.
func NewWatcher(path string, logger *zap.SugaredLogger) (*Watcher, error) {
	return newWatcher(path, logger, defaultDebounce)
}

func newWatcher(path string, logger *zap.SugaredLogger, debounce time.Duration) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	// A broken file keeps the defaults; the next valid save is picked up.
	settings, err := LoadSettings(path)
	if err != nil {
		logger.Warnw("initial settings invalid, using defaults", "path", path, "error", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create settings dir: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	if err := fsWatcher.Add(dir); err != nil {
		_ = fsWatcher.Close()
		return nil, fmt.Errorf("watch settings dir: %w", err)
	}

	watcher := &Watcher{
		path:      filepath.Clean(path),
		logger:    logger,
		debounce:  debounce,
		settings:  settings,
		fsWatcher: fsWatcher,
		done:      make(chan struct{}),
	}
	go watcher.watchLoop()
	return watcher, nil
}

// Settings returns the last successfully loaded settings.
func (watcher *Watcher) Settings() model.Settings {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	return watcher.settings
}

// OnReload registers a callback invoked after every successful reload.
func (watcher *Watcher) OnReload(callback func(model.Settings)) {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()
	watcher.callbacks = append(watcher.callbacks, callback)
}

// Close stops watching.
func (watcher *Watcher) Close() error {
	var err error
	watcher.closeOnce.Do(func() {
		close(watcher.done)
		watcher.mu.Lock()
		if watcher.timer != nil {
			watcher.timer.Stop()
		}
		watcher.mu.Unlock()
		err = watcher.fsWatcher.Close()
	})
	return err
}

func (watcher *Watcher) watchLoop() {
	for {
		select {
		case <-watcher.done:
			return
		case event, ok := <-watcher.fsWatcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != watcher.path {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				watcher.schedule()
			}
		case err, ok := <-watcher.fsWatcher.Errors:
			if !ok {
				return
			}
			watcher.logger.Warnw("settings watcher error", "error", err)
		}
	}
}

func (watcher *Watcher) schedule() {
	watcher.mu.Lock()
	defer watcher.mu.Unlock()

	if watcher.timer != nil {
		watcher.timer.Stop()
	}
	watcher.timer = time.AfterFunc(watcher.debounce, watcher.reload)
}

func (watcher *Watcher) reload() {
	select {
	case <-watcher.done:
		return
	default:
	}

	if _, err := os.Stat(watcher.path); err != nil {
		return
	}
	settings, err := LoadSettings(watcher.path)
	if err != nil {
		watcher.logger.Warnw("settings reload failed", "path", watcher.path, "error", err)
		return
	}

	watcher.mu.Lock()
	watcher.settings = settings
	callbacks := make([]func(model.Settings), len(watcher.callbacks))
	copy(callbacks, watcher.callbacks)
	watcher.mu.Unlock()

	watcher.logger.Infow("settings reloaded", "path", watcher.path)
	for _, callback := range callbacks {
		callback(settings)
	}
}
