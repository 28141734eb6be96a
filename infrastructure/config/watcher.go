package config

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const debounceDelay = 500 * time.Millisecond

// ConfigWatcher hot reloads the dashboard rules file into a SettingsStore.
// Only request defaults and limits change on reload; the graph shape is
// fixed at startup.
type ConfigWatcher struct {
	path    string
	store   *SettingsStore
	logger  *zap.Logger
	watcher *fsnotify.Watcher
	delay   time.Duration

	stopOnce sync.Once
	stopCh   chan struct{}
	doneCh   chan struct{}
}

// NewConfigWatcher starts watching path. The parent directory is watched so
// that editors which replace the file on save are picked up.
func NewConfigWatcher(path string, store *SettingsStore, logger *zap.Logger) (*ConfigWatcher, error) {
	if path == "" {
		return nil, fmt.Errorf("config file path is required")
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve config path: %w", err)
	}

	fsWatcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fsWatcher.Add(filepath.Dir(absPath)); err != nil {
		fsWatcher.Close()
		return nil, fmt.Errorf("failed to watch config directory: %w", err)
	}

	w := &ConfigWatcher{
		path:    absPath,
		store:   store,
		logger:  logger,
		watcher: fsWatcher,
		delay:   debounceDelay,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
	go w.watchLoop()

	logger.Info("Configuration hot reloading enabled", zap.String("file", absPath))
	return w, nil
}

func (w *ConfigWatcher) watchLoop() {
	defer close(w.doneCh)
	defer w.watcher.Close()

	// Debounce timer to avoid multiple rapid reloads
	var debounceTimer *time.Timer
	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			w.logger.Debug("Configuration file changed",
				zap.String("file", event.Name),
				zap.String("operation", event.Op.String()),
			)
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(w.delay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error("File watcher error", zap.Error(err))

		case <-w.stopCh:
			w.logger.Info("Stopping configuration watcher")
			return
		}
	}
}

// reload re-reads the file and swaps the store snapshot. An invalid file
// keeps the previous rules.
func (w *ConfigWatcher) reload() {
	next, err := LoadDashboardSettings(w.path)
	if err != nil {
		w.logger.Error("Invalid configuration after reload, keeping previous settings", zap.Error(err))
		return
	}

	current := w.store.Current()
	next.GraphNodeCount = current.GraphNodeCount
	next.GraphLinkCount = current.GraphLinkCount

	if *next == *current {
		w.logger.Debug("Configuration unchanged after reload")
		return
	}

	w.store.Store(next)
	w.logger.Info("Configuration reloaded",
		zap.String("default_platform", next.DefaultPlatform),
		zap.Int("default_window_days", next.DefaultWindowDays),
		zap.Int("max_range_days", next.MaxRangeDays),
	)
}

// Stop stops the watcher and waits for its loop to exit
func (w *ConfigWatcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
	})
}
