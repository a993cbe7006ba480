// File: watch.go
// Title: Configuration File Watching Implementation
// Description: Implements file system watching for configuration files to
//              support hot-reloading and automatic configuration updates
//              based on fsnotify events.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation of fsnotify-based file watching

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	estaerror "github.com/isgasho/esta/core/error"
	"github.com/isgasho/esta/utils/stringx"
)

// reloadDebounce coalesces the event bursts editors produce when saving a
// file in several steps.
const reloadDebounce = 100 * time.Millisecond

// startWatching starts monitoring the configuration file for changes
func (c *Config) startWatching() error {
	if stringx.IsBlank(c.filePath) {
		return estaerror.New("file path required for watching").
			WithCode(estaerror.CodeInvalidConfig).
			WithOperation("config.startWatching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return estaerror.Wrap(err, "failed to create file watcher").
			WithCode(estaerror.CodeWatchError).
			WithOperation("config.startWatching").
			WithDetail("filePath", c.filePath)
	}

	// Watch the containing directory rather than the file itself so that
	// atomic saves (write to temp file, rename over the original) are seen.
	dir := filepath.Dir(c.filePath)
	if err := watcher.Add(dir); err != nil {
		watcher.Close()
		return estaerror.Wrap(err, "failed to watch config directory").
			WithCode(estaerror.CodeWatchError).
			WithOperation("config.startWatching").
			WithDetail("directory", dir)
	}

	c.mu.Lock()
	c.watcher = watcher
	c.watching = true
	c.mu.Unlock()

	go c.watchLoop(watcher)

	return nil
}

// watchLoop consumes fsnotify events until the watcher is closed
func (c *Config) watchLoop(watcher *fsnotify.Watcher) {
	var reloadTimer *time.Timer
	defer func() {
		if reloadTimer != nil {
			reloadTimer.Stop()
		}
	}()

	target := filepath.Clean(c.filePath)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// Debounce: editors fire several events per save
			if reloadTimer != nil {
				reloadTimer.Stop()
			}
			reloadTimer = time.AfterFunc(reloadDebounce, func() {
				// A fired timer must not reload once watching has stopped
				if !c.IsWatching() {
					return
				}
				// Reload failures keep the previous configuration active
				_ = c.reload()
			})

		case _, ok := <-watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are transient; keep consuming events
		}
	}
}

// reload reloads the configuration from the file and notifies watchers
func (c *Config) reload() error {
	// Read and parse the updated file
	content, err := os.ReadFile(c.filePath)
	if err != nil {
		return estaerror.Wrap(err, "failed to read config file during reload").
			WithCode(estaerror.CodeConfigError).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath)
	}

	newData, err := parseContent(content, c.format)
	if err != nil {
		return estaerror.Wrap(err, "failed to parse config file during reload").
			WithCode(estaerror.CodeInvalidConfig).
			WithOperation("config.reload").
			WithDetail("filePath", c.filePath).
			WithDetail("format", c.format.String())
	}

	// Create a copy of the old configuration for comparison
	c.mu.Lock()
	oldConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}

	// Update the configuration
	c.data = newData
	fileInfo, _ := os.Stat(c.filePath)
	if fileInfo != nil {
		c.lastModified = fileInfo.ModTime()
	}

	// Get watchers (copy to avoid holding lock during callbacks)
	watchers := make([]ChangeHandler, len(c.watchers))
	copy(watchers, c.watchers)

	newConfig := &Config{
		data:   c.deepCopyMap(c.data),
		format: c.format,
	}
	c.mu.Unlock()

	// Notify all watchers
	for _, handler := range watchers {
		if handler != nil {
			go handler(oldConfig, newConfig)
		}
	}

	return nil
}

// StopWatching stops file monitoring
func (c *Config) StopWatching() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.watching = false
	if c.watcher != nil {
		// Closing the watcher ends the watch loop goroutine
		c.watcher.Close()
		c.watcher = nil
	}
}

// IsWatching returns whether file monitoring is active
func (c *Config) IsWatching() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.watching
}
