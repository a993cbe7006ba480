// File: watch.go
// Title: Source File Watching
// Description: Implements fsnotify-based monitoring of esta source
//              files. Re-parses a watched file on change events with
//              debouncing and feeds each outcome to a caller supplied
//              handler.
// Author: isgasho
// Version: v0.1.0
// Created: 2026-08-18
// Modified: 2026-08-18
//
// Change History:
// - 2026-08-18 v0.1.0: Initial implementation of source file watching

package frontend

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	estaerror "github.com/isgasho/esta/core/error"
	estalog "github.com/isgasho/esta/core/log"
)

// DefaultWatchDebounce coalesces the event bursts editors produce when
// saving a file in several steps.
const DefaultWatchDebounce = 100 * time.Millisecond

// WatchHandler receives the outcome of each parse triggered by the
// watcher, the initial parse included.
type WatchHandler func(result *Result, err error)

// WatchFile monitors a source file and re-parses it whenever it
// changes. The file is parsed once up front so the handler sees the
// current state immediately. The call blocks until ctx is done or the
// watcher shuts down.
func (e *Engine) WatchFile(ctx context.Context, path string, handler WatchHandler) error {
	if handler == nil {
		return estaerror.New("watch handler is required").
			WithCode(estaerror.CodeInvalidInput).
			WithOperation("frontend.WatchFile")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return estaerror.Wrap(err, "failed to create file watcher").
			WithCode(estaerror.CodeWatchError).
			WithOperation("frontend.WatchFile").
			WithDetail("path", path)
	}
	defer watcher.Close()

	// Watch the containing directory rather than the file itself so
	// that atomic saves (write to temp file, rename over the original)
	// are seen.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return estaerror.Wrap(err, "failed to watch source directory").
			WithCode(estaerror.CodeWatchError).
			WithOperation("frontend.WatchFile").
			WithDetail("directory", dir)
	}

	e.logger.Info("Watching source file", estalog.Fields{
		"path": path,
	})

	handler(e.ParseFile(path))

	target := filepath.Clean(path)

	var reparse *time.Timer
	defer func() {
		if reparse != nil {
			reparse.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			e.logger.Debug("Stopping source watch", estalog.Fields{
				"path": path,
			})
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			if filepath.Clean(event.Name) != target {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}

			// Debounce: editors fire several events per save
			if reparse != nil {
				reparse.Stop()
			}
			reparse = time.AfterFunc(e.options.WatchDebounce, func() {
				// A fired timer must not call back once the watch is done
				if ctx.Err() != nil {
					return
				}
				handler(e.ParseFile(path))
			})

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.logger.Warn("File watcher error", estalog.Fields{
				"path":  path,
				"error": werr.Error(),
			})
		}
	}
}
