// Copyright 2025 Tom Barlow
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a catalogue when its backing file changes.
type Watcher struct {
	catalog *Catalog
	watcher *fsnotify.Watcher
	target  string
	logger  *slog.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// NewWatcher creates a watcher for the catalogue's file. The parent
// directory is watched rather than the file itself so that editors that
// replace the file (rename + create) keep triggering reloads.
func NewWatcher(c *Catalog, logger *slog.Logger) (*Watcher, error) {
	if c.path == "" {
		return nil, fmt.Errorf("catalog watcher requires a file path")
	}
	if logger == nil {
		logger = slog.Default()
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	target, err := filepath.Abs(c.path)
	if err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to get absolute path: %w", err)
	}

	if err := fsw.Add(filepath.Dir(target)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch path: %w", err)
	}

	return &Watcher{
		catalog: c,
		watcher: fsw,
		target:  target,
		logger:  logger.With(slog.String("component", "catalog-watcher"), slog.String("path", target)),
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}, nil
}

// Start begins watching for file events.
func (w *Watcher) Start(ctx context.Context) {
	go w.eventLoop(ctx)
	w.logger.Info("catalog watcher started")
}

// Stop stops the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.stopCh)
	<-w.doneCh
	return w.watcher.Close()
}

// eventLoop processes fsnotify events and reloads the catalogue.
func (w *Watcher) eventLoop(ctx context.Context) {
	defer close(w.doneCh)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info("catalog watcher stopped (context cancelled)")
			return
		case <-w.stopCh:
			w.logger.Info("catalog watcher stopped")
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				w.logger.Warn("catalog watcher event channel closed")
				return
			}
			w.handleEvent(event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				w.logger.Warn("catalog watcher error channel closed")
				return
			}
			w.logger.Error("catalog watcher error", "error", err)
		}
	}
}

// handleEvent reloads the catalogue for write/create events on the
// watched file.
func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Name != w.target {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
		return
	}

	if err := w.catalog.Reload(); err != nil {
		// Keep serving the previous catalogue on a bad edit.
		w.logger.Warn("catalog reload failed", "error", err)
		return
	}
	w.logger.Debug("catalog reloaded", "op", event.Op.String())
}
