// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/MKhiriev/go-toml-selector/internal/events"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/store"
	"github.com/MKhiriev/go-toml-selector/models"
)

const watchedOps = fsnotify.Write | fsnotify.Create | fsnotify.Rename | fsnotify.Remove

// SourceWatcher reacts to edits of the TOML source file. After a quiet
// period of debounce it drops the node cache and broadcasts the new section
// names as a SchemaUpdate with an empty NodeID.
//
// The parent directory is watched rather than the file, so editors that
// replace the file by rename are still seen.
type SourceWatcher struct {
	path     string
	debounce time.Duration

	loader    store.SourceLoader
	cache     store.NodeCacheRepository
	publisher events.Publisher

	ready  chan struct{}
	logger *logger.Logger
}

func NewSourceWatcher(
	path string,
	debounce time.Duration,
	loader store.SourceLoader,
	cache store.NodeCacheRepository,
	publisher events.Publisher,
	log *logger.Logger,
) *SourceWatcher {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &SourceWatcher{
		path:      filepath.Clean(path),
		debounce:  debounce,
		loader:    loader,
		cache:     cache,
		publisher: publisher,
		ready:     make(chan struct{}),
		logger:    log,
	}
}

// Ready is closed once the watch is registered.
func (w *SourceWatcher) Ready() <-chan struct{} {
	return w.ready
}

func (w *SourceWatcher) Run(ctx context.Context) {
	log := w.logger.With().Str("worker", "source_watcher").Str("path", w.path).Logger()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		log.Err(err).Msg("cannot create file watcher")
		return
	}
	defer watcher.Close()

	if err = watcher.Add(filepath.Dir(w.path)); err != nil {
		log.Err(err).Msg("cannot watch source directory")
		return
	}
	close(w.ready)
	log.Info().Dur("debounce", w.debounce).Msg("watching config source")

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if !w.relevant(ev) {
				continue
			}
			log.Debug().Str("op", ev.Op.String()).Msg("source changed")
			if w.debounce <= 0 {
				w.refresh(ctx)
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			log.Warn().Err(err).Msg("file watcher error")

		case <-fire:
			fire = nil
			w.refresh(ctx)
		}
	}
}

func (w *SourceWatcher) relevant(ev fsnotify.Event) bool {
	return filepath.Clean(ev.Name) == w.path && ev.Op&watchedOps != 0
}

// refresh clears the node cache and announces the current section names.
// A source that is now missing or broken is announced with no sections.
func (w *SourceWatcher) refresh(ctx context.Context) {
	if err := w.cache.Clear(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("node cache clear failed")
	}

	var names []string
	if src, err := w.loader.Load(ctx); err != nil {
		w.logger.Warn().Err(err).Msg("config source unavailable after change")
	} else {
		names = src.Names()
	}

	if names == nil {
		names = []string{}
	}

	w.publisher.Publish(models.SchemaUpdate{Keys: names, At: time.Now().UTC()})
	w.logger.Info().Strs("sections", names).Msg("config source reloaded")
}
