package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-toml-selector/internal/config"
	"github.com/MKhiriev/go-toml-selector/internal/events"
	"github.com/MKhiriev/go-toml-selector/internal/logger"
	"github.com/MKhiriev/go-toml-selector/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the workers enabled by cfg. The source watcher needs a
// file-backed source, so it is skipped for the static table.
func NewWorkers(cfg *config.StructuredConfig, storages *store.Storages, publisher events.Publisher, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.Workers.WatchSource && cfg.Source.Kind == config.SourceKindTOML && cfg.Source.Path != "" {
		w.workers = append(w.workers, NewSourceWatcher(
			cfg.Source.Path,
			cfg.Workers.Debounce,
			storages.Source,
			storages.NodeCache,
			publisher,
			logger,
		))
	}

	return w
}

// Len returns the number of configured workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and waits for all of them.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
