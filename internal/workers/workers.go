package workers

import (
	"context"

	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/store"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles the background workers enabled by cfg. A zero
// cleanup interval leaves the cleanup worker out entirely.
func NewWorkers(storages *store.Storages, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.CleanupInterval > 0 {
		w.workers = append(w.workers, NewCleanupWorker(storages.ChatRepository, storages.MemoryRepository, cfg.CleanupInterval, logger))
	}

	return w
}

func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
