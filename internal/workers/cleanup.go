package workers

import (
	"context"
	"time"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/store"
)

// cleanupWorker periodically deletes expired chats and memories. It runs
// outside the request path; a record past its expires_at may linger until
// the next sweep.
type cleanupWorker struct {
	chats    store.ChatRepository
	memories store.MemoryRepository
	interval time.Duration
	logger   *logger.Logger
}

// NewCleanupWorker constructs the auto-vanish sweep worker.
func NewCleanupWorker(chats store.ChatRepository, memories store.MemoryRepository, interval time.Duration, logger *logger.Logger) Worker {
	return &cleanupWorker{
		chats:    chats,
		memories: memories,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the sweep loop in its own goroutine and returns immediately.
// The loop stops when ctx is cancelled.
func (w *cleanupWorker) Run(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		w.logger.Info().Dur("interval", w.interval).Msg("cleanup worker started")

		for {
			select {
			case <-ctx.Done():
				w.logger.Info().Msg("cleanup worker stopped")
				return
			case <-ticker.C:
				w.sweep(ctx)
			}
		}
	}()
}

func (w *cleanupWorker) sweep(ctx context.Context) {
	chats, err := w.chats.DeleteExpiredChats(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*cleanupWorker.sweep").Msg("error deleting expired chats")
	}

	memories, err := w.memories.DeleteExpiredMemories(ctx)
	if err != nil {
		w.logger.Err(err).Str("func", "*cleanupWorker.sweep").Msg("error deleting expired memories")
	}

	if chats > 0 || memories > 0 {
		w.logger.Info().Int64("chats", chats).Int64("memories", memories).Msg("expired records deleted")
	}
}
