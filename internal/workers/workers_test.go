package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/mock"
	"github.com/privyhq/privy/internal/store"
)

func TestNewWorkers_ZeroIntervalDisablesCleanup(t *testing.T) {
	w := NewWorkers(&store.Storages{}, config.Workers{}, logger.Nop())
	if len(w.workers) != 0 {
		t.Fatalf("expected no workers for zero interval, got %d", len(w.workers))
	}
}

func TestCleanupWorker_Sweeps(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var swept atomic.Int32

	mockChats := mock.NewMockChatRepository(ctrl)
	mockMemories := mock.NewMockMemoryRepository(ctrl)

	mockChats.EXPECT().DeleteExpiredChats(gomock.Any()).DoAndReturn(
		func(context.Context) (int64, error) {
			swept.Add(1)
			return 2, nil
		}).MinTimes(1)
	mockMemories.EXPECT().DeleteExpiredMemories(gomock.Any()).Return(int64(1), nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	worker := NewCleanupWorker(mockChats, mockMemories, 10*time.Millisecond, logger.Nop())
	worker.Run(ctx)

	deadline := time.After(time.Second)
	for swept.Load() == 0 {
		select {
		case <-deadline:
			t.Fatal("cleanup worker never swept")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
}
