package store

import (
	"context"

	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/migrations"
)

// Storages groups all server-side repositories into a single value handed
// to the service layer.
type Storages struct {
	UserRepository      UserRepository
	RateLimitRepository RateLimitRepository
	ChatRepository      ChatRepository
	MemoryRepository    MemoryRepository
}

// NewStorages connects to PostgreSQL, applies embedded migrations and
// returns repositories wired to the shared connection pool.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := migrations.Migrate(db.DB); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		RateLimitRepository: NewRateLimitRepository(db, log),
		ChatRepository:      NewChatRepository(db, log),
		MemoryRepository:    NewMemoryRepository(db, log),
	}, nil
}
