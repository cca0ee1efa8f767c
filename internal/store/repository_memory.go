package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/models"
)

// memoryRepository is the PostgreSQL-backed implementation of
// [MemoryRepository].
type memoryRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewMemoryRepository constructs a [MemoryRepository] backed by the
// provided database connection and logger.
func NewMemoryRepository(db *DB, logger *logger.Logger) MemoryRepository {
	logger.Debug().Msg("creating memory repository")
	return &memoryRepository{
		db:     db,
		logger: logger,
	}
}

// SaveMemory persists one memory record. mem.Content is stored as-is; the
// service layer decides whether it is an encrypted envelope.
func (r *memoryRepository) SaveMemory(ctx context.Context, mem models.Memory) (models.Memory, error) {
	log := logger.FromContext(ctx)

	saved := models.Memory{ChatID: mem.ChatID}
	row := r.db.QueryRowContext(ctx, saveMemory,
		uuid.NewString(), mem.UserID, mem.ChatID, []byte(mem.Content), mem.ContentType, mem.ExpiresAt)
	var content []byte
	if err := row.Scan(&saved.MemoryID, &saved.UserID, &content, &saved.ContentType, &saved.CreatedAt, &saved.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*memoryRepository.SaveMemory").Msg("error: inserting memory")
		return models.Memory{}, fmt.Errorf("save memory: %w", err)
	}
	saved.Content = content

	return saved, nil
}

// ListMemories returns the user's memories, newest first. A limit of zero
// means no limit.
func (r *memoryRepository) ListMemories(ctx context.Context, userID string, limit int) ([]models.Memory, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listMemories, userID, limit)
	if err != nil {
		log.Err(err).Str("func", "*memoryRepository.ListMemories").Msg("error: querying memories")
		return nil, fmt.Errorf("list memories: %w", err)
	}
	defer rows.Close()

	memories := make([]models.Memory, 0)
	for rows.Next() {
		var mem models.Memory
		var chatID sql.NullString
		var content []byte
		if err := rows.Scan(&mem.MemoryID, &mem.UserID, &chatID, &content, &mem.ContentType, &mem.CreatedAt, &mem.ExpiresAt); err != nil {
			log.Err(err).Str("func", "*memoryRepository.ListMemories").Msg("error: scanning memory row")
			return nil, fmt.Errorf("scan memory: %w", err)
		}
		mem.ChatID = chatID.String
		mem.Content = content
		memories = append(memories, mem)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate memories: %w", err)
	}

	return memories, nil
}

// DeleteUserMemories removes every memory the user owns. Used by account
// burn; deleting zero rows is not an error.
func (r *memoryRepository) DeleteUserMemories(ctx context.Context, userID string) error {
	if _, err := r.db.ExecContext(ctx, deleteUserMemories, userID); err != nil {
		return fmt.Errorf("delete user memories: %w", err)
	}
	return nil
}

// DeleteExpiredMemories implements the auto-vanish sweep for memories.
func (r *memoryRepository) DeleteExpiredMemories(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredMemories)
	if err != nil {
		return 0, fmt.Errorf("delete expired memories: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired memories affected rows: %w", err)
	}

	return affected, nil
}
