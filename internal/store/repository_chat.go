package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/models"
)

// chatRepository is the PostgreSQL-backed implementation of
// [ChatRepository]. It treats the message parts column as opaque JSON;
// encryption happens a layer above.
type chatRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewChatRepository constructs a [ChatRepository] backed by the provided
// database connection and logger.
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	logger.Debug().Msg("creating chat repository")
	return &chatRepository{
		db:     db,
		logger: logger,
	}
}

// CreateChat persists a new chat owned by userID.
func (r *chatRepository) CreateChat(ctx context.Context, userID, title string) (models.Chat, error) {
	log := logger.FromContext(ctx)

	var chat models.Chat
	row := r.db.QueryRowContext(ctx, createChat, uuid.NewString(), userID, title, nil)
	if err := row.Scan(&chat.ChatID, &chat.UserID, &chat.Title, &chat.CreatedAt, &chat.ExpiresAt); err != nil {
		log.Err(err).Str("func", "*chatRepository.CreateChat").Msg("error: inserting chat")
		return models.Chat{}, fmt.Errorf("create chat: %w", err)
	}

	return chat, nil
}

// ListChats returns the user's chats, newest first.
func (r *chatRepository) ListChats(ctx context.Context, userID string) ([]models.Chat, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listChats, userID)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.ListChats").Msg("error: querying chats")
		return nil, fmt.Errorf("list chats: %w", err)
	}
	defer rows.Close()

	chats := make([]models.Chat, 0)
	for rows.Next() {
		var chat models.Chat
		if err := rows.Scan(&chat.ChatID, &chat.UserID, &chat.Title, &chat.CreatedAt, &chat.ExpiresAt); err != nil {
			log.Err(err).Str("func", "*chatRepository.ListChats").Msg("error: scanning chat row")
			return nil, fmt.Errorf("scan chat: %w", err)
		}
		chats = append(chats, chat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chats: %w", err)
	}

	return chats, nil
}

// FindChat returns the chat only when it belongs to userID. A missing chat
// and a foreign chat are indistinguishable: both are [ErrChatNotFound].
func (r *chatRepository) FindChat(ctx context.Context, chatID, userID string) (models.Chat, error) {
	log := logger.FromContext(ctx)

	var chat models.Chat
	row := r.db.QueryRowContext(ctx, findChat, chatID, userID)
	if err := row.Scan(&chat.ChatID, &chat.UserID, &chat.Title, &chat.CreatedAt, &chat.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Chat{}, ErrChatNotFound
		}
		log.Err(err).Str("func", "*chatRepository.FindChat").Msg("error: scanning chat")
		return models.Chat{}, fmt.Errorf("find chat: %w", err)
	}

	return chat, nil
}

// AppendMessage persists one message. msg.Parts arrives as the final
// stored column value (already encrypted by the service layer).
func (r *chatRepository) AppendMessage(ctx context.Context, msg models.Message) (models.Message, error) {
	log := logger.FromContext(ctx)

	var saved models.Message
	row := r.db.QueryRowContext(ctx, appendMessage, uuid.NewString(), msg.ChatID, msg.Role, []byte(msg.Parts))
	if err := row.Scan(&saved.MessageID, &saved.ChatID, &saved.Role, &saved.Parts, &saved.CreatedAt); err != nil {
		log.Err(err).Str("func", "*chatRepository.AppendMessage").Msg("error: inserting message")
		return models.Message{}, fmt.Errorf("append message: %w", err)
	}

	return saved, nil
}

// ListMessages returns a chat's messages, oldest first. The query is built
// with squirrel so the projection and ordering stay in one place.
func (r *chatRepository) ListMessages(ctx context.Context, chatID string) ([]models.Message, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.
		Select("message_id", "chat_id", "role", "parts", "created_at").
		From("messages").
		Where(sq.Eq{"chat_id": chatID}).
		OrderBy("created_at ASC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build messages query: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*chatRepository.ListMessages").Msg("error: querying messages")
		return nil, fmt.Errorf("list messages: %w", err)
	}
	defer rows.Close()

	messages := make([]models.Message, 0)
	for rows.Next() {
		var msg models.Message
		var parts []byte
		if err := rows.Scan(&msg.MessageID, &msg.ChatID, &msg.Role, &parts, &msg.CreatedAt); err != nil {
			log.Err(err).Str("func", "*chatRepository.ListMessages").Msg("error: scanning message row")
			return nil, fmt.Errorf("scan message: %w", err)
		}
		msg.Parts = parts
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate messages: %w", err)
	}

	return messages, nil
}

// DeleteExpiredChats implements the auto-vanish sweep for chats.
func (r *chatRepository) DeleteExpiredChats(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, deleteExpiredChats)
	if err != nil {
		return 0, fmt.Errorf("delete expired chats: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("expired chats affected rows: %w", err)
	}

	return affected, nil
}
