package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mocks.go -package=mock

import (
	"context"
	"time"

	"github.com/privyhq/privy/models"
)

// UserRepository is the persistence surface the identity provisioner
// consumes. It deliberately knows nothing about subscriptions or billing.
type UserRepository interface {
	// FindBySecretDigest returns the user keyed by digest, or
	// [ErrNoUserWasFound].
	FindBySecretDigest(ctx context.Context, digest string) (models.User, error)

	// CreateUser inserts a new user keyed by digest with creation and
	// last-active timestamps set to now. Returns [ErrSecretDigestExists]
	// on a unique-constraint collision.
	CreateUser(ctx context.Context, digest string) (models.User, error)

	// UpdateLastActive refreshes the user's last-active timestamp.
	UpdateLastActive(ctx context.Context, userID string) error

	// GetUserSalt returns the user's encryption salt ("" if none yet).
	GetUserSalt(ctx context.Context, userID string) (string, error)

	// SetUserSalt persists a freshly generated encryption salt, but only
	// if the user has none: the salt is immutable once set.
	SetUserSalt(ctx context.Context, userID, salt string) error

	// DeleteUser removes the user row; dependent rows cascade.
	DeleteUser(ctx context.Context, userID string) error
}

// RateLimitRepository is the atomic counter backing the per-IP
// account-creation limit.
type RateLimitRepository interface {
	// CheckAndIncrement bumps the counter for ipDigest as one atomic unit
	// and reports whether the attempt is within limit. A counter whose
	// window has elapsed is restarted in place. Storage failures map to
	// [ErrRateLimiterUnavailable].
	CheckAndIncrement(ctx context.Context, ipDigest string, limit int, window time.Duration) (models.RateLimitDecision, error)
}

// ChatRepository persists chats and their messages. Message parts are
// stored as opaque JSON: an encrypted envelope or a legacy plaintext array.
type ChatRepository interface {
	CreateChat(ctx context.Context, userID, title string) (models.Chat, error)
	ListChats(ctx context.Context, userID string) ([]models.Chat, error)

	// FindChat returns the chat only when it belongs to userID,
	// [ErrChatNotFound] otherwise.
	FindChat(ctx context.Context, chatID, userID string) (models.Chat, error)

	AppendMessage(ctx context.Context, msg models.Message) (models.Message, error)
	ListMessages(ctx context.Context, chatID string) ([]models.Message, error)

	// DeleteExpiredChats removes chats whose expires_at has passed.
	// Messages cascade. Returns the number of chats deleted.
	DeleteExpiredChats(ctx context.Context) (int64, error)
}

// MemoryRepository persists cross-session memory entries with the same
// opaque-content contract as messages.
type MemoryRepository interface {
	SaveMemory(ctx context.Context, mem models.Memory) (models.Memory, error)
	ListMemories(ctx context.Context, userID string, limit int) ([]models.Memory, error)
	DeleteUserMemories(ctx context.Context, userID string) error

	// DeleteExpiredMemories removes entries whose expires_at has passed.
	// Returns the number of entries deleted.
	DeleteExpiredMemories(ctx context.Context) (int64, error)
}
