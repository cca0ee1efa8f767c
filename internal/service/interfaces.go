package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mocks.go -package=mock

import (
	"context"

	"github.com/privyhq/privy/models"
)

// IdentityService resolves bearer secrets into user identities.
type IdentityService interface {
	// GetOrCreateUser returns the identity behind secret, provisioning it
	// on first use. Provisioning is gated by the per-IP rate limit and is
	// idempotent: the same secret always resolves to the same user, even
	// under concurrent first requests.
	GetOrCreateUser(ctx context.Context, secret, clientIP string) (models.User, error)

	// BurnUser irreversibly deletes the user and everything they own.
	BurnUser(ctx context.Context, userID string) error
}

// RecordService owns chats and their encrypted messages.
type RecordService interface {
	CreateChat(ctx context.Context, userID, title string) (models.Chat, error)
	ListChats(ctx context.Context, userID string) ([]models.Chat, error)

	// AppendMessage encrypts the plaintext parts under the caller's
	// derived key and stores the envelope.
	AppendMessage(ctx context.Context, user models.User, secret, chatID string, req models.AppendMessageRequest) (models.MessageView, error)

	// ListMessages returns the chat's messages safe-decrypted: every stored
	// record yields a usable view, placeholders included.
	ListMessages(ctx context.Context, user models.User, secret, chatID string) ([]models.MessageView, error)
}

// MemoryService owns the user's encrypted cross-session memory.
type MemoryService interface {
	SaveMemory(ctx context.Context, user models.User, secret string, req models.SaveMemoryRequest) (models.MemoryView, error)
	ListMemories(ctx context.Context, user models.User, secret string, limit int) ([]models.MemoryView, error)
	DeleteMemories(ctx context.Context, userID string) error
}
