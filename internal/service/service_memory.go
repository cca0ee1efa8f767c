package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/privyhq/privy/internal/crypto"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/models"
)

const (
	// defaultMemoryLimit is how many entries a listing returns when the
	// caller does not ask for a specific count.
	defaultMemoryLimit = 5

	// maxMemoryLimit caps a single listing regardless of what was asked.
	maxMemoryLimit = 20

	// defaultContentType labels entries saved without an explicit type.
	defaultContentType = "insight"
)

// memoryService is the concrete implementation of MemoryService. Memory
// content crosses the same encryption boundary as chat messages: encrypted
// with the caller's derived key on write, safe-decrypted on read.
type memoryService struct {
	memoryRepository store.MemoryRepository
	userRepository   store.UserRepository
	cipher           crypto.RecordCipher
	logger           *logger.Logger
}

// NewMemoryService constructs a MemoryService wired to the given
// repositories and cipher.
func NewMemoryService(memoryRepository store.MemoryRepository, userRepository store.UserRepository, cipher crypto.RecordCipher, logger *logger.Logger) MemoryService {
	return &memoryService{
		memoryRepository: memoryRepository,
		userRepository:   userRepository,
		cipher:           cipher,
		logger:           logger,
	}
}

// SaveMemory encrypts and stores one memory entry.
func (s *memoryService) SaveMemory(ctx context.Context, user models.User, secret string, req models.SaveMemoryRequest) (models.MemoryView, error) {
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return models.MemoryView{}, ErrInvalidDataProvided
	}

	contentType := req.ContentType
	if contentType == "" {
		contentType = defaultContentType
	}

	key, err := ensureRecordKey(ctx, s.userRepository, s.cipher, user, secret)
	if err != nil {
		return models.MemoryView{}, err
	}

	env, err := s.cipher.EncryptText(content, key)
	if err != nil {
		return models.MemoryView{}, fmt.Errorf("encrypting memory content: %w", err)
	}

	stored, err := json.Marshal(env)
	if err != nil {
		return models.MemoryView{}, fmt.Errorf("serializing envelope: %w", err)
	}

	saved, err := s.memoryRepository.SaveMemory(ctx, models.Memory{
		UserID:      user.UserID,
		Content:     stored,
		ContentType: contentType,
		ExpiresAt:   req.ExpiresAt,
	})
	if err != nil {
		return models.MemoryView{}, fmt.Errorf("memory save ended with error: %w", err)
	}

	return models.MemoryView{
		MemoryID:    saved.MemoryID,
		Content:     content,
		ContentType: saved.ContentType,
		CreatedAt:   saved.CreatedAt,
		ExpiresAt:   saved.ExpiresAt,
	}, nil
}

// ListMemories returns the newest entries safe-decrypted. limit is clamped
// to [1, maxMemoryLimit]; zero or negative selects the default.
func (s *memoryService) ListMemories(ctx context.Context, user models.User, secret string, limit int) ([]models.MemoryView, error) {
	if limit <= 0 {
		limit = defaultMemoryLimit
	}
	if limit > maxMemoryLimit {
		limit = maxMemoryLimit
	}

	var key []byte
	if user.EncryptionSalt != "" {
		key = s.cipher.DeriveKey(secret, user.EncryptionSalt)
	}

	memories, err := s.memoryRepository.ListMemories(ctx, user.UserID, limit)
	if err != nil {
		return nil, fmt.Errorf("memory listing ended with error: %w", err)
	}

	views := make([]models.MemoryView, 0, len(memories))
	for _, mem := range memories {
		views = append(views, models.MemoryView{
			MemoryID:    mem.MemoryID,
			Content:     s.cipher.SafeDecryptText(mem.Content, key),
			ContentType: mem.ContentType,
			CreatedAt:   mem.CreatedAt,
			ExpiresAt:   mem.ExpiresAt,
		})
	}

	return views, nil
}

// DeleteMemories removes the user's entire memory in one statement.
func (s *memoryService) DeleteMemories(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.memoryRepository.DeleteUserMemories(ctx, userID); err != nil {
		return fmt.Errorf("memory deletion ended with error: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("user memories deleted")
	return nil
}
