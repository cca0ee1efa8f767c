// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

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

// recordService is the concrete implementation of RecordService. It owns
// the encrypt-on-write / safe-decrypt-on-read boundary for chat messages:
// plaintext exists only inside a request, envelopes are what reach storage.
type recordService struct {
	chatRepository store.ChatRepository
	userRepository store.UserRepository
	cipher         crypto.RecordCipher
	logger         *logger.Logger
}

// NewRecordService constructs a RecordService wired to the given
// repositories and cipher.
func NewRecordService(chatRepository store.ChatRepository, userRepository store.UserRepository, cipher crypto.RecordCipher, logger *logger.Logger) RecordService {
	return &recordService{
		chatRepository: chatRepository,
		userRepository: userRepository,
		cipher:         cipher,
		logger:         logger,
	}
}

// CreateChat creates an empty conversation. Titles are stored in the clear
// and must stay non-sensitive; content belongs in messages.
func (s *recordService) CreateChat(ctx context.Context, userID, title string) (models.Chat, error) {
	if userID == "" {
		return models.Chat{}, ErrInvalidDataProvided
	}

	chat, err := s.chatRepository.CreateChat(ctx, userID, strings.TrimSpace(title))
	if err != nil {
		return models.Chat{}, fmt.Errorf("chat creation ended with error: %w", err)
	}

	return chat, nil
}

func (s *recordService) ListChats(ctx context.Context, userID string) ([]models.Chat, error) {
	if userID == "" {
		return nil, ErrInvalidDataProvided
	}

	chats, err := s.chatRepository.ListChats(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("chat listing ended with error: %w", err)
	}

	return chats, nil
}

// AppendMessage stores one message, encrypted. The chat lookup is scoped to
// the caller, so writing into someone else's chat is indistinguishable from
// writing into a chat that does not exist.
func (s *recordService) AppendMessage(ctx context.Context, user models.User, secret, chatID string, req models.AppendMessageRequest) (models.MessageView, error) {
	if chatID == "" || !validRole(req.Role) || len(req.Parts) == 0 {
		return models.MessageView{}, ErrInvalidDataProvided
	}

	if _, err := s.chatRepository.FindChat(ctx, chatID, user.UserID); err != nil {
		return models.MessageView{}, fmt.Errorf("chat lookup ended with error: %w", err)
	}

	key, err := ensureRecordKey(ctx, s.userRepository, s.cipher, user, secret)
	if err != nil {
		return models.MessageView{}, err
	}

	env, err := s.cipher.EncryptParts(req.Parts, key)
	if err != nil {
		return models.MessageView{}, fmt.Errorf("encrypting message parts: %w", err)
	}

	stored, err := json.Marshal(env)
	if err != nil {
		return models.MessageView{}, fmt.Errorf("serializing envelope: %w", err)
	}

	saved, err := s.chatRepository.AppendMessage(ctx, models.Message{
		ChatID: chatID,
		Role:   req.Role,
		Parts:  stored,
	})
	if err != nil {
		return models.MessageView{}, fmt.Errorf("message append ended with error: %w", err)
	}

	return models.MessageView{
		MessageID: saved.MessageID,
		Role:      saved.Role,
		Parts:     req.Parts,
		CreatedAt: saved.CreatedAt,
	}, nil
}

// ListMessages returns the chat's history with every stored record
// safe-decrypted. A user who has never written an encrypted record carries
// no salt; reads never provision one, the nil key simply degrades any
// envelope rows to placeholders.
func (s *recordService) ListMessages(ctx context.Context, user models.User, secret, chatID string) ([]models.MessageView, error) {
	if chatID == "" {
		return nil, ErrInvalidDataProvided
	}

	if _, err := s.chatRepository.FindChat(ctx, chatID, user.UserID); err != nil {
		return nil, fmt.Errorf("chat lookup ended with error: %w", err)
	}

	var key []byte
	if user.EncryptionSalt != "" {
		key = s.cipher.DeriveKey(secret, user.EncryptionSalt)
	}

	messages, err := s.chatRepository.ListMessages(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("message listing ended with error: %w", err)
	}

	views := make([]models.MessageView, 0, len(messages))
	for _, msg := range messages {
		views = append(views, models.MessageView{
			MessageID: msg.MessageID,
			Role:      msg.Role,
			Parts:     s.cipher.SafeDecryptParts(msg.Parts, key),
			CreatedAt: msg.CreatedAt,
		})
	}

	return views, nil
}

func validRole(role string) bool {
	return role == "user" || role == "assistant"
}

// ensureRecordKey derives the caller's record key, lazily provisioning the
// per-user salt on the first encrypting write. The guarded UPDATE never
// overwrites an existing salt, so when two first-writes race the loser
// re-reads and derives from the winner's salt.
func ensureRecordKey(ctx context.Context, users store.UserRepository, cipher crypto.RecordCipher, user models.User, secret string) ([]byte, error) {
	salt := user.EncryptionSalt
	if salt == "" {
		generated, err := cipher.GenerateSalt()
		if err != nil {
			return nil, fmt.Errorf("generating encryption salt: %w", err)
		}
		if err := users.SetUserSalt(ctx, user.UserID, generated); err != nil {
			return nil, fmt.Errorf("persisting encryption salt: %w", err)
		}
		salt, err = users.GetUserSalt(ctx, user.UserID)
		if err != nil {
			return nil, fmt.Errorf("re-reading encryption salt: %w", err)
		}
	}

	return cipher.DeriveKey(secret, salt), nil
}
