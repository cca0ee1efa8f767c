// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

// Package adapter provides transport-layer abstractions for communicating
// with the privy server.
//
// The primary abstraction is [ServerAdapter], which decouples the terminal
// client from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] / [errors.As] for
// transport-agnostic error handling (e.g. [ErrUnauthorized] for 401,
// [*RateLimitedError] for 429).
package adapter

import (
	"context"

	"github.com/privyhq/privy/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the privy
// server. Implementations are responsible for serialisation, attaching the
// bearer secret to authenticated requests, and mapping transport-level
// errors to the sentinel values defined in this package.
//
// There is no login call: the server provisions an identity on the first
// authenticated request carrying an unknown secret, so GetMe doubles as
// registration.
type ServerAdapter interface {
	// SetSecret stores the bearer secret that will be attached to all
	// subsequent authenticated requests. The secret never leaves process
	// memory on the client side.
	SetSecret(secret string)

	// Secret returns the bearer secret currently stored in the adapter, or
	// an empty string if none has been set yet.
	Secret() string

	// GetVersion fetches the server build version from the public version
	// endpoint. It requires no secret and is useful as a connectivity probe.
	GetVersion(ctx context.Context) (string, error)

	// GetMe returns the identity behind the stored secret, provisioning it
	// on the server if the secret has never been seen before. Returns
	// [*RateLimitedError] when the caller's network hit the identity
	// creation cap and [ErrUnauthorized] for a malformed or expired secret.
	GetMe(ctx context.Context) (models.User, error)

	// BurnAccount irreversibly deletes the identity behind the stored
	// secret together with every chat, message and memory it owns.
	BurnAccount(ctx context.Context) error

	// CreateChat creates a new conversation and returns it.
	CreateChat(ctx context.Context, req models.CreateChatRequest) (models.Chat, error)

	// ListChats returns the caller's conversations, newest first.
	ListChats(ctx context.Context) ([]models.Chat, error)

	// AppendMessage stores one plaintext message in the given chat. The
	// server encrypts it before it reaches storage. Returns [ErrNotFound]
	// if the chat does not exist or belongs to someone else.
	AppendMessage(ctx context.Context, chatID string, req models.AppendMessageRequest) (models.MessageView, error)

	// ListMessages returns the decrypted messages of a chat, oldest first.
	// Returns [ErrNotFound] if the chat does not exist or belongs to
	// someone else.
	ListMessages(ctx context.Context, chatID string) ([]models.MessageView, error)

	// SaveMemory stores one plaintext memory entry; the server encrypts it
	// before storage.
	SaveMemory(ctx context.Context, req models.SaveMemoryRequest) (models.MemoryView, error)

	// ListMemories returns up to limit decrypted memory entries, newest
	// first. limit <= 0 requests the server default.
	ListMemories(ctx context.Context, limit int) ([]models.MemoryView, error)

	// DeleteMemories removes every memory entry owned by the caller.
	DeleteMemories(ctx context.Context) error
}
