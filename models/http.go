package models

import "time"

// CreateChatRequest is the body of POST /api/chats.
type CreateChatRequest struct {
	// Title is the display title of the new conversation.
	Title string `json:"title"`
}

// AppendMessageRequest is the body of POST /api/chats/{chatID}/messages.
// Parts is accepted in plaintext and encrypted server-side before storage.
type AppendMessageRequest struct {
	// Role is the author role ("user" or "assistant").
	Role string `json:"role"`

	// Parts is the plaintext parts array to store.
	Parts []MessagePart `json:"parts"`
}

// MessageView is one decrypted message as returned to the client. Parts is
// always a plain array here: encrypted records are decrypted on the way out
// and undecryptable ones are replaced by a placeholder part.
type MessageView struct {
	MessageID string        `json:"id"`
	Role      string        `json:"role"`
	Parts     []MessagePart `json:"parts"`
	CreatedAt time.Time     `json:"created_at"`
}

// SaveMemoryRequest is the body of POST /api/memory.
type SaveMemoryRequest struct {
	// Content is the plaintext memory text to store.
	Content string `json:"content"`

	// ContentType labels the kind of entry ("insight" when empty).
	ContentType string `json:"content_type,omitempty"`

	// ExpiresAt optionally schedules the entry for auto-vanish cleanup.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// MemoryView is one decrypted memory entry as returned to the client.
type MemoryView struct {
	MemoryID    string     `json:"id"`
	Content     string     `json:"content"`
	ContentType string     `json:"content_type"`
	CreatedAt   time.Time  `json:"created_at"`
	ExpiresAt   *time.Time `json:"expires_at,omitempty"`
}

// RateLimitedResponse is the body of a 429 returned when the per-IP
// account-creation cap is hit. It names the observed count and the limit so
// the client can explain the refusal without the server leaking anything
// about other identities.
type RateLimitedResponse struct {
	Error string `json:"error"`
	Count int    `json:"count"`
	Limit int    `json:"limit"`
}

// ErrorResponse is the generic JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}
