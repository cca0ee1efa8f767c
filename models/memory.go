package models

import (
	"encoding/json"
	"time"
)

// Memory is one cross-session memory entry for a user. Content holds the
// raw stored column value: either an encrypted [Envelope] or legacy
// plaintext (a bare JSON string).
type Memory struct {
	// MemoryID is the internal unique identifier of the entry (UUID).
	MemoryID string `json:"id"`

	// UserID is the owning user's identifier.
	UserID string `json:"-"`

	// ChatID optionally links the entry to the conversation it came from.
	ChatID string `json:"chat_id,omitempty"`

	// Content is the stored content column, opaque at this layer.
	Content json.RawMessage `json:"content"`

	// ContentType labels the kind of entry ("insight", "summary", ...).
	ContentType string `json:"content_type"`

	// CreatedAt is the timestamp when the entry was stored.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt, when set, marks the entry for auto-vanish cleanup.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Memory model.
func (m Memory) TableName() string {
	return "memories"
}
