package models

import "time"

// Chat is one conversation owned by a user. Titles are short and
// non-sensitive; all sensitive content lives in messages.
type Chat struct {
	// ChatID is the internal unique identifier of the chat (UUID).
	ChatID string `json:"id"`

	// UserID is the owning user's identifier.
	UserID string `json:"-"`

	// Title is the display title of the conversation.
	Title string `json:"title"`

	// CreatedAt is the timestamp when the chat was created.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt, when set, marks the chat for auto-vanish cleanup.
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the Chat model.
func (c Chat) TableName() string {
	return "chats"
}
