package models

import (
	"encoding/json"
	"time"
)

// MessagePart is one element of a message's parts array. The original
// storage format predates encryption, so the stored column may hold either
// a plain array of parts or an [Envelope] wrapping one.
type MessagePart struct {
	// Type discriminates the part ("text" is the only type this core
	// interprets; others pass through untouched).
	Type string `json:"type"`

	// Text is the content for parts of type "text".
	Text string `json:"text,omitempty"`
}

// Message is one chat message. Parts holds the raw stored column value:
// either an encrypted [Envelope] or a legacy plaintext parts array.
type Message struct {
	// MessageID is the internal unique identifier of the message (UUID).
	MessageID string `json:"id"`

	// ChatID is the owning chat's identifier.
	ChatID string `json:"chat_id"`

	// Role is the author role ("user" or "assistant").
	Role string `json:"role"`

	// Parts is the stored parts column, opaque at this layer.
	Parts json.RawMessage `json:"parts"`

	// CreatedAt is the timestamp when the message was stored.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Message model.
func (m Message) TableName() string {
	return "messages"
}
