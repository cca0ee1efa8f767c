package models

import "time"

// User represents an anonymous identity resolved from a bearer secret.
// The server never sees the secret at rest: the only credential material
// persisted is SecretDigest, a one-way SHA-256 hash of the secret.
type User struct {
	// UserID is the internal unique identifier of the user (UUID).
	UserID string `json:"id"`

	// SecretDigest is the SHA-256 hex digest of the bearer secret.
	// It is the unique lookup key for the account and is never exposed
	// via JSON.
	SecretDigest string `json:"-"`

	// EncryptionSalt is the per-user salt mixed into key derivation.
	// Generated lazily on the first encryption operation and immutable
	// afterwards: regenerating it would orphan every previously encrypted
	// record. Empty until first use.
	EncryptionSalt string `json:"-"`

	// Plan is opaque subscription metadata owned by the billing
	// integration. Carried through but never interpreted by this core.
	Plan string `json:"plan"`

	// CreatedAt is the timestamp when the identity was provisioned.
	CreatedAt time.Time `json:"created_at"`

	// LastActiveAt is refreshed on every authenticated request.
	LastActiveAt time.Time `json:"last_active_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
