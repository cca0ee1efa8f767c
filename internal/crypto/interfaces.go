package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/record_cipher_mock.go -package=mock

import (
	"encoding/json"

	"github.com/privyhq/privy/models"
)

// RecordCipher owns every cryptographic operation performed on stored
// records. It knows nothing about the network, the database, or users.
//
// Scheme:
//
//	salt = GenerateSalt()                   (once per user, lazily)
//	key  = DeriveKey(secret, salt)          (recomputed every request)
//	env  = EncryptParts(parts, key)         (on write)
//	parts = SafeDecryptParts(stored, key)   (on read, total — never panics)
//
// The derived key is never persisted anywhere; determinism of DeriveKey is
// what makes round-trip decryption across requests possible.
type RecordCipher interface {
	// GenerateSalt produces a random 128-bit per-user salt, hex-encoded.
	// The salt is not a secret — it is stored on the user record openly.
	GenerateSalt() (string, error)

	// DeriveKey derives the 256-bit record key from the raw bearer secret
	// and the user's salt via PBKDF2-SHA256. Identical inputs always yield
	// the identical key. Deliberately slow.
	DeriveKey(secret, userSalt string) []byte

	// Encrypt seals plaintext under key with AES-256-GCM, using a fresh
	// random 96-bit nonce. Nonce reuse under GCM is catastrophic, so every
	// call draws a new one from the CSPRNG.
	Encrypt(plaintext []byte, key []byte) (models.Envelope, error)

	// Decrypt opens an envelope under key, verifying the authentication
	// tag. Any tampering or a wrong key fails hard; callers must treat the
	// error as "cannot decrypt", never as partially recoverable.
	Decrypt(env models.Envelope, key []byte) ([]byte, error)

	// EncryptParts JSON-serializes a message parts array and seals it.
	EncryptParts(parts []models.MessagePart, key []byte) (models.Envelope, error)

	// EncryptText seals a plain string (memory content).
	EncryptText(text string, key []byte) (models.Envelope, error)

	// SafeDecryptParts inspects a stored parts column and returns a usable
	// parts array no matter what it finds: decrypted content, the untouched
	// array for legacy plaintext records, or a fixed placeholder part when
	// decryption fails, the key is unavailable, or the shape is unknown.
	// It never returns an error and never panics.
	SafeDecryptParts(stored json.RawMessage, key []byte) []models.MessagePart

	// SafeDecryptText is the memory-content counterpart of
	// SafeDecryptParts: decrypted text, plaintext passthrough for a bare
	// JSON string, or "" when the content cannot be recovered.
	SafeDecryptText(stored json.RawMessage, key []byte) string
}
