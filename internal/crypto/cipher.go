// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/pbkdf2"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/models"
)

const (
	// keyLength is the derived key size: 256 bits.
	keyLength = 32

	// ivLength is the GCM nonce size: 96 bits, the recommended value.
	ivLength = 12

	// saltLength is the per-user salt size: 128 bits.
	saltLength = 16

	// pbkdf2Iterations is the OWASP-recommended minimum for PBKDF2-SHA256.
	// Raising it invalidates nothing (the count is not stored), but both
	// sides of a round trip must run the same build.
	pbkdf2Iterations = 100_000
)

// Placeholder parts returned by the compatibility decoder. These are
// user-visible: a single undecryptable record must degrade to one of these
// instead of failing the read of an entire conversation.
const (
	PlaceholderKeyUnavailable = "[Message encrypted - key unavailable]"
	PlaceholderDecryptFailed  = "[Message decryption failed]"
	PlaceholderUnrecognized   = "[Message format unrecognized]"
)

// recordCipher is the private implementation of [RecordCipher].
type recordCipher struct {
	// masterSalt is the server-wide salt concatenated with the per-user
	// salt during key derivation. May be empty: defense in depth, not a
	// hard requirement. With it, a database dump alone (which holds the
	// per-user salts) is not enough to start deriving keys.
	masterSalt string

	logger *logger.Logger
}

// NewRecordCipher constructs a [RecordCipher] with the given server-wide
// master salt.
func NewRecordCipher(masterSalt string, logger *logger.Logger) RecordCipher {
	return &recordCipher{
		masterSalt: masterSalt,
		logger:     logger,
	}
}

// GenerateSalt implements [RecordCipher]. It reads 16 random bytes from the
// OS CSPRNG and returns them hex-encoded. Returns an error if the random
// read fails.
func (c *recordCipher) GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(salt), nil
}

// DeriveKey implements [RecordCipher]. The effective PBKDF2 salt is
// "{userSalt}:{masterSalt}", so deriving a key takes the bearer secret
// (never stored), the user salt (database), and the master salt (server
// configuration) together.
func (c *recordCipher) DeriveKey(secret, userSalt string) []byte {
	combined := fmt.Sprintf("%s:%s", userSalt, c.masterSalt)
	return pbkdf2.Key([]byte(secret), []byte(combined), pbkdf2Iterations, keyLength, sha256.New)
}

// Encrypt implements [RecordCipher]. The GCM seal output is split into
// ciphertext and tag so the envelope carries them as separate fields.
func (c *recordCipher) Encrypt(plaintext []byte, key []byte) (models.Envelope, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("create gcm: %w", err)
	}

	iv := make([]byte, ivLength)
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return models.Envelope{}, fmt.Errorf("generate nonce: %w", err)
	}

	sealed := gcm.Seal(nil, iv, plaintext, nil)
	tagStart := len(sealed) - gcm.Overhead()
	data, tag := sealed[:tagStart], sealed[tagStart:]

	return models.Envelope{
		IV:   base64.StdEncoding.EncodeToString(iv),
		Data: base64.StdEncoding.EncodeToString(data),
		Tag:  base64.StdEncoding.EncodeToString(tag),
		V:    models.EnvelopeVersion,
	}, nil
}

// Decrypt implements [RecordCipher]. It rebuilds nonce, ciphertext and tag
// from base64 and verifies the tag during gcm.Open. A wrong key, a flipped
// bit anywhere, or a malformed field all fail the same way.
func (c *recordCipher) Decrypt(env models.Envelope, key []byte) ([]byte, error) {
	iv, err := base64.StdEncoding.DecodeString(env.IV)
	if err != nil {
		return nil, fmt.Errorf("decode iv: %w", err)
	}
	data, err := base64.StdEncoding.DecodeString(env.Data)
	if err != nil {
		return nil, fmt.Errorf("decode data: %w", err)
	}
	tag, err := base64.StdEncoding.DecodeString(env.Tag)
	if err != nil {
		return nil, fmt.Errorf("decode tag: %w", err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	if len(iv) != gcm.NonceSize() {
		return nil, fmt.Errorf("bad nonce length %d", len(iv))
	}

	plaintext, err := gcm.Open(nil, iv, append(data, tag...), nil)
	if err != nil {
		return nil, fmt.Errorf("decrypt record: %w", err)
	}

	return plaintext, nil
}

// EncryptParts implements [RecordCipher].
func (c *recordCipher) EncryptParts(parts []models.MessagePart, key []byte) (models.Envelope, error) {
	plaintext, err := json.Marshal(parts)
	if err != nil {
		return models.Envelope{}, fmt.Errorf("marshal parts: %w", err)
	}
	return c.Encrypt(plaintext, key)
}

// EncryptText implements [RecordCipher].
func (c *recordCipher) EncryptText(text string, key []byte) (models.Envelope, error) {
	return c.Encrypt([]byte(text), key)
}
