// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

// Package token implements the bearer-secret primitives of the zero-trust
// authentication scheme: client-side secret generation, format validation,
// and the one-way digests used server-side in place of the secret.
//
// The bearer secret IS the identity: possession equals access, and the
// server never persists it in raw form. Everything here is a pure function
// over the secret; no secret material is retained after a call returns.
package token

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"regexp"
	"strings"
)

// SecretLength is the size of a raw bearer secret in bytes.
// 32 bytes encode to 64 hex characters on the wire.
const SecretLength = 32

// secretFormat matches one well-formed hex-encoded bearer secret.
// Case-insensitive: clients may re-enter a secret they wrote down.
var secretFormat = regexp.MustCompile(`^[a-fA-F0-9]{64}$`)

// GenerateSecret produces a fresh bearer secret from the OS CSPRNG,
// hex-encoded to 64 lowercase characters. This happens client-side only;
// the server never generates identities.
func GenerateSecret() (string, error) {
	raw := make([]byte, SecretLength)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return hex.EncodeToString(raw), nil
}

// IsValidFormat reports whether s (after trimming surrounding whitespace)
// is exactly 64 hex characters. Callers must treat a failing value the same
// as an absent credential: distinguishing "malformed" from "missing" would
// leak information about credential shape.
func IsValidFormat(s string) bool {
	return secretFormat.MatchString(strings.TrimSpace(s))
}

// Normalize strips all whitespace from a secret pasted in display form and
// lowercases it, undoing [FormatForDisplay].
func Normalize(input string) string {
	return strings.ToLower(strings.Join(strings.Fields(input), ""))
}

// HashSecret computes the SHA-256 hex digest of a bearer secret over its
// UTF-8 bytes. The digest is the server-side lookup key for the identity:
// deterministic (idempotent provisioning depends on it) and irreversible.
func HashSecret(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// VerifySecret reports whether secret hashes to digest, comparing in
// constant time.
func VerifySecret(secret, digest string) bool {
	computed := HashSecret(secret)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(digest)) == 1
}

// ShortID returns the first 8 characters of a secret, used for display as
// "token ending in ab12cd34..." without exposing usable material.
func ShortID(secret string) string {
	if len(secret) < 8 {
		return secret
	}
	return secret[:8]
}

// FormatForDisplay splits a secret into 8-character chunks so a user can
// copy it down line by line.
func FormatForDisplay(secret string) []string {
	chunks := make([]string, 0, len(secret)/8+1)
	for i := 0; i < len(secret); i += 8 {
		end := i + 8
		if end > len(secret) {
			end = len(secret)
		}
		chunks = append(chunks, secret[i:end])
	}
	return chunks
}
