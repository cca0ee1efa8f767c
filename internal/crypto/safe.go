// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package crypto

import (
	"encoding/json"

	"github.com/privyhq/privy/models"
)

// SafeDecryptParts implements [RecordCipher]. Total over its input: every
// branch returns a usable parts array, so one malformed historical record
// can never break the read of a whole conversation.
//
// Diagnostics logged on failure are shape-only (field lengths, version) —
// never the key, the ciphertext, or any recovered plaintext.
func (c *recordCipher) SafeDecryptParts(stored json.RawMessage, key []byte) []models.MessagePart {
	if env, ok := models.IsEnvelope(stored); ok {
		if key == nil {
			c.logger.Error().
				Int("version", env.V).
				Msg("encrypted record found but no key available")
			return placeholderParts(PlaceholderKeyUnavailable)
		}

		plaintext, err := c.Decrypt(env, key)
		if err != nil {
			c.logDecryptFailure(env, err)
			return placeholderParts(PlaceholderDecryptFailed)
		}

		var parts []models.MessagePart
		if err := json.Unmarshal(plaintext, &parts); err != nil {
			c.logDecryptFailure(env, err)
			return placeholderParts(PlaceholderDecryptFailed)
		}
		return parts
	}

	// Legacy plaintext path: records written before encryption was
	// introduced store the parts array directly.
	var parts []models.MessagePart
	if err := json.Unmarshal(stored, &parts); err == nil && parts != nil {
		return parts
	}

	c.logger.Error().
		Int("stored_len", len(stored)).
		Msg("unrecognized stored parts format")
	return placeholderParts(PlaceholderUnrecognized)
}

// SafeDecryptText implements [RecordCipher]. Same total-coverage contract
// as SafeDecryptParts, for memory content: an unrecoverable entry degrades
// to the empty string rather than a visible placeholder, since memory is
// best-effort enrichment rather than primary content.
func (c *recordCipher) SafeDecryptText(stored json.RawMessage, key []byte) string {
	if env, ok := models.IsEnvelope(stored); ok {
		if key == nil {
			return ""
		}
		plaintext, err := c.Decrypt(env, key)
		if err != nil {
			c.logDecryptFailure(env, err)
			return ""
		}
		return string(plaintext)
	}

	var text string
	if err := json.Unmarshal(stored, &text); err == nil {
		return text
	}

	return ""
}

func (c *recordCipher) logDecryptFailure(env models.Envelope, err error) {
	c.logger.Error().
		Err(err).
		Int("version", env.V).
		Int("iv_len", len(env.IV)).
		Int("data_len", len(env.Data)).
		Msg("record decryption failed")
}

func placeholderParts(text string) []models.MessagePart {
	return []models.MessagePart{{Type: "text", Text: text}}
}
