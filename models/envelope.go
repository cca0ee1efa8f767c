// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package models

import "encoding/json"

// EnvelopeVersion is the current encrypted-record format version.
const EnvelopeVersion = 1

// Envelope is the stored form of one encrypted record: a random nonce,
// the ciphertext, and the GCM authentication tag, all base64-encoded,
// plus a format version for future migrations.
//
// Consumers (message store, memory store) treat the envelope as an opaque
// JSON value; only the record cipher understands its internals.
type Envelope struct {
	// IV is the base64-encoded 96-bit nonce, unique per record.
	IV string `json:"iv"`

	// Data is the base64-encoded ciphertext.
	Data string `json:"data"`

	// Tag is the base64-encoded 128-bit authentication tag.
	Tag string `json:"tag"`

	// V is the envelope format version.
	V int `json:"v"`
}

// IsEnvelope reports whether raw structurally matches the envelope shape:
// iv/data/tag present as strings and v as a number. It is the dispatch
// point between encrypted records and legacy plaintext ones, so it must
// never be fooled by a plain JSON array or a partial object.
func IsEnvelope(raw json.RawMessage) (Envelope, bool) {
	var probe struct {
		IV   *string `json:"iv"`
		Data *string `json:"data"`
		Tag  *string `json:"tag"`
		V    *int    `json:"v"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return Envelope{}, false
	}
	if probe.IV == nil || probe.Data == nil || probe.Tag == nil || probe.V == nil {
		return Envelope{}, false
	}
	return Envelope{IV: *probe.IV, Data: *probe.Data, Tag: *probe.Tag, V: *probe.V}, true
}
