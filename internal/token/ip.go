// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package token

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
)

// devIPSalt is the fixed fallback salt for non-production configurations.
// Never acceptable in production: a guessable salt would let an attacker
// pre-compute IP digests and side-step the account-creation limit.
const devIPSalt = "privy-default-salt-change-in-prod"

// ErrMissingIPSalt is returned when IP hashing is attempted in a production
// configuration without a configured salt. This is a hard stop, not a
// fallback: proceeding would silently weaken the rate-limit defense.
var ErrMissingIPSalt = errors.New("ip salt is required in production")

// IPHasher computes salted one-way digests of client IPs. The digest is
// used only as an accounting key for rate limiting; the raw IP is never
// stored or logged.
type IPHasher struct {
	salt       string
	production bool
}

// NewIPHasher constructs an [IPHasher]. salt may be empty outside
// production, in which case a fixed development salt is used.
func NewIPHasher(salt string, production bool) *IPHasher {
	return &IPHasher{salt: salt, production: production}
}

// HashIP returns the SHA-256 hex digest of "{ip}:{salt}".
//
// Fails with [ErrMissingIPSalt] when running in production without a
// configured salt.
func (h *IPHasher) HashIP(ip string) (string, error) {
	salt := h.salt
	if salt == "" {
		if h.production {
			return "", ErrMissingIPSalt
		}
		salt = devIPSalt
	}

	sum := sha256.Sum256(fmt.Appendf(nil, "%s:%s", ip, salt))
	return hex.EncodeToString(sum[:]), nil
}
