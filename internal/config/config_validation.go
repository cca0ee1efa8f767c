// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package config

import (
	"time"
)

// Default tuning values applied after all sources were merged.
const (
	defaultRateLimitCount  = 5
	defaultRateLimitWindow = 24 * time.Hour
	defaultRequestTimeout  = 30 * time.Second
)

// applyDefaults fills tuning values that no configuration source provided.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.RateLimitCount == 0 {
		cfg.App.RateLimitCount = defaultRateLimitCount
	}
	if cfg.App.RateLimitWindow == 0 {
		cfg.App.RateLimitWindow = defaultRateLimitWindow
	}
	if cfg.Server.RequestTimeout == 0 {
		cfg.Server.RequestTimeout = defaultRequestTimeout
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The one hard invariant is the production IP salt: hashing client IPs with
// a guessable default would let an attacker pre-compute digests and bypass
// the account-creation rate limit, so startup refuses outright rather than
// degrading silently.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.Production() && cfg.App.IPSalt == "" {
		return ErrMissingProductionIPSalt
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrMissingDatabaseDSN
	}

	return nil
}
