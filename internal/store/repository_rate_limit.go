// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package store

import (
	"context"
	"fmt"
	"time"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/models"
)

// rateLimitRepository is the PostgreSQL-backed implementation of
// [RateLimitRepository]. The whole check-and-increment runs as one upsert
// with RETURNING, so two concurrent creation attempts from the same IP
// serialize on the row lock instead of both observing "under limit" —
// the one race in the system with a correctness consequence.
type rateLimitRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRateLimitRepository constructs a [RateLimitRepository] backed by the
// provided database connection and logger.
func NewRateLimitRepository(db *DB, logger *logger.Logger) RateLimitRepository {
	logger.Debug().Msg("creating rate limit repository")
	return &rateLimitRepository{
		db:     db,
		logger: logger,
	}
}

// CheckAndIncrement implements [RateLimitRepository].
//
// Every storage failure maps to [ErrRateLimiterUnavailable]: the caller
// must fail closed rather than provision unlimited accounts while the
// abuse control is down.
func (r *rateLimitRepository) CheckAndIncrement(ctx context.Context, ipDigest string, limit int, window time.Duration) (models.RateLimitDecision, error) {
	log := logger.FromContext(ctx)

	var count int
	row := r.db.QueryRowContext(ctx, checkAndIncrementRateLimit, ipDigest, window.Seconds())
	if err := row.Scan(&count); err != nil {
		log.Err(err).Str("func", "*rateLimitRepository.CheckAndIncrement").Msg("error: rate limit upsert")
		return models.RateLimitDecision{}, fmt.Errorf("%w: %w", ErrRateLimiterUnavailable, err)
	}

	return models.RateLimitDecision{
		Allowed: count <= limit,
		Count:   count,
		Limit:   limit,
	}, nil
}
