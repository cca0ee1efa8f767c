// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/internal/token"
	"github.com/privyhq/privy/models"
)

// identityService is the concrete implementation of IdentityService.
// It resolves bearer secrets to users via their SHA-256 digest, provisions
// unknown secrets on first use behind the per-IP rate limit, and enforces
// the optional identity TTL.
type identityService struct {
	userRepository store.UserRepository
	rateLimiter    store.RateLimitRepository

	// ipHasher digests client IPs before they touch storage. Raw IPs never
	// leave the request scope.
	ipHasher *token.IPHasher

	// rateLimitCount and rateLimitWindow bound new-identity creation per
	// IP digest. Lookups of existing identities are never limited.
	rateLimitCount  int
	rateLimitWindow time.Duration

	// tokenTTL, when non-zero, rejects identities idle longer than this.
	tokenTTL time.Duration

	logger *logger.Logger
}

// NewIdentityService constructs an IdentityService wired to the given
// repositories and populated with limits from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewIdentityService(userRepository store.UserRepository, rateLimiter store.RateLimitRepository, cfg config.App, logger *logger.Logger) IdentityService {
	return &identityService{
		userRepository:  userRepository,
		rateLimiter:     rateLimiter,
		ipHasher:        token.NewIPHasher(cfg.IPSalt, cfg.Production()),
		rateLimitCount:  cfg.RateLimitCount,
		rateLimitWindow: cfg.RateLimitWindow,
		tokenTTL:        cfg.TokenTTL,
		logger:          logger,
	}
}

// GetOrCreateUser authenticates one request.
//
// Fast path: the secret's digest matches an existing user. The identity is
// returned after a TTL check and a last-active refresh. No rate limiting
// applies here — returning users cost nothing.
//
// Slow path: the digest is unknown. The per-IP counter is atomically
// incremented first; only an allowed decision proceeds to insert. A unique
// violation on insert means a concurrent request with the same secret won
// the race, so the loser falls back to a lookup — both callers end up with
// the same user.
//
// Returns:
//   - [ErrUnauthenticated] for a malformed secret.
//   - [ErrTokenExpired] when the identity outlived the configured TTL.
//   - [*RateLimitedError] when the IP exhausted its creation budget.
//   - [store.ErrRateLimiterUnavailable] (wrapped) when the counter cannot
//     be reached: creation fails closed.
func (s *identityService) GetOrCreateUser(ctx context.Context, secret, clientIP string) (models.User, error) {
	log := logger.FromContext(ctx)

	normalized := token.Normalize(secret)
	if !token.IsValidFormat(normalized) {
		return models.User{}, ErrUnauthenticated
	}

	digest := token.HashSecret(normalized)

	user, err := s.userRepository.FindBySecretDigest(ctx, digest)
	switch {
	case err == nil:
		if s.expired(user) {
			return models.User{}, ErrTokenExpired
		}
		if err := s.userRepository.UpdateLastActive(ctx, user.UserID); err != nil {
			// Not worth failing the request over: the identity is valid,
			// only its activity timestamp is stale.
			log.Err(err).Str("user_id", user.UserID).Msg("failed to refresh last active")
		}
		return user, nil

	case errors.Is(err, store.ErrNoUserWasFound):
		return s.provisionUser(ctx, digest, clientIP)

	default:
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}
}

// provisionUser creates a new identity for an unknown digest. The rate
// limit check and the creation are two steps; the check always runs first
// and its failure is terminal.
func (s *identityService) provisionUser(ctx context.Context, digest, clientIP string) (models.User, error) {
	log := logger.FromContext(ctx)

	ipDigest, err := s.ipHasher.HashIP(clientIP)
	if err != nil {
		return models.User{}, fmt.Errorf("hashing client ip: %w", err)
	}

	decision, err := s.rateLimiter.CheckAndIncrement(ctx, ipDigest, s.rateLimitCount, s.rateLimitWindow)
	if err != nil {
		// Fail closed. An unreachable limiter must not turn into an
		// unlimited account faucet.
		return models.User{}, fmt.Errorf("rate limit check ended with error: %w", err)
	}
	if !decision.Allowed {
		log.Warn().Int("count", decision.Count).Int("limit", decision.Limit).Msg("identity creation rate limited")
		return models.User{}, &RateLimitedError{Count: decision.Count, Limit: decision.Limit}
	}

	user, err := s.userRepository.CreateUser(ctx, digest)
	if errors.Is(err, store.ErrSecretDigestExists) {
		// Lost a same-secret race; the winner's row is the identity.
		return s.userRepository.FindBySecretDigest(ctx, digest)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	log.Info().Str("user_id", user.UserID).Msg("provisioned new identity")
	return user, nil
}

func (s *identityService) expired(user models.User) bool {
	if s.tokenTTL <= 0 {
		return false
	}
	return time.Since(user.LastActiveAt) > s.tokenTTL
}

// BurnUser deletes the identity row; chats, messages, and memories go with
// it via cascade. There is no undo and no soft-delete.
func (s *identityService) BurnUser(ctx context.Context, userID string) error {
	log := logger.FromContext(ctx)

	if userID == "" {
		return ErrInvalidDataProvided
	}

	if err := s.userRepository.DeleteUser(ctx, userID); err != nil {
		return fmt.Errorf("user deletion ended with error: %w", err)
	}

	log.Info().Str("user_id", userID).Msg("identity burned")
	return nil
}
