package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrSecretDigestExists is returned when inserting a new user collides
	// with the unique constraint on secret_digest. Under a same-secret
	// provisioning race this is the expected outcome for the loser; the
	// caller falls back to a lookup instead of surfacing the conflict.
	ErrSecretDigestExists = errors.New("secret digest already exists")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrChatNotFound is returned when a chat lookup scoped to its owner
	// produces no row — either the chat does not exist or it belongs to
	// someone else; callers must not be able to tell the two apart.
	ErrChatNotFound = errors.New("chat was not found")

	// ErrRateLimiterUnavailable is returned when the atomic counter cannot
	// be read or written. The provisioner treats this as fail-closed:
	// availability of the abuse control is part of its correctness contract.
	ErrRateLimiterUnavailable = errors.New("rate limiter storage unavailable")
)
