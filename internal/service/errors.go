package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrUnauthenticated covers every credential failure the server refuses
	// to distinguish: missing token, malformed token, unknown token. One
	// error, one status code, no oracle.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTokenExpired marks an identity whose last activity predates the
	// configured TTL. Separate from ErrUnauthenticated internally; the
	// transport still maps both to the same response.
	ErrTokenExpired = errors.New("token is expired")
)

// RateLimitedError is returned when provisioning a new identity would
// exceed the per-IP cap. It carries the observed count and the cap so the
// transport can report both.
type RateLimitedError struct {
	Count int
	Limit int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("rate limited: %d identities created, limit is %d", e.Count, e.Limit)
}
