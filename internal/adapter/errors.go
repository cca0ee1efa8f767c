package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrServerUnavailable   = errors.New("server unavailable")
	ErrInternalServerError = errors.New("internal server error")
)

// RateLimitedError is returned when the server refuses to provision a new
// identity because the caller's network already created too many recently.
// Count and Limit come from the server's 429 response body.
type RateLimitedError struct {
	Count int
	Limit int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("identity creation rate limited: %d of %d in window", e.Count, e.Limit)
}
