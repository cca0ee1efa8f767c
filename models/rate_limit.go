package models

import "time"

// RateLimitDecision is the outcome of one atomic check-and-increment
// against the per-IP account-creation counter.
type RateLimitDecision struct {
	// Allowed reports whether the creation attempt is within the limit.
	Allowed bool

	// Count is the counter value after the increment. When Allowed is
	// false it is the value that exceeded the limit.
	Count int

	// Limit is the configured cap the count was checked against.
	Limit int
}

// RateLimitCounter mirrors one row of the ip_rate_limits table. The
// counter is keyed by the salted IP digest, never the raw IP.
type RateLimitCounter struct {
	// IPDigest is the SHA-256 hex digest of "{ip}:{salt}".
	IPDigest string

	// Count is the number of identities provisioned from this digest
	// within the current window.
	Count int

	// WindowStartedAt marks the beginning of the current rolling window.
	// A counter whose window has elapsed is treated as stale and restarted
	// in place, not deleted.
	WindowStartedAt time.Time
}

// TableName returns the name of the database table
// associated with the RateLimitCounter model.
func (r RateLimitCounter) TableName() string {
	return "ip_rate_limits"
}
