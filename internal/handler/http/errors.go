// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package http

import "errors"

// Sentinel errors used by the authentication middleware when reading the
// bearer token header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyTokenHeader is returned by the auth middleware when the
	// incoming request does not include an "x-privy-token" header at all.
	ErrEmptyTokenHeader = errors.New("empty `x-privy-token` header")

	// ErrMalformedToken is returned when the header is present but its
	// value is not 64 hex characters.
	ErrMalformedToken = errors.New("malformed token in `x-privy-token` header")
)
