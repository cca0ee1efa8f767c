// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The privy authors

package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/privyhq/privy/internal/adapter"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unreachable"
	}

	return err.Error()
}

// humanizeAuthError translates token-flow failures into something a person
// staring at a welcome screen can act on.
func humanizeAuthError(err error) string {
	if err == nil {
		return ""
	}

	var rl *adapter.RateLimitedError
	switch {
	case errors.As(err, &rl):
		if rl.Limit > 0 {
			return fmt.Sprintf("Too many new identities from your network (%d of %d). Try again later or paste an existing token.", rl.Count, rl.Limit)
		}
		return "Too many new identities from your network. Try again later or paste an existing token."
	case errors.Is(err, adapter.ErrUnauthorized):
		return "The server did not accept this token"
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "The server cannot verify tokens right now. Try again in a moment."
	default:
		return humanizeServerUnavailableError(err)
	}
}
