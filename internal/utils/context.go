// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, HTTP client initialization, and other
// common operations.
package utils

import (
	"context"

	"github.com/privyhq/privy/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the authenticated user in the
// context. Set by the auth middleware, read via GetUserFromContext.
var UserCtxKey = contextKey("user")

// SecretCtxKey is the key used to store the caller's raw bearer secret in
// the context for the duration of one request. The secret is needed
// downstream for key derivation and must never outlive the request or be
// written anywhere.
var SecretCtxKey = contextKey("secret")

// GetUserFromContext retrieves the authenticated user from the context.
//
// Returns the user and an ok flag:
//   - ok == true  — value is found and has the correct type
//   - ok == false — value is missing or has an unexpected type
func GetUserFromContext(ctx context.Context) (models.User, bool) {
	user, ok := ctx.Value(UserCtxKey).(models.User)
	return user, ok
}

// GetSecretFromContext retrieves the caller's raw bearer secret from the
// context.
func GetSecretFromContext(ctx context.Context) (string, bool) {
	secret, ok := ctx.Value(SecretCtxKey).(string)
	return secret, ok
}
