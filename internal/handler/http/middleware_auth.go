// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strings"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/service"
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/internal/utils"
	"github.com/privyhq/privy/models"
)

// tokenHeader carries the client-generated bearer secret. There is no
// scheme prefix: the header value is the 64-hex-character secret itself.
const tokenHeader = "x-privy-token"

// auth is an HTTP middleware that resolves the bearer secret into a user,
// provisioning the identity on first use.
//
// On success it stores the resolved user under [utils.UserCtxKey] and the
// raw secret under [utils.SecretCtxKey] — downstream handlers need the
// secret to derive the caller's record key — and delegates to the next
// handler.
//
// Response mapping:
//   - 401 — header absent, token malformed, or identity expired. All three
//     look identical to the client.
//   - 429 — the caller's IP exhausted its identity-creation budget; the
//     body names the observed count and the limit.
//   - 503 — the rate limiter's storage cannot be reached. New identities
//     are refused rather than admitted unchecked.
//
// Rejection events are logged via the context-scoped logger with shape
// metadata only — never the token value or the raw IP.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		secret := strings.TrimSpace(r.Header.Get(tokenHeader))
		if secret == "" {
			log.Err(ErrEmptyTokenHeader).Send()
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.IdentityService.GetOrCreateUser(ctx, secret, clientIP(r))
		if err != nil {
			h.writeAuthError(w, r, err)
			return
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)
		ctx = context.WithValue(ctx, utils.SecretCtxKey, secret)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (h *Handler) writeAuthError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	var rateErr *service.RateLimitedError
	switch {
	case errors.As(err, &rateErr):
		log.Warn().Int("count", rateErr.Count).Int("limit", rateErr.Limit).Msg("identity creation rate limited")
		utils.WriteJSON(w, models.RateLimitedResponse{
			Error: "too many accounts created from this address",
			Count: rateErr.Count,
			Limit: rateErr.Limit,
		}, http.StatusTooManyRequests)

	case errors.Is(err, store.ErrRateLimiterUnavailable):
		log.Err(err).Msg("rate limiter unavailable, refusing authentication")
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)

	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrTokenExpired):
		log.Warn().Msg("authentication rejected")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)

	default:
		log.Err(err).Msg("error resolving identity")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// clientIP resolves the request's client address: the first entry of
// X-Forwarded-For when a proxy set it, then X-Real-IP, then the socket
// peer. Rate-limit accounting hangs off this value, so the deployment's
// proxy must be trusted to scrub client-supplied forwarding headers.
func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	if realIP := strings.TrimSpace(r.Header.Get("X-Real-IP")); realIP != "" {
		return realIP
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
