package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/mock"
	"github.com/privyhq/privy/internal/service"
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/internal/utils"
	"github.com/privyhq/privy/models"
)

const testSecret = "abababababababababababababababababababababababababababababababab"

// ---- Helpers ----

func newHandlerWithIdentityService(identitySvc service.IdentityService) *Handler {
	return &Handler{
		logger:  logger.Nop(),
		version: "test",
		services: &service.Services{
			IdentityService: identitySvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, token string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if token != "" {
		req.Header.Set(tokenHeader, token)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

// ---- auth middleware tests ----

func TestAuth_MissingHeader(t *testing.T) {
	h := newHandlerWithIdentityService(nil)

	rr := executeAuth(h, "", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run without a token")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_MalformedToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock.NewMockIdentityService(ctrl)
	mockIdentity.EXPECT().GetOrCreateUser(gomock.Any(), "not-hex", gomock.Any()).
		Return(models.User{}, service.ErrUnauthenticated)

	h := newHandlerWithIdentityService(mockIdentity)

	rr := executeAuth(h, "not-hex", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for a malformed token")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuth_Success_PopulatesContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolved := models.User{UserID: "u-1"}

	mockIdentity := mock.NewMockIdentityService(ctrl)
	mockIdentity.EXPECT().GetOrCreateUser(gomock.Any(), testSecret, gomock.Any()).
		Return(resolved, nil)

	h := newHandlerWithIdentityService(mockIdentity)

	var nextRan bool
	rr := executeAuth(h, testSecret, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextRan = true

		user, ok := utils.GetUserFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, "u-1", user.UserID)

		secret, ok := utils.GetSecretFromContext(r.Context())
		require.True(t, ok)
		assert.Equal(t, testSecret, secret)
	}))

	assert.True(t, nextRan)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuth_RateLimited(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock.NewMockIdentityService(ctrl)
	mockIdentity.EXPECT().GetOrCreateUser(gomock.Any(), testSecret, gomock.Any()).
		Return(models.User{}, &service.RateLimitedError{Count: 6, Limit: 5})

	h := newHandlerWithIdentityService(mockIdentity)

	rr := executeAuth(h, testSecret, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run when rate limited")
	}))

	assert.Equal(t, http.StatusTooManyRequests, rr.Code)

	var body models.RateLimitedResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 6, body.Count)
	assert.Equal(t, 5, body.Limit)
	assert.NotEmpty(t, body.Error)
}

func TestAuth_LimiterUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock.NewMockIdentityService(ctrl)
	mockIdentity.EXPECT().GetOrCreateUser(gomock.Any(), testSecret, gomock.Any()).
		Return(models.User{}, store.ErrRateLimiterUnavailable)

	h := newHandlerWithIdentityService(mockIdentity)

	rr := executeAuth(h, testSecret, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run while the limiter is down")
	}))

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestAuth_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIdentity := mock.NewMockIdentityService(ctrl)
	mockIdentity.EXPECT().GetOrCreateUser(gomock.Any(), testSecret, gomock.Any()).
		Return(models.User{}, service.ErrTokenExpired)

	h := newHandlerWithIdentityService(mockIdentity)

	rr := executeAuth(h, testSecret, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run for an expired identity")
	}))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

// ---- clientIP unit tests ----

func TestClientIP_TableTest(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		realIP     string
		want       string
	}{
		{
			name:       "socket peer only",
			remoteAddr: "192.0.2.10:52341",
			want:       "192.0.2.10",
		},
		{
			name:       "x-forwarded-for wins",
			remoteAddr: "10.0.0.1:80",
			forwarded:  "203.0.113.7, 10.0.0.1",
			want:       "203.0.113.7",
		},
		{
			name:       "x-real-ip fallback",
			remoteAddr: "10.0.0.1:80",
			realIP:     "203.0.113.7",
			want:       "203.0.113.7",
		},
		{
			name:       "whitespace in forwarded list",
			remoteAddr: "10.0.0.1:80",
			forwarded:  " 203.0.113.7 ,10.0.0.1",
			want:       "203.0.113.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			if tt.realIP != "" {
				req.Header.Set("X-Real-IP", tt.realIP)
			}

			assert.Equal(t, tt.want, clientIP(req))
		})
	}
}
