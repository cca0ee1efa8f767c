package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/privyhq/privy/internal/config"
	"github.com/privyhq/privy/internal/logger"
	"github.com/privyhq/privy/internal/mock"
	"github.com/privyhq/privy/internal/store"
	"github.com/privyhq/privy/models"
)

const (
	validSecret = "abababababababababababababababababababababababababababababababab"
	secretHash  = "271a413bd339c5709fdceaec41f14f11e9fbfb5042d72d331c65f32b284cd09a"
)

func newTestIdentitySvc(t *testing.T, ctrl *gomock.Controller, cfg config.App) (IdentityService, *mock.MockUserRepository, *mock.MockRateLimitRepository) {
	t.Helper()
	mockUsers := mock.NewMockUserRepository(ctrl)
	mockLimiter := mock.NewMockRateLimitRepository(ctrl)

	if cfg.RateLimitCount == 0 {
		cfg.RateLimitCount = 5
	}
	if cfg.RateLimitWindow == 0 {
		cfg.RateLimitWindow = 24 * time.Hour
	}

	svc := NewIdentityService(mockUsers, mockLimiter, cfg, logger.Nop())
	return svc, mockUsers, mockLimiter
}

func TestGetOrCreateUser_ExistingIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	existing := models.User{UserID: "u-1", SecretDigest: secretHash, LastActiveAt: time.Now()}

	mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(existing, nil)
	mockUsers.EXPECT().UpdateLastActive(ctx, "u-1").Return(nil)

	user, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
}

func TestGetOrCreateUser_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockLimiter := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	created := models.User{UserID: "u-1", SecretDigest: secretHash, LastActiveAt: time.Now()}

	gomock.InOrder(
		// first request: unknown digest, rate limit consulted, user created
		mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(models.User{}, store.ErrNoUserWasFound),
		mockLimiter.EXPECT().CheckAndIncrement(ctx, gomock.Any(), 5, 24*time.Hour).
			Return(models.RateLimitDecision{Allowed: true, Count: 1, Limit: 5}, nil),
		mockUsers.EXPECT().CreateUser(ctx, secretHash).Return(created, nil),
		// second request with the same secret: plain lookup, no limiter
		mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(created, nil),
		mockUsers.EXPECT().UpdateLastActive(ctx, "u-1").Return(nil),
	)

	first, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	require.NoError(t, err)

	second, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	require.NoError(t, err)

	assert.Equal(t, first.UserID, second.UserID)
}

func TestGetOrCreateUser_MalformedSecret(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestIdentitySvc(t, ctrl, config.App{})

	cases := []string{"", "too-short", validSecret[:63], validSecret + "a"}
	for _, secret := range cases {
		_, err := svc.GetOrCreateUser(context.Background(), secret, "127.0.0.1")
		assert.ErrorIs(t, err, ErrUnauthenticated, "secret %q", secret)
	}
}

func TestGetOrCreateUser_UppercaseSecretSameIdentity(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	existing := models.User{UserID: "u-1", LastActiveAt: time.Now()}

	// normalization lowercases before hashing, so the digest is the same
	mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(existing, nil)
	mockUsers.EXPECT().UpdateLastActive(ctx, "u-1").Return(nil)

	user, err := svc.GetOrCreateUser(ctx, strings.ToUpper(validSecret), "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.UserID)
}

func TestGetOrCreateUser_RateLimitBoundary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockLimiter := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	// fifth creation from this IP: count equals limit, still allowed
	mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(models.User{}, store.ErrNoUserWasFound)
	mockLimiter.EXPECT().CheckAndIncrement(ctx, gomock.Any(), 5, 24*time.Hour).
		Return(models.RateLimitDecision{Allowed: true, Count: 5, Limit: 5}, nil)
	mockUsers.EXPECT().CreateUser(ctx, secretHash).Return(models.User{UserID: "u-5"}, nil)

	_, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	require.NoError(t, err)

	// sixth creation: over the limit
	mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(models.User{}, store.ErrNoUserWasFound)
	mockLimiter.EXPECT().CheckAndIncrement(ctx, gomock.Any(), 5, 24*time.Hour).
		Return(models.RateLimitDecision{Allowed: false, Count: 6, Limit: 5}, nil)

	_, err = svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")

	var rateErr *RateLimitedError
	require.ErrorAs(t, err, &rateErr)
	assert.Equal(t, 6, rateErr.Count)
	assert.Equal(t, 5, rateErr.Limit)
}

func TestGetOrCreateUser_LimiterUnavailable_FailsClosed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockLimiter := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(models.User{}, store.ErrNoUserWasFound)
	mockLimiter.EXPECT().CheckAndIncrement(ctx, gomock.Any(), 5, 24*time.Hour).
		Return(models.RateLimitDecision{}, store.ErrRateLimiterUnavailable)

	// creation must never be attempted while the limiter is down
	_, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	assert.ErrorIs(t, err, store.ErrRateLimiterUnavailable)
}

func TestGetOrCreateUser_SameSecretRace_FallsBackToLookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockLimiter := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	winner := models.User{UserID: "u-winner", SecretDigest: secretHash}

	gomock.InOrder(
		mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(models.User{}, store.ErrNoUserWasFound),
		mockLimiter.EXPECT().CheckAndIncrement(ctx, gomock.Any(), 5, 24*time.Hour).
			Return(models.RateLimitDecision{Allowed: true, Count: 2, Limit: 5}, nil),
		mockUsers.EXPECT().CreateUser(ctx, secretHash).Return(models.User{}, store.ErrSecretDigestExists),
		mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(winner, nil),
	)

	user, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, "u-winner", user.UserID)
}

func TestGetOrCreateUser_TokenTTL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestIdentitySvc(t, ctrl, config.App{TokenTTL: time.Hour})
	ctx := context.Background()

	stale := models.User{UserID: "u-1", LastActiveAt: time.Now().Add(-2 * time.Hour)}
	mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(stale, nil)

	_, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestGetOrCreateUser_ZeroTTLNeverExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	ancient := models.User{UserID: "u-1", LastActiveAt: time.Now().Add(-365 * 24 * time.Hour)}
	mockUsers.EXPECT().FindBySecretDigest(ctx, secretHash).Return(ancient, nil)
	mockUsers.EXPECT().UpdateLastActive(ctx, "u-1").Return(nil)

	_, err := svc.GetOrCreateUser(ctx, validSecret, "127.0.0.1")
	require.NoError(t, err)
}

func TestBurnUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	mockUsers.EXPECT().DeleteUser(ctx, "u-1").Return(nil)
	require.NoError(t, svc.BurnUser(ctx, "u-1"))

	assert.ErrorIs(t, svc.BurnUser(ctx, ""), ErrInvalidDataProvided)

	mockUsers.EXPECT().DeleteUser(ctx, "ghost").Return(store.ErrNoUserWasFound)
	assert.ErrorIs(t, svc.BurnUser(ctx, "ghost"), store.ErrNoUserWasFound)
}

func TestBurnUser_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestIdentitySvc(t, ctrl, config.App{})
	ctx := context.Background()

	mockUsers.EXPECT().DeleteUser(ctx, "u-1").Return(errors.New("db down"))
	assert.Error(t, svc.BurnUser(ctx, "u-1"))
}
