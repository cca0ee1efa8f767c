package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validTestConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Environment: "development",
		},
		Storage: Storage{
			DB: DB{DSN: "postgres://localhost/privy"},
		},
	}
}

func TestValidate_DevelopmentWithoutIPSalt(t *testing.T) {
	cfg := validTestConfig()

	require.NoError(t, cfg.validate())
}

func TestValidate_ProductionRequiresIPSalt(t *testing.T) {
	cfg := validTestConfig()
	cfg.App.Environment = EnvProduction

	err := cfg.validate()
	require.ErrorIs(t, err, ErrMissingProductionIPSalt)

	cfg.App.IPSalt = "configured"
	require.NoError(t, cfg.validate())
}

func TestValidate_RequiresDSN(t *testing.T) {
	cfg := validTestConfig()
	cfg.Storage.DB.DSN = ""

	require.ErrorIs(t, cfg.validate(), ErrMissingDatabaseDSN)
}

func TestApplyDefaults(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, 5, cfg.App.RateLimitCount)
	assert.Equal(t, 24*time.Hour, cfg.App.RateLimitWindow)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.App.RateLimitCount = 10
	cfg.App.RateLimitWindow = time.Hour
	cfg.applyDefaults()

	assert.Equal(t, 10, cfg.App.RateLimitCount)
	assert.Equal(t, time.Hour, cfg.App.RateLimitWindow)
}
