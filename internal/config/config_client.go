package config

import (
	"errors"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the HTTP endpoint address of the privy server.
	// Env: PRIVY_SERVER_URL
	HTTPAddress string `env:"SERVER_URL"`

	// RequestTimeout is the default timeout for outbound client requests.
	// Env: PRIVY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientConfig is the top-level configuration for the terminal client.
// The client deliberately has no storage section: the bearer secret and
// everything derived from it live only in process memory.
type ClientConfig struct {
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter `envPrefix:"PRIVY_"`
}

// GetClientConfig loads the client configuration from environment
// variables, applying localhost defaults suitable for development.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Adapter.HTTPAddress == "" {
		cfg.Adapter.HTTPAddress = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}

	return cfg, cfg.validate()
}

func (c *ClientConfig) validate() error {
	if c.Adapter.HTTPAddress == "" {
		return errors.New("client server url is required")
	}
	return nil
}
