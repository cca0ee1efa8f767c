package config

import "errors"

var (
	// ErrMissingProductionIPSalt is returned by validation when the
	// application is configured for production without an IP salt.
	// Generate one with: openssl rand -base64 32.
	ErrMissingProductionIPSalt = errors.New("APP_IP_SALT is required in production")

	// ErrMissingDatabaseDSN is returned by validation when no database
	// connection string was provided by any configuration source.
	ErrMissingDatabaseDSN = errors.New("database DSN is required")
)
