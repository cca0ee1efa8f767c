package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN
//	-c/-config json file path with configs
//	-environment deployment environment name
//	-ip-salt secret salt for client IP digests
//	-master-salt server-wide encryption master salt
//	-token-ttl identity expiry (e.g., "24h", 0 = never)
//	-rate-limit-count new identities per IP per window
//	-rate-limit-window rolling rate-limit window (e.g., "24h")
//	-cleanup-interval auto-vanish worker interval (0 = disabled)
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var environment string
	var ipSalt string
	var masterSalt string
	var tokenTTL time.Duration
	var rateLimitCount int
	var rateLimitWindow time.Duration
	var cleanupInterval time.Duration
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "Database DSN")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.StringVar(&environment, "environment", "", "Deployment environment")
	flag.StringVar(&ipSalt, "ip-salt", "", "IP digest salt")
	flag.StringVar(&masterSalt, "master-salt", "", "Encryption master salt")
	flag.DurationVar(&tokenTTL, "token-ttl", 0, "Identity expiry (0 = never)")
	flag.IntVar(&rateLimitCount, "rate-limit-count", 0, "New identities per IP per window")
	flag.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rolling rate-limit window")
	flag.DurationVar(&cleanupInterval, "cleanup-interval", 0, "Auto-vanish worker interval (0 = disabled)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		App: App{
			Environment:     environment,
			IPSalt:          ipSalt,
			MasterSalt:      masterSalt,
			TokenTTL:        tokenTTL,
			RateLimitCount:  rateLimitCount,
			RateLimitWindow: rateLimitWindow,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Workers: Workers{
			CleanupInterval: cleanupInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns the empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
