package app

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aussiebroadwan/riskconsole/pkg/httpx"
)

type Config struct {
	Addr                 string        // Listen address (default: :8080)
	Prefix               string        // Path prefix of the console API (default: /api/v1)
	DatabaseFile         string        // Path to SQLite database file (default: ./mockapi.db)
	PepperFile           string        // Path to file containing pepper for password hashing (default: ./pepper)
	SigningKeyFile       string        // Optional: PEM file the Ed25519 signing key is kept in; empty means a new key per start
	Issuer               string        // Issuer claim of access tokens (default: riskconsole-mockapi)
	AccessTTL            time.Duration // Access token lifetime (default: 30m)
	RefreshTTL           time.Duration // Refresh token lifetime (default: 7 days)
	CookieSecure         bool          // Mark the refresh cookie Secure (default: false)
	SeedUser             string        // Optional: operator created when the database has none
	SeedPassword         string        // Optional: password of the seed operator; generated and logged when empty
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Refresh token purge interval (default: 1h)
	RateLimits           httpx.RateLimits // Per-profile limits, overridden by RATELIMIT_<PROFILE>_*
}

func LoadConfig() Config {
	return Config{
		Addr:                 getEnvOrDefault("MOCKAPI_ADDR", ":8080"),
		Prefix:               normalizePrefix(getEnvOrDefault("MOCKAPI_PREFIX", "/api/v1")),
		DatabaseFile:         getEnvOrDefault("MOCKAPI_DB_PATH", "mockapi.db"),
		PepperFile:           getEnvOrDefault("MOCKAPI_PEPPER_PATH", "pepper"),
		SigningKeyFile:       os.Getenv("MOCKAPI_SIGNING_KEY_PATH"),
		Issuer:               getEnvOrDefault("MOCKAPI_ISSUER", "riskconsole-mockapi"),
		AccessTTL:            getEnvDurationOrDefault("MOCKAPI_ACCESS_TTL", 30*time.Minute),
		RefreshTTL:           getEnvDurationOrDefault("MOCKAPI_REFRESH_TTL", 7*24*time.Hour),
		CookieSecure:         getEnvBoolOrDefault("MOCKAPI_COOKIE_SECURE", false),
		SeedUser:             os.Getenv("MOCKAPI_SEED_USER"),
		SeedPassword:         os.Getenv("MOCKAPI_SEED_PASSWORD"),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("MOCKAPI_HOUSEKEEPING_INTERVAL", time.Hour),
		RateLimits:           httpx.RateLimitsFromEnv(),
	}
}

// normalizePrefix gives "/api/v1" for "api/v1/", and "" for "/" or "".
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}
