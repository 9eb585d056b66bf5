package app

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

type Config struct {
	BaseURL      string        // Backend base URL (default: http://localhost:8080)
	Prefix       string        // Path prefix joined onto BaseURL (default: /api/v1)
	Timeout      time.Duration // Per-request timeout (default: 20s)
	MockAuth     bool          // Serve login/register from local fixtures (default: false)
	MockRiskLogs bool          // Serve risk logs from local fixtures (default: false)
	StateDir     string        // Where the refresh cookie is kept (default: $XDG_STATE_HOME/riskconsole or ~/.riskconsole)
	LogLevel     string        // Log level (debug, info, warn, error) (default: warn)
	LogFormat    string        // Log format (json, text) (default: text)
}

func LoadConfig() Config {
	return Config{
		BaseURL:      getEnvOrDefault("CONSOLE_API_BASE_URL", "http://localhost:8080"),
		Prefix:       getEnvOrDefault("CONSOLE_API_PREFIX", "/api/v1"),
		Timeout:      getEnvDurationOrDefault("CONSOLE_API_TIMEOUT", consoleapi.DefaultTimeout),
		MockAuth:     getEnvBoolOrDefault("CONSOLE_MOCK_AUTH", false),
		MockRiskLogs: getEnvBoolOrDefault("CONSOLE_MOCK_RISK_LOGS", false),
		StateDir:     getEnvOrDefault("CONSOLE_STATE_DIR", defaultStateDir()),
		LogLevel:     getEnvOrDefault("CONSOLE_LOG_LEVEL", "warn"),
		LogFormat:    getEnvOrDefault("CONSOLE_LOG_FORMAT", "text"),
	}
}

func defaultStateDir() string {
	if dir := os.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, "riskconsole")
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".riskconsole")
	}
	return ".riskconsole"
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

	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Plain integers are seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}
