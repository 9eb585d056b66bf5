package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/riskconsole/pkg/httpx"
)

func TestNormalizePrefix(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":           "",
		"/":          "",
		"api/v1":     "/api/v1",
		"/api/v1/":   "/api/v1",
		"  /api/v2 ": "/api/v2",
	} {
		require.Equal(t, want, normalizePrefix(in), "prefix %q", in)
	}
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := LoadConfig()
		require.Equal(t, ":8080", cfg.Addr)
		require.Equal(t, "/api/v1", cfg.Prefix)
		require.Equal(t, 30*time.Minute, cfg.AccessTTL)
		require.Equal(t, 7*24*time.Hour, cfg.RefreshTTL)
		require.False(t, cfg.CookieSecure)
		require.Empty(t, cfg.SigningKeyFile)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("MOCKAPI_PREFIX", "console/")
		t.Setenv("MOCKAPI_ACCESS_TTL", "90s")
		t.Setenv("MOCKAPI_REFRESH_TTL", "15")
		t.Setenv("MOCKAPI_COOKIE_SECURE", "true")
		t.Setenv("SHUTDOWN_GRACE_PERIOD", "soon")

		cfg := LoadConfig()
		require.Equal(t, "/console", cfg.Prefix)
		require.Equal(t, 90*time.Second, cfg.AccessTTL)
		require.Equal(t, 15*time.Minute, cfg.RefreshTTL)
		require.True(t, cfg.CookieSecure)
		require.Equal(t, 10*time.Second, cfg.ShutdownGracePeriod)
	})
}

func TestLoadConfigRateLimits(t *testing.T) {
	t.Setenv("RATELIMIT_STRICT_REQUESTS", "1000")
	t.Setenv("RATELIMIT_STRICT_BURST", "1000")

	cfg := LoadConfig()
	require.Equal(t, 1000, cfg.RateLimits.Strict.Requests)
	require.Equal(t, 1000, cfg.RateLimits.Strict.Burst)
	require.Equal(t, time.Minute, cfg.RateLimits.Strict.Window)
	require.Equal(t, httpx.DefaultRateLimits().Public, cfg.RateLimits.Public)
}
