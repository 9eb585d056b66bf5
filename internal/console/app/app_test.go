package app

import (
	"cmp"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		for _, key := range []string{
			"CONSOLE_API_BASE_URL", "CONSOLE_API_PREFIX", "CONSOLE_API_TIMEOUT",
			"CONSOLE_MOCK_AUTH", "CONSOLE_MOCK_RISK_LOGS", "CONSOLE_STATE_DIR",
			"CONSOLE_LOG_LEVEL", "CONSOLE_LOG_FORMAT",
		} {
			t.Setenv(key, "")
		}
		t.Setenv("XDG_STATE_HOME", "/var/state")

		cfg := LoadConfig()
		require.Equal(t, "http://localhost:8080", cfg.BaseURL)
		require.Equal(t, "/api/v1", cfg.Prefix)
		require.Equal(t, 20*time.Second, cfg.Timeout)
		require.False(t, cfg.MockAuth)
		require.False(t, cfg.MockRiskLogs)
		require.Equal(t, filepath.Join("/var/state", "riskconsole"), cfg.StateDir)
		require.Equal(t, "warn", cfg.LogLevel)
		require.Equal(t, "text", cfg.LogFormat)
	})

	t.Run("overrides", func(t *testing.T) {
		t.Setenv("CONSOLE_API_BASE_URL", "https://risk.example.com")
		t.Setenv("CONSOLE_API_PREFIX", "admin")
		t.Setenv("CONSOLE_API_TIMEOUT", "5")
		t.Setenv("CONSOLE_MOCK_AUTH", "true")
		t.Setenv("CONSOLE_MOCK_RISK_LOGS", "1")
		t.Setenv("CONSOLE_STATE_DIR", "/tmp/rc")

		cfg := LoadConfig()
		require.Equal(t, "https://risk.example.com", cfg.BaseURL)
		require.Equal(t, "admin", cfg.Prefix)
		require.Equal(t, 5*time.Second, cfg.Timeout)
		require.True(t, cfg.MockAuth)
		require.True(t, cfg.MockRiskLogs)
		require.Equal(t, "/tmp/rc", cfg.StateDir)
	})

	t.Run("unparsable values fall back", func(t *testing.T) {
		t.Setenv("CONSOLE_API_TIMEOUT", "soon")
		t.Setenv("CONSOLE_MOCK_AUTH", "maybe")

		cfg := LoadConfig()
		require.Equal(t, 20*time.Second, cfg.Timeout)
		require.False(t, cfg.MockAuth)
	})
}

func cookieServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("GET /set", func(w http.ResponseWriter, r *http.Request) {
		name := cmp.Or(r.URL.Query().Get("name"), "refresh_token")
		http.SetCookie(w, &http.Cookie{Name: name, Value: "abc", Path: "/", MaxAge: 3600, HttpOnly: true})
	})
	mux.HandleFunc("GET /clear", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Path: "/", MaxAge: -1})
	})
	mux.HandleFunc("GET /echo", func(w http.ResponseWriter, r *http.Request) {
		name := cmp.Or(r.URL.Query().Get("name"), "refresh_token")
		if c, err := r.Cookie(name); err == nil {
			_, _ = io.WriteString(w, c.Value)
		}
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func get(t *testing.T, jar http.CookieJar, url string) string {
	t.Helper()
	resp, err := (&http.Client{Jar: jar}).Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

func TestCookieJarPersistsBetweenRuns(t *testing.T) {
	t.Parallel()

	srv := cookieServer(t)
	dir := t.TempDir()

	first, err := OpenCookieJar(dir)
	require.NoError(t, err)
	get(t, first, srv.URL+"/set")
	require.NoError(t, first.Save())

	info, err := os.Stat(filepath.Join(dir, cookieFile))
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, err := OpenCookieJar(dir)
	require.NoError(t, err)
	require.Equal(t, "abc", get(t, second, srv.URL+"/echo"))

	get(t, second, srv.URL+"/clear")
	require.NoError(t, second.Save())

	third, err := OpenCookieJar(dir)
	require.NoError(t, err)
	require.Empty(t, get(t, third, srv.URL+"/echo"))
}

func TestCookieJarSaveMergesConcurrentRuns(t *testing.T) {
	t.Parallel()

	srv := cookieServer(t)
	dir := t.TempDir()

	// Both runs start from an empty file.
	a, err := OpenCookieJar(dir)
	require.NoError(t, err)
	b, err := OpenCookieJar(dir)
	require.NoError(t, err)

	get(t, a, srv.URL+"/set?name=a")
	require.NoError(t, a.Save())
	get(t, b, srv.URL+"/set?name=b")
	require.NoError(t, b.Save())

	again, err := OpenCookieJar(dir)
	require.NoError(t, err)
	require.Equal(t, "abc", get(t, again, srv.URL+"/echo?name=a"))
	require.Equal(t, "abc", get(t, again, srv.URL+"/echo?name=b"))
}

func TestCookieJarMovesCorruptFileAside(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, cookieFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	jar, err := OpenCookieJar(dir)
	require.NoError(t, err)
	require.Empty(t, jar.AllCookies())
	require.NoError(t, jar.Save())

	kept, err := os.ReadFile(path + ".corrupt")
	require.NoError(t, err)
	require.Equal(t, "{not json", string(kept))
}

func TestCookieJarCreatesStateDir(t *testing.T) {
	t.Parallel()

	dir := filepath.Join(t.TempDir(), "nested", "state")
	jar, err := OpenCookieJar(dir)
	require.NoError(t, err)
	require.NoError(t, jar.Save())

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestBootRestoresSessionFromSavedCookie(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /set", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r1", Path: "/", MaxAge: 3600})
	})
	mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("refresh_token")
		if err != nil || c.Value != "r1" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r2", Path: "/", MaxAge: 3600})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code": 0,
			"data": map[string]any{
				"access_token": "t1",
				"user":         map[string]any{"id": "u1", "displayName": "Alice", "identity": "alice"},
			},
		})
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	seed, err := OpenCookieJar(dir)
	require.NoError(t, err)
	get(t, seed, srv.URL+"/set")
	require.NoError(t, seed.Save())

	application, err := New(Config{
		BaseURL:  srv.URL,
		Prefix:   "/api/v1",
		Timeout:  5 * time.Second,
		StateDir: dir,
		LogLevel: "error",
	})
	require.NoError(t, err)

	snap := application.Boot(context.Background())
	require.Equal(t, "t1", snap.AccessToken)
	require.NotNil(t, snap.User)
	require.Equal(t, "alice", snap.User.Identity)
	require.NoError(t, application.Close())

	// The rotated cookie is what the next run sends.
	next, err := OpenCookieJar(dir)
	require.NoError(t, err)
	cookies := next.Cookies(mustURL(t, srv.URL))
	require.Len(t, cookies, 1)
	require.Equal(t, "r2", cookies[0].Value)
}

func TestBootWithoutCookieIsAnonymous(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	application, err := New(Config{BaseURL: srv.URL, Prefix: "/api/v1", Timeout: time.Second, StateDir: t.TempDir(), LogLevel: "error"})
	require.NoError(t, err)

	snap := application.Boot(context.Background())
	require.Empty(t, snap.AccessToken)
	require.Nil(t, snap.User)
	require.False(t, application.Session().Authenticated())
}

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}
