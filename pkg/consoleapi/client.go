package consoleapi

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultTimeout bounds every request, refresh calls included.
const DefaultTimeout = 20 * time.Second

// Client talks to the admin API. It is safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenStore
	logger     *slog.Logger

	mu        sync.RWMutex
	refreshFn RefreshFunc
	onLogout  func()

	// refreshes shares one in-flight refresh between concurrent 401s.
	refreshes singleflight.Group

	mockAuth     bool
	mockRiskLogs bool
	now          func() time.Time
}

// RefreshFunc obtains a new access token. It returns an empty token or an
// error when the session can not be renewed.
type RefreshFunc func(ctx context.Context) (string, error)

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. A cookie jar is added
// when hc has none so the refresh cookie keeps working, and a zero timeout
// keeps the current one.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		cp := *hc
		if cp.Jar == nil {
			cp.Jar = c.httpClient.Jar
		}
		if cp.Timeout == 0 {
			cp.Timeout = c.httpClient.Timeout
		}
		c.httpClient = &cp
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// WithCookieJar replaces the cookie jar holding the refresh cookie.
func WithCookieJar(jar http.CookieJar) Option {
	return func(c *Client) { c.httpClient.Jar = jar }
}

// WithTokenStore replaces the in-memory token store.
func WithTokenStore(ts TokenStore) Option {
	return func(c *Client) { c.tokens = ts }
}

func WithRefresh(fn RefreshFunc) Option {
	return func(c *Client) { c.refreshFn = fn }
}

func WithLogout(fn func()) Option {
	return func(c *Client) { c.onLogout = fn }
}

func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithMockAuth answers Login and Register locally.
func WithMockAuth(on bool) Option {
	return func(c *Client) { c.mockAuth = on }
}

// WithMockRiskLogs serves ListRiskLogs from fixtures.
func WithMockRiskLogs(on bool) Option {
	return func(c *Client) { c.mockRiskLogs = on }
}

// NewClient creates a client for the API mounted at prefix under baseURL.
func NewClient(baseURL, prefix string, opts ...Option) *Client {
	jar, _ := cookiejar.New(nil)

	c := &Client{
		baseURL: JoinURL(baseURL, prefix),
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
			Jar:     jar,
		},
		tokens: &MemoryTokenStore{},
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetAuthHandlers installs the refresh and logout callbacks. Either may be
// nil; a nil refresh disables the refresh coordinator.
func (c *Client) SetAuthHandlers(refresh RefreshFunc, onLogout func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.refreshFn = refresh
	c.onLogout = onLogout
}

func (c *Client) handlers() (RefreshFunc, func()) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.refreshFn, c.onLogout
}

// SetTokenStore replaces the token store. Call it while wiring, before the
// client issues requests.
func (c *Client) SetTokenStore(ts TokenStore) {
	c.tokens = ts
}

// Tokens returns the store holding the current access token.
func (c *Client) Tokens() TokenStore { return c.tokens }

// BaseURL returns the joined base URL and prefix.
func (c *Client) BaseURL() string { return c.baseURL }

// CookieJar returns the jar holding the refresh cookie.
func (c *Client) CookieJar() http.CookieJar { return c.httpClient.Jar }

// JoinURL joins a base URL and a path prefix with exactly one slash. Empty
// parts are skipped.
func JoinURL(base, prefix string) string {
	base = strings.TrimSpace(base)
	prefix = strings.TrimSpace(prefix)
	switch {
	case base == "" && prefix == "":
		return ""
	case base == "":
		return "/" + strings.Trim(prefix, "/")
	case prefix == "" || strings.Trim(prefix, "/") == "":
		return strings.TrimRight(base, "/")
	}
	return strings.TrimRight(base, "/") + "/" + strings.Trim(prefix, "/")
}
