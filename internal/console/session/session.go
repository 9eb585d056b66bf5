// Package session owns the operator's session: the access token and the user
// it belongs to. Both change together through the transitions below and the
// Provider is the token store the API client reads from.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
)

// ErrNoSession is returned by operations that need a logged-in operator.
var ErrNoSession = errors.New("session: not logged in")

// Authenticator is the subset of the API client the provider drives.
type Authenticator interface {
	Login(ctx context.Context, req consoleapi.LoginRequest) (*consoleapi.AuthResult, error)
	Register(ctx context.Context, req consoleapi.RegisterRequest) (*consoleapi.AuthResult, error)
	Refresh(ctx context.Context) (*consoleapi.AuthResult, error)
	Logout(ctx context.Context) error
	SetAuthHandlers(refresh consoleapi.RefreshFunc, onLogout func())
	SetTokenStore(ts consoleapi.TokenStore)
}

// Snapshot is a consistent copy of the session state.
type Snapshot struct {
	AccessToken string
	User        *consoleapi.User
}

// Provider holds the session. It implements consoleapi.TokenStore so the
// token the client attaches is always the one paired with User.
type Provider struct {
	auth   Authenticator
	logger *slog.Logger

	mu    sync.RWMutex
	token string
	user  *consoleapi.User
}

// New creates an empty provider. Call Bind before issuing requests.
func New(auth Authenticator, logger *slog.Logger) *Provider {
	if logger == nil {
		logger = slog.Default()
	}
	return &Provider{auth: auth, logger: logger}
}

// Bind makes the provider the client's token store and installs its refresh
// and logout transitions.
func (p *Provider) Bind() {
	p.auth.SetTokenStore(p)
	p.auth.SetAuthHandlers(p.Refresh, p.Clear)
}

// AccessToken implements consoleapi.TokenStore.
func (p *Provider) AccessToken() string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token
}

// SetAccessToken implements consoleapi.TokenStore. Clearing the token clears
// the user with it; a new token keeps the current user.
func (p *Provider) SetAccessToken(token string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = token
	if token == "" {
		p.user = nil
	}
}

// Boot restores a session from the refresh cookie, if there is one. A failed
// refresh leaves the provider logged out and is not an error.
func (p *Provider) Boot(ctx context.Context) Snapshot {
	if _, err := p.Refresh(ctx); err != nil {
		slogx.FromContext(ctx).DebugContext(ctx, "session_boot_anonymous", "error", err)
	}
	return p.Snapshot()
}

func (p *Provider) Login(ctx context.Context, identity, password string) (*consoleapi.User, error) {
	res, err := p.auth.Login(ctx, consoleapi.LoginRequest{Identity: identity, Password: password})
	if err != nil {
		return nil, err
	}
	p.set(res)
	p.logger.InfoContext(ctx, "session_login", "identity", res.User.Identity)
	return p.User(), nil
}

func (p *Provider) Register(ctx context.Context, identity, password, displayName string) (*consoleapi.User, error) {
	res, err := p.auth.Register(ctx, consoleapi.RegisterRequest{
		Identity:    identity,
		Password:    password,
		DisplayName: displayName,
	})
	if err != nil {
		return nil, err
	}
	p.set(res)
	p.logger.InfoContext(ctx, "session_register", "identity", res.User.Identity)
	return p.User(), nil
}

// Refresh renews the session. It is the client's RefreshFunc: on success
// token and user are replaced, on failure both are cleared and an empty
// token is returned.
func (p *Provider) Refresh(ctx context.Context) (string, error) {
	res, err := p.auth.Refresh(ctx)
	if err != nil {
		p.Clear()
		return "", err
	}
	p.set(res)
	return res.AccessToken, nil
}

// Logout revokes the session server-side and always clears it locally.
func (p *Provider) Logout(ctx context.Context) error {
	defer p.Clear()
	if err := p.auth.Logout(ctx); err != nil {
		p.logger.WarnContext(ctx, "session_logout_remote_failed", "error", err)
		return err
	}
	return nil
}

// Clear drops token and user together.
func (p *Provider) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = ""
	p.user = nil
}

func (p *Provider) set(res *consoleapi.AuthResult) {
	u := res.User
	p.mu.Lock()
	defer p.mu.Unlock()
	p.token = res.AccessToken
	p.user = &u
}

// User returns a copy of the current user, or nil.
func (p *Provider) User() *consoleapi.User {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.user == nil {
		return nil
	}
	u := *p.user
	return &u
}

func (p *Provider) Snapshot() Snapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()
	s := Snapshot{AccessToken: p.token}
	if p.user != nil {
		u := *p.user
		s.User = &u
	}
	return s
}

func (p *Provider) Authenticated() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.token != "" && p.user != nil
}

// Username is the actor name sent with mutations.
func (p *Provider) Username() (string, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.user == nil {
		return "", ErrNoSession
	}
	return p.user.Identity, nil
}
