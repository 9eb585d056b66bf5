package session_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/aussiebroadwan/riskconsole/internal/console/session"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	refreshErr error
	logoutErr  error
	refreshes  atomic.Int32
}

func (f *fakeAuth) Login(_ context.Context, req consoleapi.LoginRequest) (*consoleapi.AuthResult, error) {
	if req.Password != "secret1" {
		return nil, &consoleapi.APIError{Code: consoleapi.CodeUnauthorized, Message: "invalid credentials"}
	}
	return &consoleapi.AuthResult{
		AccessToken: "a-" + req.Identity,
		User:        consoleapi.User{Identity: req.Identity, DisplayName: req.Identity},
	}, nil
}

func (f *fakeAuth) Register(_ context.Context, req consoleapi.RegisterRequest) (*consoleapi.AuthResult, error) {
	return &consoleapi.AuthResult{
		AccessToken: "a-" + req.Identity,
		User:        consoleapi.User{Identity: req.Identity, DisplayName: req.DisplayName},
	}, nil
}

func (f *fakeAuth) Refresh(context.Context) (*consoleapi.AuthResult, error) {
	f.refreshes.Add(1)
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return &consoleapi.AuthResult{AccessToken: "refreshed", User: consoleapi.User{Identity: "alice"}}, nil
}

func (f *fakeAuth) Logout(context.Context) error { return f.logoutErr }

func (f *fakeAuth) SetAuthHandlers(consoleapi.RefreshFunc, func()) {}

func (f *fakeAuth) SetTokenStore(consoleapi.TokenStore) {}

func TestLoginSetsTokenAndUser(t *testing.T) {
	t.Parallel()

	p := session.New(&fakeAuth{}, slogx.Discard())
	require.False(t, p.Authenticated())

	u, err := p.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.Equal(t, "alice", u.Identity)

	snap := p.Snapshot()
	require.Equal(t, "a-alice", snap.AccessToken)
	require.Equal(t, "alice", snap.User.Identity)

	name, err := p.Username()
	require.NoError(t, err)
	require.Equal(t, "alice", name)
}

func TestFailedLoginLeavesSessionEmpty(t *testing.T) {
	t.Parallel()

	p := session.New(&fakeAuth{}, slogx.Discard())
	_, err := p.Login(context.Background(), "alice", "wrong")

	var apiErr *consoleapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.False(t, p.Authenticated())

	_, err = p.Username()
	require.ErrorIs(t, err, session.ErrNoSession)
}

func TestLogoutClearsEvenWhenServerFails(t *testing.T) {
	t.Parallel()

	p := session.New(&fakeAuth{logoutErr: errors.New("offline")}, slogx.Discard())
	_, err := p.Register(context.Background(), "bob", "pw", "Bob")
	require.NoError(t, err)
	require.Equal(t, "Bob", p.User().DisplayName)

	require.Error(t, p.Logout(context.Background()))
	require.Equal(t, session.Snapshot{}, p.Snapshot())
}

func TestRefreshFailureClearsBoth(t *testing.T) {
	t.Parallel()

	auth := &fakeAuth{refreshErr: errors.New("cookie expired")}
	p := session.New(auth, slogx.Discard())
	_, err := p.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)

	token, err := p.Refresh(context.Background())
	require.Error(t, err)
	require.Empty(t, token)
	require.Equal(t, session.Snapshot{}, p.Snapshot())
}

func TestBoot(t *testing.T) {
	t.Parallel()

	t.Run("restores from refresh", func(t *testing.T) {
		t.Parallel()
		p := session.New(&fakeAuth{}, slogx.Discard())
		snap := p.Boot(context.Background())
		require.Equal(t, "refreshed", snap.AccessToken)
		require.Equal(t, "alice", snap.User.Identity)
	})

	t.Run("stays anonymous", func(t *testing.T) {
		t.Parallel()
		p := session.New(&fakeAuth{refreshErr: errors.New("no cookie")}, slogx.Discard())
		snap := p.Boot(context.Background())
		require.Empty(t, snap.AccessToken)
		require.Nil(t, snap.User)
	})
}

func TestTokenAndUserNeverDiverge(t *testing.T) {
	t.Parallel()

	p := session.New(&fakeAuth{}, slogx.Discard())
	ctx := context.Background()

	stop := make(chan struct{})
	var wg sync.WaitGroup
	var torn atomic.Int32
	for range 4 {
		wg.Go(func() {
			for {
				select {
				case <-stop:
					return
				default:
				}
				s := p.Snapshot()
				if (s.AccessToken == "") != (s.User == nil) {
					torn.Add(1)
				}
			}
		})
	}

	for range 500 {
		_, err := p.Login(ctx, "alice", "secret1")
		require.NoError(t, err)
		_ = p.Logout(ctx)
		_, _ = p.Refresh(ctx)
		p.SetAccessToken("")
	}
	close(stop)
	wg.Wait()

	require.Zero(t, torn.Load())
}

// TestClientRefreshUpdatesSession wires the provider into a real client and
// lets an expired token go through the refresh coordinator.
func TestClientRefreshUpdatesSession(t *testing.T) {
	t.Parallel()

	var refreshCalls atomic.Int32
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		refreshCalls.Add(1)
		_, _ = io.WriteString(w, `{"code":0,"data":{"access_token":"t2","user":{"identity":"alice","displayName":"Alice R"}}}`)
	})
	mux.HandleFunc("GET /apps", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t2" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = io.WriteString(w, `{"code":0,"data":[{"app_id":"4001","name":"demo"}]}`)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := consoleapi.NewClient(srv.URL, "", consoleapi.WithLogger(slogx.Discard()))
	p := session.New(client, slogx.Discard())
	p.Bind()

	// No token at all: the first call is answered 401 and refreshed.
	apps, err := client.ListApps(context.Background())
	require.NoError(t, err)
	require.Len(t, apps, 1)
	require.EqualValues(t, 1, refreshCalls.Load())

	snap := p.Snapshot()
	require.Equal(t, "t2", snap.AccessToken)
	require.Equal(t, "Alice R", snap.User.DisplayName)
}

func TestClientFailedRefreshLogsOut(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `{"code":0,"data":{"access_token":"t1","user":{"identity":"alice","displayName":"Alice"}}}`)
	})
	mux.HandleFunc("POST /auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = io.WriteString(w, `{"code":40100,"message":"refresh token revoked"}`)
	})
	mux.HandleFunc("GET /channels", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client := consoleapi.NewClient(srv.URL, "", consoleapi.WithLogger(slogx.Discard()))
	p := session.New(client, slogx.Discard())
	p.Bind()

	_, err := p.Login(context.Background(), "alice", "secret1")
	require.NoError(t, err)
	require.True(t, p.Authenticated())

	_, err = client.ListChannels(context.Background())
	require.True(t, consoleapi.IsSessionExpired(err))
	require.False(t, p.Authenticated())
	require.Equal(t, session.Snapshot{}, p.Snapshot())
}
