package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/console/session"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
)

// backend is a small stand-in for the admin API. It knows one operator,
// alice, whose password is "pw".
type backend struct {
	srv *httptest.Server

	mu     sync.Mutex
	bodies map[string][]byte
}

func newBackend(t *testing.T) *backend {
	t.Helper()
	b := &backend{bodies: map[string][]byte{}}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req consoleapi.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Identity != "alice" || req.Password != "pw" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"code": 40100, "message": "invalid credentials"})
			return
		}
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Value: "r-alice", Path: "/", HttpOnly: true})
		writeJSON(w, http.StatusOK, aliceSession())
	})
	mux.HandleFunc("POST /api/v1/auth/refresh", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("refresh_token"); err != nil || c.Value != "r-alice" {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"code": 40100, "message": "refresh token missing"})
			return
		}
		writeJSON(w, http.StatusOK, aliceSession())
	})
	mux.HandleFunc("POST /api/v1/auth/logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "refresh_token", Path: "/", MaxAge: -1})
		writeJSON(w, http.StatusOK, map[string]any{"code": 0, "message": "logged out"})
	})
	mux.HandleFunc("GET /api/v1/apps", b.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"code": 0, "data": []map[string]any{
			{"app_id": "4001", "name": "Arena", "access_key": "ak-4001"},
			{"app_id": "5001", "name": "Farm", "access_key": "ak-5001"},
		}})
	}))
	mux.HandleFunc("POST /api/v1/name-lists", b.authed(func(w http.ResponseWriter, r *http.Request) {
		b.record("name-lists", r)
		writeJSON(w, http.StatusOK, map[string]any{"code": 0, "message": "name list created"})
	}))
	mux.HandleFunc("GET /api/v1/name-lists", b.authed(func(w http.ResponseWriter, r *http.Request) {
		lists := make([]consoleapi.NameList, 0, 8)
		for i := range 8 {
			lists = append(lists, consoleapi.NameList{
				ID:     int64(i + 1),
				No:     "no-" + string(rune('a'+i)),
				Name:   "list",
				Type:   1,
				Status: i % 2,
				Scope:  consoleapi.ScopeGlobal,
			})
		}
		writeJSON(w, http.StatusOK, lists)
	}))
	mux.HandleFunc("POST /api/v1/list-details/batch", b.authed(func(w http.ResponseWriter, r *http.Request) {
		b.record("list-details/batch", r)
		writeJSON(w, http.StatusOK, map[string]any{"code": 0})
	}))
	mux.HandleFunc("POST /api/v1/moderation/text", b.authed(func(w http.ResponseWriter, r *http.Request) {
		var req consoleapi.TextCheckRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.AccessKey != "ak-4001" {
			writeJSON(w, http.StatusOK, map[string]any{"code": 1902, "message": "invalid access key", "requestId": "req-9"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"code":      0,
			"riskLevel": "REJECT",
			"detail":    map[string]any{"hit": req.Data.Text},
			"requestId": "req-1",
		})
	}))

	b.srv = httptest.NewServer(mux)
	t.Cleanup(b.srv.Close)
	return b
}

func aliceSession() map[string]any {
	return map[string]any{"code": 0, "data": map[string]any{
		"access_token": "t-alice",
		"user":         map[string]any{"id": "u1", "displayName": "Alice", "identity": "alice", "roles": []string{"admin"}},
	}}
}

// authed rejects requests without alice's access token.
func (b *backend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer t-alice" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next(w, r)
	}
}

func (b *backend) record(key string, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.bodies[key] = body
}

func (b *backend) body(key string) []byte {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bodies[key]
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type harness struct {
	runner *Runner
	stdout *bytes.Buffer
	stderr *bytes.Buffer
}

func newHarness(t *testing.T, b *backend, stdin string, opts ...consoleapi.Option) *harness {
	t.Helper()
	opts = append([]consoleapi.Option{consoleapi.WithLogger(slogx.Discard())}, opts...)
	client := consoleapi.NewClient(b.srv.URL, "/api/v1", opts...)
	sess := session.New(client, slogx.Discard())
	sess.Bind()

	h := &harness{stdout: &bytes.Buffer{}, stderr: &bytes.Buffer{}}
	h.runner = &Runner{
		Client:   client,
		Session:  sess,
		Stdin:    strings.NewReader(stdin),
		Stdout:   h.stdout,
		Stderr:   h.stderr,
		Now:      func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) },
		Location: time.UTC,
	}
	return h
}

// run executes args and returns the exit status. Output buffers are reset
// first so each call sees only its own output.
func (h *harness) run(t *testing.T, args ...string) int {
	t.Helper()
	h.stdout.Reset()
	h.stderr.Reset()
	return h.runner.Run(t.Context(), args)
}
