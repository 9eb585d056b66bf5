package consoleapi_test

import (
	"io"
	"net/http"
	"strings"
	"sync/atomic"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Header:     http.Header{"Content-Type": {"application/json"}},
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

// tokenGate answers 401 unless the request carries the bearer token want.
// Every request is counted in hits.
func tokenGate(want string, hits *atomic.Int32) roundTripFunc {
	return func(r *http.Request) (*http.Response, error) {
		hits.Add(1)
		if r.Header.Get("Authorization") != "Bearer "+want {
			return jsonResponse(http.StatusUnauthorized, `{"detail":"token expired"}`), nil
		}
		return jsonResponse(http.StatusOK, `{"code":0,"data":[{"app_id":"4001","name":"demo"}]}`), nil
	}
}

func newTestClient(rt http.RoundTripper, opts ...consoleapi.Option) *consoleapi.Client {
	opts = append([]consoleapi.Option{
		consoleapi.WithHTTPClient(&http.Client{Transport: rt}),
		consoleapi.WithLogger(slogx.Discard()),
	}, opts...)
	return consoleapi.NewClient("http://api.test", "/api/v1", opts...)
}
