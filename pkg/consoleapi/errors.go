package consoleapi

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTransport wraps failures to reach the backend at all.
	ErrTransport = errors.New("consoleapi: transport failure")

	// ErrUnauthorized matches any HTTPError with status 401.
	ErrUnauthorized = errors.New("consoleapi: unauthorized")

	// ErrNotEnveloped is returned when an endpoint that always answers with
	// an envelope returned something else.
	ErrNotEnveloped = errors.New("consoleapi: response is not an envelope")

	// ErrRefreshFailed is returned by the refresh coordinator when the
	// refresh handler produced no token.
	ErrRefreshFailed = errors.New("consoleapi: token refresh failed")
)

// Envelope codes used by the backend.
const (
	CodeOK           = 0
	CodeServerError  = 999
	CodeParameter    = 1902
	CodeNotFound     = 10020
	CodeUnauthorized = 40100
)

// APIError is an envelope whose code is not zero. The server did not apply
// the operation and Message is meant for the operator.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	RequestID  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("consoleapi: %s (code %d)", e.Message, e.Code)
}

// Is lets errors.Is(err, ErrUnauthorized) match an envelope sent with 401.
func (e *APIError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// HTTPError is a non-2xx response that did not carry an envelope.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("consoleapi: unexpected status %d %s", e.StatusCode, http.StatusText(e.StatusCode))
}

func (e *HTTPError) Is(target error) bool {
	return target == ErrUnauthorized && e.StatusCode == http.StatusUnauthorized
}

// statusError builds the error for a non-2xx response, preferring the
// server's envelope message when there is one.
func statusError(resp *response) error {
	if env, ok := detectEnvelope(resp.body); ok && env.Code != CodeOK {
		return env.err(resp.status)
	}
	return &HTTPError{StatusCode: resp.status, Body: resp.body}
}
