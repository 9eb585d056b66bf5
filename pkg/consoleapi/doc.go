/*
Package consoleapi is the client SDK for the risk-control admin API.

# Overview

A single Client carries every call the console makes: authentication, the
app and channel catalog, name lists and their entries, risk logs and ad-hoc
text checks. All calls share one request pipeline:

 1. The bearer token from the TokenStore is attached when present.
 2. A 401 response hands control to the refresh coordinator.
 3. The response body is decoded according to the endpoint's contract.

	client := consoleapi.NewClient("https://risk.example.com", "/api/v1")

	res, err := client.Login(ctx, consoleapi.LoginRequest{Identity: "alice", Password: "secret1"})
	if err != nil {
		return err
	}
	client.Tokens().SetAccessToken(res.AccessToken)

	apps, err := client.ListApps(ctx)

# Token Refresh

Access tokens are short lived. The refresh token never passes through this
package: the backend keeps it in an httpOnly cookie which the Client's cookie
jar replays to /auth/refresh. Install the refresh and logout handlers with
SetAuthHandlers:

	client.SetAuthHandlers(provider.Refresh, provider.Clear)

When a request is answered with 401 and a refresh handler is installed:

  - Concurrent failures share one refresh. At most one refresh is in flight
    at any time and late arrivals wait for it.
  - On success the token store is updated and the request is re-issued once
    with the new token. Whatever the retry returns is final.
  - On failure the logout handler runs and the original 401 is returned.

Requests that fail with any other status, or a 401 without a refresh handler,
return immediately.

# Response Contracts

Most endpoints wrap their result in an envelope:

	{"code": 0, "message": "ok", "requestId": "...", "data": {...}}

A few return bare JSON. Each Client method knows which contract its endpoint
follows (see Shape). Unwrap and MaybeUnwrap expose the runtime-inferred
decoding for callers that hold a raw body.

# Errors

	var apiErr *consoleapi.APIError
	switch {
	case errors.As(err, &apiErr):
		// The server refused the operation, apiErr.Message is user-facing.
	case errors.Is(err, consoleapi.ErrUnauthorized):
		// The session is gone, log in again.
	case errors.Is(err, consoleapi.ErrTransport):
		// The backend could not be reached.
	}

# Mock Modes

WithMockAuth answers Login and Register locally and WithMockRiskLogs serves a
fixed set of 24 risk logs, for working on the console without a backend.
*/
package consoleapi
