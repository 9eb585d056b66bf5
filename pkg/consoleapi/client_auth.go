package consoleapi

import (
	"context"
	"net/http"
)

// The auth endpoints never enter the refresh coordinator: a 401 from them
// is final.

// Login exchanges credentials for an access token. The backend also sets the
// refresh cookie.
func (c *Client) Login(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if c.mockAuth {
		return mockLogin(ctx, req)
	}
	var res AuthResult
	err := c.call(ctx, &request{
		method:    http.MethodPost,
		path:      "/auth/login",
		body:      req,
		shape:     ShapeEnvelope,
		noRefresh: true,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Register creates an operator account and logs it in.
func (c *Client) Register(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if c.mockAuth {
		return mockRegister(ctx, req)
	}
	var res AuthResult
	err := c.call(ctx, &request{
		method:    http.MethodPost,
		path:      "/auth/register",
		body:      req,
		shape:     ShapeEnvelope,
		noRefresh: true,
	}, &res)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Refresh renews the access token using the refresh cookie.
func (c *Client) Refresh(ctx context.Context) (*AuthResult, error) {
	var res AuthResult
	err := c.call(ctx, &request{
		method:    http.MethodPost,
		path:      "/auth/refresh",
		body:      struct{}{},
		shape:     ShapeEnvelope,
		noRefresh: true,
	}, &res)
	if err != nil {
		return nil, err
	}
	if res.AccessToken == "" {
		return nil, ErrRefreshFailed
	}
	return &res, nil
}

// Logout revokes the refresh cookie server-side.
func (c *Client) Logout(ctx context.Context) error {
	_, err := c.do(ctx, &request{
		method:    http.MethodPost,
		path:      "/auth/logout",
		body:      struct{}{},
		noRefresh: true,
	})
	return err
}

// Me returns the operator the current token belongs to.
func (c *Client) Me(ctx context.Context) (*User, error) {
	var u User
	if err := c.call(ctx, &request{method: http.MethodGet, path: "/auth/me", shape: ShapeEnvelope}, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
