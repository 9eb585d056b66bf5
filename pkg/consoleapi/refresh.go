package consoleapi

import (
	"context"
	"errors"
)

const refreshKey = "refresh"

// recover401 handles a first 401 for r. With a refresh handler installed it
// joins or starts the shared refresh and re-issues r once with the new token.
// The retried response is returned whatever its status. Without a token the
// logout handler runs and the original 401 is returned.
func (c *Client) recover401(ctx context.Context, r *request, payload []byte, failed *response) (*response, error) {
	refresh, onLogout := c.handlers()
	if refresh == nil {
		return failed, nil
	}

	token, err := c.sharedRefresh(ctx, refresh)
	if err != nil && ctx.Err() != nil {
		// The caller gave up waiting, the refresh itself may still succeed.
		return nil, ctx.Err()
	}
	if token == "" {
		c.logger.InfoContext(ctx, "refresh_failed", "path", r.path, "error", err)
		if onLogout != nil {
			onLogout()
		}
		return failed, nil
	}

	c.logger.DebugContext(ctx, "request_retried", "method", r.method, "path", r.path)
	return c.send(ctx, r, payload, token)
}

// sharedRefresh runs refresh unless one is already in flight, in which case
// it waits for that one. The refresh runs detached from ctx's cancellation
// so one caller giving up does not fail the others, and a new token lands in
// the token store even when every waiter has gone.
func (c *Client) sharedRefresh(ctx context.Context, refresh RefreshFunc) (string, error) {
	ch := c.refreshes.DoChan(refreshKey, func() (any, error) {
		c.logger.InfoContext(ctx, "refresh_started")
		token, err := refresh(context.WithoutCancel(ctx))
		if err == nil && token != "" {
			c.tokens.SetAccessToken(token)
		}
		return token, err
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Shared {
			c.logger.DebugContext(ctx, "refresh_joined")
		}
		if res.Err != nil {
			return "", res.Err
		}
		token, _ := res.Val.(string)
		if token == "" {
			return "", ErrRefreshFailed
		}
		return token, nil
	}
}

// IsSessionExpired reports whether err means the session could not be kept
// alive and the operator has to log in again.
func IsSessionExpired(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrRefreshFailed)
}
