package consoleapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/aussiebroadwan/riskconsole/pkg/idx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/tidwall/gjson"
)

// request describes one API call. It is kept as a value so the same call can
// be issued again after a token refresh.
type request struct {
	method string
	path   string
	query  url.Values
	body   any
	shape  Shape

	// noRefresh keeps a 401 out of the refresh coordinator. Set on the auth
	// endpoints so the refresh call can never wait on itself.
	noRefresh bool
}

type response struct {
	status int
	header http.Header
	body   []byte
}

func (c *Client) url(r *request) string {
	u := c.baseURL + r.path
	if len(r.query) > 0 {
		u += "?" + r.query.Encode()
	}
	return u
}

// send performs a single attempt of r with the given bearer token.
func (c *Client) send(ctx context.Context, r *request, payload []byte, token string) (*response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, c.url(r), body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	reqID, ok := slogx.RequestID(ctx)
	if !ok {
		reqID = idx.New().String()
	}
	req.Header.Set(slogx.HeaderRequestID, reqID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %w", ErrTransport, err)
	}

	return &response{status: resp.StatusCode, header: resp.Header, body: data}, nil
}

// do runs r through the refresh coordinator and returns the final 2xx
// response, or the error describing why there is none.
func (c *Client) do(ctx context.Context, r *request) (*response, error) {
	var payload []byte
	if r.body != nil {
		b, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request: %w", err)
		}
		payload = b
	}

	resp, err := c.send(ctx, r, payload, c.tokens.AccessToken())
	if err != nil {
		return nil, err
	}

	if resp.status == http.StatusUnauthorized && !r.noRefresh {
		resp, err = c.recover401(ctx, r, payload, resp)
		if err != nil {
			return nil, err
		}
	}

	if resp.status < 200 || resp.status > 299 {
		return nil, statusError(resp)
	}
	return resp, nil
}

// call performs r and decodes the body into out per r.shape.
func (c *Client) call(ctx context.Context, r *request, out any) error {
	resp, err := c.do(ctx, r)
	if err != nil {
		return err
	}
	if err := Decode(resp.body, r.shape, out); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.StatusCode = resp.status
		}
		return err
	}
	return nil
}

// mutate performs a create/update/delete call and returns the server's
// message, or fallback when the server sent none.
func (c *Client) mutate(ctx context.Context, r *request, fallback string) (string, error) {
	resp, err := c.mutateRaw(ctx, r)
	if err != nil {
		return "", err
	}
	return messageOr(resp.body, fallback), nil
}

// mutateRaw performs r against an envelope endpoint and hands back the raw
// response once the envelope reported success.
func (c *Client) mutateRaw(ctx context.Context, r *request) (*response, error) {
	r.shape = ShapeEnvelope
	resp, err := c.do(ctx, r)
	if err != nil {
		return nil, err
	}
	if err := Decode(resp.body, ShapeEnvelope, nil); err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) {
			apiErr.StatusCode = resp.status
		}
		return nil, err
	}
	return resp, nil
}

// messageOr returns the message field of body, or fallback.
func messageOr(body []byte, fallback string) string {
	if msg := gjson.GetBytes(body, "message").String(); msg != "" {
		return msg
	}
	return fallback
}
