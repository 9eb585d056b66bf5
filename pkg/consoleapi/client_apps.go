package consoleapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/tidwall/gjson"
)

// ============================================================================
// Apps
// ============================================================================

func (c *Client) ListApps(ctx context.Context) ([]App, error) {
	var apps []App
	if err := c.call(ctx, &request{method: http.MethodGet, path: "/apps", shape: ShapeEnvelope}, &apps); err != nil {
		return nil, err
	}
	return apps, nil
}

func (c *Client) GetApp(ctx context.Context, appID string) (*App, error) {
	var app App
	err := c.call(ctx, &request{
		method: http.MethodGet,
		path:   "/apps/" + url.PathEscape(appID),
		shape:  ShapeEnvelope,
	}, &app)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// CreateApp registers an app. The returned notice carries the generated
// access key when the server reports it.
func (c *Client) CreateApp(ctx context.Context, req CreateAppRequest) (string, error) {
	resp, err := c.mutateRaw(ctx, &request{method: http.MethodPost, path: "/apps", body: req})
	if err != nil {
		return "", err
	}
	if data := gjson.GetBytes(resp.body, "data"); data.Type == gjson.String && data.Str != "" {
		return messageOr(resp.body, data.Str), nil
	}
	return messageOr(resp.body, "created"), nil
}

func (c *Client) UpdateApp(ctx context.Context, appID string, req UpdateAppRequest) (string, error) {
	return c.mutate(ctx, &request{
		method: http.MethodPut,
		path:   "/apps/" + url.PathEscape(appID),
		body:   req,
	}, "updated")
}

func (c *Client) DeleteApp(ctx context.Context, appID string) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodDelete, path: "/apps/" + url.PathEscape(appID)}, "deleted")
}

// ============================================================================
// Channels
// ============================================================================

func (c *Client) ListChannels(ctx context.Context) ([]Channel, error) {
	var channels []Channel
	if err := c.call(ctx, &request{method: http.MethodGet, path: "/channels", shape: ShapeEnvelope}, &channels); err != nil {
		return nil, err
	}
	return channels, nil
}

func (c *Client) GetChannel(ctx context.Context, id int64) (*Channel, error) {
	var ch Channel
	if err := c.call(ctx, &request{method: http.MethodGet, path: idPath("/channels/", id), shape: ShapeEnvelope}, &ch); err != nil {
		return nil, err
	}
	return &ch, nil
}

func (c *Client) CreateChannel(ctx context.Context, req CreateChannelRequest) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodPost, path: "/channels", body: req}, "created")
}

func (c *Client) UpdateChannel(ctx context.Context, id int64, req UpdateChannelRequest) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodPut, path: idPath("/channels/", id), body: req}, "updated")
}

// DeleteChannel sends the acting username in the request body.
func (c *Client) DeleteChannel(ctx context.Context, id int64, username string) (string, error) {
	return c.mutate(ctx, &request{
		method: http.MethodDelete,
		path:   idPath("/channels/", id),
		body:   usernameBody{Username: username},
	}, "deleted")
}

type usernameBody struct {
	Username string `json:"username"`
}
