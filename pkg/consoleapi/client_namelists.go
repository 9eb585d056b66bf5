package consoleapi

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// Name list reads return bare JSON, writes return an envelope.

func (c *Client) ListNameLists(ctx context.Context) ([]NameList, error) {
	var lists []NameList
	if err := c.call(ctx, &request{method: http.MethodGet, path: "/name-lists", shape: ShapeBare}, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (c *Client) GetNameList(ctx context.Context, lid string) (*NameList, error) {
	var nl NameList
	err := c.call(ctx, &request{
		method: http.MethodGet,
		path:   "/name-lists/" + url.PathEscape(lid),
		shape:  ShapeBare,
	}, &nl)
	if err != nil {
		return nil, err
	}
	return &nl, nil
}

func (c *Client) CreateNameList(ctx context.Context, p NameListPayload) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodPost, path: "/name-lists", body: p}, "created")
}

func (c *Client) UpdateNameList(ctx context.Context, lid string, p NameListPayload) (string, error) {
	return c.mutate(ctx, &request{
		method: http.MethodPut,
		path:   "/name-lists/" + url.PathEscape(lid),
		body:   p,
	}, "updated")
}

func (c *Client) DeleteNameList(ctx context.Context, lid string) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodDelete, path: "/name-lists/" + url.PathEscape(lid)}, "deleted")
}

// SwitchNameListStatus enables (1) or disables (0) a name list.
func (c *Client) SwitchNameListStatus(ctx context.Context, lid string, status int, username string) (string, error) {
	return c.mutate(ctx, &request{
		method: http.MethodPatch,
		path:   "/name-lists/" + url.PathEscape(lid) + "/status",
		body: struct {
			Status   int    `json:"status"`
			Username string `json:"username"`
		}{status, username},
	}, "updated")
}

func idPath(prefix string, id int64) string {
	return prefix + strconv.FormatInt(id, 10)
}
