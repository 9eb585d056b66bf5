package consoleapi

import (
	"context"
	"net/http"
	"net/url"
)

// List detail reads return bare JSON, writes return an envelope.

func (c *Client) GetListDetail(ctx context.Context, id int64) (*ListDetail, error) {
	var d ListDetail
	if err := c.call(ctx, &request{method: http.MethodGet, path: idPath("/list-details/", id), shape: ShapeBare}, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

// SearchListDetails returns the entries whose text matches text.
func (c *Client) SearchListDetails(ctx context.Context, text string) ([]ListDetail, error) {
	var out []ListDetail
	err := c.call(ctx, &request{
		method: http.MethodGet,
		path:   "/list-details/search",
		query:  url.Values{"text": {text}},
		shape:  ShapeBare,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) AddListDetail(ctx context.Context, req AddListDetailRequest) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodPost, path: "/list-details", body: req}, "created")
}

// AddListDetails adds several entries to one list in a single call.
func (c *Client) AddListDetails(ctx context.Context, req AddListDetailsRequest) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodPost, path: "/list-details/batch", body: req}, "created")
}

func (c *Client) UpdateListDetail(ctx context.Context, id int64, req UpdateListDetailRequest) (string, error) {
	return c.mutate(ctx, &request{method: http.MethodPut, path: idPath("/list-details/", id), body: req}, "updated")
}

func (c *Client) DeleteListDetail(ctx context.Context, id int64, username string) (string, error) {
	return c.mutate(ctx, &request{
		method: http.MethodDelete,
		path:   idPath("/list-details/", id),
		body:   usernameBody{Username: username},
	}, "deleted")
}

func (c *Client) DeleteListDetails(ctx context.Context, ids []int64, username string) (string, error) {
	return c.mutate(ctx, &request{
		method: http.MethodDelete,
		path:   "/list-details/batch",
		body: struct {
			IDs      []int64 `json:"ids"`
			Username string  `json:"username"`
		}{ids, username},
	}, "deleted")
}

// DeleteListDetailByText removes the entry text from the list named
// listName.
func (c *Client) DeleteListDetailByText(ctx context.Context, listName, text, username string) (string, error) {
	return c.mutate(ctx, &request{
		method: http.MethodDelete,
		path:   "/list-details/by-text",
		body: struct {
			ListName string `json:"list_name"`
			Text     string `json:"text"`
			Username string `json:"username"`
		}{listName, text, username},
	}, "deleted")
}
