package consoleapi

import (
	"context"
	"net/http"
	"net/url"
)

// ListRiskLogs returns recorded hits, newest first. The endpoint may answer
// with or without an envelope.
func (c *Client) ListRiskLogs(ctx context.Context, q RiskLogQuery) ([]RiskLogItem, error) {
	if c.mockRiskLogs {
		return MockRiskLogs(c.now()), nil
	}

	params := url.Values{}
	if q.AppID != "" {
		params.Set("app_id", q.AppID)
	}
	if q.RiskType != "" {
		params.Set("risk_type", q.RiskType)
	}

	resp, err := c.do(ctx, &request{method: http.MethodGet, path: "/risk-logs", query: params, shape: ShapeAuto})
	if err != nil {
		return nil, err
	}
	return MaybeUnwrap[[]RiskLogItem](resp.body)
}

// CheckText submits text to the moderation API. The verdict is returned as
// the raw response object; a nonzero code fails with *APIError.
func (c *Client) CheckText(ctx context.Context, req TextCheckRequest) (map[string]any, error) {
	resp, err := c.do(ctx, &request{method: http.MethodPost, path: "/moderation/text", body: req})
	if err != nil {
		return nil, err
	}
	if env, ok := detectEnvelope(resp.body); ok && env.Code != CodeOK {
		return nil, env.err(resp.status)
	}

	var out map[string]any
	if err := unmarshal(resp.body, &out); err != nil {
		return nil, err
	}
	return out, nil
}
