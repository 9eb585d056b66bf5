package consoleapi

import (
	"context"
	"strconv"
	"time"
)

const (
	mockAccessToken   = "mock-access-token"
	mockLoginDelay    = 400 * time.Millisecond
	mockRegisterDelay = 500 * time.Millisecond
	mockRiskLogCount  = 24
)

func mockLogin(ctx context.Context, req LoginRequest) (*AuthResult, error) {
	if err := sleepCtx(ctx, mockLoginDelay); err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: mockAccessToken,
		User: User{
			ID:          "u-demo",
			DisplayName: req.Identity,
			Identity:    req.Identity,
			Roles:       []string{"admin"},
		},
	}, nil
}

func mockRegister(ctx context.Context, req RegisterRequest) (*AuthResult, error) {
	if err := sleepCtx(ctx, mockRegisterDelay); err != nil {
		return nil, err
	}
	return &AuthResult{
		AccessToken: mockAccessToken,
		User: User{
			ID:          "u-new",
			DisplayName: req.DisplayName,
			Identity:    req.Identity,
			Roles:       []string{"admin"},
		},
	}, nil
}

// MockRiskLogs returns the fixture risk logs, one every five minutes going
// back from now.
func MockRiskLogs(now time.Time) []RiskLogItem {
	out := make([]RiskLogItem, 0, mockRiskLogCount)
	for i := range mockRiskLogCount {
		item := RiskLogItem{
			ID:             "log-" + strconv.Itoa(i),
			AppID:          "5001",
			ChannelID:      "2",
			RiskType:       "200",
			MatchRule:      "2",
			HitText:        "ad",
			Suggestion:     "review",
			CreatedAt:      now.Add(-time.Duration(i) * 5 * time.Minute).UTC().Format(time.RFC3339Nano),
			ContentPreview: "sample hit content shown in the log table",
		}
		if i%2 == 0 {
			item.AppID = "4001"
			item.MatchRule = "1"
			item.Suggestion = "block"
		}
		if i%3 == 0 {
			item.ChannelID = "1"
			item.RiskType = "300"
			item.HitText = "sensitive"
		}
		out = append(out, item)
	}
	return out
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
