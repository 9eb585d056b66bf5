package forms

import (
	"strings"
	"time"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// TextCheckForm is the input of an ad-hoc moderation check.
type TextCheckForm struct {
	AccessKey string
	UGCSource string
	AppID     string
	Channel   string
	Text      string
	Nickname  string
	AccountID string
	RoleID    string
	ServerID  string
	VIPLevel  int
	Level     int
	IP        string
	Language  string
}

// NewTextCheckForm returns the form prefilled with a test player.
func NewTextCheckForm() *TextCheckForm {
	return &TextCheckForm{
		UGCSource: "text",
		Nickname:  "test_user",
		AccountID: "10001",
		RoleID:    "r001",
		ServerID:  "s001",
		VIPLevel:  0,
		Level:     1,
		IP:        "127.0.0.1",
	}
}

// Request builds the moderation call stamped with now. The token ID is left
// null for the server to derive.
func (f *TextCheckForm) Request(now time.Time) consoleapi.TextCheckRequest {
	return consoleapi.TextCheckRequest{
		AccessKey: strings.TrimSpace(f.AccessKey),
		UGCSource: f.UGCSource,
		Data: consoleapi.TextCheckData{
			Timestamp: now.UnixMilli(),
			Nickname:  f.Nickname,
			Text:      f.Text,
			ServerID:  f.ServerID,
			AccountID: f.AccountID,
			AppID:     f.AppID,
			RoleID:    f.RoleID,
			VIPLevel:  f.VIPLevel,
			Level:     f.Level,
			IP:        f.IP,
			Channel:   f.Channel,
			Language:  strings.ToLower(strings.TrimSpace(f.Language)),
		},
	}
}
