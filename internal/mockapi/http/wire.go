package http

import (
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// Conversions from domain rows to the wire types the console decodes.

func toUser(u domain.User) consoleapi.User {
	return consoleapi.User{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		Identity:    u.Identity,
		Roles:       u.Roles,
	}
}

func toApp(a domain.App) consoleapi.App {
	return consoleapi.App{ID: a.ID, AppID: a.AppID, Name: a.Name, AccessKey: a.AccessKey}
}

func toChannel(c domain.Channel) consoleapi.Channel {
	return consoleapi.Channel{ID: c.ID, Name: c.Name, Memo: c.Memo}
}

func toNameList(n domain.NameList) consoleapi.NameList {
	return consoleapi.NameList{
		ID:            n.ID,
		No:            n.No,
		Name:          n.Name,
		Type:          n.Type,
		MatchRule:     n.MatchRule,
		MatchType:     n.MatchType,
		Suggest:       n.Suggest,
		RiskType:      n.RiskType,
		Status:        n.Status,
		Scope:         consoleapi.Scope(n.Scope),
		LanguageScope: consoleapi.LanguageScope(n.LanguageScope),
		Language:      n.Language(),
		LanguageCodes: n.LanguageCodes,
		AppIDs:        n.AppIDs,
		ChannelIDs:    n.ChannelIDs,
	}
}

func toListDetail(d domain.ListDetail) consoleapi.ListDetail {
	return consoleapi.ListDetail{ID: d.ID, ListID: d.ListID, ListNo: d.ListNo, Text: d.Text, Memo: d.Memo}
}

// riskLogJSON mirrors consoleapi.RiskLogItem with numbers where the backend
// stores numbers.
type riskLogJSON struct {
	ID             string `json:"id"`
	AppID          string `json:"app_id"`
	ChannelID      string `json:"channel_id,omitempty"`
	RiskType       int    `json:"risk_type"`
	MatchRule      int    `json:"match_rule"`
	HitText        string `json:"hit_text,omitempty"`
	Suggestion     string `json:"suggestion,omitempty"`
	CreatedAt      string `json:"created_at"`
	ContentPreview string `json:"content_preview,omitempty"`
}

func toRiskLog(l domain.RiskLog) riskLogJSON {
	return riskLogJSON{
		ID:             l.ID,
		AppID:          l.AppID,
		ChannelID:      l.ChannelID,
		RiskType:       l.RiskType,
		MatchRule:      l.MatchRule,
		HitText:        l.HitText,
		Suggestion:     l.Suggestion,
		CreatedAt:      l.CreatedAt.Format(time.RFC3339),
		ContentPreview: l.ContentPreview,
	}
}

func mapSlice[T, U any](in []T, f func(T) U) []U {
	out := make([]U, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}
