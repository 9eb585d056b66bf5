package consoleapi

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ============================================================================
// Auth
// ============================================================================

// User is the operator behind a session.
type User struct {
	ID          string   `json:"id,omitempty"`
	DisplayName string   `json:"displayName"`
	Identity    string   `json:"identity"`
	Roles       []string `json:"roles,omitempty"`
}

// AuthResult is returned by login, register and refresh.
type AuthResult struct {
	AccessToken string `json:"access_token"`
	User        User   `json:"user"`
}

type LoginRequest struct {
	Identity string `json:"identity"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Identity    string `json:"identity"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name"`
}

// ============================================================================
// Apps and channels
// ============================================================================

// App is a tenant application. AccessKey authorizes its text-check calls.
type App struct {
	ID        int64  `json:"id,omitempty"`
	AppID     string `json:"app_id"`
	Name      string `json:"name"`
	AccessKey string `json:"access_key,omitempty"`
}

type CreateAppRequest struct {
	AppID    string `json:"app_id"`
	Name     string `json:"name"`
	Username string `json:"username"`
}

type UpdateAppRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
}

type Channel struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
	Memo string `json:"memo,omitempty"`
}

type CreateChannelRequest struct {
	Name     string `json:"name"`
	Memo     string `json:"memo,omitempty"`
	Username string `json:"username"`
}

type UpdateChannelRequest struct {
	Name     string `json:"name"`
	Memo     string `json:"memo,omitempty"`
	Username string `json:"username,omitempty"`
}

// ============================================================================
// Name lists
// ============================================================================

// Scope is how widely a name list applies.
type Scope string

const (
	ScopeGlobal     Scope = "GLOBAL"
	ScopeApp        Scope = "APP"
	ScopeAppChannel Scope = "APP_CHANNEL"
)

// LanguageScope selects whether a name list applies to every language.
type LanguageScope string

const (
	LanguageAll      LanguageScope = "ALL"
	LanguageSpecific LanguageScope = "SPECIFIC"
)

// NameList is a named set of entries with a matching rule and a scope.
type NameList struct {
	ID            int64         `json:"id,omitempty"`
	No            string        `json:"no"`
	Name          string        `json:"name"`
	Type          int           `json:"type"`
	MatchRule     int           `json:"match_rule"`
	MatchType     int           `json:"match_type"`
	Suggest       int           `json:"suggest"`
	RiskType      int           `json:"risk_type"`
	Status        int           `json:"status"`
	Scope         Scope         `json:"scope"`
	LanguageScope LanguageScope `json:"language_scope"`
	Language      string        `json:"language,omitempty"`
	LanguageCodes []string      `json:"language_codes,omitempty"`
	AppIDs        []string      `json:"app_ids,omitempty"`
	ChannelIDs    []int64       `json:"channel_ids,omitempty"`
}

// NameListPayload is the body of name list create and update. The slices
// are always sent, empty when unset.
type NameListPayload struct {
	Name          string        `json:"name"`
	Type          int           `json:"type"`
	MatchRule     int           `json:"match_rule"`
	MatchType     int           `json:"match_type"`
	Suggest       int           `json:"suggest"`
	RiskType      int           `json:"risk_type"`
	Status        int           `json:"status"`
	Scope         Scope         `json:"scope"`
	AppIDs        []string      `json:"app_ids"`
	ChannelIDs    []int64       `json:"channel_ids"`
	LanguageScope LanguageScope `json:"language_scope"`
	LanguageCodes []string      `json:"language_codes"`
	Username      string        `json:"username"`
}

// MarshalJSON keeps nil slices as [] on the wire.
func (p NameListPayload) MarshalJSON() ([]byte, error) {
	type alias NameListPayload
	a := alias(p)
	if a.AppIDs == nil {
		a.AppIDs = []string{}
	}
	if a.ChannelIDs == nil {
		a.ChannelIDs = []int64{}
	}
	if a.LanguageCodes == nil {
		a.LanguageCodes = []string{}
	}
	return json.Marshal(a)
}

// ============================================================================
// List details
// ============================================================================

// ListDetail is one text entry of a name list.
type ListDetail struct {
	ID     int64  `json:"id,omitempty"`
	ListID int64  `json:"list_id,omitempty"`
	ListNo string `json:"list_no"`
	Text   string `json:"text"`
	Memo   string `json:"memo,omitempty"`
}

type AddListDetailRequest struct {
	ListNo   string `json:"list_no"`
	Text     string `json:"text"`
	Memo     string `json:"memo,omitempty"`
	Username string `json:"username"`
}

type AddListDetailsRequest struct {
	ListNo   string   `json:"list_no"`
	Data     []string `json:"data"`
	Username string   `json:"username"`
}

type UpdateListDetailRequest struct {
	Text     string `json:"text"`
	Memo     string `json:"memo,omitempty"`
	Username string `json:"username"`
}

// ============================================================================
// Risk logs
// ============================================================================

// FlexString accepts a JSON string or number. Risk logs carry some IDs in
// either form.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// Int returns the value as an integer, or 0 when it is not one.
func (f FlexString) Int() int {
	n, _ := strconv.Atoi(string(f))
	return n
}

// RiskLogItem is one hit recorded by the moderation engine.
type RiskLogItem struct {
	ID             string     `json:"id"`
	AppID          string     `json:"app_id"`
	ChannelID      FlexString `json:"channel_id,omitempty"`
	RiskType       FlexString `json:"risk_type"`
	MatchRule      FlexString `json:"match_rule,omitempty"`
	HitText        string     `json:"hit_text,omitempty"`
	Suggestion     string     `json:"suggestion,omitempty"`
	CreatedAt      string     `json:"created_at"`
	ContentPreview string     `json:"content_preview,omitempty"`
}

// RiskLogQuery filters risk logs server-side. Empty fields are not sent.
type RiskLogQuery struct {
	AppID    string
	RiskType string
}

// ============================================================================
// Text check
// ============================================================================

// TextCheckRequest is the body of POST /moderation/text.
type TextCheckRequest struct {
	AccessKey string        `json:"access_key"`
	UGCSource string        `json:"ugc_source"`
	Data      TextCheckData `json:"data"`
}

type TextCheckData struct {
	Timestamp int64   `json:"timestamp"`
	TokenID   *string `json:"token_id"`
	Nickname  string  `json:"nickname"`
	Text      string  `json:"text"`
	ServerID  string  `json:"server_id"`
	AccountID string  `json:"account_id"`
	AppID     string  `json:"app_id"`
	RoleID    string  `json:"role_id"`
	VIPLevel  int     `json:"vip_level"`
	Level     int     `json:"level"`
	IP        string  `json:"ip"`
	Channel   string  `json:"channel"`
	Language  string  `json:"language,omitempty"`
}
