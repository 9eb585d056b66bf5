package domain

import (
	"slices"
	"strings"
	"time"
)

// List types.
const (
	ListTypeWhite     = 0
	ListTypeSensitive = 1
	ListTypeIgnore    = 2
)

// Match types select which part of a submission a list is checked against.
const (
	MatchTextAndNickname = 0
	MatchText            = 1
	MatchNickname        = 2
	MatchIP              = 3
	MatchAccount         = 6
)

// Suggestions of a sensitive list.
const (
	SuggestReject = 0
	SuggestPass   = 1
	SuggestReview = 2
)

const (
	StatusDisabled = 0
	StatusEnabled  = 1
)

const (
	ScopeGlobal     = "GLOBAL"
	ScopeApp        = "APP"
	ScopeAppChannel = "APP_CHANNEL"

	LanguageAll      = "ALL"
	LanguageSpecific = "SPECIFIC"
)

// MaxScopeMembers caps the apps and the channels of one name list.
const MaxScopeMembers = 5

type NameList struct {
	ID            int64
	No            string // uuid, what list details refer to
	Name          string
	Type          int
	MatchRule     int
	MatchType     int
	Suggest       int
	RiskType      int
	Status        int
	Scope         string
	LanguageScope string
	LanguageCodes []string
	AppIDs        []string
	ChannelIDs    []int64
	CreatedBy     string
	UpdatedBy     string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Language is the comma separated form of LanguageCodes.
func (n NameList) Language() string {
	if n.LanguageScope != LanguageSpecific {
		return ""
	}
	return strings.Join(n.LanguageCodes, ",")
}

// AppliesTo reports whether an enabled list covers a submission from appID
// on channelID (0 when the submission named no channel).
func (n NameList) AppliesTo(appID string, channelID int64) bool {
	if n.Status != StatusEnabled {
		return false
	}
	switch n.Scope {
	case ScopeGlobal:
		return true
	case ScopeApp:
		return slices.Contains(n.AppIDs, appID)
	case ScopeAppChannel:
		return slices.Contains(n.AppIDs, appID) && slices.Contains(n.ChannelIDs, channelID)
	}
	return false
}

// AppliesToLanguage reports whether the list covers a submission in lang.
// A list for specific languages never covers a submission without one.
func (n NameList) AppliesToLanguage(lang string) bool {
	if n.LanguageScope != LanguageSpecific {
		return true
	}
	lang = strings.ToLower(strings.TrimSpace(lang))
	return lang != "" && slices.Contains(n.LanguageCodes, lang)
}

// ListDetail is one text entry of a name list.
type ListDetail struct {
	ID        int64
	ListID    int64
	ListNo    string
	Text      string
	Memo      string
	CreatedBy string
	UpdatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}
