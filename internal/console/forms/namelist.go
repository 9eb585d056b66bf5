// Package forms holds the console's form state and the list views built on
// top of the API client: name list editing rules, filters, pagination, the
// risk-log trend and the text-check form.
package forms

import (
	"errors"
	"slices"
	"strings"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// MaxScopeTargets caps how many apps, and how many channels, one name list
// may be bound to.
const MaxScopeTargets = 5

var (
	ErrNameRequired    = errors.New("forms: name is required")
	ErrTooManyApps     = errors.New("forms: at most 5 apps per name list")
	ErrTooManyChannels = errors.New("forms: at most 5 channels per name list")
	ErrUnknownScope    = errors.New("forms: unknown scope")
	ErrUnknownLanguage = errors.New("forms: unknown language scope")
)

// NameListForm is the editable state of a name list.
type NameListForm struct {
	Name          string
	Type          int
	MatchRule     int
	MatchType     int
	Suggest       int
	RiskType      int
	Status        int
	Scope         consoleapi.Scope
	AppIDs        []string
	ChannelIDs    []int64
	LanguageScope consoleapi.LanguageScope
	LanguageCodes []string
}

// NewNameListForm returns a form with the defaults for a new name list.
func NewNameListForm() *NameListForm {
	return &NameListForm{
		Type:          1,
		MatchRule:     1,
		MatchType:     1,
		Suggest:       2,
		RiskType:      300,
		Status:        1,
		Scope:         consoleapi.ScopeAppChannel,
		LanguageScope: consoleapi.LanguageAll,
	}
}

// FromNameList loads an existing list for editing.
func FromNameList(nl consoleapi.NameList) *NameListForm {
	f := &NameListForm{
		Name:          nl.Name,
		Type:          nl.Type,
		MatchRule:     nl.MatchRule,
		MatchType:     nl.MatchType,
		Suggest:       nl.Suggest,
		RiskType:      nl.RiskType,
		Status:        nl.Status,
		Scope:         nl.Scope,
		AppIDs:        slices.Clone(nl.AppIDs),
		ChannelIDs:    slices.Clone(nl.ChannelIDs),
		LanguageScope: nl.LanguageScope,
		LanguageCodes: slices.Clone(nl.LanguageCodes),
	}
	if f.LanguageScope == "" {
		f.LanguageScope = consoleapi.LanguageAll
	}
	return f
}

// SetScope switches the scope. GLOBAL drops every app and channel, APP drops
// the channels and keeps the apps.
func (f *NameListForm) SetScope(s consoleapi.Scope) error {
	switch s {
	case consoleapi.ScopeGlobal:
		f.AppIDs = nil
		f.ChannelIDs = nil
	case consoleapi.ScopeApp:
		f.ChannelIDs = nil
	case consoleapi.ScopeAppChannel:
	default:
		return ErrUnknownScope
	}
	f.Scope = s
	return nil
}

// ToggleApp adds appID, or removes it when already selected. Adding beyond
// MaxScopeTargets is refused and leaves the selection unchanged.
func (f *NameListForm) ToggleApp(appID string) error {
	if i := slices.Index(f.AppIDs, appID); i >= 0 {
		f.AppIDs = slices.Delete(f.AppIDs, i, i+1)
		return nil
	}
	if len(f.AppIDs) >= MaxScopeTargets {
		return ErrTooManyApps
	}
	f.AppIDs = append(f.AppIDs, appID)
	return nil
}

// ToggleChannel is ToggleApp for channels.
func (f *NameListForm) ToggleChannel(id int64) error {
	if i := slices.Index(f.ChannelIDs, id); i >= 0 {
		f.ChannelIDs = slices.Delete(f.ChannelIDs, i, i+1)
		return nil
	}
	if len(f.ChannelIDs) >= MaxScopeTargets {
		return ErrTooManyChannels
	}
	f.ChannelIDs = append(f.ChannelIDs, id)
	return nil
}

// SetLanguageScope switches between all languages and a specific set. ALL
// drops the language codes.
func (f *NameListForm) SetLanguageScope(ls consoleapi.LanguageScope) error {
	switch ls {
	case consoleapi.LanguageAll:
		f.LanguageCodes = nil
	case consoleapi.LanguageSpecific:
	default:
		return ErrUnknownLanguage
	}
	f.LanguageScope = ls
	return nil
}

// SetLanguageCodes replaces the codes from a comma separated string.
func (f *NameListForm) SetLanguageCodes(raw string) {
	f.LanguageCodes = ParseLanguageCodes(raw)
}

// ParseLanguageCodes splits raw on commas, trims and lower-cases each code
// and drops the empty ones.
func ParseLanguageCodes(raw string) []string {
	var codes []string
	for part := range strings.SplitSeq(raw, ",") {
		if code := strings.ToLower(strings.TrimSpace(part)); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

// Validate reports the first problem that keeps the form from submitting.
func (f *NameListForm) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrNameRequired
	}
	if len(f.AppIDs) > MaxScopeTargets {
		return ErrTooManyApps
	}
	if len(f.ChannelIDs) > MaxScopeTargets {
		return ErrTooManyChannels
	}
	return nil
}

// Payload builds the request body, attributed to username.
func (f *NameListForm) Payload(username string) consoleapi.NameListPayload {
	return consoleapi.NameListPayload{
		Name:          strings.TrimSpace(f.Name),
		Type:          f.Type,
		MatchRule:     f.MatchRule,
		MatchType:     f.MatchType,
		Suggest:       f.Suggest,
		RiskType:      f.RiskType,
		Status:        f.Status,
		Scope:         f.Scope,
		AppIDs:        slices.Clone(f.AppIDs),
		ChannelIDs:    slices.Clone(f.ChannelIDs),
		LanguageScope: f.LanguageScope,
		LanguageCodes: slices.Clone(f.LanguageCodes),
		Username:      username,
	}
}
