package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/pkg/idx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
)

const previewRunes = 50

// ModerationService checks submissions against the name lists that apply
// to the submitting app.
type ModerationService struct {
	Store store.Store
	Clock clockwork.Clock
}

// hit is one sensitive list entry found in a submission.
type hit struct {
	list domain.NameList
	text string
}

// CheckText authorizes the submission with accessKey and returns the
// verdict. A sensitive hit is recorded as a risk log.
//
// Ignore lists strip their entries from the text and nickname first. Any
// whitelist hit passes the submission. Otherwise the most severe sensitive
// hit decides.
func (s *ModerationService) CheckText(ctx context.Context, accessKey string, sub domain.Submission) (domain.Verdict, error) {
	accessKey = strings.TrimSpace(accessKey)
	if accessKey == "" {
		return domain.Verdict{}, paramErr(ErrMissingField, "access_key is required")
	}
	app, err := s.Store.Apps().GetAppByAccessKey(ctx, accessKey)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Verdict{}, paramErr(ErrInvalidAccessKey, "invalid access_key")
		}
		return domain.Verdict{}, err
	}
	if sub.AppID != "" && sub.AppID != app.AppID {
		return domain.Verdict{}, paramErr(ErrInvalidAccessKey, "access_key does not belong to app %s", sub.AppID)
	}
	sub.AppID = app.AppID

	verdict := domain.Verdict{RequestID: uuid.NewString(), RiskLevel: domain.RiskPass}

	lists, err := s.applicable(ctx, sub)
	if err != nil {
		return domain.Verdict{}, err
	}

	entries := make(map[int64][]string, len(lists))
	for _, n := range lists {
		details, err := s.Store.ListDetails().ListDetailsByList(ctx, n.ID)
		if err != nil {
			return domain.Verdict{}, err
		}
		for _, d := range details {
			entries[n.ID] = append(entries[n.ID], d.Text)
		}
	}

	for _, n := range lists {
		if n.Type != domain.ListTypeIgnore {
			continue
		}
		for _, e := range entries[n.ID] {
			sub.Text = strings.ReplaceAll(sub.Text, e, "")
			sub.Nickname = strings.ReplaceAll(sub.Nickname, e, "")
		}
	}

	for _, n := range lists {
		if n.Type != domain.ListTypeWhite {
			continue
		}
		if text, ok := match(n, entries[n.ID], sub); ok {
			verdict.Detail = fmt.Sprintf("whitelisted by %s: %s", n.Name, text)
			verdict.HitList = n.Name
			verdict.HitText = text
			return verdict, nil
		}
	}

	var worst *hit
	for _, n := range lists {
		if n.Type != domain.ListTypeSensitive {
			continue
		}
		text, ok := match(n, entries[n.ID], sub)
		if !ok {
			continue
		}
		if worst == nil || severity(n.Suggest) > severity(worst.list.Suggest) {
			worst = &hit{list: n, text: text}
		}
	}
	if worst == nil {
		return verdict, nil
	}

	verdict.RiskLevel = riskLevel(worst.list.Suggest)
	verdict.Score = score(verdict.RiskLevel)
	verdict.Detail = fmt.Sprintf("hit %s: %s", worst.list.Name, worst.text)
	verdict.HitList = worst.list.Name
	verdict.HitText = worst.text
	verdict.RiskType = worst.list.RiskType

	now := clockOrReal(s.Clock).Now()
	entry := domain.RiskLog{
		ID:             idx.NewAt(now).String(),
		AppID:          sub.AppID,
		ChannelID:      sub.Channel,
		RiskType:       worst.list.RiskType,
		MatchRule:      worst.list.MatchRule,
		HitText:        worst.text,
		Suggestion:     suggestion(worst.list.Suggest),
		ContentPreview: preview(sub.Text),
		CreatedAt:      now,
	}
	if err := s.Store.RiskLogs().CreateRiskLog(ctx, entry); err != nil {
		return domain.Verdict{}, err
	}
	slogx.FromContext(ctx).Info("text check hit",
		"app_id", sub.AppID,
		"list", worst.list.Name,
		"risk_level", verdict.RiskLevel,
	)
	return verdict, nil
}

func (s *ModerationService) applicable(ctx context.Context, sub domain.Submission) ([]domain.NameList, error) {
	all, err := s.Store.NameLists().ListNameLists(ctx)
	if err != nil {
		return nil, err
	}
	channelID, _ := strconv.ParseInt(strings.TrimSpace(sub.Channel), 10, 64)

	out := all[:0]
	for _, n := range all {
		if n.AppliesTo(sub.AppID, channelID) && n.AppliesToLanguage(sub.Language) {
			out = append(out, n)
		}
	}
	return out, nil
}

// match reports the first entry of a list found in the part of sub the
// list's match type selects. Text and nickname match by case-insensitive
// substring, IP and account by equality.
func match(n domain.NameList, entries []string, sub domain.Submission) (string, bool) {
	var fields []string
	exact := false
	switch n.MatchType {
	case domain.MatchText:
		fields = []string{sub.Text}
	case domain.MatchNickname:
		fields = []string{sub.Nickname}
	case domain.MatchTextAndNickname:
		fields = []string{sub.Text, sub.Nickname}
	case domain.MatchIP:
		fields, exact = []string{sub.IP}, true
	case domain.MatchAccount:
		fields, exact = []string{sub.AccountID}, true
	}

	for _, e := range entries {
		if e == "" {
			continue
		}
		for _, f := range fields {
			if exact && strings.TrimSpace(f) == e {
				return e, true
			}
			if !exact && strings.Contains(strings.ToLower(f), strings.ToLower(e)) {
				return e, true
			}
		}
	}
	return "", false
}

func severity(suggest int) int {
	switch suggest {
	case domain.SuggestReject:
		return 2
	case domain.SuggestReview:
		return 1
	}
	return 0
}

func riskLevel(suggest int) string {
	switch suggest {
	case domain.SuggestReject:
		return domain.RiskReject
	case domain.SuggestReview:
		return domain.RiskReview
	}
	return domain.RiskPass
}

func suggestion(suggest int) string {
	switch suggest {
	case domain.SuggestReject:
		return "block"
	case domain.SuggestReview:
		return "review"
	}
	return "pass"
}

func score(level string) int {
	switch level {
	case domain.RiskReject:
		return 100
	case domain.RiskReview:
		return 50
	}
	return 0
}

func preview(text string) string {
	r := []rune(text)
	if len(r) <= previewRunes {
		return text
	}
	return string(r[:previewRunes]) + "…"
}
