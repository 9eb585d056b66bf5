package service

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/stretchr/testify/require"
)

func TestCheckText(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	app, err := f.catalog.CreateApp(ctx, "game1", "Game", "ops")
	require.NoError(t, err)
	_, err = f.catalog.CreateApp(ctx, "game2", "Other", "ops")
	require.NoError(t, err)

	list := func(name string, typ, matchType, suggest, riskType int, mutate func(*NameListInput), entries ...string) {
		in := NameListInput{
			Name:      name,
			Type:      typ,
			MatchType: matchType,
			Suggest:   suggest,
			RiskType:  riskType,
			Status:    domain.StatusEnabled,
			Scope:     domain.ScopeGlobal,
		}
		if mutate != nil {
			mutate(&in)
		}
		n, err := f.lists.Create(ctx, in, "ops")
		require.NoError(t, err)
		_, err = f.details.AddBatch(ctx, n.No, entries, "ops")
		require.NoError(t, err)
	}

	list("reject", domain.ListTypeSensitive, domain.MatchText, domain.SuggestReject, 100, nil, "badword")
	list("review", domain.ListTypeSensitive, domain.MatchTextAndNickname, domain.SuggestReview, 200, nil, "maybe")
	list("ips", domain.ListTypeSensitive, domain.MatchIP, domain.SuggestReview, 300, nil, "10.0.0.1")
	list("vips", domain.ListTypeWhite, domain.MatchNickname, domain.SuggestPass, 0, nil, "vip_")
	list("noise", domain.ListTypeIgnore, domain.MatchText, domain.SuggestPass, 0, nil, "badword123")
	list("game2 only", domain.ListTypeSensitive, domain.MatchText, domain.SuggestReject, 400, func(in *NameListInput) {
		in.Scope = domain.ScopeApp
		in.AppIDs = []string{"game2"}
	}, "secret")
	list("off", domain.ListTypeSensitive, domain.MatchText, domain.SuggestReject, 500, func(in *NameListInput) {
		in.Status = domain.StatusDisabled
	}, "hello")

	for _, tt := range []struct {
		name     string
		sub      domain.Submission
		level    string
		score    int
		riskType int
		hit      string
	}{
		{"clean", domain.Submission{Text: "hello there"}, domain.RiskPass, 0, 0, ""},
		{"reject is case insensitive", domain.Submission{Text: "what a BadWord"}, domain.RiskReject, 100, 100, "badword"},
		{"most severe wins", domain.Submission{Text: "maybe a badword"}, domain.RiskReject, 100, 100, "badword"},
		{"review", domain.Submission{Text: "maybe"}, domain.RiskReview, 50, 200, "maybe"},
		{"review by nickname", domain.Submission{Text: "hi", Nickname: "MaybeMan"}, domain.RiskReview, 50, 200, "maybe"},
		{"ip equality", domain.Submission{Text: "hi", IP: "10.0.0.1"}, domain.RiskReview, 50, 300, "10.0.0.1"},
		{"ip prefix is no hit", domain.Submission{Text: "hi", IP: "10.0.0.10"}, domain.RiskPass, 0, 0, ""},
		{"whitelist passes", domain.Submission{Text: "badword", Nickname: "vip_anna"}, domain.RiskPass, 0, 0, "vip_"},
		{"ignored text is stripped", domain.Submission{Text: "badword123"}, domain.RiskPass, 0, 0, ""},
		{"other app's list", domain.Submission{Text: "secret"}, domain.RiskPass, 0, 0, ""},
	} {
		t.Run(tt.name, func(t *testing.T) {
			v, err := f.moderator.CheckText(ctx, app.AccessKey, tt.sub)
			require.NoError(t, err)
			require.NotEmpty(t, v.RequestID)
			require.Equal(t, tt.level, v.RiskLevel)
			require.Equal(t, tt.score, v.Score)
			require.Equal(t, tt.riskType, v.RiskType)
			require.Equal(t, tt.hit, v.HitText)
		})
	}

	logs, err := f.riskLogs.List(ctx, "game1", "")
	require.NoError(t, err)
	require.Len(t, logs, 5)
	for _, l := range logs {
		require.Equal(t, "game1", l.AppID)
	}

	logs, err = f.riskLogs.List(ctx, "", "100")
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, "block", logs[0].Suggestion)

	_, err = f.riskLogs.List(ctx, "", "high")
	require.ErrorIs(t, err, ErrInvalidValue)
}

func TestCheckTextAuthorization(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	app, err := f.catalog.CreateApp(ctx, "game1", "Game", "ops")
	require.NoError(t, err)

	_, err = f.moderator.CheckText(ctx, "", domain.Submission{Text: "x"})
	require.ErrorIs(t, err, ErrMissingField)

	_, err = f.moderator.CheckText(ctx, "0000", domain.Submission{Text: "x"})
	require.ErrorIs(t, err, ErrInvalidAccessKey)

	_, err = f.moderator.CheckText(ctx, app.AccessKey, domain.Submission{AppID: "game2", Text: "x"})
	require.ErrorIs(t, err, ErrInvalidAccessKey)

	v, err := f.moderator.CheckText(ctx, app.AccessKey, domain.Submission{AppID: "game1", Text: "x"})
	require.NoError(t, err)
	require.Equal(t, domain.RiskPass, v.RiskLevel)
}

func TestCheckTextLanguageScope(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	app, err := f.catalog.CreateApp(ctx, "game1", "Game", "ops")
	require.NoError(t, err)

	n, err := f.lists.Create(ctx, NameListInput{
		Name:          "zh words",
		Type:          domain.ListTypeSensitive,
		MatchType:     domain.MatchText,
		Suggest:       domain.SuggestReject,
		RiskType:      100,
		Status:        domain.StatusEnabled,
		Scope:         domain.ScopeGlobal,
		LanguageScope: domain.LanguageSpecific,
		LanguageCodes: []string{"zh", "ZH-tw "},
	}, "ops")
	require.NoError(t, err)
	_, err = f.details.AddBatch(ctx, n.No, []string{"badword"}, "ops")
	require.NoError(t, err)

	for _, tt := range []struct {
		lang string
		want string
	}{
		{"zh", domain.RiskReject},
		{" ZH-TW", domain.RiskReject},
		{"en", domain.RiskPass},
		{"", domain.RiskPass},
	} {
		t.Run(tt.lang, func(t *testing.T) {
			v, err := f.moderator.CheckText(ctx, app.AccessKey, domain.Submission{Text: "a badword", Language: tt.lang})
			require.NoError(t, err)
			require.Equal(t, tt.want, v.RiskLevel)
		})
	}
}

func TestRiskLogPreviewAndChannelScope(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	app, err := f.catalog.CreateApp(ctx, "game1", "Game", "ops")
	require.NoError(t, err)
	ch, err := f.catalog.CreateChannel(ctx, "web", "", "ops")
	require.NoError(t, err)

	in := sensitiveInput("web words")
	in.Scope = domain.ScopeAppChannel
	in.AppIDs = []string{"game1"}
	in.ChannelIDs = []int64{ch.ID}
	n, err := f.lists.Create(ctx, in, "ops")
	require.NoError(t, err)
	_, err = f.details.Add(ctx, n.No, "spoiler", "", "ops")
	require.NoError(t, err)

	long := "spoiler " + strings.Repeat("é", 80)
	v, err := f.moderator.CheckText(ctx, app.AccessKey, domain.Submission{Text: long})
	require.NoError(t, err)
	require.Equal(t, domain.RiskPass, v.RiskLevel, "no channel, no hit")

	f.clock.Advance(time.Second)
	v, err = f.moderator.CheckText(ctx, app.AccessKey, domain.Submission{Text: long, Channel: "1"})
	require.NoError(t, err)
	require.Equal(t, domain.RiskReject, v.RiskLevel)

	logs, err := f.riskLogs.List(ctx, "", "")
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, "1", logs[0].ChannelID)
	require.Equal(t, epoch.Add(time.Second), logs[0].CreatedAt)
	require.Equal(t, previewRunes+1, len([]rune(logs[0].ContentPreview)))
	require.True(t, strings.HasPrefix(logs[0].ContentPreview, "spoiler "))
}
