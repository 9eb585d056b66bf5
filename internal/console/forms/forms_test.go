package forms_test

import (
	"encoding/json"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/console/forms"
	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/stretchr/testify/require"
)

func TestNameListDefaults(t *testing.T) {
	t.Parallel()

	f := forms.NewNameListForm()
	require.Equal(t, 1, f.Type)
	require.Equal(t, 1, f.MatchRule)
	require.Equal(t, 1, f.MatchType)
	require.Equal(t, 2, f.Suggest)
	require.Equal(t, 300, f.RiskType)
	require.Equal(t, 1, f.Status)
	require.Equal(t, consoleapi.ScopeAppChannel, f.Scope)
	require.Equal(t, consoleapi.LanguageAll, f.LanguageScope)
	require.ErrorIs(t, f.Validate(), forms.ErrNameRequired)
}

func TestScopeTransitions(t *testing.T) {
	t.Parallel()

	f := forms.NewNameListForm()
	require.NoError(t, f.ToggleApp("4001"))
	require.NoError(t, f.ToggleApp("5001"))
	require.NoError(t, f.ToggleChannel(1))

	require.NoError(t, f.SetScope(consoleapi.ScopeApp))
	require.Equal(t, []string{"4001", "5001"}, f.AppIDs)
	require.Empty(t, f.ChannelIDs)

	require.NoError(t, f.ToggleChannel(2))
	require.NoError(t, f.SetScope(consoleapi.ScopeGlobal))
	require.Empty(t, f.AppIDs)
	require.Empty(t, f.ChannelIDs)

	require.ErrorIs(t, f.SetScope("PLANET"), forms.ErrUnknownScope)
	require.Equal(t, consoleapi.ScopeGlobal, f.Scope)
}

func TestToggleLimit(t *testing.T) {
	t.Parallel()

	f := forms.NewNameListForm()
	for i := range forms.MaxScopeTargets {
		require.NoError(t, f.ToggleApp(fmt.Sprint(4000+i)))
		require.NoError(t, f.ToggleChannel(int64(i)))
	}

	require.ErrorIs(t, f.ToggleApp("9999"), forms.ErrTooManyApps)
	require.ErrorIs(t, f.ToggleChannel(99), forms.ErrTooManyChannels)
	require.Len(t, f.AppIDs, forms.MaxScopeTargets)

	// Deselecting is always allowed and frees a slot.
	require.NoError(t, f.ToggleApp("4002"))
	require.NotContains(t, f.AppIDs, "4002")
	require.NoError(t, f.ToggleApp("9999"))
	require.Contains(t, f.AppIDs, "9999")
}

func TestLanguageCodes(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"en", "zh", "pt-br"}, forms.ParseLanguageCodes(" EN, zh ,,PT-BR, "))
	require.Nil(t, forms.ParseLanguageCodes(" , "))

	f := forms.NewNameListForm()
	require.NoError(t, f.SetLanguageScope(consoleapi.LanguageSpecific))
	f.SetLanguageCodes("en,ja")
	require.Equal(t, []string{"en", "ja"}, f.LanguageCodes)

	require.NoError(t, f.SetLanguageScope(consoleapi.LanguageAll))
	require.Empty(t, f.LanguageCodes)
	require.ErrorIs(t, f.SetLanguageScope("SOME"), forms.ErrUnknownLanguage)
}

func TestPayloadFromEdit(t *testing.T) {
	t.Parallel()

	f := forms.FromNameList(consoleapi.NameList{
		ID:        7,
		Name:      " ads ",
		Type:      1,
		Scope:     consoleapi.ScopeApp,
		AppIDs:    []string{"4001"},
		RiskType:  300,
		MatchRule: 2,
	})
	require.Equal(t, consoleapi.LanguageAll, f.LanguageScope)

	p := f.Payload("alice")
	require.Equal(t, "ads", p.Name)
	require.Equal(t, "alice", p.Username)
	require.Equal(t, []string{"4001"}, p.AppIDs)

	raw, err := json.Marshal(p)
	require.NoError(t, err)
	require.Contains(t, string(raw), `"channel_ids":[]`)

	// The payload is a copy: editing the form afterwards does not leak.
	require.NoError(t, f.ToggleApp("5001"))
	require.Equal(t, []string{"4001"}, p.AppIDs)
}

func TestPaginate(t *testing.T) {
	t.Parallel()

	items := make([]int, 20)
	for i := range items {
		items[i] = i + 1
	}

	p := forms.Paginate(items, 3, forms.RiskLogPageSize)
	require.Equal(t, []int{17, 18, 19, 20}, p.Items)
	require.Equal(t, 3, p.TotalPages)
	require.True(t, p.CanPrev)
	require.False(t, p.CanNext)

	p = forms.Paginate(items, 1, forms.RiskLogPageSize)
	require.Len(t, p.Items, 8)
	require.False(t, p.CanPrev)
	require.True(t, p.CanNext)

	p = forms.Paginate(items, 9, forms.RiskLogPageSize)
	require.Empty(t, p.Items)

	empty := forms.Paginate([]int(nil), 1, forms.NameListPageSize)
	require.Equal(t, 1, empty.TotalPages)
	require.False(t, empty.CanNext)
	require.False(t, empty.CanPrev)
}

func TestPaginateFarPastTheEnd(t *testing.T) {
	t.Parallel()

	items := make([]int, 20)
	for _, page := range []int{4, math.MaxInt / 4, math.MaxInt} {
		t.Run(fmt.Sprint(page), func(t *testing.T) {
			p := forms.Paginate(items, page, forms.RiskLogPageSize)
			require.Empty(t, p.Items)
			require.Equal(t, 3, p.TotalPages)
			require.False(t, p.CanNext)
			require.True(t, p.CanPrev)
		})
	}
}

func TestFilters(t *testing.T) {
	t.Parallel()

	lists := []consoleapi.NameList{
		{Name: "a", Scope: consoleapi.ScopeGlobal, Status: 1},
		{Name: "b", Scope: consoleapi.ScopeApp, Status: 0},
		{Name: "c", Scope: consoleapi.ScopeGlobal, Status: 0},
	}
	got := forms.NameListFilter{Scope: consoleapi.ScopeGlobal, Status: "0"}.Apply(lists)
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].Name)
	require.Len(t, forms.NameListFilter{}.Apply(lists), 3)

	logs := consoleapi.MockRiskLogs(time.Now())
	byApp := forms.RiskLogFilter{AppID: "4001"}.Apply(logs)
	require.Len(t, byApp, 12)
	byBoth := forms.RiskLogFilter{AppID: "4001", RiskType: "300"}.Apply(logs)
	require.Len(t, byBoth, 4)
}

func TestTrend(t *testing.T) {
	t.Parallel()

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	logs := []consoleapi.RiskLogItem{
		{CreatedAt: base.Add(30 * time.Second).Format(time.RFC3339)},
		{CreatedAt: base.Add(3 * time.Minute).Format(time.RFC3339)},
		{CreatedAt: base.Format(time.RFC3339)},
		{CreatedAt: "yesterday"},
	}

	points := forms.Trend(logs, time.Minute)
	require.Len(t, points, 4)
	require.Equal(t, base, points[0].Start)
	require.Equal(t, []int{2, 0, 0, 1}, []int{points[0].Count, points[1].Count, points[2].Count, points[3].Count})
	require.Equal(t, "█  ▄", forms.Sparkline(points))

	require.Nil(t, forms.Trend(nil, time.Minute))
}

func TestTrendWideSpan(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)
	logs := []consoleapi.RiskLogItem{
		{CreatedAt: "1970-01-01T00:00:00Z"},
		{CreatedAt: now.Format(time.RFC3339)},
		{CreatedAt: now.Add(-time.Second).Format(time.RFC3339)},
	}

	points := forms.Trend(logs, time.Second)
	require.LessOrEqual(t, len(points), forms.MaxTrendPoints)
	require.Equal(t, 1, points[0].Count)
	require.Equal(t, 2, points[len(points)-1].Count)

	total := 0
	for _, p := range points {
		total += p.Count
	}
	require.Equal(t, 3, total)
}

func TestFormatDateTime(t *testing.T) {
	t.Parallel()

	require.Equal(t, "2025-03-01 12:05", forms.FormatDateTime("2025-03-01T12:05:59.123Z", time.UTC))
	require.Equal(t, "2025-03-01 20:05", forms.FormatDateTime("2025-03-01 12:05:00", time.FixedZone("CST", 8*3600)))
	require.Empty(t, forms.FormatDateTime("", time.UTC))
	require.Empty(t, forms.FormatDateTime("not a date", time.UTC))
}

func TestTextCheckRequest(t *testing.T) {
	t.Parallel()

	f := forms.NewTextCheckForm()
	f.AccessKey = "  key  "
	f.AppID = "4001"
	f.Text = "hello"

	now := time.UnixMilli(1700000000123)
	req := f.Request(now)
	require.Equal(t, "key", req.AccessKey)
	require.Equal(t, "text", req.UGCSource)
	require.Equal(t, int64(1700000000123), req.Data.Timestamp)
	require.Equal(t, "test_user", req.Data.Nickname)
	require.Equal(t, "10001", req.Data.AccountID)
	require.Equal(t, "r001", req.Data.RoleID)
	require.Equal(t, "s001", req.Data.ServerID)
	require.Equal(t, "127.0.0.1", req.Data.IP)
	require.Equal(t, 1, req.Data.Level)
	require.Nil(t, req.Data.TokenID)
}

func TestLabels(t *testing.T) {
	t.Parallel()

	require.Equal(t, "ads", forms.Label(forms.RiskTypes, 300))
	require.Equal(t, "42", forms.Label(forms.RiskTypes, 42))

	v, ok := forms.Lookup(forms.Suggestions, "review")
	require.True(t, ok)
	require.Equal(t, 2, v)

	v, ok = forms.Lookup(forms.MatchTypes, "6")
	require.True(t, ok)
	require.Equal(t, 6, v)

	_, ok = forms.Lookup(forms.MatchTypes, "5")
	require.False(t, ok)
}
