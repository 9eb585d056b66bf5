package forms

import (
	"slices"
	"strings"
	"time"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
)

// TrendPoint counts the hits that fell in [Start, Start+bucket).
type TrendPoint struct {
	Start time.Time
	Count int
}

// MaxTrendPoints bounds the length of a trend series.
const MaxTrendPoints = 512

// Trend buckets risk logs by created_at, oldest bucket first. Empty buckets
// between the first and last hit are kept so the series is continuous.
// Entries whose timestamp does not parse are skipped. When the hits span more
// than MaxTrendPoints buckets, bucket is doubled until they fit.
func Trend(logs []consoleapi.RiskLogItem, bucket time.Duration) []TrendPoint {
	if bucket <= 0 {
		bucket = time.Minute
	}

	var raw []time.Time
	for _, it := range logs {
		if ts, ok := ParseTime(it.CreatedAt); ok {
			raw = append(raw, ts)
		}
	}
	if len(raw) == 0 {
		return nil
	}
	slices.SortFunc(raw, time.Time.Compare)

	span := raw[len(raw)-1].Sub(raw[0])
	for span/bucket >= MaxTrendPoints-1 {
		bucket *= 2
	}

	stamps := make([]time.Time, len(raw))
	for i, ts := range raw {
		stamps[i] = ts.Truncate(bucket)
	}

	first, last := stamps[0], stamps[len(stamps)-1]
	points := make([]TrendPoint, int(last.Sub(first)/bucket)+1)
	for i := range points {
		points[i].Start = first.Add(time.Duration(i) * bucket)
	}
	for _, ts := range stamps {
		points[int(ts.Sub(first)/bucket)].Count++
	}
	return points
}

var sparkBars = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders the counts as a one-line bar chart.
func Sparkline(points []TrendPoint) string {
	peak := 0
	for _, p := range points {
		peak = max(peak, p.Count)
	}

	var b strings.Builder
	for _, p := range points {
		if peak == 0 || p.Count == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(sparkBars[(p.Count*len(sparkBars)-1)/peak])
	}
	return b.String()
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseTime parses the timestamp formats the backend emits. Values without a
// zone are read as UTC.
func ParseTime(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// FormatDateTime renders s as "YYYY-MM-DD HH:MM" in loc, or "" when s does
// not parse.
func FormatDateTime(s string, loc *time.Location) string {
	ts, ok := ParseTime(s)
	if !ok {
		return ""
	}
	if loc == nil {
		loc = time.Local
	}
	return ts.In(loc).Format("2006-01-02 15:04")
}
