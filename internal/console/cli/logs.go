package cli

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aussiebroadwan/riskconsole/internal/console/forms"
)

const defaultTrendBucket = 10 * time.Minute

func (r *Runner) logsCommand() *cobra.Command {
	var (
		appID    string
		riskType string
		page     int
		bucket   time.Duration
	)
	cmd := &cobra.Command{
		Use:         "logs",
		Short:       "Browse risk logs with a hit trend",
		Args:        r.exactArgs(),
		Annotations: sessionAnnotations(),
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter := forms.RiskLogFilter{AppID: strings.TrimSpace(appID)}
			if riskType != "" {
				v, ok := forms.Lookup(forms.RiskTypes, riskType)
				if !ok {
					return fmt.Errorf("unknown risk type %q", riskType)
				}
				filter.RiskType = strconv.Itoa(v)
			}

			items, err := r.Client.ListRiskLogs(cmd.Context(), filter.Query())
			if err != nil {
				return err
			}
			// Fixture logs are not filtered by anyone else.
			items = filter.Apply(items)
			p := forms.Paginate(items, page, forms.RiskLogPageSize)

			t := newTable(r.Stdout, "TIME", "APP", "CHANNEL", "RISK", "RULE", "HIT", "SUGGESTION", "PREVIEW")
			for _, it := range p.Items {
				t.row(
					forms.FormatDateTime(it.CreatedAt, r.Location),
					it.AppID,
					it.ChannelID,
					forms.Label(forms.RiskTypes, it.RiskType.Int()),
					forms.Label(forms.MatchRules, it.MatchRule.Int()),
					it.HitText,
					it.Suggestion,
					truncate(it.ContentPreview, 40),
				)
			}
			if err := t.flush(); err != nil {
				return err
			}
			r.printf("page %d/%d, %d logs\n", p.Page, p.TotalPages, p.Total)

			points := forms.Trend(items, bucket)
			if len(points) > 0 {
				first, last := points[0].Start, points[len(points)-1].Start
				width := bucket
				if len(points) > 1 {
					// Trend widens the bucket for long spans.
					width = points[1].Start.Sub(first)
				}
				r.printf("trend (%s buckets, %s to %s): %s\n",
					width,
					first.In(r.Location).Format("2006-01-02 15:04"),
					last.In(r.Location).Format("2006-01-02 15:04"),
					forms.Sparkline(points),
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&appID, "app", "", "only hits of this app id")
	cmd.Flags().StringVar(&riskType, "risk-type", "", "only hits of this risk type (label or number)")
	cmd.Flags().IntVar(&page, "page", 1, "page number")
	cmd.Flags().DurationVar(&bucket, "bucket", defaultTrendBucket, "trend bucket width")
	return cmd
}

func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}

func (r *Runner) checkCommand() *cobra.Command {
	form := forms.NewTextCheckForm()
	cmd := &cobra.Command{
		Use:         "check [flags] <text>...",
		Short:       "Run a text moderation check",
		Annotations: sessionAnnotations(),
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Text = strings.Join(args, " ")
			if strings.TrimSpace(form.AccessKey) == "" || strings.TrimSpace(form.Text) == "" {
				return fmt.Errorf("--access-key and the text to check are required")
			}

			res, err := r.Client.CheckText(cmd.Context(), form.Request(r.Now()))
			if err != nil {
				return err
			}

			t := newTable(r.Stdout)
			for _, k := range slices.Sorted(maps.Keys(res)) {
				t.row(k, render(res[k]))
			}
			return t.flush()
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&form.AccessKey, "access-key", "", "access key of the app")
	fs.StringVar(&form.AppID, "app", "", "app id")
	fs.StringVar(&form.Channel, "channel", "", "channel")
	fs.StringVar(&form.Language, "language", "", "language code of the text")
	fs.StringVar(&form.UGCSource, "source", form.UGCSource, "ugc source")
	fs.StringVar(&form.Nickname, "nickname", form.Nickname, "player nickname")
	fs.StringVar(&form.AccountID, "account", form.AccountID, "player account id")
	fs.StringVar(&form.RoleID, "role", form.RoleID, "player role id")
	fs.StringVar(&form.ServerID, "server", form.ServerID, "game server id")
	fs.StringVar(&form.IP, "ip", form.IP, "player ip")
	fs.IntVar(&form.VIPLevel, "vip", form.VIPLevel, "player vip level")
	fs.IntVar(&form.Level, "level", form.Level, "player level")
	return cmd
}

// render prints scalars as is and anything else as JSON.
func render(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64, bool:
		return fmt.Sprint(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	}
}
