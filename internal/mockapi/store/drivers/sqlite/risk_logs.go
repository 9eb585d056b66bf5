package sqlite

import (
	"context"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
)

type riskLogsRepo struct {
	q querier
}

func (r *riskLogsRepo) CreateRiskLog(ctx context.Context, l domain.RiskLog) error {
	_, err := r.q.ExecContext(ctx, `
		INSERT INTO risk_logs (id, app_id, channel_id, risk_type, match_rule, hit_text, suggestion, content_preview, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.ID, l.AppID, l.ChannelID, l.RiskType, l.MatchRule, l.HitText, l.Suggestion, l.ContentPreview, toMillis(l.CreatedAt),
	)
	return mapConstraint(err)
}

func (r *riskLogsRepo) ListRiskLogs(ctx context.Context, f domain.RiskLogFilter) ([]domain.RiskLog, error) {
	query := `SELECT id, app_id, channel_id, risk_type, match_rule, hit_text, suggestion, content_preview, created_at
		FROM risk_logs WHERE 1 = 1`
	var args []any
	if f.AppID != "" {
		query += ` AND app_id = ?`
		args = append(args, f.AppID)
	}
	if f.RiskType != 0 {
		query += ` AND risk_type = ?`
		args = append(args, f.RiskType)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.q.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RiskLog{}
	for rows.Next() {
		var (
			l       domain.RiskLog
			created int64
		)
		if err := rows.Scan(&l.ID, &l.AppID, &l.ChannelID, &l.RiskType, &l.MatchRule,
			&l.HitText, &l.Suggestion, &l.ContentPreview, &created); err != nil {
			return nil, err
		}
		l.CreatedAt = fromMillis(created)
		out = append(out, l)
	}
	return out, rows.Err()
}
