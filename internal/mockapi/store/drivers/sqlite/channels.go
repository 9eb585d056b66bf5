package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
)

type channelsRepo struct {
	q querier
}

const channelColumns = `id, name, memo, created_by, updated_by, created_at, updated_at`

func scanChannel(row interface{ Scan(...any) error }) (domain.Channel, error) {
	var (
		c                domain.Channel
		created, updated int64
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Memo, &c.CreatedBy, &c.UpdatedBy, &created, &updated); err != nil {
		return domain.Channel{}, mapNotFound(err)
	}
	c.CreatedAt = fromMillis(created)
	c.UpdatedAt = fromMillis(updated)
	return c, nil
}

func (r *channelsRepo) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Channel{}
	for rows.Next() {
		c, err := scanChannel(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *channelsRepo) GetChannel(ctx context.Context, id int64) (domain.Channel, error) {
	return scanChannel(r.q.QueryRowContext(ctx,
		`SELECT `+channelColumns+` FROM channels WHERE id = ? AND deleted_at IS NULL`, id))
}

func (r *channelsRepo) CreateChannel(ctx context.Context, c domain.Channel) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO channels (name, memo, created_by, updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.Name, c.Memo, c.CreatedBy, c.UpdatedBy, toMillis(c.CreatedAt), toMillis(c.UpdatedAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *channelsRepo) UpdateChannel(ctx context.Context, c domain.Channel) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE channels SET name = ?, memo = ?, updated_by = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		c.Name, c.Memo, c.UpdatedBy, toMillis(c.UpdatedAt), c.ID,
	))
}

func (r *channelsRepo) DeleteChannel(ctx context.Context, id int64, by string, at time.Time) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE channels SET deleted_at = ?, updated_by = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		toMillis(at), by, toMillis(at), id,
	))
}
