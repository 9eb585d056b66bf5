package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
)

type appsRepo struct {
	q querier
}

const appColumns = `id, app_id, name, access_key, created_by, updated_by, created_at, updated_at`

func scanApp(row interface{ Scan(...any) error }) (domain.App, error) {
	var (
		a                domain.App
		created, updated int64
	)
	if err := row.Scan(&a.ID, &a.AppID, &a.Name, &a.AccessKey, &a.CreatedBy, &a.UpdatedBy, &created, &updated); err != nil {
		return domain.App{}, mapNotFound(err)
	}
	a.CreatedAt = fromMillis(created)
	a.UpdatedAt = fromMillis(updated)
	return a, nil
}

func (r *appsRepo) ListApps(ctx context.Context) ([]domain.App, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+appColumns+` FROM apps WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.App{}
	for rows.Next() {
		a, err := scanApp(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *appsRepo) GetAppByAppID(ctx context.Context, appID string) (domain.App, error) {
	return scanApp(r.q.QueryRowContext(ctx,
		`SELECT `+appColumns+` FROM apps WHERE app_id = ? AND deleted_at IS NULL`, appID))
}

func (r *appsRepo) GetAppByAccessKey(ctx context.Context, accessKey string) (domain.App, error) {
	return scanApp(r.q.QueryRowContext(ctx,
		`SELECT `+appColumns+` FROM apps WHERE access_key = ? AND deleted_at IS NULL`, accessKey))
}

func (r *appsRepo) CreateApp(ctx context.Context, a domain.App) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO apps (app_id, name, access_key, created_by, updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.AppID, a.Name, a.AccessKey, a.CreatedBy, a.UpdatedBy, toMillis(a.CreatedAt), toMillis(a.UpdatedAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *appsRepo) UpdateAppName(ctx context.Context, appID, name, by string, at time.Time) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE apps SET name = ?, updated_by = ?, updated_at = ?
		WHERE app_id = ? AND deleted_at IS NULL`,
		name, by, toMillis(at), appID,
	))
}

func (r *appsRepo) DeleteApp(ctx context.Context, appID, by string, at time.Time) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE apps SET deleted_at = ?, updated_by = ?, updated_at = ?
		WHERE app_id = ? AND deleted_at IS NULL`,
		toMillis(at), by, toMillis(at), appID,
	))
}
