package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
)

type listDetailsRepo struct {
	q querier
}

const listDetailSelect = `
	SELECT d.id, d.list_id, l.no, d.text, d.memo, d.created_by, d.updated_by, d.created_at, d.updated_at
	FROM list_details d JOIN name_lists l ON l.id = d.list_id
	WHERE d.deleted_at IS NULL AND l.deleted_at IS NULL`

func scanListDetail(row interface{ Scan(...any) error }) (domain.ListDetail, error) {
	var (
		d                domain.ListDetail
		created, updated int64
	)
	if err := row.Scan(&d.ID, &d.ListID, &d.ListNo, &d.Text, &d.Memo, &d.CreatedBy, &d.UpdatedBy, &created, &updated); err != nil {
		return domain.ListDetail{}, mapNotFound(err)
	}
	d.CreatedAt = fromMillis(created)
	d.UpdatedAt = fromMillis(updated)
	return d, nil
}

func collectListDetails(rows *sql.Rows, err error) ([]domain.ListDetail, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.ListDetail{}
	for rows.Next() {
		d, err := scanListDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *listDetailsRepo) GetListDetail(ctx context.Context, id int64) (domain.ListDetail, error) {
	return scanListDetail(r.q.QueryRowContext(ctx, listDetailSelect+` AND d.id = ?`, id))
}

func (r *listDetailsRepo) SearchListDetails(ctx context.Context, text string) ([]domain.ListDetail, error) {
	return collectListDetails(r.q.QueryContext(ctx,
		listDetailSelect+` AND instr(d.text, ?) > 0 ORDER BY d.id`, text))
}

func (r *listDetailsRepo) ListDetailsByList(ctx context.Context, listID int64) ([]domain.ListDetail, error) {
	return collectListDetails(r.q.QueryContext(ctx,
		listDetailSelect+` AND d.list_id = ? ORDER BY d.id`, listID))
}

func (r *listDetailsRepo) GetListDetailByText(ctx context.Context, listID int64, text string) (domain.ListDetail, error) {
	return scanListDetail(r.q.QueryRowContext(ctx,
		listDetailSelect+` AND d.list_id = ? AND d.text = ?`, listID, text))
}

func (r *listDetailsRepo) CreateListDetail(ctx context.Context, d domain.ListDetail) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO list_details (list_id, text, memo, created_by, updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		d.ListID, d.Text, d.Memo, d.CreatedBy, d.UpdatedBy, toMillis(d.CreatedAt), toMillis(d.UpdatedAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *listDetailsRepo) UpdateListDetail(ctx context.Context, d domain.ListDetail) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE list_details SET text = ?, memo = ?, updated_by = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		d.Text, d.Memo, d.UpdatedBy, toMillis(d.UpdatedAt), d.ID,
	))
}

func (r *listDetailsRepo) DeleteListDetail(ctx context.Context, id int64, by string, at time.Time) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE list_details SET deleted_at = ?, updated_by = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		toMillis(at), by, toMillis(at), id,
	))
}

func (r *listDetailsRepo) DeleteListDetailsByList(ctx context.Context, listID int64, by string, at time.Time) error {
	_, err := r.q.ExecContext(ctx, `
		UPDATE list_details SET deleted_at = ?, updated_by = ?, updated_at = ?
		WHERE list_id = ? AND deleted_at IS NULL`,
		toMillis(at), by, toMillis(at), listID,
	)
	return err
}
