package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
)

type nameListsRepo struct {
	q querier
}

const nameListColumns = `id, no, name, type, match_rule, match_type, suggest, risk_type, status,
	scope, language_scope, language_codes, created_by, updated_by, created_at, updated_at`

func scanNameList(row interface{ Scan(...any) error }) (domain.NameList, error) {
	var (
		n                domain.NameList
		codes            string
		created, updated int64
	)
	err := row.Scan(&n.ID, &n.No, &n.Name, &n.Type, &n.MatchRule, &n.MatchType, &n.Suggest, &n.RiskType, &n.Status,
		&n.Scope, &n.LanguageScope, &codes, &n.CreatedBy, &n.UpdatedBy, &created, &updated)
	if err != nil {
		return domain.NameList{}, mapNotFound(err)
	}
	n.LanguageCodes = splitList(codes)
	n.CreatedAt = fromMillis(created)
	n.UpdatedAt = fromMillis(updated)
	return n, nil
}

func (r *nameListsRepo) ListNameLists(ctx context.Context) ([]domain.NameList, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+nameListColumns+` FROM name_lists WHERE deleted_at IS NULL ORDER BY id`)
	if err != nil {
		return nil, err
	}

	out := []domain.NameList{}
	for rows.Next() {
		n, err := scanNameList(rows)
		if err != nil {
			_ = rows.Close()
			return nil, err
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	// Relations are read after the cursor is released; inside a Tx there is
	// only one connection to read them on.
	_ = rows.Close()

	for i := range out {
		if err := r.loadRelations(ctx, &out[i]); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *nameListsRepo) getOne(ctx context.Context, where string, arg any) (domain.NameList, error) {
	n, err := scanNameList(r.q.QueryRowContext(ctx,
		`SELECT `+nameListColumns+` FROM name_lists WHERE `+where+` AND deleted_at IS NULL`, arg))
	if err != nil {
		return domain.NameList{}, err
	}
	if err := r.loadRelations(ctx, &n); err != nil {
		return domain.NameList{}, err
	}
	return n, nil
}

func (r *nameListsRepo) GetNameListByID(ctx context.Context, id int64) (domain.NameList, error) {
	return r.getOne(ctx, `id = ?`, id)
}

func (r *nameListsRepo) GetNameListByNo(ctx context.Context, no string) (domain.NameList, error) {
	return r.getOne(ctx, `no = ?`, no)
}

func (r *nameListsRepo) GetNameListByName(ctx context.Context, name string) (domain.NameList, error) {
	return r.getOne(ctx, `name = ?`, name)
}

func (r *nameListsRepo) loadRelations(ctx context.Context, n *domain.NameList) error {
	appRows, err := r.q.QueryContext(ctx,
		`SELECT app_id FROM name_list_apps WHERE list_id = ? ORDER BY app_id`, n.ID)
	if err != nil {
		return err
	}
	n.AppIDs = []string{}
	for appRows.Next() {
		var appID string
		if err := appRows.Scan(&appID); err != nil {
			_ = appRows.Close()
			return err
		}
		n.AppIDs = append(n.AppIDs, appID)
	}
	if err := appRows.Close(); err != nil {
		return err
	}

	chRows, err := r.q.QueryContext(ctx,
		`SELECT channel_id FROM name_list_channels WHERE list_id = ? ORDER BY channel_id`, n.ID)
	if err != nil {
		return err
	}
	defer chRows.Close()

	n.ChannelIDs = []int64{}
	for chRows.Next() {
		var id int64
		if err := chRows.Scan(&id); err != nil {
			return err
		}
		n.ChannelIDs = append(n.ChannelIDs, id)
	}
	return chRows.Err()
}

func (r *nameListsRepo) saveRelations(ctx context.Context, n domain.NameList) error {
	if _, err := r.q.ExecContext(ctx, `DELETE FROM name_list_apps WHERE list_id = ?`, n.ID); err != nil {
		return err
	}
	if _, err := r.q.ExecContext(ctx, `DELETE FROM name_list_channels WHERE list_id = ?`, n.ID); err != nil {
		return err
	}
	for _, appID := range n.AppIDs {
		if _, err := r.q.ExecContext(ctx,
			`INSERT OR IGNORE INTO name_list_apps (list_id, app_id) VALUES (?, ?)`, n.ID, appID); err != nil {
			return err
		}
	}
	for _, chID := range n.ChannelIDs {
		if _, err := r.q.ExecContext(ctx,
			`INSERT OR IGNORE INTO name_list_channels (list_id, channel_id) VALUES (?, ?)`, n.ID, chID); err != nil {
			return err
		}
	}
	return nil
}

func (r *nameListsRepo) CreateNameList(ctx context.Context, n domain.NameList) (int64, error) {
	res, err := r.q.ExecContext(ctx, `
		INSERT INTO name_lists (no, name, type, match_rule, match_type, suggest, risk_type, status,
			scope, language_scope, language_codes, created_by, updated_by, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		n.No, n.Name, n.Type, n.MatchRule, n.MatchType, n.Suggest, n.RiskType, n.Status,
		n.Scope, n.LanguageScope, joinList(n.LanguageCodes), n.CreatedBy, n.UpdatedBy,
		toMillis(n.CreatedAt), toMillis(n.UpdatedAt),
	)
	if err != nil {
		return 0, mapConstraint(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	n.ID = id
	if err := r.saveRelations(ctx, n); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *nameListsRepo) UpdateNameList(ctx context.Context, n domain.NameList) error {
	err := mustAffect(r.q.ExecContext(ctx, `
		UPDATE name_lists SET name = ?, type = ?, match_rule = ?, match_type = ?, suggest = ?,
			risk_type = ?, status = ?, scope = ?, language_scope = ?, language_codes = ?,
			updated_by = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		n.Name, n.Type, n.MatchRule, n.MatchType, n.Suggest,
		n.RiskType, n.Status, n.Scope, n.LanguageScope, joinList(n.LanguageCodes),
		n.UpdatedBy, toMillis(n.UpdatedAt), n.ID,
	))
	if err != nil {
		return err
	}
	return r.saveRelations(ctx, n)
}

func (r *nameListsRepo) SetNameListStatus(ctx context.Context, id int64, status int, by string, at time.Time) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE name_lists SET status = ?, updated_by = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		status, by, toMillis(at), id,
	))
}

func (r *nameListsRepo) DeleteNameList(ctx context.Context, id int64, by string, at time.Time) error {
	return mustAffect(r.q.ExecContext(ctx, `
		UPDATE name_lists SET deleted_at = ?, updated_by = ?, updated_at = ?
		WHERE id = ? AND deleted_at IS NULL`,
		toMillis(at), by, toMillis(at), id,
	))
}
