package sqlite

import (
	"context"
	"database/sql"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
)

type txStore struct {
	tx *sql.Tx
}

func (t *txStore) Commit() error   { return t.tx.Commit() }
func (t *txStore) Rollback() error { return t.tx.Rollback() }

func (t *txStore) Close() error { return nil } // the outer DB stays open

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	// Nested tx not supported; could emulate with SAVEPOINT if needed
	return nil, sql.ErrTxDone
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return sql.ErrTxDone
}

func (t *txStore) Users() store.Users                 { return &usersRepo{q: t.tx} }
func (t *txStore) RefreshTokens() store.RefreshTokens { return &refreshTokensRepo{q: t.tx} }
func (t *txStore) Apps() store.Apps                   { return &appsRepo{q: t.tx} }
func (t *txStore) Channels() store.Channels           { return &channelsRepo{q: t.tx} }
func (t *txStore) NameLists() store.NameLists         { return &nameListsRepo{q: t.tx} }
func (t *txStore) ListDetails() store.ListDetails     { return &listDetailsRepo{q: t.tx} }
func (t *txStore) RiskLogs() store.RiskLogs           { return &riskLogsRepo{q: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // migrations run before any tx
