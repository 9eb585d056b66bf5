package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface of the development backend. It
// exposes sub-repositories so a Tx can hand out the same repos bound to the
// transaction.
type Store interface {
	Users() Users
	RefreshTokens() RefreshTokens
	Apps() Apps
	Channels() Channels
	NameLists() NameLists
	ListDetails() ListDetails
	RiskLogs() RiskLogs

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByIdentity expects the identity already normalized.
	GetUserByIdentity(ctx context.Context, identity string) (domain.User, error)

	// CreateUser fails with ErrAlreadyExists when the identity is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// UpdatePasswordHash fails with ErrNotFound for an unknown id.
	UpdatePasswordHash(ctx context.Context, id, hash string, at time.Time) error

	IsEmpty(ctx context.Context) (bool, error)
}

type RefreshTokens interface {
	CreateRefreshToken(ctx context.Context, t domain.RefreshToken) error

	// GetRefreshTokenByHash returns the token by its fingerprint, revoked or not.
	GetRefreshTokenByHash(ctx context.Context, hash string) (domain.RefreshToken, error)

	RevokeRefreshToken(ctx context.Context, id string, at time.Time) error

	// DeleteStaleRefreshTokens purges tokens that expired before now or were
	// revoked, returning how many rows went.
	DeleteStaleRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

// Apps and the catalog repos below only ever see rows that are not
// soft-deleted.
type Apps interface {
	ListApps(ctx context.Context) ([]domain.App, error)
	GetAppByAppID(ctx context.Context, appID string) (domain.App, error)
	GetAppByAccessKey(ctx context.Context, accessKey string) (domain.App, error)
	CreateApp(ctx context.Context, a domain.App) (int64, error)
	UpdateAppName(ctx context.Context, appID, name, by string, at time.Time) error
	DeleteApp(ctx context.Context, appID, by string, at time.Time) error
}

type Channels interface {
	ListChannels(ctx context.Context) ([]domain.Channel, error)
	GetChannel(ctx context.Context, id int64) (domain.Channel, error)
	CreateChannel(ctx context.Context, c domain.Channel) (int64, error)
	UpdateChannel(ctx context.Context, c domain.Channel) error
	DeleteChannel(ctx context.Context, id int64, by string, at time.Time) error
}

type NameLists interface {
	ListNameLists(ctx context.Context) ([]domain.NameList, error)
	GetNameListByID(ctx context.Context, id int64) (domain.NameList, error)
	GetNameListByNo(ctx context.Context, no string) (domain.NameList, error)
	GetNameListByName(ctx context.Context, name string) (domain.NameList, error)

	// CreateNameList stores the list with its app and channel relations.
	CreateNameList(ctx context.Context, n domain.NameList) (int64, error)

	// UpdateNameList rewrites the list and replaces its relations.
	UpdateNameList(ctx context.Context, n domain.NameList) error

	SetNameListStatus(ctx context.Context, id int64, status int, by string, at time.Time) error
	DeleteNameList(ctx context.Context, id int64, by string, at time.Time) error
}

type ListDetails interface {
	GetListDetail(ctx context.Context, id int64) (domain.ListDetail, error)

	// SearchListDetails matches text as a substring.
	SearchListDetails(ctx context.Context, text string) ([]domain.ListDetail, error)

	ListDetailsByList(ctx context.Context, listID int64) ([]domain.ListDetail, error)
	GetListDetailByText(ctx context.Context, listID int64, text string) (domain.ListDetail, error)
	CreateListDetail(ctx context.Context, d domain.ListDetail) (int64, error)
	UpdateListDetail(ctx context.Context, d domain.ListDetail) error
	DeleteListDetail(ctx context.Context, id int64, by string, at time.Time) error

	// DeleteListDetailsByList soft-deletes every detail of a list.
	DeleteListDetailsByList(ctx context.Context, listID int64, by string, at time.Time) error
}

type RiskLogs interface {
	CreateRiskLog(ctx context.Context, l domain.RiskLog) error

	// ListRiskLogs returns matching logs, newest first.
	ListRiskLogs(ctx context.Context, f domain.RiskLogFilter) ([]domain.RiskLog, error)
}
