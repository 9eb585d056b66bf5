package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store/drivers/sqlite"
	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/aussiebroadwan/riskconsole/pkg/jwtx"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "mockapi.db") + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })
	return st
}

// fixture bundles the services of one backend over a fresh store and a
// fake clock.
type fixture struct {
	st        store.Store
	clock     *clockwork.FakeClock
	keys      *jwtx.KeySet
	users     *UserService
	tokens    *TokenService
	catalog   *CatalogService
	lists     *NameListService
	details   *ListDetailService
	moderator *ModerationService
	riskLogs  *RiskLogService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA("test", pemKey)
	require.NoError(t, err)
	keys := jwtx.NewKeySet()
	require.NoError(t, keys.AddSigner(signer))

	st := newTestStore(t)
	clock := clockwork.NewFakeClockAt(epoch)
	return &fixture{
		st:    st,
		clock: clock,
		keys:  keys,
		users: &UserService{Store: st, Clock: clock},
		tokens: &TokenService{
			Signer:     signer,
			Store:      st,
			Clock:      clock,
			Issuer:     "mockapi-test",
			AccessTTL:  30 * time.Minute,
			RefreshTTL: 24 * time.Hour,
		},
		catalog:   &CatalogService{Store: st, Clock: clock},
		lists:     &NameListService{Store: st, Clock: clock},
		details:   &ListDetailService{Store: st, Clock: clock},
		moderator: &ModerationService{Store: st, Clock: clock},
		riskLogs:  &RiskLogService{Store: st},
	}
}
