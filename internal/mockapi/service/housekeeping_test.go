package service

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/stretchr/testify/require"
)

func TestHousekeepingPurgesStaleRefreshTokens(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	u, err := f.users.Register(ctx, "alice", "pw", "")
	require.NoError(t, err)

	revoked, err := f.tokens.Issue(ctx, u)
	require.NoError(t, err)
	require.NoError(t, f.tokens.Revoke(ctx, revoked.RefreshToken))
	live, err := f.tokens.Issue(ctx, u)
	require.NoError(t, err)

	exists := func(opaque string) bool {
		_, err := f.st.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(opaque))
		if err != nil {
			require.ErrorIs(t, err, store.ErrNotFound)
			return false
		}
		return true
	}

	hk := NewHousekeepingService(f.st, slogx.Discard(), f.clock, time.Hour)
	hk.Start()
	defer hk.Stop()

	require.Eventually(t, func() bool { return !exists(revoked.RefreshToken) }, 5*time.Second, 10*time.Millisecond,
		"the first cleanup runs on start")
	require.True(t, exists(live.RefreshToken))

	// The live token expires after a day; a tick past that removes it.
	f.clock.Advance(25 * time.Hour)
	require.Eventually(t, func() bool { return !exists(live.RefreshToken) }, 5*time.Second, 10*time.Millisecond)
}

func TestNewHousekeepingServiceDefaultsInterval(t *testing.T) {
	t.Parallel()

	hk := NewHousekeepingService(nil, slogx.Discard(), nil, 0)
	require.Equal(t, time.Hour, hk.Interval)
	require.NotNil(t, hk.Clock)
}
