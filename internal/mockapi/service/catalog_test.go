package service

import (
	"testing"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/stretchr/testify/require"
)

func TestAppLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	app, err := f.catalog.CreateApp(ctx, " game1 ", "Game One", "ops")
	require.NoError(t, err)
	require.Equal(t, "game1", app.AppID)
	require.Len(t, app.AccessKey, 32)
	require.Positive(t, app.ID)

	_, err = f.catalog.CreateApp(ctx, "game1", "Again", "ops")
	require.ErrorIs(t, err, ErrDuplicate)
	require.EqualError(t, err, "app game1 already exists")

	_, err = f.catalog.CreateApp(ctx, "game2", "Game Two", "")
	require.EqualError(t, err, "username is required")

	require.NoError(t, f.catalog.UpdateApp(ctx, "game1", "Renamed", "ops"))
	got, err := f.catalog.GetApp(ctx, "game1")
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.Name)
	require.Equal(t, app.AccessKey, got.AccessKey)

	require.ErrorIs(t, f.catalog.UpdateApp(ctx, "missing", "x", "ops"), store.ErrNotFound)

	require.ErrorIs(t, f.catalog.DeleteApp(ctx, "game1", ""), ErrMissingField)
	require.NoError(t, f.catalog.DeleteApp(ctx, "game1", "ops"))
	apps, err := f.catalog.ListApps(ctx)
	require.NoError(t, err)
	require.Empty(t, apps)
}

func TestChannelLifecycle(t *testing.T) {
	t.Parallel()
	f := newFixture(t)
	ctx := t.Context()

	web, err := f.catalog.CreateChannel(ctx, "web", " site ", "ops")
	require.NoError(t, err)
	require.Equal(t, "site", web.Memo)

	app, err := f.catalog.CreateChannel(ctx, "app", "", "ops")
	require.NoError(t, err)

	require.ErrorIs(t, f.catalog.UpdateChannel(ctx, app.ID, "web", "", "ops"), ErrDuplicate)
	require.NoError(t, f.catalog.UpdateChannel(ctx, app.ID, "mobile", "phones", "ops"))

	got, err := f.catalog.GetChannel(ctx, app.ID)
	require.NoError(t, err)
	require.Equal(t, "mobile", got.Name)

	require.NoError(t, f.catalog.DeleteChannel(ctx, web.ID, "ops"))
	_, err = f.catalog.GetChannel(ctx, web.ID)
	require.ErrorIs(t, err, store.ErrNotFound)
}
