package app

import (
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitSigningKeyKeepsKidAcrossRestarts(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	path := filepath.Join(t.TempDir(), "signing.pem")

	first, _, err := InitSigningKey(path, logger)
	require.NoError(t, err)
	second, keys, err := InitSigningKey(path, logger)
	require.NoError(t, err)
	require.Equal(t, first.KID(), second.KID())
	require.Len(t, second.KID(), 16)
	require.NotNil(t, keys)
}

func TestInitSigningKeyEphemeral(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.DiscardHandler)
	a, _, err := InitSigningKey("", logger)
	require.NoError(t, err)
	b, _, err := InitSigningKey("", logger)
	require.NoError(t, err)
	require.NotEqual(t, a.KID(), b.KID())
}
