package cryptox_test

import (
	"crypto/ed25519"
	"crypto/x509"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestGenerateEd25519Key(t *testing.T) {
	t.Parallel()

	pemBytes, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	block, _ := pem.Decode(pemBytes)
	require.NotNil(t, block)
	require.Equal(t, "PRIVATE KEY", block.Type)

	parsed, err := x509.ParsePKCS8PrivateKey(block.Bytes)
	require.NoError(t, err)
	key, ok := parsed.(ed25519.PrivateKey)
	require.True(t, ok)
	require.Len(t, key, ed25519.PrivateKeySize)
}

func TestKeyID(t *testing.T) {
	t.Parallel()

	a, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	b, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)

	kid, err := cryptox.KeyID(a)
	require.NoError(t, err)
	require.Len(t, kid, 16)

	again, err := cryptox.KeyID(a)
	require.NoError(t, err)
	require.Equal(t, kid, again)

	other, err := cryptox.KeyID(b)
	require.NoError(t, err)
	require.NotEqual(t, kid, other)

	for name, raw := range map[string][]byte{
		"not pem":    []byte("hello"),
		"wrong type": pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: []byte{1}}),
		"bad der":    pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: []byte{1, 2, 3}}),
	} {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := cryptox.KeyID(raw)
			require.ErrorIs(t, err, cryptox.ErrNotEd25519)
		})
	}
}

func TestLoadOrCreateEd25519Key(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "keys", "signing.pem")

	first, created, err := cryptox.LoadOrCreateEd25519Key(path)
	require.NoError(t, err)
	require.True(t, created)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	second, created, err := cryptox.LoadOrCreateEd25519Key(path)
	require.NoError(t, err)
	require.False(t, created)
	require.Equal(t, first, second)
}

func TestLoadOrCreateEd25519KeyRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "signing.pem")
	require.NoError(t, os.WriteFile(path, []byte("not a key"), 0o600))

	_, _, err := cryptox.LoadOrCreateEd25519Key(path)
	require.ErrorIs(t, err, cryptox.ErrNotEd25519)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "not a key", string(raw), "a bad key file is never overwritten")
}
