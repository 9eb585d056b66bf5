package cryptox

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "cryptox-pepper")
	if err != nil {
		panic(err)
	}
	SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func TestHashPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=19456,t=2,p=1$"))
	require.Len(t, strings.Split(hash, "$"), 6)

	other, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, hash, other, "salts must differ")
}

func TestVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("s3cret")
	require.NoError(t, err)

	tests := []struct {
		name     string
		password string
		hash     string
		wantIs   error
		wantErr  string
	}{
		{name: "match", password: "s3cret", hash: hash},
		{name: "wrong password", password: "S3cret", hash: hash, wantIs: ErrPasswordMismatch},
		{name: "empty password", password: "", hash: hash, wantIs: ErrPasswordMismatch},
		{name: "not phc", password: "s3cret", hash: "plain", wantIs: ErrInvalidHash, wantErr: "expected 6 parts"},
		{name: "wrong algorithm", password: "s3cret", hash: "$bcrypt$v=19$m=1,t=1,p=1$aa$bb", wantIs: ErrInvalidHash, wantErr: "not argon2id"},
		{name: "wrong version", password: "s3cret", hash: "$argon2id$v=18$m=1,t=1,p=1$aa$bb", wantIs: ErrInvalidHash, wantErr: "wrong version"},
		{name: "bad params", password: "s3cret", hash: "$argon2id$v=19$x$aa$bb", wantIs: ErrInvalidHash, wantErr: "parameters"},
		{name: "bad salt", password: "s3cret", hash: "$argon2id$v=19$m=1,t=1,p=1$!!$bb", wantIs: ErrInvalidHash, wantErr: "salt"},
		{name: "empty key", password: "s3cret", hash: "$argon2id$v=19$m=1,t=1,p=1$aa$", wantIs: ErrInvalidHash, wantErr: "key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := VerifyPassword(tt.password, tt.hash)
			if tt.wantIs == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tt.wantIs)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestNeedsRehash(t *testing.T) {
	t.Parallel()

	current, err := HashPassword("s3cret")
	require.NoError(t, err)

	// Same password under cheaper parameters.
	weak := passwordHash{params: argonParams{Memory: 1024, Iterations: 1, Parallelism: 1}, salt: make([]byte, saltLength)}
	weak.key = weak.params.derive("s3cret", weak.salt, keyLength)

	short := passwordHash{params: currentParams, salt: make([]byte, 8)}
	short.key = short.params.derive("s3cret", short.salt, keyLength)

	tests := []struct {
		name string
		hash string
		want bool
	}{
		{name: "current", hash: current, want: false},
		{name: "cheaper parameters", hash: weak.String(), want: true},
		{name: "short salt", hash: short.String(), want: true},
		{name: "garbage", hash: "plain", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, NeedsRehash(tt.hash))
		})
	}

	require.NoError(t, VerifyPassword("s3cret", weak.String()), "old hashes still verify")
}

func TestGeneratePassword(t *testing.T) {
	t.Parallel()

	seen := make(map[string]struct{})
	for range 20 {
		pw := GeneratePassword()
		require.Len(t, pw, 26)
		seen[pw] = struct{}{}
	}
	require.Len(t, seen, 20)
}

func TestPepperPersistsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pepper")

	first, err := loadOrGeneratePepper(path)
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0600), info.Mode().Perm())

	second, err := loadOrGeneratePepper(path)
	require.NoError(t, err)
	require.Equal(t, first, second)

	mem, err := loadOrGeneratePepper("")
	require.NoError(t, err)
	require.NotEqual(t, first, mem)
}
