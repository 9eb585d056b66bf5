package cryptox

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		size    int
		wantLen int
	}{
		{"128-bit token", TokenSize128, 22},
		{"256-bit token", TokenSize256, 43},
		{"512-bit token", TokenSize512, 86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.Len(t, token, tt.wantLen)

			other, err := GenerateToken(tt.size)
			require.NoError(t, err)
			require.NotEqual(t, token, other)
		})
	}

	t.Run("invalid size", func(t *testing.T) {
		for _, size := range []int{0, -1} {
			token, err := GenerateToken(size)
			require.Error(t, err)
			require.Empty(t, token)
		}
	})
}

func TestFingerprintToken(t *testing.T) {
	t.Parallel()

	a := FingerprintToken("refresh-1")
	require.Equal(t, a, FingerprintToken("refresh-1"))
	require.NotEqual(t, a, FingerprintToken("refresh-2"))
	require.Len(t, a, 43)
}

func TestGenerateAccessKey(t *testing.T) {
	t.Parallel()

	hexKey := regexp.MustCompile(`^[0-9a-f]{32}$`)
	seen := make(map[string]struct{})
	for range 50 {
		key, err := GenerateAccessKey()
		require.NoError(t, err)
		require.Regexp(t, hexKey, key)
		seen[key] = struct{}{}
	}
	require.Len(t, seen, 50)
}
