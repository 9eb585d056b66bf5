package jwtx_test

import (
	"testing"
	"time"

	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/aussiebroadwan/riskconsole/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "https://mockapi.local"

func newTestSigner(t *testing.T, kid string) jwtx.Signer {
	t.Helper()
	pemKey, err := cryptox.GenerateEd25519Key()
	require.NoError(t, err)
	signer, err := jwtx.NewSignerEdDSA(kid, pemKey)
	require.NoError(t, err)
	return signer
}

func TestEdDSASignAndVerify(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "test-key-eddsa")
	require.NoError(t, signer.Validate())
	require.Equal(t, "EdDSA", signer.Alg())
	require.Equal(t, "test-key-eddsa", signer.KID())

	now := time.Now().UTC()
	claims := jwtx.NewAccessClaims(
		"user-456",
		"eddsa@example.com",
		"EdDSA User",
		[]string{"operator"},
		5*time.Minute,
		exampleIssuer,
		[]string{"console"},
		now,
	)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))
	require.True(t, keyset.IsReady())

	parsed, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, []string{"console"}).Verify(token)
	require.NoError(t, err)

	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.Identity, parsed.Identity)
	require.Equal(t, claims.Name, parsed.Name)
	require.ElementsMatch(t, claims.Roles, parsed.Roles)
	require.Equal(t, jwtx.TypeAccess, parsed.Type)
	require.NotEmpty(t, parsed.ID)
}

func TestEdDSAVerifyFailures(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "k1")
	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	now := time.Now().UTC()
	sign := func(c jwtx.Claims) string {
		tok, err := signer.Sign(c)
		require.NoError(t, err)
		return tok
	}
	valid := jwtx.NewAccessClaims("u", "id", "n", nil, time.Minute, exampleIssuer, nil, now)

	t.Run("wrong issuer", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, "wrong-issuer", nil).Verify(sign(valid))
		require.ErrorIs(t, err, jwtx.ErrIssuer)
	})

	t.Run("unknown key", func(t *testing.T) {
		other := newTestSigner(t, "k2")
		tok, err := other.Sign(valid)
		require.NoError(t, err)

		_, err = jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(tok)
		require.ErrorIs(t, err, jwtx.ErrNoKey)
	})

	t.Run("expired by clock", func(t *testing.T) {
		later := func() time.Time { return now.Add(2 * time.Minute) }
		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil, jwtx.WithClock(later)).Verify(sign(valid))
		require.ErrorIs(t, err, jwtx.ErrExpired)
	})

	t.Run("leeway tolerates skew", func(t *testing.T) {
		later := func() time.Time { return now.Add(70 * time.Second) }
		v := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil, jwtx.WithClock(later), jwtx.WithLeeway(time.Minute))
		_, err := v.Verify(sign(valid))
		require.NoError(t, err)
	})

	t.Run("not an access token", func(t *testing.T) {
		c := valid
		c.Type = "refresh"
		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify(sign(c))
		require.ErrorIs(t, err, jwtx.ErrInvalidClaim)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := jwtx.NewVerifierEdDSA(keyset, exampleIssuer, nil).Verify("not-a-jwt")
		require.ErrorIs(t, err, jwtx.ErrMalformed)
	})
}

func TestEdDSAValidateFailsForInvalidKey(t *testing.T) {
	_, err := jwtx.NewSignerEdDSA("test", []byte("not-a-pem-key"))
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid PEM")
}

func TestEdDSACommonVerifierAdapter(t *testing.T) {
	t.Parallel()

	signer := newTestSigner(t, "test-key")
	keyset := jwtx.NewKeySet()
	require.NoError(t, keyset.AddSigner(signer))

	claims := jwtx.NewAccessClaims("user-123", "a", "A", []string{"admin"}, time.Minute, exampleIssuer, nil, time.Now())
	token, err := signer.Sign(claims)
	require.NoError(t, err)

	var v jwtx.Verifier = jwtx.NewCommonEdDSA(keyset, exampleIssuer, nil)
	got, err := v.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "user-123", got.Subject)
	require.True(t, got.HasRole("admin"))
}
