package console_test

import (
	"testing"

	"github.com/aussiebroadwan/riskconsole/pkg/consoleapi"
	"github.com/stretchr/testify/require"
)

// TestSeedLoginRefreshLogout walks one session through its lifetime:
// 1. Log in as the seed operator
// 2. Replace the access token with garbage and watch the client refresh it
// 3. Log out and check the refresh cookie no longer works
func TestSeedLoginRefreshLogout(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	client, provider := loginSeed(t, baseURL)
	oldToken := provider.AccessToken()
	require.NotEmpty(t, oldToken)

	provider.SetAccessToken("garbage")
	me, err := client.Me(t.Context())
	require.NoError(t, err, "a rejected token should be refreshed from the cookie")
	require.Equal(t, seedUser, me.Identity)
	require.NotEqual(t, "garbage", provider.AccessToken())

	t.Logf("Access token refreshed transparently")

	require.NoError(t, provider.Logout(t.Context()))
	_, err = client.Me(t.Context())
	require.True(t, consoleapi.IsSessionExpired(err), "after logout the session should be gone, got: %v", err)
}

// TestRegisterAndLogin registers a second operator and logs in with it.
func TestRegisterAndLogin(t *testing.T) {
	baseURL, cleanup := setupContainer(t)
	defer cleanup()

	_, provider := newConsole(baseURL)
	user, err := provider.Register(t.Context(), "Reviewer", "Reviewer123!", "Reviewer One")
	require.NoError(t, err)
	require.Equal(t, "reviewer", user.Identity)

	other, _ := newConsole(baseURL)
	_, err = other.Register(t.Context(), consoleapi.RegisterRequest{Identity: "reviewer", Password: "x"})
	assertAPICode(t, err, consoleapi.CodeParameter, "duplicate register")

	_, err = other.Login(t.Context(), consoleapi.LoginRequest{Identity: seedUser, Password: "wrong"})
	assertAPICode(t, err, consoleapi.CodeUnauthorized, "wrong password")
	require.ErrorIs(t, err, consoleapi.ErrUnauthorized)
}

// TestLoginRateLimit verifies repeated logins for one identity are refused
// once the strict limit is spent.
func TestLoginRateLimit(t *testing.T) {
	baseURL, cleanup := setupContainerWithDefaultRateLimits(t)
	defer cleanup()

	client, _ := newConsole(baseURL)
	var err error
	for range 6 {
		_, err = client.Login(t.Context(), consoleapi.LoginRequest{Identity: seedUser, Password: "wrong"})
	}

	var apiErr *consoleapi.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, 429, apiErr.StatusCode)
}
