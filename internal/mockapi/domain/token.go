package domain

import "time"

// RefreshToken models the stored refresh token record in the DB. The token
// itself only ever leaves the server inside the refresh_token cookie.
type RefreshToken struct {
	ID        string
	UserID    string
	TokenHash string // deterministic fingerprint (base64url SHA-256)
	ExpiresAt time.Time
	Revoked   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Session is what login, register and refresh hand back: a signed access
// token for the body and an opaque refresh token for the cookie.
type Session struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
	User             User
}
