package jwtx

import (
	"errors"
	"time"
)

// Verifier validates a JWT and gives you back the claims if it's legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrAudience     = errors.New("jwtx: audience mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// VerifierOption configures an EdDSAVerifier.
type VerifierOption func(*EdDSAVerifier)

// WithClock replaces the time source used for exp/nbf checks.
func WithClock(now func() time.Time) VerifierOption {
	return func(v *EdDSAVerifier) { v.now = now }
}

// WithLeeway allows small clock skew when validating exp/nbf.
func WithLeeway(d time.Duration) VerifierOption {
	return func(v *EdDSAVerifier) { v.leeway = d }
}

// EdDSAAdapter a Verifier wrapper for EdDSA.
type EdDSAAdapter struct{ *EdDSAVerifier }

func (a EdDSAAdapter) Verify(token string) (Claims, error) {
	c, err := a.EdDSAVerifier.Verify(token)
	if err != nil {
		return Claims{}, err
	}
	return *c, nil
}

// NewCommonEdDSA returns a Verifier using the EdDSA implementation wrapped
// in the common interface.
func NewCommonEdDSA(keys *KeySet, issuer string, audience []string, opts ...VerifierOption) Verifier {
	return EdDSAAdapter{NewVerifierEdDSA(keys, issuer, audience, opts...)}
}
