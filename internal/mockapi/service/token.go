package service

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/aussiebroadwan/riskconsole/pkg/idx"
	"github.com/aussiebroadwan/riskconsole/pkg/jwtx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/jonboulle/clockwork"
)

// TokenService issues access JWTs and rotates the opaque refresh tokens
// behind the refresh_token cookie.
type TokenService struct {
	Signer     jwtx.Signer
	Store      store.Store
	Clock      clockwork.Clock
	Issuer     string
	Audience   []string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Issue starts a session for u: a fresh access token and a new refresh
// token row.
func (s *TokenService) Issue(ctx context.Context, u domain.User) (*domain.Session, error) {
	now := clockOrReal(s.Clock).Now()

	access, err := s.signAccess(u, now)
	if err != nil {
		return nil, err
	}

	refreshOpaque, rt, err := s.newRefresh(u.ID, now)
	if err != nil {
		return nil, err
	}
	if err := s.Store.RefreshTokens().CreateRefreshToken(ctx, rt); err != nil {
		return nil, err
	}

	return &domain.Session{
		AccessToken:      access,
		RefreshToken:     refreshOpaque,
		RefreshExpiresAt: rt.ExpiresAt,
		User:             u,
	}, nil
}

// Rotate exchanges a refresh token for a new session. The presented token
// is revoked in the same transaction the replacement is stored in, so each
// refresh token works once.
func (s *TokenService) Rotate(ctx context.Context, refreshOpaque string) (*domain.Session, error) {
	if refreshOpaque == "" {
		return nil, ErrInvalidRefresh
	}
	now := clockOrReal(s.Clock).Now()
	l := slogx.FromContext(ctx)

	fp := cryptox.FingerprintToken(refreshOpaque)
	var session *domain.Session

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		rt, err := tx.RefreshTokens().GetRefreshTokenByHash(ctx, fp)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}
		if rt.Revoked || now.After(rt.ExpiresAt) {
			l.Info("refresh token rejected", "token_id", rt.ID, "revoked", rt.Revoked)
			return ErrInvalidRefresh
		}

		u, err := tx.Users().GetUserByID(ctx, rt.UserID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvalidRefresh
			}
			return err
		}

		access, err := s.signAccess(u, now)
		if err != nil {
			return err
		}
		newOpaque, newRT, err := s.newRefresh(u.ID, now)
		if err != nil {
			return err
		}

		if err := tx.RefreshTokens().RevokeRefreshToken(ctx, rt.ID, now); err != nil {
			return err
		}
		if err := tx.RefreshTokens().CreateRefreshToken(ctx, newRT); err != nil {
			return err
		}

		session = &domain.Session{
			AccessToken:      access,
			RefreshToken:     newOpaque,
			RefreshExpiresAt: newRT.ExpiresAt,
			User:             u,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// Revoke invalidates a refresh token. Unknown tokens are not an error;
// logout has nothing left to do for them.
func (s *TokenService) Revoke(ctx context.Context, refreshOpaque string) error {
	if refreshOpaque == "" {
		return nil
	}
	rt, err := s.Store.RefreshTokens().GetRefreshTokenByHash(ctx, cryptox.FingerprintToken(refreshOpaque))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}
	if rt.Revoked {
		return nil
	}
	return s.Store.RefreshTokens().RevokeRefreshToken(ctx, rt.ID, clockOrReal(s.Clock).Now())
}

func (s *TokenService) signAccess(u domain.User, now time.Time) (string, error) {
	claims := jwtx.NewAccessClaims(
		u.ID,
		u.Identity,
		u.DisplayName,
		u.Roles,
		s.AccessTTL,
		s.Issuer,
		s.Audience,
		now,
	)
	return s.Signer.Sign(claims)
}

func (s *TokenService) newRefresh(userID string, now time.Time) (string, domain.RefreshToken, error) {
	opaque, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return "", domain.RefreshToken{}, err
	}
	return opaque, domain.RefreshToken{
		ID:        idx.NewAt(now).String(),
		UserID:    userID,
		TokenHash: cryptox.FingerprintToken(opaque),
		ExpiresAt: now.Add(s.RefreshTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
