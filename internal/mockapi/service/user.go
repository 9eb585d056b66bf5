package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/aussiebroadwan/riskconsole/pkg/idx"
	"github.com/aussiebroadwan/riskconsole/pkg/slogx"
	"github.com/jonboulle/clockwork"
)

type UserService struct {
	Store store.Store
	Clock clockwork.Clock
}

// NormalizeIdentity is how identities are compared and stored.
func NormalizeIdentity(identity string) string {
	return strings.ToLower(strings.TrimSpace(identity))
}

// Authenticate checks a password login. Unknown identities and wrong
// passwords fail the same way.
func (s *UserService) Authenticate(ctx context.Context, identity, password string) (domain.User, error) {
	identity = NormalizeIdentity(identity)
	if identity == "" || password == "" {
		return domain.User{}, ErrInvalidCredentials
	}

	u, err := s.Store.Users().GetUserByIdentity(ctx, identity)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidCredentials
		}
		return domain.User{}, err
	}
	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		slogx.FromContext(ctx).Info("login failed", "identity", identity)
		return domain.User{}, ErrInvalidCredentials
	}
	if cryptox.NeedsRehash(u.PasswordHash) {
		s.rehash(ctx, &u, password)
	}
	return u, nil
}

// rehash upgrades a stored hash to the current parameters. A failure is
// logged and the login still succeeds.
func (s *UserService) rehash(ctx context.Context, u *domain.User, password string) {
	log := slogx.FromContext(ctx)
	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Warn("password rehash failed", "user_id", u.ID, "err", err)
		return
	}
	now := clockOrReal(s.Clock).Now()
	if err := s.Store.Users().UpdatePasswordHash(ctx, u.ID, hash, now); err != nil {
		log.Warn("password rehash failed", "user_id", u.ID, "err", err)
		return
	}
	u.PasswordHash, u.UpdatedAt = hash, now
	log.Info("password rehashed", "user_id", u.ID)
}

// Register creates an operator. Every operator is an admin of the
// development backend; the display name defaults to the identity.
func (s *UserService) Register(ctx context.Context, identity, password, displayName string) (domain.User, error) {
	identity = NormalizeIdentity(identity)
	if err := requireFields("identity", identity, "password", password); err != nil {
		return domain.User{}, err
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		displayName = identity
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := clockOrReal(s.Clock).Now()
	u := domain.User{
		ID:           idx.NewAt(now).String(),
		Identity:     identity,
		DisplayName:  displayName,
		PasswordHash: hash,
		Roles:        []string{domain.RoleAdmin},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, u); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.User{}, paramErr(ErrDuplicate, "identity %s is already registered", identity)
		}
		return domain.User{}, err
	}
	return u, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}

// EnsureSeedUser registers identity when no operator exists yet.
func (s *UserService) EnsureSeedUser(ctx context.Context, identity, password string) (bool, error) {
	if NormalizeIdentity(identity) == "" || password == "" {
		return false, nil
	}
	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil || !empty {
		return false, err
	}
	if _, err := s.Register(ctx, identity, password, ""); err != nil {
		return false, err
	}
	return true, nil
}
