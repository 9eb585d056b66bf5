package service

import (
	"context"
	"errors"
	"strings"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/aussiebroadwan/riskconsole/pkg/cryptox"
	"github.com/jonboulle/clockwork"
)

// CatalogService manages apps and channels.
type CatalogService struct {
	Store store.Store
	Clock clockwork.Clock
}

func (s *CatalogService) ListApps(ctx context.Context) ([]domain.App, error) {
	return s.Store.Apps().ListApps(ctx)
}

func (s *CatalogService) GetApp(ctx context.Context, appID string) (domain.App, error) {
	return s.Store.Apps().GetAppByAppID(ctx, strings.TrimSpace(appID))
}

// CreateApp registers an app and generates its access key.
func (s *CatalogService) CreateApp(ctx context.Context, appID, name, by string) (domain.App, error) {
	appID, name = strings.TrimSpace(appID), strings.TrimSpace(name)
	if err := requireFields("app_id", appID, "name", name, "username", by); err != nil {
		return domain.App{}, err
	}

	key, err := cryptox.GenerateAccessKey()
	if err != nil {
		return domain.App{}, err
	}

	now := clockOrReal(s.Clock).Now()
	app := domain.App{
		AppID:     appID,
		Name:      name,
		AccessKey: key,
		CreatedBy: by,
		UpdatedBy: by,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.Store.Apps().CreateApp(ctx, app)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.App{}, paramErr(ErrDuplicate, "app %s already exists", appID)
		}
		return domain.App{}, err
	}
	app.ID = id
	return app, nil
}

func (s *CatalogService) UpdateApp(ctx context.Context, appID, name, by string) error {
	name = strings.TrimSpace(name)
	if err := requireFields("name", name, "username", by); err != nil {
		return err
	}
	return s.Store.Apps().UpdateAppName(ctx, strings.TrimSpace(appID), name, by, clockOrReal(s.Clock).Now())
}

func (s *CatalogService) DeleteApp(ctx context.Context, appID, by string) error {
	if err := requireFields("username", by); err != nil {
		return err
	}
	return s.Store.Apps().DeleteApp(ctx, strings.TrimSpace(appID), by, clockOrReal(s.Clock).Now())
}

func (s *CatalogService) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	return s.Store.Channels().ListChannels(ctx)
}

func (s *CatalogService) GetChannel(ctx context.Context, id int64) (domain.Channel, error) {
	return s.Store.Channels().GetChannel(ctx, id)
}

func (s *CatalogService) CreateChannel(ctx context.Context, name, memo, by string) (domain.Channel, error) {
	name = strings.TrimSpace(name)
	if err := requireFields("name", name, "username", by); err != nil {
		return domain.Channel{}, err
	}

	now := clockOrReal(s.Clock).Now()
	ch := domain.Channel{
		Name:      name,
		Memo:      strings.TrimSpace(memo),
		CreatedBy: by,
		UpdatedBy: by,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.Store.Channels().CreateChannel(ctx, ch)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Channel{}, paramErr(ErrDuplicate, "channel %s already exists", name)
		}
		return domain.Channel{}, err
	}
	ch.ID = id
	return ch, nil
}

func (s *CatalogService) UpdateChannel(ctx context.Context, id int64, name, memo, by string) error {
	name = strings.TrimSpace(name)
	if err := requireFields("name", name, "username", by); err != nil {
		return err
	}
	err := s.Store.Channels().UpdateChannel(ctx, domain.Channel{
		ID:        id,
		Name:      name,
		Memo:      strings.TrimSpace(memo),
		UpdatedBy: by,
		UpdatedAt: clockOrReal(s.Clock).Now(),
	})
	if errors.Is(err, store.ErrAlreadyExists) {
		return paramErr(ErrDuplicate, "channel %s already exists", name)
	}
	return err
}

func (s *CatalogService) DeleteChannel(ctx context.Context, id int64, by string) error {
	if err := requireFields("username", by); err != nil {
		return err
	}
	return s.Store.Channels().DeleteChannel(ctx, id, by, clockOrReal(s.Clock).Now())
}
