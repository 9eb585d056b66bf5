package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
	"github.com/jonboulle/clockwork"
)

// HousekeepingService periodically purges refresh tokens that expired or
// were revoked so the table does not grow with every login.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Clock    clockwork.Clock
	Interval time.Duration

	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates the worker. A non-positive interval means
// one hour.
func NewHousekeepingService(st store.Store, logger *slog.Logger, clock clockwork.Clock, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = time.Hour
	}
	return &HousekeepingService{
		Store:    st,
		Logger:   logger,
		Clock:    clockOrReal(clock),
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start runs a cleanup right away and then once per interval until Stop.
func (s *HousekeepingService) Start() {
	ticker := s.Clock.NewTicker(s.Interval)
	go s.run(ticker)
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until an in-progress cleanup has finished.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run(ticker clockwork.Ticker) {
	defer close(s.doneCh)
	defer ticker.Stop()

	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.Chan():
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup deletes stale refresh tokens once.
func (s *HousekeepingService) Cleanup(ctx context.Context) {
	n, err := s.Store.RefreshTokens().DeleteStaleRefreshTokens(ctx, s.Clock.Now())
	if err != nil {
		s.Logger.Error("failed to delete stale refresh tokens", "error", err)
		return
	}
	s.Logger.Debug("housekeeping cleanup completed", "refresh_tokens_deleted", n)
}
