package service

import (
	"context"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/riskconsole/internal/mockapi/domain"
	"github.com/aussiebroadwan/riskconsole/internal/mockapi/store"
)

type RiskLogService struct {
	Store store.Store
}

// List returns the recorded hits, newest first. riskType is the query
// string value; empty means any.
func (s *RiskLogService) List(ctx context.Context, appID, riskType string) ([]domain.RiskLog, error) {
	f := domain.RiskLogFilter{AppID: strings.TrimSpace(appID)}
	if rt := strings.TrimSpace(riskType); rt != "" {
		n, err := strconv.Atoi(rt)
		if err != nil {
			return nil, paramErr(ErrInvalidValue, "risk_type must be a number")
		}
		f.RiskType = n
	}
	return s.Store.RiskLogs().ListRiskLogs(ctx, f)
}
