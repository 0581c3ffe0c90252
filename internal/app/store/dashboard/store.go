// internal/app/store/dashboard/store.go
package dashboard

import (
	"context"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

const base = "/api/dashboard"

// Store reads the dashboard widgets.
type Store struct {
	c *api.Client
}

func New(c *api.Client) *Store {
	return &Store{c: c}
}

func (s *Store) Summary(ctx context.Context, token string) (models.DashboardSummary, error) {
	return api.GetJSON[models.DashboardSummary](ctx, s.c, base+"/summary", nil, token)
}

func (s *Store) RecentAlerts(ctx context.Context, token string) ([]models.Alert, error) {
	return api.GetList[models.Alert](ctx, s.c, base+"/recent-alerts", nil, token)
}

func (s *Store) OSDistribution(ctx context.Context, token string) ([]models.OSDistribution, error) {
	return api.GetJSON[[]models.OSDistribution](ctx, s.c, base+"/os-distribution", nil, token)
}

func (s *Store) StatusDistribution(ctx context.Context, token string) ([]models.StatusDistribution, error) {
	return api.GetJSON[[]models.StatusDistribution](ctx, s.c, base+"/status-distribution", nil, token)
}
