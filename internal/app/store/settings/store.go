// internal/app/store/settings/store.go
package settings

import (
	"context"
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

const scanConfigPath = "/api/settings/scan-config"

// Store reads and saves the automatic scan configuration.
type Store struct {
	c *api.Client
}

func New(c *api.Client) *Store {
	return &Store{c: c}
}

func (s *Store) ScanConfig(ctx context.Context, token string) (models.ScanConfig, error) {
	return api.GetJSON[models.ScanConfig](ctx, s.c, scanConfigPath, nil, token)
}

func (s *Store) SaveScanConfig(ctx context.Context, cfg models.ScanConfig, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodPut, scanConfigPath, cfg, token)
}
