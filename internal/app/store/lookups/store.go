// internal/app/store/lookups/store.go
package lookups

import (
	"context"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

// Store reads the device lookup tables.
type Store struct {
	c *api.Client
}

func New(c *api.Client) *Store {
	return &Store{c: c}
}

func (s *Store) Manufacturers(ctx context.Context, token string) ([]models.Manufacturer, error) {
	return api.GetList[models.Manufacturer](ctx, s.c, "/fabricantes", nil, token)
}

func (s *Store) OperatingSystems(ctx context.Context, token string) ([]models.OperatingSystem, error) {
	return api.GetList[models.OperatingSystem](ctx, s.c, "/sistemasoperacionais", nil, token)
}

func (s *Store) DeviceTypes(ctx context.Context, token string) ([]models.DeviceType, error) {
	return api.GetList[models.DeviceType](ctx, s.c, "/tiposdispositivo", nil, token)
}
