// internal/app/store/reports/store.go
package reports

import (
	"context"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

// Store reads the aggregate reports that have no list equivalent.
type Store struct {
	c *api.Client
}

func New(c *api.Client) *Store {
	return &Store{c: c}
}

// OSSummary returns device counts per operating system.
func (s *Store) OSSummary(ctx context.Context, token string) ([]models.OSSummaryRow, error) {
	return api.GetRows[models.OSSummaryRow](ctx, s.c, "/api/reports/os-summary", nil, token)
}
