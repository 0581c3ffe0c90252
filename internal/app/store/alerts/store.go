// internal/app/store/alerts/store.go
package alerts

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

// Store reads alerts and changes their workflow status.
type Store struct {
	c *api.Client
}

func New(c *api.Client) *Store {
	return &Store{c: c}
}

// List returns all alerts, newest first as ordered by the backend.
func (s *Store) List(ctx context.Context, token string) ([]models.Alert, error) {
	return api.GetList[models.Alert](ctx, s.c, "/api/alerts", nil, token)
}

// SetStatus moves alert id to status ("Lido", "Resolvido").
func (s *Store) SetStatus(ctx context.Context, id int, status, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodPut, "/api/alerts/"+strconv.Itoa(id)+"/status",
		map[string]string{"status": status}, token)
}
