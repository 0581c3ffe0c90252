// internal/app/store/devices/store.go
package devices

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

// Store reads and writes inventoried devices through the backend.
type Store struct {
	c *api.Client
}

// New creates a new devices Store.
func New(c *api.Client) *Store {
	return &Store{c: c}
}

func path(id int) string { return "/devices/" + strconv.Itoa(id) }

// List returns devices, filtered by the backend when search is non-empty.
func (s *Store) List(ctx context.Context, search, token string) ([]models.Device, error) {
	var q url.Values
	if search = strings.TrimSpace(search); search != "" {
		q = url.Values{"search": {search}}
	}
	return api.GetList[models.Device](ctx, s.c, "/devices", q, token)
}

// Get returns one device with its lookup identifiers.
func (s *Store) Get(ctx context.Context, id int, token string) (models.Device, error) {
	return api.GetRecord[models.Device](ctx, s.c, path(id), token)
}

// Create posts a new device and returns the backend message.
func (s *Store) Create(ctx context.Context, payload map[string]any, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodPost, "/devices", payload, token)
}

// Update replaces the editable fields of device id.
func (s *Store) Update(ctx context.Context, id int, payload map[string]any, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodPut, path(id), payload, token)
}

// Delete removes device id.
func (s *Store) Delete(ctx context.Context, id int, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodDelete, path(id), nil, token)
}

// Online returns the devices currently reported online. Report rows have no
// actions, so rows without an identity are kept.
func (s *Store) Online(ctx context.Context, token string) ([]models.Device, error) {
	return api.GetRows[models.Device](ctx, s.c, "/api/reports/devices-online", nil, token)
}

// Offline returns the devices currently reported offline.
func (s *Store) Offline(ctx context.Context, token string) ([]models.Device, error) {
	return api.GetRows[models.Device](ctx, s.c, "/api/reports/devices-offline", nil, token)
}
