// internal/app/store/discovery/store.go
package discovery

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

const base = "/api/discovery"

// Store drives network discovery on the backend.
type Store struct {
	c *api.Client
}

func New(c *api.Client) *Store {
	return &Store{c: c}
}

func ipPath(id int) string { return base + "/discovered-ips/" + strconv.Itoa(id) }

// List returns every discovered IP.
func (s *Store) List(ctx context.Context, token string) ([]models.DiscoveredIP, error) {
	return api.GetList[models.DiscoveredIP](ctx, s.c, base+"/discovered-ips", nil, token)
}

// Get returns one discovered IP.
func (s *Store) Get(ctx context.Context, id int, token string) (models.DiscoveredIP, error) {
	return api.GetRecord[models.DiscoveredIP](ctx, s.c, ipPath(id), token)
}

// SetStatus changes the resolution status of a discovered IP.
func (s *Store) SetStatus(ctx context.Context, id int, status, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodPut, ipPath(id)+"/status",
		map[string]string{"status": status}, token)
}

// StartScan starts a full network scan and returns the backend message.
func (s *Store) StartScan(ctx context.Context, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodPost, base+"/start-scan", nil, token)
}

// ScanDetails requests a detailed scan of a single address.
func (s *Store) ScanDetails(ctx context.Context, id int, ip, token string) (string, error) {
	return api.Send(ctx, s.c, http.MethodPost, base+"/scan-ip-details",
		map[string]any{"id": id, "ip": ip}, token)
}
