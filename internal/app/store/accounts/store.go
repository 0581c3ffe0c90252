// internal/app/store/accounts/store.go
package accounts

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

// ErrNoToken is returned when the backend accepts the credentials but issues
// no token; the console cannot authenticate later requests without one.
var ErrNoToken = errors.New("login response carries no token")

// Store authenticates console users against the backend.
type Store struct {
	c *api.Client
}

func New(c *api.Client) *Store {
	return &Store{c: c}
}

// Login posts the credentials and returns the decoded response.
func (s *Store) Login(ctx context.Context, username, password string) (models.LoginResponse, error) {
	var out models.LoginResponse
	res := s.c.Do(ctx, http.MethodPost, "/login", nil, models.LoginRequest{Username: username, Password: password}, "")
	if err := res.Decode(&out); err != nil {
		return out, err
	}
	if out.Token == "" {
		return out, ErrNoToken
	}
	return out, nil
}
