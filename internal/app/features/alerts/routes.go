// internal/app/features/alerts/routes.go
package alerts

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the alert routes (typically under "/alerts").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/actions", h.HandleAction)
	r.Get("/confirm", h.ServeConfirm)
	return r
}
