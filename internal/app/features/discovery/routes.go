// internal/app/features/discovery/routes.go
package discovery

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the discovery routes (typically under "/discovery").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeList)
	r.Post("/scan", h.HandleScan)
	r.Post("/actions", h.HandleAction)
	r.Get("/confirm", h.ServeConfirm)
	return r
}
