// internal/app/features/settings/routes.go
package settings

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the settings routes (typically under "/settings").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/settings/scan", http.StatusSeeOther)
	})
	r.Get("/scan", h.ServeScanConfig)
	r.Post("/scan", h.HandleScanConfig)
	return r
}
