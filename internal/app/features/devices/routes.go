// internal/app/features/devices/routes.go
package devices

import (
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the device routes under the base path (typically "/devices"
// from bootstrap). Reads are open like the rest of the console; every
// handler that forwards a change checks for the backend token itself so an
// expired session gets the login redirect and flash.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	// LIST (+ HTMX table refresh)
	r.Get("/", h.ServeList)

	// CREATE
	r.Get("/new", h.ServeNew)
	r.Post("/", h.HandleCreate)

	// Row actions and their confirmation page
	r.Post("/actions", h.HandleAction)
	r.Get("/confirm", h.ServeConfirm)

	// VIEW / EDIT
	r.Get("/{id}", h.ServeView)
	r.Get("/{id}/edit", h.ServeEdit)
	r.Post("/{id}/edit", h.HandleEdit)

	return r
}
