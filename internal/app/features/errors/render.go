// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/httpnav"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	render(w, r, http.StatusUnauthorized, "Acesso restrito", "Faça login para continuar.", backURL)
}

// RenderBadRequest shows a 400 page with msg.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Requisição inválida", msg, resolve(r, backURL))
}

// RenderForbidden shows a 403 page with msg.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusForbidden, "Acesso negado", msg, resolve(r, backURL))
}

// RenderNotFound shows a 404 page with msg.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Não encontrado", msg, resolve(r, backURL))
}

// RenderServerError shows a 500 page with msg. Callers log the cause first;
// see ErrorLogger.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusInternalServerError, "Erro interno", msg, resolve(r, backURL))
}

// HTMXError answers an HTMX request with status and a plain message the
// client script shows in place; full-page requests get fallback instead.
func HTMXError(w http.ResponseWriter, r *http.Request, status int, msg string, fallback func()) {
	if r.Header.Get("HX-Request") != "true" {
		fallback()
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("HX-Reswap", "none")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}

// HTMXBadRequest is HTMXError with a 400 and the bad request page fallback.
func HTMXBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	HTMXError(w, r, http.StatusBadRequest, msg, func() {
		RenderBadRequest(w, r, msg, backURL)
	})
}

func resolve(r *http.Request, backURL string) string {
	if backURL == "" {
		return httpnav.ResolveBackURL(r, "/dashboard")
	}
	return backURL
}
