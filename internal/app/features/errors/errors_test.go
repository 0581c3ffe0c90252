package errors_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
)

func TestHTMXError_HTMXRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/devices/5", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()

	called := false
	uierrors.HTMXError(rec, req, http.StatusNotFound, "Dispositivo não encontrado.", func() { called = true })

	if called {
		t.Error("fallback should not run for HTMX requests")
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if got := rec.Body.String(); got != "Dispositivo não encontrado." {
		t.Errorf("body = %q", got)
	}
	if rec.Header().Get("HX-Reswap") != "none" {
		t.Error("expected HX-Reswap: none")
	}
}

func TestHTMXError_FullPageUsesFallback(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/devices/5", nil)
	rec := httptest.NewRecorder()

	called := false
	uierrors.HTMXError(rec, req, http.StatusNotFound, "x", func() {
		called = true
		rec.WriteHeader(http.StatusTeapot)
	})

	if !called {
		t.Fatal("fallback was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want fallback status", rec.Code)
	}
}
