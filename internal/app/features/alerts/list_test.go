package alerts_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/dalemusser/assetmanager/internal/testutil"
)

// render runs fn and swallows a panic from templates that are not loaded
// in tests; the assertions look at headers, cache and backend calls only.
func render(fn func()) {
	defer func() {
		_ = recover()
	}()
	fn()
}

func TestServeList_ViewOfShownRowUsesCache(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodGet, "/api/alerts", http.StatusOK,
		`[{"ID_Alerta":7,"Severidade":"Alta","StatusAlerta":"Novo","DetalhesTecnicos":"porta 22 aberta"}]`)
	h, cache := newHandler(t, b)

	req := signedIn(httptest.NewRequest(http.MethodGet, "/alerts", nil))
	render(func() { h.ServeList(httptest.NewRecorder(), req) })

	al, ok := cache.Lookup("sid-test", 7)
	if !ok {
		t.Fatal("row 7 not remembered after list")
	}
	if al.DetalhesTecnicos == nil || *al.DetalhesTecnicos != "porta 22 aberta" {
		t.Errorf("DetalhesTecnicos = %v", al.DetalhesTecnicos)
	}

	view := signedIn(testutil.FormRequest("/alerts/actions", url.Values{"action": {"view"}, "id": {"7"}}))
	view.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	render(func() { h.HandleAction(rec, view) })

	if got := rec.Header().Get("HX-Redirect"); got != "" {
		t.Errorf("HX-Redirect = %q, want detail dialog", got)
	}
	if n := b.CallCount(); n != 1 {
		t.Errorf("backend calls = %d, want 1 (list only)", n)
	}
}

func TestServeList_FailureClearsRememberedRows(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodGet, "/api/alerts", http.StatusInternalServerError, `{"message":"falha"}`)
	h, cache := newHandler(t, b)
	cache.Replace("sid-test", []models.Alert{{ID: 7}})

	req := signedIn(httptest.NewRequest(http.MethodGet, "/alerts", nil))
	render(func() { h.ServeList(httptest.NewRecorder(), req) })

	if n := cache.Len("sid-test"); n != 0 {
		t.Fatalf("remembered rows = %d, want 0", n)
	}

	view := signedIn(testutil.FormRequest("/alerts/actions", url.Values{"action": {"view"}, "id": {"7"}}))
	rec := httptest.NewRecorder()
	h.HandleAction(rec, view)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/alerts" {
		t.Errorf("Location = %q, want /alerts", loc)
	}
	flashes := testutil.FlashesAfter(t, h.SM, rec)
	if len(flashes) != 1 || flashes[0].Kind != auth.FlashError {
		t.Fatalf("flashes = %+v, want one error", flashes)
	}
	if flashes[0].Message != "Detalhes do alerta não encontrados. Tente atualizar a lista." {
		t.Errorf("flash = %q", flashes[0].Message)
	}
}
