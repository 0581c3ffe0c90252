package devices_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/features/devices"
	devicestore "github.com/dalemusser/assetmanager/internal/app/store/devices"
	discoverystore "github.com/dalemusser/assetmanager/internal/app/store/discovery"
	lookupstore "github.com/dalemusser/assetmanager/internal/app/store/lookups"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/testutil"
	"go.uber.org/zap"
)

func newHandler(t *testing.T, b *testutil.Backend) *devices.Handler {
	t.Helper()
	c := b.Client(t)
	return devices.NewHandler(
		devicestore.New(c),
		lookupstore.New(c),
		discoverystore.New(c),
		nil,
		actions.NewGuard(),
		testutil.NewSessionManager(t),
		nil,
		nil,
		zap.NewNop(),
	)
}

func signedIn(r *http.Request) *http.Request {
	r = auth.WithTestSessionID(r, "sid-test")
	return auth.WithTestUser(r, testutil.AdminUser())
}

func TestHandleAction_DeleteUnconfirmedMakesNoRequest(t *testing.T) {
	b := testutil.NewBackend(t)
	h := newHandler(t, b)

	req := signedIn(testutil.FormRequest("/devices/actions", url.Values{"action": {"delete"}, "id": {"5"}}))
	rec := httptest.NewRecorder()
	h.HandleAction(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/devices/confirm?action=delete&id=5" {
		t.Errorf("Location = %q", loc)
	}
	if n := b.CallCount(); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestHandleAction_DeleteWithoutTokenRedirectsToLogin(t *testing.T) {
	b := testutil.NewBackend(t)
	h := newHandler(t, b)

	req := testutil.FormRequest("/devices/actions", url.Values{"action": {"delete"}, "id": {"5"}, "confirm": {"yes"}})
	rec := httptest.NewRecorder()
	h.HandleAction(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
	if n := b.CallCount(); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestHandleAction_DeleteConfirmed(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodDelete, "/devices/5", http.StatusOK, `{"message":"Dispositivo removido"}`)
	h := newHandler(t, b)

	form := url.Values{"action": {"delete"}, "id": {"5"}, "confirm": {"yes"}, "search": {"srv"}}
	req := signedIn(testutil.FormRequest("/devices/actions", form))
	rec := httptest.NewRecorder()
	h.HandleAction(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/devices?search=srv" {
		t.Errorf("Location = %q, want the filtered list", loc)
	}
	calls := b.Calls()
	if len(calls) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(calls))
	}
	if calls[0].Authorization != "Bearer test-token" {
		t.Errorf("Authorization = %q", calls[0].Authorization)
	}
}

func TestHandleAction_DeleteInFlightIsRejected(t *testing.T) {
	b := testutil.NewBackend(t)
	arrived := make(chan struct{})
	release := make(chan struct{})
	b.Handle(http.MethodDelete, "/devices/5", func(w http.ResponseWriter, r *http.Request) {
		close(arrived)
		<-release
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"message":"ok"}`))
	})
	h := newHandler(t, b)

	form := url.Values{"action": {"delete"}, "id": {"5"}, "confirm": {"yes"}}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h.HandleAction(httptest.NewRecorder(), signedIn(testutil.FormRequest("/devices/actions", form)))
	}()
	<-arrived

	rec := httptest.NewRecorder()
	h.HandleAction(rec, signedIn(testutil.FormRequest("/devices/actions", form)))
	close(release)
	wg.Wait()

	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
	if n := b.CallCount(); n != 1 {
		t.Errorf("backend calls = %d, want 1", n)
	}
}

func TestHandleAction_UnknownMarker(t *testing.T) {
	b := testutil.NewBackend(t)
	h := newHandler(t, b)

	req := testutil.FormRequest("/devices/actions", url.Values{"action": {"explode"}, "id": {"5"}})
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.HandleAction(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("status = %d, want 204", rec.Code)
	}
	if n := b.CallCount(); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestHandleAction_ViewRedirectsWithoutHTMX(t *testing.T) {
	b := testutil.NewBackend(t)
	h := newHandler(t, b)

	rec := httptest.NewRecorder()
	h.HandleAction(rec, testutil.FormRequest("/devices/actions", url.Values{"action": {"details"}, "id": {"9"}}))

	if loc := rec.Header().Get("Location"); loc != "/devices/9" {
		t.Errorf("Location = %q, want /devices/9", loc)
	}
}

func editForm() url.Values {
	return url.Values{
		"ID_Dispositivo":        {"5"},
		"NomeHost":              {" srv01 "},
		"IPPrincipal":           {"10.0.0.5"},
		"MACPrincipal":          {""},
		"Descricao":             {""},
		"Modelo":                {"R740"},
		"ID_Fabricante":         {""},
		"ID_SistemaOperacional": {"3"},
		"ID_TipoDispositivo":    {""},
		"StatusAtual":           {"Online"},
		"LocalizacaoFisica":     {""},
		"Observacoes":           {""},
	}
}

func TestHandleEdit_EmptyLookupSentAsNull(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodPut, "/devices/5", http.StatusOK, `{"message":"Dispositivo atualizado"}`)
	h := newHandler(t, b)

	req := signedIn(testutil.FormRequest("/devices/5/edit", editForm()))
	req = testutil.WithChiURLParam(req, "id", "5")
	rec := httptest.NewRecorder()
	h.HandleEdit(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	calls := b.Calls()
	if len(calls) != 1 || calls[0].Method != http.MethodPut {
		t.Fatalf("calls = %+v", calls)
	}
	body := calls[0].Body

	if v, ok := body["ID_Fabricante"]; !ok || v != nil {
		t.Errorf("ID_Fabricante = %v (present %v), want null", v, ok)
	}
	if v := body["ID_SistemaOperacional"]; v != float64(3) {
		t.Errorf("ID_SistemaOperacional = %v, want 3", v)
	}
	if _, ok := body["ID_Dispositivo"]; ok {
		t.Error("ID_Dispositivo must not be in the edit payload")
	}
	if v, ok := body["Descricao"]; !ok || v != "" {
		t.Errorf("Descricao = %v, want \"\" to clear it", v)
	}
	if _, ok := body["MACPrincipal"]; ok {
		t.Error("empty non-clearable field should be omitted in edit mode")
	}
	if body["NomeHost"] != "srv01" {
		t.Errorf("NomeHost = %v, want trimmed", body["NomeHost"])
	}
}

func TestHandleEdit_WithoutToken(t *testing.T) {
	b := testutil.NewBackend(t)
	h := newHandler(t, b)

	req := testutil.WithChiURLParam(testutil.FormRequest("/devices/5/edit", editForm()), "id", "5")
	rec := httptest.NewRecorder()
	h.HandleEdit(rec, req)

	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Errorf("Location = %q, want /login", loc)
	}
	if n := b.CallCount(); n != 0 {
		t.Errorf("backend calls = %d, want 0", n)
	}
}

func TestHandleCreate_AddPayload(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodPost, "/devices", http.StatusCreated, `{"message":"Dispositivo criado"}`)
	h := newHandler(t, b)

	form := url.Values{"NomeHost": {"ap-01"}, "ID_Fabricante": {""}, "ID_TipoDispositivo": {"2"}}
	rec := httptest.NewRecorder()
	h.HandleCreate(rec, signedIn(testutil.FormRequest("/devices", form)))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	calls := b.Calls()
	if len(calls) != 1 {
		t.Fatalf("backend calls = %d, want 1", len(calls))
	}
	body := calls[0].Body
	if _, ok := body["ID_Fabricante"]; ok {
		t.Error("empty ID_ field must be omitted in add mode")
	}
	if body["ID_TipoDispositivo"] != float64(2) {
		t.Errorf("ID_TipoDispositivo = %v", body["ID_TipoDispositivo"])
	}
	if v, ok := body["Observacoes"]; !ok || v != nil {
		t.Errorf("Observacoes = %v (present %v), want null", v, ok)
	}
}

func TestHandleCreate_FromDiscoveredIPMarksInventoried(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodPost, "/devices", http.StatusCreated, `{"message":"ok"}`)
	b.JSON(http.MethodPut, "/api/discovery/discovered-ips/9/status", http.StatusOK, `{"message":"ok"}`)
	h := newHandler(t, b)

	form := url.Values{"IPPrincipal": {"10.0.0.9"}, "discovered_ip_id": {"9"}}
	h.HandleCreate(httptest.NewRecorder(), signedIn(testutil.FormRequest("/devices", form)))

	calls := b.Calls()
	if len(calls) != 2 {
		t.Fatalf("backend calls = %d, want 2", len(calls))
	}
	if calls[1].Path != "/api/discovery/discovered-ips/9/status" || calls[1].Body["status"] != "Inventariado" {
		t.Errorf("second call = %+v", calls[1])
	}
	if _, ok := calls[0].Body["discovered_ip_id"]; ok {
		t.Error("discovered_ip_id must not be forwarded in the device payload")
	}
}

func TestHandleCreate_InventoryFailureIsBestEffort(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodPost, "/devices", http.StatusCreated, `{"message":"ok"}`)
	b.JSON(http.MethodPut, "/api/discovery/discovered-ips/9/status", http.StatusInternalServerError, `{"message":"falhou"}`)
	h := newHandler(t, b)

	rec := httptest.NewRecorder()
	h.HandleCreate(rec, signedIn(testutil.FormRequest("/devices", url.Values{"discovered_ip_id": {"9"}})))

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/devices" {
		t.Errorf("create should still succeed: %d %q", rec.Code, rec.Header().Get("Location"))
	}
}
