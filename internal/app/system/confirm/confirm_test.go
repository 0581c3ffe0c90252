package confirm_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/confirm"
)

func TestNewPage_HiddenFields(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/discovery/confirm", nil)
	a := actions.Action{Kind: actions.Ignore, ID: 3, IP: "10.0.0.9"}

	p := confirm.NewPage(httptest.NewRecorder(), req, nil, "Confirmar", "msg", "/discovery/actions", "/discovery", a)

	want := map[string]string{"action": "ignore", "id": "3", "ip": "10.0.0.9", "return": "/discovery"}
	got := map[string]string{}
	for _, f := range p.Hidden {
		got[f.Name] = f.Value
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("hidden %s = %q, want %q", k, got[k], v)
		}
	}
	if p.PostURL != "/discovery/actions" || p.CancelURL != "/discovery" || p.Message != "msg" {
		t.Errorf("unexpected page: %+v", p)
	}
}

func TestNewPage_NoIPField(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/devices/confirm", nil)
	p := confirm.NewPage(httptest.NewRecorder(), req, nil, "Confirmar", "msg", "/devices/actions", "/devices",
		actions.Action{Kind: actions.Delete, ID: 5})

	for _, f := range p.Hidden {
		if f.Name == "ip" {
			t.Fatal("ip field should be omitted when empty")
		}
	}
}

func TestRedirectTo(t *testing.T) {
	a := actions.Action{Kind: actions.Delete, ID: 5}

	req := httptest.NewRequest(http.MethodPost, "/devices/actions", nil)
	rec := httptest.NewRecorder()
	confirm.RedirectTo(rec, req, "/devices/confirm", a)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/devices/confirm?action=delete&id=5" {
		t.Errorf("Location = %q", loc)
	}

	req = httptest.NewRequest(http.MethodPost, "/devices/actions", nil)
	req.Header.Set("HX-Request", "true")
	rec = httptest.NewRecorder()
	confirm.RedirectTo(rec, req, "/devices/confirm", a)
	if got := rec.Header().Get("HX-Redirect"); got != "/devices/confirm?action=delete&id=5" {
		t.Errorf("HX-Redirect = %q", got)
	}
}
