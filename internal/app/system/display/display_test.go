package display_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/display"
)

func ptr(s string) *string { return &s }

func TestOr(t *testing.T) {
	if got := display.Or(nil); got != "N/D" {
		t.Errorf("Or(nil): got %q", got)
	}
	if got := display.Or(ptr("")); got != "" {
		t.Errorf("Or(\"\"): got %q, want empty string kept", got)
	}
	if got := display.Or(ptr("sw-01")); got != "sw-01" {
		t.Errorf("Or: got %q", got)
	}
}

func TestStatusClass(t *testing.T) {
	tests := []struct {
		in   *string
		want string
	}{
		{ptr("Online"), "status-online"},
		{ptr("ONLINE"), "status-online"},
		{ptr("offline"), "status-offline"},
		{ptr("Com Falha"), "status-warning"},
		{ptr("lento"), "status-warning"},
		{ptr("Desconhecido"), "status-unknown"},
		{ptr(""), "status-unknown"},
		{nil, "status-unknown"},
	}
	for _, tt := range tests {
		if got := display.StatusClass(tt.in); got != tt.want {
			t.Errorf("StatusClass(%v): got %q, want %q", display.Or(tt.in), got, tt.want)
		}
	}
}

func TestSeverityClass(t *testing.T) {
	tests := []struct {
		in   *string
		want string
	}{
		{ptr("Critica"), "severity-critical"},
		{ptr("Crítica"), "severity-critical"},
		{ptr("ALTA"), "severity-high"},
		{ptr("Média"), "severity-medium"},
		{ptr("baixa"), "severity-low"},
		{ptr("info"), "severity-unknown"},
		{nil, "severity-unknown"},
	}
	for _, tt := range tests {
		if got := display.SeverityClass(tt.in); got != tt.want {
			t.Errorf("SeverityClass(%v): got %q, want %q", display.Or(tt.in), got, tt.want)
		}
	}
}

func TestDate(t *testing.T) {
	tests := []struct {
		in   *string
		want string
	}{
		{ptr("2024-03-05T14:07:00"), "05/03/2024 14:07"},
		{ptr("2024-03-05 09:30:12"), "05/03/2024 09:30"},
		{ptr("Tue, 05 Mar 2024 14:07:00 GMT"), "05/03/2024 14:07"},
		{ptr("ontem"), "ontem"},
		{ptr(""), "N/D"},
		{nil, "N/D"},
	}
	for _, tt := range tests {
		if got := display.Date(tt.in); got != tt.want {
			t.Errorf("Date(%v): got %q, want %q", display.Or(tt.in), got, tt.want)
		}
	}
}

func TestInt(t *testing.T) {
	n := 42
	if got := display.Int(&n); got != "42" {
		t.Errorf("Int: got %q", got)
	}
	if got := display.Int(nil); got != "N/D" {
		t.Errorf("Int(nil): got %q", got)
	}
}

func TestLoadFailure(t *testing.T) {
	transport := &api.Error{Kind: api.KindTransport, Err: errors.New("connection refused")}
	if got := display.LoadFailure("dispositivos", transport); got != "Erro ao carregar dispositivos. Tente novamente mais tarde." {
		t.Errorf("transport: %q", got)
	}

	withMsg := &api.Error{Kind: api.KindApplication, Status: http.StatusBadRequest, Message: "Parâmetro inválido"}
	if got := display.LoadFailure("dispositivos", withMsg); got != "Falha ao carregar: Parâmetro inválido" {
		t.Errorf("application: %q", got)
	}

	noMsg := &api.Error{Kind: api.KindApplication, Status: http.StatusInternalServerError, StatusText: "Internal Server Error"}
	if got := display.LoadFailure("IPs", noMsg); got != "Falha ao carregar: Internal Server Error" {
		t.Errorf("status text: %q", got)
	}
}

func TestTechnicalDetails(t *testing.T) {
	got, ok := display.TechnicalDetails(`{"porta":22}`)
	if !ok || got != "{\n  \"porta\": 22\n}" {
		t.Errorf("json: %q, %v", got, ok)
	}
	got, ok = display.TechnicalDetails("timeout na porta 22")
	if ok || got != "timeout na porta 22" {
		t.Errorf("text: %q, %v", got, ok)
	}
}

func TestTechnicalDetails_KeepsMarkupInJSON(t *testing.T) {
	got, ok := display.TechnicalDetails(`{"banner":"<h1>Apache</h1>","porta":80}`)
	if !ok {
		t.Fatal("JSON with markup not recognized")
	}
	want := "{\n  \"banner\": \"<h1>Apache</h1>\",\n  \"porta\": 80\n}"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestClock(t *testing.T) {
	ts := "2024-05-10T14:32:00Z"
	if got := display.Clock(&ts); got != "14:32" {
		t.Errorf("Clock = %q, want 14:32", got)
	}
	bad := "ontem"
	if got := display.Clock(&bad); got != "" {
		t.Errorf("Clock(unparseable) = %q", got)
	}
	if got := display.Clock(nil); got != "" {
		t.Errorf("Clock(nil) = %q", got)
	}
}
