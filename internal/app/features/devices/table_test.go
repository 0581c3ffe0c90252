package devices

import (
	"errors"
	"net/http"
	"reflect"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

func strp(s string) *string { return &s }

func TestBuildTable_Empty(t *testing.T) {
	got := buildTable([]models.Device{}, nil)
	if len(got.Rows) != 0 {
		t.Fatalf("rows = %d, want 0", len(got.Rows))
	}
	if got.Placeholder != "Nenhum dispositivo encontrado." {
		t.Errorf("placeholder = %q", got.Placeholder)
	}
}

func TestBuildTable_Failures(t *testing.T) {
	transport := buildTable(nil, &api.Error{Kind: api.KindTransport, Err: errors.New("refused")})
	if transport.Placeholder != "Erro ao carregar dispositivos. Tente novamente mais tarde." || len(transport.Rows) != 0 {
		t.Errorf("transport: %+v", transport)
	}

	app := buildTable(nil, &api.Error{Kind: api.KindApplication, Status: http.StatusServiceUnavailable, StatusText: "Service Unavailable"})
	if app.Placeholder != "Falha ao carregar: Service Unavailable" {
		t.Errorf("application: %q", app.Placeholder)
	}
}

func TestBuildTable_NullFieldsAndStatus(t *testing.T) {
	devs := []models.Device{
		{ID: 1, NomeHost: strp("srv01"), StatusAtual: strp("ONLINE"), DataUltimaVarredura: strp("2024-05-10T14:30:00")},
		{ID: 2},
	}
	got := buildTable(devs, nil)
	if got.Placeholder != "" || len(got.Rows) != 2 {
		t.Fatalf("got %+v", got)
	}

	first := got.Rows[0]
	if first.StatusClass != "status-online" || first.UltimaVarredura != "10/05/2024 14:30" || first.IPPrincipal != "N/D" {
		t.Errorf("first row = %+v", first)
	}
	second := got.Rows[1]
	if second.NomeHost != "N/D" || second.Status != "N/D" || second.StatusClass != "status-unknown" || second.UltimaVarredura != "N/D" {
		t.Errorf("second row = %+v", second)
	}
}

func TestBuildTable_Idempotent(t *testing.T) {
	devs := []models.Device{{ID: 3, NomeHost: strp("sw-core"), StatusAtual: strp("Lento")}}
	a := buildTable(devs, nil)
	b := buildTable(devs, nil)
	if !reflect.DeepEqual(a, b) {
		t.Errorf("rebuild differs:\n%+v\n%+v", a, b)
	}
	if a.Rows[0].StatusClass != "status-warning" {
		t.Errorf("Lento should be a warning, got %q", a.Rows[0].StatusClass)
	}
}

func TestBuildStatusOptions_DefaultsToUnknown(t *testing.T) {
	for _, o := range buildStatusOptions("") {
		if o.Selected && o.Value != "Desconhecido" {
			t.Errorf("selected %q, want Desconhecido", o.Value)
		}
	}
}

func TestFailureMessage(t *testing.T) {
	if got := failureMessage(&api.Error{Kind: api.KindTransport}, msgCreateFailed); got != msgCommFailure {
		t.Errorf("transport: %q", got)
	}
	if got := failureMessage(&api.Error{Kind: api.KindApplication, Status: 400, Message: "IP duplicado"}, msgCreateFailed); got != "IP duplicado" {
		t.Errorf("with message: %q", got)
	}
	if got := failureMessage(&api.Error{Kind: api.KindApplication, Status: 500}, msgCreateFailed); got != msgCreateFailed {
		t.Errorf("without message: %q", got)
	}
}
