package alerts

import (
	"errors"
	"strings"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

func strp(s string) *string { return &s }

func TestBuildTable_SingleCriticalAlert(t *testing.T) {
	list := []models.Alert{{ID: 7, Severidade: strp("Critica"), DispositivoNomeHost: strp("srv-db")}}

	table, shown := buildTable(list, nil)
	if len(table.Rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(table.Rows))
	}
	row := table.Rows[0]
	if row.ID != 7 || row.SeverityClass != "severity-critical" {
		t.Errorf("row = %+v", row)
	}
	if row.Origem != "srv-db" {
		t.Errorf("Origem = %q, want srv-db", row.Origem)
	}
	if table.Footer != "Exibindo 1 alertas." {
		t.Errorf("Footer = %q", table.Footer)
	}
	if len(shown) != 1 || shown[0].ID != 7 {
		t.Errorf("shown = %+v", shown)
	}
}

func TestBuildTable_Empty(t *testing.T) {
	table, shown := buildTable(nil, nil)
	if table.Placeholder != msgNoAlerts || table.Footer != "Nenhum alerta." {
		t.Errorf("table = %+v", table)
	}
	if len(shown) != 0 {
		t.Errorf("shown = %d rows, want 0", len(shown))
	}
}

func TestBuildTable_Failures(t *testing.T) {
	appErr := &api.Error{Kind: api.KindApplication, Message: "sem permissão"}
	table, shown := buildTable(nil, appErr)
	if table.Footer != "Falha ao carregar." || shown != nil {
		t.Errorf("application failure: footer %q, shown %v", table.Footer, shown)
	}

	netErr := &api.Error{Kind: api.KindTransport, Err: errors.New("dial tcp: refused")}
	table, _ = buildTable(nil, netErr)
	if table.Footer != "Erro ao carregar." {
		t.Errorf("transport failure footer = %q", table.Footer)
	}
	if table.Placeholder == "" {
		t.Error("placeholder is empty")
	}
}

func TestOrigin(t *testing.T) {
	if got := origin(models.Alert{IPDescobertoEndereco: strp("10.0.0.9")}); got != "10.0.0.9" {
		t.Errorf("origin = %q", got)
	}
	if got := origin(models.Alert{DispositivoNomeHost: strp("")}); got != "N/A" {
		t.Errorf("origin = %q, want N/A", got)
	}
}

func TestNewDetail(t *testing.T) {
	d := newDetail(models.Alert{
		ID:                   3,
		IPDescobertoEndereco: strp("10.0.0.9"),
		DetalhesTecnicos:     strp(`{"porta":22}`),
	})
	if d.OrigemLabel != "IP Descoberto Associado" || d.Origem != "10.0.0.9" {
		t.Errorf("origin = %q %q", d.OrigemLabel, d.Origem)
	}
	if !d.TecnicosJSON {
		t.Error("technical details not recognized as JSON")
	}
	if d.Resolucao != "" {
		t.Errorf("Resolucao = %q, want empty", d.Resolucao)
	}

	plain := newDetail(models.Alert{DetalhesTecnicos: strp("porta 22 aberta")})
	if plain.TecnicosJSON || plain.Tecnicos != "porta 22 aberta" {
		t.Errorf("plain = %+v", plain)
	}
}

func TestNewDetail_JSONWithMarkupIsParsedRaw(t *testing.T) {
	d := newDetail(models.Alert{DetalhesTecnicos: strp(`{"resposta":"<title>Login</title>","codigo":200}`)})
	if !d.TecnicosJSON {
		t.Fatalf("markup inside JSON broke parsing: %q", d.Tecnicos)
	}
	if !strings.Contains(d.Tecnicos, `"resposta": "<title>Login</title>"`) {
		t.Errorf("Tecnicos = %q", d.Tecnicos)
	}

	plain := newDetail(models.Alert{DetalhesTecnicos: strp("<b>porta 22</b> aberta")})
	if plain.TecnicosJSON || plain.Tecnicos != "porta 22 aberta" {
		t.Errorf("plain = %q", plain.Tecnicos)
	}
}

func TestTargetStatus(t *testing.T) {
	if got := targetStatus(actions.MarkRead); got != models.AlertStatusRead {
		t.Errorf("MarkRead -> %q", got)
	}
	if got := targetStatus(actions.Resolve); got != models.AlertStatusResolved {
		t.Errorf("Resolve -> %q", got)
	}
	if got := confirmMessage(7, "Lido"); got != "Tem certeza que deseja marcar o alerta ID: 7 como 'Lido'?" {
		t.Errorf("confirmMessage = %q", got)
	}
}
