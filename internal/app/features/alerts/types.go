// internal/app/features/alerts/types.go
package alerts

import (
	"fmt"
	"html/template"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/display"
	"github.com/dalemusser/assetmanager/internal/app/system/htmlsanitize"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

const (
	resource    = "alerts"
	listPath    = "/alerts"
	actionsPath = "/alerts/actions"
	confirmPath = "/alerts/confirm"
	tableTarget = "alerts-table-wrap"
)

const (
	msgNoAlerts      = "Nenhum alerta encontrado."
	msgNotFound      = "Detalhes do alerta não encontrados. Tente atualizar a lista."
	msgBusy          = "Ação já em andamento."
	msgStatusCommErr = "Erro de comunicação ao tentar atualizar status do alerta."
)

// alertRow is one rendered row of the alert table.
type alertRow struct {
	ID            int
	Severidade    string
	SeverityClass string
	Tipo          string
	Descricao     string
	Origem        string
	Criacao       string
	Status        string
}

func newRow(a models.Alert) alertRow {
	return alertRow{
		ID:            a.ID,
		Severidade:    display.Or(a.Severidade),
		SeverityClass: display.SeverityClass(a.Severidade),
		Tipo:          display.Or(a.TipoAlertaNome),
		Descricao:     display.Or(a.DescricaoCustomizada),
		Origem:        origin(a),
		Criacao:       display.Date(a.DataHoraCriacao),
		Status:        display.Or(a.StatusAlerta),
	}
}

// origin names what raised the alert: the device, else the discovered
// address.
func origin(a models.Alert) string {
	if a.DispositivoNomeHost != nil && *a.DispositivoNomeHost != "" {
		return *a.DispositivoNomeHost
	}
	if a.IPDescobertoEndereco != nil && *a.IPDescobertoEndereco != "" {
		return *a.IPDescobertoEndereco
	}
	return "N/A"
}

type tableData struct {
	Rows        []alertRow
	Placeholder string
	Footer      string
	FormField   template.HTML
}

// buildTable renders the outcome of a list fetch. The returned slice is the
// exact set of rows shown, which the handler stores in the list cache.
func buildTable(list []models.Alert, err error) (tableData, []models.Alert) {
	if err != nil {
		footer := "Erro ao carregar."
		if api.KindOf(err) == api.KindApplication {
			footer = "Falha ao carregar."
		}
		return tableData{Placeholder: display.LoadFailure("alertas", err), Footer: footer}, nil
	}
	if len(list) == 0 {
		return tableData{Placeholder: msgNoAlerts, Footer: "Nenhum alerta."}, nil
	}
	rows := make([]alertRow, 0, len(list))
	for _, a := range list {
		rows = append(rows, newRow(a))
	}
	return tableData{Rows: rows, Footer: fmt.Sprintf("Exibindo %d alertas.", len(rows))}, list
}

type listData struct {
	viewdata.BaseVM
	Table tableData
}

// alertDetail is the content of the detail dialog.
type alertDetail struct {
	ID            int
	Tipo          string
	Descricao     string
	Severidade    string
	SeverityClass string
	Status        string
	Criacao       string
	Resolucao     string
	OrigemLabel   string
	Origem        string
	Tecnicos      string
	TecnicosJSON  bool
}

func newDetail(a models.Alert) alertDetail {
	d := alertDetail{
		ID:            a.ID,
		Tipo:          display.Or(a.TipoAlertaNome),
		Descricao:     display.Or(a.DescricaoCustomizada),
		Severidade:    display.Or(a.Severidade),
		SeverityClass: display.SeverityClass(a.Severidade),
		Status:        display.Or(a.StatusAlerta),
		Criacao:       display.Date(a.DataHoraCriacao),
	}
	if a.DataHoraResolucao != nil && *a.DataHoraResolucao != "" {
		d.Resolucao = display.Date(a.DataHoraResolucao)
	}
	switch {
	case a.DispositivoNomeHost != nil && *a.DispositivoNomeHost != "":
		d.OrigemLabel, d.Origem = "Dispositivo Associado", *a.DispositivoNomeHost
	case a.IPDescobertoEndereco != nil && *a.IPDescobertoEndereco != "":
		d.OrigemLabel, d.Origem = "IP Descoberto Associado", *a.IPDescobertoEndereco
	}
	if a.DetalhesTecnicos != nil && *a.DetalhesTecnicos != "" {
		d.Tecnicos, d.TecnicosJSON = display.TechnicalDetails(*a.DetalhesTecnicos)
		if !d.TecnicosJSON {
			d.Tecnicos = htmlsanitize.PlainText(d.Tecnicos)
		}
	}
	return d
}

type detailData struct {
	viewdata.BaseVM
	Modal  modal.View
	Detail alertDetail
}

// targetStatus is the workflow state an action moves an alert to.
func targetStatus(k actions.Kind) string {
	switch k {
	case actions.MarkRead:
		return models.AlertStatusRead
	case actions.Resolve:
		return models.AlertStatusResolved
	default:
		return ""
	}
}

func confirmMessage(id int, status string) string {
	return fmt.Sprintf("Tem certeza que deseja marcar o alerta ID: %d como '%s'?", id, status)
}
