// internal/app/features/devices/types.go
package devices

import (
	"html/template"

	"github.com/dalemusser/assetmanager/internal/app/system/display"
	"github.com/dalemusser/assetmanager/internal/app/system/formpayload"
	"github.com/dalemusser/assetmanager/internal/app/system/formutil"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

const (
	resource     = "devices"
	listPath     = "/devices"
	actionsPath  = "/devices/actions"
	confirmPath  = "/devices/confirm"
	tableTarget  = "devices-table-wrap"
	changedEvent = "devices-changed"
)

// Messages shown when the backend answers without one of its own.
const (
	msgNoDevices      = "Nenhum dispositivo encontrado."
	msgCreated        = "Dispositivo adicionado com sucesso!"
	msgCreateFailed   = "Erro ao adicionar dispositivo."
	msgUpdated        = "Dispositivo atualizado com sucesso!"
	msgUpdateFailed   = "Erro ao atualizar dispositivo."
	msgDeleted        = "Dispositivo removido com sucesso!"
	msgCommFailure    = "Erro de comunicação com o servidor."
	msgDeleteCommFail = "Erro de comunicação com o servidor ao tentar remover o dispositivo."
	msgLoadEditFailed = "Não foi possível carregar os dados para edição."
	msgBusy           = "Ação já em andamento."
	msgPrefillGone    = "Os dados do IP descoberto expiraram. Preencha o formulário manualmente."
	msgInvalidID      = "ID do dispositivo inválido."
)

// statusOptions are the values of the status select, in display order.
var statusOptions = []string{"Online", "Offline", "Com Falha", "Lento", "Desconhecido"}

// deviceFields describes the add and edit forms.
var deviceFields = formpayload.Fields{
	Names: []string{
		"NomeHost", "IPPrincipal", "MACPrincipal", "Descricao", "Modelo",
		"ID_Fabricante", "ID_SistemaOperacional", "ID_TipoDispositivo",
		"StatusAtual", "LocalizacaoFisica", "Observacoes",
	},
	Clearable: []string{"Descricao", "Modelo", "LocalizacaoFisica", "Observacoes"},
	NullFill:  true,
	Exclude:   []string{"ID_Dispositivo"},
}

// deviceRow is one rendered row of the device table.
type deviceRow struct {
	ID                 int
	NomeHost           string
	IPPrincipal        string
	MACPrincipal       string
	SistemaOperacional string
	Fabricante         string
	Status             string
	StatusClass        string
	UltimaVarredura    string
}

func newRow(d models.Device) deviceRow {
	return deviceRow{
		ID:                 d.ID,
		NomeHost:           display.Or(d.NomeHost),
		IPPrincipal:        display.Or(d.IPPrincipal),
		MACPrincipal:       display.Or(d.MACPrincipal),
		SistemaOperacional: display.Or(d.SistemaOperacionalNome),
		Fabricante:         display.Or(d.FabricanteNome),
		Status:             display.Or(d.StatusAtual),
		StatusClass:        display.StatusClass(d.StatusAtual),
		UltimaVarredura:    display.Date(d.DataUltimaVarredura),
	}
}

// tableData is what the "devices_table" snippet renders.
type tableData struct {
	Search string
	Rows   []deviceRow
	// Placeholder replaces the rows when the fetch failed or returned none.
	Placeholder string
	FormField   template.HTML
}

type listData struct {
	viewdata.BaseVM
	Table tableData
}

// buildTable turns the outcome of a list fetch into table rows or a
// placeholder. A failed fetch never renders rows.
func buildTable(devs []models.Device, err error) tableData {
	if err != nil {
		return tableData{Placeholder: display.LoadFailure("dispositivos", err)}
	}
	if len(devs) == 0 {
		return tableData{Placeholder: msgNoDevices}
	}
	rows := make([]deviceRow, 0, len(devs))
	for _, d := range devs {
		rows = append(rows, newRow(d))
	}
	return tableData{Rows: rows}
}

// detailField is one labelled line of the detail view.
type detailField struct {
	Label string
	Value string
	Class string
}

type detailData struct {
	viewdata.BaseVM
	Modal  modal.View
	ID     int
	Fields []detailField
}

func detailFields(d models.Device) []detailField {
	return []detailField{
		{Label: "Nome do Host", Value: display.Or(d.NomeHost)},
		{Label: "IP Principal", Value: display.Or(d.IPPrincipal)},
		{Label: "MAC Principal", Value: display.Or(d.MACPrincipal)},
		{Label: "Tipo", Value: display.Or(d.TipoDispositivoNome)},
		{Label: "Fabricante", Value: display.Or(d.FabricanteNome)},
		{Label: "Modelo", Value: display.Or(d.Modelo)},
		{Label: "Sistema Operacional", Value: display.Or(d.SistemaOperacionalNome)},
		{Label: "Status", Value: display.Or(d.StatusAtual), Class: display.StatusClass(d.StatusAtual)},
		{Label: "Última Varredura", Value: display.Date(d.DataUltimaVarredura)},
		{Label: "Localização Física", Value: display.Or(d.LocalizacaoFisica)},
		{Label: "Descrição", Value: display.Or(d.Descricao)},
		{Label: "Observações", Value: display.Or(d.Observacoes)},
	}
}

// formData backs the add and edit dialogs.
type formData struct {
	formutil.Base
	Modal         modal.View
	ID            int
	PostURL       string
	PrefillKey    string
	Values        map[string]string
	Dropdowns     modal.DeviceDropdowns
	StatusOptions []modal.Option
}

// IsEdit reports whether the form edits an existing device.
func (f formData) IsEdit() bool { return f.Modal.State == modal.Edit }

func buildStatusOptions(current string) []modal.Option {
	if current == "" {
		current = "Desconhecido"
	}
	opts := make([]modal.Option, 0, len(statusOptions))
	for _, s := range statusOptions {
		opts = append(opts, modal.Option{Value: s, Label: s, Selected: s == current})
	}
	return opts
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// valuesOf fills the edit form from a fetched device; null becomes "".
func valuesOf(d models.Device) map[string]string {
	return map[string]string{
		"NomeHost":          deref(d.NomeHost),
		"IPPrincipal":       deref(d.IPPrincipal),
		"MACPrincipal":      deref(d.MACPrincipal),
		"Descricao":         deref(d.Descricao),
		"Modelo":            deref(d.Modelo),
		"StatusAtual":       deref(d.StatusAtual),
		"LocalizacaoFisica": deref(d.LocalizacaoFisica),
		"Observacoes":       deref(d.Observacoes),
	}
}
