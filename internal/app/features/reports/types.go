// internal/app/features/reports/types.go
package reports

import (
	"strconv"

	"github.com/dalemusser/assetmanager/internal/app/system/display"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

// reportType names one of the reports offered in the selector.
type reportType string

const (
	typeFullInventory  reportType = "full_inventory"
	typeOSSummary      reportType = "os_summary"
	typeDevicesOnline  reportType = "devices_online"
	typeDevicesOffline reportType = "devices_offline"
)

type reportOption struct {
	Value    string
	Label    string
	Selected bool
}

var reportLabels = []struct {
	Type  reportType
	Label string
	Title string
}{
	{typeFullInventory, "Inventário Completo", "Relatório: Inventário Completo de Dispositivos"},
	{typeOSSummary, "Sumário por Sistema Operacional", "Relatório: Sumário de Dispositivos por Sistema Operacional"},
	{typeDevicesOnline, "Dispositivos Online", "Relatório: Dispositivos Online"},
	{typeDevicesOffline, "Dispositivos Offline", "Relatório: Dispositivos Offline"},
}

func options(selected reportType) []reportOption {
	out := make([]reportOption, 0, len(reportLabels))
	for _, l := range reportLabels {
		out = append(out, reportOption{Value: string(l.Type), Label: l.Label, Selected: l.Type == selected})
	}
	return out
}

// titleOf returns the heading of a known report type.
func titleOf(t reportType) (string, bool) {
	for _, l := range reportLabels {
		if l.Type == t {
			return l.Title, true
		}
	}
	return "", false
}

const (
	defaultTitle     = "Resultados"
	errorTitle       = "Erro ao Gerar Relatório"
	msgSelectType    = "Por favor, selecione um tipo de relatório."
	msgNotImplement  = "Tipo de relatório não implementado."
	msgNoDevices     = "Nenhum dispositivo encontrado para este relatório."
	msgNoOSSummary   = "Nenhum dado de sumário de SO para exibir."
	msgFailurePrefix = "Falha ao gerar relatório: "
	msgCommFailure   = "erro de comunicação com o servidor."
)

type deviceRow struct {
	NomeHost           string
	IPPrincipal        string
	MACPrincipal       string
	SistemaOperacional string
	Fabricante         string
	Tipo               string
	Status             string
	StatusClass        string
}

func newDeviceRow(d models.Device) deviceRow {
	return deviceRow{
		NomeHost:           display.Or(d.NomeHost),
		IPPrincipal:        display.Or(d.IPPrincipal),
		MACPrincipal:       display.Or(d.MACPrincipal),
		SistemaOperacional: display.Or(d.SistemaOperacionalNome),
		Fabricante:         display.Or(d.FabricanteNome),
		Tipo:               display.Or(d.TipoDispositivoNome),
		Status:             display.Or(d.StatusAtual),
		StatusClass:        display.StatusClass(d.StatusAtual),
	}
}

// csv returns the row in the column order of deviceHeader.
func (r deviceRow) csv() []string {
	return []string{r.NomeHost, r.IPPrincipal, r.MACPrincipal, r.SistemaOperacional, r.Fabricante, r.Tipo, r.Status}
}

var deviceHeader = []string{"Nome do Host", "IP Principal", "MAC Principal", "Sistema Operacional", "Fabricante", "Tipo", "Status"}

type osRow struct {
	Nome    string
	Familia string
	Total   int
}

func newOSRow(s models.OSSummaryRow) osRow {
	return osRow{
		Nome:    display.Or(s.SistemaOperacionalNome),
		Familia: display.Or(s.SistemaOperacionalFamilia),
		Total:   s.TotalDispositivos,
	}
}

func (r osRow) csv() []string {
	return []string{r.Nome, r.Familia, strconv.Itoa(r.Total)}
}

var osHeader = []string{"Sistema Operacional (Nome)", "Família do SO", "Total de Dispositivos"}

// result is a generated report. Exactly one of Devices, OS or Message
// carries the content.
type result struct {
	Type    reportType
	Title   string
	Devices []deviceRow
	OS      []osRow
	Message string
	// Failed marks Message as an error rather than an empty result.
	Failed bool
}

// HasRows reports whether a CSV export is available.
func (r result) HasRows() bool { return len(r.Devices) > 0 || len(r.OS) > 0 }

type pageData struct {
	viewdata.BaseVM
	Options []reportOption
	Report  result
}
