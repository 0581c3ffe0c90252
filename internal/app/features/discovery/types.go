// internal/app/features/discovery/types.go
package discovery

import (
	"fmt"
	"html/template"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/display"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

const (
	resource    = "discovery"
	listPath    = "/discovery"
	actionsPath = "/discovery/actions"
	confirmPath = "/discovery/confirm"
	tableTarget = "discovery-table-wrap"
)

const (
	msgLoadCommFail = "Erro ao carregar IPs. Tente novamente mais tarde."
	msgNoIPs        = "Nenhum IP descoberto encontrado. Execute uma varredura."
	msgBusy         = "Ação já em andamento."
	msgScanDone     = "Varredura concluída!"
	msgScanFailed   = "Erro ao iniciar varredura."
	msgScanCommFail = "Erro de comunicação ao tentar iniciar a varredura."
	msgIPCommFail   = "Erro de comunicação com o servidor."
	msgIgnored      = "IP marcado como ignorado."
	msgScanQueued   = "Varredura detalhada solicitada."
	msgNoIP         = "Endereço IP ausente para a varredura detalhada."
)

type ipRow struct {
	ID          int
	EnderecoIP  string
	RawIP       string
	NomeHost    string
	Primeira    string
	Ultima      string
	Status      string
	StatusClass string
	Ignored     bool
	Inventoried bool
}

func newRow(d models.DiscoveredIP) ipRow {
	row := ipRow{
		ID:          d.ID,
		EnderecoIP:  display.Or(d.EnderecoIP),
		NomeHost:    display.Or(d.NomeHostResolvido),
		Primeira:    display.Date(d.DataPrimeiraDeteccao),
		Ultima:      display.Date(d.DataUltimaDeteccao),
		Status:      display.Or(d.StatusResolucao),
		StatusClass: display.StatusClass(d.StatusResolucao),
	}
	if d.EnderecoIP != nil {
		row.RawIP = *d.EnderecoIP
	}
	if d.StatusResolucao != nil {
		row.Ignored = *d.StatusResolucao == models.DiscoveryStatusIgnored
		row.Inventoried = *d.StatusResolucao == models.DiscoveryStatusInventoried
	}
	return row
}

type tableData struct {
	Rows        []ipRow
	Placeholder string
	Footer      string
	FormField   template.HTML
}

func buildTable(list []models.DiscoveredIP, err error) tableData {
	switch {
	case api.KindOf(err) == api.KindTransport:
		return tableData{Placeholder: msgLoadCommFail, Footer: "Erro ao carregar."}
	case err != nil:
		return tableData{Placeholder: display.LoadFailure("IPs", err), Footer: "Falha ao carregar."}
	case len(list) == 0:
		return tableData{Placeholder: msgNoIPs, Footer: "Nenhum IP descoberto."}
	}
	rows := make([]ipRow, 0, len(list))
	for _, d := range list {
		rows = append(rows, newRow(d))
	}
	return tableData{Rows: rows, Footer: fmt.Sprintf("Exibindo %d IPs descobertos.", len(rows))}
}

type listData struct {
	viewdata.BaseVM
	Table tableData
}

type detailField struct {
	Label string
	Value string
	Class string
}

func detailFields(d models.DiscoveredIP) []detailField {
	return []detailField{
		{Label: "Endereço IP", Value: display.Or(d.EnderecoIP)},
		{Label: "Nome do Host", Value: display.Or(d.NomeHostResolvido)},
		{Label: "MAC", Value: display.Or(d.MACEndereco)},
		{Label: "Primeira Detecção", Value: display.Date(d.DataPrimeiraDeteccao)},
		{Label: "Última Detecção", Value: display.Date(d.DataUltimaDeteccao)},
		{Label: "Status", Value: display.Or(d.StatusResolucao), Class: display.StatusClass(d.StatusResolucao)},
	}
}

type detailData struct {
	viewdata.BaseVM
	Modal  modal.View
	ID     int
	Fields []detailField
}

func ignoreConfirmMessage(ip string, id int) string {
	return fmt.Sprintf("Tem certeza que deseja ignorar o IP %s (ID: %d)?", ip, id)
}

// prefillOf is the device-add handoff for a discovered address.
func prefillOf(d models.DiscoveredIP) models.Prefill {
	p := models.Prefill{DiscoveredIPID: d.ID}
	if d.EnderecoIP != nil {
		p.IPPrincipal = *d.EnderecoIP
	}
	if d.NomeHostResolvido != nil {
		p.NomeHost = *d.NomeHostResolvido
	}
	if d.MACEndereco != nil {
		p.MACPrincipal = *d.MACEndereco
	}
	return p
}
