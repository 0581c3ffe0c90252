// internal/app/features/dashboard/widgets.go
package dashboard

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/display"
	"github.com/dalemusser/assetmanager/internal/domain/models"
)

// palette is cycled for chart slices without a fixed color.
var palette = []string{
	"#3498db", "#2ecc71", "#e74c3c", "#f1c40f", "#9b59b6",
	"#1abc9c", "#d35400", "#34495e", "#7f8c8d", "#bdc3c7",
}

var statusColors = map[string]string{
	"online":    "#2ecc71",
	"offline":   "#e74c3c",
	"com falha": "#f39c12",
}

const unknownLabel = "Desconhecido"

type widgets struct {
	Counters     counters
	RecentAlerts recentAlerts
	OSChart      chart
	StatusChart  chart
}

type counters struct {
	Total     string
	Online    string
	Offline   string
	NewAlerts string
}

// failureToken is what a widget shows instead of its data: "Erro" when the
// backend answered with a failure, "Falha" when it could not be reached.
func failureToken(err error) string {
	if api.KindOf(err) == api.KindApplication {
		return "Erro"
	}
	return "Falha"
}

func counter(n *int) string {
	if n == nil {
		return "N/A"
	}
	return strconv.Itoa(*n)
}

func buildCounters(s models.DashboardSummary, err error) counters {
	if err != nil {
		tok := failureToken(err)
		return counters{Total: tok, Online: tok, Offline: tok, NewAlerts: tok}
	}
	return counters{
		Total:     counter(s.TotalDevices),
		Online:    counter(s.OnlineDevices),
		Offline:   counter(s.OfflineDevices),
		NewAlerts: counter(s.NewAlerts),
	}
}

type alertItem struct {
	Severidade    string
	SeverityClass string
	Tipo          string
	Descricao     string
	Subject       string
	Time          string
}

type recentAlerts struct {
	Items   []alertItem
	Message string
}

func buildRecentAlerts(list []models.Alert, err error) recentAlerts {
	switch {
	case api.KindOf(err) == api.KindApplication:
		return recentAlerts{Message: "Erro ao carregar alertas."}
	case err != nil:
		return recentAlerts{Message: "Falha ao carregar alertas."}
	case len(list) == 0:
		return recentAlerts{Message: "Nenhum alerta novo encontrado."}
	}
	items := make([]alertItem, 0, len(list))
	for _, a := range list {
		items = append(items, alertItem{
			Severidade:    deref(a.Severidade),
			SeverityClass: display.SeverityClass(a.Severidade),
			Tipo:          orText(a.TipoAlertaNome, "Alerta"),
			Descricao:     deref(a.DescricaoCustomizada),
			Subject:       orText(a.DispositivoNomeHost, orText(a.IPDescobertoEndereco, "Sistema")),
			Time:          display.Clock(a.DataHoraCriacao),
		})
	}
	return recentAlerts{Items: items}
}

// chart is the data handed to the client-side chart. JSON is empty when
// Error is set.
type chart struct {
	Labels []string `json:"labels"`
	Counts []int    `json:"counts"`
	Colors []string `json:"colors"`
	Error  string   `json:"-"`
}

// JSON encodes the series for the canvas data attribute.
func (c chart) JSON() string {
	if c.Error != "" {
		return ""
	}
	b, err := json.Marshal(c)
	if err != nil {
		return ""
	}
	return string(b)
}

func buildOSChart(list []models.OSDistribution, err error) chart {
	if err != nil {
		return chart{Error: failureToken(err)}
	}
	c := chart{Labels: []string{}, Counts: []int{}, Colors: []string{}}
	for i, d := range list {
		c.Labels = append(c.Labels, orText(d.OSName, unknownLabel))
		c.Counts = append(c.Counts, d.DeviceCount)
		c.Colors = append(c.Colors, palette[i%len(palette)])
	}
	return c
}

func buildStatusChart(list []models.StatusDistribution, err error) chart {
	if err != nil {
		return chart{Error: failureToken(err)}
	}
	c := chart{Labels: []string{}, Counts: []int{}, Colors: []string{}}
	for i, d := range list {
		label := orText(d.StatusName, unknownLabel)
		color, ok := statusColors[strings.ToLower(label)]
		if !ok {
			color = palette[i%len(palette)]
		}
		c.Labels = append(c.Labels, label)
		c.Counts = append(c.Counts, d.DeviceCount)
		c.Colors = append(c.Colors, color)
	}
	return c
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func orText(s *string, def string) string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return def
	}
	return *s
}
