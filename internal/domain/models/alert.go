package models

// Alert is a monitoring alert as returned by GET /api/alerts.
type Alert struct {
	ID                   int     `json:"ID_Alerta"`
	Severidade           *string `json:"Severidade"`
	TipoAlertaNome       *string `json:"TipoAlertaNome"`
	DescricaoCustomizada *string `json:"DescricaoCustomizada"`
	DispositivoNomeHost  *string `json:"DispositivoNomeHost"`
	IPDescobertoEndereco *string `json:"IPDescobertoEndereco"`
	DataHoraCriacao      *string `json:"DataHoraCriacao"`
	DataHoraResolucao    *string `json:"DataHoraResolucao"`
	StatusAlerta         *string `json:"StatusAlerta"`
	DetalhesTecnicos     *string `json:"DetalhesTecnicos"`
}

func (a Alert) Identity() int { return a.ID }

// Alert workflow states accepted by PUT /api/alerts/{id}/status.
const (
	AlertStatusNew      = "Novo"
	AlertStatusRead     = "Lido"
	AlertStatusResolved = "Resolvido"
)
