package models

// DiscoveredIP is an address found by a network scan that may not yet be
// inventoried as a Device.
type DiscoveredIP struct {
	ID                   int     `json:"ID_IPDescoberto"`
	EnderecoIP           *string `json:"EnderecoIP"`
	NomeHostResolvido    *string `json:"NomeHostResolvido"`
	MACEndereco          *string `json:"MACEndereco"`
	DataPrimeiraDeteccao *string `json:"DataPrimeiraDeteccao"`
	DataUltimaDeteccao   *string `json:"DataUltimaDeteccao"`
	StatusResolucao      *string `json:"StatusResolucao"`
}

func (d DiscoveredIP) Identity() int { return d.ID }

// Resolution states accepted by PUT /api/discovery/discovered-ips/{id}/status.
const (
	DiscoveryStatusNew         = "Novo"
	DiscoveryStatusIgnored     = "Ignorado"
	DiscoveryStatusInventoried = "Inventariado"
)

// ScanConfig is the automatic scan configuration at /api/settings/scan-config.
type ScanConfig struct {
	FaixasIP          *string `json:"FaixasIP"`
	FrequenciaMinutos *int    `json:"FrequenciaMinutos"`
	VarreduraAtivada  *bool   `json:"VarreduraAtivada"`
}
