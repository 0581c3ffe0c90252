package models

// Device is an inventoried network asset as returned by GET /devices.
// Optional fields are pointers; the backend sends null for unknown values.
type Device struct {
	ID                     int     `json:"ID_Dispositivo"`
	NomeHost               *string `json:"NomeHost"`
	IPPrincipal            *string `json:"IPPrincipal"`
	MACPrincipal           *string `json:"MACPrincipal"`
	Descricao              *string `json:"Descricao"`
	Modelo                 *string `json:"Modelo"`
	LocalizacaoFisica      *string `json:"LocalizacaoFisica"`
	Observacoes            *string `json:"Observacoes"`
	StatusAtual            *string `json:"StatusAtual"`
	DataUltimaVarredura    *string `json:"DataUltimaVarredura"`
	FabricanteNome         *string `json:"FabricanteNome"`
	SistemaOperacionalNome *string `json:"SistemaOperacionalNome"`
	TipoDispositivoNome    *string `json:"TipoDispositivoNome"`

	FabricanteID         *int `json:"ID_Fabricante"`
	SistemaOperacionalID *int `json:"ID_SistemaOperacional"`
	TipoDispositivoID    *int `json:"ID_TipoDispositivo"`
}

// Identity returns the backend primary key.
func (d Device) Identity() int { return d.ID }

// Manufacturer is a row of GET /fabricantes.
type Manufacturer struct {
	ID   int     `json:"ID_Fabricante"`
	Nome *string `json:"Nome"`
}

func (m Manufacturer) Identity() int { return m.ID }

// OperatingSystem is a row of GET /sistemasoperacionais.
type OperatingSystem struct {
	ID     int     `json:"ID_SistemaOperacional"`
	Nome   *string `json:"Nome"`
	Versao *string `json:"Versao"`
}

func (o OperatingSystem) Identity() int { return o.ID }

// DeviceType is a row of GET /tiposdispositivo.
type DeviceType struct {
	ID   int     `json:"ID_TipoDispositivo"`
	Nome *string `json:"Nome"`
}

func (t DeviceType) Identity() int { return t.ID }
