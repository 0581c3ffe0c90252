package models

// DashboardSummary holds the counters shown on the dashboard cards.
type DashboardSummary struct {
	TotalDevices   *int `json:"total_devices"`
	OnlineDevices  *int `json:"online_devices"`
	OfflineDevices *int `json:"offline_devices"`
	NewAlerts      *int `json:"new_alerts"`
}

// OSDistribution is one slice of the operating system chart.
type OSDistribution struct {
	OSName      *string `json:"os_name"`
	DeviceCount int     `json:"device_count"`
}

// StatusDistribution is one slice of the device status chart.
type StatusDistribution struct {
	StatusName  *string `json:"status_name"`
	DeviceCount int     `json:"device_count"`
}

// OSSummaryRow is a row of GET /api/reports/os-summary.
type OSSummaryRow struct {
	SistemaOperacionalNome    *string `json:"SistemaOperacionalNome"`
	SistemaOperacionalFamilia *string `json:"SistemaOperacionalFamilia"`
	TotalDispositivos         int     `json:"TotalDispositivos"`
}
