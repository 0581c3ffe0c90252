package models

import "time"

// Prefill is the one-shot handoff written by the discovery "inventory" action
// and consumed by the device-add form.
type Prefill struct {
	Key            string    `bson:"_id"`
	DiscoveredIPID int       `bson:"discovered_ip_id"`
	IPPrincipal    string    `bson:"ip_principal"`
	NomeHost       string    `bson:"nome_host,omitempty"`
	MACPrincipal   string    `bson:"mac_principal,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
}
