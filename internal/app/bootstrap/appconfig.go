// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig covers the
// framework-level settings (ports, TLS, logging, request limits); everything
// here is specific to the asset manager console.
type AppConfig struct {
	// Inventory backend
	BackendURL     string        // Base URL of the inventory REST backend (e.g., http://127.0.0.1:5000)
	BackendTimeout time.Duration // Per-request HTTP client timeout

	// MongoDB holds console-side state only (prefill handoffs, audit events)
	MongoURI      string
	MongoDatabase string

	// Session management configuration
	SessionKey    string        // Secret for the session cookie keys (must be strong in production)
	SessionName   string        // Cookie name (default: assetmanager-session)
	SessionDomain string        // Cookie domain (blank means current host)
	SessionMaxAge time.Duration // Lifetime of the session cookie

	// CSRF protection for POST forms
	CSRFKey string // 32-byte secret; blank is only accepted outside prod

	// Console-side housekeeping
	PrefillMaxAge        time.Duration // Age after which an unused discovery prefill is purged
	PrefillSweepInterval time.Duration // How often the janitor runs
	ListCacheMaxAge      time.Duration // Age after which a session's cached alert rows are dropped

	// Audit logging: "all" (db+log), "db", "log", or "off"
	AuditLogAuth      string
	AuditLogInventory string

	// Handler timeout budgets
	TimeoutShort  time.Duration
	TimeoutMedium time.Duration
	TimeoutLong   time.Duration

	// Login attempts allowed per minute (IP) and per five minutes (user)
	LoginRateIP   int
	LoginRateUser int
}
