// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"net/url"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for the asset manager.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: backend_url, mongo_uri, etc.
//   - Environment variables: ASSETMANAGER_BACKEND_URL, ASSETMANAGER_MONGO_URI, etc.
//   - Command-line flags: --backend_url, --mongo_uri, etc.
var appConfigKeys = []config.AppKey{
	{Name: "backend_url", Default: "http://127.0.0.1:5000", Desc: "Inventory backend base URL"},
	{Name: "backend_timeout", Default: "30s", Desc: "HTTP client timeout for backend requests"},

	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "assetmanager", Desc: "MongoDB database name"},

	{Name: "session_key", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "Session signing key (must be strong in production)"},
	{Name: "session_name", Default: "assetmanager-session", Desc: "Session cookie name"},
	{Name: "session_domain", Default: "", Desc: "Session cookie domain (blank means current host)"},
	{Name: "session_max_age", Default: "24h", Desc: "Session cookie lifetime"},
	{Name: "csrf_key", Default: "", Desc: "CSRF secret, 32 bytes (blank disables CSRF outside prod)"},

	// Housekeeping
	{Name: "prefill_max_age", Default: "1h", Desc: "Unused discovery prefills older than this are purged"},
	{Name: "prefill_sweep_interval", Default: "10m", Desc: "Janitor interval for prefills and list caches"},
	{Name: "listcache_max_age", Default: "2h", Desc: "Cached alert rows idle longer than this are dropped"},

	// Audit logging settings
	{Name: "audit_log_auth", Default: "all", Desc: "Auth event logging: 'all' (db+log), 'db', 'log', or 'off'"},
	{Name: "audit_log_inventory", Default: "all", Desc: "Inventory change logging: 'all' (db+log), 'db', 'log', or 'off'"},

	// Timeouts
	{Name: "timeout_short", Default: "5s", Desc: "Budget for single-record fetches"},
	{Name: "timeout_medium", Default: "10s", Desc: "Budget for lists and dashboard widgets"},
	{Name: "timeout_long", Default: "60s", Desc: "Budget for mutations and scans"},

	// Login rate limits
	{Name: "login_rate_ip", Default: 20, Desc: "Login attempts per minute per client IP"},
	{Name: "login_rate_user", Default: 5, Desc: "Login attempts per five minutes per username"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles .env files, config files,
// environment variables (WAFFLE_* for core, ASSETMANAGER_* for app) and
// command-line flags, merged with precedence flags > env > files > defaults.
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "ASSETMANAGER", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		BackendURL:     appValues.String("backend_url"),
		BackendTimeout: appValues.Duration("backend_timeout", 30*time.Second),

		MongoURI:      appValues.String("mongo_uri"),
		MongoDatabase: appValues.String("mongo_database"),

		SessionKey:    appValues.String("session_key"),
		SessionName:   appValues.String("session_name"),
		SessionDomain: appValues.String("session_domain"),
		SessionMaxAge: appValues.Duration("session_max_age", 24*time.Hour),
		CSRFKey:       appValues.String("csrf_key"),

		PrefillMaxAge:        appValues.Duration("prefill_max_age", time.Hour),
		PrefillSweepInterval: appValues.Duration("prefill_sweep_interval", 10*time.Minute),
		ListCacheMaxAge:      appValues.Duration("listcache_max_age", 2*time.Hour),

		AuditLogAuth:      appValues.String("audit_log_auth"),
		AuditLogInventory: appValues.String("audit_log_inventory"),

		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutLong:   appValues.Duration("timeout_long", 60*time.Second),

		LoginRateIP:   appValues.Int("login_rate_ip"),
		LoginRateUser: appValues.Int("login_rate_user"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI and the backend URL are checked here so configuration
// mistakes abort startup before anything tries to connect.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if err := validateBackendURL(appCfg.BackendURL); err != nil {
		logger.Error("invalid backend URL", zap.String("backend_url", appCfg.BackendURL), zap.Error(err))
		return err
	}

	if appCfg.PrefillSweepInterval <= 0 {
		return fmt.Errorf("prefill_sweep_interval must be positive")
	}

	if appCfg.CSRFKey != "" && len(appCfg.CSRFKey) != 32 {
		return fmt.Errorf("csrf_key must be exactly 32 bytes, got %d", len(appCfg.CSRFKey))
	}
	if coreCfg != nil && coreCfg.Env == "prod" && appCfg.CSRFKey == "" {
		return fmt.Errorf("csrf_key is required in prod")
	}

	return nil
}

// validateBackendURL requires an absolute http or https URL with a host.
func validateBackendURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return fmt.Errorf("invalid backend URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("backend URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("backend URL %q has no host", raw)
	}
	return nil
}
