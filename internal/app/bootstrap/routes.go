// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	alertsfeature "github.com/dalemusser/assetmanager/internal/app/features/alerts"
	dashboardfeature "github.com/dalemusser/assetmanager/internal/app/features/dashboard"
	devicesfeature "github.com/dalemusser/assetmanager/internal/app/features/devices"
	discoveryfeature "github.com/dalemusser/assetmanager/internal/app/features/discovery"
	errorsfeature "github.com/dalemusser/assetmanager/internal/app/features/errors"
	healthfeature "github.com/dalemusser/assetmanager/internal/app/features/health"
	homefeature "github.com/dalemusser/assetmanager/internal/app/features/home"
	loginfeature "github.com/dalemusser/assetmanager/internal/app/features/login"
	logoutfeature "github.com/dalemusser/assetmanager/internal/app/features/logout"
	reportsfeature "github.com/dalemusser/assetmanager/internal/app/features/reports"
	settingsfeature "github.com/dalemusser/assetmanager/internal/app/features/settings"
	accountstore "github.com/dalemusser/assetmanager/internal/app/store/accounts"
	alertstore "github.com/dalemusser/assetmanager/internal/app/store/alerts"
	auditstore "github.com/dalemusser/assetmanager/internal/app/store/audit"
	dashboardstore "github.com/dalemusser/assetmanager/internal/app/store/dashboard"
	devicestore "github.com/dalemusser/assetmanager/internal/app/store/devices"
	discoverystore "github.com/dalemusser/assetmanager/internal/app/store/discovery"
	lookupstore "github.com/dalemusser/assetmanager/internal/app/store/lookups"
	reportstore "github.com/dalemusser/assetmanager/internal/app/store/reports"
	settingsstore "github.com/dalemusser/assetmanager/internal/app/store/settings"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auditlog"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/listcache"
	"github.com/dalemusser/assetmanager/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// the Startup hook have completed. It initializes the session manager and
// the template engine, builds one store per backend resource, and mounts
// the feature routers: login, dashboard, devices, alerts, discovery,
// reports and settings.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	errorsHandler := errorsfeature.NewHandler()

	// Backend-facing stores share one client.
	accounts := accountstore.New(deps.Backend)
	alerts := alertstore.New(deps.Backend)
	dashboard := dashboardstore.New(deps.Backend)
	devices := devicestore.New(deps.Backend)
	discovery := discoverystore.New(deps.Backend)
	lookups := lookupstore.New(deps.Backend)
	reports := reportstore.New(deps.Backend)
	settings := settingsstore.New(deps.Backend)

	audit := auditlog.New(auditstore.New(deps.MongoDatabase), logger, auditlog.Config{
		Auth:      appCfg.AuditLogAuth,
		Inventory: appCfg.AuditLogInventory,
	})
	guard := actions.NewGuard()
	limiter := ratelimit.NewLoginLimiter(appCfg.LoginRateIP, appCfg.LoginRateUser)
	caches := []listcache.Evicter{deps.AlertCache}

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators. Mounted
	// before the session and CSRF middleware so health checks stay cookie-free.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Backend, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	r.Group(func(app chi.Router) {
		app.Use(csrfMiddleware(coreCfg, appCfg, errorsHandler, logger)...)

		// Loads the token and session ID into the request context.
		app.Use(sessionMgr.LoadSessionUser)

		homeHandler := homefeature.NewHandler(logger)
		app.Get("/", homeHandler.ServeRoot)

		// Authentication
		loginHandler := loginfeature.NewHandler(accounts, sessionMgr, limiter, audit, errLog, logger)
		app.Mount("/login", loginfeature.Routes(loginHandler))
		app.Mount("/forgot-password", loginfeature.ForgotRoutes(loginHandler))

		logoutHandler := logoutfeature.NewHandler(sessionMgr, audit, caches, logger)
		app.Mount("/logout", logoutfeature.Routes(logoutHandler))

		app.Get("/unauthorized", errorsHandler.Unauthorized)

		dashboardHandler := dashboardfeature.NewHandler(dashboard, sessionMgr, logger)
		app.Mount("/dashboard", dashboardfeature.Routes(dashboardHandler))

		// Inventory
		devicesHandler := devicesfeature.NewHandler(devices, lookups, discovery, deps.Prefill, guard, sessionMgr, audit, errLog, logger)
		app.Mount("/devices", devicesfeature.Routes(devicesHandler, sessionMgr))

		alertsHandler := alertsfeature.NewHandler(alerts, deps.AlertCache, guard, sessionMgr, audit, errLog, logger)
		app.Mount("/alerts", alertsfeature.Routes(alertsHandler))

		discoveryHandler := discoveryfeature.NewHandler(discovery, deps.Prefill, guard, sessionMgr, audit, errLog, logger)
		app.Mount("/discovery", discoveryfeature.Routes(discoveryHandler))

		reportsHandler := reportsfeature.NewHandler(devices, reports, sessionMgr, errLog, logger)
		app.Mount("/reports", reportsfeature.Routes(reportsHandler))

		settingsHandler := settingsfeature.NewHandler(settings, sessionMgr, audit, errLog, logger)
		app.Mount("/settings", settingsfeature.Routes(settingsHandler))

		app.NotFound(errorsHandler.NotFound)
	})

	return r, nil
}

// csrfMiddleware returns the CSRF protection chain. Without a csrf_key
// (accepted outside prod only) protection is off and the chain is empty.
func csrfMiddleware(coreCfg *config.CoreConfig, appCfg AppConfig, errorsHandler *errorsfeature.Handler, logger *zap.Logger) []func(http.Handler) http.Handler {
	if appCfg.CSRFKey == "" {
		logger.Warn("csrf_key not set; CSRF protection disabled")
		return nil
	}

	secure := coreCfg.Env == "prod"
	protect := csrf.Protect(
		[]byte(appCfg.CSRFKey),
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.FieldName("csrf_token"),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger.Warn("csrf check failed",
				zap.String("path", r.URL.Path),
				zap.Error(csrf.FailureReason(r)))
			errorsHandler.Forbidden(w, r)
		})),
	)

	if secure {
		return []func(http.Handler) http.Handler{protect}
	}

	// Over plain http the origin check must be told the request is not TLS.
	plaintext := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, csrf.PlaintextHTTPRequest(r))
		})
	}
	return []func(http.Handler) http.Handler{plaintext, protect}
}
