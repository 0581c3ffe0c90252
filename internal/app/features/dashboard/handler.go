// internal/app/features/dashboard/handler.go
package dashboard

import (
	"context"
	"net/http"

	dashboardstore "github.com/dalemusser/assetmanager/internal/app/store/dashboard"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Handler struct {
	Dashboard *dashboardstore.Store
	SM        *auth.SessionManager
	Log       *zap.Logger
}

func NewHandler(store *dashboardstore.Store, sm *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		Dashboard: store,
		SM:        sm,
		Log:       logger,
	}
}

type pageData struct {
	viewdata.BaseVM
	Widgets widgets
}

// ServeDashboard renders the four dashboard widgets. The fetches run
// concurrently and a failure only degrades its own widget.
//
// Route: GET /dashboard
func (h *Handler) ServeDashboard(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, h.SM, "Dashboard", "/dashboard"),
		Widgets: h.load(ctx, auth.Token(r)),
	}

	h.Log.Debug("dashboard served", zap.Bool("signed_in", data.IsLoggedIn))

	templates.Render(w, r, "dashboard_page", data)
}

// load fetches every widget. The goroutines never return errors; each
// failure is captured into its widget.
func (h *Handler) load(ctx context.Context, token string) widgets {
	var (
		summary    models.DashboardSummary
		summaryErr error
		recent     []models.Alert
		recentErr  error
		osDist     []models.OSDistribution
		osErr      error
		status     []models.StatusDistribution
		statusErr  error
	)

	var g errgroup.Group
	g.Go(func() error {
		summary, summaryErr = h.Dashboard.Summary(ctx, token)
		h.logFailure("summary", summaryErr)
		return nil
	})
	g.Go(func() error {
		recent, recentErr = h.Dashboard.RecentAlerts(ctx, token)
		h.logFailure("recent alerts", recentErr)
		return nil
	})
	g.Go(func() error {
		osDist, osErr = h.Dashboard.OSDistribution(ctx, token)
		h.logFailure("os distribution", osErr)
		return nil
	})
	g.Go(func() error {
		status, statusErr = h.Dashboard.StatusDistribution(ctx, token)
		h.logFailure("status distribution", statusErr)
		return nil
	})
	_ = g.Wait()

	return widgets{
		Counters:     buildCounters(summary, summaryErr),
		RecentAlerts: buildRecentAlerts(recent, recentErr),
		OSChart:      buildOSChart(osDist, osErr),
		StatusChart:  buildStatusChart(status, statusErr),
	}
}

func (h *Handler) logFailure(widget string, err error) {
	if err != nil {
		h.Log.Warn("dashboard fetch failed", zap.String("widget", widget), zap.Error(err))
	}
}
