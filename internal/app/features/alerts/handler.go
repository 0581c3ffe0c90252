// internal/app/features/alerts/handler.go
package alerts

import (
	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	alertstore "github.com/dalemusser/assetmanager/internal/app/store/alerts"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auditlog"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/listcache"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the alerts page. Cache holds, per browser session, the
// rows of the last rendered list; the detail view reads from it.
type Handler struct {
	Alerts *alertstore.Store
	Cache  *listcache.Cache[models.Alert]
	Guard  *actions.Guard
	SM     *auth.SessionManager
	Audit  *auditlog.Logger
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(
	alerts *alertstore.Store,
	cache *listcache.Cache[models.Alert],
	guard *actions.Guard,
	sm *auth.SessionManager,
	audit *auditlog.Logger,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Alerts: alerts,
		Cache:  cache,
		Guard:  guard,
		SM:     sm,
		Audit:  audit,
		ErrLog: errLog,
		Log:    logger,
	}
}
