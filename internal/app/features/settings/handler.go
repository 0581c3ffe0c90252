// internal/app/features/settings/handler.go
package settings

import (
	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	settingsstore "github.com/dalemusser/assetmanager/internal/app/store/settings"
	"github.com/dalemusser/assetmanager/internal/app/system/auditlog"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler owns the scan settings form.
type Handler struct {
	Settings *settingsstore.Store
	SM       *auth.SessionManager
	Audit    *auditlog.Logger
	Log      *zap.Logger
	ErrLog   *uierrors.ErrorLogger
}

// NewHandler constructs a Handler bound to the backend settings store.
func NewHandler(store *settingsstore.Store, sm *auth.SessionManager, audit *auditlog.Logger, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Settings: store,
		SM:       sm,
		Audit:    audit,
		Log:      logger,
		ErrLog:   errLog,
	}
}
