// internal/app/features/reports/handler.go
package reports

import (
	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	devicestore "github.com/dalemusser/assetmanager/internal/app/store/devices"
	reportstore "github.com/dalemusser/assetmanager/internal/app/store/reports"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler owns the report page and its CSV export. Device reports read
// through the device store; the OS summary has its own endpoint.
type Handler struct {
	Devices *devicestore.Store
	Reports *reportstore.Store
	SM      *auth.SessionManager
	Log     *zap.Logger
	ErrLog  *uierrors.ErrorLogger
}

func NewHandler(devices *devicestore.Store, reports *reportstore.Store, sm *auth.SessionManager, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Devices: devices,
		Reports: reports,
		SM:      sm,
		Log:     logger,
		ErrLog:  errLog,
	}
}
