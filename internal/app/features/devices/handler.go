// internal/app/features/devices/handler.go
package devices

import (
	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	devicestore "github.com/dalemusser/assetmanager/internal/app/store/devices"
	discoverystore "github.com/dalemusser/assetmanager/internal/app/store/discovery"
	prefillstore "github.com/dalemusser/assetmanager/internal/app/store/prefill"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auditlog"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the device inventory.
type Handler struct {
	Devices   *devicestore.Store
	Lookups   modal.LookupSource
	Discovery *discoverystore.Store
	// Prefill may be nil when no MongoDB is configured; the add form then
	// ignores ?prefill=.
	Prefill *prefillstore.Store
	Guard   *actions.Guard
	SM      *auth.SessionManager
	Audit   *auditlog.Logger
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

// NewHandler wires the device handler.
func NewHandler(
	devices *devicestore.Store,
	lookups modal.LookupSource,
	discovery *discoverystore.Store,
	prefill *prefillstore.Store,
	guard *actions.Guard,
	sm *auth.SessionManager,
	audit *auditlog.Logger,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Devices:   devices,
		Lookups:   lookups,
		Discovery: discovery,
		Prefill:   prefill,
		Guard:     guard,
		SM:        sm,
		Audit:     audit,
		ErrLog:    errLog,
		Log:       logger,
	}
}
