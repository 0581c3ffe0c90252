// internal/app/features/discovery/handler.go
package discovery

import (
	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	discoverystore "github.com/dalemusser/assetmanager/internal/app/store/discovery"
	prefillstore "github.com/dalemusser/assetmanager/internal/app/store/prefill"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auditlog"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"go.uber.org/zap"
)

// Handler serves the network discovery page.
type Handler struct {
	Discovery *discoverystore.Store
	// Prefill receives the handoff written by the inventory action. When nil
	// the action opens an empty add form.
	Prefill *prefillstore.Store
	Guard   *actions.Guard
	SM      *auth.SessionManager
	Audit   *auditlog.Logger
	ErrLog  *uierrors.ErrorLogger
	Log     *zap.Logger
}

func NewHandler(
	discovery *discoverystore.Store,
	prefill *prefillstore.Store,
	guard *actions.Guard,
	sm *auth.SessionManager,
	audit *auditlog.Logger,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Discovery: discovery,
		Prefill:   prefill,
		Guard:     guard,
		SM:        sm,
		Audit:     audit,
		ErrLog:    errLog,
		Log:       logger,
	}
}
