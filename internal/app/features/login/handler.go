// internal/app/features/login/handler.go
package login

import (
	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	accountstore "github.com/dalemusser/assetmanager/internal/app/store/accounts"
	"github.com/dalemusser/assetmanager/internal/app/system/auditlog"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/ratelimit"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type Handler struct {
	Accounts   *accountstore.Store
	SessionMgr *auth.SessionManager
	Limiter    *ratelimit.LoginLimiter
	AuditLog   *auditlog.Logger
	ErrLog     *uierrors.ErrorLogger
	Log        *zap.Logger
}

type loginFormData struct {
	viewdata.BaseVM
	Error     string
	Success   string
	Username  string
	ReturnURL string
}

type forgotFormData struct {
	viewdata.BaseVM
	Error   string
	Success string
	Email   string
}

func NewHandler(
	accounts *accountstore.Store,
	sm *auth.SessionManager,
	limiter *ratelimit.LoginLimiter,
	audit *auditlog.Logger,
	errLog *uierrors.ErrorLogger,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		Accounts:   accounts,
		SessionMgr: sm,
		Limiter:    limiter,
		AuditLog:   audit,
		ErrLog:     errLog,
		Log:        logger,
	}
}
