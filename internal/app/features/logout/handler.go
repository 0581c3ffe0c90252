// internal/app/features/logout/handler.go
package logout

import (
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/system/auditlog"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/listcache"
	"go.uber.org/zap"
)

type Handler struct {
	Log        *zap.Logger
	SessionMgr *auth.SessionManager
	Audit      *auditlog.Logger
	// Caches are the per-session list caches forgotten on sign-out.
	Caches []listcache.Evicter
}

func NewHandler(sessionMgr *auth.SessionManager, audit *auditlog.Logger, caches []listcache.Evicter, logger *zap.Logger) *Handler {
	return &Handler{
		Log:        logger,
		SessionMgr: sessionMgr,
		Audit:      audit,
		Caches:     caches,
	}
}

// ServeLogout handles GET /logout.
func (h *Handler) ServeLogout(w http.ResponseWriter, r *http.Request) {
	h.Audit.Logout(r.Context(), r)

	if sid := auth.SessionID(r); sid != "" {
		for _, c := range h.Caches {
			c.Drop(sid)
		}
	}

	// Get current session.
	session, err := h.SessionMgr.GetSession(r)
	if err != nil {
		// Session decode failed. Log and continue - we'll still try to clear the cookie.
		h.Log.Warn("session decode failed during logout", zap.Error(err))
	}

	// Ensure the deletion-cookie matches the original store settings.
	if opts := h.SessionMgr.Store().Options; opts != nil {
		session.Options.Domain = opts.Domain
		session.Options.Path = opts.Path
		session.Options.Secure = opts.Secure
		session.Options.HttpOnly = opts.HttpOnly
		session.Options.SameSite = opts.SameSite
	}
	session.Options.MaxAge = -1 // delete immediately

	if err := session.Save(r, w); err != nil {
		h.Log.Error("logout: save session", zap.Error(err))
	}

	// HTMX handling: use HX-Redirect to force a client-side navigation.
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", "/login")
		w.WriteHeader(http.StatusOK)
		return
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
