// internal/app/features/login/login.go
package login

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/assetmanager/internal/app/api"
	accountstore "github.com/dalemusser/assetmanager/internal/app/store/accounts"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"go.uber.org/zap"
)

const (
	msgMissingFields = "Por favor, preencha o usuário e a senha."
	msgBadLogin      = "Falha no login. Verifique suas credenciais."
	msgNoServer      = "Erro ao conectar com o servidor. Tente novamente mais tarde."
	msgNoSession     = "Não foi possível criar a sessão. Tente novamente."
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET /login                                                                  |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	ret := query.Get(r, "return")
	if auth.Token(r) != "" {
		http.Redirect(w, r, urlutil.SafeReturn(ret, "", "/dashboard"), http.StatusSeeOther)
		return
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Login", "/"),
		ReturnURL: ret,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /login                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// HandleLoginPost forwards the credentials to the backend and stores the
// returned token in the session.
func (h *Handler) HandleLoginPost(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Dados de formulário inválidos.", "/login")
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := strings.TrimSpace(r.FormValue("password"))
	if username == "" || password == "" {
		h.renderFormWithError(w, r, msgMissingFields, username)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if h.Limiter != nil {
		if ok, msg := h.Limiter.Check(r, username); !ok {
			h.AuditLog.LoginRateLimited(ctx, r, username)
			h.renderFormWithError(w, r, msg, username)
			return
		}
	}

	resp, err := h.Accounts.Login(ctx, username, password)
	switch {
	case errors.Is(err, accountstore.ErrNoToken):
		h.AuditLog.LoginFailed(ctx, r, username, "no token")
		h.renderFormWithError(w, r, msgBadLogin, username)
		return
	case api.KindOf(err) == api.KindTransport:
		h.Log.Warn("login request failed", zap.Error(err))
		h.renderFormWithError(w, r, msgNoServer, username)
		return
	case err != nil:
		h.AuditLog.LoginFailed(ctx, r, username, api.DisplayMessage(err))
		msg := msgBadLogin
		var ae *api.Error
		if errors.As(err, &ae) && ae.Message != "" {
			msg = ae.Message
		}
		h.renderFormWithError(w, r, msg, username)
		return
	}

	name := resp.User.Username
	if name == "" {
		name = username
	}
	if err := h.SessionMgr.SignIn(w, r, strconv.Itoa(resp.User.ID), name, resp.Token); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("username", username))
		h.renderFormWithError(w, r, msgNoSession, username)
		return
	}
	if h.Limiter != nil {
		h.Limiter.ResetUser(username)
	}
	h.AuditLog.LoginSuccess(ctx, r, name)

	dest := urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "/dashboard")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

func (h *Handler) renderFormWithError(w http.ResponseWriter, r *http.Request, msg, username string) {
	// From POST, "return" will be in the form; from GET, we might rely on the query.
	ret := strings.TrimSpace(r.FormValue("return"))
	if ret == "" {
		ret = query.Get(r, "return")
	}

	templates.Render(w, r, "login", loginFormData{
		BaseVM:    viewdata.NewBaseVM(w, r, h.SessionMgr, "Login", "/"),
		Error:     msg,
		Username:  username,
		ReturnURL: ret,
	})
}
