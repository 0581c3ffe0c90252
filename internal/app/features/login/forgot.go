// internal/app/features/login/forgot.go
package login

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/assetmanager/internal/app/system/inputval"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

const (
	msgEmailMissing = "Por favor, insira seu endereço de e-mail."
	msgEmailInvalid = "Por favor, insira um endereço de e-mail válido."
	// The confirmation never reveals whether the address has an account.
	msgResetSent = "Se o endereço de e-mail fornecido estiver associado a uma conta em nosso sistema, um link para redefinição de senha foi enviado."
)

/*─────────────────────────────────────────────────────────────────────────────*
| GET/POST /forgot-password                                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForgot(w http.ResponseWriter, r *http.Request) {
	h.renderForgot(w, r, forgotFormData{})
}

// HandleForgot validates the address and shows the generic confirmation.
// The backend has no reset endpoint, so nothing is forwarded.
func (h *Handler) HandleForgot(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Dados de formulário inválidos.", "/forgot-password")
		return
	}

	email := strings.TrimSpace(r.FormValue("email"))
	switch {
	case email == "":
		h.renderForgot(w, r, forgotFormData{Error: msgEmailMissing})
		return
	case !inputval.IsValidEmail(email):
		h.renderForgot(w, r, forgotFormData{Error: msgEmailInvalid, Email: email})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	h.AuditLog.PasswordResetRequested(ctx, r, email)

	h.renderForgot(w, r, forgotFormData{Success: msgResetSent})
}

func (h *Handler) renderForgot(w http.ResponseWriter, r *http.Request, data forgotFormData) {
	data.BaseVM = viewdata.NewBaseVM(w, r, h.SessionMgr, "Esqueceu a Senha", "/login")
	templates.Render(w, r, "forgot_password", data)
}
