// internal/app/features/alerts/actions.go
package alerts

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/store/audit"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/confirm"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/app/system/navigation"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// HandleAction dispatches a row action of the alert table.
//
// Route: POST /alerts/actions
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	a, err := actions.FromRequest(r)
	if err != nil {
		h.ignore(w, r, err)
		return
	}

	switch a.Kind {
	case actions.View:
		h.view(w, r, a.ID)
	case actions.MarkRead, actions.Resolve:
		h.setStatus(w, r, a)
	case actions.None, actions.Edit, actions.Delete, actions.Ignore, actions.Inventory, actions.ScanDetails:
		h.ignore(w, r, fmt.Errorf("action %s does not apply to alerts", a.Kind))
	}
}

func (h *Handler) ignore(w http.ResponseWriter, r *http.Request, err error) {
	h.Log.Debug("alert action ignored", zap.Error(err))
	if r.Header.Get("HX-Request") != "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.AlertsBackURL), http.StatusSeeOther)
}

// view opens the detail dialog from the rows of the last rendered list.
// No backend call is made.
func (h *Handler) view(w http.ResponseWriter, r *http.Request, id int) {
	al, ok := h.Cache.Lookup(auth.SessionID(r), id)
	if !ok {
		h.SM.AddFlash(w, r, auth.FlashError, msgNotFound)
		h.back(w, r)
		return
	}

	state, _ := modal.Hidden.Open(modal.Detail)
	data := detailData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SM, modal.TitleAlertDetail, listPath),
		Modal:  modal.View{State: state, Title: modal.TitleAlertDetail},
		Detail: newDetail(al),
	}
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "alert_detail_modal", data)
		return
	}
	templates.Render(w, r, "alert_detail_page", data)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request, a actions.Action) {
	if !a.Confirmed {
		confirm.RedirectTo(w, r, confirmPath, a)
		return
	}
	token := auth.Token(r)
	if token == "" {
		h.SM.RedirectExpired(w, r)
		return
	}

	status := targetStatus(a.Kind)
	var msg string
	err := h.Guard.Do(actions.Key(auth.SessionID(r), resource, a), func() error {
		ctx, cancel := timeouts.Detached(r.Context(), h.Log, "set alert status")
		defer cancel()

		var err error
		msg, err = h.Alerts.SetStatus(ctx, a.ID, status, token)
		h.Audit.Change(ctx, r, audit.EventAlertStatusChanged, resource, a.ID, msg, err,
			map[string]string{"status": status})
		return err
	})

	switch {
	case errors.Is(err, actions.ErrBusy):
		h.SM.AddFlash(w, r, auth.FlashError, msgBusy)
	case api.KindOf(err) == api.KindTransport:
		h.Log.Warn("set alert status failed", zap.Error(err), zap.Int("alert_id", a.ID))
		h.SM.AddFlash(w, r, auth.FlashError, msgStatusCommErr)
	case err != nil:
		h.SM.AddFlash(w, r, auth.FlashError, "Erro ao atualizar status: "+api.DisplayMessage(err))
	default:
		if msg == "" {
			msg = fmt.Sprintf("Status do alerta atualizado para '%s'.", status)
		}
		h.SM.AddFlash(w, r, auth.FlashSuccess, msg)
	}
	h.back(w, r)
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	back := navigation.SafeBackURL(r, navigation.AlertsBackURL)
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", back)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// ServeConfirm asks before an alert changes state.
//
// Route: GET /alerts/confirm?action=mark-read|resolve&id=N
func (h *Handler) ServeConfirm(w http.ResponseWriter, r *http.Request) {
	a, err := actions.FromRequest(r)
	if err != nil || (a.Kind != actions.MarkRead && a.Kind != actions.Resolve) {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}
	back := navigation.SafeBackURL(r, navigation.AlertsBackURL)
	msg := confirmMessage(a.ID, targetStatus(a.Kind))
	confirm.Render(w, r, confirm.NewPage(w, r, h.SM, "Atualizar Alerta", msg, actionsPath, back, a))
}
