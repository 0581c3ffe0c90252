// internal/app/features/devices/actions.go
package devices

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/store/audit"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/confirm"
	"github.com/dalemusser/assetmanager/internal/app/system/navigation"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"go.uber.org/zap"
)

func deleteConfirmMessage(id int) string {
	return fmt.Sprintf("Tem certeza que deseja remover o dispositivo ID: %d? Esta ação não pode ser desfeita.", id)
}

// HandleAction dispatches a row action of the device table.
//
// Route: POST /devices/actions
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	a, err := actions.FromRequest(r)
	if err != nil {
		h.ignore(w, r, err)
		return
	}

	switch a.Kind {
	case actions.View:
		if r.Header.Get("HX-Request") != "" {
			h.serveDetail(w, r, a.ID)
			return
		}
		http.Redirect(w, r, listPath+"/"+strconv.Itoa(a.ID), http.StatusSeeOther)
	case actions.Edit:
		if r.Header.Get("HX-Request") != "" {
			h.serveEditForm(w, r, a.ID)
			return
		}
		http.Redirect(w, r, listPath+"/"+strconv.Itoa(a.ID)+"/edit", http.StatusSeeOther)
	case actions.Delete:
		h.delete(w, r, a)
	case actions.None, actions.MarkRead, actions.Resolve, actions.Ignore, actions.Inventory, actions.ScanDetails:
		h.ignore(w, r, fmt.Errorf("action %s does not apply to devices", a.Kind))
	}
}

// ignore drops an action the table does not offer.
func (h *Handler) ignore(w http.ResponseWriter, r *http.Request, err error) {
	h.Log.Debug("device action ignored", zap.Error(err))
	if r.Header.Get("HX-Request") != "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.DevicesBackURL), http.StatusSeeOther)
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request, a actions.Action) {
	if !a.Confirmed {
		confirm.RedirectTo(w, r, confirmPath, a)
		return
	}
	token := auth.Token(r)
	if token == "" {
		h.SM.RedirectExpired(w, r)
		return
	}

	var msg string
	err := h.Guard.Do(actions.Key(auth.SessionID(r), resource, a), func() error {
		ctx, cancel := timeouts.Detached(r.Context(), h.Log, "delete device")
		defer cancel()

		var err error
		msg, err = h.Devices.Delete(ctx, a.ID, token)
		h.Audit.Change(ctx, r, audit.EventDeviceDeleted, resource, a.ID, msg, err, nil)
		return err
	})

	switch {
	case errors.Is(err, actions.ErrBusy):
		h.SM.AddFlash(w, r, auth.FlashError, msgBusy)
	case api.KindOf(err) == api.KindTransport:
		h.Log.Warn("delete device failed", zap.Error(err), zap.Int("device_id", a.ID))
		h.SM.AddFlash(w, r, auth.FlashError, msgDeleteCommFail)
	case err != nil:
		h.SM.AddFlash(w, r, auth.FlashError, "Erro ao remover dispositivo: "+api.DisplayMessage(err))
	default:
		h.SM.AddFlash(w, r, auth.FlashSuccess, orDefault(msg, msgDeleted))
	}

	back := navigation.SafeBackURL(r, navigation.DevicesBackURL)
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", back)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, back, http.StatusSeeOther)
}

// ServeConfirm asks before a device is removed.
//
// Route: GET /devices/confirm?action=delete&id=N
func (h *Handler) ServeConfirm(w http.ResponseWriter, r *http.Request) {
	a, err := actions.FromRequest(r)
	if err != nil || a.Kind != actions.Delete {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}
	back := navigation.SafeBackURL(r, navigation.DevicesBackURL)
	confirm.Render(w, r, confirm.NewPage(w, r, h.SM, "Remover Dispositivo", deleteConfirmMessage(a.ID), actionsPath, back, a))
}
