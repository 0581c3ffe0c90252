// internal/app/features/discovery/actions.go
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/store/audit"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/confirm"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/app/system/navigation"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// HandleAction dispatches a row action of the discovered IP table.
//
// Route: POST /discovery/actions
func (h *Handler) HandleAction(w http.ResponseWriter, r *http.Request) {
	a, err := actions.FromRequest(r)
	if err != nil {
		h.ignore(w, r, err)
		return
	}

	switch a.Kind {
	case actions.View:
		h.view(w, r, a.ID)
	case actions.Inventory:
		h.inventory(w, r, a.ID)
	case actions.Ignore:
		h.setIgnored(w, r, a)
	case actions.ScanDetails:
		h.scanDetails(w, r, a)
	case actions.None, actions.MarkRead, actions.Resolve, actions.Edit, actions.Delete:
		h.ignore(w, r, fmt.Errorf("action %s does not apply to discovery", a.Kind))
	}
}

func (h *Handler) ignore(w http.ResponseWriter, r *http.Request, err error) {
	h.Log.Debug("discovery action ignored", zap.Error(err))
	if r.Header.Get("HX-Request") != "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, navigation.SafeBackURL(r, navigation.DiscoveryBackURL), http.StatusSeeOther)
}

func (h *Handler) back(w http.ResponseWriter, r *http.Request) {
	h.redirect(w, r, navigation.SafeBackURL(r, navigation.DiscoveryBackURL))
}

func (h *Handler) redirect(w http.ResponseWriter, r *http.Request, to string) {
	if r.Header.Get("HX-Request") != "" {
		w.Header().Set("HX-Redirect", to)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, to, http.StatusSeeOther)
}

// fetch loads one discovered IP, flashing and redirecting back on failure.
func (h *Handler) fetch(w http.ResponseWriter, r *http.Request, id int) (models.DiscoveredIP, bool) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	d, err := h.Discovery.Get(ctx, id, auth.Token(r))
	if err == nil {
		return d, true
	}
	h.Log.Warn("get discovered ip failed", zap.Error(err), zap.Int("ip_id", id))
	msg := "Erro ao buscar dados do IP: " + api.DisplayMessage(err)
	if api.KindOf(err) == api.KindTransport {
		msg = msgIPCommFail
	}
	h.SM.AddFlash(w, r, auth.FlashError, msg)
	h.back(w, r)
	return models.DiscoveredIP{}, false
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request, id int) {
	d, ok := h.fetch(w, r, id)
	if !ok {
		return
	}

	state, _ := modal.Hidden.Open(modal.Detail)
	data := detailData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SM, modal.TitleIPDetail, listPath),
		Modal:  modal.View{State: state, Title: modal.TitleIPDetail},
		ID:     d.ID,
		Fields: detailFields(d),
	}
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "ip_detail_modal", data)
		return
	}
	templates.Render(w, r, "ip_detail_page", data)
}

// inventory hands the discovered address to the device-add form.
func (h *Handler) inventory(w http.ResponseWriter, r *http.Request, id int) {
	if h.Prefill == nil {
		h.redirect(w, r, "/devices/new")
		return
	}
	d, ok := h.fetch(w, r, id)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	key, err := h.Prefill.Put(ctx, prefillOf(d))
	if err != nil {
		h.Log.Error("store device prefill failed", zap.Error(err), zap.Int("ip_id", id))
		h.redirect(w, r, "/devices/new")
		return
	}
	h.redirect(w, r, "/devices/new?"+url.Values{"prefill": {key}}.Encode())
}

func (h *Handler) setIgnored(w http.ResponseWriter, r *http.Request, a actions.Action) {
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
		ctx, cancel := timeouts.Detached(r.Context(), h.Log, "ignore discovered ip")
		defer cancel()

		var err error
		msg, err = h.Discovery.SetStatus(ctx, a.ID, models.DiscoveryStatusIgnored, token)
		h.Audit.Change(ctx, r, audit.EventIPStatusChanged, resource, a.ID, msg, err,
			map[string]string{"status": models.DiscoveryStatusIgnored, "ip": a.IP})
		return err
	})
	h.flashResult(w, r, err, msg, msgIgnored, "Erro ao ignorar IP: ")
	h.back(w, r)
}

func (h *Handler) scanDetails(w http.ResponseWriter, r *http.Request, a actions.Action) {
	if a.IP == "" {
		h.SM.AddFlash(w, r, auth.FlashError, msgNoIP)
		h.back(w, r)
		return
	}
	token := auth.Token(r)
	if token == "" {
		h.SM.RedirectExpired(w, r)
		return
	}

	var msg string
	err := h.Guard.Do(actions.Key(auth.SessionID(r), resource, a), func() error {
		ctx, cancel := timeouts.Detached(r.Context(), h.Log, "scan ip details")
		defer cancel()

		var err error
		msg, err = h.Discovery.ScanDetails(ctx, a.ID, a.IP, token)
		h.Audit.Change(ctx, r, audit.EventIPScanRequested, resource, a.ID, msg, err,
			map[string]string{"ip": a.IP})
		return err
	})
	h.flashResult(w, r, err, msg, msgScanQueued, "Erro ao solicitar varredura: ")
	h.back(w, r)
}

func (h *Handler) flashResult(w http.ResponseWriter, r *http.Request, err error, msg, okDefault, failPrefix string) {
	switch {
	case errors.Is(err, actions.ErrBusy):
		h.SM.AddFlash(w, r, auth.FlashError, msgBusy)
	case api.KindOf(err) == api.KindTransport:
		h.Log.Warn("discovery action failed", zap.Error(err))
		h.SM.AddFlash(w, r, auth.FlashError, msgIPCommFail)
	case err != nil:
		h.SM.AddFlash(w, r, auth.FlashError, failPrefix+api.DisplayMessage(err))
	case msg != "":
		h.SM.AddFlash(w, r, auth.FlashSuccess, msg)
	default:
		h.SM.AddFlash(w, r, auth.FlashSuccess, okDefault)
	}
}

// ServeConfirm asks before a discovered IP is ignored.
//
// Route: GET /discovery/confirm?action=ignore&id=N&ip=A
func (h *Handler) ServeConfirm(w http.ResponseWriter, r *http.Request) {
	a, err := actions.FromRequest(r)
	if err != nil || a.Kind != actions.Ignore {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}
	back := navigation.SafeBackURL(r, navigation.DiscoveryBackURL)
	confirm.Render(w, r, confirm.NewPage(w, r, h.SM, "Ignorar IP", ignoreConfirmMessage(a.IP, a.ID), actionsPath, back, a))
}
