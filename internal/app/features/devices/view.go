// internal/app/features/devices/view.go
package devices

import (
	"context"
	"net/http"
	"strconv"

	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func parseID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	return id, err == nil && id > 0
}

// ServeView shows one device. HTMX requests get the detail dialog; full
// page requests get a standalone page.
//
// Route: GET /devices/{id}
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		uierrors.HTMXBadRequest(w, r, msgInvalidID, listPath)
		return
	}
	h.serveDetail(w, r, id)
}

func (h *Handler) serveDetail(w http.ResponseWriter, r *http.Request, id int) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	dev, err := h.Devices.Get(ctx, id, auth.Token(r))
	if err != nil {
		h.Log.Warn("get device failed", zap.Error(err), zap.Int("device_id", id))
		msg := "Erro ao buscar dados do dispositivo: " + api.DisplayMessage(err)
		if api.KindOf(err) == api.KindTransport {
			msg = msgCommFailure
		}
		uierrors.HTMXError(w, r, http.StatusBadGateway, msg, func() {
			h.SM.AddFlash(w, r, auth.FlashError, msg)
			http.Redirect(w, r, listPath, http.StatusSeeOther)
		})
		return
	}

	state, _ := modal.Hidden.Open(modal.Detail)
	data := detailData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SM, modal.TitleDeviceDetail, listPath),
		Modal:  modal.View{State: state, Title: modal.TitleDeviceDetail},
		ID:     dev.ID,
		Fields: detailFields(dev),
	}

	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "device_detail_modal", data)
		return
	}
	templates.Render(w, r, "device_detail_page", data)
}
