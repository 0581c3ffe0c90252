// internal/app/features/discovery/list.go
package discovery

import (
	"context"
	"errors"
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/store/audit"
	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// ServeList renders the discovered IP table.
//
// Route: GET /discovery
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Discovery.List(ctx, auth.Token(r))
	if err != nil {
		h.Log.Warn("list discovered ips failed", zap.Error(err))
	}

	table := buildTable(list, err)
	table.FormField = csrf.TemplateField(r)

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == tableTarget {
		templates.RenderSnippet(w, "discovery_table", table)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SM, "Descoberta de Rede", "/dashboard"),
		Table:  table,
	}
	templates.Render(w, r, "discovery_list", data)
}

// HandleScan starts a full network scan. A second submit from the same
// session while one is in flight is rejected.
//
// Route: POST /discovery/scan
func (h *Handler) HandleScan(w http.ResponseWriter, r *http.Request) {
	token := auth.Token(r)
	if token == "" {
		h.SM.RedirectExpired(w, r)
		return
	}

	var msg string
	key := auth.SessionID(r) + "|" + resource + "|scan"
	err := h.Guard.Do(key, func() error {
		ctx, cancel := timeouts.Detached(r.Context(), h.Log, "start scan")
		defer cancel()

		var err error
		msg, err = h.Discovery.StartScan(ctx, token)
		h.Audit.Change(ctx, r, audit.EventScanStarted, resource, 0, msg, err, nil)
		return err
	})

	switch {
	case errors.Is(err, actions.ErrBusy):
		h.SM.AddFlash(w, r, auth.FlashError, msgBusy)
	case api.KindOf(err) == api.KindTransport:
		h.Log.Warn("start scan failed", zap.Error(err))
		h.SM.AddFlash(w, r, auth.FlashError, msgScanCommFail)
	case err != nil:
		msg := api.DisplayMessage(err)
		if msg == "" {
			msg = msgScanFailed
		}
		h.SM.AddFlash(w, r, auth.FlashError, msg)
	default:
		if msg == "" {
			msg = msgScanDone
		}
		h.SM.AddFlash(w, r, auth.FlashSuccess, msg)
	}
	h.back(w, r)
}
