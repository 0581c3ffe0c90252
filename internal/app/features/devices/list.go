// internal/app/features/devices/list.go
package devices

import (
	"context"
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// ServeList renders the device table. The optional "search" parameter is
// passed through to the backend filter.
//
// Route: GET /devices
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	search := query.Search(r, "search")

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	devs, err := h.Devices.List(ctx, search, auth.Token(r))
	if err != nil {
		h.Log.Warn("list devices failed", zap.Error(err), zap.String("search", search))
	}

	table := buildTable(devs, err)
	table.Search = search
	table.FormField = csrf.TemplateField(r)

	// HTMX partial: just the table
	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == tableTarget {
		templates.RenderSnippet(w, "devices_table", table)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SM, "Dispositivos", "/dashboard"),
		Table:  table,
	}
	templates.Render(w, r, "devices_list", data)
}
