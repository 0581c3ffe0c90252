// internal/app/features/alerts/list.go
package alerts

import (
	"context"
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// ServeList renders the alert table and remembers the shown rows for the
// detail dialog. A failed fetch empties the remembered rows.
//
// Route: GET /alerts
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Alerts.List(ctx, auth.Token(r))
	if err != nil {
		h.Log.Warn("list alerts failed", zap.Error(err))
	}

	table, shown := buildTable(list, err)
	table.FormField = csrf.TemplateField(r)
	h.Cache.Replace(auth.SessionID(r), shown)

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == tableTarget {
		templates.RenderSnippet(w, "alerts_table", table)
		return
	}

	data := listData{
		BaseVM: viewdata.NewBaseVM(w, r, h.SM, "Alertas", "/dashboard"),
		Table:  table,
	}
	templates.Render(w, r, "alerts_list", data)
}
