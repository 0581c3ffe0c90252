// internal/app/features/reports/report.go
package reports

import (
	"context"
	"encoding/csv"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeReport renders the report selector and, when ?type= is given, the
// generated report.
//
// Route: GET /reports
func (h *Handler) ServeReport(w http.ResponseWriter, r *http.Request) {
	t := reportType(query.Get(r, "type"))

	var res result
	if _, submitted := r.URL.Query()["type"]; submitted {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
		defer cancel()
		res = h.generate(ctx, t, auth.Token(r))
	} else {
		res = result{Title: defaultTitle}
	}

	data := pageData{
		BaseVM:  viewdata.NewBaseVM(w, r, h.SM, "Relatórios", "/dashboard"),
		Options: options(t),
		Report:  res,
	}

	if r.Header.Get("HX-Request") != "" && r.Header.Get("HX-Target") == "report-output" {
		templates.RenderSnippet(w, "report_output", data.Report)
		return
	}
	templates.Render(w, r, "reports_page", data)
}

// generate fetches and shapes one report.
func (h *Handler) generate(ctx context.Context, t reportType, token string) result {
	if t == "" {
		return result{Title: defaultTitle, Message: msgSelectType, Failed: true}
	}
	title, ok := titleOf(t)
	if !ok {
		return result{Type: t, Title: defaultTitle, Message: msgNotImplement, Failed: true}
	}

	res := result{Type: t, Title: title}
	if t == typeOSSummary {
		rows, err := h.Reports.OSSummary(ctx, token)
		if err != nil {
			return h.failed(t, err)
		}
		for _, s := range rows {
			res.OS = append(res.OS, newOSRow(s))
		}
		if len(res.OS) == 0 {
			res.Message = msgNoOSSummary
		}
		return res
	}

	devs, err := h.fetchDevices(ctx, t, token)
	if err != nil {
		return h.failed(t, err)
	}
	for _, d := range devs {
		res.Devices = append(res.Devices, newDeviceRow(d))
	}
	if len(res.Devices) == 0 {
		res.Message = msgNoDevices
	}
	return res
}

func (h *Handler) fetchDevices(ctx context.Context, t reportType, token string) ([]models.Device, error) {
	switch t {
	case typeDevicesOnline:
		return h.Devices.Online(ctx, token)
	case typeDevicesOffline:
		return h.Devices.Offline(ctx, token)
	default:
		return h.Devices.List(ctx, "", token)
	}
}

func (h *Handler) failed(t reportType, err error) result {
	h.Log.Warn("generate report failed", zap.String("type", string(t)), zap.Error(err))
	msg := msgFailurePrefix + api.DisplayMessage(err)
	if api.KindOf(err) == api.KindTransport {
		msg = msgFailurePrefix + msgCommFailure
	}
	return result{Type: t, Title: errorTitle, Message: msg, Failed: true}
}

// ServeCSV streams a generated report as CSV. A report that cannot be
// generated sends the user back to /reports with the reason flashed.
//
// Route: GET /reports/export.csv?type=...
func (h *Handler) ServeCSV(w http.ResponseWriter, r *http.Request) {
	t := reportType(query.Get(r, "type"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	res := h.generate(ctx, t, auth.Token(r))
	if res.Failed {
		h.SM.AddFlash(w, r, auth.FlashError, res.Message)
		http.Redirect(w, r, "/reports", http.StatusSeeOther)
		return
	}

	filename := fmt.Sprintf("%s_%s.csv", t, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, url.PathEscape(filename)))

	// UTF-8 BOM so spreadsheet apps detect the encoding.
	_, _ = w.Write([]byte{0xEF, 0xBB, 0xBF})

	cw := csv.NewWriter(w)
	defer cw.Flush()

	if t == typeOSSummary {
		_ = cw.Write(osHeader)
		for _, row := range res.OS {
			_ = cw.Write(row.csv())
		}
		return
	}
	_ = cw.Write(deviceHeader)
	for _, row := range res.Devices {
		_ = cw.Write(row.csv())
	}
}
