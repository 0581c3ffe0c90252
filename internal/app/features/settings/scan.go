// internal/app/features/settings/scan.go
package settings

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/store/audit"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/formutil"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

const (
	pageTitle = "Configurações de Varredura"

	msgSaved        = "Configurações salvas com sucesso!"
	msgSaveFailed   = "Erro ao salvar configurações."
	msgSaveCommFail = "Erro de comunicação ao salvar configurações."
	msgLoadCommFail = "Falha ao carregar configurações. Erro de comunicação."
	msgBadFrequency = "Frequência de varredura inválida."
)

type frequencyOption struct {
	Minutes  int
	Label    string
	Selected bool
}

var frequencies = []frequencyOption{
	{Minutes: 15, Label: "A cada 15 minutos"},
	{Minutes: 30, Label: "A cada 30 minutos"},
	{Minutes: 60, Label: "A cada hora"},
	{Minutes: 360, Label: "A cada 6 horas"},
	{Minutes: 720, Label: "A cada 12 horas"},
	{Minutes: 1440, Label: "Diariamente"},
}

// frequencyOptions marks the current value, adding it when the backend
// holds a value outside the fixed list.
func frequencyOptions(current *int) []frequencyOption {
	out := make([]frequencyOption, 0, len(frequencies)+1)
	found := current == nil
	for _, f := range frequencies {
		if current != nil && f.Minutes == *current {
			f.Selected = true
			found = true
		}
		out = append(out, f)
	}
	if !found {
		out = append(out, frequencyOption{
			Minutes:  *current,
			Label:    "A cada " + strconv.Itoa(*current) + " minutos",
			Selected: true,
		})
	}
	return out
}

type scanForm struct {
	formutil.Base
	FaixasIP    string
	Frequencies []frequencyOption
	Ativada     bool
}

func newScanForm(cfg models.ScanConfig) scanForm {
	f := scanForm{Frequencies: frequencyOptions(cfg.FrequenciaMinutos)}
	if cfg.FaixasIP != nil {
		f.FaixasIP = *cfg.FaixasIP
	}
	if cfg.VarreduraAtivada != nil {
		f.Ativada = *cfg.VarreduraAtivada
	}
	return f
}

// parseScanForm reads the posted form. An unset frequency is sent as null.
func parseScanForm(r *http.Request) (models.ScanConfig, error) {
	faixas := strings.TrimSpace(r.PostFormValue("FaixasIP"))
	cfg := models.ScanConfig{FaixasIP: &faixas}

	if raw := strings.TrimSpace(r.PostFormValue("FrequenciaMinutos")); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return cfg, errBadFrequency
		}
		cfg.FrequenciaMinutos = &n
	}

	enabled := r.PostFormValue("VarreduraAtivada") != ""
	cfg.VarreduraAtivada = &enabled
	return cfg, nil
}

// ServeScanConfig renders the scan settings form filled from the backend.
//
// Route: GET /settings/scan
func (h *Handler) ServeScanConfig(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	cfg, err := h.Settings.ScanConfig(ctx, auth.Token(r))
	data := newScanForm(cfg)
	formutil.SetBase(&data.Base, w, r, h.SM, pageTitle, "/dashboard")

	switch {
	case api.KindOf(err) == api.KindTransport:
		h.Log.Warn("load scan config failed", zap.Error(err))
		data.SetError(msgLoadCommFail)
	case err != nil:
		h.Log.Warn("load scan config failed", zap.Error(err))
		data.SetError("Erro ao carregar configurações: " + api.DisplayMessage(err))
	}

	h.render(w, r, data)
}

// HandleScanConfig saves the scan settings and re-renders the form with
// the outcome.
//
// Route: POST /settings/scan
func (h *Handler) HandleScanConfig(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Dados de formulário inválidos.", "/settings/scan")
		return
	}

	cfg, perr := parseScanForm(r)
	data := newScanForm(cfg)
	formutil.SetBase(&data.Base, w, r, h.SM, pageTitle, "/dashboard")
	if perr != nil {
		data.SetError(msgBadFrequency)
		h.render(w, r, data)
		return
	}

	token := auth.Token(r)
	if token == "" {
		h.SM.RedirectExpired(w, r)
		return
	}

	ctx, cancel := timeouts.Detached(r.Context(), h.Log, "save scan config")
	defer cancel()

	msg, err := h.Settings.SaveScanConfig(ctx, cfg, token)
	h.Audit.Change(ctx, r, audit.EventScanConfigUpdated, "settings", 0, msg, err, nil)

	if api.KindOf(err) == api.KindTransport {
		h.Log.Warn("save scan config failed", zap.Error(err))
	}
	if text, ok := saveOutcome(msg, err); ok {
		data.SetSuccess(text)
	} else {
		data.SetError(text)
	}
	h.render(w, r, data)
}

// saveOutcome picks the status line after a save: the server message when
// there is one, otherwise the fixed success or failure text.
func saveOutcome(msg string, err error) (string, bool) {
	if err == nil {
		return orDefault(msg, msgSaved), true
	}
	if api.KindOf(err) == api.KindTransport {
		return msgSaveCommFail, false
	}
	var ae *api.Error
	if errors.As(err, &ae) {
		return orDefault(ae.Message, msgSaveFailed), false
	}
	return msgSaveFailed, false
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, data scanForm) {
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "scan_config_form", data)
		return
	}
	templates.Render(w, r, "scan_config_page", data)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
