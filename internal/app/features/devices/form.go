// internal/app/features/devices/form.go
package devices

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	uierrors "github.com/dalemusser/assetmanager/internal/app/features/errors"
	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/store/audit"
	prefillstore "github.com/dalemusser/assetmanager/internal/app/store/prefill"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/formpayload"
	"github.com/dalemusser/assetmanager/internal/app/system/formutil"
	"github.com/dalemusser/assetmanager/internal/app/system/modal"
	"github.com/dalemusser/assetmanager/internal/app/system/timeouts"
	"github.com/dalemusser/assetmanager/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// discoveredIPField carries the discovered IP a prefilled add form came from.
const discoveredIPField = "discovered_ip_id"

// ServeNew renders the add dialog. ?prefill=<key> consumes a handoff written
// by the discovery page and fills the address fields from it.
//
// Route: GET /devices/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	data := h.newForm(w, r, modal.Add, 0)
	data.Values = map[string]string{}

	if key := query.Get(r, "prefill"); key != "" && h.Prefill != nil {
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		p, err := h.Prefill.Take(ctx, key)
		cancel()
		switch {
		case errors.Is(err, prefillstore.ErrNotFound):
			data.SetError(msgPrefillGone)
		case err != nil:
			h.Log.Error("take device prefill failed", zap.Error(err))
			data.SetError(msgPrefillGone)
		default:
			data.Values = prefillValues(p)
		}
	}

	h.loadDropdowns(r, &data, selectionOf(nil))
	h.renderForm(w, r, data)
}

// HandleCreate forwards the add form to the backend.
//
// Route: POST /devices
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		uierrors.HTMXBadRequest(w, r, "Formulário inválido.", listPath)
		return
	}
	token := auth.Token(r)
	if token == "" {
		h.SM.RedirectExpired(w, r)
		return
	}

	data := h.newForm(w, r, modal.Add, 0)
	data.Values = postedValues(r.PostForm)

	payload, err := formpayload.Build(r.PostForm, deviceFields, formpayload.ModeAdd)
	if err != nil {
		data.SetError(err.Error())
		h.loadDropdowns(r, &data, selectionOf(r.PostForm))
		h.renderForm(w, r, data)
		return
	}

	ctx, cancel := timeouts.Detached(r.Context(), h.Log, "create device")
	defer cancel()

	msg, err := h.Devices.Create(ctx, payload, token)
	h.Audit.Change(ctx, r, audit.EventDeviceCreated, resource, 0, msg, err,
		map[string]string{"nome_host": r.PostForm.Get("NomeHost")})
	if err != nil {
		data.SetError(failureMessage(err, msgCreateFailed))
		h.loadDropdowns(r, &data, selectionOf(r.PostForm))
		h.renderForm(w, r, data)
		return
	}

	if ipID, _ := strconv.Atoi(r.PostForm.Get(discoveredIPField)); ipID > 0 {
		h.markInventoried(ctx, r, ipID, token)
	}

	h.succeed(w, r, data, orDefault(msg, msgCreated), true)
}

// markInventoried is best effort: the device exists either way.
func (h *Handler) markInventoried(ctx context.Context, r *http.Request, ipID int, token string) {
	if h.Discovery == nil {
		return
	}
	msg, err := h.Discovery.SetStatus(ctx, ipID, models.DiscoveryStatusInventoried, token)
	h.Audit.Change(ctx, r, audit.EventIPInventoried, "discovered_ips", ipID, msg, err, nil)
	if err != nil {
		h.Log.Warn("mark discovered ip inventoried failed", zap.Error(err), zap.Int("ip_id", ipID))
	}
}

// ServeEdit renders the edit dialog filled from the backend record.
//
// Route: GET /devices/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		uierrors.HTMXBadRequest(w, r, msgInvalidID, listPath)
		return
	}
	h.serveEditForm(w, r, id)
}

func (h *Handler) serveEditForm(w http.ResponseWriter, r *http.Request, id int) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	dev, err := h.Devices.Get(ctx, id, auth.Token(r))
	if err != nil {
		h.Log.Warn("get device for edit failed", zap.Error(err), zap.Int("device_id", id))
		msg := msgLoadEditFailed
		if api.KindOf(err) == api.KindApplication {
			msg = "Erro ao buscar dados do dispositivo para edição: " + api.DisplayMessage(err)
		}
		uierrors.HTMXError(w, r, http.StatusBadGateway, msg, func() {
			h.SM.AddFlash(w, r, auth.FlashError, msg)
			http.Redirect(w, r, listPath, http.StatusSeeOther)
		})
		return
	}

	data := h.newForm(w, r, modal.Edit, dev.ID)
	data.Values = valuesOf(dev)
	data.StatusOptions = buildStatusOptions(data.Values["StatusAtual"])
	h.loadDropdowns(r, &data, modal.Selection{
		Manufacturer:    dev.FabricanteID,
		OperatingSystem: dev.SistemaOperacionalID,
		DeviceType:      dev.TipoDispositivoID,
	})
	h.renderForm(w, r, data)
}

// HandleEdit forwards the edit form as PUT /devices/{id}.
//
// Route: POST /devices/{id}/edit
func (h *Handler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		uierrors.HTMXBadRequest(w, r, msgInvalidID, listPath)
		return
	}
	if err := r.ParseForm(); err != nil {
		uierrors.HTMXBadRequest(w, r, "Formulário inválido.", listPath)
		return
	}
	token := auth.Token(r)
	if token == "" {
		h.SM.RedirectExpired(w, r)
		return
	}

	data := h.newForm(w, r, modal.Edit, id)
	data.Values = postedValues(r.PostForm)
	data.StatusOptions = buildStatusOptions(data.Values["StatusAtual"])

	payload, err := formpayload.Build(r.PostForm, deviceFields, formpayload.ModeEdit)
	if err != nil {
		data.SetError(err.Error())
		h.loadDropdowns(r, &data, selectionOf(r.PostForm))
		h.renderForm(w, r, data)
		return
	}

	ctx, cancel := timeouts.Detached(r.Context(), h.Log, "update device")
	defer cancel()

	msg, err := h.Devices.Update(ctx, id, payload, token)
	h.Audit.Change(ctx, r, audit.EventDeviceUpdated, resource, id, msg, err, nil)
	if err != nil {
		data.SetError(failureMessage(err, msgUpdateFailed))
		h.loadDropdowns(r, &data, selectionOf(r.PostForm))
		h.renderForm(w, r, data)
		return
	}

	h.succeed(w, r, data, orDefault(msg, msgUpdated), false)
}

// succeed finishes a successful submit. HTMX dialogs show the status line,
// close after a delay and refresh the table; plain forms redirect to the
// list with a flash.
func (h *Handler) succeed(w http.ResponseWriter, r *http.Request, data formData, msg string, reset bool) {
	if r.Header.Get("HX-Request") == "" {
		h.SM.AddFlash(w, r, auth.FlashSuccess, msg)
		http.Redirect(w, r, listPath, http.StatusSeeOther)
		return
	}

	sel := selectionOf(r.PostForm)
	if reset {
		data.Values = map[string]string{}
		data.StatusOptions = buildStatusOptions("")
		sel = selectionOf(nil)
	}
	data.SetSuccess(msg)
	data.Modal.CloseDelayMs = modal.CloseDelayMs
	h.loadDropdowns(r, &data, sel)

	w.Header().Set("HX-Trigger", modal.Trigger(changedEvent))
	templates.RenderSnippet(w, "device_form_modal", data)
}

func (h *Handler) newForm(w http.ResponseWriter, r *http.Request, state modal.State, id int) formData {
	title := modal.TitleAddDevice
	postURL := listPath
	if state == modal.Edit {
		title = modal.TitleEditDevice
		postURL = listPath + "/" + strconv.Itoa(id) + "/edit"
	}
	opened, _ := modal.Hidden.Open(state)

	var data formData
	formutil.SetBase(&data.Base, w, r, h.SM, title, listPath)
	data.Modal = modal.View{State: opened, Title: title}
	data.ID = id
	data.PostURL = postURL
	data.StatusOptions = buildStatusOptions("")
	return data
}

func (h *Handler) loadDropdowns(r *http.Request, data *formData, sel modal.Selection) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()
	data.Dropdowns = modal.LoadDeviceDropdowns(ctx, h.Lookups, auth.Token(r), sel, h.Log)
}

func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, data formData) {
	if r.Header.Get("HX-Request") != "" {
		templates.RenderSnippet(w, "device_form_modal", data)
		return
	}
	templates.Render(w, r, "device_form_page", data)
}

// failureMessage is the status line for a rejected submit: the backend
// message, fallback when it sent none, or the communication error.
func failureMessage(err error, fallback string) string {
	if api.KindOf(err) == api.KindTransport {
		return msgCommFailure
	}
	var ae *api.Error
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return fallback
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}

func postedValues(form url.Values) map[string]string {
	out := make(map[string]string, len(deviceFields.Names)+1)
	for _, name := range deviceFields.Names {
		out[name] = form.Get(name)
	}
	out[discoveredIPField] = form.Get(discoveredIPField)
	return out
}

func prefillValues(p models.Prefill) map[string]string {
	return map[string]string{
		"IPPrincipal":     p.IPPrincipal,
		"NomeHost":        p.NomeHost,
		"MACPrincipal":    p.MACPrincipal,
		discoveredIPField: strconv.Itoa(p.DiscoveredIPID),
	}
}

func intField(form url.Values, name string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(form.Get(name)))
	if err != nil {
		return nil
	}
	return &n
}

// selectionOf reads the dropdown values back from a posted form.
func selectionOf(form url.Values) modal.Selection {
	if form == nil {
		return modal.Selection{}
	}
	return modal.Selection{
		Manufacturer:    intField(form, "ID_Fabricante"),
		OperatingSystem: intField(form, "ID_SistemaOperacional"),
		DeviceType:      intField(form, "ID_TipoDispositivo"),
	}
}
