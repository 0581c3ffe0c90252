// Package formutil provides helpers for form re-rendering with status messages.
//
// The device and settings forms are rendered into a modal or page and, after
// a submit, re-rendered with the user's values plus a status line that is
// either a success or an error message.
//
// Example usage:
//
//	type editData struct {
//		formutil.Base
//		Values url.Values
//	}
//
//	data := editData{Values: r.PostForm}
//	formutil.SetBase(&data.Base, w, r, sm, "Editar Dispositivo", "/devices")
//	data.SetError("Falha ao atualizar: " + msg)
//	templates.Render(w, r, "device_edit_modal", data)
package formutil

import (
	"net/http"

	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
)

// Status classes understood by the stylesheet.
const (
	ClassSuccess = "success-message"
	ClassError   = "error-message"
)

// Base contains common fields for form pages that can be embedded in form data structs.
type Base struct {
	viewdata.BaseVM
	StatusMessage string
	StatusClass   string
}

// SetBase populates the common Base fields from the request.
func SetBase(b *Base, w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(w, r, sm, title, backDefault)
}

// SetError shows msg as an error status.
func (b *Base) SetError(msg string) {
	b.StatusMessage = msg
	b.StatusClass = ClassError
}

// SetSuccess shows msg as a success status.
func (b *Base) SetSuccess(msg string) {
	b.StatusMessage = msg
	b.StatusClass = ClassSuccess
}

// ClearStatus removes any status line.
func (b *Base) ClearStatus() {
	b.StatusMessage = ""
	b.StatusClass = ""
}

// Failed reports whether the status line is an error.
func (b *Base) Failed() bool { return b.StatusClass == ClassError }
