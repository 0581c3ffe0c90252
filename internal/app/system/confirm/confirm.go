// Package confirm builds the confirmation page shown before a destructive
// row action is forwarded to the backend.
package confirm

import (
	"net/http"
	"strconv"

	"github.com/dalemusser/assetmanager/internal/app/system/actions"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// Field is a hidden input re-posted on confirmation.
type Field struct {
	Name  string
	Value string
}

// Page is the view model of the "confirm_page" template.
type Page struct {
	viewdata.BaseVM
	Message   string
	PostURL   string
	CancelURL string
	Hidden    []Field
}

// NewPage describes a confirmation of a posting back to postURL. Cancelling
// returns to cancelURL.
func NewPage(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, title, msg, postURL, cancelURL string, a actions.Action) Page {
	p := Page{
		BaseVM:    viewdata.NewBaseVM(w, r, sm, title, cancelURL),
		Message:   msg,
		PostURL:   postURL,
		CancelURL: cancelURL,
		Hidden: []Field{
			{Name: "action", Value: a.Kind.String()},
			{Name: "id", Value: strconv.Itoa(a.ID)},
			{Name: "return", Value: cancelURL},
		},
	}
	if a.IP != "" {
		p.Hidden = append(p.Hidden, Field{Name: "ip", Value: a.IP})
	}
	return p
}

// Render writes the confirmation page.
func Render(w http.ResponseWriter, r *http.Request, p Page) {
	templates.Render(w, r, "confirm_page", p)
}

// RedirectTo sends the browser to the confirmation page at confirmPath for a.
// No backend request has been made at this point.
func RedirectTo(w http.ResponseWriter, r *http.Request, confirmPath string, a actions.Action) {
	target := confirmPath + "?" + a.Query()
	if r.Header.Get("HX-Request") == "true" {
		w.Header().Set("HX-Redirect", target)
		w.WriteHeader(http.StatusOK)
		return
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
