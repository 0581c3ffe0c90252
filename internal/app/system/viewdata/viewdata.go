// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/waffle/pantry/httpnav"
	"github.com/gorilla/csrf"
)

// SiteName is shown in the header and page titles.
const SiteName = "Gerenciador de Ativos de Rede"

// NavItem is one entry of the sidebar.
type NavItem struct {
	Path   string
	Label  string
	Icon   string
	Active bool
}

var nav = []NavItem{
	{Path: "/dashboard", Label: "Dashboard", Icon: "fa-tachometer-alt"},
	{Path: "/devices", Label: "Dispositivos", Icon: "fa-server"},
	{Path: "/alerts", Label: "Alertas", Icon: "fa-bell"},
	{Path: "/discovery", Label: "Varredura", Icon: "fa-satellite-dish"},
	{Path: "/reports", Label: "Relatórios", Icon: "fa-chart-bar"},
	{Path: "/settings/scan", Label: "Configurações", Icon: "fa-cog"},
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(w, r, sm, "Page Title", "/default-back"),
//	}
type BaseVM struct {
	SiteName string

	IsLoggedIn bool
	UserName   string

	Title       string
	BackURL     string
	CurrentPath string
	Nav         []NavItem

	// CSRF protection
	CSRFToken string
	CSRFField template.HTML

	Flashes []auth.Flash
}

// NewBaseVM fills the common fields and pops pending flashes. sm may be nil
// in tests.
func NewBaseVM(w http.ResponseWriter, r *http.Request, sm *auth.SessionManager, title, backDefault string) BaseVM {
	u, signedIn := auth.CurrentUser(r)
	vm := BaseVM{
		SiteName:    SiteName,
		IsLoggedIn:  signedIn,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
		CSRFToken:   csrf.Token(r),
		CSRFField:   csrf.TemplateField(r),
	}
	if signedIn {
		vm.UserName = u.Name
	}
	vm.Nav = make([]NavItem, len(nav))
	for i, item := range nav {
		item.Active = strings.HasPrefix(vm.CurrentPath, item.Path)
		vm.Nav[i] = item
	}
	if sm != nil {
		vm.Flashes = sm.Flashes(w, r)
	}
	return vm
}
