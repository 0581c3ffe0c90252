package devices_test

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/features/devices"
)

var tableWrap = regexp.MustCompile(`<div id="devices-table-wrap"([^>]*)>`)

// The refresh after a save or delete must reread the search box, not the
// filter that was active when the page was first rendered.
func TestDevicesList_RefreshUsesCurrentSearch(t *testing.T) {
	b, err := fs.ReadFile(devices.FS, "templates/devices_list.gohtml")
	if err != nil {
		t.Fatalf("read template: %v", err)
	}
	src := string(b)

	m := tableWrap.FindStringSubmatch(src)
	if m == nil {
		t.Fatal("devices-table-wrap not found")
	}
	attrs := m[1]
	if !strings.Contains(attrs, `hx-get="/devices"`) {
		t.Errorf("wrapper hx-get is not the bare list URL: %s", attrs)
	}
	if strings.Contains(attrs, "{{") {
		t.Errorf("wrapper URL is built at render time: %s", attrs)
	}
	if !strings.Contains(attrs, `hx-include="#devices-search"`) {
		t.Errorf("wrapper does not include the search box: %s", attrs)
	}
	if !strings.Contains(src, `id="devices-search"`) || !strings.Contains(src, `name="search"`) {
		t.Error("search input with id devices-search and name search not found")
	}
}
