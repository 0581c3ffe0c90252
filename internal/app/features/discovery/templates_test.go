package discovery_test

import (
	"strings"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/features/discovery"
	"github.com/dalemusser/assetmanager/internal/testutil"
)

func TestTemplates_ScanButtonsShowBusyState(t *testing.T) {
	forms := testutil.TemplateForms(t, discovery.FS, "templates/*.gohtml")
	testutil.AssertBusyControls(t, forms)

	want := map[string]bool{
		`action="/discovery/scan"`: false,
		`value="scan-details"`:     false,
	}
	for _, f := range forms {
		for marker := range want {
			if !strings.Contains(f.Open, marker) && !strings.Contains(f.Inner, marker) {
				continue
			}
			if f.HTMX() || strings.Contains(f.Inner, "data-busy-label=") {
				want[marker] = true
			}
		}
	}
	for marker, ok := range want {
		if !ok {
			t.Errorf("form with %s has no busy state", marker)
		}
	}
}
