package testutil

import (
	"io/fs"
	"regexp"
	"strings"
	"testing"
)

var formBlock = regexp.MustCompile(`(?s)<form\b([^>]*)>(.*?)</form>`)

// TemplateForm is one <form> element of a template file.
type TemplateForm struct {
	File  string
	Open  string // attributes of the opening tag
	Inner string
}

// HTMX reports whether htmx issues the form's request.
func (f TemplateForm) HTMX() bool {
	return strings.Contains(f.Open, "hx-post=") || strings.Contains(f.Open, "hx-get=")
}

// TemplateForms returns every form in the files of fsys matching pattern.
func TemplateForms(t *testing.T, fsys fs.FS, pattern string) []TemplateForm {
	t.Helper()
	files, err := fs.Glob(fsys, pattern)
	if err != nil {
		t.Fatalf("glob %s: %v", pattern, err)
	}
	var out []TemplateForm
	for _, name := range files {
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		for _, m := range formBlock.FindAllStringSubmatch(string(b), -1) {
			out = append(out, TemplateForm{File: name, Open: m[1], Inner: m[2]})
		}
	}
	return out
}

// AssertBusyControls fails when a plain form relies on hx-disabled-elt,
// which htmx ignores for requests it does not issue.
func AssertBusyControls(t *testing.T, forms []TemplateForm) {
	t.Helper()
	for _, f := range forms {
		if f.HTMX() {
			continue
		}
		if strings.Contains(f.Open, "hx-disabled-elt") || strings.Contains(f.Inner, "hx-disabled-elt") {
			t.Errorf("%s: plain form uses hx-disabled-elt: <form%s>", f.File, f.Open)
		}
	}
}
