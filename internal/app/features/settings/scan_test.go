package settings

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/api"
)

func postForm(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/settings/scan", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	_ = req.ParseForm()
	return req
}

func TestParseScanForm(t *testing.T) {
	cfg, err := parseScanForm(postForm(url.Values{
		"FaixasIP":          {" 10.0.0.0/24 "},
		"FrequenciaMinutos": {"60"},
		"VarreduraAtivada":  {"1"},
	}))
	if err != nil {
		t.Fatalf("parseScanForm: %v", err)
	}
	if *cfg.FaixasIP != "10.0.0.0/24" {
		t.Errorf("FaixasIP = %q", *cfg.FaixasIP)
	}
	if cfg.FrequenciaMinutos == nil || *cfg.FrequenciaMinutos != 60 {
		t.Errorf("FrequenciaMinutos = %v", cfg.FrequenciaMinutos)
	}
	if !*cfg.VarreduraAtivada {
		t.Error("VarreduraAtivada = false")
	}
}

func TestParseScanForm_UncheckedAndEmptyFrequency(t *testing.T) {
	cfg, err := parseScanForm(postForm(url.Values{"FaixasIP": {""}}))
	if err != nil {
		t.Fatalf("parseScanForm: %v", err)
	}
	if cfg.FrequenciaMinutos != nil {
		t.Errorf("FrequenciaMinutos = %d, want nil", *cfg.FrequenciaMinutos)
	}
	if *cfg.VarreduraAtivada {
		t.Error("VarreduraAtivada = true for unchecked box")
	}
}

func TestParseScanForm_BadFrequency(t *testing.T) {
	if _, err := parseScanForm(postForm(url.Values{"FrequenciaMinutos": {"toda hora"}})); err != errBadFrequency {
		t.Errorf("err = %v, want errBadFrequency", err)
	}
}

func TestFrequencyOptions(t *testing.T) {
	n := 45
	opts := frequencyOptions(&n)
	last := opts[len(opts)-1]
	if last.Minutes != 45 || !last.Selected {
		t.Errorf("custom value not appended: %+v", last)
	}

	known := 60
	selected := 0
	for _, o := range frequencyOptions(&known) {
		if o.Selected {
			selected++
		}
	}
	if selected != 1 || len(frequencyOptions(&known)) != len(frequencies) {
		t.Errorf("known value: %d selected", selected)
	}
}

func TestSaveOutcome(t *testing.T) {
	tests := []struct {
		name   string
		msg    string
		err    error
		want   string
		wantOK bool
	}{
		{"server success message", "Configuração atualizada.", nil, "Configuração atualizada.", true},
		{"default success", "", nil, msgSaved, true},
		{"server error message", "",
			&api.Error{Kind: api.KindApplication, Status: http.StatusBadRequest, StatusText: "Bad Request", Message: "Faixa de IP inválida."},
			"Faixa de IP inválida.", false},
		{"no server message uses fixed text", "",
			&api.Error{Kind: api.KindApplication, Status: http.StatusInternalServerError, StatusText: "Internal Server Error"},
			msgSaveFailed, false},
		{"transport", "",
			&api.Error{Kind: api.KindTransport, Err: errors.New("connection refused")},
			msgSaveCommFail, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := saveOutcome(tt.msg, tt.err)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("saveOutcome = (%q, %v), want (%q, %v)", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
