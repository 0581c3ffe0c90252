package formpayload_test

import (
	"encoding/json"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/system/formpayload"
)

var deviceFields = formpayload.Fields{
	Names: []string{
		"ID_Dispositivo", "NomeHost", "IPPrincipal", "Descricao", "Modelo",
		"ID_Fabricante", "ID_SistemaOperacional", "ID_TipoDispositivo",
		"StatusAtual", "LocalizacaoFisica", "Observacoes",
	},
	Clearable: []string{"Descricao", "Modelo", "LocalizacaoFisica", "Observacoes"},
	NullFill:  true,
	Exclude:   []string{"ID_Dispositivo"},
}

func TestBuild_EditEmptyIDIsNull(t *testing.T) {
	values := url.Values{
		"ID_Dispositivo": {"5"},
		"NomeHost":       {"sw-01"},
		"ID_Fabricante":  {""},
	}

	payload, err := formpayload.Build(values, deviceFields, formpayload.ModeEdit)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	raw, _ := json.Marshal(payload)
	body := string(raw)
	if !strings.Contains(body, `"ID_Fabricante":null`) {
		t.Errorf("expected ID_Fabricante null, got %s", body)
	}
	if strings.Contains(body, `"ID_Fabricante":""`) {
		t.Errorf("ID_Fabricante must never be an empty string: %s", body)
	}
	if _, ok := payload["ID_Dispositivo"]; ok {
		t.Errorf("ID_Dispositivo must not be in edit payload: %s", body)
	}
}

func TestBuild_EditClearableFieldsPassEmpty(t *testing.T) {
	values := url.Values{
		"NomeHost":    {"sw-01"},
		"Descricao":   {""},
		"Observacoes": {"  nota  "},
		"StatusAtual": {""},
	}

	payload, err := formpayload.Build(values, deviceFields, formpayload.ModeEdit)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if v, ok := payload["Descricao"]; !ok || v != "" {
		t.Errorf("Descricao: got %#v (present=%v), want empty string", v, ok)
	}
	if payload["Observacoes"] != "nota" {
		t.Errorf("Observacoes: got %#v, want trimmed", payload["Observacoes"])
	}
	if _, ok := payload["StatusAtual"]; ok {
		t.Errorf("non-clearable empty field should be omitted, got %#v", payload["StatusAtual"])
	}
	if _, ok := payload["Modelo"]; ok {
		t.Error("field absent from the form should be omitted")
	}
}

func TestBuild_AddOmitsEmptyIDsAndNullFills(t *testing.T) {
	values := url.Values{
		"NomeHost":           {" pc-07 "},
		"ID_Fabricante":      {"3"},
		"ID_TipoDispositivo": {""},
		"Descricao":          {""},
	}

	payload, err := formpayload.Build(values, deviceFields, formpayload.ModeAdd)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if payload["NomeHost"] != "pc-07" {
		t.Errorf("NomeHost: got %#v", payload["NomeHost"])
	}
	if payload["ID_Fabricante"] != 3 {
		t.Errorf("ID_Fabricante: got %#v, want int 3", payload["ID_Fabricante"])
	}
	if _, ok := payload["ID_TipoDispositivo"]; ok {
		t.Error("empty ID field should be omitted in add mode")
	}
	if v, ok := payload["Descricao"]; !ok || v != nil {
		t.Errorf("Descricao: got %#v (present=%v), want null", v, ok)
	}
	if v, ok := payload["Modelo"]; !ok || v != nil {
		t.Errorf("Modelo: got %#v (present=%v), want null", v, ok)
	}
}

func TestBuild_RejectsInvalidInteger(t *testing.T) {
	values := url.Values{"ID_Fabricante": {"abc"}}

	_, err := formpayload.Build(values, deviceFields, formpayload.ModeAdd)
	fe, ok := err.(*formpayload.FieldError)
	if !ok {
		t.Fatalf("expected *FieldError, got %v", err)
	}
	if fe.Field != "ID_Fabricante" {
		t.Errorf("field: got %q", fe.Field)
	}
}

func TestBuild_AddWithoutNullFill(t *testing.T) {
	fields := formpayload.Fields{Names: []string{"FaixasIP", "Outro"}}
	payload, err := formpayload.Build(url.Values{"FaixasIP": {"10.0.0.0/24"}}, fields, formpayload.ModeAdd)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(payload) != 1 || payload["FaixasIP"] != "10.0.0.0/24" {
		t.Errorf("unexpected payload: %#v", payload)
	}
}
