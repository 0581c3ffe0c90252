package reports_test

import (
	"bytes"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/features/reports"
	devicestore "github.com/dalemusser/assetmanager/internal/app/store/devices"
	reportstore "github.com/dalemusser/assetmanager/internal/app/store/reports"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/dalemusser/assetmanager/internal/testutil"
	"go.uber.org/zap"
)

func TestServeCSV_OSSummary(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodGet, "/api/reports/os-summary", http.StatusOK,
		`[{"SistemaOperacionalNome":"Ubuntu","SistemaOperacionalFamilia":"Linux","TotalDispositivos":7}]`)
	c := b.Client(t)
	h := reports.NewHandler(devicestore.New(c), reportstore.New(c), nil, nil, zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/reports/export.csv?type=os_summary", nil)
	rec := httptest.NewRecorder()
	h.ServeCSV(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/csv") {
		t.Errorf("Content-Type = %q", ct)
	}
	body := bytes.TrimPrefix(rec.Body.Bytes(), []byte{0xEF, 0xBB, 0xBF})
	records, err := csv.NewReader(bytes.NewReader(body)).ReadAll()
	if err != nil {
		t.Fatalf("parse csv: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want header + 1", len(records))
	}
	if got := strings.Join(records[1], ","); got != "Ubuntu,Linux,7" {
		t.Errorf("row = %q", got)
	}
}

func TestServeCSV_UnknownType(t *testing.T) {
	b := testutil.NewBackend(t)
	c := b.Client(t)
	sm := testutil.NewSessionManager(t)
	h := reports.NewHandler(devicestore.New(c), reportstore.New(c), sm, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeCSV(rec, httptest.NewRequest(http.MethodGet, "/reports/export.csv?type=nope", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/reports" {
		t.Errorf("Location = %q, want /reports", loc)
	}
	flashes := testutil.FlashesAfter(t, sm, rec)
	if len(flashes) != 1 || flashes[0].Kind != auth.FlashError || flashes[0].Message != "Tipo de relatório não implementado." {
		t.Errorf("flashes = %+v", flashes)
	}
}

func TestServeCSV_BackendFailureFlashes(t *testing.T) {
	b := testutil.NewBackend(t)
	b.JSON(http.MethodGet, "/api/reports/devices-online", http.StatusInternalServerError, `{"message":"banco indisponível"}`)
	c := b.Client(t)
	sm := testutil.NewSessionManager(t)
	h := reports.NewHandler(devicestore.New(c), reportstore.New(c), sm, nil, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeCSV(rec, httptest.NewRequest(http.MethodGet, "/reports/export.csv?type=devices_online", nil))

	if rec.Code != http.StatusSeeOther || rec.Header().Get("Location") != "/reports" {
		t.Fatalf("got %d %q, want 303 /reports", rec.Code, rec.Header().Get("Location"))
	}
	if ct := rec.Header().Get("Content-Type"); strings.HasPrefix(ct, "text/csv") {
		t.Errorf("failed export must not send CSV, Content-Type = %q", ct)
	}
	flashes := testutil.FlashesAfter(t, sm, rec)
	if len(flashes) != 1 || !strings.Contains(flashes[0].Message, "banco indisponível") {
		t.Errorf("flashes = %+v", flashes)
	}
}
