package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/features/health"
	"github.com/dalemusser/assetmanager/internal/testutil"
	"go.uber.org/zap"
)

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Backend  string `json:"backend"`
}

func serve(t *testing.T, h *health.Handler) (*httptest.ResponseRecorder, response) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	var resp response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return rec, resp
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	backend := testutil.NewBackend(t)

	rec, resp := serve(t, health.NewHandler(db.Client(), backend.Client(t), zap.NewNop()))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}
	if resp.Status != "ok" || resp.Database != "connected" {
		t.Errorf("got %+v", resp)
	}
	// The fake backend answers 404 for "/", which still counts as reachable.
	if resp.Backend != "reachable" {
		t.Errorf("backend: got %q, want reachable", resp.Backend)
	}
}

func TestServe_NoDatabaseConfigured(t *testing.T) {
	rec, resp := serve(t, health.NewHandler(nil, nil, zap.NewNop()))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if resp.Database != "not configured" || resp.Backend != "not configured" {
		t.Errorf("got %+v", resp)
	}
}

func TestServe_BackendUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client, err := api.New(url, 0, zap.NewNop())
	if err != nil {
		t.Fatalf("api.New: %v", err)
	}

	rec, resp := serve(t, health.NewHandler(nil, client, zap.NewNop()))

	if rec.Code != http.StatusOK {
		t.Errorf("backend reachability must not change status; got %d", rec.Code)
	}
	if resp.Backend != "unreachable" {
		t.Errorf("backend: got %q, want unreachable", resp.Backend)
	}
}
