package testutil

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/dalemusser/assetmanager/internal/app/api"
	"github.com/dalemusser/assetmanager/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// AdminUser is a signed-in console user with a backend token.
func AdminUser() *auth.SessionUser {
	return &auth.SessionUser{ID: "1", Name: "admin", Token: "test-token"}
}

// FormRequest builds a urlencoded POST request.
func FormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// NewSessionManager returns a session manager for handler tests.
func NewSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", 0, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

// FlashesAfter replays the cookies rec set onto a fresh request and pops the
// flashes queued by the handler that wrote rec.
func FlashesAfter(t *testing.T, sm *auth.SessionManager, rec *httptest.ResponseRecorder) []auth.Flash {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	return sm.Flashes(httptest.NewRecorder(), req)
}

// BackendCall is one request received by a Backend.
type BackendCall struct {
	Method        string
	Path          string
	Query         url.Values
	Authorization string
	Body          map[string]any
}

// Backend is a fake inventory backend that records every request and
// answers from a route table keyed by "METHOD /path".
type Backend struct {
	mu     sync.Mutex
	calls  []BackendCall
	routes map[string]func(w http.ResponseWriter, r *http.Request)
	srv    *httptest.Server
}

// NewBackend starts a fake backend that is closed when the test ends.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{routes: make(map[string]func(http.ResponseWriter, *http.Request))}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	call := BackendCall{
		Method:        r.Method,
		Path:          r.URL.Path,
		Query:         r.URL.Query(),
		Authorization: r.Header.Get("Authorization"),
	}
	if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
		_ = json.Unmarshal(raw, &call.Body)
	}

	b.mu.Lock()
	b.calls = append(b.calls, call)
	h := b.routes[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if h == nil {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"rota não encontrada"}`))
		return
	}
	h(w, r)
}

// Handle registers a handler for method and path.
func (b *Backend) Handle(method, path string, h func(w http.ResponseWriter, r *http.Request)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.routes[method+" "+path] = h
}

// JSON registers a fixed JSON response.
func (b *Backend) JSON(method, path string, status int, body string) {
	b.Handle(method, path, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	})
}

// Calls returns a copy of the recorded requests.
func (b *Backend) Calls() []BackendCall {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]BackendCall, len(b.calls))
	copy(out, b.calls)
	return out
}

// CallCount returns how many requests were received.
func (b *Backend) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

// URL is the fake backend's base address.
func (b *Backend) URL() string { return b.srv.URL }

// Client returns an api.Client pointed at the fake backend.
func (b *Backend) Client(t *testing.T) *api.Client {
	t.Helper()
	c, err := api.New(b.srv.URL, 0, zap.NewNop())
	if err != nil {
		t.Fatalf("api.New failed: %v", err)
	}
	return c
}
