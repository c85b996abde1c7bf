package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bobmcallan/coolify-mcp/internal/app"
	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/config"
)

func newTestApp(t *testing.T, backend http.Handler) *app.App {
	t.Helper()

	upstream := httptest.NewServer(backend)
	t.Cleanup(upstream.Close)

	cfg := config.NewDefaultConfig()
	cfg.Coolify.BaseURL = upstream.URL
	cfg.Coolify.Token = "test-token"
	cfg.Server.Transport = config.TransportHTTP

	application, err := app.New(cfg, common.NewSilentLogger())
	if err != nil {
		t.Fatalf("failed to create test app: %v", err)
	}

	t.Cleanup(func() {
		application.Close()
	})

	return application
}

func okBackend() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`"4.0.0"`))
	})
}

func TestRoutes_HealthEndpoint(t *testing.T) {
	srv := New(newTestApp(t, okBackend()))

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %s", body["status"])
	}
}

func TestRoutes_VersionEndpoint(t *testing.T) {
	application := newTestApp(t, okBackend())
	srv := New(application)

	req := httptest.NewRequest("GET", "/api/version", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["tools"] != float64(application.Registry.Len()) {
		t.Errorf("expected tools=%d, got %v", application.Registry.Len(), body["tools"])
	}
}

func TestRoutes_CoolifyHealthEndpoint(t *testing.T) {
	srv := New(newTestApp(t, okBackend()))

	req := httptest.NewRequest("GET", "/api/coolify-health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
}

func TestRoutes_CoolifyHealthEndpoint_Down(t *testing.T) {
	backend := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"Unauthenticated."}`))
	})
	srv := New(newTestApp(t, backend))

	req := httptest.NewRequest("GET", "/api/coolify-health", nil)
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status 503, got %d", w.Code)
	}
}

func TestRoutes_NotFoundIsJSON(t *testing.T) {
	srv := New(newTestApp(t, okBackend()))

	for _, path := range []string{"/api/nonexistent", "/nope"} {
		req := httptest.NewRequest("GET", path, nil)
		w := httptest.NewRecorder()

		srv.Handler().ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("%s: expected status 404, got %d", path, w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/json" {
			t.Errorf("%s: expected JSON content type, got %s", path, ct)
		}

		var body map[string]string
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if body["error"] != "Not Found" {
			t.Errorf("%s: expected error 'Not Found', got %s", path, body["error"])
		}
	}
}

func TestRoutes_MCPEndpoint(t *testing.T) {
	srv := New(newTestApp(t, okBackend()))

	body := `{"jsonrpc":"2.0","id":1,"method":"tools/list","params":{}}`
	req := httptest.NewRequest("POST", "/mcp", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/event-stream")
	w := httptest.NewRecorder()

	srv.Handler().ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "coolify_get_version") {
		t.Error("expected tool listing in response")
	}
	if w.Header().Get("X-Correlation-ID") == "" {
		t.Error("expected X-Correlation-ID header")
	}
}

func TestServer_UsesConfiguredAddr(t *testing.T) {
	application := newTestApp(t, okBackend())
	application.Config.Server.Host = "127.0.0.1"
	application.Config.Server.Port = 4999
	srv := New(application)

	if srv.server.Addr != "127.0.0.1:4999" {
		t.Errorf("expected addr 127.0.0.1:4999, got %s", srv.server.Addr)
	}
}
