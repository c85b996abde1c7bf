package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/coolify"
)

func TestHealthHandler_ReturnsOK(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest("GET", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body["status"] != "ok" {
		t.Errorf("expected status ok, got %s", body["status"])
	}
}

func TestHealthHandler_RejectsNonGET(t *testing.T) {
	handler := NewHealthHandler(nil)

	req := httptest.NewRequest("POST", "/api/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestVersionHandler_ReturnsJSON(t *testing.T) {
	handler := NewVersionHandler(nil, 86)

	req := httptest.NewRequest("GET", "/api/version", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	contentType := w.Header().Get("Content-Type")
	if contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	for _, field := range []string{"version", "build", "git_commit"} {
		if _, ok := body[field]; !ok {
			t.Errorf("expected %s field in response", field)
		}
	}
	if body["tools"] != float64(86) {
		t.Errorf("expected tools=86, got %v", body["tools"])
	}
}

func TestVersionHandler_RejectsNonGET(t *testing.T) {
	handler := NewVersionHandler(nil, 0)

	req := httptest.NewRequest("DELETE", "/api/version", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

// stubProber returns a fixed result and records the probed path.
type stubProber struct {
	result coolify.Result
	path   string
	method string
}

func (p *stubProber) Send(_ context.Context, path, method string, _ any) coolify.Result {
	p.path = path
	p.method = method
	return p.result
}

func TestBackendHealthHandler_Up(t *testing.T) {
	raw := json.RawMessage(`"4.0.0-beta.400"`)
	status := http.StatusOK
	prober := &stubProber{result: coolify.Result{Success: true, Data: &raw, Status: &status}}
	handler := NewBackendHealthHandler(common.NewSilentLogger(), prober)

	req := httptest.NewRequest("GET", "/api/coolify-health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if prober.path != "/version" || prober.method != http.MethodGet {
		t.Errorf("unexpected probe %s %s", prober.method, prober.path)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["status"] != "ok" || body["version"] != "4.0.0-beta.400" {
		t.Errorf("unexpected body %v", body)
	}
}

func TestBackendHealthHandler_Unauthorized(t *testing.T) {
	status := http.StatusUnauthorized
	prober := &stubProber{result: coolify.Result{Success: false, Error: "Unauthenticated.", Status: &status}}
	handler := NewBackendHealthHandler(common.NewSilentLogger(), prober)

	req := httptest.NewRequest("GET", "/api/coolify-health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["status"] != "down" || body["error"] != "Unauthenticated." {
		t.Errorf("unexpected body %v", body)
	}
	if body["upstream_status"] != float64(401) {
		t.Errorf("expected upstream_status 401, got %v", body["upstream_status"])
	}
}

func TestBackendHealthHandler_Unreachable(t *testing.T) {
	prober := &stubProber{result: coolify.Result{Success: false, Error: "connection refused"}}
	handler := NewBackendHealthHandler(common.NewSilentLogger(), prober)

	req := httptest.NewRequest("GET", "/api/coolify-health", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if _, ok := body["upstream_status"]; ok {
		t.Error("upstream_status must be absent when no response arrived")
	}
}

func TestRequireMethod_Matches(t *testing.T) {
	req := httptest.NewRequest("GET", "/test", nil)
	w := httptest.NewRecorder()

	if !RequireMethod(w, req, "GET") {
		t.Error("expected RequireMethod to return true for matching method")
	}
}

func TestRequireMethod_AllowsHeadForGet(t *testing.T) {
	req := httptest.NewRequest("HEAD", "/test", nil)
	w := httptest.NewRecorder()

	if !RequireMethod(w, req, "GET") {
		t.Error("expected HEAD to be accepted for GET handlers")
	}
}

func TestRequireMethod_Mismatch(t *testing.T) {
	req := httptest.NewRequest("POST", "/test", nil)
	w := httptest.NewRecorder()

	if RequireMethod(w, req, "GET") {
		t.Error("expected RequireMethod to return false for mismatching method")
	}
	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestWriteJSON(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusCreated, map[string]string{"key": "value"})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", w.Code)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", w.Header().Get("Content-Type"))
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["key"] != "value" {
		t.Errorf("expected key=value, got key=%s", body["key"])
	}
}

func TestWriteError(t *testing.T) {
	w := httptest.NewRecorder()

	WriteError(w, http.StatusNotFound, "not found")

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	if body["error"] != "not found" || body["status"] != "error" {
		t.Errorf("unexpected body %v", body)
	}
}
