package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/coolify"
)

// backendProbeTimeout bounds the upstream health probe.
const backendProbeTimeout = 3 * time.Second

// Prober sends a single request to the Coolify API.
type Prober interface {
	Send(ctx context.Context, path, method string, body any) coolify.Result
}

// BackendHealthHandler reports whether the configured Coolify instance is
// reachable and accepts the API token.
type BackendHealthHandler struct {
	logger *common.Logger
	prober Prober
}

// NewBackendHealthHandler creates a new backend health handler.
func NewBackendHealthHandler(logger *common.Logger, prober Prober) *BackendHealthHandler {
	return &BackendHealthHandler{logger: logger, prober: prober}
}

// ServeHTTP handles GET /api/coolify-health.
func (h *BackendHealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), backendProbeTimeout)
	defer cancel()

	result := h.prober.Send(ctx, "/version", http.MethodGet, nil)
	if result.Success {
		WriteJSON(w, http.StatusOK, map[string]any{
			"status":  "ok",
			"version": result.Data,
		})
		return
	}

	h.logger.Warn().Str("error", result.Error).Msg("coolify health probe failed")
	resp := map[string]any{
		"status": "down",
		"error":  result.Error,
	}
	if result.HasStatus() {
		resp["upstream_status"] = *result.Status
	}
	WriteJSON(w, http.StatusServiceUnavailable, resp)
}
