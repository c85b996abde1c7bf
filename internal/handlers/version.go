package handlers

import (
	"net/http"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/config"
)

// VersionHandler handles version information requests.
type VersionHandler struct {
	logger *common.Logger
	tools  int
}

// NewVersionHandler creates a new version handler. tools is the number of
// registered MCP tools reported alongside the build info.
func NewVersionHandler(logger *common.Logger, tools int) *VersionHandler {
	return &VersionHandler{logger: logger, tools: tools}
}

// ServeHTTP handles GET /api/version.
func (h *VersionHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"version":    config.GetVersion(),
		"build":      config.GetBuild(),
		"git_commit": config.GetGitCommit(),
		"tools":      h.tools,
	})
}
