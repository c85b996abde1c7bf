// Package mcp binds the tool dispatcher to the Model Context Protocol using
// mcp-go, over stdio or streamable HTTP.
package mcp

import (
	"net/http"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/coolify-mcp/internal/common"
	"github.com/bobmcallan/coolify-mcp/internal/tools"
)

// NewServer creates an MCP server exposing every tool of the dispatcher.
func NewServer(d *tools.Dispatcher, name, version string, logger *common.Logger) *mcpserver.MCPServer {
	mcpSrv := mcpserver.NewMCPServer(
		name,
		version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
	)

	count := RegisterTools(mcpSrv, d)

	logger.Info().
		Int("tools", count).
		Str("version", version).
		Msg("MCP server initialized")

	return mcpSrv
}

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
}

// NewHandler wraps mcpSrv in a stateless streamable HTTP transport.
func NewHandler(mcpSrv *mcpserver.MCPServer, logger *common.Logger) *Handler {
	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)
	return &Handler{
		streamable: streamable,
		logger:     logger,
	}
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}
