package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/coolify-mcp/internal/tools"
)

// BuildTool converts a tool definition into an mcp-go Tool, advertising the
// definition's schema verbatim.
func BuildTool(def tools.Definition) mcp.Tool {
	return mcp.NewToolWithRawSchema(def.Name, def.Description, def.RawSchema())
}

// RegisterTools registers every tool the dispatcher advertises and returns
// the number registered.
func RegisterTools(s *server.MCPServer, d *tools.Dispatcher) int {
	defs := d.ListTools()
	serverTools := make([]server.ServerTool, 0, len(defs))
	for _, def := range defs {
		serverTools = append(serverTools, server.ServerTool{
			Tool:    BuildTool(def),
			Handler: ToolHandler(d, def.Name),
		})
	}
	s.AddTools(serverTools...)
	return len(serverTools)
}
