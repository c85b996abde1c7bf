package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/bobmcallan/coolify-mcp/internal/tools"
)

// errorResult creates an MCP error result carrying {"error": message}.
func errorResult(message string) *mcp.CallToolResult {
	data, _ := json.Marshal(map[string]string{"error": message})
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(string(data)),
		},
		IsError: true,
	}
}

// ToolHandler returns the mcp-go handler for one tool. Backend failures are
// returned as ordinary text content; only requests that could not be built
// are flagged as errors.
func ToolHandler(d *tools.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		out, err := d.Invoke(ctx, name, request.GetArguments())
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return &mcp.CallToolResult{Content: []mcp.Content{mcp.NewTextContent(out)}}, nil
	}
}
