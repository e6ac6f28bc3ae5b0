package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// ListNetworkRequestsInput is the argument schema for
// list_network_requests. The tool takes no arguments.
type ListNetworkRequestsInput struct{}

// ListNetworkRequests renders the tab's full request log, one line per
// captured request in chronological order.
func (h *Handlers) ListNetworkRequests(ctx context.Context, req *mcp.CallToolRequest, in ListNetworkRequestsInput) (*mcp.CallToolResult, any, error) {
	tab, err := h.manager.ActiveTab()
	if err != nil {
		return errorResult("Browser is not available: %v", err), nil, nil
	}

	rendered := tab.RequestLog().Render()
	if rendered == "" {
		return textResult("No network requests recorded yet. Navigate to a page first."), nil, nil
	}
	return textResult(rendered), nil, nil
}
