package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/morimorihoge/playwright-mcp/pkg/browser"
)

// GetRequestInfoInput is the argument schema for get_request_info.
type GetRequestInfoInput struct {
	Reload bool `json:"reload,omitempty" jsonschema:"Reload the page to capture the real navigation request with its headers and body. Without reload the request is synthesized as a bare GET of the current URL."`
}

// GetRequestInfo reconstructs the tab's most recent top-level navigation
// as structured request data plus a replayable curl command.
func (h *Handlers) GetRequestInfo(ctx context.Context, req *mcp.CallToolRequest, in GetRequestInfoInput) (*mcp.CallToolResult, any, error) {
	tab, err := h.manager.ActiveTab()
	if err != nil {
		return errorResult("Browser is not available: %v", err), nil, nil
	}

	snap, err := browser.CaptureSnapshot(ctx, tab, in.Reload)
	if err != nil {
		return errorResult("Failed to capture request: %v", err), nil, nil
	}

	jar, err := tab.Cookies()
	if err != nil {
		return errorResult("Failed to read cookies: %v", err), nil, nil
	}

	info := browser.BuildRequestInfo(snap, jar)

	h.logger.Debug().
		Str("url", info.URL).
		Str("method", info.Method).
		Bool("reload", in.Reload).
		Int("cookies", len(info.Cookies)).
		Msg("reconstructed navigation request")

	res, err := jsonResult(info)
	if err != nil {
		return nil, nil, err
	}
	return res, nil, nil
}
