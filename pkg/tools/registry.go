package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/morimorihoge/playwright-mcp/pkg/browser"
	"github.com/morimorihoge/playwright-mcp/pkg/config"
)

// Handlers carries the shared dependencies of all tool handlers.
type Handlers struct {
	manager *browser.Manager
	origins *config.OriginMatcher
	logger  zerolog.Logger
}

// NewHandlers wires the tool handlers to their dependencies.
func NewHandlers(manager *browser.Manager, origins *config.OriginMatcher, logger zerolog.Logger) *Handlers {
	return &Handlers{manager: manager, origins: origins, logger: logger}
}

// RegisterAll registers every tool on the MCP server. Input schemas are
// inferred from the handler input structs.
func RegisterAll(server *mcp.Server, h *Handlers) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "navigate",
		Description: "Navigate the browser to a URL and wait for the page to load.",
	}, h.Navigate)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_page_content",
		Description: "Extract the current page's HTML through a filter pipeline (presets, CSS selector, tag exclusion, comment stripping, compression or pretty-printing) and return a bounded window with pagination metadata. Use offset and maxLength to page through large documents.",
	}, h.GetPageContent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_request_info",
		Description: "Reconstruct the most recent top-level navigation request: URL, method, headers, matched cookies, parsed body and a replayable curl command. Set reload to capture the real request; without it the request is synthesized from the current URL.",
	}, h.GetRequestInfo)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_network_requests",
		Description: "List every network request the current page has made, in order, with response status where available.",
	}, h.ListNetworkRequests)
}
