package tools

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/morimorihoge/playwright-mcp/pkg/browser"
)

// GetPageContentInput is the argument schema for get_page_content.
type GetPageContentInput struct {
	Preset          string   `json:"preset,omitempty" jsonschema:"Predefined option bundle: full (default), minimal, structure or content. Presets override excludeTags, compress and includeComments."`
	Selector        string   `json:"selector,omitempty" jsonschema:"CSS selector limiting extraction to matching elements. Takes precedence over headOnly and bodyOnly."`
	ExcludeTags     []string `json:"excludeTags,omitempty" jsonschema:"Tag names removed from the live page before extraction. Removal persists for later calls."`
	Compress        bool     `json:"compress,omitempty" jsonschema:"Collapse all whitespace runs in the output."`
	IncludeComments bool     `json:"includeComments,omitempty" jsonschema:"Keep HTML comments in the output."`
	PrettyPrint     bool     `json:"prettyPrint,omitempty" jsonschema:"Insert line breaks between adjacent tags. Ignored when compress is set."`
	HeadOnly        bool     `json:"headOnly,omitempty" jsonschema:"Extract only the head element."`
	BodyOnly        bool     `json:"bodyOnly,omitempty" jsonschema:"Extract only the body element."`
	Offset          int      `json:"offset,omitempty" jsonschema:"Byte offset into the filtered content where the returned window starts."`
	MaxLength       *int     `json:"maxLength,omitempty" jsonschema:"Maximum window size in bytes. Omit to return everything from offset to the end."`
}

// extractOptions maps tool arguments onto pipeline options.
func (in GetPageContentInput) extractOptions() browser.ExtractOptions {
	return browser.ExtractOptions{
		Preset:          in.Preset,
		Selector:        in.Selector,
		ExcludeTags:     in.ExcludeTags,
		Compress:        in.Compress,
		IncludeComments: in.IncludeComments,
		PrettyPrint:     in.PrettyPrint,
		HeadOnly:        in.HeadOnly,
		BodyOnly:        in.BodyOnly,
		Offset:          in.Offset,
		MaxLength:       in.MaxLength,
	}
}

// GetPageContent extracts the active tab's content through the filter
// pipeline and returns a bounded window with pagination metadata.
func (h *Handlers) GetPageContent(ctx context.Context, req *mcp.CallToolRequest, in GetPageContentInput) (*mcp.CallToolResult, any, error) {
	tab, err := h.manager.ActiveTab()
	if err != nil {
		return errorResult("Browser is not available: %v", err), nil, nil
	}

	result, err := browser.ExtractContent(tab, in.extractOptions())
	if err != nil {
		return errorResult("Failed to extract page content: %v", err), nil, nil
	}

	h.logger.Debug().
		Str("url", tab.URL()).
		Int("total", result.TotalLength).
		Int("returned", result.ActualLength).
		Bool("has_more", result.HasMore).
		Msg("extracted page content")

	res, err := jsonResult(result)
	if err != nil {
		return nil, nil, err
	}
	return res, nil, nil
}
