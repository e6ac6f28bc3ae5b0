package tools

import (
	"context"
	"fmt"
	"net/url"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/morimorihoge/playwright-mcp/pkg/browser"
)

// NavigateInput is the argument schema for navigate.
type NavigateInput struct {
	URL       string  `json:"url" jsonschema:"Absolute http or https URL to navigate to."`
	WaitUntil string  `json:"waitUntil,omitempty" jsonschema:"When to consider navigation done: load, domcontentloaded or networkidle. Defaults to load."`
	Timeout   float64 `json:"timeout,omitempty" jsonschema:"Navigation timeout in milliseconds. Defaults to the configured page timeout."`
}

// validateNavigateInput checks the URL and wait strategy before any
// browser work happens.
func validateNavigateInput(in NavigateInput) error {
	if in.URL == "" {
		return fmt.Errorf("url is required")
	}

	u, err := url.Parse(in.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}
	if u.Hostname() == "" {
		return fmt.Errorf("url has no host")
	}

	switch in.WaitUntil {
	case "", "load", "domcontentloaded", "networkidle":
	default:
		return fmt.Errorf("waitUntil must be load, domcontentloaded or networkidle, got %q", in.WaitUntil)
	}

	if in.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}

// Navigate loads a URL in the active tab, subject to the configured
// origin restrictions.
func (h *Handlers) Navigate(ctx context.Context, req *mcp.CallToolRequest, in NavigateInput) (*mcp.CallToolResult, any, error) {
	if err := validateNavigateInput(in); err != nil {
		return errorResult("Invalid navigation request: %v", err), nil, nil
	}

	if !h.origins.IsAllowed(in.URL) {
		h.logger.Warn().Str("url", in.URL).Msg("navigation blocked by origin rules")
		return errorResult("Navigation to %s is blocked by the configured origin rules", in.URL), nil, nil
	}

	tab, err := h.manager.ActiveTab()
	if err != nil {
		return errorResult("Browser is not available: %v", err), nil, nil
	}

	err = tab.Navigate(in.URL, browser.NavigateOptions{
		WaitUntil: in.WaitUntil,
		Timeout:   in.Timeout,
	})
	if err != nil {
		return errorResult("Navigation failed: %v", err), nil, nil
	}

	title := tab.Title()
	h.logger.Info().Str("url", tab.URL()).Str("title", title).Msg("navigated")

	if title != "" {
		return textResult(fmt.Sprintf("Navigated to %s (%s)", tab.URL(), title)), nil, nil
	}
	return textResult(fmt.Sprintf("Navigated to %s", tab.URL())), nil, nil
}
