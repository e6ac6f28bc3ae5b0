package browser

import (
	"fmt"
	"regexp"
	"strings"
)

// Document is the surface the extraction pipeline needs from a page.
// Tab implements it against a live Playwright page; StaticPage implements
// it against parsed HTML for offline use.
type Document interface {
	// Content returns the current serialization of the whole document.
	Content() (string, error)

	// RemoveByTag removes every element with the given tag name from the
	// document and returns how many were removed. Zero matches is not an
	// error. The mutation is visible to later calls on the same document.
	RemoveByTag(tag string) (int, error)

	// QueryOuterHTML returns the outer markup of every element matching
	// the CSS selector, in document order. No matches yields an empty
	// slice, not an error.
	QueryOuterHTML(selector string) ([]string, error)

	// NamedElementHTML returns the outer markup of the document's head or
	// body element. An absent element yields "", not an error.
	NamedElementHTML(name string) (string, error)
}

var (
	// Shortest match between a literal comment open and the nearest close.
	// A comment body containing a literal "-->" terminates early and leaves
	// a tail behind; this is accepted so the filtered string stays stable
	// for the pagination contract.
	commentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)

	interTagSpacePattern = regexp.MustCompile(`>\s+<`)
	spaceRunPattern      = regexp.MustCompile(`\s+`)
	tagBoundaryPattern   = regexp.MustCompile(`><`)
)

// ExtractContent runs the full extraction pipeline over doc and returns a
// bounded window into the filtered content.
//
// Stages compose left to right, each applied at most once: preset
// resolution, tag exclusion, region selection, comment stripping,
// compression or pretty-printing, pagination. Tag exclusion mutates the
// live document; elements removed here stay removed for subsequent calls
// against the same page.
func ExtractContent(doc Document, opts ExtractOptions) (*ExtractResult, error) {
	opts = ResolvePreset(opts)

	for _, tag := range opts.ExcludeTags {
		if _, err := doc.RemoveByTag(tag); err != nil {
			return nil, fmt.Errorf("failed to remove %q elements: %w", tag, err)
		}
	}

	content, err := selectRegion(doc, opts)
	if err != nil {
		return nil, err
	}

	if !opts.IncludeComments {
		content = StripComments(content)
	}

	if opts.Compress {
		content = CompressHTML(content)
	} else if opts.PrettyPrint {
		content = PrettyPrintHTML(content)
	}

	result := Paginate(content, opts.Offset, opts.MaxLength)
	return &result, nil
}

// selectRegion picks the markup region the options ask for. The selector
// wins over headOnly, which wins over bodyOnly; a missing region degrades
// to an HTML-comment placeholder naming the failure instead of an error.
func selectRegion(doc Document, opts ExtractOptions) (string, error) {
	switch {
	case opts.Selector != "":
		parts, err := doc.QueryOuterHTML(opts.Selector)
		if err != nil {
			return "", fmt.Errorf("selector query failed: %w", err)
		}
		if len(parts) == 0 {
			return fmt.Sprintf("<!-- No elements found matching selector: %s -->", opts.Selector), nil
		}
		return strings.Join(parts, "\n"), nil

	case opts.HeadOnly:
		head, err := doc.NamedElementHTML("head")
		if err != nil {
			return "", fmt.Errorf("head query failed: %w", err)
		}
		if head == "" {
			return "<!-- No head element found -->", nil
		}
		return head, nil

	case opts.BodyOnly:
		body, err := doc.NamedElementHTML("body")
		if err != nil {
			return "", fmt.Errorf("body query failed: %w", err)
		}
		if body == "" {
			return "<!-- No body element found -->", nil
		}
		return body, nil

	default:
		content, err := doc.Content()
		if err != nil {
			return "", fmt.Errorf("failed to serialize document: %w", err)
		}
		return content, nil
	}
}

// StripComments removes every <!--...--> substring using the shortest
// match between the open and the nearest close.
func StripComments(content string) string {
	return commentPattern.ReplaceAllString(content, "")
}

// CompressHTML collapses whitespace between adjacent tags to nothing,
// collapses remaining whitespace runs to a single space, and trims the
// result. The output contains no newlines and applying it twice is a
// no-op.
func CompressHTML(content string) string {
	content = interTagSpacePattern.ReplaceAllString(content, "><")
	content = spaceRunPattern.ReplaceAllString(content, " ")
	return strings.TrimSpace(content)
}

// PrettyPrintHTML inserts a newline between every pair of adjacent tag
// boundaries and trims whitespace at both ends of each resulting line.
func PrettyPrintHTML(content string) string {
	content = tagBoundaryPattern.ReplaceAllString(content, ">\n<")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return strings.Join(lines, "\n")
}
