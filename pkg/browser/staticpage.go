package browser

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// StaticPage is a Document over parsed HTML with no browser behind it.
// It backs offline extraction and the pipeline's unit tests. Like a live
// page, removals mutate the underlying tree, so they persist across calls
// on the same StaticPage.
type StaticPage struct {
	root *html.Node
	doc  *goquery.Document
	url  string
}

// NewStaticPage parses rawHTML into a StaticPage. The parser normalizes
// the markup the way a browser would (implied html/head/body elements).
func NewStaticPage(rawHTML, pageURL string) (*StaticPage, error) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &StaticPage{
		root: root,
		doc:  goquery.NewDocumentFromNode(root),
		url:  pageURL,
	}, nil
}

// URL returns the page URL given at construction.
func (p *StaticPage) URL() string {
	return p.url
}

// Content serializes the document in its current (possibly mutated) state.
func (p *StaticPage) Content() (string, error) {
	var sb strings.Builder
	if err := html.Render(&sb, p.root); err != nil {
		return "", fmt.Errorf("failed to serialize document: %w", err)
	}
	return sb.String(), nil
}

// RemoveByTag removes every element with the given tag name and returns
// how many were removed.
func (p *StaticPage) RemoveByTag(tag string) (int, error) {
	matcher, err := cascadia.Compile(tag)
	if err != nil {
		return 0, fmt.Errorf("invalid tag name %q: %w", tag, err)
	}
	sel := p.doc.FindMatcher(matcher)
	n := sel.Length()
	sel.Remove()
	return n, nil
}

// QueryOuterHTML returns the outer markup of every element matching the
// CSS selector, in document order.
func (p *StaticPage) QueryOuterHTML(selector string) ([]string, error) {
	matcher, err := cascadia.Compile(selector)
	if err != nil {
		return nil, fmt.Errorf("invalid selector %q: %w", selector, err)
	}

	var parts []string
	var renderErr error
	p.doc.FindMatcher(matcher).Each(func(_ int, s *goquery.Selection) {
		outer, err := goquery.OuterHtml(s)
		if err != nil && renderErr == nil {
			renderErr = err
			return
		}
		parts = append(parts, outer)
	})
	if renderErr != nil {
		return nil, fmt.Errorf("failed to serialize selection: %w", renderErr)
	}
	return parts, nil
}

// NamedElementHTML returns the outer markup of the head or body element,
// or "" when absent.
func (p *StaticPage) NamedElementHTML(name string) (string, error) {
	if name != "head" && name != "body" {
		return "", fmt.Errorf("unsupported element %q", name)
	}
	sel := p.doc.Find(name)
	if sel.Length() == 0 {
		return "", nil
	}
	outer, err := goquery.OuterHtml(sel.First())
	if err != nil {
		return "", fmt.Errorf("failed to serialize %s: %w", name, err)
	}
	return outer, nil
}
