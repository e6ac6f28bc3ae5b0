package browser

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog"
)

// removeByTagJS removes every matched element and reports how many.
const removeByTagJS = `els => { for (const el of els) el.remove(); return els.length; }`

// outerHTMLAllJS serializes every matched element.
const outerHTMLAllJS = `els => els.map(el => el.outerHTML)`

// namedElementJS serializes document.head or document.body, or null.
const namedElementJS = `name => {
	const el = name === "head" ? document.head : document.body;
	return el ? el.outerHTML : null;
}`

// Tab wraps one Playwright page under automation control, together with
// the chronological log of its outbound requests. It implements Document
// for the extraction pipeline.
type Tab struct {
	ID         string
	CreatedAt  time.Time
	LastUsedAt time.Time

	page   playwright.Page
	log    *RequestLog
	logger zerolog.Logger
}

// newTab wraps page and starts feeding its request stream into a fresh
// request log. The listeners stay attached for the life of the page.
func newTab(page playwright.Page, logger zerolog.Logger) *Tab {
	now := time.Now()
	t := &Tab{
		ID:         uuid.NewString(),
		CreatedAt:  now,
		LastUsedAt: now,
		page:       page,
		log:        NewRequestLog(),
		logger:     logger,
	}

	page.OnRequest(func(req playwright.Request) {
		ev := RequestEvent{
			Method:       req.Method(),
			URL:          req.URL(),
			ResourceType: req.ResourceType(),
			Headers:      HeadersFromMap(req.Headers()),
		}
		if body, err := req.PostData(); err == nil && body != "" {
			ev.PostData = &body
		}
		t.log.Append(ev)
	})
	page.OnResponse(func(resp playwright.Response) {
		t.log.AttachResponse(resp.URL(), resp.Status(), resp.StatusText())
	})

	return t
}

// touch updates the last-used timestamp.
func (t *Tab) touch() {
	t.LastUsedAt = time.Now()
}

// URL returns the page's current URL.
func (t *Tab) URL() string {
	return t.page.URL()
}

// Title returns the page's current title, or "" when unavailable.
func (t *Tab) Title() string {
	title, err := t.page.Title()
	if err != nil {
		return ""
	}
	return title
}

// Navigate loads url in the tab and waits per opts.
func (t *Tab) Navigate(url string, opts NavigateOptions) error {
	t.touch()

	gotoOpts := playwright.PageGotoOptions{}
	if opts.WaitUntil != "" {
		waitUntil := playwright.WaitUntilState(opts.WaitUntil)
		gotoOpts.WaitUntil = &waitUntil
	}
	if opts.Timeout > 0 {
		gotoOpts.Timeout = &opts.Timeout
	}

	if _, err := t.page.Goto(url, gotoOpts); err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

// Reload reloads the page and waits until the DOM is parsed. Used by the
// request recorder; a failure here is a hard error for the caller.
func (t *Tab) Reload() error {
	t.touch()

	_, err := t.page.Reload(playwright.PageReloadOptions{
		WaitUntil: playwright.WaitUntilStateDomcontentloaded,
	})
	if err != nil {
		return fmt.Errorf("reload failed: %w", err)
	}
	return nil
}

// RequestLog returns the tab's request log.
func (t *Tab) RequestLog() *RequestLog {
	return t.log
}

// Content returns the page's current full serialization.
func (t *Tab) Content() (string, error) {
	t.touch()
	return t.page.Content()
}

// RemoveByTag removes all elements with the given tag name from the live
// page. This mutates shared browser state: the elements stay removed for
// every later call against the same page.
func (t *Tab) RemoveByTag(tag string) (int, error) {
	t.touch()

	result, err := t.page.EvalOnSelectorAll(tag, removeByTagJS)
	if err != nil {
		return 0, err
	}
	n, ok := result.(int)
	if !ok {
		if f, isFloat := result.(float64); isFloat {
			n = int(f)
		}
	}
	if n > 0 {
		t.logger.Debug().Str("tag", tag).Int("removed", n).Msg("excluded elements from live page")
	}
	return n, nil
}

// QueryOuterHTML returns the outer markup of every element matching the
// selector, in document order.
func (t *Tab) QueryOuterHTML(selector string) ([]string, error) {
	t.touch()

	result, err := t.page.EvalOnSelectorAll(selector, outerHTMLAllJS)
	if err != nil {
		return nil, err
	}
	values, ok := result.([]interface{})
	if !ok {
		return nil, fmt.Errorf("unexpected evaluation result %T for selector %q", result, selector)
	}

	parts := make([]string, 0, len(values))
	for _, v := range values {
		if s, isString := v.(string); isString {
			parts = append(parts, s)
		}
	}
	return parts, nil
}

// NamedElementHTML returns the outer markup of the page's head or body
// element, or "" when the element is absent.
func (t *Tab) NamedElementHTML(name string) (string, error) {
	t.touch()

	result, err := t.page.Evaluate(namedElementJS, name)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", nil
	}
	s, ok := result.(string)
	if !ok {
		return "", fmt.Errorf("unexpected evaluation result %T for element %q", result, name)
	}
	return s, nil
}

// Cookies returns the full cookie jar visible to the tab's browsing
// context, independent of the page being viewed.
func (t *Tab) Cookies() ([]CookieRecord, error) {
	t.touch()

	cookies, err := t.page.Context().Cookies()
	if err != nil {
		return nil, fmt.Errorf("failed to read cookie jar: %w", err)
	}

	records := make([]CookieRecord, 0, len(cookies))
	for _, c := range cookies {
		records = append(records, CookieRecord{
			Name:     c.Name,
			Value:    c.Value,
			Domain:   c.Domain,
			Path:     c.Path,
			HTTPOnly: c.HttpOnly,
			Secure:   c.Secure,
		})
	}
	return records, nil
}

// close releases the underlying page.
func (t *Tab) close() error {
	return t.page.Close()
}
