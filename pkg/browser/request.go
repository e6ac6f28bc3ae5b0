package browser

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

// Header is one request header. Headers are kept as an ordered list
// because curl synthesis must emit them in their original order, which a
// Go map would not preserve.
type Header struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// HeaderList is an ordered set of request headers with case-insensitive
// lookup.
type HeaderList []Header

// Get returns the value of the first header with the given name,
// compared case-insensitively, or "".
func (h HeaderList) Get(name string) string {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return hdr.Value
		}
	}
	return ""
}

// Has reports whether a header with the given name exists, compared
// case-insensitively.
func (h HeaderList) Has(name string) bool {
	for _, hdr := range h {
		if strings.EqualFold(hdr.Name, name) {
			return true
		}
	}
	return false
}

// Map returns the headers as a plain mapping for serialization.
func (h HeaderList) Map() map[string]string {
	m := make(map[string]string, len(h))
	for _, hdr := range h {
		m[hdr.Name] = hdr.Value
	}
	return m
}

// HeadersFromMap converts a header map into a HeaderList. The driver
// hands headers over as a map, so original wire order is already gone;
// keys are sorted to keep the resulting order deterministic.
func HeadersFromMap(m map[string]string) HeaderList {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)

	headers := make(HeaderList, 0, len(m))
	for _, name := range names {
		headers = append(headers, Header{Name: name, Value: m[name]})
	}
	return headers
}

// RequestSnapshot captures one top-level navigation request.
type RequestSnapshot struct {
	URL      string
	Method   string
	Headers  HeaderList
	PostData *string
}

// RequestInfo is the full reconstruction of the most recent top-level
// navigation, including matched cookies and a replayable curl command.
type RequestInfo struct {
	URL         string            `json:"url"`
	Method      string            `json:"method"`
	Headers     map[string]string `json:"headers"`
	Cookies     []CookieRecord    `json:"cookies"`
	Timestamp   string            `json:"timestamp"`
	PostData    *PostData         `json:"postData,omitempty"`
	CurlCommand string            `json:"curlCommand"`
}

// BuildRequestInfo assembles a RequestInfo from a captured snapshot and
// the browsing context's full cookie jar.
func BuildRequestInfo(snap *RequestSnapshot, jar []CookieRecord) RequestInfo {
	cookies := MatchCookies(snap.URL, jar)
	if cookies == nil {
		cookies = []CookieRecord{}
	}

	var post *PostData
	if snap.PostData != nil {
		pd := ParsePostData(*snap.PostData, snap.Headers.Get("content-type"))
		post = &pd
	}

	return RequestInfo{
		URL:         snap.URL,
		Method:      snap.Method,
		Headers:     snap.Headers.Map(),
		Cookies:     cookies,
		Timestamp:   time.Now().UTC().Format(time.RFC3339),
		PostData:    post,
		CurlCommand: BuildCurlCommand(snap.URL, snap.Method, snap.Headers, cookies, post),
	}
}

// ResourceTypeDocument is the resource kind of a top-level navigation
// request, as reported by the driver.
const ResourceTypeDocument = "document"

// RequestEvent is one captured outbound request, with response data
// back-filled once it arrives.
type RequestEvent struct {
	Method       string
	URL          string
	ResourceType string
	Headers      HeaderList
	PostData     *string
	Status       int
	StatusText   string
}

// Line renders the event as "[METHOD] url => [status] statusText"; the
// response part is omitted while no response has been recorded.
func (e RequestEvent) Line() string {
	if e.Status == 0 {
		return fmt.Sprintf("[%s] %s", e.Method, e.URL)
	}
	return fmt.Sprintf("[%s] %s => [%d] %s", e.Method, e.URL, e.Status, e.StatusText)
}

// RequestLog records a tab's outbound requests in chronological capture
// order for the life of the page. It is safe for concurrent use: the
// driver's event goroutines append while tool calls read and subscribe.
type RequestLog struct {
	mu      sync.Mutex
	events  []*RequestEvent
	subs    map[int]chan RequestEvent
	nextSub int
}

// NewRequestLog returns an empty request log.
func NewRequestLog() *RequestLog {
	return &RequestLog{subs: make(map[int]chan RequestEvent)}
}

// Append records an event and broadcasts it to active subscribers.
// A subscriber that has fallen behind its buffer misses the event rather
// than blocking the driver's event goroutine.
func (l *RequestLog) Append(ev RequestEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := ev
	l.events = append(l.events, &stored)
	for _, ch := range l.subs {
		select {
		case ch <- ev:
		default:
		}
	}
}

// AttachResponse back-fills response data onto the most recent event for
// the given URL that has none yet.
func (l *RequestLog) AttachResponse(url string, status int, statusText string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i := len(l.events) - 1; i >= 0; i-- {
		ev := l.events[i]
		if ev.URL == url && ev.Status == 0 {
			ev.Status = status
			ev.StatusText = statusText
			return
		}
	}
}

// Events returns a snapshot of all recorded events in capture order.
func (l *RequestLog) Events() []RequestEvent {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]RequestEvent, len(l.events))
	for i, ev := range l.events {
		out[i] = *ev
	}
	return out
}

// Render returns the newline-joined event lines in capture order.
func (l *RequestLog) Render() string {
	events := l.Events()
	lines := make([]string, len(events))
	for i, ev := range events {
		lines[i] = ev.Line()
	}
	return strings.Join(lines, "\n")
}

// subscriberBuffer bounds how many events a scoped subscriber can lag
// behind before it starts missing them. A page reload's document request
// is the first event in, so the recorder never gets near the bound.
const subscriberBuffer = 64

// WithSubscription runs fn with a live subscription to the log's event
// stream. The subscription is acquired before fn runs and released
// exactly once on every return path, including errors and panics.
func (l *RequestLog) WithSubscription(fn func(<-chan RequestEvent) error) error {
	ch := make(chan RequestEvent, subscriberBuffer)

	l.mu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = ch
	l.mu.Unlock()

	defer func() {
		l.mu.Lock()
		delete(l.subs, id)
		l.mu.Unlock()
	}()

	return fn(ch)
}

// subscriberCount reports active subscriptions; used by tests to verify
// the scoped release.
func (l *RequestLog) subscriberCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.subs)
}

// navigator is the tab surface the request recorder needs.
type navigator interface {
	URL() string
	Reload() error
	RequestLog() *RequestLog
}

// documentRequestTimeout bounds how long the recorder waits for the
// document request to surface after a completed reload. The request is
// emitted before the reload's DOM-parsed wait resolves, so in practice it
// is already buffered when the wait starts.
const documentRequestTimeout = 5 * time.Second

// CaptureSnapshot captures the tab's top-level navigation request.
//
// With reload=true it subscribes to the tab's request stream, reloads the
// page, and captures the first request whose resource kind is "document";
// a failed reload propagates as an error. With reload=false no request is
// made: the snapshot is synthesized from the current URL with method GET,
// no headers and no body.
//
// The reload path is not reentrant per tab; concurrent calls against the
// same tab must be serialized by the caller.
func CaptureSnapshot(ctx context.Context, nav navigator, reload bool) (*RequestSnapshot, error) {
	if !reload {
		return &RequestSnapshot{
			URL:     nav.URL(),
			Method:  "GET",
			Headers: HeaderList{},
		}, nil
	}

	var snap *RequestSnapshot
	err := nav.RequestLog().WithSubscription(func(ch <-chan RequestEvent) error {
		if err := nav.Reload(); err != nil {
			return fmt.Errorf("reload failed: %w", err)
		}

		timeout := time.NewTimer(documentRequestTimeout)
		defer timeout.Stop()

		for {
			select {
			case ev := <-ch:
				if ev.ResourceType != ResourceTypeDocument {
					continue
				}
				snap = &RequestSnapshot{
					URL:      ev.URL,
					Method:   ev.Method,
					Headers:  ev.Headers,
					PostData: ev.PostData,
				}
				return nil
			case <-ctx.Done():
				return ctx.Err()
			case <-timeout.C:
				return fmt.Errorf("no document request observed after reload of %s", nav.URL())
			}
		}
	})
	if err != nil {
		return nil, err
	}
	return snap, nil
}
