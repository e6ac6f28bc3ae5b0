package browser

// ExtractOptions configures the content extraction pipeline.
// All fields are optional; zero values mean "not requested".
type ExtractOptions struct {
	// Preset names a predefined option bundle ("full", "minimal",
	// "structure", "content"). Unknown values behave like "full".
	Preset string

	// Selector limits extraction to elements matching a CSS selector.
	Selector string

	// ExcludeTags lists tag names whose elements are removed from the
	// live document before serialization. The removal is destructive:
	// it persists for later calls against the same page.
	ExcludeTags []string

	// Compress collapses all whitespace in the output.
	Compress bool

	// IncludeComments keeps HTML comments in the output.
	IncludeComments bool

	// PrettyPrint inserts line breaks between adjacent tags.
	// Ignored when Compress is set.
	PrettyPrint bool

	// HeadOnly extracts only the <head> element.
	HeadOnly bool

	// BodyOnly extracts only the <body> element.
	BodyOnly bool

	// Offset is the byte offset into the filtered content where the
	// returned window starts. Negative values are clamped to 0.
	Offset int

	// MaxLength bounds the returned window size in bytes. nil means
	// unbounded: the window runs to the end of the filtered content
	// and HasMore is always false.
	MaxLength *int
}

// ExtractResult is a bounded window into the filtered page content,
// with enough metadata to resume extraction at the next offset.
type ExtractResult struct {
	Content      string `json:"content"`
	TotalLength  int    `json:"totalLength"`
	HasMore      bool   `json:"hasMore"`
	ActualOffset int    `json:"actualOffset"`
	ActualLength int    `json:"actualLength"`
}

// NavigateOptions configures page navigation behavior.
type NavigateOptions struct {
	// WaitUntil specifies when to consider navigation successful.
	// Valid values: "load", "domcontentloaded", "networkidle".
	WaitUntil string

	// Timeout in milliseconds (0 means default).
	Timeout float64
}

// CookieRecord is one cookie from the browsing context's jar.
type CookieRecord struct {
	Name     string `json:"name"`
	Value    string `json:"value"`
	Domain   string `json:"domain"`
	Path     string `json:"path"`
	HTTPOnly bool   `json:"httpOnly"`
	Secure   bool   `json:"secure"`
}

// Default values for browser operations.
const (
	DefaultTimeout        = 30000.0 // milliseconds
	DefaultViewportWidth  = 1280
	DefaultViewportHeight = 720
)
