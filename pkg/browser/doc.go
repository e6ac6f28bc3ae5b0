// Package browser exposes browser state as deterministic, bounded text
// artifacts through Playwright.
//
// The package is built around two transformation pipelines:
//
//  1. Content extraction: the live document's serialization is filtered
//     through an ordered set of stages (tag exclusion, region selection,
//     comment stripping, compression or pretty-printing) and sliced into
//     a bounded, resumable window (ExtractContent, Paginate).
//  2. Request reconstruction: the most recent top-level navigation is
//     captured from the tab's request stream and rendered as a replayable
//     curl command with matched cookies and parsed body data
//     (CaptureSnapshot, BuildRequestInfo, BuildCurlCommand).
//
// # Live state
//
// Tag exclusion removes elements from the live page, not a copy. The
// mutation outlives the extraction call that performed it: a follow-up
// extraction against the same page sees the reduced document. Callers
// that need the original markup must extract it before excluding tags.
//
// # Documents
//
// The extraction pipeline runs over the Document interface. Tab
// implements it against a live Playwright page; StaticPage implements it
// against parsed HTML, which lets the same pipeline run on saved markup
// and keeps the pipeline testable without a browser.
//
// # Concurrency
//
// Tool invocations are serialized by the MCP loop. The request recorder
// is not reentrant per tab: two concurrent reload-mode captures on one
// tab would race on the reload, so callers must serialize them. Two
// concurrent extractions can race on which elements exist; this is an
// accepted property of operating against shared live browser state.
package browser
