package browser

import (
	"strings"
	"testing"
)

func mustStaticPage(t *testing.T, rawHTML string) *StaticPage {
	t.Helper()
	page, err := NewStaticPage(rawHTML, "https://example.com/")
	if err != nil {
		t.Fatalf("NewStaticPage() error = %v", err)
	}
	return page
}

func TestStripComments(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "single comment",
			input: "<p>a</p><!-- note --><p>b</p>",
			want:  "<p>a</p><p>b</p>",
		},
		{
			name:  "multiple comments shortest match",
			input: "<!-- one --><p>x</p><!-- two -->",
			want:  "<p>x</p>",
		},
		{
			name:  "multiline comment",
			input: "<div><!-- line1\nline2 --></div>",
			want:  "<div></div>",
		},
		{
			name:  "no comments",
			input: "<p>untouched</p>",
			want:  "<p>untouched</p>",
		},
		{
			// Shortest-match terminates at the first "-->", leaving the
			// tail behind. Pinned so the behavior does not drift.
			name:  "comment body containing close marker terminates early",
			input: "<!-- outer --> inner --><p>x</p>",
			want:  " inner --><p>x</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripComments(tt.input); got != tt.want {
				t.Errorf("StripComments(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestCompressHTML(t *testing.T) {
	input := "  <div>\n\t<p>hello   world</p>\n  </div>\n"
	got := CompressHTML(input)

	if want := "<div><p>hello world</p></div>"; got != want {
		t.Errorf("CompressHTML() = %q, want %q", got, want)
	}
	if strings.ContainsAny(got, "\n") {
		t.Errorf("compressed output contains newline: %q", got)
	}
	if again := CompressHTML(got); again != got {
		t.Errorf("CompressHTML not idempotent: %q -> %q", got, again)
	}
}

func TestPrettyPrintHTML(t *testing.T) {
	got := PrettyPrintHTML("<div><p>hi</p></div>")
	want := "<div>\n<p>hi</p>\n</div>"
	if got != want {
		t.Errorf("PrettyPrintHTML() = %q, want %q", got, want)
	}
}

func TestExtractContentWholeDocument(t *testing.T) {
	page := mustStaticPage(t, `<html><head><title>T</title></head><body><h1>H</h1><p>P</p></body></html>`)

	res, err := ExtractContent(page, ExtractOptions{})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}

	for _, want := range []string{"<title>T</title>", "<h1>H</h1>", "<p>P</p>"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("content missing %q\ngot: %s", want, res.Content)
		}
	}
	if res.HasMore {
		t.Error("HasMore = true without maxLength")
	}
	if res.ActualLength != len(res.Content) {
		t.Errorf("ActualLength = %d, len(Content) = %d", res.ActualLength, len(res.Content))
	}
}

func TestExtractContentSelector(t *testing.T) {
	page := mustStaticPage(t, `<html><body>
		<h1>Page Heading</h1>
		<div class="content">Target content</div>
		<p>Sibling paragraph</p>
	</body></html>`)

	res, err := ExtractContent(page, ExtractOptions{Selector: ".content"})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}

	if !strings.Contains(res.Content, "Target content") {
		t.Errorf("content missing target: %s", res.Content)
	}
	if strings.Contains(res.Content, "Page Heading") || strings.Contains(res.Content, "Sibling paragraph") {
		t.Errorf("content includes siblings: %s", res.Content)
	}
}

func TestExtractContentSelectorJoinsMatches(t *testing.T) {
	page := mustStaticPage(t, `<html><body><p class="x">one</p><p class="x">two</p></body></html>`)

	res, err := ExtractContent(page, ExtractOptions{Selector: ".x"})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if want := "<p class=\"x\">one</p>\n<p class=\"x\">two</p>"; res.Content != want {
		t.Errorf("content = %q, want %q", res.Content, want)
	}
}

func TestExtractContentPlaceholders(t *testing.T) {
	tests := []struct {
		name string
		html string
		opts ExtractOptions
		want string
	}{
		{
			name: "missing selector",
			html: `<html><body><p>x</p></body></html>`,
			opts: ExtractOptions{Selector: ".missing"},
			want: "<!-- No elements found matching selector: .missing -->",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := mustStaticPage(t, tt.html)
			res, err := ExtractContent(page, tt.opts)
			if err != nil {
				t.Fatalf("ExtractContent() error = %v", err)
			}
			// Comment stripping runs after region selection, so the
			// placeholder only survives with includeComments.
			if res.Content != "" {
				t.Errorf("placeholder not stripped: %q", res.Content)
			}

			fresh := mustStaticPage(t, tt.html)
			res, err = ExtractContent(fresh, ExtractOptions{
				Selector:        tt.opts.Selector,
				HeadOnly:        tt.opts.HeadOnly,
				BodyOnly:        tt.opts.BodyOnly,
				IncludeComments: true,
			})
			if err != nil {
				t.Fatalf("ExtractContent() error = %v", err)
			}
			if res.Content != tt.want {
				t.Errorf("content = %q, want %q", res.Content, tt.want)
			}
		})
	}
}

func TestExtractContentHeadAndBodyOnly(t *testing.T) {
	raw := `<html><head><title>T</title></head><body><p>P</p></body></html>`

	head, err := ExtractContent(mustStaticPage(t, raw), ExtractOptions{HeadOnly: true})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if !strings.Contains(head.Content, "<title>T</title>") || strings.Contains(head.Content, "<p>P</p>") {
		t.Errorf("headOnly content = %q", head.Content)
	}

	body, err := ExtractContent(mustStaticPage(t, raw), ExtractOptions{BodyOnly: true})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if !strings.Contains(body.Content, "<p>P</p>") || strings.Contains(body.Content, "<title>") {
		t.Errorf("bodyOnly content = %q", body.Content)
	}

	// Selector wins over headOnly and bodyOnly.
	both, err := ExtractContent(mustStaticPage(t, raw), ExtractOptions{Selector: "p", HeadOnly: true, BodyOnly: true})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if both.Content != "<p>P</p>" {
		t.Errorf("selector precedence violated: %q", both.Content)
	}
}

func TestExtractContentExcludeTags(t *testing.T) {
	page := mustStaticPage(t, `<html><head><script>evil()</script><style>p{}</style></head>
		<body><p>keep</p><noscript>no js</noscript></body></html>`)

	res, err := ExtractContent(page, ExtractOptions{ExcludeTags: []string{"script", "style", "noscript", "iframe"}})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}

	for _, gone := range []string{"<script>", "evil()", "<style>", "<noscript>", "no js"} {
		if strings.Contains(res.Content, gone) {
			t.Errorf("excluded content still present: %q", gone)
		}
	}
	if !strings.Contains(res.Content, "<p>keep</p>") {
		t.Errorf("kept content missing: %s", res.Content)
	}
}

// Tag exclusion mutates the document, not a copy: a second extraction
// against the same page sees the reduced markup even without excludeTags.
func TestExtractContentExclusionIsDestructive(t *testing.T) {
	page := mustStaticPage(t, `<html><body><p>text</p><script>evil()</script></body></html>`)

	if _, err := ExtractContent(page, ExtractOptions{ExcludeTags: []string{"script"}}); err != nil {
		t.Fatalf("first ExtractContent() error = %v", err)
	}

	res, err := ExtractContent(page, ExtractOptions{})
	if err != nil {
		t.Fatalf("second ExtractContent() error = %v", err)
	}
	if strings.Contains(res.Content, "evil()") {
		t.Errorf("script survived earlier exclusion: %s", res.Content)
	}
}

func TestExtractContentMinimalPreset(t *testing.T) {
	page := mustStaticPage(t, `<html>
		<head>
			<script>track()</script>
			<style>body { color: red; }</style>
		</head>
		<body>
			<!-- hidden note -->
			<h1>Title</h1>
			<noscript>enable js</noscript>
			<p>Body text</p>
		</body>
	</html>`)

	res, err := ExtractContent(page, ExtractOptions{Preset: PresetMinimal, IncludeComments: true})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}

	for _, gone := range []string{"track()", "color: red", "enable js", "<!--", "\n"} {
		if strings.Contains(res.Content, gone) {
			t.Errorf("minimal preset output contains %q: %s", gone, res.Content)
		}
	}
	for _, want := range []string{"<h1>Title</h1>", "<p>Body text</p>"} {
		if !strings.Contains(res.Content, want) {
			t.Errorf("minimal preset output missing %q: %s", want, res.Content)
		}
	}
}

// Compression always wins when both compress and prettyPrint are set.
func TestExtractContentCompressBeatsPrettyPrint(t *testing.T) {
	raw := `<html><body>  <div> <p>text</p> </div>  </body></html>`

	compressed, err := ExtractContent(mustStaticPage(t, raw), ExtractOptions{Compress: true})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	both, err := ExtractContent(mustStaticPage(t, raw), ExtractOptions{Compress: true, PrettyPrint: true})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}

	if both.Content != compressed.Content {
		t.Errorf("compress+prettyPrint = %q, compress alone = %q", both.Content, compressed.Content)
	}
}

func TestExtractContentPagination(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`<html><body>`)
	for i := 0; i < 30; i++ {
		sb.WriteString("<p>paragraph content here</p>")
	}
	sb.WriteString(`</body></html>`)
	page := mustStaticPage(t, sb.String())

	first, err := ExtractContent(page, ExtractOptions{MaxLength: intPtr(50)})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if first.ActualLength != 50 || first.ActualOffset != 0 || !first.HasMore {
		t.Errorf("first window = %+v", first)
	}

	second, err := ExtractContent(page, ExtractOptions{Offset: 50, MaxLength: intPtr(50)})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if second.ActualOffset != 50 || second.ActualLength != 50 {
		t.Errorf("second window = %+v", second)
	}
	if second.TotalLength != first.TotalLength {
		t.Errorf("TotalLength drifted between calls: %d vs %d", first.TotalLength, second.TotalLength)
	}
}

func TestExtractContentCommentsKept(t *testing.T) {
	page := mustStaticPage(t, `<html><body><!-- keep me --><p>x</p></body></html>`)

	res, err := ExtractContent(page, ExtractOptions{IncludeComments: true})
	if err != nil {
		t.Fatalf("ExtractContent() error = %v", err)
	}
	if !strings.Contains(res.Content, "<!-- keep me -->") {
		t.Errorf("comment stripped despite includeComments: %s", res.Content)
	}
}
