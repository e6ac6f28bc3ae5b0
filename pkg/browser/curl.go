package browser

import (
	"fmt"
	"net/url"
	"strings"
)

// RawFieldName is the synthetic parameter name the post-data parser uses
// when a request body has a content type it cannot decode as a form.
const RawFieldName = "raw"

// PostParam is one decoded request-body field. Order matters.
type PostParam struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PostData is the parsed representation of a request body.
type PostData struct {
	ContentType string      `json:"contentType"`
	Params      []PostParam `json:"params"`
}

// ParsePostData decodes a raw request body. An absent or form-urlencoded
// content type decodes key=value&key=value pairs in order; any other
// content type degrades to a single synthetic field named "raw" holding
// the body verbatim. Parsing never fails.
func ParsePostData(body, contentType string) PostData {
	pd := PostData{ContentType: contentType}

	if contentType != "" && !strings.Contains(strings.ToLower(contentType), "application/x-www-form-urlencoded") {
		pd.Params = []PostParam{{Name: RawFieldName, Value: body}}
		return pd
	}

	for _, pair := range strings.Split(body, "&") {
		if pair == "" {
			continue
		}
		name, value, _ := strings.Cut(pair, "=")
		if decoded, err := url.QueryUnescape(name); err == nil {
			name = decoded
		}
		if decoded, err := url.QueryUnescape(value); err == nil {
			value = decoded
		}
		pd.Params = append(pd.Params, PostParam{Name: name, Value: value})
	}
	return pd
}

// BuildCurlCommand renders a captured request as a single curl command.
//
// The command is a literal, best-effort debugging aid: header, cookie and
// body values are interpolated into single-quoted arguments without shell
// escaping, so embedded single quotes produce a command that needs manual
// fixing before it can run.
func BuildCurlCommand(requestURL, method string, headers HeaderList, cookies []CookieRecord, post *PostData) string {
	parts := []string{"curl"}

	if !strings.EqualFold(method, "GET") {
		parts = append(parts, "-X", strings.ToUpper(method))
	}

	parts = append(parts, "'"+requestURL+"'")

	for _, h := range headers {
		switch strings.ToLower(h.Name) {
		case "cookie", "content-length":
			continue
		}
		parts = append(parts, fmt.Sprintf("-H '%s: %s'", h.Name, h.Value))
	}

	if len(cookies) > 0 && !headers.Has("cookie") {
		pairs := make([]string, len(cookies))
		for i, c := range cookies {
			pairs[i] = c.Name + "=" + c.Value
		}
		parts = append(parts, "-H 'Cookie: "+strings.Join(pairs, "; ")+"'")
	}

	if post != nil && len(post.Params) > 0 {
		if len(post.Params) == 1 && post.Params[0].Name == RawFieldName {
			parts = append(parts, "-d '"+post.Params[0].Value+"'")
		} else {
			encoded := make([]string, len(post.Params))
			for i, p := range post.Params {
				encoded[i] = url.QueryEscape(p.Name) + "=" + url.QueryEscape(p.Value)
			}
			parts = append(parts, "-d '"+strings.Join(encoded, "&")+"'")
		}
	}

	return strings.Join(parts, " ")
}
