package browser

import (
	"net/url"
	"strings"
)

// MatchCookies filters the browsing context's cookie jar down to the
// cookies applicable to rawURL, preserving jar order.
//
// A cookie applies when the URL's hostname equals the cookie's raw domain,
// equals the domain without its leading dot, or ends with the leading-dot
// form of the domain (so ".example.com" matches both "example.com" and
// "a.example.com").
func MatchCookies(rawURL string, jar []CookieRecord) []CookieRecord {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil
	}
	host := u.Hostname()
	if host == "" {
		return nil
	}

	var matched []CookieRecord
	for _, c := range jar {
		if cookieDomainMatches(host, c.Domain) {
			matched = append(matched, c)
		}
	}
	return matched
}

func cookieDomainMatches(host, domain string) bool {
	if domain == "" {
		return false
	}
	bare := strings.TrimPrefix(domain, ".")
	return host == domain || host == bare || strings.HasSuffix(host, "."+bare)
}
