package config

import (
	"fmt"
	"net/url"

	"github.com/gobwas/glob"
)

// OriginMatcher decides whether navigation to a URL is permitted, using
// glob patterns over the URL's hostname.
type OriginMatcher struct {
	allowed []glob.Glob
	denied  []glob.Glob
}

// NewOriginMatcher compiles the allowed and denied hostname patterns.
func NewOriginMatcher(allowed, denied []string) (*OriginMatcher, error) {
	m := &OriginMatcher{}

	for _, pattern := range allowed {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid allowed origin pattern '%s': %w", pattern, err)
		}
		m.allowed = append(m.allowed, g)
	}

	for _, pattern := range denied {
		g, err := glob.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid denied origin pattern '%s': %w", pattern, err)
		}
		m.denied = append(m.denied, g)
	}

	return m, nil
}

// IsAllowed reports whether navigation to rawURL is permitted. Denied
// patterns take precedence; with no allowed patterns configured, every
// origin not denied is permitted. URLs that do not parse or carry no
// hostname are rejected.
func (m *OriginMatcher) IsAllowed(rawURL string) bool {
	u, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	host := u.Hostname()
	if host == "" {
		return false
	}

	for _, pattern := range m.denied {
		if pattern.Match(host) {
			return false
		}
	}

	if len(m.allowed) == 0 {
		return true
	}

	for _, pattern := range m.allowed {
		if pattern.Match(host) {
			return true
		}
	}
	return false
}
