package content

import (
	"net/url"
	"strings"

	"golang.org/x/net/idna"
)

// DomainOf returns the display domain for a share URL: the lower-cased host
// without port, with punycode labels shown in Unicode. It returns "" when
// the URL has no host.
func DomainOf(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err == nil && u.Host == "" && !strings.Contains(raw, "://") {
		// "example.org/x" parses as a path; retry with a scheme.
		u, err = url.Parse("https://" + raw)
	}
	if err != nil {
		return ""
	}
	host := strings.ToLower(u.Hostname())
	if host == "" {
		return ""
	}
	if display, err := idna.Display.ToUnicode(host); err == nil {
		return display
	}
	return host
}
