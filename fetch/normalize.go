package fetch

import (
	"net/url"
	"strings"
)

const defaultScheme = "https"

// normalizeURL prepares a caller-supplied URL for the engine: it defaults
// the scheme when none is present and percent-encodes characters that need
// it by re-serializing through the URL parser. Normalization is
// best-effort; on any failure the original string is used verbatim so the
// request can still proceed with the caller's input.
func normalizeURL(raw string) string {
	candidate := raw
	if !hasScheme(candidate) {
		candidate = defaultScheme + "://" + candidate
	}

	u, err := url.Parse(candidate)
	if err != nil || u.Host == "" {
		return raw
	}
	return u.String()
}

// hasScheme reports whether the URL starts with a scheme ("name://"). The
// prefix must be a valid scheme name (a letter followed by letters,
// digits, '+', '-' or '.'), so a "://" buried later in the string — say a
// URL-valued query parameter — does not count.
func hasScheme(raw string) bool {
	i := strings.Index(raw, "://")
	if i <= 0 {
		return false
	}
	for j, r := range raw[:i] {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
		case j > 0 && (r >= '0' && r <= '9' || r == '+' || r == '-' || r == '.'):
		default:
			return false
		}
	}
	return true
}
