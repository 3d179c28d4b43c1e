// Package fetch exposes a minimal synchronous HTTP client over a transfer
// engine. Each public operation blocks until the transfer completes or
// fails; ordinary network and HTTP outcomes are reported as data on the
// returned Response, never as errors.
package fetch

import "strings"

// Response is the assembled outcome of one transfer. It is a plain value;
// callers branch on it rather than on errors.
type Response struct {
	// StatusCode is the numeric HTTP status. 0 means no response was
	// obtained (the transfer failed before any status line).
	StatusCode int

	// Headers holds raw header lines in delivery order, trailing CRLF
	// stripped: the status line first, then one line per header value,
	// then a terminating empty line.
	Headers []string

	// Body is the concatenation of all delivered content chunks.
	Body string

	// Encoding is the charset extracted from a content-type header, if any.
	Encoding string

	// URL is the effective URL after redirects; empty if the transfer did
	// not complete enough to report one.
	URL string
}

// Ok reports whether the response counts as successful. The acceptance
// range is [100, 400): redirects are followed automatically, so a 3xx
// status means no further redirect is pending; 4xx and 5xx fail.
func (r Response) Ok() bool {
	return r.StatusCode >= 100 && r.StatusCode < 400
}

// AndThen applies f to the response when it is Ok, and returns the zero
// Response otherwise.
func (r Response) AndThen(f func(Response) Response) Response {
	if r.Ok() {
		return f(r)
	}
	return Response{}
}

// OrElse returns the response when it is Ok, and the result of f otherwise.
func (r Response) OrElse(f func() Response) Response {
	if r.Ok() {
		return r
	}
	return f()
}

// String returns the response body.
func (r Response) String() string {
	return r.Body
}

const (
	contentTypePrefix = "content-type:"
	charsetKey        = "charset="
)

// detectEncoding scans header lines for the first one whose name matches
// content-type case-insensitively, then looks for a charset= parameter
// within it (case-sensitively, keeping the original heuristic) and slices
// up to the next semicolon or the end of the line.
func detectEncoding(headers []string) string {
	for _, line := range headers {
		if len(line) < len(contentTypePrefix) {
			continue
		}
		if !strings.EqualFold(line[:len(contentTypePrefix)], contentTypePrefix) {
			continue
		}

		i := strings.LastIndex(line, charsetKey)
		if i < 0 {
			return ""
		}
		enc := line[i+len(charsetKey):]
		if j := strings.IndexByte(enc, ';'); j >= 0 {
			enc = enc[:j]
		}
		return enc
	}
	return ""
}
