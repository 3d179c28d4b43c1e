package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// DefaultUserAgent is attached to every request unless the caller supplies
// a User-Agent header line of their own.
const DefaultUserAgent = "fetch-go-agent/1.0"

var (
	// ErrHTTPReturnedError flags a completed exchange whose status code is
	// 400 or above. The transfer itself succeeded; the Result alongside
	// this error is fully populated and the delivery callbacks have run.
	ErrHTTPReturnedError = errors.New("http returned error")
	// ErrUnsupportedProtocol indicates a URL scheme other than http or https.
	ErrUnsupportedProtocol = errors.New("unsupported protocol")
)

// FormField is one multipart form field. Fields are encoded in order, one
// part per field, part name = Name, part data = Value.
type FormField struct {
	Name  string
	Value string
}

// Options configures one transfer. A fresh Options value is expected per
// request; the engine never retains it.
type Options struct {
	// URL is the already-normalized request URL. Only http and https are
	// accepted.
	URL string

	// Method overrides the request method. When empty the engine picks
	// HEAD if NoBody is set, POST if a payload is attached, GET otherwise.
	Method string

	// Headers holds literal header lines ("Name: value"), applied in order.
	Headers []string

	// Body is a raw request payload, attached verbatim.
	Body string

	// Form is a multipart form payload. Mutually exclusive with Body;
	// when both are set the form wins.
	Form []FormField

	// NoBody suppresses body retrieval (HEAD semantics).
	NoBody bool

	// WriteFunc receives response body bytes, one call per delivered
	// chunk. A non-nil return aborts the transfer.
	WriteFunc func(chunk []byte) error

	// HeaderFunc receives raw response header lines, one call per line,
	// each terminated with CRLF: the status line first, then one line per
	// header value, then a single blank line.
	HeaderFunc func(line string)
}

// Result reports the outcome of a performed transfer.
type Result struct {
	StatusCode   int
	EffectiveURL string
}

// Engine is the transfer engine boundary. Implementations execute one
// blocking transfer per Perform call and feed the Options callbacks as
// data arrives. An Engine instance belongs to a single worker; Close
// releases whatever the instance holds.
type Engine interface {
	Perform(ctx context.Context, o *Options) (*Result, error)
	Close()
}

// NetEngine is the default Engine, backed by a standard *http.Client.
// Redirects are followed automatically per the client's policy.
type NetEngine struct {
	client *http.Client
}

// NewEngine wraps a standard *http.Client into an Engine. If nil is
// provided, a default client (sharing the process-wide transport and its
// connection pool) is used.
func NewEngine(stdClient *http.Client) *NetEngine {
	if stdClient == nil {
		stdClient = &http.Client{}
	}
	return &NetEngine{client: stdClient}
}

// SharedEngine returns an Engine on the process-wide default transport
// whose Close is a no-op: connections it pools belong to every client
// sharing that transport, so they stay alive until Shutdown releases
// them. Meant for short-lived clients; long-lived workers should hold a
// NewEngine and Close it themselves.
func SharedEngine() Engine {
	return sharedEngine{NetEngine: NewEngine(&http.Client{})}
}

type sharedEngine struct {
	*NetEngine
}

func (sharedEngine) Close() {}

// NewProxyEngine builds an engine that routes every transfer through the
// given proxy URL.
func NewProxyEngine(proxyURL string) (*NetEngine, error) {
	u, err := url.Parse(proxyURL)
	if err != nil {
		return nil, err
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("proxy url %q has no scheme or host", proxyURL)
	}
	client := &http.Client{
		Transport: &http.Transport{Proxy: http.ProxyURL(u)},
	}
	return &NetEngine{client: client}, nil
}

// Perform executes one transfer. On a completed exchange it returns a
// populated Result; a status of 400 or above is additionally flagged with
// ErrHTTPReturnedError after all callbacks have run. Any other error means
// no exchange outcome is available and the Result is nil.
func (e *NetEngine) Perform(ctx context.Context, o *Options) (*Result, error) {
	req, err := e.buildRequest(ctx, o)
	if err != nil {
		return nil, err
	}

	resp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if o.HeaderFunc != nil {
		deliverHeaderLines(resp, o.HeaderFunc)
	}

	if !o.NoBody {
		if err := e.deliverBody(resp.Body, o.WriteFunc); err != nil {
			return nil, err
		}
	}

	res := &Result{StatusCode: resp.StatusCode}
	if resp.Request != nil && resp.Request.URL != nil {
		res.EffectiveURL = resp.Request.URL.String()
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return res, fmt.Errorf("%w: status %d", ErrHTTPReturnedError, resp.StatusCode)
	}
	return res, nil
}

// Close releases the engine's idle connections.
func (e *NetEngine) Close() {
	e.client.CloseIdleConnections()
}

func (e *NetEngine) buildRequest(ctx context.Context, o *Options) (*http.Request, error) {
	u, err := url.Parse(o.URL)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedProtocol, u.Scheme)
	}

	var body io.Reader
	contentType := ""
	switch {
	case len(o.Form) > 0:
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		for _, f := range o.Form {
			if err := mw.WriteField(f.Name, f.Value); err != nil {
				return nil, err
			}
		}
		if err := mw.Close(); err != nil {
			return nil, err
		}
		body = &buf
		contentType = mw.FormDataContentType()
	case o.Body != "":
		body = strings.NewReader(o.Body)
	}

	method := o.Method
	if method == "" {
		switch {
		case o.NoBody:
			method = http.MethodHead
		case body != nil:
			method = http.MethodPost
		default:
			method = http.MethodGet
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, o.URL, body)
	if err != nil {
		return nil, err
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, line := range o.Headers {
		applyHeaderLine(req.Header, line)
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", DefaultUserAgent)
	}
	return req, nil
}

func (e *NetEngine) deliverBody(r io.Reader, write func([]byte) error) error {
	if write == nil {
		_, err := io.Copy(io.Discard, r)
		return err
	}

	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if werr := write(buf[:n]); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// deliverHeaderLines replays the final response's header block through the
// header callback the way a wire-level engine would: status line, then one
// CRLF-terminated line per header value, then a blank line. net/http
// parses headers into a map, so lines are synthesized in sorted key order
// to keep delivery deterministic.
func deliverHeaderLines(resp *http.Response, deliver func(line string)) {
	deliver(resp.Proto + " " + resp.Status + "\r\n")

	keys := make([]string, 0, len(resp.Header))
	for k := range resp.Header {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		for _, v := range resp.Header[k] {
			deliver(k + ": " + v + "\r\n")
		}
	}
	deliver("\r\n")
}

// applyHeaderLine translates one literal header line into the native
// header representation. Lines without a colon are ignored.
func applyHeaderLine(h http.Header, line string) {
	name, value, ok := strings.Cut(line, ":")
	if !ok {
		return
	}
	h.Add(strings.TrimSpace(name), strings.TrimSpace(value))
}

// Shutdown releases the idle connections held by the process-wide default
// transport. Call it once, after all workers are done; per-worker state is
// released by Engine.Close independently of this.
func Shutdown() {
	if t, ok := http.DefaultTransport.(*http.Transport); ok {
		t.CloseIdleConnections()
	}
}
