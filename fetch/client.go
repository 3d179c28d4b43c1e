package fetch

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fetchkit/fetch-go/fetcherr"
	"github.com/fetchkit/fetch-go/internal/headerline"
	"github.com/fetchkit/fetch-go/internal/membuf"
	"github.com/fetchkit/fetch-go/transport"
)

// FormField is one multipart form field, encoded in order on PostForm.
type FormField = transport.FormField

// Client issues synchronous HTTP requests through one reusable transfer
// engine. A Client belongs to a single worker goroutine and supports one
// in-flight request at a time: the body buffer and header accumulator are
// reused serially across calls and are not guarded by locks. Workers
// running in parallel each own their own Client and never share one.
type Client struct {
	engine     transport.Engine
	headerList []string
	body       membuf.Buffer
	headers    headerline.Accumulator
}

type settings struct {
	engine  transport.Engine
	timeout time.Duration
	proxy   string
}

// Option configures a Client at construction time.
type Option func(*settings)

// WithEngine injects a custom transfer engine. Mutually exclusive with
// WithTimeout and WithProxy, which configure the default engine.
func WithEngine(e transport.Engine) Option {
	return func(s *settings) { s.engine = e }
}

// WithTimeout bounds each whole transfer (connection, redirects, body).
// Zero leaves the engine's defaults in place.
func WithTimeout(d time.Duration) Option {
	return func(s *settings) { s.timeout = d }
}

// WithProxy routes every transfer through the given proxy URL.
func WithProxy(proxyURL string) Option {
	return func(s *settings) { s.proxy = proxyURL }
}

// New creates a Client for the calling worker. Construction is the only
// fallible step: configuration and engine-initialization problems are
// returned here, and the operations themselves never return errors.
func New(opts ...Option) (*Client, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}

	op := "fetch.New"
	if s.timeout < 0 {
		return nil, fetcherr.New().
			WithOp(op).
			WithKind(fetcherr.ErrConfiguration).
			WithMessage("timeout must not be negative")
	}
	if s.engine != nil {
		if s.timeout != 0 || s.proxy != "" {
			return nil, fetcherr.New().
				WithOp(op).
				WithKind(fetcherr.ErrConfiguration).
				WithMessage("WithEngine cannot be combined with WithTimeout or WithProxy")
		}
		return &Client{engine: s.engine}, nil
	}

	if s.proxy != "" {
		e, err := transport.NewProxyEngine(s.proxy)
		if err != nil {
			return nil, fetcherr.New().
				WithOp(op).
				WithKind(fetcherr.ErrEngineInit).
				WithCause(err)
		}
		return &Client{engine: e}, nil
	}

	return &Client{engine: transport.NewEngine(&http.Client{Timeout: s.timeout})}, nil
}

// Close releases the client's engine. The Client must not be used after
// Close; call it when the owning worker ends.
func (c *Client) Close() {
	c.headerList = nil
	c.engine.Close()
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, rawURL string, headers ...string) Response {
	return c.perform(ctx, &transport.Options{
		URL:     normalizeURL(rawURL),
		Headers: c.rebuildHeaderList(headers),
	})
}

// Head issues a GET-equivalent request with body retrieval suppressed.
func (c *Client) Head(ctx context.Context, rawURL string, headers ...string) Response {
	return c.perform(ctx, &transport.Options{
		URL:     normalizeURL(rawURL),
		NoBody:  true,
		Headers: c.rebuildHeaderList(headers),
	})
}

// Post issues a POST request with a raw payload attached verbatim.
func (c *Client) Post(ctx context.Context, rawURL, body string, headers ...string) Response {
	return c.perform(ctx, &transport.Options{
		URL:     normalizeURL(rawURL),
		Method:  http.MethodPost,
		Body:    body,
		Headers: c.rebuildHeaderList(headers),
	})
}

// PostForm issues a POST request with a multipart form payload, one part
// per field in order.
func (c *Client) PostForm(ctx context.Context, rawURL string, form []FormField, headers ...string) Response {
	return c.perform(ctx, &transport.Options{
		URL:     normalizeURL(rawURL),
		Method:  http.MethodPost,
		Form:    form,
		Headers: c.rebuildHeaderList(headers),
	})
}

// Put issues a PUT request with a raw payload.
func (c *Client) Put(ctx context.Context, rawURL, body string, headers ...string) Response {
	return c.Do(ctx, http.MethodPut, rawURL, body, headers...)
}

// Patch issues a PATCH request with a raw payload.
func (c *Client) Patch(ctx context.Context, rawURL, body string, headers ...string) Response {
	return c.Do(ctx, http.MethodPatch, rawURL, body, headers...)
}

// Delete issues a DELETE request. The body may be empty.
func (c *Client) Delete(ctx context.Context, rawURL, body string, headers ...string) Response {
	return c.Do(ctx, http.MethodDelete, rawURL, body, headers...)
}

// Do issues a request with an arbitrary method. A non-empty body is
// attached verbatim as the request payload.
func (c *Client) Do(ctx context.Context, method, rawURL, body string, headers ...string) Response {
	return c.perform(ctx, &transport.Options{
		URL:     normalizeURL(rawURL),
		Method:  method,
		Body:    body,
		Headers: c.rebuildHeaderList(headers),
	})
}

// rebuildHeaderList replaces the outstanding request header list. The list
// is owned by the client, rebuilt on every call that supplies headers and
// dropped at Close.
func (c *Client) rebuildHeaderList(headers []string) []string {
	if len(headers) == 0 {
		return nil
	}
	c.headerList = append(c.headerList[:0], headers...)
	return c.headerList
}

// perform runs one transfer and assembles the Response. A completed
// exchange — clean or flagged as an HTTP error — is inspectable; any other
// engine outcome yields the zero Response with StatusCode 0.
func (c *Client) perform(ctx context.Context, o *transport.Options) Response {
	c.body.Reset()
	c.headers.Reset()
	o.WriteFunc = func(chunk []byte) error {
		_, err := c.body.Write(chunk)
		return err
	}
	o.HeaderFunc = c.headers.Append

	res, err := c.engine.Perform(ctx, o)
	if err != nil && !errors.Is(err, transport.ErrHTTPReturnedError) {
		return Response{}
	}
	if res == nil {
		return Response{}
	}

	resp := Response{
		StatusCode: res.StatusCode,
		Headers:    c.headers.Take(),
		Body:       string(c.body.Take()),
		URL:        res.EffectiveURL,
	}
	resp.Encoding = detectEncoding(resp.Headers)
	return resp
}

// Shutdown releases process-wide engine state (the shared transport's idle
// connections). Call it once after all workers are done; it is independent
// of per-worker Client lifetimes.
func Shutdown() {
	transport.Shutdown()
}
