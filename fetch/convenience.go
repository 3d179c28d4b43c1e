package fetch

import (
	"context"

	"github.com/fetchkit/fetch-go/transport"
)

// The package-level operations run on a transient client with default
// engine settings, so they are safe to call from any goroutine. Workers
// issuing many requests should hold their own Client instead and reuse it.

// The transient client sits on the shared engine: its Close must not
// evict idle connections other clients keep pooled in the process-wide
// transport, so those are left for Shutdown to release.
func transient() *Client {
	return &Client{engine: transport.SharedEngine()}
}

// Get issues a GET request on a transient client.
func Get(ctx context.Context, url string, headers ...string) Response {
	c := transient()
	defer c.Close()
	return c.Get(ctx, url, headers...)
}

// Head issues a HEAD request on a transient client.
func Head(ctx context.Context, url string, headers ...string) Response {
	c := transient()
	defer c.Close()
	return c.Head(ctx, url, headers...)
}

// Post issues a POST request with a raw payload on a transient client.
func Post(ctx context.Context, url, body string, headers ...string) Response {
	c := transient()
	defer c.Close()
	return c.Post(ctx, url, body, headers...)
}

// PostForm issues a multipart form POST on a transient client.
func PostForm(ctx context.Context, url string, form []FormField, headers ...string) Response {
	c := transient()
	defer c.Close()
	return c.PostForm(ctx, url, form, headers...)
}

// Put issues a PUT request on a transient client.
func Put(ctx context.Context, url, body string, headers ...string) Response {
	c := transient()
	defer c.Close()
	return c.Put(ctx, url, body, headers...)
}

// Patch issues a PATCH request on a transient client.
func Patch(ctx context.Context, url, body string, headers ...string) Response {
	c := transient()
	defer c.Close()
	return c.Patch(ctx, url, body, headers...)
}

// Delete issues a DELETE request on a transient client. The body may be empty.
func Delete(ctx context.Context, url, body string, headers ...string) Response {
	c := transient()
	defer c.Close()
	return c.Delete(ctx, url, body, headers...)
}
