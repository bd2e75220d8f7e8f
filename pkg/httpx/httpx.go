// Package httpx is the outbound HTTP stack of the coordinator: a small
// transport interface, a resty-backed base client, and the decorators the
// sagas wrap around it (shared time budget, default headers).
package httpx

import (
	"context"
	"fmt"

	"github.com/go-resty/resty/v2"
)

// Request describes one outbound call. A non-nil Body is serialized as JSON.
type Request struct {
	Method  string
	URL     string
	Body    any
	Headers map[string]string
}

// Response is the raw downstream answer. Non-2xx statuses are reported
// here, not as errors; the caller decides what a failure is.
type Response struct {
	Status int
	Body   []byte
}

// Client issues outbound requests. Implementations must be safe for
// concurrent use; decorators compose by wrapping.
type Client interface {
	Do(ctx context.Context, req Request) (*Response, error)
}

// RestyClient is the base transport.
type RestyClient struct {
	rc *resty.Client
}

// NewRestyClient returns the base transport. Forward calls are never
// retried; a failed call triggers compensation instead.
func NewRestyClient() *RestyClient {
	rc := resty.New()
	rc.SetRetryCount(0)
	return &RestyClient{rc: rc}
}

// NewRestyClientWith wraps an existing resty client, letting tests and
// main tune transport settings in one place.
func NewRestyClientWith(rc *resty.Client) *RestyClient {
	return &RestyClient{rc: rc}
}

// Do performs the exchange and returns the response whatever its status.
func (c *RestyClient) Do(ctx context.Context, req Request) (*Response, error) {
	r := c.rc.R().SetContext(ctx)
	for k, v := range req.Headers {
		r.SetHeader(k, v)
	}
	if req.Body != nil {
		r.SetHeader("Content-Type", "application/json")
		r.SetBody(req.Body)
	}

	resp, err := r.Execute(req.Method, req.URL)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", req.Method, req.URL, err)
	}
	return &Response{Status: resp.StatusCode(), Body: resp.Body()}, nil
}
