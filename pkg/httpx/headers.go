package httpx

import "context"

// Header names shared between the ingress boundary and the outbound stack.
const (
	HeaderAuthorization = "Authorization"
	HeaderCorrelationID = "Correlation-Id"
	HeaderCurrency      = "Currency"
)

// HeaderClient layers default headers under each call's own headers.
// Per-call values win on conflict. Wrapping one HeaderClient in another
// composes the default sets, with the inner decorator closer to the call
// and therefore weaker than per-call values but stronger than nothing.
type HeaderClient struct {
	inner    Client
	defaults map[string]string
}

// WithHeaders wraps inner so every call carries the given defaults. The
// map is copied; later mutation of the argument has no effect.
func WithHeaders(inner Client, defaults map[string]string) *HeaderClient {
	d := make(map[string]string, len(defaults))
	for k, v := range defaults {
		d[k] = v
	}
	return &HeaderClient{inner: inner, defaults: d}
}

func (c *HeaderClient) Do(ctx context.Context, req Request) (*Response, error) {
	if len(c.defaults) > 0 {
		merged := make(map[string]string, len(c.defaults)+len(req.Headers))
		for k, v := range c.defaults {
			merged[k] = v
		}
		for k, v := range req.Headers {
			merged[k] = v
		}
		req.Headers = merged
	}
	return c.inner.Do(ctx, req)
}
