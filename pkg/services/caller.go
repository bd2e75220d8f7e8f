package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
)

// caller is the request helper every typed client is built on. It owns the
// base URL, the acting initiator and the error translation rules shared by
// all operations.
type caller struct {
	http    httpx.Client
	base    string
	service string
	auth    *models.Initiator
	rec     Recorder
}

func (f *Factory) caller(service, base string, ini *models.Initiator) caller {
	return caller{
		http:    f.http,
		base:    strings.TrimRight(base, "/"),
		service: service,
		auth:    ini,
		rec:     f.rec,
	}
}

// do issues one call and decodes the answer into out (which may be nil for
// operations without a result). An empty or null response body leaves out
// at its zero value. Non-2xx answers become a DownstreamError carrying the
// parsed error message when the service sent one.
func (c caller) do(ctx context.Context, method, path string, body, out any) error {
	req := httpx.Request{Method: method, URL: c.base + path, Body: body, Headers: map[string]string{}}
	if c.auth != nil {
		req.Headers[httpx.HeaderAuthorization] = c.auth.HeaderValue()
	}

	ctx, span := startClientSpan(ctx, c.service, method, path, req.Headers)

	op := method + " " + path
	start := time.Now()
	c.rec.ClientInFlight(c.service, 1)
	resp, err := c.http.Do(ctx, req)
	c.rec.ClientInFlight(c.service, -1)
	if err != nil {
		c.rec.ObserveClient(c.service, method, 0, time.Since(start))
		endClientSpan(span, 0, err)
		return errs.Wrap(errs.KindHTTPClient, fmt.Sprintf("%s %s", c.service, op), err)
	}
	c.rec.ObserveClient(c.service, method, resp.Status, time.Since(start))
	endClientSpan(span, resp.Status, nil)

	if resp.Status >= 400 {
		return &errs.DownstreamError{
			Service: c.service,
			Op:      op,
			Status:  resp.Status,
			Message: parseErrorMessage(resp.Status, resp.Body),
		}
	}

	if out == nil {
		return nil
	}
	payload := bytes.TrimSpace(resp.Body)
	if len(payload) == 0 || bytes.Equal(payload, []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(payload, out); err != nil {
		return errs.Wrap(errs.KindParse, fmt.Sprintf("%s %s: decode response", c.service, op), err)
	}
	return nil
}

// parseErrorMessage decodes the structured error body services attach to
// failures. Bodies that do not parse, or parse to nothing, yield nil; a
// parsed message with no code inherits the response status.
func parseErrorMessage(status int, body []byte) *errs.ErrorMessage {
	payload := bytes.TrimSpace(body)
	if len(payload) == 0 {
		return nil
	}
	var msg errs.ErrorMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return nil
	}
	if msg.Code == 0 && msg.Description == "" {
		return nil
	}
	if msg.Code == 0 {
		msg.Code = status
	}
	return &msg
}
