// Package handlers provides the HTTP request handlers of the coordinator.
package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/StoriqaTeam/saga-coordinator-sub000/config"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/middleware"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/models"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/services"
)

// Downstream assembles the per-request outbound stack: every inbound
// request gets a fresh time budget and its own header defaults around
// the shared base transport. Base URLs and the budget allowance are
// hot-reloadable; Apply swaps them between requests.
type Downstream struct {
	base httpx.Client
	rec  services.Recorder

	mu     sync.RWMutex
	cfg    config.ServicesConfig
	budget time.Duration
}

// DownstreamOption tunes a Downstream.
type DownstreamOption func(*Downstream)

// WithRecorder attaches a downstream traffic recorder.
func WithRecorder(rec services.Recorder) DownstreamOption {
	return func(d *Downstream) {
		d.rec = rec
	}
}

// NewDownstream returns a Downstream over the given base transport.
func NewDownstream(base httpx.Client, cfg config.ServicesConfig, budget time.Duration, opts ...DownstreamOption) *Downstream {
	d := &Downstream{base: base, cfg: cfg, budget: budget}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Apply installs reloaded service URLs and budget allowance. Requests
// already in flight keep the stack they were built with.
func (d *Downstream) Apply(hot config.HotReloadableConfig) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cfg = hot.Services
	d.budget = hot.Budget
}

// Factory builds the service factory for one inbound request: budget
// decorator with a fresh allowance, then header defaults carrying the
// correlation id and the caller's currency.
func (d *Downstream) Factory(r *http.Request) *services.Factory {
	d.mu.RLock()
	cfg := d.cfg
	budget := d.budget
	d.mu.RUnlock()

	defaults := make(map[string]string, 2)
	if correlationID := middleware.GetCorrelationID(r.Context()); correlationID != "" {
		defaults[httpx.HeaderCorrelationID] = correlationID
	}
	if currency := r.Header.Get(httpx.HeaderCurrency); currency != "" {
		defaults[httpx.HeaderCurrency] = currency
	}

	client := httpx.WithHeaders(httpx.WithBudget(d.base, httpx.NewBudget(budget)), defaults)

	var opts []services.Option
	if d.rec != nil {
		opts = append(opts, services.WithRecorder(d.rec))
	}
	return services.NewFactory(client, cfg, opts...)
}

// Ready reports whether every downstream base URL is configured.
func (d *Downstream) Ready() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	urls := []string{
		d.cfg.Users, d.cfg.Stores, d.cfg.Orders, d.cfg.Billing,
		d.cfg.Warehouses, d.cfg.Delivery, d.cfg.Notifications,
	}
	for _, u := range urls {
		if u == "" {
			return false
		}
	}
	return true
}

// initiator reads the acting identity off the Authorization header.
func initiator(r *http.Request) *models.Initiator {
	return models.ParseInitiator(r.Header.Get(httpx.HeaderAuthorization))
}

// decode parses the JSON request body into out. Failures are parse
// errors, which render as 422.
func decode(r *http.Request, out any) error {
	if err := json.NewDecoder(r.Body).Decode(out); err != nil {
		return errs.Wrap(errs.KindParse, "decode request body", err)
	}
	return nil
}

// readRawBody reads the body for verbatim forwarding. The bytes must be
// well-formed JSON since the downstream contract is JSON in, JSON out.
func readRawBody(r *http.Request) (json.RawMessage, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, errs.Wrap(errs.KindParse, "read request body", err)
	}
	if len(raw) == 0 {
		raw = []byte("null")
	}
	if !json.Valid(raw) {
		return nil, errs.New(errs.KindParse, "request body is not valid json")
	}
	return raw, nil
}

// pathID parses a numeric path parameter. A malformed value means the
// URL matches no real resource route, so it renders as 404.
func pathID[T ~int64](r *http.Request, name string) (T, error) {
	n, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil {
		return 0, errs.New(errs.KindNotFound, "no route")
	}
	return T(n), nil
}
