package httpx

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"
)

// HeaderRequestTimeout carries the remaining budget downstream in integer
// milliseconds.
const HeaderRequestTimeout = "Request-Timeout"

// ErrTimeLimitExceeded is returned when the time budget of the request
// chain is exhausted, either before a call is issued or while it runs.
var ErrTimeLimitExceeded = errors.New("time limit exceeded")

// Budget is the shared remaining-time cell of one inbound request. Every
// client derived from that request holds the same Budget. The cell only
// ever shrinks; zero is absorbing.
type Budget struct {
	mu        sync.Mutex
	remaining time.Duration
}

// NewBudget returns a budget with the given initial allowance.
func NewBudget(initial time.Duration) *Budget {
	if initial < 0 {
		initial = 0
	}
	return &Budget{remaining: initial}
}

// Remaining returns a snapshot of the remaining time.
func (b *Budget) Remaining() time.Duration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.remaining
}

// spend charges elapsed against the snapshot the caller started from.
// The new value is min(remaining, snapshot-elapsed) clamped at zero, so
// overlapping calls converge on the tightest observed bound.
func (b *Budget) spend(snapshot, elapsed time.Duration) {
	next := snapshot - elapsed
	if next < 0 {
		next = 0
	}
	b.mu.Lock()
	if next < b.remaining {
		b.remaining = next
	}
	b.mu.Unlock()
}

// BudgetClient enforces the time budget around an inner transport: it
// fails fast once the budget is gone, propagates the remaining allowance
// in the Request-Timeout header (overwriting any caller-supplied value),
// bounds the call by a deadline, and charges the observed elapsed time.
type BudgetClient struct {
	inner  Client
	budget *Budget
}

// WithBudget wraps inner with the budget discipline.
func WithBudget(inner Client, budget *Budget) *BudgetClient {
	return &BudgetClient{inner: inner, budget: budget}
}

// Budget exposes the shared cell, mainly for tests and diagnostics.
func (c *BudgetClient) Budget() *Budget {
	return c.budget
}

func (c *BudgetClient) Do(ctx context.Context, req Request) (*Response, error) {
	rem := c.budget.Remaining()
	if rem <= 0 {
		return nil, ErrTimeLimitExceeded
	}

	headers := make(map[string]string, len(req.Headers)+1)
	for k, v := range req.Headers {
		headers[k] = v
	}
	headers[HeaderRequestTimeout] = strconv.FormatInt(rem.Milliseconds(), 10)
	req.Headers = headers

	ctx, cancel := context.WithTimeout(ctx, rem)
	defer cancel()

	start := time.Now()
	resp, err := c.inner.Do(ctx, req)
	c.budget.spend(rem, time.Since(start))

	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, ErrTimeLimitExceeded
		}
		return nil, err
	}
	return resp, nil
}
