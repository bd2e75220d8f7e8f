package httpx

import (
	"context"
	"testing"
	"time"
)

func TestHeaderClient_DefaultsApplied(t *testing.T) {
	inner := &fakeClient{}
	client := WithHeaders(inner, map[string]string{"Currency": "STQ"})

	if _, err := client.Do(context.Background(), Request{Method: "GET", URL: "http://x/ping"}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := inner.header(0, "Currency"); got != "STQ" {
		t.Errorf("Currency = %q, want STQ", got)
	}
}

func TestHeaderClient_PerCallWins(t *testing.T) {
	inner := &fakeClient{}
	client := WithHeaders(inner, map[string]string{
		"Currency":      "STQ",
		"Authorization": "1",
	})

	req := Request{
		Method:  "GET",
		URL:     "http://x/ping",
		Headers: map[string]string{"Currency": "EUR"},
	}
	if _, err := client.Do(context.Background(), req); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := inner.header(0, "Currency"); got != "EUR" {
		t.Errorf("Currency = %q, per-call value must win", got)
	}
	if got := inner.header(0, "Authorization"); got != "1" {
		t.Errorf("Authorization = %q, untouched defaults must survive", got)
	}
}

func TestHeaderClient_CopiesDefaults(t *testing.T) {
	inner := &fakeClient{}
	defaults := map[string]string{"Currency": "STQ"}
	client := WithHeaders(inner, defaults)
	defaults["Currency"] = "BTC"

	if _, err := client.Do(context.Background(), Request{Method: "GET", URL: "http://x/ping"}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := inner.header(0, "Currency"); got != "STQ" {
		t.Errorf("Currency = %q, decorator must not alias the caller's map", got)
	}
}

func TestHeaderClient_Composition(t *testing.T) {
	inner := &fakeClient{}
	stacked := WithHeaders(
		WithHeaders(inner, map[string]string{"A": "inner", "B": "inner"}),
		map[string]string{"B": "outer", "C": "outer"},
	)

	req := Request{
		Method:  "GET",
		URL:     "http://x/ping",
		Headers: map[string]string{"C": "call"},
	}
	if _, err := stacked.Do(context.Background(), req); err != nil {
		t.Fatalf("Do: %v", err)
	}

	if got := inner.header(0, "A"); got != "inner" {
		t.Errorf("A = %q, want inner default", got)
	}
	if got := inner.header(0, "B"); got != "outer" {
		t.Errorf("B = %q, outer decorator must override inner defaults", got)
	}
	if got := inner.header(0, "C"); got != "call" {
		t.Errorf("C = %q, per-call value must win over every default", got)
	}
}

func TestHeaderAndBudgetStack(t *testing.T) {
	inner := &fakeClient{}
	budget := NewBudget(250 * time.Millisecond)
	client := WithHeaders(WithBudget(inner, budget), map[string]string{"Authorization": "42"})

	if _, err := client.Do(context.Background(), Request{Method: "POST", URL: "http://x/orders"}); err != nil {
		t.Fatalf("Do: %v", err)
	}
	if got := inner.header(0, "Authorization"); got != "42" {
		t.Errorf("Authorization = %q, want 42", got)
	}
	if got := inner.header(0, HeaderRequestTimeout); got != "250" {
		t.Errorf("Request-Timeout = %q, want 250", got)
	}
}
