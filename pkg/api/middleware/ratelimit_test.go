package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
)

func TestRateLimit_Exceeded(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/create_order", nil)
	req.Header.Set(httpx.HeaderAuthorization, "42")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("first request status = %v, want %v", w.Code, http.StatusOK)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %v, want %v", w.Code, http.StatusTooManyRequests)
	}

	retryAfter := w.Header().Get("Retry-After")
	if retryAfter == "" {
		t.Fatal("expected Retry-After header on rejected request")
	}
	if secs, err := strconv.Atoi(retryAfter); err != nil || secs < 1 {
		t.Errorf("Retry-After = %q, want whole seconds >= 1", retryAfter)
	}

	var failure response.Failure
	if err := json.NewDecoder(w.Body).Decode(&failure); err != nil {
		t.Fatalf("decoding rejection body: %v", err)
	}
	if failure.Code != http.StatusTooManyRequests {
		t.Errorf("failure code = %v, want %v", failure.Code, http.StatusTooManyRequests)
	}
}

func TestRateLimit_SeparateBucketsPerClient(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	handler := RateLimit(rl)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	first := httptest.NewRequest(http.MethodPost, "/create_order", nil)
	first.Header.Set(httpx.HeaderAuthorization, "42")

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, first)
	if w.Code != http.StatusOK {
		t.Fatalf("first client status = %v, want %v", w.Code, http.StatusOK)
	}

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, first)
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("first client second request status = %v, want %v", w.Code, http.StatusTooManyRequests)
	}

	second := httptest.NewRequest(http.MethodPost, "/create_order", nil)
	second.Header.Set(httpx.HeaderAuthorization, "43")

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, second)
	if w.Code != http.StatusOK {
		t.Errorf("second client status = %v, want %v", w.Code, http.StatusOK)
	}
}

func TestClientKey(t *testing.T) {
	tests := []struct {
		name          string
		authorization string
		remoteAddr    string
		want          string
	}{
		{
			name:          "superadmin header",
			authorization: "1",
			remoteAddr:    "10.0.0.1:50000",
			want:          "superadmin",
		},
		{
			name:          "user header",
			authorization: "42",
			remoteAddr:    "10.0.0.1:50000",
			want:          "user 42",
		},
		{
			name:       "anonymous falls back to remote host",
			remoteAddr: "10.0.0.7:50123",
			want:       "10.0.0.7",
		},
		{
			name:          "malformed header falls back to remote host",
			authorization: "not-a-number",
			remoteAddr:    "10.0.0.7:50123",
			want:          "10.0.0.7",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/create_order", nil)
			if tt.authorization != "" {
				req.Header.Set(httpx.HeaderAuthorization, tt.authorization)
			}
			req.RemoteAddr = tt.remoteAddr

			if got := clientKey(req); got != tt.want {
				t.Errorf("clientKey() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	tests := []struct {
		name  string
		delay time.Duration
		want  int
	}{
		{name: "zero delay floors to one", delay: 0, want: 1},
		{name: "sub-second rounds up", delay: 300 * time.Millisecond, want: 1},
		{name: "exact second", delay: time.Second, want: 1},
		{name: "fraction past second rounds up", delay: 1200 * time.Millisecond, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := retryAfterSeconds(tt.delay); got != tt.want {
				t.Errorf("retryAfterSeconds(%v) = %v, want %v", tt.delay, got, tt.want)
			}
		})
	}
}
