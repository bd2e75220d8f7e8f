package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestDetach(t *testing.T) {
	parentCtx, cancel := context.WithCancel(context.Background())

	var innerCtx context.Context
	handler := Detach()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		innerCtx = r.Context()
		cancel()
		select {
		case <-innerCtx.Done():
			t.Error("handler context canceled with the client connection")
		default:
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/create_order", nil).WithContext(parentCtx)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %v, want %v", w.Code, http.StatusOK)
	}
	if innerCtx.Err() != nil {
		t.Errorf("detached context err = %v, want nil", innerCtx.Err())
	}
}

func TestDetachKeepsValues(t *testing.T) {
	ctx := context.WithValue(context.Background(), correlationIDKey, "corr-1")

	handler := Detach()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := GetCorrelationID(r.Context()); got != "corr-1" {
			t.Errorf("GetCorrelationID() = %q, want %q", got, "corr-1")
		}
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodPost, "/buy_now", nil).WithContext(ctx)
	handler.ServeHTTP(httptest.NewRecorder(), req)
}
