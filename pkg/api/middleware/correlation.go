package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/httpx"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const correlationIDKey contextKey = "correlation_id"

// CorrelationID returns a middleware that extracts the inbound
// Correlation-Id header or generates one. The id is stored in the request
// context, echoed on the response, and later forwarded on every
// downstream call of the request.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(httpx.HeaderCorrelationID)
			if id == "" {
				id = uuid.New().String()
			}

			ctx := context.WithValue(r.Context(), correlationIDKey, id)
			r = r.WithContext(ctx)

			w.Header().Set(httpx.HeaderCorrelationID, id)

			next.ServeHTTP(w, r)
		})
	}
}

// GetCorrelationID extracts the correlation id from context.
func GetCorrelationID(ctx context.Context) string {
	if id, ok := ctx.Value(correlationIDKey).(string); ok {
		return id
	}
	return ""
}
