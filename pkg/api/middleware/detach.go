package middleware

import (
	"context"
	"net/http"
)

// Detach severs the request context from client cancellation. The
// workflow routes run under it: a dropped connection must not abort a
// saga mid-flight, so the downstream time budget stays the only
// cancellation mechanism.
func Detach() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithoutCancel(r.Context())))
		})
	}
}
