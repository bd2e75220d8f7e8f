package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/api/response"
	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/logger"
)

// Recovery returns a middleware that turns handler panics into a logged
// 500 failure body.
func Recovery(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					stack := debug.Stack()
					log.Error("panic recovered",
						"error", err,
						"path", r.URL.Path,
						"method", r.Method,
						"correlation_id", GetCorrelationID(r.Context()),
						"stack", string(stack),
					)

					response.JSON(w,
						http.StatusInternalServerError,
						response.Failure{
							Code:        http.StatusInternalServerError,
							Description: fmt.Sprintf("internal error: %v", err),
						},
					)
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
