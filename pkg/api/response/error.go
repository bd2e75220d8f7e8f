package response

import (
	"errors"
	"net/http"

	"github.com/StoriqaTeam/saga-coordinator-sub000/pkg/errs"
)

// Failure is the user-visible error body. Code repeats the HTTP status.
// Payload carries the field error map on validation failures and is
// omitted otherwise.
type Failure struct {
	Code        int    `json:"code"`
	Description string `json:"description"`
	Payload     any    `json:"payload,omitempty"`
}

// RenderError writes the failure body for err, mapping its kind to the
// corresponding HTTP status. Errors without a classification render as 500.
func RenderError(w http.ResponseWriter, err error) {
	var ce *errs.Error
	if !errors.As(err, &ce) {
		JSON(w, http.StatusInternalServerError, Failure{
			Code:        http.StatusInternalServerError,
			Description: err.Error(),
		})
		return
	}

	status := ce.Kind().HTTPStatus()
	failure := Failure{Code: status, Description: ce.Error()}
	if fields := ce.Fields(); len(fields) > 0 {
		failure.Payload = fields
	}
	JSON(w, status, failure)
}

// NotFound is the handler for routes the router does not know.
func NotFound(w http.ResponseWriter, _ *http.Request) {
	JSON(w, http.StatusNotFound, Failure{
		Code:        http.StatusNotFound,
		Description: "no route",
	})
}
