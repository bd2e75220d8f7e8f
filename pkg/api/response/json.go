// Package response renders the coordinator's JSON bodies: the operation
// result on success, the {code, description, payload} failure envelope
// otherwise.
package response

import (
	"bytes"
	"encoding/json"
	"net/http"
)

// JSON writes data with the given status code. Nil data renders as JSON
// null, the coordinator's empty success body.
func JSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// Raw writes a pre-encoded JSON body, as returned by the pass-through
// endpoints. An empty body renders as null so proxied replies keep the
// empty-body/null equivalence of the downstream contract.
func Raw(w http.ResponseWriter, statusCode int, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	payload := bytes.TrimSpace(body)
	if len(payload) == 0 {
		payload = []byte("null")
	}
	_, _ = w.Write(payload)
}
