package errs

import (
	"encoding/json"
	"fmt"
)

// ErrorMessage is the failure body the downstream services reply with.
// Code repeats the HTTP status; Payload is present only on structured
// validation rejections.
type ErrorMessage struct {
	Code        int             `json:"code"`
	Description string          `json:"description"`
	Payload     json.RawMessage `json:"payload,omitempty"`
}

// DownstreamError is the captured shape of one failed remote call: which
// service and operation, the HTTP status, and the decoded failure body
// when one was present.
type DownstreamError struct {
	Service string
	Op      string
	Status  int
	Message *ErrorMessage
}

func (e *DownstreamError) Error() string {
	if e.Message != nil && e.Message.Description != "" {
		return fmt.Sprintf("%s %s: status %d: %s", e.Service, e.Op, e.Status, e.Message.Description)
	}
	return fmt.Sprintf("%s %s: status %d", e.Service, e.Op, e.Status)
}
