// Package errs defines the closed failure taxonomy of the coordinator and
// the mapper that reshapes downstream failures into user-facing errors.
package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure. The set is closed; everything the coordinator
// returns to a client is one of these.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindParse
	KindValidate
	KindHTTPClient
	KindRPCClient
	KindForbidden
)

// String returns the wire name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindParse:
		return "parse"
	case KindValidate:
		return "validate"
	case KindHTTPClient:
		return "http_client"
	case KindRPCClient:
		return "rpc_client"
	case KindForbidden:
		return "forbidden"
	default:
		return "unknown"
	}
}

// HTTPStatus returns the response status a failure of this kind maps to.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindParse:
		return http.StatusUnprocessableEntity
	case KindValidate:
		return http.StatusBadRequest
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// ValidationError is one field-level validation message.
type ValidationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// FieldErrors maps a field name to its validation errors.
type FieldErrors map[string][]ValidationError

// Error is a classified failure. It wraps the underlying cause so callers
// can still reach transport details with errors.As.
type Error struct {
	kind   Kind
	msg    string
	fields FieldErrors
	cause  error
}

// New returns a classified error with no cause.
func New(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Newf returns a classified error with a formatted message.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{kind: kind, msg: fmt.Sprintf(format, args...)}
}

// Wrap classifies cause under the given kind and message.
func Wrap(kind Kind, msg string, cause error) *Error {
	return &Error{kind: kind, msg: msg, cause: cause}
}

// NewValidate returns a validation failure carrying per-field errors.
func NewValidate(msg string, fields FieldErrors) *Error {
	return &Error{kind: KindValidate, msg: msg, fields: fields}
}

// WrapValidate classifies cause as a validation failure with per-field errors.
func WrapValidate(msg string, fields FieldErrors, cause error) *Error {
	return &Error{kind: KindValidate, msg: msg, fields: fields, cause: cause}
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	if e.msg == "" {
		return e.cause.Error()
	}
	return e.msg + ": " + e.cause.Error()
}

// Unwrap exposes the cause for errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// Kind returns the classification.
func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the user-facing description.
func (e *Error) Message() string {
	return e.msg
}

// Fields returns the per-field validation errors; nil unless KindValidate.
func (e *Error) Fields() FieldErrors {
	return e.fields
}

// KindOf returns the kind of the outermost classified error in the chain,
// or KindUnknown when the chain carries no classification.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.kind
	}
	return KindUnknown
}

// IsKind reports whether the outermost classification matches kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
