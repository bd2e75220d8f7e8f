package errs

import (
	"encoding/json"
	"errors"
	"net/http"
)

// MapValidation reshapes a workflow failure for the client. It looks for a
// downstream cause carrying an ErrorMessage and dispatches on its code:
// 403 becomes Forbidden, 404 NotFound, 400 with a parsable field payload
// becomes Validate filtered to the allowed fields, anything else Unknown.
// Errors without a downstream message pass through untouched, so transport
// failures and timeouts keep their original classification.
//
// A nil allow-list retains every field.
func MapValidation(err error, allowed []string) error {
	if err == nil {
		return nil
	}
	var de *DownstreamError
	if !errors.As(err, &de) || de.Message == nil {
		return err
	}
	m := de.Message
	switch m.Code {
	case http.StatusForbidden:
		return Wrap(KindForbidden, m.Description, err)
	case http.StatusNotFound:
		return Wrap(KindNotFound, m.Description, err)
	case http.StatusBadRequest:
		fields, ok := parseFieldErrors(m.Payload)
		if !ok {
			return Wrap(KindUnknown, m.Description, err)
		}
		return WrapValidate(m.Description, filterFields(fields, allowed), err)
	default:
		return Wrap(KindUnknown, m.Description, err)
	}
}

func parseFieldErrors(payload json.RawMessage) (FieldErrors, bool) {
	if len(payload) == 0 {
		return nil, false
	}
	var fields FieldErrors
	if err := json.Unmarshal(payload, &fields); err != nil {
		return nil, false
	}
	if fields == nil {
		return nil, false
	}
	return fields, true
}

func filterFields(fields FieldErrors, allowed []string) FieldErrors {
	if allowed == nil {
		return fields
	}
	out := FieldErrors{}
	for _, f := range allowed {
		if v, ok := fields[f]; ok {
			out[f] = v
		}
	}
	return out
}
