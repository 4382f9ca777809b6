// Package apierr defines the error surface for Medium API responses.
package apierr

import (
	"encoding/json"
	"fmt"
)

// DefaultCode is reported when the response carries no usable error entry.
const DefaultCode = -1

// genericMessage mirrors the API's fallback when the errors array is absent
// or empty. The API's full failure taxonomy is not documented, so no stricter
// validation is attempted.
const genericMessage = "API request failed"

// Entry is one element of the API's errors array.
type Entry struct {
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// APIError is returned for any response whose status falls outside [200, 300).
// Code and Message come from the first entry of the response's errors array;
// Body carries the raw response for context.
type APIError struct {
	StatusCode int
	Code       int
	Message    string
	Body       json.RawMessage
}

// Error satisfies the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("medium: %s (%d)", e.Message, e.Code)
}

// FromResponse builds an APIError from a failed response. errs is the parsed
// errors array, which may be empty.
func FromResponse(statusCode int, body []byte, errs []Entry) *APIError {
	e := &APIError{
		StatusCode: statusCode,
		Code:       DefaultCode,
		Message:    genericMessage,
		Body:       body,
	}
	if len(errs) > 0 {
		e.Code = errs[0].Code
		e.Message = errs[0].Message
	}
	return e
}
