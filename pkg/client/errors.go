package client

import (
	"errors"
	"fmt"
)

// HTTPError represents a non-2xx HTTP response from the HireWire API.
type HTTPError struct {
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// IsStatus returns true if err (or any wrapped error) is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.StatusCode == code
	}
	return false
}

// IsConflict reports whether err is an HTTP 409. The API answers 409 when an
// invitation was cancelled, expired, or already answered on another device
// between render and response.
func IsConflict(err error) bool {
	return IsStatus(err, 409)
}
