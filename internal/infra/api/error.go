package api

import (
	"net/http"

	"subletswipe/internal/errors"
)

// StatusError is a non-2xx response from the backend. Message carries the
// response body text so screens can show it verbatim.
type StatusError struct {
	StatusCode int
	Message    string
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return e.Message
}

// IsStatus reports whether err wraps a StatusError with the given code.
func IsStatus(err error, code int) bool {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode == code
	}

	return false
}

// IsNotFound reports whether err is a 404 response.
func IsNotFound(err error) bool {
	return IsStatus(err, http.StatusNotFound)
}
