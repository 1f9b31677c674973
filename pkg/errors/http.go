package errors

import (
	"net/http"
	"time"
)

// HTTPError is answered with a fixed error code, message and status.
type HTTPError struct {
	Code       int
	Message    string
	StatusCode int
	// RetryAfter is sent as the Retry-After header when positive.
	RetryAfter time.Duration
}

// NewHTTPError returns an HTTPError. A zero statusCode means http.StatusBadRequest.
func NewHTTPError(code int, message string, statusCode int) *HTTPError {
	if statusCode == 0 {
		statusCode = http.StatusBadRequest
	}
	return &HTTPError{
		Code:       code,
		Message:    message,
		StatusCode: statusCode,
	}
}

// WithRetryAfter returns a copy of e that tells clients when to try again.
func (e *HTTPError) WithRetryAfter(d time.Duration) *HTTPError {
	cp := *e
	cp.RetryAfter = d
	return &cp
}

var (
	ErrUnauthorized = NewHTTPError(http.StatusUnauthorized, MessageUnauthorized, http.StatusUnauthorized)
	ErrForbidden    = NewHTTPError(http.StatusForbidden, MessageForbidden, http.StatusForbidden)
)

func (e *HTTPError) Error() string {
	return e.Message
}
