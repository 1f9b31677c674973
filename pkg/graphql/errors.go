package graphql

import (
	"errors"
	"net/http"
	"strings"

	pkgErrors "isp-dashboard/pkg/errors"
)

var ErrEndpointRequired = errors.New("graphql: endpoint is required")

// Error is a failed operation with the message the API returned.
type Error struct {
	Operation string
	Message   string
	cause     error
}

func newError(operation string, err error) *Error {
	return &Error{
		Operation: operation,
		Message:   strings.TrimPrefix(err.Error(), serverErrorPrefix),
		cause:     err,
	}
}

// Error returns the server message prefixed by the operation.
func (e *Error) Error() string {
	return e.Operation + ": " + e.Message
}

// Unwrap returns the transport error.
func (e *Error) Unwrap() error {
	return e.cause
}

// Message returns the text to show a user for err.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		return gqlErr.Message
	}
	return err.Error()
}

// IsDuplicateInvitation reports whether err is the API rejecting an invitation
// for someone already invited or already a member.
func IsDuplicateInvitation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(Message(err))
	for _, marker := range duplicateInvitationMarkers {
		if strings.Contains(msg, marker) {
			return true
		}
	}
	return false
}

// HTTPError converts an API error into the error shown to the user, or nil
// when err did not come from the API.
func HTTPError(err error, code int) *pkgErrors.HTTPError {
	var gqlErr *Error
	if !errors.As(err, &gqlErr) {
		return nil
	}
	return pkgErrors.NewHTTPError(code, gqlErr.Message, http.StatusUnprocessableEntity)
}
