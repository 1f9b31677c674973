package realtime

import "errors"

var (
	ErrInvalidChannel        = errors.New("invalid change channel")
	ErrInvalidMessage        = errors.New("invalid message format")
	ErrMaxConnectionsReached = errors.New("maximum connections reached")
	ErrTooManyUserConns      = errors.New("too many connections for user")
	ErrConnectRateExceeded   = errors.New("too many connection attempts")
	ErrOrganizationMismatch  = errors.New("event organization does not match its channel")
)
