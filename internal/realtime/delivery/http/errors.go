package http

import (
	"net/http"
	"time"

	"isp-dashboard/internal/realtime"
	pkgErrors "isp-dashboard/pkg/errors"
)

var (
	errWrongParams    = pkgErrors.NewHTTPError(20001, "Wrong params", http.StatusBadRequest)
	errMaxConnections = pkgErrors.NewHTTPError(20002, "Too many live connections, try again later", http.StatusServiceUnavailable).WithRetryAfter(30 * time.Second)
	errUserLimit      = pkgErrors.NewHTTPError(20003, "Too many open dashboard tabs", http.StatusTooManyRequests)
	errConnectRate    = pkgErrors.NewHTTPError(20004, "Reconnecting too often, wait a moment", http.StatusTooManyRequests).WithRetryAfter(time.Minute)
)

func (h *Handler) mapError(err error) error {
	switch err {
	case realtime.ErrMaxConnectionsReached:
		return errMaxConnections
	case realtime.ErrTooManyUserConns:
		return errUserLimit
	case realtime.ErrConnectRateExceeded:
		return errConnectRate
	}
	return err
}
