package http

import (
	"net/http"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/station"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

var (
	errWrongParams   = pkgErrors.NewHTTPError(13001, "Wrong params", http.StatusBadRequest)
	errWrongBody     = pkgErrors.NewHTTPError(13002, "Wrong body", http.StatusBadRequest)
	errNotFound      = pkgErrors.NewHTTPError(13003, "Station not found", http.StatusNotFound)
	errUnknownAction = pkgErrors.NewHTTPError(13004, "Unknown table action", http.StatusBadRequest)
	errDenied        = pkgErrors.NewHTTPError(13005, "You don't have access to stations", http.StatusForbidden)
)

const errRemoteCode = 13010

func (h *Handler) mapError(err error) error {
	switch err {
	case station.ErrStationNotFound:
		return errNotFound
	case paginator.ErrUnknownAction:
		return errUnknownAction
	case listing.ErrDenied:
		return errDenied
	}
	if httpErr := graphql.HTTPError(err, errRemoteCode); httpErr != nil {
		return httpErr
	}
	return err
}
