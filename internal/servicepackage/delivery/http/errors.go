package http

import (
	"net/http"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/servicepackage"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

var (
	errWrongParams     = pkgErrors.NewHTTPError(12001, "Wrong params", http.StatusBadRequest)
	errWrongBody       = pkgErrors.NewHTTPError(12002, "Wrong body", http.StatusBadRequest)
	errPackageNotFound = pkgErrors.NewHTTPError(12003, "Package not found", http.StatusNotFound)
	errUnknownAction   = pkgErrors.NewHTTPError(12004, "Unknown table action", http.StatusBadRequest)
	errDenied          = pkgErrors.NewHTTPError(12005, "You don't have access to packages", http.StatusForbidden)
)

const errRemoteCode = 12010

func (h *Handler) mapError(err error) error {
	switch err {
	case servicepackage.ErrPackageNotFound:
		return errPackageNotFound
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
