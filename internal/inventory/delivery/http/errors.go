package http

import (
	"net/http"

	"isp-dashboard/internal/inventory"
	"isp-dashboard/internal/listing"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

var (
	errWrongParams   = pkgErrors.NewHTTPError(15001, "Wrong params", http.StatusBadRequest)
	errWrongBody     = pkgErrors.NewHTTPError(15002, "Wrong body", http.StatusBadRequest)
	errNotFound      = pkgErrors.NewHTTPError(15003, "Inventory item not found", http.StatusNotFound)
	errUnknownAction = pkgErrors.NewHTTPError(15004, "Unknown table action", http.StatusBadRequest)
	errDenied        = pkgErrors.NewHTTPError(15005, "You don't have access to inventory", http.StatusForbidden)
)

const errRemoteCode = 15010

func (h *Handler) mapError(err error) error {
	switch err {
	case inventory.ErrItemNotFound:
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
