package http

import (
	"net/http"

	"isp-dashboard/internal/customer"
	"isp-dashboard/internal/listing"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

var (
	errWrongParams   = pkgErrors.NewHTTPError(11001, "Wrong params", http.StatusBadRequest)
	errWrongBody     = pkgErrors.NewHTTPError(11002, "Wrong body", http.StatusBadRequest)
	errNotFound      = pkgErrors.NewHTTPError(11003, "Customer not found", http.StatusNotFound)
	errUnknownAction = pkgErrors.NewHTTPError(11004, "Unknown table action", http.StatusBadRequest)
	errDenied        = pkgErrors.NewHTTPError(11005, "You don't have access to customers", http.StatusForbidden)
)

const errRemoteCode = 11010

func (h *Handler) mapError(err error) error {
	switch err {
	case customer.ErrCustomerNotFound:
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
