package http

import (
	"net/http"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/messaging"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

var (
	errWrongParams   = pkgErrors.NewHTTPError(17001, "Wrong params", http.StatusBadRequest)
	errWrongBody     = pkgErrors.NewHTTPError(17002, "Wrong body", http.StatusBadRequest)
	errNotFound      = pkgErrors.NewHTTPError(17003, "SMS template not found", http.StatusNotFound)
	errUnknownAction = pkgErrors.NewHTTPError(17004, "Unknown table action", http.StatusBadRequest)
	errDenied        = pkgErrors.NewHTTPError(17005, "You don't have access to SMS templates", http.StatusForbidden)
	errNoConfig      = pkgErrors.NewHTTPError(17006, "SMS gateway is not configured", http.StatusNotFound)
	errPlaceholder   = pkgErrors.NewHTTPError(17007, "Placeholders must look like {{customer_name}}", http.StatusBadRequest)
)

const errRemoteCode = 17010

func (h *Handler) mapError(err error) error {
	switch err {
	case messaging.ErrTemplateNotFound:
		return errNotFound
	case paginator.ErrUnknownAction:
		return errUnknownAction
	case listing.ErrDenied:
		return errDenied
	case messaging.ErrConfigNotFound:
		return errNoConfig
	case messaging.ErrInvalidPlaceholder:
		return errPlaceholder
	}
	if httpErr := graphql.HTTPError(err, errRemoteCode); httpErr != nil {
		return httpErr
	}
	return err
}
