package http

import (
	"net/http"

	"isp-dashboard/internal/billing"
	"isp-dashboard/internal/listing"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

var (
	errWrongParams    = pkgErrors.NewHTTPError(19001, "Wrong params", http.StatusBadRequest)
	errWrongBody      = pkgErrors.NewHTTPError(19002, "Wrong body", http.StatusBadRequest)
	errNotFound       = pkgErrors.NewHTTPError(19003, "Subscription not found", http.StatusNotFound)
	errUnknownAction  = pkgErrors.NewHTTPError(19004, "Unknown table action", http.StatusBadRequest)
	errDenied         = pkgErrors.NewHTTPError(19005, "You don't have access to subscriptions", http.StatusForbidden)
	errPlanNotFound   = pkgErrors.NewHTTPError(19006, "Plan not found", http.StatusNotFound)
	errPlanInactive   = pkgErrors.NewHTTPError(19007, "This plan is no longer offered", http.StatusConflict)
	errNotCancellable = pkgErrors.NewHTTPError(19008, "This subscription can no longer be cancelled", http.StatusConflict)
)

const errRemoteCode = 19010

func (h *Handler) mapError(err error) error {
	switch err {
	case billing.ErrSubscriptionNotFound:
		return errNotFound
	case paginator.ErrUnknownAction:
		return errUnknownAction
	case listing.ErrDenied:
		return errDenied
	case billing.ErrPlanNotFound:
		return errPlanNotFound
	case billing.ErrPlanInactive:
		return errPlanInactive
	case billing.ErrNotCancellable:
		return errNotCancellable
	}
	if httpErr := graphql.HTTPError(err, errRemoteCode); httpErr != nil {
		return httpErr
	}
	return err
}
