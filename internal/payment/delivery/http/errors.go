package http

import (
	"net/http"

	"isp-dashboard/internal/payment"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
)

var (
	errWrongParams = pkgErrors.NewHTTPError(18001, "Wrong params", http.StatusBadRequest)
	errWrongBody   = pkgErrors.NewHTTPError(18002, "Wrong body", http.StatusBadRequest)
	errNotFound    = pkgErrors.NewHTTPError(18003, "Payment providers are not configured", http.StatusNotFound)
)

const errRemoteCode = 18010

func (h *Handler) mapError(err error) error {
	switch err {
	case payment.ErrConfigNotFound:
		return errNotFound
	}
	if httpErr := graphql.HTTPError(err, errRemoteCode); httpErr != nil {
		return httpErr
	}
	return err
}
