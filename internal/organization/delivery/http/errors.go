package http

import (
	"net/http"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/organization"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
)

var (
	errWrongParams    = pkgErrors.NewHTTPError(16001, "Wrong params", http.StatusBadRequest)
	errWrongBody      = pkgErrors.NewHTTPError(16002, "Wrong body", http.StatusBadRequest)
	errNotFound       = pkgErrors.NewHTTPError(16003, "Organization not found", http.StatusNotFound)
	errDenied         = pkgErrors.NewHTTPError(16005, "You don't have access to this organization", http.StatusForbidden)
	errMemberNotFound = pkgErrors.NewHTTPError(16006, "Member not found", http.StatusNotFound)
	errRoleNotFound   = pkgErrors.NewHTTPError(16007, "Role not found", http.StatusNotFound)
	errRoleInUse      = pkgErrors.NewHTTPError(16008, "Role is still assigned to members", http.StatusConflict)
	errRemoveSelf     = pkgErrors.NewHTTPError(16009, "You cannot remove yourself from the organization", http.StatusBadRequest)
	errAlreadyInvited = pkgErrors.NewHTTPError(16011, "This person has already been invited or is already a member", http.StatusConflict)
)

const errRemoteCode = 16010

func (h *Handler) mapError(err error) error {
	switch err {
	case organization.ErrOrganizationNotFound:
		return errNotFound
	case organization.ErrMemberNotFound:
		return errMemberNotFound
	case organization.ErrRoleNotFound:
		return errRoleNotFound
	case organization.ErrRoleInUse:
		return errRoleInUse
	case organization.ErrRemoveSelf:
		return errRemoveSelf
	case organization.ErrAlreadyInvited:
		return errAlreadyInvited
	case listing.ErrDenied:
		return errDenied
	}
	if httpErr := graphql.HTTPError(err, errRemoteCode); httpErr != nil {
		return httpErr
	}
	return err
}
