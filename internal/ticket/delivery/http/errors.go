package http

import (
	"net/http"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/ticket"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

var (
	errWrongParams   = pkgErrors.NewHTTPError(14001, "Wrong params", http.StatusBadRequest)
	errWrongBody     = pkgErrors.NewHTTPError(14002, "Wrong body", http.StatusBadRequest)
	errNotFound      = pkgErrors.NewHTTPError(14003, "Ticket not found", http.StatusNotFound)
	errUnknownAction = pkgErrors.NewHTTPError(14004, "Unknown table action", http.StatusBadRequest)
	errDenied        = pkgErrors.NewHTTPError(14005, "You don't have access to tickets", http.StatusForbidden)
	errMissingFile   = pkgErrors.NewHTTPError(14006, "Attachment file is required", http.StatusBadRequest)
	errFileTooLarge  = pkgErrors.NewHTTPError(14007, "Attachment cannot exceed 10MB", http.StatusRequestEntityTooLarge)
	errFileType      = pkgErrors.NewHTTPError(14008, "Only images, PDF and text files can be attached", http.StatusUnsupportedMediaType)
	errNotOwned      = pkgErrors.NewHTTPError(14009, "Attachment does not belong to this organization", http.StatusBadRequest)
	errNoStorage     = pkgErrors.NewHTTPError(14011, "Attachments are not available", http.StatusServiceUnavailable)
)

const errRemoteCode = 14010

func (h *Handler) mapError(err error) error {
	switch err {
	case ticket.ErrTicketNotFound:
		return errNotFound
	case paginator.ErrUnknownAction:
		return errUnknownAction
	case listing.ErrDenied:
		return errDenied
	case ticket.ErrAttachmentEmpty:
		return errMissingFile
	case ticket.ErrAttachmentTooLarge:
		return errFileTooLarge
	case ticket.ErrAttachmentType:
		return errFileType
	case ticket.ErrAttachmentNotOwned:
		return errNotOwned
	case ticket.ErrStorageUnavailable:
		return errNoStorage
	}
	if httpErr := graphql.HTTPError(err, errRemoteCode); httpErr != nil {
		return httpErr
	}
	return err
}
