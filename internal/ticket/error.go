package ticket

import "errors"

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrAttachmentEmpty    = errors.New("attachment is empty")
	ErrAttachmentTooLarge = errors.New("attachment is too large")
	ErrAttachmentType     = errors.New("attachment type is not allowed")
	ErrAttachmentNotOwned = errors.New("attachment belongs to another organization")
	ErrStorageUnavailable = errors.New("attachment storage is not configured")
)
