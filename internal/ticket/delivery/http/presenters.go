package http

import (
	"io"
	"mime/multipart"
	"strings"

	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/ticket"
	"isp-dashboard/pkg/paginator"
)

type listReq struct {
	OrganizationID string
	Filter         paginator.FilterOptions
}

func (r listReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r listReq) toInput(access permission.Access) ticket.ListInput {
	return ticket.ListInput{
		OrganizationID: r.OrganizationID,
		Filter:         r.Filter,
		Access:         access,
	}
}

type dispatchReq struct {
	OrganizationID string                  `json:"-"`
	Filter         paginator.FilterOptions `json:"filter"`
	Action         paginator.Action        `json:"action"`
	TotalCount     int64                   `json:"total_count"`
}

func (r dispatchReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" || r.Action.Kind == "" {
		return errWrongBody
	}
	return nil
}

func (r dispatchReq) toInput(access permission.Access) ticket.DispatchInput {
	return ticket.DispatchInput{
		ListInput: ticket.ListInput{
			OrganizationID: r.OrganizationID,
			Filter:         r.Filter,
			Access:         access,
		},
		Action:     r.Action,
		TotalCount: r.TotalCount,
	}
}

type detailReq struct {
	OrganizationID string
	ID             string
}

func (r detailReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" || strings.TrimSpace(r.ID) == "" {
		return errWrongParams
	}
	return nil
}

func (r detailReq) toInput() ticket.DetailInput {
	return ticket.DetailInput{
		OrganizationID: r.OrganizationID,
		ID:             r.ID,
	}
}

type writeReq struct {
	OrganizationID string `json:"-"`
	ID             string `json:"-"`
	ticket.Input
}

func (r writeReq) validate(withID bool) error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	if withID && strings.TrimSpace(r.ID) == "" {
		return errWrongParams
	}
	return nil
}

func (r writeReq) toCreateInput() ticket.CreateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return ticket.CreateInput{OrganizationID: r.OrganizationID, Input: ip}
}

func (r writeReq) toUpdateInput() ticket.UpdateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return ticket.UpdateInput{OrganizationID: r.OrganizationID, ID: r.ID, Input: ip}
}

type uploadReq struct {
	OrganizationID string
	File           *multipart.FileHeader
}

func (r uploadReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	if r.File == nil || r.File.Size == 0 {
		return errMissingFile
	}
	return nil
}

func (r uploadReq) toInput(f io.Reader) ticket.UploadInput {
	return ticket.UploadInput{
		OrganizationID: r.OrganizationID,
		FileName:       r.File.Filename,
		ContentType:    r.File.Header.Get("Content-Type"),
		Size:           r.File.Size,
		File:           f,
	}
}
