package http

import (
	"strings"

	"isp-dashboard/internal/customer"
	"isp-dashboard/internal/permission"
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

func (r listReq) toInput(access permission.Access) customer.ListInput {
	return customer.ListInput{
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

func (r dispatchReq) toInput(access permission.Access) customer.DispatchInput {
	return customer.DispatchInput{
		ListInput: customer.ListInput{
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

func (r detailReq) toInput() customer.DetailInput {
	return customer.DetailInput{
		OrganizationID: r.OrganizationID,
		ID:             r.ID,
	}
}

type writeReq struct {
	OrganizationID string `json:"-"`
	ID             string `json:"-"`
	customer.Input
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

func (r writeReq) toCreateInput() customer.CreateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return customer.CreateInput{OrganizationID: r.OrganizationID, Input: ip}
}

func (r writeReq) toUpdateInput() customer.UpdateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return customer.UpdateInput{OrganizationID: r.OrganizationID, ID: r.ID, Input: ip}
}
