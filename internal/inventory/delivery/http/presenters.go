package http

import (
	"strings"

	"isp-dashboard/internal/inventory"
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

func (r listReq) toInput(access permission.Access) inventory.ListInput {
	return inventory.ListInput{
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

func (r dispatchReq) toInput(access permission.Access) inventory.DispatchInput {
	return inventory.DispatchInput{
		ListInput: inventory.ListInput{
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

func (r detailReq) toInput() inventory.DetailInput {
	return inventory.DetailInput{
		OrganizationID: r.OrganizationID,
		ID:             r.ID,
	}
}

type writeReq struct {
	OrganizationID string `json:"-"`
	ID             string `json:"-"`
	inventory.Input
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

func (r writeReq) toCreateInput() inventory.CreateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return inventory.CreateInput{OrganizationID: r.OrganizationID, Input: ip}
}

func (r writeReq) toUpdateInput() inventory.UpdateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return inventory.UpdateInput{OrganizationID: r.OrganizationID, ID: r.ID, Input: ip}
}
