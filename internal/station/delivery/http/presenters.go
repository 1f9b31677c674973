package http

import (
	"strings"

	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/station"
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

func (r listReq) toInput(access permission.Access) station.ListInput {
	return station.ListInput{
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

func (r dispatchReq) toInput(access permission.Access) station.DispatchInput {
	return station.DispatchInput{
		ListInput: station.ListInput{
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

func (r detailReq) toInput() station.DetailInput {
	return station.DetailInput{
		OrganizationID: r.OrganizationID,
		ID:             r.ID,
	}
}

type writeReq struct {
	OrganizationID string `json:"-"`
	ID             string `json:"-"`
	station.Input
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

func (r writeReq) toCreateInput() station.CreateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return station.CreateInput{OrganizationID: r.OrganizationID, Input: ip}
}

func (r writeReq) toUpdateInput() station.UpdateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return station.UpdateInput{OrganizationID: r.OrganizationID, ID: r.ID, Input: ip}
}
