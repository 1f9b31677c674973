package http

import (
	"strings"

	"isp-dashboard/internal/permission"
	"isp-dashboard/internal/servicepackage"
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

func (r listReq) toInput(access permission.Access) servicepackage.ListInput {
	return servicepackage.ListInput{
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

func (r dispatchReq) toInput(access permission.Access) servicepackage.DispatchInput {
	return servicepackage.DispatchInput{
		ListInput: servicepackage.ListInput{
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

func (r detailReq) toInput() servicepackage.DetailInput {
	return servicepackage.DetailInput{
		OrganizationID: r.OrganizationID,
		ID:             r.ID,
	}
}

type createReq struct {
	OrganizationID string `json:"-"`
	servicepackage.Input
}

func (r createReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r createReq) toInput() servicepackage.CreateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return servicepackage.CreateInput{
		OrganizationID: r.OrganizationID,
		Input:          ip,
	}
}

type updateReq struct {
	OrganizationID string `json:"-"`
	ID             string `json:"-"`
	servicepackage.Input
}

func (r updateReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" || strings.TrimSpace(r.ID) == "" {
		return errWrongParams
	}
	return nil
}

func (r updateReq) toInput() servicepackage.UpdateInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return servicepackage.UpdateInput{
		OrganizationID: r.OrganizationID,
		ID:             r.ID,
		Input:          ip,
	}
}
