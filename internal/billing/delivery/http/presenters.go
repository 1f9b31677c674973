package http

import (
	"strings"

	"isp-dashboard/internal/billing"
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

func (r listReq) toInput(access permission.Access) billing.ListInput {
	return billing.ListInput{
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

func (r dispatchReq) toInput(access permission.Access) billing.DispatchInput {
	return billing.DispatchInput{
		ListInput: billing.ListInput{
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

func (r detailReq) toInput() billing.DetailInput {
	return billing.DetailInput{
		OrganizationID: r.OrganizationID,
		ID:             r.ID,
	}
}

type subscribeReq struct {
	OrganizationID string `json:"-"`
	billing.Input
}

func (r subscribeReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r subscribeReq) toInput() billing.SubscribeInput {
	ip := r.Input
	ip.OrganizationID = r.OrganizationID
	return billing.SubscribeInput{OrganizationID: r.OrganizationID, Input: ip}
}
