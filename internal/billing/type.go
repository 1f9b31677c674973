package billing

import (
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/paginator"
)

// Input is the subscribe mutation input.
type Input struct {
	OrganizationID string `json:"organizationId,omitempty"`
	PlanID         string `json:"planId" validate:"required" msg:"required=Choose a plan"`
}

type ListInput struct {
	OrganizationID string
	Filter         paginator.FilterOptions
	Access         permission.Access
}

type DispatchInput struct {
	ListInput
	Action     paginator.Action
	TotalCount int64
}

type DetailInput struct {
	OrganizationID string
	ID             string
}

type SubscribeInput struct {
	OrganizationID string
	Input          Input
}
