package station

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/paginator"
)

// Input is the station form and the create/update mutation input.
type Input struct {
	OrganizationID string              `json:"organizationId,omitempty"`
	Name           string              `json:"name" validate:"required,max=100" msg:"required=Station name is required"`
	Location       string              `json:"location" validate:"required" msg:"required=Location is required"`
	Type           string              `json:"type" validate:"required" msg:"required=Station type is required"`
	IPAddress      string              `json:"ipAddress" validate:"required,ip" msg:"required=IP address is required;ip=IP address is invalid"`
	Status         model.StationStatus `json:"status" validate:"required,oneof=ONLINE OFFLINE MAINTENANCE" msg:"oneof=Status must be ONLINE, OFFLINE or MAINTENANCE" label:"Status"`
	Description    string              `json:"description,omitempty" validate:"max=500" label:"Description"`
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

type CreateInput struct {
	OrganizationID string
	Input          Input
}

type UpdateInput struct {
	OrganizationID string
	ID             string
	Input          Input
}
