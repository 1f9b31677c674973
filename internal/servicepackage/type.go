package servicepackage

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

// Input is the package form and the create/update mutation input.
// Optional numbers left empty are not sent.
type Input struct {
	OrganizationID string            `json:"organizationId,omitempty"`
	Name           string            `json:"name" validate:"required,max=100" msg:"required=Package name is required" label:"Package name"`
	Description    string            `json:"description,omitempty" validate:"max=500" label:"Description"`
	DownloadSpeed  form.Number       `json:"downloadSpeed" validate:"required,min=0" msg:"required=Download speed is required;min=Download speed must be positive"`
	UploadSpeed    form.Number       `json:"uploadSpeed" validate:"required,min=0" msg:"required=Upload speed is required;min=Upload speed must be positive"`
	Price          form.Number       `json:"price" validate:"required,min=0" msg:"required=Price is required;min=Price must be positive"`
	ServiceType    model.ServiceType `json:"serviceType" validate:"required,oneof=PPPOE HOTSPOT STATIC" msg:"required=Service type is required;oneof=Service type must be PPPOE, HOTSPOT or STATIC"`
	BurstDownload  form.Number       `json:"burstDownload,omitzero" validate:"omitempty,min=0" msg:"min=Burst download must be positive"`
	BurstUpload    form.Number       `json:"burstUpload,omitzero" validate:"omitempty,min=0" msg:"min=Burst upload must be positive"`
	DataLimit      form.Number       `json:"dataLimit,omitzero" validate:"omitempty,min=0" msg:"min=Data limit must be positive"`
	ValidityDays   form.Number       `json:"validityDays,omitzero" validate:"omitempty,min=1" msg:"min=Validity must be at least 1 day"`
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
