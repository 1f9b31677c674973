package customer

import (
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

// Input is the customer form and the create/update mutation input.
// A blank password is not sent, so editing a customer keeps the current one.
type Input struct {
	OrganizationID      string               `json:"organizationId,omitempty"`
	FullName            string               `json:"fullName" validate:"required,max=100" msg:"required=Full name is required"`
	Email               string               `json:"email" validate:"required,email" msg:"required=Email is required;email=Invalid email address"`
	Phone               string               `json:"phone" validate:"required,min=10,max=15" msg:"required=Phone number is required;min=Phone number must be at least 10 digits;max=Phone number must be at most 15 digits"`
	Username            string               `json:"username" validate:"required,min=3,max=50" msg:"required=Username is required;min=Username must be at least 3 characters"`
	Password            form.Secret          `json:"password,omitzero" validate:"omitempty,min=6" msg:"min=Password must be at least 6 characters"`
	PackageID           string               `json:"packageId" validate:"required" msg:"required=Please select a package"`
	StationID           string               `json:"stationId" validate:"required" msg:"required=Please select a station"`
	InstallationAddress string               `json:"installationAddress" validate:"required" msg:"required=Installation address is required"`
	Latitude            form.Number          `json:"latitude,omitzero" validate:"omitempty,min=-90,max=90" msg:"min=Latitude must be between -90 and 90;max=Latitude must be between -90 and 90"`
	Longitude           form.Number          `json:"longitude,omitzero" validate:"omitempty,min=-180,max=180" msg:"min=Longitude must be between -180 and 180;max=Longitude must be between -180 and 180"`
	Status              model.CustomerStatus `json:"status" validate:"required,oneof=ACTIVE INACTIVE SUSPENDED EXPIRED" msg:"required=Status is required;oneof=Status must be ACTIVE, INACTIVE, SUSPENDED or EXPIRED"`
	ExpiresAt           string               `json:"expiresAt,omitempty" validate:"omitempty,datetime=2006-01-02" msg:"datetime=Expiry date must be YYYY-MM-DD"`
}

// Options are the choices the customer form offers.
type Options struct {
	Packages []model.Package `json:"packages"`
	Stations []model.Station `json:"stations"`
}

// Form is a customer form with the options it needs.
type Form struct {
	Options Options          `json:"options"`
	View    form.View[Input] `json:"form"`
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
