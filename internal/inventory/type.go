package inventory

import (
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

// Input is the inventory form and the create/update mutation input.
type Input struct {
	OrganizationID string      `json:"organizationId,omitempty"`
	Name           string      `json:"name" validate:"required,max=100" msg:"required=Item name is required"`
	SKU            string      `json:"sku" validate:"required,max=50" msg:"required=SKU is required" label:"SKU"`
	Category       string      `json:"category" validate:"required" msg:"required=Category is required"`
	Quantity       form.Number `json:"quantity" validate:"required,min=0" msg:"required=Quantity is required;min=Quantity must be positive"`
	UnitPrice      form.Number `json:"unitPrice" validate:"required,min=0" msg:"required=Unit price is required;min=Unit price must be positive"`
	Location       string      `json:"location,omitempty"`
	Supplier       string      `json:"supplier,omitempty"`
	Description    string      `json:"description,omitempty" validate:"max=500" label:"Description"`
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
