package organization

import (
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

// Input is the organization settings form.
type Input struct {
	Name        string `json:"name" validate:"required,max=100" msg:"required=Organization name is required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email" msg:"email=Invalid email address"`
	Phone       string `json:"phone,omitempty" validate:"omitempty,min=10,max=15" msg:"min=Phone number must be at least 10 digits;max=Phone number must be at most 15 digits"`
	Address     string `json:"address,omitempty" validate:"max=200" label:"Address"`
	Description string `json:"description,omitempty" validate:"max=500" label:"Description"`
}

type UpdateInput struct {
	OrganizationID string
	Input          Input
}

type ListInput struct {
	OrganizationID string
	Filter         paginator.FilterOptions
	Access         permission.Access
}

// InviteInput invites an email address into the organization with a role.
type InviteInput struct {
	OrganizationID string `json:"organizationId"`
	Email          string `json:"email" validate:"required,email" msg:"required=Email is required;email=Invalid email address"`
	RoleID         string `json:"roleId" validate:"required" msg:"required=Please select a role"`
}

type MemberInput struct {
	OrganizationID string
	MemberID       string
}

type MemberRoleInput struct {
	OrganizationID string
	MemberID       string
	RoleID         string `validate:"required" msg:"required=Please select a role"`
}

// RoleInput is the role form and the create/update mutation input.
type RoleInput struct {
	OrganizationID string   `json:"organizationId,omitempty"`
	Name           string   `json:"name" validate:"required,max=50" msg:"required=Role name is required"`
	Description    string   `json:"description,omitempty" validate:"max=200" label:"Description"`
	Permissions    []string `json:"permissions" validate:"required,min=1" msg:"required=Select at least one permission;min=Select at least one permission"`
}

type RoleDetailInput struct {
	OrganizationID string
	ID             string
}

type RoleWriteInput struct {
	OrganizationID string
	ID             string
	Input          RoleInput
}

// PermissionOption is one checkbox of the role form.
type PermissionOption struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// RoleForm is the role form with every permission a role may hold.
type RoleForm struct {
	Permissions []PermissionOption   `json:"permissions"`
	View        form.View[RoleInput] `json:"form"`
}
