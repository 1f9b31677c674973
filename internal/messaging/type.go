package messaging

import (
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

// ConfigInput is the SMS gateway form. APIKey is only sent when entered.
type ConfigInput struct {
	OrganizationID string      `json:"organizationId,omitempty"`
	Provider       string      `json:"provider" validate:"required,oneof=AFRICASTALKING TWILIO INFOBIP" msg:"required=Provider is required;oneof=Provider must be AFRICASTALKING, TWILIO or INFOBIP"`
	SenderID       string      `json:"senderId" validate:"required,max=11,alphanum" msg:"required=Sender ID is required;max=Sender ID must be at most 11 characters;alphanum=Sender ID may only contain letters and digits"`
	Username       string      `json:"username" validate:"required" msg:"required=Username is required"`
	APIKey         form.Secret `json:"apiKey,omitzero" validate:"omitempty,min=8" msg:"min=API key must be at least 8 characters"`
	IsActive       bool        `json:"isActive"`
}

type UpdateConfigInput struct {
	OrganizationID string
	Input          ConfigInput
}

// Input is the SMS template form and the create/update mutation input.
// Variables is derived from Content.
type Input struct {
	OrganizationID string   `json:"organizationId,omitempty"`
	Name           string   `json:"name" validate:"required,max=100" msg:"required=Template name is required"`
	Content        string   `json:"content" validate:"required,max=918" msg:"required=Message content is required;max=Message cannot exceed 6 SMS parts (918 characters)"`
	Category       string   `json:"category,omitempty" validate:"omitempty,oneof=BILLING REMINDER WELCOME OUTAGE GENERAL" msg:"oneof=Category must be BILLING, REMINDER, WELCOME, OUTAGE or GENERAL"`
	Variables      []string `json:"variables"`
	IsActive       bool     `json:"isActive"`
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

type PreviewInput struct {
	Content string            `json:"content"`
	Values  map[string]string `json:"values"`
}

// Preview is a rendered template.
type Preview struct {
	Text       string   `json:"text"`
	Characters int      `json:"characters"`
	Parts      int      `json:"parts"`
	Missing    []string `json:"missing,omitempty"`
}
