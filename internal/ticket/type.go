package ticket

import (
	"io"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/paginator"
)

// Input is the ticket form and the create/update mutation input.
type Input struct {
	OrganizationID string               `json:"organizationId,omitempty"`
	Title          string               `json:"title" validate:"required,max=200" msg:"required=Title is required"`
	Description    string               `json:"description" validate:"required" msg:"required=Description is required"`
	Status         model.TicketStatus   `json:"status" validate:"required,oneof=OPEN IN_PROGRESS RESOLVED CLOSED" msg:"required=Status is required;oneof=Status must be OPEN, IN_PROGRESS, RESOLVED or CLOSED"`
	Priority       model.TicketPriority `json:"priority" validate:"required,oneof=LOW MEDIUM HIGH URGENT" msg:"required=Priority is required;oneof=Priority must be LOW, MEDIUM, HIGH or URGENT"`
	Category       string               `json:"category,omitempty" validate:"max=50" label:"Category"`
	CustomerID     string               `json:"customerId,omitempty"`
	AssignedTo     string               `json:"assignedTo,omitempty"`
	DueDate        string               `json:"dueDate,omitempty" validate:"omitempty,datetime=2006-01-02" msg:"datetime=Due date must be YYYY-MM-DD"`
	Attachments    []model.Attachment   `json:"attachments,omitempty" validate:"max=10,dive" msg:"max=A ticket can have at most 10 attachments"`
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

// UploadInput is one attachment file to store before it is referenced by a ticket.
type UploadInput struct {
	OrganizationID string
	FileName       string
	ContentType    string
	Size           int64
	File           io.Reader
}
