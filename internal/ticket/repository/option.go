package repository

import (
	"isp-dashboard/internal/ticket"
	"isp-dashboard/pkg/paginator"
)

type ListOptions struct {
	OrganizationID string
	Filter         paginator.FilterOptions
}

type DetailOptions struct {
	OrganizationID string
	ID             string
}

type CreateOptions struct {
	OrganizationID string
	Input          ticket.Input
}

type UpdateOptions struct {
	OrganizationID string
	ID             string
	Input          ticket.Input
}
