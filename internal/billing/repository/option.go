package repository

import (
	"isp-dashboard/internal/billing"
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
	Input          billing.Input
}
