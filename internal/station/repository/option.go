package repository

import (
	"isp-dashboard/internal/station"
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
	Input          station.Input
}

type UpdateOptions struct {
	OrganizationID string
	ID             string
	Input          station.Input
}
