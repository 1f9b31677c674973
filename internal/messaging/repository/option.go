package repository

import (
	"isp-dashboard/internal/messaging"
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
	Input          messaging.Input
}

type UpdateOptions struct {
	OrganizationID string
	ID             string
	Input          messaging.Input
}

type ConfigOptions struct {
	OrganizationID string
}

type UpdateConfigOptions struct {
	OrganizationID string
	Input          messaging.ConfigInput
}
