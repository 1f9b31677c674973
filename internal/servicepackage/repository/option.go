package repository

import (
	"isp-dashboard/internal/servicepackage"
	"isp-dashboard/pkg/paginator"
)

// ListOptions contains options for listing packages.
type ListOptions struct {
	OrganizationID string
	Filter         paginator.FilterOptions
	// ActiveOnly restricts the list to packages that can be sold.
	ActiveOnly bool
}

// DetailOptions identifies one package.
type DetailOptions struct {
	OrganizationID string
	ID             string
}

// CreateOptions contains options for creating a package.
type CreateOptions struct {
	OrganizationID string
	Input          servicepackage.Input
}

// UpdateOptions contains options for replacing a package.
type UpdateOptions struct {
	OrganizationID string
	ID             string
	Input          servicepackage.Input
}
