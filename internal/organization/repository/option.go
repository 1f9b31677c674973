package repository

import "isp-dashboard/internal/organization"

type DetailOptions struct {
	ID string
}

type UpdateOptions struct {
	ID    string
	Input organization.Input
}

type InviteOptions struct {
	Input organization.InviteInput
}

type MemberOptions struct {
	OrganizationID string
	MemberID       string
}

type MemberRoleOptions struct {
	OrganizationID string
	MemberID       string
	RoleID         string
}

type RoleOptions struct {
	OrganizationID string
	ID             string
	Input          organization.RoleInput
}
