package http

import (
	"strings"

	"isp-dashboard/internal/organization"
	"isp-dashboard/internal/permission"
	"isp-dashboard/pkg/paginator"
)

type orgReq struct {
	OrganizationID string
}

func (r orgReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

type updateReq struct {
	OrganizationID string `json:"-"`
	organization.Input
}

func (r updateReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r updateReq) toInput() organization.UpdateInput {
	return organization.UpdateInput{OrganizationID: r.OrganizationID, Input: r.Input}
}

type listReq struct {
	OrganizationID string
	Filter         paginator.FilterOptions
}

func (r listReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r listReq) toInput(access permission.Access) organization.ListInput {
	return organization.ListInput{
		OrganizationID: r.OrganizationID,
		Filter:         r.Filter,
		Access:         access,
	}
}

type inviteReq struct {
	OrganizationID string `json:"-"`
	Email          string `json:"email"`
	RoleID         string `json:"roleId"`
}

func (r inviteReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	return nil
}

func (r inviteReq) toInput() organization.InviteInput {
	return organization.InviteInput{
		OrganizationID: r.OrganizationID,
		Email:          r.Email,
		RoleID:         r.RoleID,
	}
}

type memberReq struct {
	OrganizationID string `json:"-"`
	MemberID       string `json:"-"`
	RoleID         string `json:"roleId"`
}

func (r memberReq) validate() error {
	if strings.TrimSpace(r.OrganizationID) == "" || strings.TrimSpace(r.MemberID) == "" {
		return errWrongParams
	}
	return nil
}

func (r memberReq) toInput() organization.MemberInput {
	return organization.MemberInput{OrganizationID: r.OrganizationID, MemberID: r.MemberID}
}

func (r memberReq) toRoleInput() organization.MemberRoleInput {
	return organization.MemberRoleInput{OrganizationID: r.OrganizationID, MemberID: r.MemberID, RoleID: r.RoleID}
}

type roleReq struct {
	OrganizationID string `json:"-"`
	ID             string `json:"-"`
	organization.RoleInput
}

func (r roleReq) validate(withID bool) error {
	if strings.TrimSpace(r.OrganizationID) == "" {
		return errWrongParams
	}
	if withID && strings.TrimSpace(r.ID) == "" {
		return errWrongParams
	}
	return nil
}

func (r roleReq) toDetailInput() organization.RoleDetailInput {
	return organization.RoleDetailInput{OrganizationID: r.OrganizationID, ID: r.ID}
}

func (r roleReq) toWriteInput() organization.RoleWriteInput {
	return organization.RoleWriteInput{OrganizationID: r.OrganizationID, ID: r.ID, Input: r.RoleInput}
}
