package usecase

import (
	"context"
	"strings"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization"
	"isp-dashboard/internal/organization/repository"
	pkgGraphql "isp-dashboard/pkg/graphql"
)

func (uc *usecase) Members(ctx context.Context, sc model.Scope, ip organization.ListInput) (listing.Screen, error) {
	screen, err := uc.members.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.organization.usecase.Members: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) InviteMember(ctx context.Context, sc model.Scope, ip organization.InviteInput) (model.Invitation, error) {
	ip.Email = strings.ToLower(strings.TrimSpace(ip.Email))
	if errs := uc.validator.Validate(ip); errs != nil {
		return model.Invitation{}, errs
	}

	org, err := uc.Organization(ctx, sc, ip.OrganizationID)
	if err != nil {
		return model.Invitation{}, err
	}
	if _, ok := org.FindRole(ip.RoleID); !ok {
		return model.Invitation{}, organization.ErrRoleNotFound
	}

	inv, err := uc.repo.InviteMember(ctx, sc, repository.InviteOptions{Input: ip}).Unwrap()
	if err != nil {
		if pkgGraphql.IsDuplicateInvitation(err) {
			return model.Invitation{}, organization.ErrAlreadyInvited
		}
		uc.l.Errorf(ctx, "internal.organization.usecase.InviteMember: %v", err)
		return model.Invitation{}, err
	}
	return inv, nil
}

func (uc *usecase) UpdateMemberRole(ctx context.Context, sc model.Scope, ip organization.MemberRoleInput) (model.Member, error) {
	if errs := uc.validator.Validate(ip); errs != nil {
		return model.Member{}, errs
	}

	org, err := uc.Organization(ctx, sc, ip.OrganizationID)
	if err != nil {
		return model.Member{}, err
	}
	if _, ok := findMember(org, ip.MemberID); !ok {
		return model.Member{}, organization.ErrMemberNotFound
	}
	if _, ok := org.FindRole(ip.RoleID); !ok {
		return model.Member{}, organization.ErrRoleNotFound
	}

	m, err := uc.repo.UpdateMemberRole(ctx, sc, repository.MemberRoleOptions{
		OrganizationID: ip.OrganizationID,
		MemberID:       ip.MemberID,
		RoleID:         ip.RoleID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Member{}, organization.ErrMemberNotFound
		}
		uc.l.Errorf(ctx, "internal.organization.usecase.UpdateMemberRole: %v", err)
		return model.Member{}, err
	}
	return m, nil
}

func (uc *usecase) RemoveMember(ctx context.Context, sc model.Scope, ip organization.MemberInput) error {
	org, err := uc.Organization(ctx, sc, ip.OrganizationID)
	if err != nil {
		return err
	}
	target, ok := findMember(org, ip.MemberID)
	if !ok {
		return organization.ErrMemberNotFound
	}
	if target.UserID == sc.UserID {
		return organization.ErrRemoveSelf
	}

	_, err = uc.repo.RemoveMember(ctx, sc, repository.MemberOptions{
		OrganizationID: ip.OrganizationID,
		MemberID:       ip.MemberID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return organization.ErrMemberNotFound
		}
		uc.l.Errorf(ctx, "internal.organization.usecase.RemoveMember: %v", err)
		return err
	}
	return nil
}

func findMember(org model.Organization, memberID string) (model.Member, bool) {
	for _, m := range org.Members {
		if m.ID == memberID {
			return m, true
		}
	}
	return model.Member{}, false
}
