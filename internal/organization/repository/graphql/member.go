package graphql

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization/repository"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
)

func (r *implRepository) InviteMember(ctx context.Context, sc model.Scope, opts repository.InviteOptions) pkgGraphql.Result[model.Invitation] {
	res := resource.Query[model.Invitation](ctx, r.l, r.client, inviteDoc, map[string]any{
		"input": opts.Input,
	})
	if res.OK() {
		r.changed(ctx, opts.Input.OrganizationID)
	}
	return res
}

func (r *implRepository) UpdateMemberRole(ctx context.Context, sc model.Scope, opts repository.MemberRoleOptions) pkgGraphql.Result[model.Member] {
	res := resource.Query[model.Member](ctx, r.l, r.client, memberRoleDoc, map[string]any{
		"organizationId": opts.OrganizationID,
		"memberId":       opts.MemberID,
		"roleId":         opts.RoleID,
	})
	if res.OK() {
		r.changed(ctx, opts.OrganizationID)
	}
	return resource.NotFound(res, repository.ErrNotFound)
}

func (r *implRepository) RemoveMember(ctx context.Context, sc model.Scope, opts repository.MemberOptions) pkgGraphql.Result[bool] {
	res := resource.Query[bool](ctx, r.l, r.client, removeDoc, map[string]any{
		"organizationId": opts.OrganizationID,
		"memberId":       opts.MemberID,
	})
	if res.OK() {
		r.changed(ctx, opts.OrganizationID)
	}
	return resource.NotFound(res, repository.ErrNotFound)
}
