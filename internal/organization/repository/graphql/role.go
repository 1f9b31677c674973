package graphql

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization/repository"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
)

func (r *implRepository) CreateRole(ctx context.Context, sc model.Scope, opts repository.RoleOptions) pkgGraphql.Result[model.Role] {
	input := opts.Input
	input.OrganizationID = opts.OrganizationID
	res := r.roles.Create(ctx, opts.OrganizationID, input)
	if res.OK() {
		r.changed(ctx, opts.OrganizationID)
	}
	return res
}

func (r *implRepository) UpdateRole(ctx context.Context, sc model.Scope, opts repository.RoleOptions) pkgGraphql.Result[model.Role] {
	input := opts.Input
	input.OrganizationID = opts.OrganizationID
	res := r.roles.Update(ctx, opts.OrganizationID, opts.ID, input)
	if res.OK() {
		r.changed(ctx, opts.OrganizationID)
	}
	return resource.NotFound(res, repository.ErrNotFound)
}

func (r *implRepository) DeleteRole(ctx context.Context, sc model.Scope, opts repository.RoleOptions) pkgGraphql.Result[bool] {
	res := r.roles.Delete(ctx, opts.OrganizationID, opts.ID)
	if res.OK() {
		r.changed(ctx, opts.OrganizationID)
	}
	return resource.NotFound(res, repository.ErrNotFound)
}
