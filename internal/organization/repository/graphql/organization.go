package graphql

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization/repository"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
)

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, opts repository.DetailOptions) pkgGraphql.Result[model.Organization] {
	return resource.NotFound(r.orgs.Detail(ctx, opts.ID, opts.ID), repository.ErrNotFound)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) pkgGraphql.Result[model.Organization] {
	return resource.NotFound(r.orgs.Update(ctx, opts.ID, opts.ID, opts.Input), repository.ErrNotFound)
}

// changed announces a membership or role change to subscribers.
func (r *implRepository) changed(ctx context.Context, orgID string) {
	r.orgs.Invalidate(ctx, orgID, orgID, model.ChangeUpdated)
}
