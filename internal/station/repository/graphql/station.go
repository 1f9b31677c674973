package graphql

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	"isp-dashboard/internal/station/repository"
	pkgGraphql "isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) pkgGraphql.Result[paginator.Page[model.Station]] {
	return r.gw.List(ctx, opts.OrganizationID, opts.Filter, nil)
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, opts repository.DetailOptions) pkgGraphql.Result[model.Station] {
	return resource.NotFound(r.gw.Detail(ctx, opts.OrganizationID, opts.ID), repository.ErrNotFound)
}

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) pkgGraphql.Result[model.Station] {
	input := opts.Input
	input.OrganizationID = opts.OrganizationID
	return r.gw.Create(ctx, opts.OrganizationID, input)
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) pkgGraphql.Result[model.Station] {
	input := opts.Input
	input.OrganizationID = opts.OrganizationID
	return resource.NotFound(r.gw.Update(ctx, opts.OrganizationID, opts.ID, input), repository.ErrNotFound)
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, opts repository.DetailOptions) pkgGraphql.Result[bool] {
	return resource.NotFound(r.gw.Delete(ctx, opts.OrganizationID, opts.ID), repository.ErrNotFound)
}
