package graphql

import (
	"context"

	"isp-dashboard/internal/billing/repository"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

func (r *implRepository) ListSubscriptions(ctx context.Context, sc model.Scope, opts repository.ListOptions) pkgGraphql.Result[paginator.Page[model.Subscription]] {
	return r.gw.List(ctx, opts.OrganizationID, opts.Filter, nil)
}

func (r *implRepository) Subscription(ctx context.Context, sc model.Scope, opts repository.DetailOptions) pkgGraphql.Result[model.Subscription] {
	return resource.NotFound(r.gw.Detail(ctx, opts.OrganizationID, opts.ID), repository.ErrNotFound)
}

func (r *implRepository) CreateSubscription(ctx context.Context, sc model.Scope, opts repository.CreateOptions) pkgGraphql.Result[model.Subscription] {
	input := opts.Input
	input.OrganizationID = opts.OrganizationID
	return r.gw.Create(ctx, opts.OrganizationID, input)
}

func (r *implRepository) CancelSubscription(ctx context.Context, sc model.Scope, opts repository.DetailOptions) pkgGraphql.Result[model.Subscription] {
	res := resource.Query[model.Subscription](ctx, r.l, r.client, cancelDoc, map[string]any{
		"organizationId": opts.OrganizationID,
		"id":             opts.ID,
	})
	if res.OK() {
		r.gw.Invalidate(ctx, opts.OrganizationID, opts.ID, model.ChangeUpdated)
	}
	return resource.NotFound(res, repository.ErrNotFound)
}

// Plans are global and come back unpaginated.
func (r *implRepository) Plans(ctx context.Context, sc model.Scope) pkgGraphql.Result[[]model.Plan] {
	return resource.Query[[]model.Plan](ctx, r.l, r.client, plansDoc, nil)
}
