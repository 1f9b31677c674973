package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	ListSubscriptions(ctx context.Context, sc model.Scope, opts ListOptions) graphql.Result[paginator.Page[model.Subscription]]
	Subscription(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.Subscription]
	CreateSubscription(ctx context.Context, sc model.Scope, opts CreateOptions) graphql.Result[model.Subscription]
	CancelSubscription(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.Subscription]
	Plans(ctx context.Context, sc model.Scope) graphql.Result[[]model.Plan]
}
