package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) graphql.Result[paginator.Page[model.Station]]
	Detail(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.Station]
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) graphql.Result[model.Station]
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) graphql.Result[model.Station]
	Delete(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[bool]
}
