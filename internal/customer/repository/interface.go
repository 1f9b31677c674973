package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) graphql.Result[paginator.Page[model.Customer]]
	Detail(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.Customer]
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) graphql.Result[model.Customer]
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) graphql.Result[model.Customer]
	Delete(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[bool]
}
