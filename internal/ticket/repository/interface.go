package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) graphql.Result[paginator.Page[model.Ticket]]
	Detail(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.Ticket]
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) graphql.Result[model.Ticket]
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) graphql.Result[model.Ticket]
	Delete(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[bool]
}
