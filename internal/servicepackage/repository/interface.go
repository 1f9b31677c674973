package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) graphql.Result[paginator.Page[model.Package]]
	Detail(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.Package]
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) graphql.Result[model.Package]
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) graphql.Result[model.Package]
	Delete(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[bool]
}
