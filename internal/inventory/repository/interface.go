package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	List(ctx context.Context, sc model.Scope, opts ListOptions) graphql.Result[paginator.Page[model.InventoryItem]]
	Detail(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.InventoryItem]
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) graphql.Result[model.InventoryItem]
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) graphql.Result[model.InventoryItem]
	Delete(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[bool]
}
