package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
	"isp-dashboard/pkg/paginator"
)

//go:generate mockery --name Repository
type Repository interface {
	Config(ctx context.Context, sc model.Scope, opts ConfigOptions) graphql.Result[model.SmsConfig]
	UpdateConfig(ctx context.Context, sc model.Scope, opts UpdateConfigOptions) graphql.Result[model.SmsConfig]

	List(ctx context.Context, sc model.Scope, opts ListOptions) graphql.Result[paginator.Page[model.SmsTemplate]]
	Detail(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[model.SmsTemplate]
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) graphql.Result[model.SmsTemplate]
	Update(ctx context.Context, sc model.Scope, opts UpdateOptions) graphql.Result[model.SmsTemplate]
	Delete(ctx context.Context, sc model.Scope, opts DetailOptions) graphql.Result[bool]
}
