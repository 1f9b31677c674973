package repository

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/graphql"
)

//go:generate mockery --name Repository
type Repository interface {
	Config(ctx context.Context, sc model.Scope, opts ConfigOptions) graphql.Result[model.PaymentConfig]
	UpdateMpesa(ctx context.Context, sc model.Scope, opts UpdateMpesaOptions) graphql.Result[model.MpesaConfig]
	UpdateKopoKopo(ctx context.Context, sc model.Scope, opts UpdateKopoKopoOptions) graphql.Result[model.KopoKopoConfig]
}
