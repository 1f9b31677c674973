package graphql

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/payment/repository"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
)

func (r *implRepository) Config(ctx context.Context, sc model.Scope, opts repository.ConfigOptions) pkgGraphql.Result[model.PaymentConfig] {
	res := resource.Query[model.PaymentConfig](ctx, r.l, r.client, configDoc, map[string]any{
		"organizationId": opts.OrganizationID,
	})
	return resource.NotFound(res, repository.ErrNotFound)
}

func (r *implRepository) UpdateMpesa(ctx context.Context, sc model.Scope, opts repository.UpdateMpesaOptions) pkgGraphql.Result[model.MpesaConfig] {
	return resource.Query[model.MpesaConfig](ctx, r.l, r.client, updateMpesaDoc, map[string]any{
		"organizationId": opts.OrganizationID,
		"input":          opts.Input,
	})
}

func (r *implRepository) UpdateKopoKopo(ctx context.Context, sc model.Scope, opts repository.UpdateKopoKopoOptions) pkgGraphql.Result[model.KopoKopoConfig] {
	return resource.Query[model.KopoKopoConfig](ctx, r.l, r.client, updateKopoKopoDoc, map[string]any{
		"organizationId": opts.OrganizationID,
		"input":          opts.Input,
	})
}
