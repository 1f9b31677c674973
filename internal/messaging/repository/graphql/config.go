package graphql

import (
	"context"

	"isp-dashboard/internal/messaging/repository"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
)

func (r *implRepository) Config(ctx context.Context, sc model.Scope, opts repository.ConfigOptions) pkgGraphql.Result[model.SmsConfig] {
	res := resource.Query[model.SmsConfig](ctx, r.l, r.client, configDoc, map[string]any{
		"organizationId": opts.OrganizationID,
	})
	return resource.NotFound(res, repository.ErrNotFound)
}

func (r *implRepository) UpdateConfig(ctx context.Context, sc model.Scope, opts repository.UpdateConfigOptions) pkgGraphql.Result[model.SmsConfig] {
	input := opts.Input
	input.OrganizationID = ""
	return resource.Query[model.SmsConfig](ctx, r.l, r.client, updateConfigDoc, map[string]any{
		"organizationId": opts.OrganizationID,
		"input":          input,
	})
}
