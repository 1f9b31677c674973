package payment

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Config(ctx context.Context, sc model.Scope, organizationID string) (model.PaymentConfig, error)
	MpesaForm(ctx context.Context, sc model.Scope, organizationID string) (form.View[MpesaInput], error)
	UpdateMpesa(ctx context.Context, sc model.Scope, ip UpdateMpesaInput) (model.MpesaConfig, error)
	KopoKopoForm(ctx context.Context, sc model.Scope, organizationID string) (form.View[KopoKopoInput], error)
	UpdateKopoKopo(ctx context.Context, sc model.Scope, ip UpdateKopoKopoInput) (model.KopoKopoConfig, error)
}
