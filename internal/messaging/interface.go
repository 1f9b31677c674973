package messaging

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Config(ctx context.Context, sc model.Scope, organizationID string) (model.SmsConfig, error)
	ConfigForm(ctx context.Context, sc model.Scope, organizationID string) (form.View[ConfigInput], error)
	UpdateConfig(ctx context.Context, sc model.Scope, ip UpdateConfigInput) (model.SmsConfig, error)

	List(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	Dispatch(ctx context.Context, sc model.Scope, ip DispatchInput) (listing.Screen, error)
	Detail(ctx context.Context, sc model.Scope, ip DetailInput) (model.SmsTemplate, error)
	EditForm(ctx context.Context, sc model.Scope, ip DetailInput) (form.View[Input], error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.SmsTemplate, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.SmsTemplate, error)
	Delete(ctx context.Context, sc model.Scope, ip DetailInput) error
	// Preview renders a template body with sample values for its variables.
	Preview(ctx context.Context, sc model.Scope, ip PreviewInput) (Preview, error)
}
