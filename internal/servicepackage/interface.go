package servicepackage

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	Dispatch(ctx context.Context, sc model.Scope, ip DispatchInput) (listing.Screen, error)
	Options(ctx context.Context, sc model.Scope, organizationID string) ([]model.Package, error)
	Detail(ctx context.Context, sc model.Scope, ip DetailInput) (model.Package, error)
	EditForm(ctx context.Context, sc model.Scope, ip DetailInput) (form.View[Input], error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Package, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Package, error)
	Delete(ctx context.Context, sc model.Scope, ip DetailInput) error
}
