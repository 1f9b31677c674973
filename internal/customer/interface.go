package customer

import (
	"context"
	"io"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	Dispatch(ctx context.Context, sc model.Scope, ip DispatchInput) (listing.Screen, error)
	Export(ctx context.Context, sc model.Scope, ip ListInput, w io.Writer) error
	Detail(ctx context.Context, sc model.Scope, ip DetailInput) (model.Customer, error)
	NewForm(ctx context.Context, sc model.Scope, organizationID string) (Form, error)
	EditForm(ctx context.Context, sc model.Scope, ip DetailInput) (Form, error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Customer, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.Customer, error)
	Delete(ctx context.Context, sc model.Scope, ip DetailInput) error
}
