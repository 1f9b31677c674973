package inventory

import (
	"context"
	"io"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	Dispatch(ctx context.Context, sc model.Scope, ip DispatchInput) (listing.Screen, error)
	Export(ctx context.Context, sc model.Scope, ip ListInput, w io.Writer) error
	Detail(ctx context.Context, sc model.Scope, ip DetailInput) (model.InventoryItem, error)
	EditForm(ctx context.Context, sc model.Scope, ip DetailInput) (form.View[Input], error)
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.InventoryItem, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (model.InventoryItem, error)
	Delete(ctx context.Context, sc model.Scope, ip DetailInput) error
}
