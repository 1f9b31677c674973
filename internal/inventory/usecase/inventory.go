package usecase

import (
	"context"
	"io"

	"isp-dashboard/internal/inventory"
	"isp-dashboard/internal/inventory/repository"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

const exportTitle = "Inventory"

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip inventory.ListInput) (listing.Screen, error) {
	screen, err := uc.table.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.inventory.usecase.List: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, ip inventory.DispatchInput) (listing.Screen, error) {
	screen, err := uc.table.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.inventory.usecase.Dispatch: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, ip inventory.DetailInput) (model.InventoryItem, error) {
	item, err := uc.repo.Detail(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.InventoryItem{}, inventory.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "internal.inventory.usecase.Detail: %v", err)
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (uc *usecase) EditForm(ctx context.Context, sc model.Scope, ip inventory.DetailInput) (form.View[inventory.Input], error) {
	st := form.Loading[model.InventoryItem, inventory.Input]()

	item, err := uc.Detail(ctx, sc, ip)
	if err != nil {
		if err == inventory.ErrItemNotFound {
			return form.View[inventory.Input]{}, err
		}
		st = form.Reduce(st, form.Event[model.InventoryItem]{Kind: form.EventFailed, Err: err}, toInput)
		return form.NewView(st, nil, false), nil
	}

	st = form.Reduce(st, form.Event[model.InventoryItem]{Kind: form.EventFetched, Data: item}, toInput)
	return form.NewView(st, uc.validator.Validate(st.Values), false), nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip inventory.CreateInput) (model.InventoryItem, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.InventoryItem{}, errs
	}

	item, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.inventory.usecase.Create: %v", err)
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip inventory.UpdateInput) (model.InventoryItem, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.InventoryItem{}, errs
	}

	item, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.InventoryItem{}, inventory.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "internal.inventory.usecase.Update: %v", err)
		return model.InventoryItem{}, err
	}
	return item, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, ip inventory.DetailInput) error {
	_, err := uc.repo.Delete(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return inventory.ErrItemNotFound
		}
		uc.l.Errorf(ctx, "internal.inventory.usecase.Delete: %v", err)
		return err
	}
	return nil
}

// Export writes the current inventory page as a PDF.
func (uc *usecase) Export(ctx context.Context, sc model.Scope, ip inventory.ListInput, w io.Writer) error {
	if err := uc.table.Export(ctx, w, exportTitle, ip.OrganizationID, ip.Filter, ip.Access); err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.inventory.usecase.Export: %v", err)
		}
		return err
	}
	return nil
}

func toInput(i model.InventoryItem) inventory.Input {
	return inventory.Input{
		Name:        i.Name,
		SKU:         i.SKU,
		Category:    i.Category,
		Quantity:    form.NumberFrom(float64(i.Quantity)),
		UnitPrice:   form.NumberFrom(i.UnitPrice),
		Location:    i.Location,
		Supplier:    i.Supplier,
		Description: i.Description,
	}
}
