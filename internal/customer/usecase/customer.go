package usecase

import (
	"context"
	"io"

	"isp-dashboard/internal/customer"
	"isp-dashboard/internal/customer/repository"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/paginator"
)

const exportTitle = "Customers"

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip customer.ListInput) (listing.Screen, error) {
	screen, err := uc.table.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.customer.usecase.List: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, ip customer.DispatchInput) (listing.Screen, error) {
	screen, err := uc.table.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.customer.usecase.Dispatch: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, ip customer.DetailInput) (model.Customer, error) {
	cus, err := uc.repo.Detail(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Customer{}, customer.ErrCustomerNotFound
		}
		uc.l.Errorf(ctx, "internal.customer.usecase.Detail: %v", err)
		return model.Customer{}, err
	}
	return cus, nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip customer.CreateInput) (model.Customer, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validateCreate(ip.Input); errs != nil {
		return model.Customer{}, errs
	}

	cus, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.customer.usecase.Create: %v", err)
		return model.Customer{}, err
	}
	return cus, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip customer.UpdateInput) (model.Customer, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Customer{}, errs
	}

	cus, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Customer{}, customer.ErrCustomerNotFound
		}
		uc.l.Errorf(ctx, "internal.customer.usecase.Update: %v", err)
		return model.Customer{}, err
	}
	return cus, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, ip customer.DetailInput) error {
	_, err := uc.repo.Delete(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return customer.ErrCustomerNotFound
		}
		uc.l.Errorf(ctx, "internal.customer.usecase.Delete: %v", err)
		return err
	}
	return nil
}

// Export writes the current customer page as a PDF.
func (uc *usecase) Export(ctx context.Context, sc model.Scope, ip customer.ListInput, w io.Writer) error {
	if err := uc.table.Export(ctx, w, exportTitle, ip.OrganizationID, ip.Filter, ip.Access); err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.customer.usecase.Export: %v", err)
		}
		return err
	}
	return nil
}
