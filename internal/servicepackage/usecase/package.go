package usecase

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/servicepackage"
	"isp-dashboard/internal/servicepackage/repository"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

// optionsPageSize bounds the package dropdown on customer forms.
const optionsPageSize = 50

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip servicepackage.ListInput) (listing.Screen, error) {
	screen, err := uc.table.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.servicepackage.usecase.List: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, ip servicepackage.DispatchInput) (listing.Screen, error) {
	screen, err := uc.table.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.servicepackage.usecase.Dispatch: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Options(ctx context.Context, sc model.Scope, organizationID string) ([]model.Package, error) {
	filter := paginator.DefaultFilter().
		SetPageSize(optionsPageSize).
		SetSort("name", paginator.SortAsc)

	page, err := uc.repo.List(ctx, sc, repository.ListOptions{
		OrganizationID: organizationID,
		Filter:         filter,
		ActiveOnly:     true,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.servicepackage.usecase.Options: %v", err)
		return nil, err
	}
	return page.Rows, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, ip servicepackage.DetailInput) (model.Package, error) {
	pkg, err := uc.repo.Detail(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Package{}, servicepackage.ErrPackageNotFound
		}
		uc.l.Errorf(ctx, "internal.servicepackage.usecase.Detail: %v", err)
		return model.Package{}, err
	}
	return pkg, nil
}

// EditForm loads a package and derives the edit form values from it.
func (uc *usecase) EditForm(ctx context.Context, sc model.Scope, ip servicepackage.DetailInput) (form.View[servicepackage.Input], error) {
	st := form.Loading[model.Package, servicepackage.Input]()

	pkg, err := uc.Detail(ctx, sc, ip)
	if err != nil {
		if err == servicepackage.ErrPackageNotFound {
			return form.View[servicepackage.Input]{}, err
		}
		st = form.Reduce(st, form.Event[model.Package]{Kind: form.EventFailed, Err: err}, toInput)
		return form.NewView(st, nil, false), nil
	}

	st = form.Reduce(st, form.Event[model.Package]{Kind: form.EventFetched, Data: pkg}, toInput)
	return form.NewView(st, uc.validator.Validate(st.Values), false), nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip servicepackage.CreateInput) (model.Package, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Package{}, errs
	}

	pkg, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.servicepackage.usecase.Create: %v", err)
		return model.Package{}, err
	}
	return pkg, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip servicepackage.UpdateInput) (model.Package, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Package{}, errs
	}

	pkg, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Package{}, servicepackage.ErrPackageNotFound
		}
		uc.l.Errorf(ctx, "internal.servicepackage.usecase.Update: %v", err)
		return model.Package{}, err
	}
	return pkg, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, ip servicepackage.DetailInput) error {
	_, err := uc.repo.Delete(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return servicepackage.ErrPackageNotFound
		}
		uc.l.Errorf(ctx, "internal.servicepackage.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func toInput(p model.Package) servicepackage.Input {
	return servicepackage.Input{
		Name:          p.Name,
		Description:   p.Description,
		DownloadSpeed: form.NumberFrom(p.DownloadSpeed),
		UploadSpeed:   form.NumberFrom(p.UploadSpeed),
		Price:         form.NumberFrom(p.Price),
		ServiceType:   p.ServiceType,
		BurstDownload: form.Number{Float64: p.BurstDownload},
		BurstUpload:   form.Number{Float64: p.BurstUpload},
		DataLimit:     form.Number{Float64: p.DataLimit},
		ValidityDays:  form.Number{Float64: p.ValidityDays},
	}
}
