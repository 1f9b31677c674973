package usecase

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/station"
	"isp-dashboard/internal/station/repository"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

// optionsPageSize bounds the station dropdown on customer forms.
const optionsPageSize = 50

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip station.ListInput) (listing.Screen, error) {
	screen, err := uc.table.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.station.usecase.List: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, ip station.DispatchInput) (listing.Screen, error) {
	screen, err := uc.table.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.station.usecase.Dispatch: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Options(ctx context.Context, sc model.Scope, organizationID string) ([]model.Station, error) {
	filter := paginator.DefaultFilter().
		SetPageSize(optionsPageSize).
		SetSort("name", paginator.SortAsc)

	page, err := uc.repo.List(ctx, sc, repository.ListOptions{
		OrganizationID: organizationID,
		Filter:         filter,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.station.usecase.Options: %v", err)
		return nil, err
	}
	return page.Rows, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, ip station.DetailInput) (model.Station, error) {
	stn, err := uc.repo.Detail(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Station{}, station.ErrStationNotFound
		}
		uc.l.Errorf(ctx, "internal.station.usecase.Detail: %v", err)
		return model.Station{}, err
	}
	return stn, nil
}

func (uc *usecase) EditForm(ctx context.Context, sc model.Scope, ip station.DetailInput) (form.View[station.Input], error) {
	st := form.Loading[model.Station, station.Input]()

	stn, err := uc.Detail(ctx, sc, ip)
	if err != nil {
		if err == station.ErrStationNotFound {
			return form.View[station.Input]{}, err
		}
		st = form.Reduce(st, form.Event[model.Station]{Kind: form.EventFailed, Err: err}, toInput)
		return form.NewView(st, nil, false), nil
	}

	st = form.Reduce(st, form.Event[model.Station]{Kind: form.EventFetched, Data: stn}, toInput)
	return form.NewView(st, uc.validator.Validate(st.Values), false), nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip station.CreateInput) (model.Station, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Station{}, errs
	}

	stn, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.station.usecase.Create: %v", err)
		return model.Station{}, err
	}
	return stn, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip station.UpdateInput) (model.Station, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Station{}, errs
	}

	stn, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Station{}, station.ErrStationNotFound
		}
		uc.l.Errorf(ctx, "internal.station.usecase.Update: %v", err)
		return model.Station{}, err
	}
	return stn, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, ip station.DetailInput) error {
	_, err := uc.repo.Delete(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return station.ErrStationNotFound
		}
		uc.l.Errorf(ctx, "internal.station.usecase.Delete: %v", err)
		return err
	}
	return nil
}

func toInput(s model.Station) station.Input {
	return station.Input{
		Name:        s.Name,
		Location:    s.Location,
		Type:        s.Type,
		IPAddress:   s.IPAddress,
		Status:      s.Status,
		Description: s.Description,
	}
}
