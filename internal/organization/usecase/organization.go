package usecase

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/organization"
	"isp-dashboard/internal/organization/repository"
	"isp-dashboard/pkg/form"
)

func (uc *usecase) Organization(ctx context.Context, sc model.Scope, id string) (model.Organization, error) {
	org, err := uc.repo.Detail(ctx, sc, repository.DetailOptions{ID: id}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Organization{}, organization.ErrOrganizationNotFound
		}
		uc.l.Errorf(ctx, "internal.organization.usecase.Organization: %v", err)
		return model.Organization{}, err
	}
	return org, nil
}

func (uc *usecase) EditForm(ctx context.Context, sc model.Scope, id string) (form.View[organization.Input], error) {
	st := form.Loading[model.Organization, organization.Input]()

	org, err := uc.Organization(ctx, sc, id)
	if err != nil {
		if err == organization.ErrOrganizationNotFound {
			return form.View[organization.Input]{}, err
		}
		st = form.Reduce(st, form.Event[model.Organization]{Kind: form.EventFailed, Err: err}, toInput)
		return form.NewView(st, nil, false), nil
	}

	st = form.Reduce(st, form.Event[model.Organization]{Kind: form.EventFetched, Data: org}, toInput)
	return form.NewView(st, uc.validator.Validate(st.Values), false), nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip organization.UpdateInput) (model.Organization, error) {
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Organization{}, errs
	}

	org, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		ID:    ip.OrganizationID,
		Input: ip.Input,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Organization{}, organization.ErrOrganizationNotFound
		}
		uc.l.Errorf(ctx, "internal.organization.usecase.Update: %v", err)
		return model.Organization{}, err
	}
	return org, nil
}

func toInput(o model.Organization) organization.Input {
	return organization.Input{
		Name:        o.Name,
		Email:       o.Email,
		Phone:       o.Phone,
		Address:     o.Address,
		Description: o.Description,
	}
}
