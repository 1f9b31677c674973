package usecase

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/messaging"
	"isp-dashboard/internal/messaging/repository"
	"isp-dashboard/internal/model"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
	"isp-dashboard/pkg/paginator"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope, ip messaging.ListInput) (listing.Screen, error) {
	screen, err := uc.table.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.messaging.usecase.List: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Dispatch(ctx context.Context, sc model.Scope, ip messaging.DispatchInput) (listing.Screen, error) {
	screen, err := uc.table.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.messaging.usecase.Dispatch: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Detail(ctx context.Context, sc model.Scope, ip messaging.DetailInput) (model.SmsTemplate, error) {
	tpl, err := uc.repo.Detail(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.SmsTemplate{}, messaging.ErrTemplateNotFound
		}
		uc.l.Errorf(ctx, "internal.messaging.usecase.Detail: %v", err)
		return model.SmsTemplate{}, err
	}
	return tpl, nil
}

func (uc *usecase) EditForm(ctx context.Context, sc model.Scope, ip messaging.DetailInput) (form.View[messaging.Input], error) {
	st := form.Loading[model.SmsTemplate, messaging.Input]()

	tpl, err := uc.Detail(ctx, sc, ip)
	if err != nil {
		if err == messaging.ErrTemplateNotFound {
			return form.View[messaging.Input]{}, err
		}
		st = form.Reduce(st, form.Event[model.SmsTemplate]{Kind: form.EventFailed, Err: err}, toInput)
		return form.NewView(st, nil, false), nil
	}

	st = form.Reduce(st, form.Event[model.SmsTemplate]{Kind: form.EventFetched, Data: tpl}, toInput)
	return form.NewView(st, uc.validator.Validate(st.Values), false), nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip messaging.CreateInput) (model.SmsTemplate, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validateTemplate(&ip.Input); errs != nil {
		return model.SmsTemplate{}, errs
	}

	tpl, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.messaging.usecase.Create: %v", err)
		return model.SmsTemplate{}, err
	}
	return tpl, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip messaging.UpdateInput) (model.SmsTemplate, error) {
	ip.Input.OrganizationID = ip.OrganizationID
	if errs := uc.validateTemplate(&ip.Input); errs != nil {
		return model.SmsTemplate{}, errs
	}

	tpl, err := uc.repo.Update(ctx, sc, repository.UpdateOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.SmsTemplate{}, messaging.ErrTemplateNotFound
		}
		uc.l.Errorf(ctx, "internal.messaging.usecase.Update: %v", err)
		return model.SmsTemplate{}, err
	}
	return tpl, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, ip messaging.DetailInput) error {
	_, err := uc.repo.Delete(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return messaging.ErrTemplateNotFound
		}
		uc.l.Errorf(ctx, "internal.messaging.usecase.Delete: %v", err)
		return err
	}
	return nil
}

// validateTemplate checks the schema and derives Variables from Content.
func (uc *usecase) validateTemplate(ip *messaging.Input) *pkgErrors.ValidationErrorCollector {
	if errs := uc.validator.Validate(*ip); errs != nil {
		return errs
	}
	vars, err := placeholders(ip.Content)
	if err != nil {
		return pkgErrors.NewValidationErrorCollector().
			Add(pkgErrors.NewValidationError(form.ValidationErrorCode, "content", "Placeholders must look like {{customer_name}}"))
	}
	ip.Variables = vars
	return nil
}

func toInput(t model.SmsTemplate) messaging.Input {
	return messaging.Input{
		Name:      t.Name,
		Content:   t.Content,
		Category:  t.Category,
		Variables: t.Variables,
		IsActive:  t.IsActive,
	}
}
