package usecase

import (
	"context"

	"isp-dashboard/internal/messaging"
	"isp-dashboard/internal/messaging/repository"
	"isp-dashboard/internal/model"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
)

const (
	defaultProvider   = "AFRICASTALKING"
	msgAPIKeyRequired = "API key is required"
)

func (uc *usecase) Config(ctx context.Context, sc model.Scope, organizationID string) (model.SmsConfig, error) {
	cfg, err := uc.repo.Config(ctx, sc, repository.ConfigOptions{OrganizationID: organizationID}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.SmsConfig{}, messaging.ErrConfigNotFound
		}
		uc.l.Errorf(ctx, "internal.messaging.usecase.Config: %v", err)
		return model.SmsConfig{}, err
	}
	return cfg, nil
}

// ConfigForm returns the gateway form. An organization without a
// configuration gets a blank form that also requires the API key.
func (uc *usecase) ConfigForm(ctx context.Context, sc model.Scope, organizationID string) (form.View[messaging.ConfigInput], error) {
	st := form.Loading[model.SmsConfig, messaging.ConfigInput]()

	cfg, err := uc.Config(ctx, sc, organizationID)
	switch {
	case err == messaging.ErrConfigNotFound:
		st = form.State[model.SmsConfig, messaging.ConfigInput]{
			Status: form.StatusLoaded,
			Values: messaging.ConfigInput{Provider: defaultProvider, IsActive: true},
		}
		return form.NewView(st, uc.validateConfig(st.Values, false), false), nil
	case err != nil:
		st = form.Reduce(st, form.Event[model.SmsConfig]{Kind: form.EventFailed, Err: err}, toConfigInput)
		return form.NewView(st, nil, false), nil
	}

	st = form.Reduce(st, form.Event[model.SmsConfig]{Kind: form.EventFetched, Data: cfg}, toConfigInput)
	return form.NewView(st, uc.validateConfig(st.Values, true), false), nil
}

func (uc *usecase) UpdateConfig(ctx context.Context, sc model.Scope, ip messaging.UpdateConfigInput) (model.SmsConfig, error) {
	exists := true
	if !ip.Input.APIKey.Valid {
		if _, err := uc.Config(ctx, sc, ip.OrganizationID); err != nil {
			if err != messaging.ErrConfigNotFound {
				return model.SmsConfig{}, err
			}
			exists = false
		}
	}
	if errs := uc.validateConfig(ip.Input, exists); errs != nil {
		return model.SmsConfig{}, errs
	}

	cfg, err := uc.repo.UpdateConfig(ctx, sc, repository.UpdateConfigOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.messaging.usecase.UpdateConfig: %v", err)
		return model.SmsConfig{}, err
	}
	return cfg, nil
}

func (uc *usecase) validateConfig(ip messaging.ConfigInput, exists bool) *pkgErrors.ValidationErrorCollector {
	errs := uc.validator.Validate(ip)
	if exists {
		return errs
	}
	return form.RequireSecret(errs, "apiKey", ip.APIKey, msgAPIKeyRequired)
}

func toConfigInput(c model.SmsConfig) messaging.ConfigInput {
	return messaging.ConfigInput{
		Provider: c.Provider,
		SenderID: c.SenderID,
		Username: c.Username,
		IsActive: c.IsActive,
	}
}
