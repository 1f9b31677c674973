package usecase

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/payment"
	"isp-dashboard/internal/payment/repository"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
)

func (uc *usecase) KopoKopoForm(ctx context.Context, sc model.Scope, organizationID string) (form.View[payment.KopoKopoInput], error) {
	cfg, err := uc.stored(ctx, sc, organizationID)
	blank := payment.KopoKopoInput{Environment: model.PaymentEnvironmentSandbox}
	return providerForm(cfg.KopoKopo, err, toKopoKopoInput, blank, uc.validateKopoKopo), nil
}

func (uc *usecase) UpdateKopoKopo(ctx context.Context, sc model.Scope, ip payment.UpdateKopoKopoInput) (model.KopoKopoConfig, error) {
	exists := true
	if !ip.Input.ClientSecret.Valid || !ip.Input.APIKey.Valid {
		cfg, err := uc.stored(ctx, sc, ip.OrganizationID)
		if err != nil {
			return model.KopoKopoConfig{}, err
		}
		exists = cfg.KopoKopo != nil
	}
	if errs := uc.validateKopoKopo(ip.Input, exists); errs != nil {
		return model.KopoKopoConfig{}, errs
	}

	cfg, err := uc.repo.UpdateKopoKopo(ctx, sc, repository.UpdateKopoKopoOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.payment.usecase.UpdateKopoKopo: %v", err)
		return model.KopoKopoConfig{}, err
	}
	return cfg, nil
}

func (uc *usecase) validateKopoKopo(ip payment.KopoKopoInput, exists bool) *pkgErrors.ValidationErrorCollector {
	errs := uc.validator.Validate(ip)
	if exists {
		return errs
	}
	errs = form.RequireSecret(errs, "clientSecret", ip.ClientSecret, "Client secret is required")
	return form.RequireSecret(errs, "apiKey", ip.APIKey, "API key is required")
}

func toKopoKopoInput(c model.KopoKopoConfig) payment.KopoKopoInput {
	return payment.KopoKopoInput{
		ClientID:    c.ClientID,
		TillNumber:  c.TillNumber,
		CallbackURL: c.CallbackURL,
		Environment: c.Environment,
		IsActive:    c.IsActive,
	}
}
