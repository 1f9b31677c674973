package usecase

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/payment"
	"isp-dashboard/internal/payment/repository"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
)

func (uc *usecase) MpesaForm(ctx context.Context, sc model.Scope, organizationID string) (form.View[payment.MpesaInput], error) {
	cfg, err := uc.stored(ctx, sc, organizationID)
	blank := payment.MpesaInput{ShortCodeType: "PAYBILL", Environment: model.PaymentEnvironmentSandbox}
	return providerForm(cfg.Mpesa, err, toMpesaInput, blank, uc.validateMpesa), nil
}

func (uc *usecase) UpdateMpesa(ctx context.Context, sc model.Scope, ip payment.UpdateMpesaInput) (model.MpesaConfig, error) {
	exists := true
	if !ip.Input.ConsumerSecret.Valid || !ip.Input.Passkey.Valid {
		cfg, err := uc.stored(ctx, sc, ip.OrganizationID)
		if err != nil {
			return model.MpesaConfig{}, err
		}
		exists = cfg.Mpesa != nil
	}
	if errs := uc.validateMpesa(ip.Input, exists); errs != nil {
		return model.MpesaConfig{}, errs
	}

	cfg, err := uc.repo.UpdateMpesa(ctx, sc, repository.UpdateMpesaOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.payment.usecase.UpdateMpesa: %v", err)
		return model.MpesaConfig{}, err
	}
	return cfg, nil
}

func (uc *usecase) validateMpesa(ip payment.MpesaInput, exists bool) *pkgErrors.ValidationErrorCollector {
	errs := uc.validator.Validate(ip)
	if exists {
		return errs
	}
	errs = form.RequireSecret(errs, "consumerSecret", ip.ConsumerSecret, "Consumer secret is required")
	return form.RequireSecret(errs, "passkey", ip.Passkey, "Passkey is required")
}

func toMpesaInput(c model.MpesaConfig) payment.MpesaInput {
	return payment.MpesaInput{
		ShortCode:     c.ShortCode,
		ShortCodeType: c.ShortCodeType,
		ConsumerKey:   c.ConsumerKey,
		CallbackURL:   c.CallbackURL,
		Environment:   c.Environment,
		IsActive:      c.IsActive,
	}
}
