package usecase

import (
	"context"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/payment"
	"isp-dashboard/internal/payment/repository"
	pkgErrors "isp-dashboard/pkg/errors"
	"isp-dashboard/pkg/form"
)

func (uc *usecase) Config(ctx context.Context, sc model.Scope, organizationID string) (model.PaymentConfig, error) {
	cfg, err := uc.repo.Config(ctx, sc, repository.ConfigOptions{OrganizationID: organizationID}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.PaymentConfig{}, payment.ErrConfigNotFound
		}
		uc.l.Errorf(ctx, "internal.payment.usecase.Config: %v", err)
		return model.PaymentConfig{}, err
	}
	return cfg, nil
}

// stored loads the current configuration. An organization that has never
// saved one reads as empty rather than failing.
func (uc *usecase) stored(ctx context.Context, sc model.Scope, organizationID string) (model.PaymentConfig, error) {
	cfg, err := uc.Config(ctx, sc, organizationID)
	if err == payment.ErrConfigNotFound {
		return model.PaymentConfig{}, nil
	}
	return cfg, err
}

// providerForm builds a provider form from src, or a blank form when the
// provider has not been set up. Secrets are required only in the latter case.
func providerForm[S, V any](src *S, loadErr error, derive func(S) V, blank V, validate func(V, bool) *pkgErrors.ValidationErrorCollector) form.View[V] {
	st := form.Loading[S, V]()
	if loadErr != nil {
		st = form.Reduce(st, form.Event[S]{Kind: form.EventFailed, Err: loadErr}, derive)
		return form.NewView(st, nil, false)
	}
	if src == nil {
		st = form.State[S, V]{Status: form.StatusLoaded, Values: blank}
		return form.NewView(st, validate(st.Values, false), false)
	}
	st = form.Reduce(st, form.Event[S]{Kind: form.EventFetched, Data: *src}, derive)
	return form.NewView(st, validate(st.Values, true), false)
}
