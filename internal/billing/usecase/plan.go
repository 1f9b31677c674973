package usecase

import (
	"context"

	"isp-dashboard/internal/billing"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/paginator"
)

func (uc *usecase) Plans(ctx context.Context, sc model.Scope, ip billing.ListInput) (listing.Screen, error) {
	screen, err := uc.plans.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.billing.usecase.Plans: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) DispatchPlans(ctx context.Context, sc model.Scope, ip billing.DispatchInput) (listing.Screen, error) {
	screen, err := uc.plans.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.billing.usecase.DispatchPlans: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}
