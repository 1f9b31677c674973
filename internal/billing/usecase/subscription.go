package usecase

import (
	"context"
	"time"

	"isp-dashboard/internal/alert"
	"isp-dashboard/internal/billing"
	"isp-dashboard/internal/billing/repository"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/paginator"
)

func (uc *usecase) Subscriptions(ctx context.Context, sc model.Scope, ip billing.ListInput) (listing.Screen, error) {
	screen, err := uc.subscriptions.Load(ctx, ip.OrganizationID, ip.Filter, ip.Access)
	if err != nil {
		if err != listing.ErrDenied {
			uc.l.Errorf(ctx, "internal.billing.usecase.Subscriptions: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) DispatchSubscriptions(ctx context.Context, sc model.Scope, ip billing.DispatchInput) (listing.Screen, error) {
	screen, err := uc.subscriptions.Dispatch(ctx, ip.OrganizationID, ip.Filter, ip.Action, ip.TotalCount, ip.Access)
	if err != nil {
		if err != listing.ErrDenied && err != paginator.ErrUnknownAction {
			uc.l.Errorf(ctx, "internal.billing.usecase.DispatchSubscriptions: %v", err)
		}
		return listing.Screen{}, err
	}
	return screen, nil
}

func (uc *usecase) Subscription(ctx context.Context, sc model.Scope, ip billing.DetailInput) (model.Subscription, error) {
	sub, err := uc.repo.Subscription(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Subscription{}, billing.ErrSubscriptionNotFound
		}
		uc.l.Errorf(ctx, "internal.billing.usecase.Subscription: %v", err)
		return model.Subscription{}, err
	}
	return sub, nil
}

func (uc *usecase) Subscribe(ctx context.Context, sc model.Scope, ip billing.SubscribeInput) (model.Subscription, error) {
	if errs := uc.validator.Validate(ip.Input); errs != nil {
		return model.Subscription{}, errs
	}

	plan, err := uc.plan(ctx, sc, ip.Input.PlanID)
	if err != nil {
		return model.Subscription{}, err
	}
	if !plan.IsActive {
		return model.Subscription{}, billing.ErrPlanInactive
	}

	sub, err := uc.repo.CreateSubscription(ctx, sc, repository.CreateOptions{
		OrganizationID: ip.OrganizationID,
		Input:          ip.Input,
	}).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.billing.usecase.Subscribe: %v", err)
		return model.Subscription{}, err
	}
	if sub.Plan == nil {
		sub.Plan = &plan
	}

	uc.notify(ctx, sc, ip.OrganizationID, sub, "created")
	return sub, nil
}

func (uc *usecase) Cancel(ctx context.Context, sc model.Scope, ip billing.DetailInput) (model.Subscription, error) {
	prev, err := uc.Subscription(ctx, sc, ip)
	if err != nil {
		return model.Subscription{}, err
	}
	if !prev.IsCancellable() {
		return model.Subscription{}, billing.ErrNotCancellable
	}

	sub, err := uc.repo.CancelSubscription(ctx, sc, repository.DetailOptions{
		OrganizationID: ip.OrganizationID,
		ID:             ip.ID,
	}).Unwrap()
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Subscription{}, billing.ErrSubscriptionNotFound
		}
		uc.l.Errorf(ctx, "internal.billing.usecase.Cancel: %v", err)
		return model.Subscription{}, err
	}
	if sub.Plan == nil {
		sub.Plan = prev.Plan
	}

	uc.notify(ctx, sc, ip.OrganizationID, sub, "cancelled")
	return sub, nil
}

func (uc *usecase) plan(ctx context.Context, sc model.Scope, id string) (model.Plan, error) {
	plans, err := uc.repo.Plans(ctx, sc).Unwrap()
	if err != nil {
		uc.l.Errorf(ctx, "internal.billing.usecase.plan: %v", err)
		return model.Plan{}, err
	}
	for _, p := range plans {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Plan{}, billing.ErrPlanNotFound
}

func (uc *usecase) notify(ctx context.Context, sc model.Scope, orgID string, sub model.Subscription, event string) {
	input := alert.SubscriptionChangeInput{
		OrganizationID: orgID,
		SubscriptionID: sub.ID,
		PlanName:       planName(sub),
		Event:          event,
		User:           sc.Username,
		Timestamp:      time.Now(),
	}
	uc.alerts.Go(ctx, "DispatchSubscriptionChange", func(ctx context.Context) error {
		return uc.alerts.DispatchSubscriptionChange(ctx, input)
	})
}
