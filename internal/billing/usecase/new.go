package usecase

import (
	"context"
	"strings"

	"isp-dashboard/internal/alert"
	"isp-dashboard/internal/billing"
	"isp-dashboard/internal/billing/repository"
	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
	"isp-dashboard/pkg/form"
	pkgGraphql "isp-dashboard/pkg/graphql"
	pkgLog "isp-dashboard/pkg/log"
	"isp-dashboard/pkg/paginator"
	"isp-dashboard/pkg/scope"
)

type usecase struct {
	l             pkgLog.Logger
	repo          repository.Repository
	validator     *form.Validator
	alerts        alert.UseCase
	subscriptions *listing.Container[model.Subscription]
	plans         *listing.Container[model.Plan]
}

func New(l pkgLog.Logger, repo repository.Repository, validator *form.Validator, alerts alert.UseCase) billing.UseCase {
	uc := &usecase{
		l:         l,
		repo:      repo,
		validator: validator,
		alerts:    alerts,
	}
	uc.subscriptions = listing.New(subscriptionColumns, uc.fetchSubscriptions)
	uc.plans = listing.New(planColumns, uc.fetchPlans)
	return uc
}

func (uc *usecase) fetchSubscriptions(ctx context.Context, orgID string, filter paginator.FilterOptions) pkgGraphql.Result[paginator.Page[model.Subscription]] {
	return uc.repo.ListSubscriptions(ctx, scope.GetScopeFromContext(ctx), repository.ListOptions{
		OrganizationID: orgID,
		Filter:         filter,
	})
}

// The API returns every plan at once, so the plan table is paged here.
func (uc *usecase) fetchPlans(ctx context.Context, _ string, filter paginator.FilterOptions) pkgGraphql.Result[paginator.Page[model.Plan]] {
	res := uc.repo.Plans(ctx, scope.GetScopeFromContext(ctx))
	return pkgGraphql.Map(res, func(plans []model.Plan) paginator.Page[model.Plan] {
		return paginator.LocalPage(plans, filter, matchPlan, planOrder)
	})
}

func matchPlan(p model.Plan, search string) bool {
	return strings.Contains(strings.ToLower(p.Name), search) ||
		strings.Contains(strings.ToLower(p.Description), search)
}
