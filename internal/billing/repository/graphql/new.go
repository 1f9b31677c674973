package graphql

import (
	"isp-dashboard/internal/billing/repository"
	"isp-dashboard/internal/model"
	"isp-dashboard/internal/resource"
	pkgGraphql "isp-dashboard/pkg/graphql"
	pkgLog "isp-dashboard/pkg/log"
)

var (
	cancelDoc = resource.Document{Operation: "CancelSubscription", Query: cancelMutation, Field: "cancelSubscription"}
	plansDoc  = resource.Document{Operation: "GetPlans", Query: plansQuery, Field: "plans"}
)

type implRepository struct {
	l      pkgLog.Logger
	client pkgGraphql.Client
	gw     *resource.Gateway[model.Subscription]
}

var _ repository.Repository = &implRepository{}

func New(l pkgLog.Logger, deps resource.Deps) *implRepository {
	return &implRepository{
		l:      l,
		client: deps.Client,
		gw: resource.New(deps, resource.Descriptor[model.Subscription]{
			Typename: "Subscription",
			List:     resource.Document{Operation: "GetSubscriptions", Query: listQuery, Field: "subscriptions"},
			Detail:   resource.Document{Operation: "GetSubscription", Query: detailQuery, Field: "subscription"},
			Create:   resource.Document{Operation: "CreateSubscription", Query: createMutation, Field: "createSubscription"},
			ID:       func(s model.Subscription) string { return s.ID },
		}),
	}
}
