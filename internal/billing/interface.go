package billing

import (
	"context"

	"isp-dashboard/internal/listing"
	"isp-dashboard/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Subscriptions(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	DispatchSubscriptions(ctx context.Context, sc model.Scope, ip DispatchInput) (listing.Screen, error)
	Subscription(ctx context.Context, sc model.Scope, ip DetailInput) (model.Subscription, error)
	Subscribe(ctx context.Context, sc model.Scope, ip SubscribeInput) (model.Subscription, error)
	Cancel(ctx context.Context, sc model.Scope, ip DetailInput) (model.Subscription, error)

	Plans(ctx context.Context, sc model.Scope, ip ListInput) (listing.Screen, error)
	DispatchPlans(ctx context.Context, sc model.Scope, ip DispatchInput) (listing.Screen, error)
}
