package alert

import "context"

// UseCase posts operational alerts to the alerts Discord channel.
type UseCase interface {
	DispatchUrgentTicket(ctx context.Context, input UrgentTicketInput) error
	DispatchSubscriptionChange(ctx context.Context, input SubscriptionChangeInput) error
	// Go runs fn detached from the request, logging its failure.
	Go(ctx context.Context, name string, fn func(ctx context.Context) error)
}
