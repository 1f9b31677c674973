package realtime

import (
	"context"
)

// UseCase fans entity changes out to the dashboards connected for an organization.
type UseCase interface {
	Run()
	Shutdown(ctx context.Context) error

	// Admit reports whether one more connection for the user is allowed.
	Admit(ctx context.Context, input ConnectionInput) error
	Register(ctx context.Context, input ConnectionInput) error

	// ProcessMessage routes one message received on a change channel.
	ProcessMessage(ctx context.Context, input ProcessMessageInput) error

	GetStats(ctx context.Context) (HubStats, error)
}
