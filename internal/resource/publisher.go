package resource

import (
	"context"

	"isp-dashboard/internal/model"
)

// Publisher announces entity changes to connected dashboards.
type Publisher interface {
	Publish(ctx context.Context, event model.ChangeEvent) error
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, model.ChangeEvent) error { return nil }
