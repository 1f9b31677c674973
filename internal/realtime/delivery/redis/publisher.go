package redis

import (
	"context"
	"encoding/json"

	"isp-dashboard/internal/model"
	"isp-dashboard/internal/realtime"
	pkgRedis "isp-dashboard/pkg/redis"

	"github.com/friendsofgo/errors"
)

// Publisher sends entity changes to the organization's change channel.
type Publisher struct {
	redis pkgRedis.IRedis
}

func NewPublisher(redis pkgRedis.IRedis) *Publisher {
	return &Publisher{redis: redis}
}

func (p *Publisher) Publish(ctx context.Context, event model.ChangeEvent) error {
	if event.OrganizationID == "" {
		return realtime.ErrInvalidChannel
	}
	data, err := json.Marshal(event)
	if err != nil {
		return errors.Wrap(err, "marshal change event")
	}
	if err := p.redis.Publish(ctx, realtime.Channel(event.OrganizationID), data); err != nil {
		return errors.Wrap(err, "publish change event")
	}
	return nil
}
