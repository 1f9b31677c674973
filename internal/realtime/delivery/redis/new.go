package redis

import (
	"context"
	"time"

	"isp-dashboard/internal/realtime"
	"isp-dashboard/pkg/log"
	pkgRedis "isp-dashboard/pkg/redis"
)

const (
	resubscribeMin = time.Second
	resubscribeMax = 30 * time.Second
)

// Subscriber feeds every organization's change channel into the realtime
// usecase, resubscribing when the pubsub connection drops.
type Subscriber interface {
	Start(ctx context.Context) error
	Shutdown(ctx context.Context) error
}

type subscriber struct {
	redis  pkgRedis.IRedis
	uc     realtime.UseCase
	logger log.Logger

	cancel context.CancelFunc
	done   chan struct{}
}

func New(redis pkgRedis.IRedis, uc realtime.UseCase, logger log.Logger) Subscriber {
	return &subscriber{
		redis:  redis,
		uc:     uc,
		logger: logger,
		done:   make(chan struct{}),
	}
}
