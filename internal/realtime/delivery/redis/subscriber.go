package redis

import (
	"context"
	"time"

	"isp-dashboard/internal/realtime"

	"github.com/friendsofgo/errors"
	"github.com/redis/go-redis/v9"
)

// Start subscribes once so a bad connection fails startup, then listens in
// the background until Shutdown.
func (s *subscriber) Start(ctx context.Context) error {
	pubsub, err := s.subscribe(ctx)
	if err != nil {
		return err
	}

	ctx, s.cancel = context.WithCancel(context.WithoutCancel(ctx))
	go s.run(ctx, pubsub)

	s.logger.Infof(ctx, "Redis subscriber started on %s", realtime.ChannelPattern)
	return nil
}

func (s *subscriber) subscribe(ctx context.Context) (*redis.PubSub, error) {
	pubsub := s.redis.PSubscribe(ctx, realtime.ChannelPattern)
	if _, err := pubsub.Receive(ctx); err != nil {
		_ = pubsub.Close()
		return nil, errors.Wrap(err, "subscribe to change channels")
	}
	return pubsub, nil
}

func (s *subscriber) run(ctx context.Context, pubsub *redis.PubSub) {
	defer close(s.done)

	backoff := resubscribeMin
	for {
		s.listen(ctx, pubsub)
		_ = pubsub.Close()

		for {
			if ctx.Err() != nil {
				return
			}
			s.logger.Warnf(ctx, "internal.realtime.delivery.redis.run: change channels lost, resubscribing in %s", backoff)
			if !sleep(ctx, backoff) {
				return
			}

			var err error
			if pubsub, err = s.subscribe(ctx); err == nil {
				backoff = resubscribeMin
				break
			}
			s.logger.Errorf(ctx, "internal.realtime.delivery.redis.run.subscribe: %v", err)
			backoff = min(backoff*2, resubscribeMax)
		}
	}
}

// listen returns when ctx ends or the pubsub channel closes.
func (s *subscriber) listen(ctx context.Context, pubsub *redis.PubSub) {
	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			s.handleMessage(ctx, msg.Channel, []byte(msg.Payload))
		}
	}
}

func (s *subscriber) handleMessage(ctx context.Context, channel string, payload []byte) {
	input := realtime.ProcessMessageInput{Channel: channel, Payload: payload}
	if err := s.uc.ProcessMessage(ctx, input); err != nil {
		s.logger.Warnf(ctx, "internal.realtime.delivery.redis.handleMessage: channel=%s: %v", channel, err)
	}
}

// Shutdown stops listening and waits for the listener to exit or ctx to end.
func (s *subscriber) Shutdown(ctx context.Context) error {
	if s.cancel == nil {
		return nil
	}
	s.cancel()
	select {
	case <-s.done:
		s.logger.Infof(ctx, "Redis subscriber stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
