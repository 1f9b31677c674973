package redis

import (
	"context"
	"fmt"
	"time"

	"isp-dashboard/config"
	"isp-dashboard/pkg/log"
	pkgRedis "isp-dashboard/pkg/redis"
)

const pingTimeout = 3 * time.Second

// Connect opens the Redis pool described by cfg and pings it once.
func Connect(ctx context.Context, l log.Logger, cfg config.RedisConfig) (pkgRedis.IRedis, error) {
	client, err := pkgRedis.New(pkgRedis.Config{
		Host:            cfg.Host,
		Port:            cfg.Port,
		Password:        cfg.Password,
		DB:              cfg.DB,
		UseTLS:          cfg.UseTLS,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
	})
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping %s:%d: %w", cfg.Host, cfg.Port, err)
	}

	l.Infof(ctx, "config.redis.Connect: connected to %s:%d db=%d pool=%d", cfg.Host, cfg.Port, cfg.DB, cfg.PoolSize)
	return client, nil
}
