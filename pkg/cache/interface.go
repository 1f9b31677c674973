package cache

import (
	"context"
	"time"

	"isp-dashboard/pkg/encrypter"
	"isp-dashboard/pkg/log"
)

// Store is the key-value backend. pkg/redis.IRedis satisfies it.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	SAdd(ctx context.Context, key string, ttl time.Duration, members ...string) error
	SMembers(ctx context.Context, key string) ([]string, error)
}

// Cache is a normalized response cache keyed by organization, typename and id.
// Lookups report a miss on any failure; writes never fail the caller.
type Cache interface {
	GetEntity(ctx context.Context, orgID, typename, id string, dst any) bool
	SetEntity(ctx context.Context, orgID, typename, id string, v any)
	GetList(ctx context.Context, orgID, typename, filterKey string, dst any) bool
	SetList(ctx context.Context, orgID, typename, filterKey string, v any)
	// Evict drops one entity.
	Evict(ctx context.Context, orgID, typename, id string)
	// GC drops every cached list of typename in the organization.
	GC(ctx context.Context, orgID, typename string)
}

// Config configures New.
type Config struct {
	TTL time.Duration
	// Miss is the error the store returns for an absent key.
	Miss error
}

// New creates a Cache over store that encrypts every value with enc.
func New(l log.Logger, store Store, enc encrypter.Encrypter, cfg Config) Cache {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &implCache{
		l:     l,
		store: store,
		enc:   enc,
		ttl:   cfg.TTL,
		miss:  cfg.Miss,
	}
}

// NewNop returns a Cache that stores nothing.
func NewNop() Cache {
	return nopCache{}
}
