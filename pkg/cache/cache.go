package cache

import (
	"context"
	"encoding/json"
	"time"

	"isp-dashboard/pkg/encrypter"
	"isp-dashboard/pkg/log"

	"github.com/friendsofgo/errors"
)

type implCache struct {
	l     log.Logger
	store Store
	enc   encrypter.Encrypter
	ttl   time.Duration
	miss  error
}

func (c *implCache) GetEntity(ctx context.Context, orgID, typename, id string, dst any) bool {
	return c.get(ctx, EntityKey(orgID, typename, id), dst)
}

func (c *implCache) SetEntity(ctx context.Context, orgID, typename, id string, v any) {
	if id == "" {
		return
	}
	c.set(ctx, EntityKey(orgID, typename, id), v)
}

func (c *implCache) GetList(ctx context.Context, orgID, typename, filterKey string, dst any) bool {
	return c.get(ctx, ListKey(orgID, typename, filterKey), dst)
}

func (c *implCache) SetList(ctx context.Context, orgID, typename, filterKey string, v any) {
	key := ListKey(orgID, typename, filterKey)
	if !c.set(ctx, key, v) {
		return
	}
	if err := c.store.SAdd(ctx, ListIndexKey(orgID, typename), c.ttl, key); err != nil {
		c.l.Warnf(ctx, "pkg.cache.SetList.SAdd: %v", err)
	}
}

func (c *implCache) Evict(ctx context.Context, orgID, typename, id string) {
	if err := c.store.Delete(ctx, EntityKey(orgID, typename, id)); err != nil {
		c.l.Warnf(ctx, "pkg.cache.Evict.Delete: %v", err)
	}
}

func (c *implCache) GC(ctx context.Context, orgID, typename string) {
	index := ListIndexKey(orgID, typename)
	keys, err := c.store.SMembers(ctx, index)
	if err != nil {
		c.l.Warnf(ctx, "pkg.cache.GC.SMembers: %v", err)
		return
	}
	if err := c.store.Delete(ctx, append(keys, index)...); err != nil {
		c.l.Warnf(ctx, "pkg.cache.GC.Delete: %v", err)
	}
}

func (c *implCache) get(ctx context.Context, key string, dst any) bool {
	raw, err := c.store.Get(ctx, key)
	if err != nil {
		if c.miss == nil || !errors.Is(err, c.miss) {
			c.l.Warnf(ctx, "pkg.cache.get.Get: %v", err)
		}
		return false
	}

	plain, err := c.enc.Open(raw, key)
	if err != nil {
		c.l.Warnf(ctx, "pkg.cache.get.Open: %v", err)
		return false
	}

	if err := json.Unmarshal(plain, dst); err != nil {
		c.l.Warnf(ctx, "pkg.cache.get.Unmarshal: %v", errors.Wrap(err, key))
		return false
	}

	return true
}

func (c *implCache) set(ctx context.Context, key string, v any) bool {
	plain, err := json.Marshal(v)
	if err != nil {
		c.l.Warnf(ctx, "pkg.cache.set.Marshal: %v", errors.Wrap(err, key))
		return false
	}

	sealed, err := c.enc.Seal(plain, key)
	if err != nil {
		c.l.Warnf(ctx, "pkg.cache.set.Seal: %v", err)
		return false
	}

	if err := c.store.Set(ctx, key, sealed, c.ttl); err != nil {
		c.l.Warnf(ctx, "pkg.cache.set.Set: %v", err)
		return false
	}

	return true
}
