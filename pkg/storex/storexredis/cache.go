// Package storexredis wraps a storex.Store with a read-through Redis cache.
package storexredis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/Abraxas-365/folio/pkg/logx"
	"github.com/Abraxas-365/folio/pkg/storex"
)

// CachedStore serves snapshots from Redis and falls back to the inner store
// on a miss or any Redis failure. Absent documents are never cached, so a
// FetchByID miss always reaches the store.
type CachedStore struct {
	inner  storex.Store
	client *redis.Client
	ttl    time.Duration
}

// New creates the cache decorator. A nil client disables caching entirely.
func New(inner storex.Store, client *redis.Client, ttl time.Duration) *CachedStore {
	return &CachedStore{
		inner:  inner,
		client: client,
		ttl:    ttl,
	}
}

func (c *CachedStore) FetchAll(ctx context.Context, collection string) ([]storex.Snapshot, error) {
	if c.client == nil {
		return c.inner.FetchAll(ctx, collection)
	}

	key := "folio:all:" + collection
	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var snaps []storex.Snapshot
		if err := json.Unmarshal(data, &snaps); err == nil {
			return snaps, nil
		}
		logx.Warnf("cache: dropping corrupt entry %s", key)
	} else if err != redis.Nil {
		logx.Warnf("cache: get %s: %v", key, err)
	}

	snaps, err := c.inner.FetchAll(ctx, collection)
	if err != nil {
		return nil, err
	}
	c.set(ctx, key, snaps)
	return snaps, nil
}

func (c *CachedStore) FetchByID(ctx context.Context, collection, id string) (*storex.Snapshot, error) {
	if c.client == nil {
		return c.inner.FetchByID(ctx, collection, id)
	}

	key := "folio:doc:" + collection + ":" + id
	if data, err := c.client.Get(ctx, key).Bytes(); err == nil {
		var snap storex.Snapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
		logx.Warnf("cache: dropping corrupt entry %s", key)
	} else if err != redis.Nil {
		logx.Warnf("cache: get %s: %v", key, err)
	}

	snap, err := c.inner.FetchByID(ctx, collection, id)
	if err != nil || snap == nil {
		return snap, err
	}
	c.set(ctx, key, snap)
	return snap, nil
}

func (c *CachedStore) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		logx.Warnf("cache: marshal %s: %v", key, err)
		return
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		logx.Warnf("cache: set %s: %v", key, err)
	}
}
