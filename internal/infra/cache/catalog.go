package cache

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"machine-rental/internal/pkg/config"
	"machine-rental/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
)

// CatalogCache caches catalog list pages in Redis. Every failure degrades to
// a cache miss so a dead Redis never takes the catalog down with it.
type CatalogCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewCatalogCache accepts a nil client; the cache then behaves as disabled.
func NewCatalogCache(client *redis.Client, cfg config.CacheConfig) *CatalogCache {
	if !cfg.Enabled {
		client = nil
	}
	return &CatalogCache{
		client: client,
		prefix: cfg.Prefix + ":",
		ttl:    cfg.TTL,
	}
}

func (c *CatalogCache) GetList(ctx context.Context, key string) ([]queries.MachineListItem, bool) {
	if c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if err != nil {
		if err != redis.Nil {
			slog.Warn("catalog cache read failed", "key", key, "error", err.Error())
		}
		return nil, false
	}

	var items []queries.MachineListItem
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("catalog cache entry corrupted", "key", key, "error", err.Error())
		return nil, false
	}
	return items, true
}

func (c *CatalogCache) SetList(ctx context.Context, key string, items []queries.MachineListItem) {
	if c.client == nil {
		return
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, c.ttl).Err(); err != nil {
		slog.Warn("catalog cache write failed", "key", key, "error", err.Error())
	}
}

// InvalidateCatalog drops every cached catalog page. SCAN keeps Redis
// responsive on large keyspaces where KEYS would block.
func (c *CatalogCache) InvalidateCatalog(ctx context.Context) {
	if c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, c.prefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		slog.Warn("catalog cache scan failed", "error", err.Error())
		return
	}
	if len(keys) == 0 {
		return
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		slog.Warn("catalog cache invalidation failed", "error", err.Error())
	}
}
