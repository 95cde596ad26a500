package availability

import (
	"context"
	"errors"
	"sync"
	"time"

	"courtly/pkg/cache"
	"courtly/pkg/logger"
)

// SnapshotCache stores assembled snapshots for a short freshness window. It is
// purely a performance optimization: a cold cache must produce the same
// snapshot as a warm one, and last-writer-wins on concurrent sets for the same
// key is acceptable because the computation is idempotent.
type SnapshotCache interface {
	Get(ctx context.Context, key string) (*Snapshot, bool)
	Set(ctx context.Context, key string, snapshot *Snapshot)
}

// ---- Redis-backed implementation ----

type redisSnapshotCache struct {
	svc cache.Service
	ttl time.Duration
	log *logger.Logger
}

// NewRedisCache returns a SnapshotCache backed by the shared redis cache
// service. Redis evicts entries by TTL; cache errors degrade to misses.
func NewRedisCache(svc cache.Service, ttl time.Duration) SnapshotCache {
	return &redisSnapshotCache{
		svc: svc,
		ttl: ttl,
		log: logger.GetDefault(),
	}
}

func (c *redisSnapshotCache) Get(ctx context.Context, key string) (*Snapshot, bool) {
	var snapshot Snapshot
	if err := c.svc.Get(ctx, key, &snapshot); err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.log.WarnContext(ctx, "snapshot cache read failed", "key", key, "error", err)
		}
		return nil, false
	}
	return &snapshot, true
}

func (c *redisSnapshotCache) Set(ctx context.Context, key string, snapshot *Snapshot) {
	if err := c.svc.Set(ctx, key, snapshot, c.ttl); err != nil {
		// A failed write only costs a recomputation on the next request
		c.log.WarnContext(ctx, "snapshot cache write failed", "key", key, "error", err)
	}
}

// ---- In-process implementation ----

type memoryEntry struct {
	snapshot *Snapshot
	storedAt time.Time
}

// MemoryCache is a concurrent in-process TTL store for single-instance
// deployments and for running without redis. Stale entries are evicted on
// read.
type MemoryCache struct {
	mu      sync.Mutex
	ttl     time.Duration
	entries map[string]memoryEntry
	now     func() time.Time
}

// NewMemoryCache returns an in-process SnapshotCache with the given TTL
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	return &MemoryCache{
		ttl:     ttl,
		entries: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

func (c *MemoryCache) Get(_ context.Context, key string) (*Snapshot, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(entry.storedAt) >= c.ttl {
		delete(c.entries, key)
		return nil, false
	}
	return entry.snapshot, true
}

func (c *MemoryCache) Set(_ context.Context, key string, snapshot *Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = memoryEntry{
		snapshot: snapshot,
		storedAt: c.now(),
	}
}
