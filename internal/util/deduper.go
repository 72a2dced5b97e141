package util

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Deduper struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewDeduper(rdb *redis.Client, ttl time.Duration) *Deduper {
	return &Deduper{rdb: rdb, ttl: ttl}
}

// AcquireOnce tries to acquire a dedup lock for a given handler + message ID.
// Returns true if this is the FIRST time processing, false on a redelivery.
func (d *Deduper) AcquireOnce(ctx context.Context, handler, messageID string) bool {
	key := fmt.Sprintf("dedup:%s:%s", handler, messageID)

	ok, err := d.rdb.SetNX(ctx, key, 1, d.ttl).Result()
	if err != nil {
		// Redis 挂了？为了安全：当 redis 不可用时，不阻止处理，返回 true
		return true
	}
	return ok
}

// Release drops the lock so a requeued message is not treated as a
// duplicate after its handler failed.
func (d *Deduper) Release(ctx context.Context, handler, messageID string) {
	key := fmt.Sprintf("dedup:%s:%s", handler, messageID)
	_ = d.rdb.Del(ctx, key).Err()
}
