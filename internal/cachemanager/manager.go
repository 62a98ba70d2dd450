// Package cachemanager provides a small TTL cache abstraction used for
// remote repository metadata lookups (default branch, repo info).
// Registry content is deliberately never cached - every publish re-fetches
// fresh state.
package cachemanager

import (
	"context"
	"time"
)

type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
