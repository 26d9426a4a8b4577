// Package cachemanager memoizes read-only API views (waypoints, shipyards,
// system listings) for a bounded time. It never holds session state.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager is a typed key/value store with per-entry expiry.
type CacheManager[K comparable, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
