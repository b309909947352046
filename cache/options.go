package cache

import "context"

// Options configures the cache behavior. Zero values are safe;
// defaults are applied in New():
//   - nil Metrics => NoopMetrics
type Options[K comparable, V any] struct {
	// Capacity is the maximum number of resident entries. It is fixed at
	// construction. Zero is legal and yields a cache that never retains
	// anything (every Set is a no-op); negative capacity panics in New.
	Capacity int

	// Loader fetches a value on cache miss. Used by Synced.GetOrLoad.
	Loader func(ctx context.Context, k K) (V, error)

	// Observability.
	// OnEvict is called for every capacity eviction, after the entry has
	// been removed; keep callbacks lightweight.
	OnEvict func(k K, v V)
	Metrics Metrics
}
