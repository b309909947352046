package cache

import (
	"context"
	"errors"
	"sync"

	"github.com/DarinM223/arenacache/internal/singleflight"
)

// ErrNoLoader is returned by GetOrLoad when no Loader was configured in Options.
var ErrNoLoader = errors.New("cache: no Loader provided")

// Synced wraps a Cache behind one exclusive lock, held for the full
// duration of each operation. The index, the recency list, and the entry
// store can be transiently inconsistent mid-operation (during eviction,
// after unlinking but before releasing), so partial mutation must never be
// observable — hence a single whole-structure mutex rather than anything
// finer-grained.
//
// All methods are safe for concurrent use by multiple goroutines.
type Synced[K comparable, V any] struct {
	mu     sync.Mutex
	inner  Cache[K, V]
	loader func(ctx context.Context, k K) (V, error)

	// singleflight group for coalescing concurrent loads in GetOrLoad.
	sf singleflight.Group[K, V]
}

// NewSynced constructs a locked cache with the provided Options.
func NewSynced[K comparable, V any](opt Options[K, V]) *Synced[K, V] {
	return &Synced[K, V]{
		inner:  New(opt),
		loader: opt.Loader,
	}
}

// Set inserts or updates k→v. See Cache.Set.
func (s *Synced[K, V]) Set(k K, v V) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Set(k, v)
}

// Get returns the value for k and a presence flag. See Cache.Get.
func (s *Synced[K, V]) Get(k K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get(k)
}

// Len returns the number of resident entries.
func (s *Synced[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Len()
}

// Cap returns the configured capacity.
func (s *Synced[K, V]) Cap() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Cap()
}

// Purge releases every resident entry.
func (s *Synced[K, V]) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.Purge()
}

// Close releases all entries and returns nil.
func (s *Synced[K, V]) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Close()
}

// GetOrLoad returns the value for k; on miss it loads via Options.Loader,
// coalescing concurrent loads for the same key (singleflight).
// If no Loader is configured, returns ErrNoLoader.
//
// The lock is NOT held while the loader runs; only the cache accesses
// before and after the load take it.
func (s *Synced[K, V]) GetOrLoad(ctx context.Context, k K) (V, error) {
	// fast path
	if v, ok := s.Get(k); ok {
		return v, nil
	}
	if s.loader == nil {
		var zero V
		return zero, ErrNoLoader
	}

	// singleflight: exactly one real load for the key
	return s.sf.Do(ctx, k, func() (V, error) {
		// double-check after flight join
		if v, ok := s.Get(k); ok {
			return v, nil
		}
		v, err := s.loader(ctx, k)
		if err == nil {
			s.Set(k, v)
		}
		return v, err
	})
}

// Ensure Synced satisfies the Cache interface for the non-loading surface.
var _ Cache[string, int] = (*Synced[string, int])(nil)
