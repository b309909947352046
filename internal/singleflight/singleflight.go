// Package singleflight coalesces concurrent calls for the same key so the
// underlying function runs at most once while callers share its result.
package singleflight

import (
	"context"
	"sync"
)

type result[V any] struct {
	val V
	err error
}

// flight is one in-progress call. res is published before done is closed,
// so any read after <-done observes the final result.
type flight[V any] struct {
	done chan struct{}
	res  result[V]
}

func (f *flight[V]) wait(ctx context.Context) (V, error) {
	select {
	case <-f.done:
		return f.res.val, f.res.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Group deduplicates concurrent Do calls per key K.
// The zero value is ready to use.
type Group[K comparable, V any] struct {
	mu     sync.Mutex
	inwork map[K]*flight[V]
}

// Do runs fn at most once per key among concurrent callers. The first
// caller for a key runs fn; the rest wait for and share its result.
//
// If ctx is cancelled while waiting, the waiter returns ctx.Err() without
// affecting the running fn. Cancellation of the work itself must be handled
// inside fn.
func (g *Group[K, V]) Do(ctx context.Context, key K, fn func() (V, error)) (V, error) {
	g.mu.Lock()
	if f, ok := g.inwork[key]; ok {
		g.mu.Unlock()
		return f.wait(ctx)
	}
	if g.inwork == nil {
		g.inwork = make(map[K]*flight[V])
	}
	f := &flight[V]{done: make(chan struct{})}
	g.inwork[key] = f
	g.mu.Unlock()

	f.res.val, f.res.err = fn()
	close(f.done)

	g.mu.Lock()
	delete(g.inwork, key)
	g.mu.Unlock()

	return f.res.val, f.res.err
}
