package cache

import (
	"strconv"
	"testing"
)

// countingMetrics records Metrics signals for assertions.
type countingMetrics struct {
	hits, misses, evicts int
	lastSize             int
}

func (m *countingMetrics) Hit()             { m.hits++ }
func (m *countingMetrics) Miss()            { m.misses++ }
func (m *countingMetrics) Evict()           { m.evicts++ }
func (m *countingMetrics) Size(entries int) { m.lastSize = entries }

// Basic round-trip: Set then Get returns the stored value.
func TestCache_SetAndGet(t *testing.T) {
	t.Parallel()

	c := New[int, string](Options[int, string]{Capacity: 10})
	t.Cleanup(func() { _ = c.Close() })

	c.Set(1, "hello")
	c.Set(2, "world")

	if _, ok := c.Get(3); ok {
		t.Fatal("Get(3) must miss")
	}
	if v, ok := c.Get(1); !ok || v != "hello" {
		t.Fatalf("Get(1) = %q ok=%v, want hello", v, ok)
	}
	if v, ok := c.Get(2); !ok || v != "world" {
		t.Fatalf("Get(2) = %q ok=%v, want world", v, ok)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}

// Full eviction scenario: Gets reorder recency so the entry evicted on
// overflow is the true least-recently-used one, not the oldest inserted.
func TestCache_EvictionOrder(t *testing.T) {
	t.Parallel()

	c := New[int, string](Options[int, string]{Capacity: 3})
	t.Cleanup(func() { _ = c.Close() })

	c.Set(1, "1")
	c.Set(2, "2")
	c.Set(3, "3")

	// Recency after these Gets, most-to-least-recent: 2, 1, 3.
	mustGet(t, c, 3, "3")
	mustGet(t, c, 2, "2")
	mustGet(t, c, 1, "1")
	mustGet(t, c, 2, "2")

	c.Set(4, "4") // overflow -> evict key 3

	if _, ok := c.Get(3); ok {
		t.Fatal("key 3 must be evicted")
	}
	mustGet(t, c, 2, "2")
	mustGet(t, c, 1, "1")
	mustGet(t, c, 4, "4")
	if c.Len() != 3 {
		t.Fatalf("Len = %d, want 3", c.Len())
	}
}

// Updating an existing key replaces the value in place, promotes the
// entry, and does not change Len.
func TestCache_UpdateExistingKey(t *testing.T) {
	t.Parallel()

	c := New[string, int](Options[string, int]{Capacity: 2})
	t.Cleanup(func() { _ = c.Close() })

	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("a", 11) // update: a becomes MRU, b becomes LRU

	if c.Len() != 2 {
		t.Fatalf("Len after update = %d, want 2", c.Len())
	}
	mustGet(t, c, "a", 11)

	c.Set("c", 3) // evicts b, not the freshly-updated a
	if _, ok := c.Get("b"); ok {
		t.Fatal("b must be evicted (LRU after a's update)")
	}
	mustGet(t, c, "a", 11)
	mustGet(t, c, "c", 3)
}

// For any sequence of Sets, Len never exceeds Cap after a completed call.
func TestCache_CapacityInvariant(t *testing.T) {
	t.Parallel()

	const capacity = 7
	c := New[int, int](Options[int, int]{Capacity: capacity})
	t.Cleanup(func() { _ = c.Close() })

	for i := 0; i < 100; i++ {
		c.Set(i%13, i) // mixes inserts and updates
		if c.Len() > capacity {
			t.Fatalf("after Set #%d: Len %d > Cap %d", i, c.Len(), capacity)
		}
	}
}

// Get on an empty cache misses with no side effects.
func TestCache_EmptyGet(t *testing.T) {
	t.Parallel()

	c := New[string, string](Options[string, string]{Capacity: 4})
	t.Cleanup(func() { _ = c.Close() })

	if _, ok := c.Get("anything"); ok {
		t.Fatal("empty cache must miss")
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

// Get never changes Len and never evicts, no matter how often it runs.
func TestCache_GetDoesNotEvict(t *testing.T) {
	t.Parallel()

	c := New[int, int](Options[int, int]{Capacity: 2})
	t.Cleanup(func() { _ = c.Close() })

	c.Set(1, 1)
	c.Set(2, 2)
	for i := 0; i < 50; i++ {
		c.Get(i % 5)
	}
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
	mustGet(t, c, 1, 1)
	mustGet(t, c, 2, 2)
}

// A zero-capacity cache stores nothing: Set is a no-op by policy.
func TestCache_ZeroCapacity(t *testing.T) {
	t.Parallel()

	c := New[string, string](Options[string, string]{Capacity: 0})
	t.Cleanup(func() { _ = c.Close() })

	c.Set("k", "v")
	if _, ok := c.Get("k"); ok {
		t.Fatal("zero-capacity cache must never retain an entry")
	}
	if c.Len() != 0 {
		t.Fatalf("Len = %d, want 0", c.Len())
	}
}

func TestCache_NegativeCapacityPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Fatal("New with negative capacity must panic")
		}
	}()
	New[int, int](Options[int, int]{Capacity: -1})
}

// Teardown accounting: across evictions and Purge, every allocated entry
// is released exactly once.
func TestCache_TeardownReleasesAllOnce(t *testing.T) {
	t.Parallel()

	c := New[int, string](Options[int, string]{Capacity: 4})
	impl := c.(*lruCache[int, string])

	for i := 0; i < 20; i++ {
		c.Set(i, strconv.Itoa(i)) // 16 of these evict
	}
	c.Set(19, "again") // update path: no alloc, no release

	c.Purge()

	if impl.store.creates != impl.store.releases {
		t.Fatalf("creates %d != releases %d after teardown",
			impl.store.creates, impl.store.releases)
	}
	if impl.store.creates != 20 {
		t.Fatalf("creates = %d, want 20", impl.store.creates)
	}
	if c.Len() != 0 {
		t.Fatalf("Len after Purge = %d, want 0", c.Len())
	}

	// The cache stays usable after Purge.
	c.Set(1, "back")
	mustGet(t, c, 1, "back")
}

// OnEvict fires once per capacity eviction with the evicted pair.
func TestCache_OnEvictCallback(t *testing.T) {
	t.Parallel()

	type pair struct {
		k int
		v string
	}
	var evicted []pair

	c := New[int, string](Options[int, string]{
		Capacity: 2,
		OnEvict:  func(k int, v string) { evicted = append(evicted, pair{k, v}) },
	})
	t.Cleanup(func() { _ = c.Close() })

	c.Set(1, "1")
	c.Set(2, "2")
	c.Set(3, "3") // evicts 1
	c.Set(4, "4") // evicts 2

	want := []pair{{1, "1"}, {2, "2"}}
	if len(evicted) != len(want) {
		t.Fatalf("evicted %v, want %v", evicted, want)
	}
	for i := range want {
		if evicted[i] != want[i] {
			t.Fatalf("evicted[%d] = %v, want %v", i, evicted[i], want[i])
		}
	}
}

// Metrics hooks receive hit/miss/evict/size signals.
func TestCache_Metrics(t *testing.T) {
	t.Parallel()

	m := &countingMetrics{}
	c := New[int, int](Options[int, int]{Capacity: 1, Metrics: m})
	t.Cleanup(func() { _ = c.Close() })

	c.Set(1, 1)
	c.Get(1)    // hit
	c.Get(2)    // miss
	c.Set(2, 2) // evicts 1

	if m.hits != 1 || m.misses != 1 || m.evicts != 1 {
		t.Fatalf("hits=%d misses=%d evicts=%d, want 1/1/1", m.hits, m.misses, m.evicts)
	}
	if m.lastSize != 1 {
		t.Fatalf("lastSize = %d, want 1", m.lastSize)
	}
}

func mustGet[K comparable, V comparable](t *testing.T, c Cache[K, V], k K, want V) {
	t.Helper()
	v, ok := c.Get(k)
	if !ok {
		t.Fatalf("Get(%v): unexpected miss", k)
	}
	if v != want {
		t.Fatalf("Get(%v) = %v, want %v", k, v, want)
	}
}
