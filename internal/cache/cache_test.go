package cache

import (
	"strconv"
	"sync"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		want     int
	}{
		{"explicit", 100, 100},
		{"zero uses default", 0, DefaultCapacity},
		{"negative uses default", -3, DefaultCapacity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New[string, int](tt.capacity)
			if c.Capacity() != tt.want {
				t.Errorf("Capacity() = %d, want %d", c.Capacity(), tt.want)
			}
			if c.Len() != 0 {
				t.Errorf("expected empty cache, got %d entries", c.Len())
			}
		})
	}
}

func TestCacheGetSet(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	val, ok := c.Get("key1")
	if !ok || val != 42 {
		t.Errorf("Get(key1) = %d, %v; want 42, true", val, ok)
	}

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("expected nonexistent key to be missing")
	}

	c.Set("key1", 7)
	if val, _ := c.Get("key1"); val != 7 {
		t.Errorf("expected overwrite to 7, got %d", val)
	}
	if c.Len() != 1 {
		t.Errorf("overwrite must not add entries, Len() = %d", c.Len())
	}
}

func TestCacheGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0

	val := c.GetOrCreate("key1", func() int {
		calls++
		return 100
	})
	if val != 100 || calls != 1 {
		t.Fatalf("first GetOrCreate = %d (calls %d), want 100 (1)", val, calls)
	}

	val = c.GetOrCreate("key1", func() int {
		calls++
		return 200
	})
	if val != 100 || calls != 1 {
		t.Errorf("second GetOrCreate = %d (calls %d), want cached 100 (1)", val, calls)
	}
}

func TestCacheDelete(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 42)

	if !c.Delete("key1") {
		t.Error("expected Delete to return true for existing key")
	}
	if _, ok := c.Get("key1"); ok {
		t.Error("expected key1 to be deleted")
	}
	if c.Delete("key1") {
		t.Error("expected Delete to return false for missing key")
	}
}

func TestCacheClear(t *testing.T) {
	c := New[string, int](10)
	for i := range 3 {
		c.Set(strconv.Itoa(i), i)
	}

	c.Clear()

	if c.Len() != 0 {
		t.Errorf("expected 0 entries after clear, got %d", c.Len())
	}
	c.Set("again", 1)
	if c.Len() != 1 {
		t.Errorf("cache unusable after clear, Len() = %d", c.Len())
	}
}

func TestCacheEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[string, int](3)
	c.Set("a", 1)
	c.Set("b", 2)
	c.Set("c", 3)

	// Touch "a" so "b" becomes the oldest entry.
	c.Get("a")
	c.Set("d", 4)

	if c.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", c.Len())
	}
	if _, ok := c.Get("b"); ok {
		t.Error("expected b to be evicted")
	}
	for _, k := range []string{"a", "c", "d"} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("expected %s to survive eviction", k)
		}
	}
	if got := c.Stats().Evictions; got != 1 {
		t.Errorf("Evictions = %d, want 1", got)
	}
}

func TestCacheStats(t *testing.T) {
	c := New[string, int](10)
	c.Set("key1", 1)
	c.Get("key1")
	c.Get("key1")
	c.Get("missing")

	stats := c.Stats()
	if stats.Len != 1 || stats.Capacity != 10 {
		t.Errorf("Len/Capacity = %d/%d, want 1/10", stats.Len, stats.Capacity)
	}
	if stats.Hits != 2 || stats.Misses != 1 {
		t.Errorf("Hits/Misses = %d/%d, want 2/1", stats.Hits, stats.Misses)
	}
	if want := 2.0 / 3.0; stats.HitRate != want {
		t.Errorf("HitRate = %v, want %v", stats.HitRate, want)
	}
}

func TestCacheConcurrent(t *testing.T) {
	c := New[int, int](1000)
	var wg sync.WaitGroup

	for i := range 50 {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := range 100 {
				c.Set(n*100+j, j)
				c.Get(n*100 + j)
				c.GetOrCreate(j, func() int { return j })
			}
		}(i)
	}
	wg.Wait()

	if c.Len() > c.Capacity() {
		t.Errorf("Len() = %d exceeds capacity %d", c.Len(), c.Capacity())
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}
