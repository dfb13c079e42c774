package fetch

import (
	"context"
	"time"

	"github.com/zype-z/siimg/internal/cache"
)

// Store is a byte cache keyed by URL.
type Store interface {
	// Get returns the cached bytes for key. found is false on a miss.
	Get(ctx context.Context, key string) (data []byte, found bool, err error)

	// Set stores data under key. ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
}

// Cached serves fetches from Store and falls back to Fetcher on a miss,
// storing what it downloads. Store failures are logged and bypassed so
// the cache never turns a successful download into an error.
type Cached struct {
	// Fetcher serves misses. Nil means NewHTTP().
	Fetcher Fetcher
	Store   Store

	// TTL is the lifetime of stored entries; zero keeps them until evicted.
	TTL time.Duration
}

var _ Fetcher = Cached{}

// Fetch implements Fetcher.
func (c Cached) Fetch(ctx context.Context, url string) ([]byte, error) {
	if c.Store != nil {
		data, found, err := c.Store.Get(ctx, url)
		switch {
		case err != nil:
			slogger().Warn("fetch: cache read failed", "url", url, "err", err)
		case found:
			slogger().Debug("fetch: cache hit", "url", url, "bytes", len(data))
			return data, nil
		}
	}

	f := c.Fetcher
	if f == nil {
		f = NewHTTP()
	}
	data, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}

	if c.Store != nil {
		if err := c.Store.Set(ctx, url, data, c.TTL); err != nil {
			slogger().Warn("fetch: cache write failed", "url", url, "err", err)
		}
	}
	return data, nil
}

// MemoryStore is an in-process LRU Store.
//
// MemoryStore is safe for concurrent use.
type MemoryStore struct {
	entries *cache.Cache[string, memoryEntry]
	now     func() time.Time
}

type memoryEntry struct {
	data    []byte
	expires time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a store holding at most capacity entries.
// capacity <= 0 selects the cache default.
func NewMemoryStore(capacity int) *MemoryStore {
	return &MemoryStore{
		entries: cache.New[string, memoryEntry](capacity),
		now:     time.Now,
	}
}

// Get implements Store.
func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	e, ok := s.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !e.expires.IsZero() && !s.now().Before(e.expires) {
		s.entries.Delete(key)
		return nil, false, nil
	}
	return e.data, true, nil
}

// Set implements Store.
func (s *MemoryStore) Set(_ context.Context, key string, data []byte, ttl time.Duration) error {
	e := memoryEntry{data: data}
	if ttl > 0 {
		e.expires = s.now().Add(ttl)
	}
	s.entries.Set(key, e)
	return nil
}

// Stats returns the underlying cache statistics.
func (s *MemoryStore) Stats() cache.Stats {
	return s.entries.Stats()
}
