package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// MemoryCache is the in-process backend, the one cmd/enginecli wires
// for both Venue Resolver caches. Backed by
// ristretto, the teacher's declared in-process hot-cache dependency.
type MemoryCache struct {
	c *ristretto.Cache[string, string]
}

// NewMemoryCache builds a ristretto-backed cache sized for the Venue
// Resolver's and Learned Store's read-mostly workloads.
func NewMemoryCache() (*MemoryCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, string]{
		NumCounters: 1e5,
		MaxCost:     1 << 24,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	return &MemoryCache{c: c}, nil
}

func (m *MemoryCache) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.c.Get(key)
	return v, ok, nil
}

func (m *MemoryCache) Set(_ context.Context, key, value string, ttl time.Duration) error {
	if ttl > 0 {
		m.c.SetWithTTL(key, value, 1, ttl)
	} else {
		m.c.Set(key, value, 1)
	}
	m.c.Wait()
	return nil
}

func (m *MemoryCache) Delete(_ context.Context, key string) error {
	m.c.Del(key)
	return nil
}
