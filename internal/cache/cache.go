// Package cache defines the Cache contract shared by the Venue Resolver
// and the Learned-Pattern Store's lookup index, and three concrete
// backends. Grounded on github.com/txplain/txplain/internal/tools.Cache
// and SimpleCache: a namespaced key/value store with per-call optional
// TTL, a JSON convenience layer, and one constructor per backend. No
// environment variable selects a backend: the caller constructs the one
// it wants (cmd/enginecli uses MemoryCache).
package cache

import (
	"context"
	"time"
)

// Cache is the interface every backend below satisfies. Get reports a
// miss with ok=false, matching SimpleCache's contract rather than
// returning a sentinel error for the common case.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// TTL durations, named per concern the way the teacher names
// ABITTLDuration/PriceTTLDuration/etc. in internal/tools/cache.go.
const (
	VenueTokenTTL = 60 * time.Second
	VenuePairTTL  = 60 * time.Second
)

// Key patterns, following the teacher's "category:identifier" naming
// convention (e.g. its TokenPriceKeyPattern = "erc20-price:%d:%s").
const (
	VenueTokenKeyPattern = "venue-token:%s"
	VenuePairKeyPattern  = "venue-pair:%s"
	LearnedKeyPattern    = "learned:%s"
)

// negativeSentinel is stored to represent a cached miss — both positive
// and negative venue-resolver results are cached, per §4.7.
const negativeSentinel = "\x00NEGATIVE\x00"

// IsNegative reports whether a Get hit was a cached negative result.
func IsNegative(value string) bool { return value == negativeSentinel }

// NegativeValue is the sentinel to Set when caching a confirmed miss.
func NegativeValue() string { return negativeSentinel }
