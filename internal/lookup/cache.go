package lookup

import (
	arc "github.com/hashicorp/golang-lru/arc/v2"
	"github.com/npillmayer/bidivis/metrics"
)

// Cache memoizes lookup results by key. Implementations must be safe for
// concurrent use. A cache must only hold complete values; lookups have to
// produce identical results with or without a cache.
type Cache[V any] interface {
	Get(key rune) (V, bool)
	Add(key rune, value V)
}

// DefaultCacheSize is the cache size used if no size is explicitly configured.
const DefaultCacheSize = 4096

// NewCache creates a size-bounded cache with adaptive replacement. A size ≤ 0
// results in a nil cache, i.e. caching is switched off.
func NewCache[V any](size int) Cache[V] {
	if size <= 0 {
		return nil
	}
	c, err := arc.NewARC[rune, V](size)
	if err != nil { // NewARC can only fail if size is <= 0
		T().Errorf("lookup: cannot create cache: %v", err)
		return nil
	}
	return arcCache[V]{c}
}

type arcCache[V any] struct {
	arc *arc.ARCCache[rune, V]
}

func (c arcCache[V]) Get(key rune) (V, bool) {
	return c.arc.Get(key)
}

func (c arcCache[V]) Add(key rune, value V) {
	c.arc.Add(key, value)
}

// Memoize looks up key in cache c, calling find on a cache miss. Values found are
// added to the cache, absent keys are not. c may be nil. name labels the
// cache metrics.
func Memoize[V any](c Cache[V], name string, key rune, find func(rune) (V, bool, error)) (V, bool, error) {
	if c == nil {
		return find(key)
	}
	if v, ok := c.Get(key); ok {
		metrics.CacheCounter.WithValues(name, "hit").Inc(1)
		return v, true, nil
	}
	metrics.CacheCounter.WithValues(name, "miss").Inc(1)
	v, ok, err := find(key)
	if ok && err == nil {
		c.Add(key, v)
	}
	return v, ok, err
}
