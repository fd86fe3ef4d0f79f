package cache

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache holds short-lived status values, such as whether the translation
// service answered recently, so health checks do not hit it on every call.
type Cache struct {
	cache *cache.Cache
}

func New(defaultExpiration time.Duration) *Cache {
	return &Cache{
		cache: cache.New(defaultExpiration, 2*defaultExpiration),
	}
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) Set(key string, value interface{}, expiration time.Duration) {
	c.cache.Set(key, value, expiration)
}

// RememberBool returns the cached value for key, or calls fn and caches its
// result for ttl. Concurrent misses may call fn more than once. A ttl of
// zero or less disables caching: fn is called every time.
func (c *Cache) RememberBool(key string, ttl time.Duration, fn func() bool) bool {
	if ttl <= 0 {
		return fn()
	}
	if cached, found := c.Get(key); found {
		if b, ok := cached.(bool); ok {
			return b
		}
	}
	value := fn()
	c.Set(key, value, ttl)
	return value
}
