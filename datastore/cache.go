// Package datastore holds process-wide caches shared by concurrent searches.
package datastore

import (
	"time"

	"github.com/ekinanp/go-cache"
	log "github.com/sirupsen/logrus"
)

// MemCache is an in-memory key/value cache. All operations are thread-safe.
// Entries never expire on their own; owners invalidate them explicitly.
type MemCache struct {
	instance *cache.Cache
}

// NewMemCache creates an empty MemCache.
func NewMemCache() *MemCache {
	return &MemCache{instance: cache.New(cache.NoExpiration, 10*time.Minute)}
}

// Get returns the value stored for key.
func (c *MemCache) Get(key string) (interface{}, bool) {
	return c.instance.Get(key)
}

// Set stores value for key, replacing any previous value.
func (c *MemCache) Set(key string, value interface{}) {
	c.instance.SetDefault(key, value)
}

// Delete removes key's entry. It returns false if there was none.
func (c *MemCache) Delete(key string) bool {
	if _, ok := c.instance.Get(key); !ok {
		return false
	}
	c.instance.Delete(key)
	log.Tracef("Deleted %v from the cache", key)
	return true
}
