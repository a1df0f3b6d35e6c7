package client

import (
	"strings"
	"sync"
)

// cache is a per-resource read cache. Writes invalidate the keys they
// affect so the next read refetches, mirroring the app's
// refetch-on-write behavior.
type cache struct {
	mu      sync.RWMutex
	entries map[string]any
}

func newCache() *cache {
	return &cache{entries: map[string]any{}}
}

func (c *cache) get(key string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

func (c *cache) set(key string, v any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = v
}

func (c *cache) invalidate(keys ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
}

func (c *cache) invalidatePrefix(prefixes ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		for _, p := range prefixes {
			if strings.HasPrefix(k, p) {
				delete(c.entries, k)
				break
			}
		}
	}
}
