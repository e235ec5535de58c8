// Package cache is a small in-memory store used to memoize fetched page
// bodies within a single run. The cabinet flow visits some portal pages more
// than once; nothing here survives the process.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"sync"
)

type Cache struct {
	mu    sync.RWMutex
	items map[string]string
}

func New() *Cache {
	return &Cache{
		items: make(map[string]string),
	}
}

func (c *Cache) Set(key, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items[key] = value
}

func (c *Cache) Get(key string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	value, exists := c.items[key]
	return value, exists
}

// GenerateKey hashes a URL into a stable cache key.
func (c *Cache) GenerateKey(url string) string {
	h := sha256.New()
	h.Write([]byte(url))
	return hex.EncodeToString(h.Sum(nil))
}
