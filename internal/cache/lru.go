// Package cache caches rendered schema documents between tool calls.
package cache

import (
	"crypto/sha256"
	"encoding/hex"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DocCache is a thread-safe LRU of rendered schema documents keyed by a
// digest of the samples and options that produced them.
type DocCache struct {
	cache *lru.Cache[string, []byte]
}

// NewDocCache creates a cache holding at most maxItems documents.
func NewDocCache(maxItems int) (*DocCache, error) {
	c, err := lru.New[string, []byte](maxItems)
	if err != nil {
		return nil, err
	}
	return &DocCache{cache: c}, nil
}

// Get returns the cached document for key, if present.
func (c *DocCache) Get(key string) ([]byte, bool) {
	return c.cache.Get(key)
}

// Put stores a document under key.
func (c *DocCache) Put(key string, doc []byte) {
	c.cache.Add(key, doc)
}

// Len returns the current number of cached documents.
func (c *DocCache) Len() int {
	return c.cache.Len()
}

// Key digests the given parts into a stable cache key. Parts are separated
// by NUL so concatenation boundaries cannot collide.
func Key(parts ...string) string {
	h := sha256.New()
	for i, p := range parts {
		if i > 0 {
			h.Write([]byte{0})
		}
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
