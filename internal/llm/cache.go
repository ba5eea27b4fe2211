package llm

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Fingerprint generates a cache key from a prompt. Identical prompts
// hit the same entry, so repeated extraction of the same text costs
// one API call.
func Fingerprint(prompt string) string {
	hash := sha256.Sum256([]byte(prompt))
	return "structiq:v1:" + hex.EncodeToString(hash[:])
}

// MemoryCache implements ResponseCache on top of an in-memory TTL cache.
type MemoryCache struct {
	cache *gocache.Cache
}

// NewMemoryCache creates a memory cache with the given TTL. Expired
// entries are swept at twice the TTL.
func NewMemoryCache(ttl time.Duration) *MemoryCache {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &MemoryCache{cache: gocache.New(ttl, 2*ttl)}
}

// Get retrieves a cached payload.
func (c *MemoryCache) Get(key string) ([]byte, bool) {
	if val, found := c.cache.Get(key); found {
		return val.([]byte), true
	}
	return nil, false
}

// Set stores a payload under the default TTL.
func (c *MemoryCache) Set(key string, payload []byte) {
	c.cache.Set(key, payload, gocache.DefaultExpiration)
}
