// Package cache stores provider search results so repeated queries do
// not burn API quota. A memory layer fronts a persistent disk layer.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for caching serialized search results
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CacheKey generates a cache key from a provider name and query.
// Hashing keeps arbitrary query strings filesystem-safe.
func CacheKey(provider, query string) string {
	hash := sha256.Sum256([]byte(provider + "|" + query))
	return "newsprism:v1:" + hex.EncodeToString(hash[:])
}
