// Package cache stores resolved directory account ids between runs.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache defines the interface for lookup-result caching.
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// EmailKey generates a cache key from a primary email. Hashing keeps
// addresses out of cache file names.
func EmailKey(email string) string {
	hash := sha256.Sum256([]byte(email))
	return "rosterize:v1:" + hex.EncodeToString(hash[:])
}
