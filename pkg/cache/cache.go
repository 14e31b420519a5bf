// Package cache provides result caching for layout computations.
//
// Layout passes are cheap for small legends but can be invoked repeatedly
// with identical inputs, for example from build pipelines that regenerate
// chart assets. The cache keys a computed layout by a hash of everything
// that influences it: the entries, the resolved config, the available width
// and the text metrics. Two backends are provided: a file-based cache for
// CLI usage and a null cache for when caching is disabled.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// Cache stores serialized layout results keyed by input hashes.
type Cache interface {
	// Get retrieves a value. The second return reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given time-to-live. A ttl of 0 means
	// the entry never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the cache.
	Close() error
}

// LayoutKey builds a cache key from everything that influences a layout
// pass. Inputs are JSON-marshaled and hashed, so any field change produces
// a different key. measurerID distinguishes text measurers with identical
// inputs but different metrics (e.g. fixed metrics vs. a font face).
func LayoutKey(entries, config any, availableWidth float64, measurerID string) string {
	return hashKey("layout", entries, config, availableWidth, measurerID)
}

// hashKey generates a cache key by hashing the components.
// The key format is: prefix:hash(parts...)
func hashKey(prefix string, parts ...any) string {
	data, _ := json.Marshal(parts)
	hash := sha256.Sum256(data)
	// Full SHA-256 (64 hex chars) to prevent collisions
	return fmt.Sprintf("%s:%s", prefix, hex.EncodeToString(hash[:]))
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}
