// Package cache provides the byte caches used outside the core engine:
// an in-memory cache and a disk cache. The disk cache backs LLM completion
// replay so reruns of the agent layer are cheap and reproducible; nothing
// in the verification core reads from here.
package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Cache is a byte-oriented cache with per-entry TTL
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Clear() error
}

// CompletionKey derives a stable cache key for one LLM completion request
func CompletionKey(provider, model, prompt string) string {
	sum := sha256.Sum256([]byte(provider + "\x00" + model + "\x00" + prompt))
	return "praxis:llm:v1:" + hex.EncodeToString(sum[:])
}
