package dataset

import (
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Loader loads dataset run directories with optional in-process caching.
// Batch eval runs many cases against the same dataset root; caching the
// parsed tables avoids re-reading the CSVs for every case. Nothing is
// cached across processes, so evidence resolution stays per-run.
type Loader struct {
	cache *gocache.Cache // nil when caching is disabled
}

// NewLoader creates a loader. TTL <= 0 disables caching.
func NewLoader(ttl, cleanupInterval time.Duration) *Loader {
	if ttl <= 0 {
		return &Loader{}
	}
	return &Loader{cache: gocache.New(ttl, cleanupInterval)}
}

// Load returns the dataset for root, from cache when possible
func (l *Loader) Load(root string) (*Dataset, error) {
	key, err := filepath.Abs(root)
	if err != nil {
		key = root
	}

	if l.cache != nil {
		if v, found := l.cache.Get(key); found {
			return v.(*Dataset), nil
		}
	}

	ds, err := Load(root)
	if err != nil {
		return nil, err
	}

	if l.cache != nil {
		l.cache.Set(key, ds, gocache.DefaultExpiration)
	}
	return ds, nil
}
