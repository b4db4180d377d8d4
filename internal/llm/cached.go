package llm

import (
	"context"
	"encoding/json"
	"time"

	"github.com/praxislabs/praxis/internal/cache"
)

// CachedProvider wraps a provider with a completion replay cache. Repeated
// runs with identical prompts reuse the stored response instead of calling
// the API again.
type CachedProvider struct {
	inner Provider
	store cache.Cache
	ttl   time.Duration
}

// NewCachedProvider wraps inner with store. A zero ttl defers to the
// store's default.
func NewCachedProvider(inner Provider, store cache.Cache, ttl time.Duration) *CachedProvider {
	return &CachedProvider{inner: inner, store: store, ttl: ttl}
}

func (p *CachedProvider) Name() string {
	return p.inner.Name()
}

func (p *CachedProvider) IsAvailable(ctx context.Context) bool {
	return p.inner.IsAvailable(ctx)
}

func (p *CachedProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	key := cache.CompletionKey(p.inner.Name(), req.Model, req.System+"\x00"+req.Prompt)

	if data, found := p.store.Get(key); found {
		var resp CompletionResponse
		if err := json.Unmarshal(data, &resp); err == nil {
			return &resp, nil
		}
		// Corrupt entries are dropped and regenerated
		_ = p.store.Delete(key)
	}

	resp, err := p.inner.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(resp); err == nil {
		_ = p.store.Set(key, data, p.ttl)
	}
	return resp, nil
}
