package frontpage

import (
	"context"
	"time"

	"github.com/patrickmn/go-cache"
)

const optionsCacheKey = "options"

// OptionsWriter persists options.
type OptionsWriter interface {
	Save(ctx context.Context, opts Options) error
}

// OptionsStore reads and writes options.
type OptionsStore interface {
	OptionsReader
	OptionsWriter
}

// CachedStore keeps the last read options in memory for ttl.
// Saving through it invalidates the cached value.
type CachedStore struct {
	next  OptionsStore
	cache *cache.Cache
}

// NewCachedStore wraps next with an in-memory cache.
func NewCachedStore(next OptionsStore, ttl time.Duration) *CachedStore {
	return &CachedStore{
		next:  next,
		cache: cache.New(ttl, 2*ttl), //nolint:mnd
	}
}

// Options implements OptionsReader. Read errors are not cached.
func (c *CachedStore) Options(ctx context.Context) (Options, error) {
	if v, ok := c.cache.Get(optionsCacheKey); ok {
		if opts, isOpts := v.(Options); isOpts {
			return opts, nil
		}
	}

	opts, err := c.next.Options(ctx)
	if err != nil {
		return Options{}, err
	}

	c.cache.SetDefault(optionsCacheKey, opts)

	return opts, nil
}

// Save implements OptionsWriter.
func (c *CachedStore) Save(ctx context.Context, opts Options) error {
	defer c.Invalidate()

	return c.next.Save(ctx, opts)
}

// Invalidate drops the cached options.
func (c *CachedStore) Invalidate() {
	c.cache.Delete(optionsCacheKey)
}
