package reconcile

import (
	"context"
	"time"

	"github.com/GiyoMoon/WitchTrade-BE/core/models"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
)

const catalogCacheKey = "prices"

// PriceLoader loads every price definition.
type PriceLoader func(ctx context.Context) ([]models.Price, error)

// CatalogCache keeps the indexed price catalog for a TTL. Concurrent misses
// share one load.
type CatalogCache struct {
	load  PriceLoader
	ttl   time.Duration
	store *gocache.Cache
	sf    singleflight.Group
}

// NewCatalogCache creates a cache around load. A zero ttl disables caching.
func NewCatalogCache(ttl time.Duration, load PriceLoader) *CatalogCache {
	return &CatalogCache{
		load:  load,
		ttl:   ttl,
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get returns the cached catalog or loads a fresh one.
func (c *CatalogCache) Get(ctx context.Context) (*Catalog, error) {
	if c.ttl > 0 {
		if cached, ok := c.store.Get(catalogCacheKey); ok {
			return cached.(*Catalog), nil
		}
	}

	result, err, _ := c.sf.Do(catalogCacheKey, func() (any, error) {
		if c.ttl > 0 {
			if cached, ok := c.store.Get(catalogCacheKey); ok {
				return cached, nil
			}
		}

		prices, err := c.load(ctx)
		if err != nil {
			return nil, err
		}
		catalog := NewCatalog(prices)
		if c.ttl > 0 {
			c.store.Set(catalogCacheKey, catalog, c.ttl)
		}
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(*Catalog), nil
}

// Invalidate drops the cached catalog, e.g. after a catalog import.
func (c *CatalogCache) Invalidate() {
	c.store.Delete(catalogCacheKey)
}
