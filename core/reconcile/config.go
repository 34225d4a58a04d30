package reconcile

import "time"

// Config holds tuning for offer synchronization.
type Config struct {
	// CatalogTTLSeconds is how long the price catalog is cached. 0 disables caching.
	CatalogTTLSeconds int `mapstructure:"catalog_ttl_seconds" default:"60" validate:"gte=0"`
}

// CatalogTTL returns the cache TTL as a duration.
func (c Config) CatalogTTL() time.Duration {
	return time.Duration(c.CatalogTTLSeconds) * time.Second
}
