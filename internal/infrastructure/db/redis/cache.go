package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/kejaplug/rental-api/internal/core/domain"
	"github.com/kejaplug/rental-api/internal/core/ports"
	"github.com/kejaplug/rental-api/internal/pkg/metrics"
)

const (
	cacheTTL         = 5 * time.Minute
	generationKey    = "listings:gen"
	entryKeyTemplate = "listings:%d:%s"
)

// ListingCache caches public listing query results in Redis. Entries
// live under a generation counter: any property mutation bumps the
// counter, orphaning every cached page at once, and the orphans expire
// via TTL. Cache errors degrade to misses so the database stays the
// source of truth.
type ListingCache struct {
	client *redis.Client
	log    zerolog.Logger
}

func NewListingCache(client *redis.Client, log zerolog.Logger) *ListingCache {
	return &ListingCache{client: client, log: log}
}

// Get resolves the filter to a generation-qualified key and returns it
// alongside the result. Callers pass the key back to Put so a write
// racing with Invalidate lands under the old, orphaned generation.
func (c *ListingCache) Get(ctx context.Context, filter ports.ListPropertiesFilter) ([]*domain.Property, string, bool) {
	key := c.entryKey(ctx, filter)

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn().Err(err).Msg("listing cache get failed")
		}
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, key, false
	}

	var properties []*domain.Property
	if err := json.Unmarshal(data, &properties); err != nil {
		c.log.Warn().Err(err).Msg("listing cache entry corrupt")
		metrics.ListingCacheTotal.WithLabelValues("miss").Inc()
		return nil, key, false
	}

	metrics.ListingCacheTotal.WithLabelValues("hit").Inc()
	return properties, key, true
}

func (c *ListingCache) Put(ctx context.Context, key string, properties []*domain.Property) {
	data, err := json.Marshal(properties)
	if err != nil {
		c.log.Warn().Err(err).Msg("listing cache marshal failed")
		return
	}
	if err := c.client.Set(ctx, key, data, cacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("listing cache put failed")
	}
}

// Invalidate bumps the generation counter, detaching all cached pages.
func (c *ListingCache) Invalidate(ctx context.Context) {
	if err := c.client.Incr(ctx, generationKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("listing cache invalidate failed")
	}
}

func (c *ListingCache) entryKey(ctx context.Context, filter ports.ListPropertiesFilter) string {
	gen, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil && err != redis.Nil {
		c.log.Warn().Err(err).Msg("listing cache generation read failed")
	}
	fingerprint := fmt.Sprintf("city=%s|max=%g|type=%s|status=%s",
		filter.City, filter.MaxPrice, filter.Type, filter.Status)
	return fmt.Sprintf(entryKeyTemplate, gen, fingerprint)
}
