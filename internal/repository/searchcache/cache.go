package searchcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/floorwise/searchiq/internal/db"
	"github.com/floorwise/searchiq/internal/domain"
)

// store is the consumer interface for the result cache (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// Cache stores ranked search results in a key-value store with a TTL.
// Cache failures are logged and treated as misses; they never fail a search.
type Cache struct {
	store      store
	keyPrefix  string
	ttl        time.Duration
	cacheTotal *prometheus.CounterVec
	logger     *zap.Logger
}

// New creates a search result cache.
// cacheTotal is a counter vec with label "result" ("hit"/"miss"), passed explicitly.
func New(
	s store,
	keyPrefix string,
	ttl time.Duration,
	cacheTotal *prometheus.CounterVec,
	logger *zap.Logger,
) *Cache {
	return &Cache{
		store:      s,
		keyPrefix:  keyPrefix,
		ttl:        ttl,
		cacheTotal: cacheTotal,
		logger:     logger,
	}
}

// Get returns a cached result for the locale+query+limit triple.
func (c *Cache) Get(ctx context.Context, locale, query string, limit int) (domain.SearchResult, bool) {
	key := c.cacheKey(locale, query, limit)

	data, err := c.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, db.ErrKeyNotFound) {
			c.logger.Warn("Failed to get cached search result", zap.String("key", key), zap.Error(err))
		}
		c.incCache("miss")
		return domain.SearchResult{}, false
	}

	var result domain.SearchResult
	if err := json.Unmarshal(data, &result); err != nil {
		c.logger.Warn("Failed to parse cached search result", zap.String("key", key), zap.Error(err))
		c.incCache("miss")
		return domain.SearchResult{}, false
	}

	c.incCache("hit")
	return result, true
}

// Put stores a result for the locale+query+limit triple.
func (c *Cache) Put(ctx context.Context, locale, query string, limit int, result domain.SearchResult) {
	data, err := json.Marshal(result)
	if err != nil {
		c.logger.Warn("Failed to encode search result for cache", zap.Error(err))
		return
	}

	key := c.cacheKey(locale, query, limit)
	if err := c.store.SetWithTTL(ctx, key, data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache search result", zap.String("key", key), zap.Error(err))
	}
}

func (c *Cache) incCache(result string) {
	if c.cacheTotal != nil {
		c.cacheTotal.WithLabelValues(result).Inc()
	}
}

func (c *Cache) cacheKey(locale, query string, limit int) string {
	h := sha256.Sum256([]byte(fmt.Sprintf("%s\x00%s\x00%d", locale, query, limit)))
	return c.keyPrefix + "search_cache:" + hex.EncodeToString(h[:])
}
