package searchcache

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/floorwise/searchiq/internal/db"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn        func(ctx context.Context, key string) ([]byte, error)
	setWithTTLFn func(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, db.ErrKeyNotFound
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setWithTTLFn != nil {
		return m.setWithTTLFn(ctx, key, value, ttl)
	}
	return nil
}

func newTestCache(t *testing.T, ms *mockStore) (*Cache, *prometheus.CounterVec) {
	t.Helper()
	counter := prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "test_search_cache_total"},
		[]string{"result"},
	)
	return New(ms, "searchiq:", 5*time.Minute, counter, zap.NewNop()), counter
}
