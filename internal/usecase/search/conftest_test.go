package search

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
)

// mockSource implements ProductSource for tests.
type mockSource struct {
	suggestFn func(ctx context.Context, query string, limit int) ([]searchiq.Product, error)
	calls     []string
}

func (m *mockSource) Suggest(ctx context.Context, query string, limit int) ([]searchiq.Product, error) {
	m.calls = append(m.calls, query)
	if m.suggestFn != nil {
		return m.suggestFn(ctx, query, limit)
	}
	return nil, nil
}

// mockCache implements ResultCache for tests.
type mockCache struct {
	getFn   func(ctx context.Context, locale, query string, limit int) (domain.SearchResult, bool)
	putFn   func(ctx context.Context, locale, query string, limit int, result domain.SearchResult)
	getHits int
	puts    int
}

func (m *mockCache) Get(ctx context.Context, locale, query string, limit int) (domain.SearchResult, bool) {
	m.getHits++
	if m.getFn != nil {
		return m.getFn(ctx, locale, query, limit)
	}
	return domain.SearchResult{}, false
}

func (m *mockCache) Put(ctx context.Context, locale, query string, limit int, result domain.SearchResult) {
	m.puts++
	if m.putFn != nil {
		m.putFn(ctx, locale, query, limit, result)
	}
}

func newTestService(t *testing.T, source *mockSource, cache *mockCache) *Service {
	t.Helper()
	var rc ResultCache
	if cache != nil {
		rc = cache
	}
	return New(source, rc, Config{MaxVariations: 5, DefaultLimit: 20, MaxLimit: 100}, zap.NewNop())
}
