package searchcache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/db"
	"github.com/floorwise/searchiq/internal/domain"
)

func testResult() domain.SearchResult {
	return domain.SearchResult{
		Query: searchiq.QueryAnalysis{Original: "oak laminate", Normalized: "oak laminate"},
		Products: []searchiq.ScoredProduct{
			{Product: searchiq.Product{ID: 1, Title: "Oak Laminate"}, RelevanceScore: 200},
		},
		Variations: []string{"oak laminate", "oak"},
	}
}

func TestGet_Miss(t *testing.T) {
	ms := &mockStore{}
	cache, counter := newTestCache(t, ms)

	_, ok := cache.Get(context.Background(), "en", "oak laminate", 20)
	if ok {
		t.Fatal("expected miss")
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("miss")); v != 1 {
		t.Errorf("expected 1 miss, got %f", v)
	}
}

func TestPut_ThenGet(t *testing.T) {
	stored := map[string][]byte{}
	ms := &mockStore{
		getFn: func(_ context.Context, key string) ([]byte, error) {
			if data, ok := stored[key]; ok {
				return data, nil
			}
			return nil, db.ErrKeyNotFound
		},
		setWithTTLFn: func(_ context.Context, key string, value []byte, _ time.Duration) error {
			stored[key] = value
			return nil
		},
	}
	cache, counter := newTestCache(t, ms)

	cache.Put(context.Background(), "en", "oak laminate", 20, testResult())

	got, ok := cache.Get(context.Background(), "en", "oak laminate", 20)
	if !ok {
		t.Fatal("expected hit")
	}
	if got.Query.Original != "oak laminate" {
		t.Errorf("unexpected query: %+v", got.Query)
	}
	if len(got.Products) != 1 || got.Products[0].RelevanceScore != 200 {
		t.Errorf("unexpected products: %+v", got.Products)
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("hit")); v != 1 {
		t.Errorf("expected 1 hit, got %f", v)
	}

	// Different locale misses
	if _, ok := cache.Get(context.Background(), "nl", "oak laminate", 20); ok {
		t.Error("expected miss for different locale")
	}
	// Different limit misses
	if _, ok := cache.Get(context.Background(), "en", "oak laminate", 50); ok {
		t.Error("expected miss for different limit")
	}
}

func TestGet_CorruptEntry(t *testing.T) {
	ms := &mockStore{
		getFn: func(_ context.Context, _ string) ([]byte, error) {
			return []byte("not json"), nil
		},
	}
	cache, counter := newTestCache(t, ms)

	if _, ok := cache.Get(context.Background(), "en", "oak laminate", 20); ok {
		t.Fatal("expected miss for corrupt entry")
	}
	if v := testutil.ToFloat64(counter.WithLabelValues("miss")); v != 1 {
		t.Errorf("expected 1 miss, got %f", v)
	}
}

func TestPut_UsesTTLAndPrefix(t *testing.T) {
	var gotKey string
	var gotTTL time.Duration
	ms := &mockStore{
		setWithTTLFn: func(_ context.Context, key string, _ []byte, ttl time.Duration) error {
			gotKey = key
			gotTTL = ttl
			return nil
		},
	}
	cache, _ := newTestCache(t, ms)

	cache.Put(context.Background(), "en", "oak laminate", 20, testResult())

	if !strings.HasPrefix(gotKey, "searchiq:search_cache:") {
		t.Errorf("unexpected key: %q", gotKey)
	}
	if gotTTL != 5*time.Minute {
		t.Errorf("unexpected ttl: %v", gotTTL)
	}
}

func TestPut_StoreErrorIsSwallowed(t *testing.T) {
	ms := &mockStore{
		setWithTTLFn: func(_ context.Context, _ string, _ []byte, _ time.Duration) error {
			return context.DeadlineExceeded
		},
	}
	cache, _ := newTestCache(t, ms)

	// Must not panic or propagate
	cache.Put(context.Background(), "en", "oak laminate", 20, testResult())
}
