package search

import (
	"context"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
)

// ProductSource fetches candidate products for a single search term.
type ProductSource interface {
	Suggest(ctx context.Context, query string, limit int) ([]searchiq.Product, error)
}

// ResultCache stores ranked results keyed by locale, query, and limit.
// Implementations must treat failures as misses.
type ResultCache interface {
	Get(ctx context.Context, locale, query string, limit int) (domain.SearchResult, bool)
	Put(ctx context.Context, locale, query string, limit int, result domain.SearchResult)
}
