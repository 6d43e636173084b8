package search

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
)

// Request is a storefront search request.
type Request struct {
	Query  string
	Locale string
	Limit  int
	Facets []Facet
}

// Facet restricts results to products carrying a namespaced tag,
// e.g. {Namespace: "room", Value: "kitchen"}.
type Facet struct {
	Namespace string
	Value     string
}

// Config holds fan-out and pagination limits.
type Config struct {
	MaxVariations int
	DefaultLimit  int
	MaxLimit      int
}

// Service runs intelligent storefront searches: it analyzes the query,
// fans out over query variations, merges and ranks the candidates, and
// attaches smart suggestions.
type Service struct {
	source ProductSource
	cache  ResultCache
	cfg    Config
	logger *zap.Logger
}

// New creates a search service. cache can be nil to disable caching.
func New(source ProductSource, cache ResultCache, cfg Config, logger *zap.Logger) *Service {
	if cfg.MaxVariations <= 0 {
		cfg.MaxVariations = 5
	}
	if cfg.DefaultLimit <= 0 {
		cfg.DefaultLimit = 20
	}
	if cfg.MaxLimit <= 0 {
		cfg.MaxLimit = 100
	}
	return &Service{source: source, cache: cache, cfg: cfg, logger: logger}
}

// Search executes a full intelligent search for the request.
func (s *Service) Search(ctx context.Context, req Request) (domain.SearchResult, error) {
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return domain.SearchResult{}, fmt.Errorf("empty query: %w", domain.ErrInvalidQuery)
	}
	if searchiq.IsSpam(query) {
		return domain.SearchResult{}, fmt.Errorf("query %q rejected: %w", query, domain.ErrSpamQuery)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = s.cfg.DefaultLimit
	}
	if limit > s.cfg.MaxLimit {
		limit = s.cfg.MaxLimit
	}

	if s.cache != nil && len(req.Facets) == 0 {
		if cached, ok := s.cache.Get(ctx, req.Locale, query, limit); ok {
			return cached, nil
		}
	}

	analysis := searchiq.AnalyzeQuery(query)

	variations := searchiq.QueryVariations(query)
	if len(variations) > s.cfg.MaxVariations {
		variations = variations[:s.cfg.MaxVariations]
	}
	if len(variations) == 0 {
		variations = []string{query}
	}

	products, err := s.fanOut(ctx, variations, limit)
	if err != nil {
		return domain.SearchResult{}, err
	}

	products = filterByFacets(products, req.Facets)

	ranked := searchiq.RankResults(products, query, analysis)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	result := domain.SearchResult{
		Query:       analysis,
		Products:    ranked,
		Suggestions: searchiq.SmartSuggestions(query, analysis),
		Variations:  variations,
	}

	if s.cache != nil && len(req.Facets) == 0 {
		s.cache.Put(ctx, req.Locale, query, limit, result)
	}

	return result, nil
}

// fanOut fetches candidates for every variation and merges them by
// product ID, keeping first-seen order. A variation failure is logged
// and skipped; the search fails only when every variation fails.
func (s *Service) fanOut(ctx context.Context, variations []string, limit int) ([]searchiq.Product, error) {
	var merged []searchiq.Product
	seen := make(map[int64]bool)

	var lastErr error
	failures := 0

	for _, variation := range variations {
		products, err := s.source.Suggest(ctx, variation, limit)
		if err != nil {
			failures++
			lastErr = err
			s.logger.Warn("Variation fetch failed",
				zap.String("variation", variation),
				zap.Error(err),
			)
			continue
		}
		for _, p := range products {
			if seen[p.ID] {
				continue
			}
			seen[p.ID] = true
			merged = append(merged, p)
		}
	}

	if failures == len(variations) && lastErr != nil {
		return nil, fmt.Errorf("all %d variations failed: %w", failures, lastErr)
	}

	return merged, nil
}

func filterByFacets(products []searchiq.Product, facets []Facet) []searchiq.Product {
	if len(facets) == 0 {
		return products
	}

	filtered := products[:0]
	for _, p := range products {
		match := true
		for _, f := range facets {
			if !searchiq.MatchesFacet(p.Tags, f.Namespace, f.Value) {
				match = false
				break
			}
		}
		if match {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// Analyze returns the intelligence layer's reading of a raw query.
func (s *Service) Analyze(query string) searchiq.QueryAnalysis {
	return searchiq.AnalyzeQuery(query)
}

// Variations returns the capped variation fan-out for a raw query.
func (s *Service) Variations(query string) []string {
	variations := searchiq.QueryVariations(query)
	if len(variations) > s.cfg.MaxVariations {
		variations = variations[:s.cfg.MaxVariations]
	}
	return variations
}

// Related derives up to three related search terms for a product.
func (s *Service) Related(p searchiq.Product) []string {
	return searchiq.RelatedProductQueries(p)
}
