package catalog

import (
	"context"
	"fmt"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
	"github.com/floorwise/searchiq/internal/metrics"
)

// Service handles collection CRUD, query normalization, query-to-collection
// resolution, and storefront synchronization.
type Service struct {
	repo   Repository
	source Source
}

// New creates a catalog service. The source may be nil; Sync then fails
// with ErrSourceUnavailable.
func New(repo Repository, source Source) *Service {
	return &Service{repo: repo, source: source}
}

// Normalize cleans a raw search query for the given locale.
func (s *Service) Normalize(query, locale string) searchiq.NormalizedQuery {
	result := searchiq.Normalize(query, locale)
	outcome := "ok"
	if result.IsSpam {
		outcome = "spam"
	}
	metrics.QueriesNormalizedTotal.WithLabelValues(outcome).Inc()
	return result
}

// NormalizeBatch deduplicates a query log by normalized handle.
func (s *Service) NormalizeBatch(queries []string, locale string) searchiq.BatchResult {
	return searchiq.BatchNormalize(queries, locale)
}

// Resolve normalizes a query and checks it against the stored collections.
// The match is nil when no existing collection fits; the normalization
// result's ShouldCreateCollection then says whether the query deserves a
// new one.
func (s *Service) Resolve(ctx context.Context, query, locale string) (searchiq.NormalizedQuery, *domain.CollectionMatch, error) {
	normalized := s.Normalize(query, locale)

	cols, err := s.repo.List(ctx)
	if err != nil {
		return searchiq.NormalizedQuery{}, nil, fmt.Errorf("list collections: %w", err)
	}

	matchable := make([]searchiq.Collection, len(cols))
	byHandle := make(map[string]domain.Collection, len(cols))
	for i, c := range cols {
		matchable[i] = c.Matchable()
		byHandle[c.Handle()] = c
	}

	result := searchiq.FindMatchingCollection(query, matchable, locale)
	if result == nil {
		return normalized, nil, nil
	}

	return normalized, &domain.CollectionMatch{
		Collection: byHandle[result.Collection.Handle],
		MatchType:  result.MatchType,
		Confidence: result.Confidence,
	}, nil
}

// Sync pulls the storefront's collection listing into the registry. New
// handles are registered fresh; known handles keep their creation time and
// get a revision bump when the title changed. Unchanged and malformed
// listings are skipped. Returns the number of collections written.
func (s *Service) Sync(ctx context.Context) (int, error) {
	if s.source == nil {
		return 0, fmt.Errorf("no storefront configured: %w", domain.ErrSourceUnavailable)
	}

	remote, err := s.source.Collections(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch storefront collections: %w", err)
	}

	existing, err := s.repo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list collections: %w", err)
	}
	byHandle := make(map[string]domain.Collection, len(existing))
	for _, c := range existing {
		byHandle[c.Handle()] = c
	}

	synced := 0
	for _, rc := range remote {
		prev, known := byHandle[rc.Handle]
		if known && prev.Title() == rc.Title {
			continue
		}

		var col domain.Collection
		if known {
			col = domain.Reconstruct(rc.Handle, rc.Title, prev.CreatedAt(), prev.Revision()+1)
		} else {
			col, err = domain.New(rc.Handle, rc.Title)
			if err != nil {
				continue
			}
		}

		if err := s.repo.Upsert(ctx, col); err != nil {
			return synced, fmt.Errorf("upsert collection %s: %w", rc.Handle, err)
		}
		synced++
	}

	return synced, nil
}

// Register validates and stores a new collection.
func (s *Service) Register(ctx context.Context, handle, title string) (domain.Collection, error) {
	col, err := domain.New(handle, title)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("validate collection: %w: %w", domain.ErrInvalidQuery, err)
	}

	if err := s.repo.Create(ctx, col); err != nil {
		return domain.Collection{}, fmt.Errorf("create collection: %w", err)
	}

	return col, nil
}

// Get retrieves a collection by handle.
func (s *Service) Get(ctx context.Context, handle string) (domain.Collection, error) {
	col, err := s.repo.Get(ctx, handle)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("get collection: %w", err)
	}
	return col, nil
}

// List returns all stored collections.
func (s *Service) List(ctx context.Context) ([]domain.Collection, error) {
	cols, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return cols, nil
}

// Delete removes a collection.
func (s *Service) Delete(ctx context.Context, handle string) error {
	if err := s.repo.Delete(ctx, handle); err != nil {
		return fmt.Errorf("delete collection: %w", err)
	}
	return nil
}
