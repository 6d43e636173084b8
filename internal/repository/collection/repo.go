package collection

import (
	"context"
	"fmt"
	"sort"

	"github.com/floorwise/searchiq/internal/domain"
)

// store is the consumer interface for the collection registry (ISP).
type store interface {
	HSet(ctx context.Context, key string, fields map[string]string) error
	HGetAll(ctx context.Context, key string) (map[string]string, error)
	HGetAllMulti(ctx context.Context, keys []string) ([]map[string]string, error)
	Del(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
	Scan(ctx context.Context, pattern string) ([]string, error)
}

// Repo implements usecase/catalog.Repository over Redis hashes.
type Repo struct {
	store     store
	keyPrefix string
}

// New creates a collection registry repository.
func New(s store, keyPrefix string) *Repo {
	return &Repo{store: s, keyPrefix: keyPrefix}
}

// Upsert stores a collection under its handle, overwriting any previous
// registration.
func (r *Repo) Upsert(ctx context.Context, col domain.Collection) error {
	if err := r.store.HSet(ctx, r.metaKey(col.Handle()), collectionToHash(col)); err != nil {
		return fmt.Errorf("hset collection %s: %w", col.Handle(), err)
	}
	return nil
}

// Create stores a collection, failing when the handle is already registered.
func (r *Repo) Create(ctx context.Context, col domain.Collection) error {
	exists, err := r.store.Exists(ctx, r.metaKey(col.Handle()))
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if exists {
		return domain.ErrAlreadyExists
	}
	return r.Upsert(ctx, col)
}

// Get retrieves a collection by handle.
func (r *Repo) Get(ctx context.Context, handle string) (domain.Collection, error) {
	m, err := r.store.HGetAll(ctx, r.metaKey(handle))
	if err != nil {
		return domain.Collection{}, fmt.Errorf("hgetall collection %s: %w", handle, err)
	}
	if len(m) == 0 {
		return domain.Collection{}, domain.ErrNotFound
	}

	return collectionFromHash(m), nil
}

// List returns all registered collections sorted by CreatedAt.
func (r *Repo) List(ctx context.Context) ([]domain.Collection, error) {
	keys, err := r.store.Scan(ctx, r.metaKey("*"))
	if err != nil {
		return nil, fmt.Errorf("scan collections: %w", err)
	}
	if len(keys) == 0 {
		return []domain.Collection{}, nil
	}

	results, err := r.store.HGetAllMulti(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("hgetall multi collections: %w", err)
	}

	collections := make([]domain.Collection, 0, len(results))
	for _, m := range results {
		if len(m) == 0 {
			continue
		}
		collections = append(collections, collectionFromHash(m))
	}

	sort.Slice(collections, func(i, j int) bool {
		return collections[i].CreatedAt() < collections[j].CreatedAt()
	})

	return collections, nil
}

// Delete removes a collection by handle.
func (r *Repo) Delete(ctx context.Context, handle string) error {
	exists, err := r.store.Exists(ctx, r.metaKey(handle))
	if err != nil {
		return fmt.Errorf("check exists: %w", err)
	}
	if !exists {
		return domain.ErrNotFound
	}

	if err := r.store.Del(ctx, r.metaKey(handle)); err != nil {
		return fmt.Errorf("del collection %s: %w", handle, err)
	}
	return nil
}

// Redis key pattern: searchiq:collection:{handle}

func (r *Repo) metaKey(handle string) string {
	return fmt.Sprintf("%scollection:%s", r.keyPrefix, handle)
}
