package catalog

import (
	"context"

	"github.com/floorwise/searchiq"
	"github.com/floorwise/searchiq/internal/domain"
)

// Repository defines the storage contract for collections.
type Repository interface {
	Create(ctx context.Context, col domain.Collection) error
	Upsert(ctx context.Context, col domain.Collection) error
	Get(ctx context.Context, handle string) (domain.Collection, error)
	List(ctx context.Context) ([]domain.Collection, error)
	Delete(ctx context.Context, handle string) error
}

// Source lists the collections the live storefront currently serves.
type Source interface {
	Collections(ctx context.Context) ([]searchiq.Collection, error)
}
